package theme

import (
	"math"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		want    Theme
		wantErr bool
	}{
		{"dark", Dark, false},
		{"light", Light, false},
		{"sepia", Dark, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) err = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestPalettesDisjoint(t *testing.T) {
	dark := PaletteFor(Dark)
	light := PaletteFor(Light)

	for _, dc := range dark.Snippets {
		for _, lc := range light.Snippets {
			if dc.Color == lc.Color {
				t.Errorf("snippet color %s appears in both palettes", dc.Hex())
			}
		}
	}
	if dark.Binary.Color == light.Binary.Color {
		t.Error("binary tint shared between palettes")
	}
	if dark.Fade.Color == light.Fade.Color {
		t.Error("fade tint shared between palettes")
	}
}

func TestHexChannels(t *testing.T) {
	c := Hex("#00d4aa", 0.5)
	r, g, b, a := c.RGBA8()
	if r != 0 || g != 0xd4 || b != 0xaa {
		t.Errorf("RGBA8 = %d,%d,%d, want 0,212,170", r, g, b)
	}
	if a != 128 {
		t.Errorf("alpha = %d, want 128", a)
	}
}

func TestAlphaHelpersClamp(t *testing.T) {
	c := Hex("#ffffff", 0.8)
	if got := c.ScaleAlpha(2).A; got != 1 {
		t.Errorf("ScaleAlpha(2).A = %v, want 1", got)
	}
	if got := c.WithAlpha(-0.5).A; got != 0 {
		t.Errorf("WithAlpha(-0.5).A = %v, want 0", got)
	}
}

func TestOverBlendsTowardForeground(t *testing.T) {
	bg := Hex("#000000", 1).Color
	fg := Hex("#ffffff", 0.25)
	out := fg.Over(bg)
	if math.Abs(out.R-0.25) > 1e-9 {
		t.Errorf("blended R = %v, want 0.25", out.R)
	}
}

func TestStoreToggleNotifies(t *testing.T) {
	s := NewStore(Dark)
	var seen []Theme
	s.Subscribe(func(th Theme) { seen = append(seen, th) })

	if got := s.Toggle(); got != Light {
		t.Errorf("Toggle() = %v, want light", got)
	}
	s.Set(Light) // no change, no notification
	s.Toggle()

	if len(seen) != 2 || seen[0] != Light || seen[1] != Dark {
		t.Errorf("notifications = %v, want [light dark]", seen)
	}
	if s.Palette().Binary != PaletteFor(Dark).Binary {
		t.Error("Palette() does not follow current theme")
	}
}

func TestGradientAt(t *testing.T) {
	p := PaletteFor(Light)

	if got := p.GradientAt(0); got.Hex() != p.Gradient[0].Hex() {
		t.Errorf("GradientAt(0) = %s, want first stop", got.Hex())
	}
	if got := p.GradientAt(0.5); got.Hex() != p.Gradient[1].Hex() {
		t.Errorf("GradientAt(0.5) = %s, want middle stop", got.Hex())
	}
	if got := p.GradientAt(1); got.Hex() != p.Gradient[2].Hex() {
		t.Errorf("GradientAt(1) = %s, want last stop", got.Hex())
	}

	// Quarter point sits between the first two stops
	q := p.GradientAt(0.25)
	want := (p.Gradient[0].R + p.Gradient[1].R) / 2
	if math.Abs(q.R-want) > 1e-9 {
		t.Errorf("GradientAt(0.25).R = %v, want %v", q.R, want)
	}
}

func TestDiagonalT(t *testing.T) {
	tests := []struct {
		x, y, want float64
	}{
		{0, 0, 0},
		{100, 50, 1},
		{50, 25, 0.5},
		{100, 0, 0.5},
		{0, 50, 0.5},
	}
	for _, tt := range tests {
		if got := DiagonalT(tt.x, tt.y, 100, 50); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("DiagonalT(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
	if DiagonalT(5, 5, 0, 10) != 0 {
		t.Error("empty box should map to 0")
	}
}

func TestGlowAtStops(t *testing.T) {
	for _, th := range []Theme{Dark, Light} {
		t.Run(th.String(), func(t *testing.T) {
			p := PaletteFor(th)

			if got := p.GlowAt(0); got.A != p.GlowInner.A || got.Hex() != p.GlowInner.Hex() {
				t.Errorf("GlowAt(0) = %v a=%v, want inner %v a=%v", got.Hex(), got.A, p.GlowInner.Hex(), p.GlowInner.A)
			}
			if got := p.GlowAt(0.5); math.Abs(got.A-p.GlowMid.A) > 1e-12 || got.Hex() != p.GlowMid.Hex() {
				t.Errorf("GlowAt(0.5) = %v a=%v, want mid %v a=%v", got.Hex(), got.A, p.GlowMid.Hex(), p.GlowMid.A)
			}
			for _, d := range []float64{1, 1.5} {
				if got := p.GlowAt(d).A; got != 0 {
					t.Errorf("GlowAt(%v) alpha = %v, want 0", d, got)
				}
			}

			// Continuous at the mid stop
			below, above := p.GlowAt(0.5-1e-9), p.GlowAt(0.5)
			if math.Abs(below.A-above.A) > 1e-6 {
				t.Errorf("alpha jumps at mid stop: %v -> %v", below.A, above.A)
			}

			// Fades monotonically past the mid stop
			prev := p.GlowAt(0.5).A
			for d := 0.55; d <= 1; d += 0.05 {
				a := p.GlowAt(d).A
				if a > prev+1e-12 {
					t.Fatalf("alpha rises at d=%v: %v > %v", d, a, prev)
				}
				prev = a
			}
		})
	}
}
