package theme

// Palette holds every color the engine and hosts draw with. Dark and light
// palettes are separate literal tables, never derived from each other.
type Palette struct {
	Snippets [6]Color

	Background Color // Opaque surface base, used where no canvas blending exists
	Fade       Color // Trailing fill composited over the previous frame
	Binary     Color // Rain tint; A is the alpha of the head glyph
	Symbol     Color
	Line       Color
	GlowInner  Color
	GlowMid    Color

	// Gradient holds the stops of the static 135 degree fallback beneath the surface.
	Gradient [3]Color

	SnippetOpacityMin   float64
	SnippetOpacityRange float64
}

var darkPalette = Palette{
	Snippets: [6]Color{
		Hex("#00d4aa", 1),
		Hex("#a78bfa", 1),
		Hex("#ffd93d", 1),
		Hex("#ff6b6b", 1),
		Hex("#4ade80", 1),
		Hex("#60a5fa", 1),
	},
	Background: RGB(10, 10, 15, 1),
	Fade:       RGB(10, 10, 15, 0.15),
	Binary:     RGB(0, 212, 170, 0.12),
	Symbol:     RGB(167, 139, 250, 0.15),
	Line:       RGB(0, 212, 170, 0.03),
	GlowInner:  RGB(0, 212, 170, 0.1),
	GlowMid:    RGB(167, 139, 250, 0.05),
	Gradient: [3]Color{
		Hex("#0a0a0f", 1),
		Hex("#0d0d14", 1),
		Hex("#0a0a0f", 1),
	},
	SnippetOpacityMin:   0.10,
	SnippetOpacityRange: 0.25,
}

var lightPalette = Palette{
	Snippets: [6]Color{
		Hex("#0891b2", 1),
		Hex("#7c3aed", 1),
		Hex("#d97706", 1),
		Hex("#dc2626", 1),
		Hex("#16a34a", 1),
		Hex("#2563eb", 1),
	},
	Background: RGB(248, 250, 252, 1),
	Fade:       RGB(248, 250, 252, 0.15),
	Binary:     RGB(8, 145, 178, 0.08),
	Symbol:     RGB(124, 58, 237, 0.1),
	Line:       RGB(8, 145, 178, 0.05),
	GlowInner:  RGB(8, 145, 178, 0.08),
	GlowMid:    RGB(124, 58, 237, 0.04),
	Gradient: [3]Color{
		Hex("#f8fafc", 1),
		Hex("#e2e8f0", 1),
		Hex("#f8fafc", 1),
	},
	SnippetOpacityMin:   0.15,
	SnippetOpacityRange: 0.30,
}

// PaletteFor returns the palette of the given theme. The returned value is a
// copy; callers may keep it across theme changes.
func PaletteFor(t Theme) Palette {
	if t == Light {
		return lightPalette
	}
	return darkPalette
}

// SnippetColor returns the snippet color at index i modulo the palette size.
func (p *Palette) SnippetColor(i uint8) Color {
	return p.Snippets[int(i)%len(p.Snippets)]
}

// GradientAt samples the fallback gradient at t in [0, 1]. Stops sit at 0,
// 0.5 and 1; colors between them blend linearly in RGB.
func (p *Palette) GradientAt(t float64) Color {
	t = clamp01(t)
	lo, hi, f := p.Gradient[0], p.Gradient[1], t*2
	if t > 0.5 {
		lo, hi, f = p.Gradient[1], p.Gradient[2], (t-0.5)*2
	}
	return Color{
		Color: lo.BlendRgb(hi.Color, f),
		A:     lo.A + (hi.A-lo.A)*f,
	}
}

// GlowAt samples the pointer glow at normalized distance d from its center:
// GlowInner at 0, GlowMid at 0.5 and fully transparent at 1 and beyond.
func (p *Palette) GlowAt(d float64) Color {
	d = clamp01(d)
	if d < 0.5 {
		f := d * 2
		return Color{
			Color: p.GlowInner.BlendRgb(p.GlowMid.Color, f),
			A:     p.GlowInner.A + (p.GlowMid.A-p.GlowInner.A)*f,
		}
	}
	return p.GlowMid.WithAlpha(p.GlowMid.A * (1 - (d-0.5)*2))
}

// DiagonalT maps a point of a w x h box onto a 135 degree gradient axis:
// 0 at the top-left corner, 1 at the bottom-right.
func DiagonalT(x, y, w, h float64) float64 {
	if w <= 0 || h <= 0 {
		return 0
	}
	return clamp01((x/w + y/h) / 2)
}
