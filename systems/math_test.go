package systems

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

// ---------- Repel ----------

func TestRepel_MagnitudeFallsWithDistance(t *testing.T) {
	pointer := r2.Vec{X: 0, Y: 0}
	prev := math.Inf(1)

	for d := 1.0; d < 180; d += 1 {
		pos := r2.Vec{X: d, Y: 0}
		target, ok := Repel(pos, pointer, 180, 80)
		if !ok {
			t.Fatalf("d=%v: expected push inside radius", d)
		}
		push := r2.Norm(r2.Sub(target, pos))
		if push >= prev {
			t.Fatalf("d=%v: push %v not below previous %v", d, push, prev)
		}
		want := (180 - d) / 180 * 80
		if math.Abs(push-want) > 1e-9 {
			t.Errorf("d=%v: push %v, want %v", d, push, want)
		}
		prev = push
	}
}

func TestRepel_DirectionAwayFromPointer(t *testing.T) {
	pointer := r2.Vec{X: 100, Y: 100}
	pos := r2.Vec{X: 130, Y: 140} // 50px away along (0.6, 0.8)

	target, ok := Repel(pos, pointer, 180, 80)
	if !ok {
		t.Fatal("expected push")
	}
	delta := r2.Sub(target, pos)
	if delta.X <= 0 || delta.Y <= 0 {
		t.Errorf("push %v does not point away from pointer", delta)
	}
	if math.Abs(delta.X/delta.Y-0.75) > 1e-9 {
		t.Errorf("push direction %v not collinear with pointer->pos", delta)
	}
}

func TestRepel_NoPushAtBoundaryOrZero(t *testing.T) {
	tests := []struct {
		name string
		pos  r2.Vec
	}{
		{"at radius", r2.Vec{X: 180, Y: 0}},
		{"beyond radius", r2.Vec{X: 400, Y: 0}},
		{"on pointer", r2.Vec{X: 0, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, ok := Repel(tt.pos, r2.Vec{}, 180, 80)
			if ok {
				t.Error("expected no push")
			}
			if target != tt.pos {
				t.Errorf("target %v, want unchanged %v", target, tt.pos)
			}
			if math.IsNaN(target.X) || math.IsNaN(target.Y) {
				t.Error("NaN target")
			}
		})
	}
}

// ---------- Proximity / LinkAlpha ----------

func TestProximity(t *testing.T) {
	tests := []struct {
		d, radius, want float64
	}{
		{0, 180, 1},
		{90, 180, 0.5},
		{180, 180, 0},
		{250, 180, 0},
		{10, 0, 0},
	}
	for _, tt := range tests {
		if got := Proximity(tt.d, tt.radius); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Proximity(%v, %v) = %v, want %v", tt.d, tt.radius, got, tt.want)
		}
	}
}

func TestLinkAlpha(t *testing.T) {
	if got := LinkAlpha(80, 80, 0.08); got != 0 {
		t.Errorf("alpha at 80 = %v, want 0", got)
	}
	if got := LinkAlpha(0, 80, 0.08); math.Abs(got-0.08) > 1e-12 {
		t.Errorf("alpha at 0 = %v, want 0.08", got)
	}
	prev := LinkAlpha(0, 80, 0.08)
	for d := 1.0; d <= 100; d++ {
		a := LinkAlpha(d, 80, 0.08)
		if a < 0 {
			t.Fatalf("alpha at %v negative: %v", d, a)
		}
		if a > prev {
			t.Fatalf("alpha rose from %v to %v at %v", prev, a, d)
		}
		prev = a
	}
}

// ---------- Ease / Bob / RowAlpha ----------

func TestEase_ClosesFixedFraction(t *testing.T) {
	cur := r2.Vec{X: 10, Y: -20}
	target := r2.Vec{X: 110, Y: 30}

	got := Ease(cur, target, 0.04)
	want := r2.Vec{X: 10 + 100*0.04, Y: -20 + 50*0.04}
	if got != want {
		t.Errorf("Ease = %v, want %v", got, want)
	}

	// Repeated easing converges without overshoot
	for i := 0; i < 500; i++ {
		got = Ease(got, target, 0.04)
		if got.X > target.X || got.Y > target.Y {
			t.Fatalf("overshoot at step %d: %v", i, got)
		}
	}
	if r2.Norm(r2.Sub(got, target)) > 0.01 {
		t.Errorf("did not converge: %v", got)
	}
}

func TestBobRange(t *testing.T) {
	for step := 0; step < 1000; step++ {
		tm := float64(step) * 0.016
		if b := Bob(tm, 1.5, 0.7, 15); math.Abs(b) > 15 {
			t.Fatalf("bob %v exceeds amplitude at t=%v", b, tm)
		}
	}
	if b := Bob(0, 1.5, 0, 15); b != 0 {
		t.Errorf("Bob at zero phase = %v, want 0", b)
	}
}

func TestRowAlpha(t *testing.T) {
	if RowAlpha(0, 0.12) != 1 {
		t.Error("head row should be fully bright")
	}
	if got := RowAlpha(7, 0.12); math.Abs(got-0.16) > 1e-12 {
		t.Errorf("row 7 = %v, want 0.16", got)
	}
	if got := RowAlpha(20, 0.12); got != 0 {
		t.Errorf("row 20 = %v, want clamped 0", got)
	}
}

func TestColumnCount(t *testing.T) {
	tests := []struct {
		width float64
		want  int
	}{
		{1000, 28},
		{35, 1},
		{34.9, 0},
		{0, 0},
		{-5, 0},
	}
	for _, tt := range tests {
		if got := ColumnCount(tt.width, 35); got != tt.want {
			t.Errorf("ColumnCount(%v) = %d, want %d", tt.width, got, tt.want)
		}
	}
}
