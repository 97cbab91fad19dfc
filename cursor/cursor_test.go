package cursor

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/codedrift/config"
)

const frameDT = 1.0 / 60

func TestFollowerConverges(t *testing.T) {
	tests := []struct {
		name      string
		stiffness float64
		damping   float64
	}{
		{"ring", 500, 28},
		{"dot", 1500, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Follower{Spring: Spring{Stiffness: tt.stiffness, Damping: tt.damping}}
			target := r2.Vec{X: 300, Y: -120}

			for i := 0; i < 180; i++ {
				f.Step(target, frameDT, 4)
				if math.IsNaN(f.Pos.X) || math.Abs(f.Pos.X) > 1e4 {
					t.Fatalf("step %d: diverged to %v", i, f.Pos)
				}
			}
			if d := r2.Norm(r2.Sub(f.Pos, target)); d > 0.5 {
				t.Errorf("distance to target after 3s = %v", d)
			}
			if v := r2.Norm(f.Vel); v > 1 {
				t.Errorf("velocity after 3s = %v", v)
			}
		})
	}
}

func TestDotLeadsRing(t *testing.T) {
	c := New(config.Default().Cursor)
	c.Update(r2.Vec{}, false, frameDT)

	target := r2.Vec{X: 200, Y: 0}
	for i := 0; i < 3; i++ {
		c.Update(target, false, frameDT)
	}
	if c.Dot.Pos.X <= c.Ring.Pos.X {
		t.Errorf("stiffer dot (%v) should lead ring (%v)", c.Dot.Pos.X, c.Ring.Pos.X)
	}
}

func TestSnapOnFirstUpdate(t *testing.T) {
	c := New(config.Default().Cursor)
	if c.Visible() {
		t.Fatal("new cursor should be hidden")
	}

	p := r2.Vec{X: 640, Y: 400}
	c.Update(p, false, frameDT)
	if !c.Visible() {
		t.Fatal("cursor hidden after update")
	}
	if c.Ring.Pos != p || c.Dot.Pos != p {
		t.Errorf("followers did not snap: ring %v dot %v", c.Ring.Pos, c.Dot.Pos)
	}

	c.Hide()
	q := r2.Vec{X: 10, Y: 10}
	c.Update(q, false, frameDT)
	if c.Ring.Pos != q {
		t.Errorf("ring did not snap after Hide: %v", c.Ring.Pos)
	}
}

func TestRingGrowsOnHover(t *testing.T) {
	cfg := config.Default().Cursor
	c := New(cfg)

	if c.RingRadius() != cfg.RingSize/2 {
		t.Errorf("initial radius = %v, want %v", c.RingRadius(), cfg.RingSize/2)
	}

	for i := 0; i < 120; i++ {
		c.Update(r2.Vec{}, true, frameDT)
	}
	if !c.Hovering() {
		t.Error("Hovering() = false")
	}
	if math.Abs(c.RingRadius()-cfg.RingHoverSize/2) > 0.1 {
		t.Errorf("hover radius = %v, want %v", c.RingRadius(), cfg.RingHoverSize/2)
	}

	for i := 0; i < 120; i++ {
		c.Update(r2.Vec{}, false, frameDT)
	}
	if math.Abs(c.RingRadius()-cfg.RingSize/2) > 0.1 {
		t.Errorf("radius after hover = %v, want %v", c.RingRadius(), cfg.RingSize/2)
	}
}
