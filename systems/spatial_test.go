package systems

import (
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/codedrift/config"
)

type pair struct{ i, j int }

func bruteForcePairs(pts []r2.Vec, radius float64) map[pair]bool {
	out := make(map[pair]bool)
	for i := range pts {
		for j := i + 1; j < len(pts); j++ {
			if r2.Norm(r2.Sub(pts[i], pts[j])) < radius {
				out[pair{i, j}] = true
			}
		}
	}
	return out
}

// TestSpatialGridMatchesBruteForce verifies the grid finds exactly the pairs
// a quadratic scan finds, including points drifting off the surface.
func TestSpatialGridMatchesBruteForce(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		n             int
		margin        float64
	}{
		{name: "on surface", width: 800, height: 600, n: 50},
		{name: "dense", width: 200, height: 200, n: 120},
		{name: "drifting off edges", width: 640, height: 480, n: 80, margin: 120},
		{name: "surface smaller than a cell", width: 50, height: 40, n: 20, margin: 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(7))
			pts := make([]r2.Vec, tt.n)
			for i := range pts {
				pts[i] = r2.Vec{
					X: rng.Float64()*(tt.width+2*tt.margin) - tt.margin,
					Y: rng.Float64()*(tt.height+2*tt.margin) - tt.margin,
				}
			}

			g := NewSpatialGrid(tt.width, tt.height, 80)
			g.Build(pts)

			got := make(map[pair]bool)
			g.Pairs(pts, 80, func(i, j int, d float64) {
				if i >= j {
					t.Fatalf("pair (%d,%d) not ordered", i, j)
				}
				if got[pair{i, j}] {
					t.Fatalf("pair (%d,%d) reported twice", i, j)
				}
				got[pair{i, j}] = true
			})

			want := bruteForcePairs(pts, 80)
			if len(got) != len(want) {
				t.Fatalf("got %d pairs, want %d", len(got), len(want))
			}
			for p := range want {
				if !got[p] {
					t.Errorf("missing pair %v", p)
				}
			}
		})
	}
}

func TestSpatialGridResize(t *testing.T) {
	g := NewSpatialGrid(100, 100, 50)
	if g.cols != 3 || g.rows != 3 {
		t.Fatalf("grid %dx%d, want 3x3", g.cols, g.rows)
	}

	cells := g.cells
	g.Resize(100, 100)
	if &g.cells[0] != &cells[0] {
		t.Error("same-size resize should keep the cells")
	}

	g.Resize(400, 100)
	if g.cols != 9 || g.rows != 3 {
		t.Errorf("grid %dx%d after resize, want 9x3", g.cols, g.rows)
	}
}

func TestSpatialGridNegativeSize(t *testing.T) {
	g := NewSpatialGrid(-300, -10, 80)
	if g.cols != 1 || g.rows != 1 {
		t.Fatalf("grid %dx%d, want 1x1", g.cols, g.rows)
	}

	pts := []r2.Vec{{X: 0, Y: 0}, {X: 10, Y: 5}}
	g.Build(pts)
	n := 0
	g.Pairs(pts, 80, func(i, j int, d float64) { n++ })
	if n != 1 {
		t.Errorf("pairs = %d, want 1", n)
	}

	g.Resize(-1, 400)
	if g.cols != 1 || g.rows != 6 {
		t.Errorf("grid %dx%d after resize, want 1x6", g.cols, g.rows)
	}
}

func TestLinkSystemExactDistanceHasNoLink(t *testing.T) {
	s := NewLinkSystem(config.LinkConfig{Distance: 80, MaxAlpha: 0.08})

	f := NewFrame(0, 0, 3)
	f.Width, f.Height = 400, 300
	f.points = append(f.points,
		r2.Vec{X: 100, Y: 100},
		r2.Vec{X: 180, Y: 100}, // exactly 80 from the first
		r2.Vec{X: 140, Y: 100},
	)
	s.Update(f)

	if f.Stats.Links != 2 {
		t.Fatalf("links = %d, want 2", f.Stats.Links)
	}
	for _, l := range f.Links {
		if l.Alpha <= 0 {
			t.Errorf("link alpha %v should be positive", l.Alpha)
		}
	}
}
