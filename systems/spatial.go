package systems

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// SpatialGrid buckets points into square cells so pairs closer than the cell
// size are only searched among neighboring cells.
type SpatialGrid struct {
	cellSize float64
	cols     int
	rows     int
	width    float64
	height   float64
	cells    [][]int // point indices per cell
}

// NewSpatialGrid creates a grid covering the given surface size.
func NewSpatialGrid(width, height, cellSize float64) *SpatialGrid {
	g := &SpatialGrid{cellSize: cellSize}
	g.Resize(width, height)
	return g
}

// Resize reallocates the cells for a new surface size. Same-size calls are
// no-ops. Negative sizes are treated as zero.
func (g *SpatialGrid) Resize(width, height float64) {
	width, height = math.Max(width, 0), math.Max(height, 0)
	if width == g.width && height == g.height && g.cells != nil {
		return
	}
	g.width, g.height = width, height
	g.cols = int(width/g.cellSize) + 1
	g.rows = int(height/g.cellSize) + 1

	g.cells = make([][]int, g.cols*g.rows)
	for i := range g.cells {
		g.cells[i] = make([]int, 0, 4)
	}
}

// Clear removes all points from the grid.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// Build clears the grid and inserts every point by index.
func (g *SpatialGrid) Build(pts []r2.Vec) {
	g.Clear()
	for i, p := range pts {
		c, r := g.cell(p)
		idx := r*g.cols + c
		g.cells[idx] = append(g.cells[idx], i)
	}
}

// Pairs calls fn once for every unordered pair i < j of the points passed to
// Build whose distance is below radius. radius must not exceed the cell size.
func (g *SpatialGrid) Pairs(pts []r2.Vec, radius float64, fn func(i, j int, d float64)) {
	for i, p := range pts {
		col, row := g.cell(p)
		for dr := -1; dr <= 1; dr++ {
			r := row + dr
			if r < 0 || r >= g.rows {
				continue
			}
			for dc := -1; dc <= 1; dc++ {
				c := col + dc
				if c < 0 || c >= g.cols {
					continue
				}
				for _, j := range g.cells[r*g.cols+c] {
					if j <= i {
						continue
					}
					if d := r2.Norm(r2.Sub(p, pts[j])); d < radius {
						fn(i, j, d)
					}
				}
			}
		}
	}
}

// cell returns the clamped cell of a point. Snippets drift above and below
// the surface, so out-of-range points land in the edge cells.
func (g *SpatialGrid) cell(p r2.Vec) (col, row int) {
	col = int(p.X / g.cellSize)
	row = int(p.Y / g.cellSize)
	if p.X < 0 {
		col = 0
	}
	if p.Y < 0 {
		row = 0
	}

	if col >= g.cols {
		col = g.cols - 1
	}
	if row >= g.rows {
		row = g.rows - 1
	}
	return col, row
}
