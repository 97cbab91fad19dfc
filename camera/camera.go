// Package camera maps the engine's pixel surface onto a grid of terminal
// cells.
package camera

import "math"

// Viewport maps surface coordinates (logical pixels) to cells and back.
// Each cell covers CellW x CellH pixels; the surface is exactly the grid.
type Viewport struct {
	// Grid size in cells
	Cols, Rows int

	// Pixels per cell
	CellW, CellH float64
}

// New creates a viewport for a cols x rows grid. Non-positive cell sizes
// fall back to 8x16, the usual aspect of a terminal cell.
func New(cols, rows int, cellW, cellH float64) *Viewport {
	if cellW <= 0 {
		cellW = 8
	}
	if cellH <= 0 {
		cellH = 16
	}
	v := &Viewport{CellW: cellW, CellH: cellH}
	v.Resize(cols, rows)
	return v
}

// Surface returns the surface size in pixels.
func (v *Viewport) Surface() (w, h float64) {
	return float64(v.Cols) * v.CellW, float64(v.Rows) * v.CellH
}

// Resize sets the grid size and reports whether it changed.
func (v *Viewport) Resize(cols, rows int) bool {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	if cols == v.Cols && rows == v.Rows {
		return false
	}
	v.Cols, v.Rows = cols, rows
	return true
}

// ToCell converts a surface point to the cell containing it.
// ok is false when the point lies outside the grid.
func (v *Viewport) ToCell(x, y float64) (col, row int, ok bool) {
	col = int(math.Floor(x / v.CellW))
	row = int(math.Floor(y / v.CellH))
	return col, row, v.Contains(col, row)
}

// ToSurface returns the surface point at the center of a cell.
func (v *Viewport) ToSurface(col, row int) (x, y float64) {
	return (float64(col) + 0.5) * v.CellW, (float64(row) + 0.5) * v.CellH
}

// Contains reports whether a cell is on the grid.
func (v *Viewport) Contains(col, row int) bool {
	return col >= 0 && row >= 0 && col < v.Cols && row < v.Rows
}

// Line calls fn for every on-grid cell crossed by the segment between two
// surface points, using Bresenham's algorithm on cell coordinates.
func (v *Viewport) Line(x1, y1, x2, y2 float64, fn func(col, row int)) {
	c0, r0, _ := v.ToCell(x1, y1)
	c1, r1, _ := v.ToCell(x2, y2)

	dc := absi(c1 - c0)
	dr := -absi(r1 - r0)
	sc, sr := 1, 1
	if c0 > c1 {
		sc = -1
	}
	if r0 > r1 {
		sr = -1
	}
	err := dc + dr

	for {
		if v.Contains(c0, r0) {
			fn(c0, r0)
		}
		if c0 == c1 && r0 == r1 {
			return
		}
		e2 := 2 * err
		if e2 >= dr {
			err += dr
			c0 += sc
		}
		if e2 <= dc {
			err += dc
			r0 += sr
		}
	}
}

// absi returns the absolute value of an int.
func absi(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
