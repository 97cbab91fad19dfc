package camera

import (
	"math"
	"testing"
)

func TestNew(t *testing.T) {
	v := New(100, 40, 8, 16)

	w, h := v.Surface()
	if w != 800 || h != 640 {
		t.Errorf("expected surface (800, 640), got (%f, %f)", w, h)
	}
}

func TestNewDefaultsCellSize(t *testing.T) {
	v := New(10, 10, 0, -1)
	if v.CellW != 8 || v.CellH != 16 {
		t.Errorf("expected default cell 8x16, got %vx%v", v.CellW, v.CellH)
	}
}

func TestToCell(t *testing.T) {
	v := New(100, 40, 8, 16)

	tests := []struct {
		name     string
		x, y     float64
		col, row int
		ok       bool
	}{
		{"origin", 0, 0, 0, 0, true},
		{"inside first cell", 7.9, 15.9, 0, 0, true},
		{"cell boundary", 8, 16, 1, 1, true},
		{"last cell", 799, 639, 99, 39, true},
		{"right edge", 800, 10, 100, 0, false},
		{"above", 10, -0.5, 1, -1, false},
		{"left", -1, 10, -1, 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			col, row, ok := v.ToCell(tc.x, tc.y)
			if col != tc.col || row != tc.row || ok != tc.ok {
				t.Errorf("ToCell(%v, %v) = (%d, %d, %v), want (%d, %d, %v)",
					tc.x, tc.y, col, row, ok, tc.col, tc.row, tc.ok)
			}
		})
	}
}

func TestToSurfaceRoundtrip(t *testing.T) {
	v := New(100, 40, 8, 16)

	testCases := []struct{ col, row int }{
		{0, 0},
		{50, 20},
		{99, 39},
	}

	for _, tc := range testCases {
		x, y := v.ToSurface(tc.col, tc.row)
		col, row, ok := v.ToCell(x, y)
		if !ok || col != tc.col || row != tc.row {
			t.Errorf("roundtrip failed: (%d,%d) -> (%f,%f) -> (%d,%d)",
				tc.col, tc.row, x, y, col, row)
		}
	}
}

func TestResize(t *testing.T) {
	v := New(100, 40, 8, 16)

	if v.Resize(100, 40) {
		t.Error("same size should report no change")
	}
	if !v.Resize(120, 30) {
		t.Error("new size should report a change")
	}
	w, h := v.Surface()
	if math.Abs(w-960) > 1e-9 || math.Abs(h-480) > 1e-9 {
		t.Errorf("expected surface (960, 480), got (%f, %f)", w, h)
	}

	v.Resize(-3, -3)
	if w, h := v.Surface(); w != 0 || h != 0 {
		t.Errorf("negative size should clamp to empty, got (%f, %f)", w, h)
	}
}

func TestLine(t *testing.T) {
	v := New(10, 10, 8, 16)

	collect := func(x1, y1, x2, y2 float64) [][2]int {
		var cells [][2]int
		v.Line(x1, y1, x2, y2, func(c, r int) {
			cells = append(cells, [2]int{c, r})
		})
		return cells
	}

	t.Run("horizontal", func(t *testing.T) {
		cells := collect(4, 8, 36, 8) // cols 0..4, row 0
		if len(cells) != 5 {
			t.Fatalf("got %d cells, want 5: %v", len(cells), cells)
		}
		for i, c := range cells {
			if c != [2]int{i, 0} {
				t.Errorf("cell %d = %v, want [%d 0]", i, c, i)
			}
		}
	})

	t.Run("diagonal", func(t *testing.T) {
		cells := collect(4, 8, 28, 56) // (0,0) to (3,3)
		if len(cells) != 4 {
			t.Fatalf("got %d cells, want 4: %v", len(cells), cells)
		}
		if cells[0] != [2]int{0, 0} || cells[3] != [2]int{3, 3} {
			t.Errorf("endpoints = %v, %v", cells[0], cells[3])
		}
	})

	t.Run("single cell", func(t *testing.T) {
		cells := collect(1, 1, 5, 5)
		if len(cells) != 1 {
			t.Errorf("got %d cells, want 1", len(cells))
		}
	})

	t.Run("clipped", func(t *testing.T) {
		cells := collect(-20, 8, 12, 8) // cols -3..1, only 0 and 1 on grid
		if len(cells) != 2 {
			t.Errorf("got %d cells, want 2: %v", len(cells), cells)
		}
	})
}
