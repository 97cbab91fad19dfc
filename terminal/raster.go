// Package terminal drives the engine in a terminal through tcell, drawing
// each frame into the cell grid.
package terminal

import (
	"math"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/pthm-cable/codedrift/camera"
	"github.com/pthm-cable/codedrift/systems"
	"github.com/pthm-cable/codedrift/theme"
)

// LinkRune marks a cell crossed by a proximity link.
const LinkRune = '·'

// Rasterizer composites engine frames into a tcell screen. A cell holds one
// rune over one background color, so every layer is resolved to an opaque
// foreground by blending its color into the cell background.
type Rasterizer struct {
	viewport *camera.Viewport

	bg       []colorful.Color
	occupied []bool
}

// NewRasterizer creates a rasterizer for the viewport's grid.
func NewRasterizer(v *camera.Viewport) *Rasterizer {
	return &Rasterizer{viewport: v}
}

// steadyAlpha is the opacity a glyph reaches when redrawn every frame at
// alpha a over a surface faded by f per frame. The window host gets this
// from its persistent trail; cells are redrawn from scratch, so the
// converged value is used directly.
func steadyAlpha(a, f float64) float64 {
	if a <= 0 {
		return 0
	}
	if f <= 0 {
		return 1
	}
	return a / (a + f - a*f)
}

func (r *Rasterizer) ensure() int {
	n := r.viewport.Cols * r.viewport.Rows
	if cap(r.bg) < n {
		r.bg = make([]colorful.Color, n)
		r.occupied = make([]bool, n)
	}
	r.bg = r.bg[:n]
	r.occupied = r.occupied[:n]
	return n
}

// Draw rasterizes f into s. With a nil frame only the background is drawn.
func (r *Rasterizer) Draw(s tcell.Screen, f *systems.Frame, pal theme.Palette) {
	v := r.viewport
	n := r.ensure()
	for i := 0; i < n; i++ {
		r.occupied[i] = false
	}

	w, h := v.Surface()
	for row := 0; row < v.Rows; row++ {
		for col := 0; col < v.Cols; col++ {
			x, y := v.ToSurface(col, row)
			c := pal.GradientAt(theme.DiagonalT(x, y, w, h)).Over(pal.Background.Color)
			r.bg[row*v.Cols+col] = c
		}
	}

	if f != nil && f.PointerGlow && f.GlowRadius > 0 {
		r.tintGlow(f, pal)
	}

	for i := 0; i < n; i++ {
		col, row := i%v.Cols, i/v.Cols
		s.SetContent(col, row, ' ', nil, tcell.StyleDefault.Background(tcellColor(r.bg[i])))
	}
	if f == nil {
		return
	}

	fade := f.FadeAlpha
	for i := range f.Rain {
		g := &f.Rain[i]
		r.put(s, g.X, g.Y, rune(g.Glyph), pal.Binary.WithAlpha(steadyAlpha(g.Alpha, fade)), false)
	}
	for i := range f.Symbols {
		sym := &f.Symbols[i]
		c := pal.Symbol.WithAlpha(steadyAlpha(pal.Symbol.A, fade))
		// Centered on the anchor; cells cannot rotate.
		x := sym.X - float64(utf8.RuneCountInString(sym.Glyph))*v.CellW/2
		for _, ch := range sym.Glyph {
			if ch != ' ' {
				r.put(s, x, sym.Y, ch, c, false)
			}
			x += v.CellW
		}
	}
	for i := range f.Snippets {
		sn := &f.Snippets[i]
		c := pal.SnippetColor(sn.Color).WithAlpha(steadyAlpha(sn.Opacity, fade))
		x := sn.X
		for _, ch := range sn.Text {
			r.put(s, x, sn.Y, ch, c, sn.Glow > 0)
			x += v.CellW
		}
	}
	for i := range f.Links {
		l := &f.Links[i]
		c := pal.Line.ScaleAlpha(l.Alpha)
		c = c.WithAlpha(steadyAlpha(c.A, fade))
		v.Line(l.X1, l.Y1, l.X2, l.Y2, func(col, row int) {
			idx := row*v.Cols + col
			if r.occupied[idx] {
				return
			}
			s.SetContent(col, row, LinkRune, nil, r.style(idx, c, false))
		})
	}
}

// put writes one rune at the cell containing (x, y) and marks it occupied.
func (r *Rasterizer) put(s tcell.Screen, x, y float64, ch rune, c theme.Color, bold bool) {
	col, row, ok := r.viewport.ToCell(x, y)
	if !ok {
		return
	}
	idx := row*r.viewport.Cols + col
	r.occupied[idx] = true
	s.SetContent(col, row, ch, nil, r.style(idx, c, bold))
}

func (r *Rasterizer) style(idx int, c theme.Color, bold bool) tcell.Style {
	bg := r.bg[idx]
	return tcell.StyleDefault.
		Background(tcellColor(bg)).
		Foreground(tcellColor(c.Over(bg))).
		Bold(bold)
}

// tintGlow blends the radial pointer glow into the cell backgrounds: the
// inner color at the center, the mid color at half radius, nothing at the rim.
func (r *Rasterizer) tintGlow(f *systems.Frame, pal theme.Palette) {
	v := r.viewport
	radius := f.GlowRadius
	minCol, minRow, _ := v.ToCell(f.Pointer.X-radius, f.Pointer.Y-radius)
	maxCol, maxRow, _ := v.ToCell(f.Pointer.X+radius, f.Pointer.Y+radius)

	for row := max(minRow, 0); row <= min(maxRow, v.Rows-1); row++ {
		for col := max(minCol, 0); col <= min(maxCol, v.Cols-1); col++ {
			x, y := v.ToSurface(col, row)
			d := math.Hypot(x-f.Pointer.X, y-f.Pointer.Y) / radius
			if d >= 1 {
				continue
			}
			idx := row*v.Cols + col
			r.bg[idx] = pal.GlowAt(d).Over(r.bg[idx])
		}
	}
}

// tcellColor converts an opaque color to a true-color tcell color.
func tcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
