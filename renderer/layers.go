// Package renderer draws engine frames, the fallback gradient, the trail
// surface and the cursor follower with raylib.
package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/codedrift/config"
	"github.com/pthm-cable/codedrift/systems"
	"github.com/pthm-cable/codedrift/theme"
)

// baseline is the fraction of the font size between the top of a glyph box
// and its baseline. Engine coordinates address the baseline.
const baseline = 0.8

// glowPasses is the number of offset copies drawn for a snippet halo.
const glowPasses = 8

// LayerRenderer draws the engine layers of a frame with raylib.
type LayerRenderer struct {
	font      rl.Font
	ownsFont  bool
	rainSize  float32
	symSize   float32
	glyphBuf  [1]byte
	spacing   float32
	glowSteps []rl.Vector2
}

// NewLayerRenderer creates a renderer that draws with the font at fontPath,
// or the raylib default font when fontPath is empty or fails to load.
// Must be called after the raylib window is created.
func NewLayerRenderer(fontPath string, cfg config.EngineConfig) *LayerRenderer {
	r := &LayerRenderer{
		font:     rl.GetFontDefault(),
		rainSize: float32(cfg.Rain.FontSize),
		symSize:  float32(cfg.Symbols.FontSize),
		spacing:  1,
	}
	if fontPath != "" {
		f := rl.LoadFontEx(fontPath, 32, nil, 0)
		if f.Texture.ID != 0 {
			rl.SetTextureFilter(f.Texture, rl.FilterBilinear)
			r.font = f
			r.ownsFont = true
		}
	}

	r.glowSteps = make([]rl.Vector2, glowPasses)
	for i := range r.glowSteps {
		a := float64(i) / glowPasses * 2 * math.Pi
		r.glowSteps[i] = rl.Vector2{X: float32(math.Cos(a)), Y: float32(math.Sin(a))}
	}
	return r
}

// LayerMask selects which engine layers DrawFrame draws.
type LayerMask struct {
	Rain, Symbols, Snippets, Links, Glow bool
}

// AllLayers draws everything.
var AllLayers = LayerMask{Rain: true, Symbols: true, Snippets: true, Links: true, Glow: true}

// DrawFrame draws the selected layers of f in compositing order. The fade
// fill is the trail renderer's job and is not drawn here.
func (r *LayerRenderer) DrawFrame(f *systems.Frame, m LayerMask) {
	if f == nil {
		return
	}
	if m.Rain {
		r.DrawRain(f)
	}
	if m.Symbols {
		r.DrawSymbols(f)
	}
	if m.Snippets {
		r.DrawSnippets(f)
	}
	if m.Links {
		r.DrawLinks(f)
	}
	if m.Glow {
		r.DrawGlow(f)
	}
}

// DrawRain draws the binary-rain glyphs.
func (r *LayerRenderer) DrawRain(f *systems.Frame) {
	tint := f.Palette.Binary
	for i := range f.Rain {
		g := &f.Rain[i]
		r.glyphBuf[0] = g.Glyph
		pos := rl.Vector2{X: float32(g.X), Y: float32(g.Y) - r.rainSize*baseline}
		rl.DrawTextEx(r.font, string(r.glyphBuf[:]), pos, r.rainSize, r.spacing, rlColorAlpha(tint, g.Alpha))
	}
}

// DrawSymbols draws the floating symbols rotated about their anchor.
func (r *LayerRenderer) DrawSymbols(f *systems.Frame) {
	col := rlColor(f.Palette.Symbol)
	for i := range f.Symbols {
		s := &f.Symbols[i]
		size := rl.MeasureTextEx(r.font, s.Glyph, r.symSize, r.spacing)
		origin := rl.Vector2{X: size.X / 2, Y: r.symSize * baseline}
		pos := rl.Vector2{X: float32(s.X), Y: float32(s.Y)}
		rl.DrawTextPro(r.font, s.Glyph, pos, origin, float32(s.Rotation*180/math.Pi), r.symSize, r.spacing, col)
	}
}

// DrawSnippets draws the code snippet labels, with a halo for those near the
// pointer.
func (r *LayerRenderer) DrawSnippets(f *systems.Frame) {
	for i := range f.Snippets {
		s := &f.Snippets[i]
		c := f.Palette.SnippetColor(s.Color)
		size := float32(s.FontSize)
		pos := rl.Vector2{X: float32(s.X), Y: float32(s.Y) - size*baseline}

		if s.Glow > 0 {
			r.drawHalo(s.Text, pos, size, c, s.Glow)
		}
		rl.DrawTextEx(r.font, s.Text, pos, size, r.spacing, rlColorAlpha(c, s.Opacity))
	}
}

// drawHalo approximates a shadow blur of the given size with faint offset
// copies of the text at two radii.
func (r *LayerRenderer) drawHalo(text string, pos rl.Vector2, size float32, c theme.Color, blur float64) {
	for _, radius := range [2]float64{blur / 3, blur * 2 / 3} {
		alpha := 0.5 / glowPasses * (1 - radius/(blur+1))
		col := rlColorAlpha(c, alpha)
		for _, d := range r.glowSteps {
			p := rl.Vector2{X: pos.X + d.X*float32(radius), Y: pos.Y + d.Y*float32(radius)}
			rl.DrawTextEx(r.font, text, p, size, r.spacing, col)
		}
	}
}

// DrawLinks draws the connecting lines. Link alpha scales the palette line
// color's own alpha.
func (r *LayerRenderer) DrawLinks(f *systems.Frame) {
	line := f.Palette.Line
	for i := range f.Links {
		l := &f.Links[i]
		rl.DrawLineEx(
			rl.Vector2{X: float32(l.X1), Y: float32(l.Y1)},
			rl.Vector2{X: float32(l.X2), Y: float32(l.Y2)},
			1, rlColor(line.ScaleAlpha(l.Alpha)),
		)
	}
}

// glowBands is how many rings approximate the radial glow gradient.
const glowBands = 24

// DrawGlow draws the radial pointer glow: inner color at the center, mid
// color at half radius, transparent at the rim. The gradient is drawn as
// disjoint rings so no band is painted over another.
func (r *LayerRenderer) DrawGlow(f *systems.Frame) {
	if !f.PointerGlow || f.GlowRadius <= 0 {
		return
	}
	center := rl.Vector2{X: float32(f.Pointer.X), Y: float32(f.Pointer.Y)}
	pal := f.Palette
	for _, b := range GlowRings(f.GlowRadius, glowBands) {
		c := rlColor(pal.GlowAt(b.D))
		if c.A == 0 {
			continue
		}
		rl.DrawRing(center, float32(b.Inner), float32(b.Outer), 0, 360, 48, c)
	}
}

// GlowRing is one band of the pointer glow. D is the normalized distance the
// band's color is sampled at.
type GlowRing struct {
	Inner, Outer float64
	D            float64
}

// GlowRings splits a glow of the given radius into n contiguous rings from
// the center outward.
func GlowRings(radius float64, n int) []GlowRing {
	if radius <= 0 || n < 1 {
		return nil
	}
	rings := make([]GlowRing, n)
	step := radius / float64(n)
	for i := range rings {
		rings[i] = GlowRing{
			Inner: float64(i) * step,
			Outer: float64(i+1) * step,
			D:     (float64(i) + 0.5) / float64(n),
		}
	}
	return rings
}

// Unload frees the font if one was loaded.
func (r *LayerRenderer) Unload() {
	if r.ownsFont {
		rl.UnloadFont(r.font)
		r.ownsFont = false
	}
}
