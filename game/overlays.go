package game

import (
	"github.com/pthm-cable/codedrift/renderer"
	"github.com/pthm-cable/codedrift/ui"
)

// layerMask converts the registry state into a renderer mask.
func (g *Game) layerMask() renderer.LayerMask {
	return renderer.LayerMask{
		Rain:     g.layerReg.IsEnabled(ui.LayerRain),
		Symbols:  g.layerReg.IsEnabled(ui.LayerSymbols),
		Snippets: g.layerReg.IsEnabled(ui.LayerSnippets),
		Links:    g.layerReg.IsEnabled(ui.LayerLinks),
		Glow:     g.layerReg.IsEnabled(ui.LayerGlow),
	}
}

// drawEngineLayers composites the engine output. With the trail layer on,
// each stepped frame is drawn into the persistent trail surface over a
// translucent fade fill, so earlier frames linger. While paused the surface
// is composited unchanged. With the trail off, or without a surface, the
// frame is drawn straight to the screen.
func (g *Game) drawEngineLayers() {
	f := g.engine.Frame()
	if f == nil {
		return
	}
	mask := g.layerMask()

	if !g.layerReg.IsEnabled(ui.LayerTrail) {
		g.layers.DrawFrame(f, mask)
		return
	}

	if g.stepped {
		if g.trail.Begin(f.Palette.Fade, f.FadeAlpha) {
			g.layers.DrawFrame(f, mask)
			g.trail.End()
		} else {
			g.layers.DrawFrame(f, mask)
			return
		}
	}
	if g.trail.Available() {
		g.trail.Draw()
	} else {
		g.layers.DrawFrame(f, mask)
	}
}
