package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/codedrift/ui"
)

// handleInput processes window, pointer and keyboard input.
func (g *Game) handleInput() {
	// Window resize propagation
	g.handleResize()
	g.handlePointer()

	// Fullscreen toggle
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.togglePause()
	}
	if rl.IsKeyPressed(rl.KeyT) {
		g.store.Toggle()
	}
	if rl.IsKeyPressed(rl.KeyH) {
		g.showHUD = !g.showHUD
	}
	if rl.IsKeyPressed(rl.KeyL) {
		g.controls.Toggle()
	}

	wasCursor := g.layerReg.IsEnabled(ui.LayerCursor)
	g.layerReg.HandleKeys()
	if g.layerReg.IsEnabled(ui.LayerCursor) != wasCursor {
		g.syncSystemCursor()
	}
}

// handlePointer forwards pointer moves and leaves to the engine and works
// out whether the pointer is over an interactive element.
func (g *Game) handlePointer() {
	if !rl.IsCursorOnScreen() {
		if g.engine.Pointer().Seen {
			g.engine.PointerLeave()
			g.cursor.Hide()
		}
		g.hover = false
		return
	}

	mouse := rl.GetMousePosition()
	delta := rl.GetMouseDelta()
	if !g.engine.Pointer().Seen || delta.X != 0 || delta.Y != 0 {
		g.engine.PointerMove(float64(mouse.X), float64(mouse.Y))
	}

	g.hover = g.toggle.Contains(mouse)
	if g.showHUD {
		g.hover = g.hover || g.hud.OverButton(mouse)
		if g.controls.IsVisible() && ui.Contains(g.controls.Bounds(g.layerReg), mouse) {
			g.hover = true
		}
	}
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth = w
	g.screenHeight = h

	g.engine.Resize(float64(w), float64(h))
	g.background.Resize(w, h)
	g.trail.Resize(int32(w), int32(h))
	g.toggle.X = w - ui.ToggleWidth - togglePad
}
