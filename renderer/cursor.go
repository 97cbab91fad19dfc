package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/codedrift/cursor"
)

// DrawCursor draws the ring and dot followers. The ring is an outline whose
// radius follows the cursor's size spring; the dot is filled.
func DrawCursor(c *cursor.Cursor) {
	if c == nil || !c.Visible() {
		return
	}

	ring := rl.Vector2{X: float32(c.Ring.Pos.X), Y: float32(c.Ring.Pos.Y)}
	outer := float32(c.RingRadius())
	inner := outer - cursor.RingStroke
	if inner < 0 {
		inner = 0
	}
	rl.DrawRing(ring, inner, outer, 0, 360, 48, rlColor(cursor.RingColor))

	dot := rl.Vector2{X: float32(c.Dot.Pos.X), Y: float32(c.Dot.Pos.Y)}
	rl.DrawCircleV(dot, float32(c.DotRadius()), rlColor(cursor.DotColor))
}
