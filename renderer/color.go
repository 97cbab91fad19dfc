package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/codedrift/theme"
)

// rlColor converts a palette color to a raylib color.
func rlColor(c theme.Color) rl.Color {
	r, g, b, a := c.RGBA8()
	return rl.Color{R: r, G: g, B: b, A: a}
}

// rlColorAlpha converts a palette color with its alpha replaced by a.
func rlColorAlpha(c theme.Color, a float64) rl.Color {
	return rlColor(c.WithAlpha(a))
}
