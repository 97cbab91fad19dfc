package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/codedrift/cursor"
	"github.com/pthm-cable/codedrift/theme"
)

// Toggle pill geometry.
const (
	ToggleWidth  = 70
	ToggleHeight = 36
	knobSize     = 28
	knobOffDark  = 4
	knobOnLight  = ToggleWidth - knobSize - knobOffDark
)

var (
	darkTrack  = rl.Color{R: 30, G: 41, B: 59, A: 255}
	lightTrack = rl.Color{R: 125, G: 211, B: 252, A: 255}
	moonColor  = rl.Color{R: 226, G: 232, B: 240, A: 255}
	sunColor   = rl.Color{R: 253, G: 224, B: 71, A: 255}
	starColor  = rl.Color{R: 255, G: 255, B: 255, A: 200}
	cloudColor = rl.Color{R: 255, G: 255, B: 255, A: 230}
)

// ThemeToggle is the pill switch between the dark and light themes. The knob
// slides on a spring; stars decorate the dark track and clouds the light one.
type ThemeToggle struct {
	X, Y  float32
	knob  cursor.Spring1D
	theme theme.Theme
}

// NewThemeToggle creates a toggle at (x, y) showing t.
func NewThemeToggle(x, y float32, t theme.Theme) *ThemeToggle {
	tg := &ThemeToggle{
		X:     x,
		Y:     y,
		knob:  cursor.Spring1D{Spring: cursor.Spring{Stiffness: 300, Damping: 25}},
		theme: t,
	}
	tg.knob.X = knobTarget(t)
	return tg
}

func knobTarget(t theme.Theme) float64 {
	if t == theme.Light {
		return knobOnLight
	}
	return knobOffDark
}

// Bounds returns the pill rectangle.
func (tg *ThemeToggle) Bounds() rl.Rectangle {
	return rl.Rectangle{X: tg.X, Y: tg.Y, Width: ToggleWidth, Height: ToggleHeight}
}

// Contains reports whether p hits the pill.
func (tg *ThemeToggle) Contains(p rl.Vector2) bool {
	return Contains(tg.Bounds(), p)
}

// SetTheme updates the displayed theme; the knob animates toward it.
func (tg *ThemeToggle) SetTheme(t theme.Theme) {
	tg.theme = t
}

// Theme returns the displayed theme.
func (tg *ThemeToggle) Theme() theme.Theme {
	return tg.theme
}

// KnobX returns the knob's offset from the pill's left edge.
func (tg *ThemeToggle) KnobX() float64 {
	return tg.knob.X
}

// Update advances the knob spring and reports whether the pill was clicked.
func (tg *ThemeToggle) Update(dt float64, pointer rl.Vector2, clicked bool) bool {
	tg.knob.Step(knobTarget(tg.theme), dt, 4)
	return clicked && tg.Contains(pointer)
}

// Draw renders the pill.
func (tg *ThemeToggle) Draw() {
	b := tg.Bounds()
	track := darkTrack
	if tg.theme == theme.Light {
		track = lightTrack
	}
	rl.DrawRectangleRounded(b, 1, 16, track)

	if tg.theme == theme.Light {
		tg.drawClouds()
	} else {
		tg.drawStars()
	}

	cx := tg.X + float32(tg.knob.X) + knobSize/2
	cy := tg.Y + ToggleHeight/2
	if tg.theme == theme.Light {
		rl.DrawCircle(int32(cx), int32(cy), knobSize/2, sunColor)
		return
	}
	rl.DrawCircle(int32(cx), int32(cy), knobSize/2, moonColor)
	// crescent
	rl.DrawCircle(int32(cx+6), int32(cy-4), knobSize/2-4, track)
}

func (tg *ThemeToggle) drawStars() {
	stars := [][2]float32{{48, 9}, {58, 18}, {44, 25}, {54, 28}}
	for _, s := range stars {
		rl.DrawCircleV(rl.Vector2{X: tg.X + s[0], Y: tg.Y + s[1]}, 1.5, starColor)
	}
}

func (tg *ThemeToggle) drawClouds() {
	base := rl.Vector2{X: tg.X + 16, Y: tg.Y + 22}
	rl.DrawCircleV(base, 6, cloudColor)
	rl.DrawCircleV(rl.Vector2{X: base.X + 7, Y: base.Y - 3}, 7, cloudColor)
	rl.DrawCircleV(rl.Vector2{X: base.X + 14, Y: base.Y}, 5, cloudColor)
}
