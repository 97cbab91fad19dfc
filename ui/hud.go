package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/codedrift/telemetry"
)

// HUDAction is a request raised by a HUD button.
type HUDAction int

const (
	HUDNone HUDAction = iota
	HUDToggleTheme
	HUDTogglePause
	HUDToggleCursor
	HUDToggleLayers
)

// HUDData is the state shown by the HUD.
type HUDData struct {
	Title    string
	Theme    string
	FPS      int32
	Ticks    int64
	AnimTime float64
	Columns  int
	Symbols  int
	Snippets int
	Links    int
	Paused   bool
	Perf     telemetry.PerfStats
}

const (
	hudWidth      = 220
	buttonHeight  = 22
	buttonSpacing = 4
	hudStatRows   = 8
)

// HUD draws the stats panel and its buttons.
type HUD struct {
	renderer *Renderer
	x, y     int32
}

// NewHUD creates a HUD anchored at (x, y).
func NewHUD(r *Renderer, x, y int32) *HUD {
	return &HUD{renderer: r, x: x, y: y}
}

// SetPosition moves the HUD.
func (h *HUD) SetPosition(x, y int32) {
	h.x, h.y = x, y
}

var hudButtons = []struct {
	label  string
	action HUDAction
}{
	{"Theme (T)", HUDToggleTheme},
	{"Pause (Space)", HUDTogglePause},
	{"Cursor (C)", HUDToggleCursor},
	{"Layers (L)", HUDToggleLayers},
}

func (h *HUD) height() int32 {
	s := h.renderer.Style
	stats := (hudStatRows+1)*s.LineHeight + s.Padding
	buttons := int32(len(hudButtons)) * (buttonHeight + buttonSpacing)
	return s.Padding*2 + stats + buttons
}

// Bounds returns the HUD rectangle.
func (h *HUD) Bounds() rl.Rectangle {
	return rl.Rectangle{X: float32(h.x), Y: float32(h.y), Width: hudWidth, Height: float32(h.height())}
}

// ButtonBounds returns the rectangle of every button, in display order.
func (h *HUD) ButtonBounds() []rl.Rectangle {
	s := h.renderer.Style
	y := h.y + s.Padding + (hudStatRows+1)*s.LineHeight + s.Padding
	rects := make([]rl.Rectangle, len(hudButtons))
	for i := range hudButtons {
		rects[i] = rl.Rectangle{
			X:      float32(h.x + s.Padding),
			Y:      float32(y),
			Width:  float32(hudWidth - s.Padding*2),
			Height: buttonHeight,
		}
		y += buttonHeight + buttonSpacing
	}
	return rects
}

// OverButton reports whether p is over one of the buttons.
func (h *HUD) OverButton(p rl.Vector2) bool {
	for _, r := range h.ButtonBounds() {
		if Contains(r, p) {
			return true
		}
	}
	return false
}

// Draw renders the HUD and returns the action of the clicked button, if any.
func (h *HUD) Draw(d HUDData) HUDAction {
	r := h.renderer
	s := r.Style
	r.DrawPanel(h.x, h.y, hudWidth, h.height())

	x := h.x + s.Padding
	y := h.y + s.Padding
	title := d.Title
	if d.Paused {
		title += "  [paused]"
	}
	y = r.DrawSectionHeader(x, y, title)

	y = r.DrawLabelValue(x, y, "Theme", d.Theme)
	y = r.DrawLabelValue(x, y, "FPS", fmt.Sprintf("%d", d.FPS))
	y = r.DrawLabelValue(x, y, "Frame", fmt.Sprintf("%d  (%.1fs)", d.Ticks, d.AnimTime))
	y = r.DrawLabelValue(x, y, "Rain", fmt.Sprintf("%d columns", d.Columns))
	y = r.DrawLabelValue(x, y, "Symbols", fmt.Sprintf("%d", d.Symbols))
	y = r.DrawLabelValue(x, y, "Snippets", fmt.Sprintf("%d", d.Snippets))
	y = r.DrawLabelValue(x, y, "Links", fmt.Sprintf("%d", d.Links))
	r.DrawLabelValue(x, y, "Tick", fmt.Sprintf("%dus  p95 %dus",
		d.Perf.AvgTickDuration.Microseconds(), d.Perf.P95TickDuration.Microseconds()))

	action := HUDNone
	for i, b := range h.ButtonBounds() {
		if gui.Button(b, hudButtons[i].label) {
			action = hudButtons[i].action
		}
	}
	return action
}
