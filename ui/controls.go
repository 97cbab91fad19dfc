package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ControlsPanel renders the layer toggle panel.
type ControlsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
	visible  bool
}

// NewControlsPanel creates a new, hidden controls panel.
func NewControlsPanel(r *Renderer, x, y, width int32) *ControlsPanel {
	return &ControlsPanel{
		renderer: r,
		x:        x,
		y:        y,
		width:    width,
	}
}

// SetPosition moves the panel.
func (c *ControlsPanel) SetPosition(x, y int32) {
	c.x, c.y = x, y
}

// IsVisible returns whether the panel is shown.
func (c *ControlsPanel) IsVisible() bool {
	return c.visible
}

// Toggle switches panel visibility.
func (c *ControlsPanel) Toggle() bool {
	c.visible = !c.visible
	return c.visible
}

// Bounds returns the panel rectangle for the given registry.
func (c *ControlsPanel) Bounds(layers *LayerRegistry) rl.Rectangle {
	return rl.Rectangle{
		X:      float32(c.x),
		Y:      float32(c.y),
		Width:  float32(c.width),
		Height: float32(c.height(layers)),
	}
}

func (c *ControlsPanel) height(layers *LayerRegistry) int32 {
	s := c.renderer.Style
	rows := int32(0)
	for _, cat := range layers.Categories() {
		rows += int32(len(layers.ByCategory(cat))) + 1
	}
	return rows*(s.LineHeight+4) + s.Padding*2 + s.LineHeight
}

// Draw renders the panel. Clicking a row toggles its layer.
func (c *ControlsPanel) Draw(layers *LayerRegistry) {
	if !c.visible {
		return
	}

	r := c.renderer
	s := r.Style
	r.DrawPanel(c.x, c.y, c.width, c.height(layers))

	y := c.y + s.Padding
	rl.DrawText("Layers", c.x+s.Padding, y, 16, s.ValueColor)
	y += s.LineHeight + 4

	for _, category := range layers.Categories() {
		rl.DrawText(categoryLabel(category), c.x+s.Padding, y, s.HeaderSize, s.SectionHeader)
		y += s.LineHeight + 4

		for _, desc := range layers.ByCategory(category) {
			mark := " "
			if layers.IsEnabled(desc.ID) {
				mark = "x"
			}
			label := fmt.Sprintf("[%s] %s  (%s)", mark, desc.Name, desc.KeyLabel)
			bounds := rl.Rectangle{
				X:      float32(c.x + s.Padding),
				Y:      float32(y),
				Width:  float32(c.width - s.Padding*2),
				Height: float32(s.LineHeight),
			}
			if gui.Button(bounds, label) {
				layers.Toggle(desc.ID)
			}
			y += s.LineHeight + 4
		}
	}
}

// categoryLabel returns a display label for a category.
func categoryLabel(cat string) string {
	switch cat {
	case "engine":
		return "Engine"
	case "host":
		return "Window"
	default:
		return cat
	}
}
