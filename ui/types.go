// Package ui draws the window host's interface: the theme toggle, the HUD
// and the layer controls panel.
package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/codedrift/theme"
)

// Style holds UI styling constants for one theme.
type Style struct {
	PanelBg       rl.Color
	PanelBorder   rl.Color
	SectionHeader rl.Color
	LabelColor    rl.Color
	ValueColor    rl.Color
	MutedColor    rl.Color
	Accent        rl.Color
	Padding       int32
	LineHeight    int32
	LabelWidth    int32
	FontSize      int32
	HeaderSize    int32
}

// StyleFor returns the UI style matching a theme.
func StyleFor(t theme.Theme) Style {
	s := Style{
		Padding:    10,
		LineHeight: 16,
		LabelWidth: 80,
		FontSize:   12,
		HeaderSize: 14,
	}
	if t == theme.Light {
		s.PanelBg = rl.Color{R: 248, G: 250, B: 252, A: 230}
		s.PanelBorder = rl.Color{R: 203, G: 213, B: 225, A: 255}
		s.SectionHeader = rl.Color{R: 124, G: 58, B: 237, A: 255}
		s.LabelColor = rl.Color{R: 71, G: 85, B: 105, A: 255}
		s.ValueColor = rl.Color{R: 15, G: 23, B: 42, A: 255}
		s.MutedColor = rl.Color{R: 148, G: 163, B: 184, A: 255}
		s.Accent = rl.Color{R: 8, G: 145, B: 178, A: 255}
		return s
	}
	s.PanelBg = rl.Color{R: 13, G: 13, B: 20, A: 230}
	s.PanelBorder = rl.Color{R: 45, G: 45, B: 60, A: 255}
	s.SectionHeader = rl.Color{R: 167, G: 139, B: 250, A: 255}
	s.LabelColor = rl.LightGray
	s.ValueColor = rl.White
	s.MutedColor = rl.Gray
	s.Accent = rl.Color{R: 0, G: 212, B: 170, A: 255}
	return s
}
