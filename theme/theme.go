// Package theme defines the dark and light palettes and the theme provider
// shared by every host.
package theme

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme selects one of the two palettes.
type Theme uint8

const (
	Dark Theme = iota
	Light
)

// String returns the config name of the theme.
func (t Theme) String() string {
	if t == Light {
		return "light"
	}
	return "dark"
}

// Other returns the opposite theme.
func (t Theme) Other() Theme {
	if t == Light {
		return Dark
	}
	return Light
}

// Parse converts a config name into a Theme.
func Parse(name string) (Theme, error) {
	switch name {
	case "dark":
		return Dark, nil
	case "light":
		return Light, nil
	}
	return Dark, fmt.Errorf("unknown theme %q", name)
}

// Color is an sRGB color with straight alpha in [0, 1].
type Color struct {
	colorful.Color
	A float64
}

// Hex builds a Color from a "#rrggbb" literal. Panics on malformed input,
// so it is only used for the palette tables below.
func Hex(s string, alpha float64) Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("theme: bad color literal %q: %v", s, err))
	}
	return Color{Color: c, A: alpha}
}

// RGB builds a Color from 8-bit channels.
func RGB(r, g, b uint8, alpha float64) Color {
	return Color{
		Color: colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255},
		A:     alpha,
	}
}

// WithAlpha returns the color with a replaced alpha.
func (c Color) WithAlpha(a float64) Color {
	c.A = clamp01(a)
	return c
}

// ScaleAlpha returns the color with its alpha multiplied by f.
func (c Color) ScaleAlpha(f float64) Color {
	c.A = clamp01(c.A * f)
	return c
}

// RGBA8 returns the color as 8-bit channels.
func (c Color) RGBA8() (r, g, b, a uint8) {
	r, g, b = c.Clamped().RGB255()
	return r, g, b, uint8(clamp01(c.A)*255 + 0.5)
}

// Over composites c onto an opaque background and returns the opaque result.
func (c Color) Over(bg colorful.Color) colorful.Color {
	return bg.BlendRgb(c.Color, clamp01(c.A)).Clamped()
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
