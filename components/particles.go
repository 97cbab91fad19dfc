// Package components defines ECS components for the animation engine.
package components

// GlyphsPerColumn is the number of characters in one binary-rain column.
const GlyphsPerColumn = 8

// BinaryColumn is one falling column of '0'/'1' glyphs. Its X never changes;
// Y advances by Speed every frame and wraps back above the surface.
type BinaryColumn struct {
	X, Y   float64
	Speed  float64
	Glyphs [GlyphsPerColumn]byte
}

// FloatingSymbol is a slowly rotating, bobbing bracket or operator glyph.
type FloatingSymbol struct {
	X, Y          float64 // Base position; the bob is applied at draw time
	Glyph         string
	Rotation      float64 // radians
	RotationSpeed float64 // radians per frame, signed
	FloatOffset   float64 // phase of the vertical bob
}

// Snippet holds the content and look of a drifting code label. Position and
// Target live in their own components.
type Snippet struct {
	Text     string
	Color    uint8   // index into the active palette's snippet colors
	Speed    float64 // downward drift per frame
	Opacity  float64 // base opacity
	FontSize float64
}
