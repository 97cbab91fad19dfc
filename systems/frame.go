// Package systems holds the per-population update passes of the animation
// engine and the draw list they fill.
package systems

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/codedrift/theme"
)

// Pointer is the last observed pointer position. Seen stays false until the
// first move so the origin default never repels snippets or draws a glow.
type Pointer struct {
	Pos  r2.Vec
	Seen bool
}

// GlyphDraw is one binary-rain character.
type GlyphDraw struct {
	X, Y  float64
	Glyph byte
	Alpha float64 // multiplied into the palette's binary tint
}

// SymbolDraw is one floating symbol, rotated about its own center.
type SymbolDraw struct {
	X, Y     float64
	Rotation float64
	Glyph    string
}

// SnippetDraw is one code snippet label.
type SnippetDraw struct {
	X, Y     float64
	Text     string
	Color    uint8
	FontSize float64
	Opacity  float64
	Glow     float64 // halo size; 0 = no glow
}

// LinkDraw is one connecting line between two nearby snippets.
type LinkDraw struct {
	X1, Y1, X2, Y2 float64
	Alpha          float64 // multiplied into the palette's line color
}

// FrameStats counts what happened during one tick.
type FrameStats struct {
	RainRecycled    int
	SnippetRepelled int
	SnippetHeld     int
	SnippetRecycled int
	Links           int
}

// Frame is the draw list produced by one engine tick. Layers are stored in
// compositing order: fade, rain, symbols, snippets, links, pointer glow.
// The slices are reused across ticks and only valid until the next one.
type Frame struct {
	Time          float64
	Width, Height float64
	FadeAlpha     float64
	Palette       theme.Palette

	Rain     []GlyphDraw
	Symbols  []SymbolDraw
	Snippets []SnippetDraw
	Links    []LinkDraw

	PointerGlow bool
	Pointer     r2.Vec
	GlowRadius  float64

	Stats FrameStats

	// points holds eased snippet positions for the link pass.
	points []r2.Vec
}

// NewFrame allocates a frame with room for the given populations.
func NewFrame(columns, symbols, snippets int) *Frame {
	return &Frame{
		Rain:     make([]GlyphDraw, 0, columns*8),
		Symbols:  make([]SymbolDraw, 0, symbols),
		Snippets: make([]SnippetDraw, 0, snippets),
		Links:    make([]LinkDraw, 0, snippets),
		points:   make([]r2.Vec, 0, snippets),
	}
}

// Reset clears the layers while keeping their capacity.
func (f *Frame) Reset() {
	f.Rain = f.Rain[:0]
	f.Symbols = f.Symbols[:0]
	f.Snippets = f.Snippets[:0]
	f.Links = f.Links[:0]
	f.points = f.points[:0]
	f.PointerGlow = false
	f.Stats = FrameStats{}
}
