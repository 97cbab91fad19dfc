package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/codedrift/theme"
)

// TrailRenderer owns the persistent drawing surface. Instead of clearing,
// each frame starts with a translucent fill of the fade color, so everything
// drawn earlier decays into a trail.
type TrailRenderer struct {
	target rl.RenderTexture2D

	width, height int32
	initialized   bool
	active        bool // between Begin and End
}

// NewTrailRenderer creates a new trail renderer.
func NewTrailRenderer(width, height int32) *TrailRenderer {
	return &TrailRenderer{width: width, height: height}
}

// Init allocates the surface (must be called after raylib window is created).
// The surface starts transparent so the background shows through.
func (t *TrailRenderer) Init() {
	if t.initialized {
		return
	}
	t.target = rl.LoadRenderTexture(t.width, t.height)
	if t.target.ID != 0 {
		rl.BeginTextureMode(t.target)
		rl.ClearBackground(rl.Blank)
		rl.EndTextureMode()
	}
	t.initialized = true
}

// Available reports whether the surface could be allocated.
func (t *TrailRenderer) Available() bool {
	return t.initialized && t.target.ID != 0
}

// Resize reallocates the surface, discarding the trail.
func (t *TrailRenderer) Resize(width, height int32) {
	if width == t.width && height == t.height {
		return
	}
	t.width, t.height = width, height
	if t.initialized {
		t.Unload()
		t.Init()
	}
}

// Clear wipes the trail, used when the theme changes.
func (t *TrailRenderer) Clear() {
	if !t.Available() {
		return
	}
	rl.BeginTextureMode(t.target)
	rl.ClearBackground(rl.Blank)
	rl.EndTextureMode()
}

// Begin redirects drawing into the surface and applies the fade fill.
// Returns false when no surface exists; callers then draw straight to the
// screen and skip End.
func (t *TrailRenderer) Begin(fade theme.Color, alpha float64) bool {
	if !t.initialized {
		t.Init()
	}
	if !t.Available() {
		return false
	}
	rl.BeginTextureMode(t.target)
	rl.DrawRectangle(0, 0, t.width, t.height, rlColorAlpha(fade, alpha))
	t.active = true
	return true
}

// End finishes drawing into the surface.
func (t *TrailRenderer) End() {
	if !t.active {
		return
	}
	rl.EndTextureMode()
	t.active = false
}

// Draw composites the surface onto the screen.
func (t *TrailRenderer) Draw() {
	if !t.Available() {
		return
	}
	src := rl.Rectangle{X: 0, Y: 0, Width: float32(t.width), Height: -float32(t.height)}
	rl.DrawTextureRec(t.target.Texture, src, rl.Vector2{}, rl.White)
}

// Unload frees resources.
func (t *TrailRenderer) Unload() {
	if t.initialized {
		if t.target.ID != 0 {
			rl.UnloadRenderTexture(t.target)
		}
		t.target = rl.RenderTexture2D{}
		t.initialized = false
	}
}
