package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/codedrift/theme"
)

// gradientBand is the height in pixels of one baked gradient strip.
const gradientBand = 4

// BackgroundRenderer draws the static 135 degree fallback gradient that sits
// beneath the trail surface. The gradient is baked into a texture whenever
// the palette or the window size changes.
type BackgroundRenderer struct {
	target  rl.RenderTexture2D
	palette theme.Palette

	screenW, screenH float32
	baked            bool
	initialized      bool
}

// NewBackgroundRenderer creates a new background renderer.
func NewBackgroundRenderer(screenW, screenH int32, pal theme.Palette) *BackgroundRenderer {
	return &BackgroundRenderer{
		screenW: float32(screenW),
		screenH: float32(screenH),
		palette: pal,
	}
}

// Init allocates the bake target (must be called after raylib window is created).
func (b *BackgroundRenderer) Init() {
	if b.initialized {
		return
	}
	b.target = rl.LoadRenderTexture(int32(b.screenW), int32(b.screenH))
	b.baked = false
	b.initialized = true
}

// SetPalette switches gradient stops. The next Draw re-bakes.
func (b *BackgroundRenderer) SetPalette(pal theme.Palette) {
	b.palette = pal
	b.baked = false
}

// Resize reallocates the bake target for the new window size.
func (b *BackgroundRenderer) Resize(w, h float32) {
	if w == b.screenW && h == b.screenH {
		return
	}
	b.screenW, b.screenH = w, h
	if b.initialized {
		b.Unload()
		b.Init()
	}
}

// Draw renders the gradient. Without a bake target the strips are drawn
// straight to the screen.
func (b *BackgroundRenderer) Draw() {
	if !b.initialized {
		b.Init()
	}
	if b.target.ID == 0 {
		b.drawStrips()
		return
	}

	if !b.baked {
		rl.BeginTextureMode(b.target)
		rl.ClearBackground(rlColor(b.palette.Background))
		b.drawStrips()
		rl.EndTextureMode()
		b.baked = true
	}

	src := rl.Rectangle{X: 0, Y: 0, Width: b.screenW, Height: -b.screenH}
	rl.DrawTextureRec(b.target.Texture, src, rl.Vector2{}, rl.White)
}

// drawStrips draws the gradient as horizontal bands. Along each band the
// diagonal coordinate is linear in x, so every band splits into at most two
// horizontal gradients at the middle stop.
func (b *BackgroundRenderer) drawStrips() {
	w, h := float64(b.screenW), float64(b.screenH)
	if w <= 0 || h <= 0 {
		return
	}

	for y := 0.0; y < h; y += gradientBand {
		mid := y + gradientBand/2
		left := theme.DiagonalT(0, mid, w, h)
		right := theme.DiagonalT(w, mid, w, h)

		// x where the diagonal crosses the middle stop
		split := w * (1 - mid/h)

		iy, ih := int32(y), int32(gradientBand)
		cMid := rlColor(b.palette.GradientAt(0.5))
		if split > 0 {
			rl.DrawRectangleGradientH(0, iy, int32(split+1), ih,
				rlColor(b.palette.GradientAt(left)), cMid)
		}
		if split < w {
			rl.DrawRectangleGradientH(int32(split), iy, int32(w-split+1), ih,
				cMid, rlColor(b.palette.GradientAt(right)))
		}
	}
}

// Unload frees resources.
func (b *BackgroundRenderer) Unload() {
	if b.initialized {
		if b.target.ID != 0 {
			rl.UnloadRenderTexture(b.target)
		}
		b.target = rl.RenderTexture2D{}
		b.initialized = false
	}
}
