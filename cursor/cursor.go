// Package cursor implements the custom pointer follower: a ring and a dot
// that chase the pointer on damped springs, the ring growing while the
// pointer is over an interactive element.
package cursor

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/codedrift/config"
	"github.com/pthm-cable/codedrift/theme"
)

// Follower colors. They are the same in both themes.
var (
	RingColor = theme.Hex("#00d4aa", 1)
	DotColor  = theme.Hex("#ffd93d", 1)
)

// RingStroke is the ring outline width in pixels.
const RingStroke = 2

// Cursor is the pointer follower state.
type Cursor struct {
	Ring Follower
	Dot  Follower
	Size Spring1D // ring diameter

	cfg     config.CursorConfig
	visible bool
	hover   bool
}

// New creates a hidden cursor. It snaps to the first pointer position it sees.
func New(cfg config.CursorConfig) *Cursor {
	if cfg.Substeps < 1 {
		cfg.Substeps = 1
	}
	return &Cursor{
		Ring: Follower{Spring: Spring{Stiffness: cfg.RingStiffness, Damping: cfg.RingDamping}},
		Dot:  Follower{Spring: Spring{Stiffness: cfg.DotStiffness, Damping: cfg.DotDamping}},
		Size: Spring1D{
			Spring: Spring{Stiffness: cfg.RingStiffness, Damping: cfg.RingDamping},
			X:      cfg.RingSize,
		},
		cfg: cfg,
	}
}

// Update advances both followers toward the pointer by dt seconds.
// hover reports whether the pointer is over an interactive element.
func (c *Cursor) Update(pointer r2.Vec, hover bool, dt float64) {
	if !c.visible {
		c.Ring.Snap(pointer)
		c.Dot.Snap(pointer)
		c.visible = true
	}
	c.hover = hover

	size := c.cfg.RingSize
	if hover {
		size = c.cfg.RingHoverSize
	}

	c.Ring.Step(pointer, dt, c.cfg.Substeps)
	c.Dot.Step(pointer, dt, c.cfg.Substeps)
	c.Size.Step(size, dt, c.cfg.Substeps)
}

// Hide makes the cursor invisible until the next Update.
func (c *Cursor) Hide() {
	c.visible = false
}

// Visible reports whether the cursor should be drawn.
func (c *Cursor) Visible() bool { return c.visible }

// Hovering reports the hover state of the last Update.
func (c *Cursor) Hovering() bool { return c.hover }

// RingRadius returns the current ring radius.
func (c *Cursor) RingRadius() float64 { return c.Size.X / 2 }

// DotRadius returns the dot radius.
func (c *Cursor) DotRadius() float64 { return c.cfg.DotSize / 2 }
