package systems

import (
	"math/rand"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/codedrift/components"
	"github.com/pthm-cable/codedrift/config"
	"github.com/pthm-cable/codedrift/theme"
)

// SnippetSystem drifts the code snippets, pushes them away from the pointer
// and recycles them once they leave the bottom of the surface.
type SnippetSystem struct {
	filter ecs.Filter3[components.Position, components.Target, components.Snippet]
	cfg    config.SnippetConfig
	rng    *rand.Rand
	colors int
}

// NewSnippetSystem creates a new snippet system bound to w.
func NewSnippetSystem(w *ecs.World, cfg config.SnippetConfig, rng *rand.Rand) *SnippetSystem {
	return &SnippetSystem{
		filter: *ecs.NewFilter3[components.Position, components.Target, components.Snippet](w),
		cfg:    cfg,
		rng:    rng,
	}
}

// Populate creates n snippets at random positions, each targeting its own
// position, and returns their entities in slot order.
func (s *SnippetSystem) Populate(w *ecs.World, n int, width, height float64, pal *theme.Palette) []ecs.Entity {
	s.colors = len(pal.Snippets)
	mapper := ecs.NewMap3[components.Position, components.Target, components.Snippet](w)

	slots := make([]ecs.Entity, 0, n)
	for i := 0; i < n; i++ {
		x := s.rng.Float64() * width
		y := s.rng.Float64() * height

		pos := components.Position{X: x, Y: y}
		target := components.Target{X: x, Y: y}
		snip := components.Snippet{
			Text:     s.randomText(),
			Color:    s.randomColor(),
			Speed:    s.cfg.SpeedMin + s.rng.Float64()*s.cfg.SpeedRange,
			Opacity:  pal.SnippetOpacityMin + s.rng.Float64()*pal.SnippetOpacityRange,
			FontSize: s.cfg.FontMin + s.rng.Float64()*s.cfg.FontRange,
		}
		slots = append(slots, mapper.NewEntity(&pos, &target, &snip))
	}
	return slots
}

// Update runs the pointer-interaction pass over every snippet and emits the
// labels into frame. Eased positions are also recorded for the link pass.
func (s *SnippetSystem) Update(ptr Pointer, width, height float64, frame *Frame) {
	radius := s.cfg.RepulsionRadius

	query := s.filter.Query()
	for query.Next() {
		pos, target, snip := query.Get()

		cur := pos.Vec()
		d := r2.Norm(r2.Sub(ptr.Pos, cur))
		near := ptr.Seen && d < radius

		switch {
		case near && d > 0:
			pushed, _ := Repel(cur, ptr.Pos, radius, s.cfg.PushDistance)
			target.Set(pushed)
			frame.Stats.SnippetRepelled++
		case near:
			// Pointer exactly on the snippet: no direction to flee, hold the target.
			frame.Stats.SnippetHeld++
		default:
			target.Y += snip.Speed
			if target.Y > height+s.cfg.RecycleMargin {
				s.recycle(target, snip, width)
				frame.Stats.SnippetRecycled++
			}
		}

		next := Ease(cur, target.Vec(), s.cfg.Easing)
		next.X = clampFloat(next.X, 0, width)
		pos.Set(next)

		opacity := snip.Opacity
		var glow float64
		if near {
			p := Proximity(d, radius)
			opacity += p * s.cfg.HoverBoost
			glow = p * s.cfg.GlowBlur
		}

		frame.Snippets = append(frame.Snippets, SnippetDraw{
			X:        next.X,
			Y:        next.Y,
			Text:     snip.Text,
			Color:    snip.Color,
			FontSize: snip.FontSize,
			Opacity:  opacity,
			Glow:     glow,
		})
		frame.points = append(frame.points, next)
	}
}

// recycle puts the snippet's target back above the surface with fresh content.
// This is the only place a snippet's text or color changes.
func (s *SnippetSystem) recycle(target *components.Target, snip *components.Snippet, width float64) {
	target.Y = -s.cfg.RecycleMargin
	target.X = s.rng.Float64() * width
	snip.Text = s.randomText()
	snip.Color = s.randomColor()
}

func (s *SnippetSystem) randomText() string {
	return CodeTexts[s.rng.Intn(len(CodeTexts))]
}

func (s *SnippetSystem) randomColor() uint8 {
	if s.colors == 0 {
		return 0
	}
	return uint8(s.rng.Intn(s.colors))
}
