package systems

import (
	"math"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/codedrift/components"
	"github.com/pthm-cable/codedrift/config"
)

// RainSystem advances the binary-rain columns.
type RainSystem struct {
	filter ecs.Filter1[components.BinaryColumn]
	cfg    config.RainConfig
	rng    *rand.Rand
	alpha  float64 // head glyph alpha from the palette
}

// NewRainSystem creates a new rain system bound to w.
func NewRainSystem(w *ecs.World, cfg config.RainConfig, rng *rand.Rand) *RainSystem {
	return &RainSystem{
		filter: *ecs.NewFilter1[components.BinaryColumn](w),
		cfg:    cfg,
		rng:    rng,
	}
}

// ColumnCount returns how many columns a surface of the given width holds.
func ColumnCount(width, spacing float64) int {
	if width <= 0 || spacing <= 0 {
		return 0
	}
	return int(math.Floor(width / spacing))
}

// Populate creates the columns evenly spaced across width with jitter and
// returns their entities in slot order.
func (s *RainSystem) Populate(w *ecs.World, width, height, headAlpha float64) []ecs.Entity {
	s.alpha = headAlpha
	mapper := ecs.NewMap1[components.BinaryColumn](w)

	n := ColumnCount(width, s.cfg.ColumnSpacing)
	slots := make([]ecs.Entity, 0, n)
	for i := 0; i < n; i++ {
		col := components.BinaryColumn{
			X:     float64(i)*s.cfg.ColumnSpacing + s.rng.Float64()*s.cfg.ColumnJitter,
			Y:     s.rng.Float64() * height,
			Speed: s.cfg.SpeedMin + s.rng.Float64()*s.cfg.SpeedRange,
		}
		s.rollGlyphs(&col)
		slots = append(slots, mapper.NewEntity(&col))
	}
	return slots
}

// Update advances every column, recycles those past the bottom and emits
// their glyphs into frame.
func (s *RainSystem) Update(height float64, frame *Frame) {
	limit := height + s.cfg.RecycleMargin

	query := s.filter.Query()
	for query.Next() {
		col := query.Get()

		col.Y += col.Speed
		if col.Y > limit {
			col.Y = s.cfg.RestartY
			s.rollGlyphs(col)
			frame.Stats.RainRecycled++
		}

		for i, g := range col.Glyphs {
			frame.Rain = append(frame.Rain, GlyphDraw{
				X:     col.X,
				Y:     col.Y + float64(i)*s.cfg.RowHeight,
				Glyph: g,
				Alpha: RowAlpha(i, s.cfg.RowFade) * s.alpha,
			})
		}
	}
}

// RowAlpha returns the relative brightness of glyph row i: 1 at the head,
// falling by fade per row, never negative.
func RowAlpha(i int, fade float64) float64 {
	return math.Max(0, 1-float64(i)*fade)
}

func (s *RainSystem) rollGlyphs(col *components.BinaryColumn) {
	for i := range col.Glyphs {
		if s.rng.Float64() > 0.5 {
			col.Glyphs[i] = '1'
		} else {
			col.Glyphs[i] = '0'
		}
	}
}
