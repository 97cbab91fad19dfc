package systems

import (
	"math"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/codedrift/components"
	"github.com/pthm-cable/codedrift/config"
)

// SymbolSystem rotates and bobs the floating symbols.
type SymbolSystem struct {
	filter ecs.Filter1[components.FloatingSymbol]
	cfg    config.SymbolConfig
	rng    *rand.Rand
}

// NewSymbolSystem creates a new symbol system bound to w.
func NewSymbolSystem(w *ecs.World, cfg config.SymbolConfig, rng *rand.Rand) *SymbolSystem {
	return &SymbolSystem{
		filter: *ecs.NewFilter1[components.FloatingSymbol](w),
		cfg:    cfg,
		rng:    rng,
	}
}

// Populate creates the symbols at random positions.
func (s *SymbolSystem) Populate(w *ecs.World, width, height float64) []ecs.Entity {
	mapper := ecs.NewMap1[components.FloatingSymbol](w)

	slots := make([]ecs.Entity, 0, s.cfg.Count)
	for i := 0; i < s.cfg.Count; i++ {
		sym := components.FloatingSymbol{
			X:             s.rng.Float64() * width,
			Y:             s.rng.Float64() * height,
			Glyph:         SymbolGlyphs[s.rng.Intn(len(SymbolGlyphs))],
			Rotation:      s.rng.Float64() * math.Pi * 2,
			RotationSpeed: (s.rng.Float64() - 0.5) * s.cfg.RotationSpeed,
			FloatOffset:   s.rng.Float64() * math.Pi * 2,
		}
		slots = append(slots, mapper.NewEntity(&sym))
	}
	return slots
}

// Update advances rotation and emits each symbol at its bobbed position.
func (s *SymbolSystem) Update(t float64, frame *Frame) {
	query := s.filter.Query()
	for query.Next() {
		sym := query.Get()

		sym.Rotation += sym.RotationSpeed
		bob := Bob(t, s.cfg.BobFrequency, sym.FloatOffset, s.cfg.BobAmplitude)

		frame.Symbols = append(frame.Symbols, SymbolDraw{
			X:        sym.X,
			Y:        sym.Y + bob,
			Rotation: sym.Rotation,
			Glyph:    sym.Glyph,
		})
	}
}
