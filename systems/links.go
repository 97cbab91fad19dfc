package systems

import (
	"github.com/pthm-cable/codedrift/config"
)

// LinkSystem connects snippets closer than the link distance. Candidate pairs
// come from a spatial grid with one link distance per cell; the snippet count
// is still capped by engine.snippets.max_count.
type LinkSystem struct {
	cfg  config.LinkConfig
	grid *SpatialGrid
}

// NewLinkSystem creates a new link system.
func NewLinkSystem(cfg config.LinkConfig) *LinkSystem {
	return &LinkSystem{cfg: cfg}
}

// Update emits a line for every unordered pair of snippet positions recorded
// in frame by the snippet pass.
func (s *LinkSystem) Update(frame *Frame) {
	if s.cfg.Distance <= 0 || len(frame.points) < 2 {
		return
	}
	if s.grid == nil {
		s.grid = NewSpatialGrid(frame.Width, frame.Height, s.cfg.Distance)
	} else {
		s.grid.Resize(frame.Width, frame.Height)
	}

	pts := frame.points
	s.grid.Build(pts)
	s.grid.Pairs(pts, s.cfg.Distance, func(i, j int, d float64) {
		frame.Links = append(frame.Links, LinkDraw{
			X1:    pts[i].X,
			Y1:    pts[i].Y,
			X2:    pts[j].X,
			Y2:    pts[j].Y,
			Alpha: LinkAlpha(d, s.cfg.Distance, s.cfg.MaxAlpha),
		})
		frame.Stats.Links++
	})
}
