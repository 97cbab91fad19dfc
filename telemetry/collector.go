package telemetry

import (
	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/codedrift/systems"
)

// Collector accumulates frame stats within time windows and produces WindowStats.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int64
	dt                  float64

	windowStartTick int64

	// Counters for the current window
	frames          int
	rainRecycled    int
	snippetRepelled int
	snippetHeld     int
	snippetRecycled int
	pointerFrames   int
	links           []float64
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in animation seconds
// dt: seconds per tick (used for tick-to-time conversion)
func NewCollector(windowDurationSec, dt float64) *Collector {
	ticksPerWindow := int64(1)
	if dt > 0 {
		ticksPerWindow = int64(windowDurationSec / dt)
	}
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
		links:               make([]float64, 0, ticksPerWindow),
	}
}

// Record adds one frame's draw list to the current window.
func (c *Collector) Record(f *systems.Frame) {
	if f == nil {
		return
	}
	c.frames++
	c.rainRecycled += f.Stats.RainRecycled
	c.snippetRepelled += f.Stats.SnippetRepelled
	c.snippetHeld += f.Stats.SnippetHeld
	c.snippetRecycled += f.Stats.SnippetRecycled
	if f.PointerGlow {
		c.pointerFrames++
	}
	c.links = append(c.links, float64(f.Stats.Links))
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int64) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Snapshot describes the engine state sampled at window end.
type Snapshot struct {
	AnimTime float64
	Theme    string
	Columns  int
	Symbols  int
	Snippets int
	Depths   []float64 // snippet y / surface height
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick int64, snap Snapshot) WindowStats {
	linksMean, _, linksP50, linksP90 := Summarize(c.links)
	var linksMax int
	for _, n := range c.links {
		if int(n) > linksMax {
			linksMax = int(n)
		}
	}

	var depthMean, depthStd float64
	if len(snap.Depths) > 0 {
		depthMean, depthStd = stat.PopMeanStdDev(snap.Depths, nil)
	}

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		AnimTimeSec:     snap.AnimTime,
		Theme:           snap.Theme,

		Columns:  snap.Columns,
		Symbols:  snap.Symbols,
		Snippets: snap.Snippets,

		Frames:          c.frames,
		RainRecycled:    c.rainRecycled,
		SnippetRepelled: c.snippetRepelled,
		SnippetHeld:     c.snippetHeld,
		SnippetRecycled: c.snippetRecycled,
		PointerFrames:   c.pointerFrames,

		LinksMean: linksMean,
		LinksP50:  linksP50,
		LinksP90:  linksP90,
		LinksMax:  linksMax,

		SnippetDepthMean: depthMean,
		SnippetDepthStd:  depthStd,
	}

	c.windowStartTick = currentTick
	c.frames = 0
	c.rainRecycled = 0
	c.snippetRepelled = 0
	c.snippetHeld = 0
	c.snippetRecycled = 0
	c.pointerFrames = 0
	c.links = c.links[:0]

	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int64 {
	return c.windowDurationTicks
}
