package anim

import (
	"log/slog"

	"github.com/pthm-cable/codedrift/systems"
	"github.com/pthm-cable/codedrift/telemetry"
)

// Telemetry bundles the window stats collector, the perf collector and the
// optional CSV output of one host.
type Telemetry struct {
	collector *telemetry.Collector
	perf      *telemetry.PerfCollector
	output    *telemetry.OutputManager
	bookmarks *telemetry.BookmarkDetector
	logStats  bool

	// OnFlush, if set, receives every flushed window.
	OnFlush func(telemetry.WindowStats, telemetry.PerfStats)
}

// NewTelemetry creates the telemetry of a host stepping dt seconds per frame.
// When opts.OutputDir is set the effective config is written next to the CSVs.
func NewTelemetry(opts Options, dt float64) (*Telemetry, error) {
	cfg := opts.EffectiveConfig()
	out, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := out.WriteConfig(cfg); err != nil {
		out.Close()
		return nil, err
	}
	return &Telemetry{
		collector: telemetry.NewCollector(opts.statsWindow(), dt),
		perf:      telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		output:    out,
		bookmarks: telemetry.NewBookmarkDetector(10),
		logStats:  opts.LogStats,
	}, nil
}

// Perf returns the perf collector. Hosts install it as the engine's phase
// timer and bracket each frame with StartTick and EndTick.
func (t *Telemetry) Perf() *telemetry.PerfCollector {
	return t.perf
}

// Record adds one frame and flushes the window when it is full.
func (t *Telemetry) Record(e *Engine, f *systems.Frame) {
	t.collector.Record(f)
	t.flush(e)
}

// flush checks if the stats window should be flushed and writes it out.
func (t *Telemetry) flush(e *Engine) {
	tick := e.Ticks()
	if !t.collector.ShouldFlush(tick) {
		return
	}

	stats := t.collector.Flush(tick, snapshotOf(e))
	perfStats := t.perf.Stats()

	if t.OnFlush != nil {
		t.OnFlush(stats, perfStats)
	}

	if t.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}
	for _, b := range t.bookmarks.Check(stats) {
		b.LogBookmark()
	}

	if err := t.output.WriteFrames(stats); err != nil {
		slog.Error("failed to write frame stats", "error", err)
	}
	if err := t.output.WritePerf(perfStats, stats.WindowEndTick); err != nil {
		slog.Error("failed to write perf", "error", err)
	}
}

// Close flushes and closes the CSV output.
func (t *Telemetry) Close() error {
	return t.output.Close()
}

// snapshotOf samples the engine state at window end.
func snapshotOf(e *Engine) telemetry.Snapshot {
	columns, symbols, snippets := e.Counts()
	snap := telemetry.Snapshot{
		AnimTime: e.Time(),
		Theme:    e.Theme().String(),
		Columns:  columns,
		Symbols:  symbols,
		Snippets: snippets,
	}
	if !e.Mounted() {
		return snap
	}

	_, h := e.Size()
	if h <= 0 {
		return snap
	}
	snap.Depths = make([]float64, snippets)
	for i := range snap.Depths {
		pos, _, _ := e.Snippet(i)
		snap.Depths[i] = pos.Y / h
	}
	return snap
}
