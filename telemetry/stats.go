// Package telemetry provides frame statistics, phase timing, bookmarks and CSV
// output for the animation hosts.
package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated engine statistics for a time window.
type WindowStats struct {
	WindowStartTick int64   `csv:"-"`
	WindowEndTick   int64   `csv:"window_end"`
	AnimTimeSec     float64 `csv:"anim_time"`
	Theme           string  `csv:"theme"`

	// Population sizes at window end
	Columns  int `csv:"columns"`
	Symbols  int `csv:"symbols"`
	Snippets int `csv:"snippets"`

	// Events during window
	Frames          int `csv:"frames"`
	RainRecycled    int `csv:"rain_recycled"`
	SnippetRepelled int `csv:"snippet_repelled"`
	SnippetHeld     int `csv:"snippet_held"`
	SnippetRecycled int `csv:"snippet_recycled"`
	PointerFrames   int `csv:"pointer_frames"` // frames with a seen pointer

	// Links per frame
	LinksMean float64 `csv:"links_mean"`
	LinksP50  float64 `csv:"links_p50"`
	LinksP90  float64 `csv:"links_p90"`
	LinksMax  int     `csv:"links_max"`

	// Snippet vertical distribution at window end (fraction of surface height)
	SnippetDepthMean float64 `csv:"snippet_depth_mean"`
	SnippetDepthStd  float64 `csv:"snippet_depth_std"`
}

// Summarize returns the mean and the 10th, 50th and 90th percentiles of
// values. Returns zeros for an empty slice. values is not modified.
func Summarize(values []float64) (mean, p10, p50, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mean = stat.Mean(sorted, nil)
	p10 = stat.Quantile(0.10, stat.Empirical, sorted, nil)
	p50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)
	return mean, p10, p50, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("window_start", s.WindowStartTick),
		slog.Int64("window_end", s.WindowEndTick),
		slog.Float64("anim_time", s.AnimTimeSec),
		slog.String("theme", s.Theme),
		slog.Int("columns", s.Columns),
		slog.Int("symbols", s.Symbols),
		slog.Int("snippets", s.Snippets),
		slog.Int("frames", s.Frames),
		slog.Int("rain_recycled", s.RainRecycled),
		slog.Int("snippet_repelled", s.SnippetRepelled),
		slog.Int("snippet_held", s.SnippetHeld),
		slog.Int("snippet_recycled", s.SnippetRecycled),
		slog.Int("pointer_frames", s.PointerFrames),
		slog.Float64("links_mean", s.LinksMean),
		slog.Float64("links_p50", s.LinksP50),
		slog.Float64("links_p90", s.LinksP90),
		slog.Int("links_max", s.LinksMax),
		slog.Float64("snippet_depth_mean", s.SnippetDepthMean),
		slog.Float64("snippet_depth_std", s.SnippetDepthStd),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"anim_time", s.AnimTimeSec,
		"theme", s.Theme,
		"snippets", s.Snippets,
		"rain_recycled", s.RainRecycled,
		"snippet_repelled", s.SnippetRepelled,
		"snippet_recycled", s.SnippetRecycled,
		"links_mean", s.LinksMean,
		"links_max", s.LinksMax,
	)
}
