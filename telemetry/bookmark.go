package telemetry

import (
	"fmt"
	"log/slog"

	"gonum.org/v1/gonum/stat"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkLinkBurst      BookmarkType = "link_burst"
	BookmarkRepelStorm     BookmarkType = "repel_storm"
	BookmarkPointerEngaged BookmarkType = "pointer_engaged"
	BookmarkSteadyDrift    BookmarkType = "steady_drift"
)

// steadyWindows is how many consecutive low-variance windows trigger
// BookmarkSteadyDrift.
const steadyWindows = 5

// Bookmark represents an automatically triggered bookmark.
type Bookmark struct {
	Type        BookmarkType
	Tick        int64
	Description string
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"tick", b.Tick,
		"description", b.Description,
	)
}

// BookmarkDetector flags stats windows worth a closer look in a headless
// capture.
type BookmarkDetector struct {
	// Rolling history (circular buffer)
	history     []WindowStats
	historySize int
	historyIdx  int
	historyFull bool

	prevPointerFrames int
	steadyCount       int // consecutive windows with a stable link count
}

// NewBookmarkDetector creates a detector with the given history size.
func NewBookmarkDetector(historySize int) *BookmarkDetector {
	if historySize < steadyWindows {
		historySize = steadyWindows
	}
	return &BookmarkDetector{
		history:     make([]WindowStats, historySize),
		historySize: historySize,
	}
}

// Check analyzes the latest stats and returns any triggered bookmarks.
func (bd *BookmarkDetector) Check(stats WindowStats) []Bookmark {
	var bookmarks []Bookmark

	if bd.historyFull || bd.historyIdx > 0 {
		// Link burst: mean links per frame > 2x rolling average
		if b := bd.checkLinkBurst(stats); b != nil {
			bookmarks = append(bookmarks, *b)
		}

		// Repel storm: repelled snippet-frames > 2x rolling average
		if b := bd.checkRepelStorm(stats); b != nil {
			bookmarks = append(bookmarks, *b)
		}

		// Pointer engaged: first window with a pointer after one without
		if stats.PointerFrames > 0 && bd.prevPointerFrames == 0 {
			bookmarks = append(bookmarks, Bookmark{
				Type:        BookmarkPointerEngaged,
				Tick:        stats.WindowEndTick,
				Description: fmt.Sprintf("Pointer seen in %d of %d frames", stats.PointerFrames, stats.Frames),
			})
		}
	}

	bd.addToHistory(stats)
	bd.prevPointerFrames = stats.PointerFrames

	if b := bd.checkSteadyDrift(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	return bookmarks
}

func (bd *BookmarkDetector) addToHistory(stats WindowStats) {
	bd.history[bd.historyIdx] = stats
	bd.historyIdx = (bd.historyIdx + 1) % bd.historySize
	if bd.historyIdx == 0 {
		bd.historyFull = true
	}
}

func (bd *BookmarkDetector) getHistory() []WindowStats {
	if bd.historyFull {
		return bd.history
	}
	return bd.history[:bd.historyIdx]
}

// recent returns the last n windows in insertion order, or nil if fewer
// have been recorded.
func (bd *BookmarkDetector) recent(n int) []WindowStats {
	history := bd.getHistory()
	if len(history) < n {
		return nil
	}
	out := make([]WindowStats, n)
	for i := 0; i < n; i++ {
		idx := (bd.historyIdx - n + i + bd.historySize) % bd.historySize
		out[i] = bd.history[idx]
	}
	return out
}

func (bd *BookmarkDetector) checkLinkBurst(stats WindowStats) *Bookmark {
	history := bd.getHistory()
	if len(history) < 3 {
		return nil
	}

	var total float64
	for _, h := range history {
		total += h.LinksMean
	}
	avg := total / float64(len(history))
	if avg == 0 {
		return nil
	}

	if stats.LinksMean > avg*2.0 && stats.LinksMax >= 5 {
		return &Bookmark{
			Type:        BookmarkLinkBurst,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("Links per frame %.1f is %.1fx average (%.1f)", stats.LinksMean, stats.LinksMean/avg, avg),
		}
	}

	return nil
}

func (bd *BookmarkDetector) checkRepelStorm(stats WindowStats) *Bookmark {
	history := bd.getHistory()
	if len(history) < 3 {
		return nil
	}

	var total int
	for _, h := range history {
		total += h.SnippetRepelled
	}
	avg := float64(total) / float64(len(history))
	if avg == 0 {
		return nil
	}

	if float64(stats.SnippetRepelled) > avg*2.0 {
		return &Bookmark{
			Type:        BookmarkRepelStorm,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("%d repelled snippet-frames is %.1fx average (%.0f)", stats.SnippetRepelled, float64(stats.SnippetRepelled)/avg, avg),
		}
	}

	return nil
}

func (bd *BookmarkDetector) checkSteadyDrift(stats WindowStats) *Bookmark {
	if stats.Snippets == 0 {
		bd.steadyCount = 0
		return nil
	}

	window := bd.recent(steadyWindows - 1)
	if window == nil {
		return nil
	}

	links := make([]float64, len(window))
	for i, h := range window {
		links[i] = h.LinksMean
	}
	mean, std := stat.PopMeanStdDev(links, nil)

	// Coefficient of variation under 20%, or no links at all
	if mean == 0 || std/mean < 0.2 {
		bd.steadyCount++
	} else {
		bd.steadyCount = 0
	}

	if bd.steadyCount == steadyWindows { // trigger exactly once per run
		return &Bookmark{
			Type:        BookmarkSteadyDrift,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("Steady drift: %.1f links per frame over %d+ windows", mean, steadyWindows),
		}
	}

	return nil
}
