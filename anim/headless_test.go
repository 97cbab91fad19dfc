package anim

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/codedrift/config"
	"github.com/pthm-cable/codedrift/telemetry"
)

func headlessOptions(t *testing.T) Options {
	t.Helper()
	cfg := config.Default()
	cfg.Engine.TimeStep = 0.25
	return Options{
		Config:         cfg,
		Seed:           7,
		Theme:          "light",
		StatsWindowSec: 1, // 4 ticks per window
		OutputDir:      t.TempDir(),
		Frames:         8,
		Width:          800,
		Height:         600,
		PointerOrbit:   true,
	}
}

func TestHeadlessRunWritesWindows(t *testing.T) {
	opts := headlessOptions(t)
	h, err := NewHeadless(opts)
	if err != nil {
		t.Fatalf("NewHeadless: %v", err)
	}

	var windows []telemetry.WindowStats
	h.Telemetry().OnFlush = func(s telemetry.WindowStats, _ telemetry.PerfStats) {
		windows = append(windows, s)
	}

	if err := h.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if h.Engine().Ticks() != 8 {
		t.Errorf("ticks = %d, want 8", h.Engine().Ticks())
	}
	if !h.Engine().Pointer().Seen {
		t.Error("orbit should have moved the pointer")
	}
	if err := h.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if len(windows) != 2 {
		t.Fatalf("flushed %d windows, want 2", len(windows))
	}
	for i, w := range windows {
		if w.Frames != 4 {
			t.Errorf("window %d frames = %d, want 4", i, w.Frames)
		}
		if w.Theme != "light" {
			t.Errorf("window %d theme = %q, want light", i, w.Theme)
		}
		if w.PointerFrames != 4 {
			t.Errorf("window %d pointer frames = %d, want 4", i, w.PointerFrames)
		}
	}

	for _, name := range []string{"frames.csv", "perf.csv"} {
		data, err := os.ReadFile(filepath.Join(opts.OutputDir, name))
		if err != nil {
			t.Fatalf("reading %s: %v", name, err)
		}
		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		if len(lines) != 3 {
			t.Errorf("%s has %d lines, want header + 2 rows", name, len(lines))
		}
	}
	if _, err := os.Stat(filepath.Join(opts.OutputDir, "config.yaml")); err != nil {
		t.Errorf("config.yaml not written: %v", err)
	}
}

func TestHeadlessDefaultsToOneWindow(t *testing.T) {
	opts := headlessOptions(t)
	opts.Frames = 0
	opts.OutputDir = ""

	h, err := NewHeadless(opts)
	if err != nil {
		t.Fatalf("NewHeadless: %v", err)
	}
	defer h.Close()

	if err := h.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if h.Engine().Ticks() != 4 {
		t.Errorf("ticks = %d, want one window of 4", h.Engine().Ticks())
	}
}

func TestHeadlessRejectsUnknownTheme(t *testing.T) {
	opts := headlessOptions(t)
	opts.Theme = "sepia"
	if _, err := NewHeadless(opts); err == nil {
		t.Error("expected error for unknown theme")
	}
}

func TestHeadlessStopsOnCancel(t *testing.T) {
	opts := headlessOptions(t)
	opts.OutputDir = ""
	h, err := NewHeadless(opts)
	if err != nil {
		t.Fatalf("NewHeadless: %v", err)
	}
	defer h.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := h.Run(ctx); err != context.Canceled {
		t.Errorf("Run = %v, want context.Canceled", err)
	}
	if h.Engine().Ticks() != 0 {
		t.Errorf("ticks = %d after cancelled run", h.Engine().Ticks())
	}
}
