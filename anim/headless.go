package anim

import (
	"context"
	"fmt"
	"log/slog"
	"math"
)

// orbitSpeed is the angular speed of the synthetic headless pointer (rad/s).
const orbitSpeed = 0.5

// Headless drives an engine without any display, for profiling and CSV
// capture. It needs no raylib window.
type Headless struct {
	engine    *Engine
	telemetry *Telemetry
	dt        float64
	frames    int
	orbit     bool
}

// NewHeadless creates and mounts a headless host.
func NewHeadless(opts Options) (*Headless, error) {
	cfg := opts.EffectiveConfig()
	t, err := opts.InitialTheme()
	if err != nil {
		return nil, err
	}

	dt := opts.TimeStep()
	tel, err := NewTelemetry(opts, dt)
	if err != nil {
		return nil, err
	}

	e := NewEngine(cfg, opts.Seed)
	e.SetPhaseTimer(tel.Perf())
	w, h := opts.surface()
	if err := e.Init(w, h, t); err != nil {
		tel.Close()
		return nil, err
	}

	frames := opts.Frames
	if frames <= 0 {
		frames = int(tel.collector.WindowDurationTicks())
	}

	return &Headless{
		engine:    e,
		telemetry: tel,
		dt:        dt,
		frames:    frames,
		orbit:     opts.PointerOrbit,
	}, nil
}

// Engine returns the driven engine.
func (h *Headless) Engine() *Engine {
	return h.engine
}

// Telemetry returns the host telemetry.
func (h *Headless) Telemetry() *Telemetry {
	return h.telemetry
}

// Step advances one frame.
func (h *Headless) Step() {
	if h.orbit {
		w, ht := h.engine.Size()
		a := h.engine.Time() * orbitSpeed
		r := math.Min(w, ht) / 3
		h.engine.PointerMove(w/2+r*math.Cos(a), ht/2+r*math.Sin(a))
	}

	perf := h.telemetry.Perf()
	perf.StartTick()
	f := h.engine.Tick(h.dt)
	perf.EndTick()

	h.telemetry.Record(h.engine, f)
}

// Run steps the configured number of frames or until ctx is done.
func (h *Headless) Run(ctx context.Context) error {
	slog.Info("starting headless run",
		"frames", h.frames,
		"theme", h.engine.Theme().String(),
		"orbit", h.orbit,
	)
	for i := 0; i < h.frames; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		h.Step()
	}
	slog.Info("headless run finished", "engine", h.engine)
	return nil
}

// RunHeadless creates a headless host, runs it and closes it.
func RunHeadless(ctx context.Context, opts Options) error {
	h, err := NewHeadless(opts)
	if err != nil {
		return err
	}
	runErr := h.Run(ctx)
	if err := h.Close(); err != nil && runErr == nil {
		runErr = fmt.Errorf("closing output: %w", err)
	}
	return runErr
}

// Close disposes the engine and closes telemetry output.
func (h *Headless) Close() error {
	h.engine.Dispose()
	return h.telemetry.Close()
}
