package terminal

import (
	"context"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/codedrift/anim"
	"github.com/pthm-cable/codedrift/camera"
	"github.com/pthm-cable/codedrift/telemetry"
	"github.com/pthm-cable/codedrift/theme"
)

// Host runs the engine in a tcell screen. Events are read on a pump goroutine
// and posted to the frame loop, so the engine is only touched by the loop.
type Host struct {
	screen    tcell.Screen
	engine    *anim.Engine
	store     *theme.Store
	viewport  *camera.Viewport
	raster    *Rasterizer
	telemetry *anim.Telemetry
	loop      *anim.Loop
	dt        float64

	paused bool
	quit   context.CancelFunc
}

// New creates a host on an initialized screen and mounts the engine on it.
// The host takes ownership of the screen and finalizes it when Run returns.
func New(screen tcell.Screen, opts anim.Options) (*Host, error) {
	cfg := opts.EffectiveConfig()
	initial, err := opts.InitialTheme()
	if err != nil {
		return nil, err
	}

	dt := opts.TimeStep()
	tel, err := anim.NewTelemetry(opts, dt)
	if err != nil {
		return nil, err
	}

	cols, rows := screen.Size()
	vp := camera.New(cols, rows, cfg.Terminal.CellWidth, cfg.Terminal.CellHeight)

	h := &Host{
		screen:    screen,
		engine:    anim.NewEngine(cfg, opts.Seed),
		store:     theme.NewStore(initial),
		viewport:  vp,
		raster:    NewRasterizer(vp),
		telemetry: tel,
		dt:        dt,
	}
	h.engine.SetPhaseTimer(tel.Perf())
	h.loop = anim.NewLoop(cfg.Terminal.TargetFPS, h.step)
	h.store.Subscribe(func(t theme.Theme) {
		if err := h.engine.SetTheme(t); err != nil {
			slog.Debug("theme remount failed", "theme", t.String(), "error", err)
		}
	})

	w, ht := vp.Surface()
	if err := h.engine.Init(w, ht, initial); err != nil {
		slog.Debug("engine not mounted", "error", err, "cols", cols, "rows", rows)
	}
	return h, nil
}

// Engine returns the driven engine.
func (h *Host) Engine() *anim.Engine {
	return h.engine
}

// Run shows the animation until ctx is done or the user quits.
func (h *Host) Run(ctx context.Context) error {
	ctx, h.quit = context.WithCancel(ctx)
	defer h.quit()

	h.screen.EnableMouse(tcell.MouseMotionEvents)
	h.screen.EnableFocus()
	h.screen.HideCursor()

	pollDone := make(chan struct{})
	go h.pollEvents(pollDone)

	slog.Info("terminal host started", "engine", h.engine)
	h.loop.Start(ctx)
	<-h.loop.Done()

	// Fini makes PollEvent return nil, ending the pump.
	h.screen.Fini()
	<-pollDone

	h.engine.Dispose()
	if err := h.telemetry.Close(); err != nil {
		return err
	}
	slog.Info("terminal host stopped", "ticks", h.engine.Ticks())
	return nil
}

// pollEvents reads events until the screen is finalized.
func (h *Host) pollEvents(done chan<- struct{}) {
	defer close(done)
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return
		}
		// After the loop exits Post drops events; the pump keeps draining
		// until Fini.
		h.loop.Post(func() { h.handleEvent(ev) })
	}
}

// handleEvent applies one event on the loop goroutine.
func (h *Host) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		h.resize(ev.Size())
		h.screen.Sync()
	case *tcell.EventKey:
		h.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		col, row := ev.Position()
		h.pointerAt(col, row)
	case *tcell.EventFocus:
		if !ev.Focused {
			h.engine.PointerLeave()
		}
	}
}

// handleKey applies a key press.
func (h *Host) handleKey(key tcell.Key, r rune) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		h.stop()
		return
	case tcell.KeyRune:
	default:
		return
	}

	switch r {
	case 'q':
		h.stop()
	case 't':
		h.store.Toggle()
	case ' ':
		h.paused = !h.paused
	}
}

func (h *Host) stop() {
	if h.quit != nil {
		h.quit()
	}
}

// pointerAt moves the engine pointer to the center of a cell.
func (h *Host) pointerAt(col, row int) {
	if !h.viewport.Contains(col, row) {
		h.engine.PointerLeave()
		return
	}
	x, y := h.viewport.ToSurface(col, row)
	h.engine.PointerMove(x, y)
}

// resize maps a new grid size onto the engine surface.
func (h *Host) resize(cols, rows int) {
	if !h.viewport.Resize(cols, rows) {
		return
	}
	w, ht := h.viewport.Surface()
	h.engine.Resize(w, ht)
}

// step advances and draws one frame.
func (h *Host) step() {
	perf := h.telemetry.Perf()
	if !h.paused {
		perf.StartTick()
		f := h.engine.Tick(h.dt)
		if f != nil {
			h.telemetry.Record(h.engine, f)
		}
		perf.StartPhase(telemetry.PhaseRender)
		defer perf.EndTick()
	}

	h.raster.Draw(h.screen, h.engine.Frame(), h.store.Palette())
	h.screen.Show()
	perf.RecordFrame()
}
