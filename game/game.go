package game

import (
	"fmt"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/codedrift/anim"
	"github.com/pthm-cable/codedrift/config"
	"github.com/pthm-cable/codedrift/cursor"
	"github.com/pthm-cable/codedrift/renderer"
	"github.com/pthm-cable/codedrift/telemetry"
	"github.com/pthm-cable/codedrift/theme"
	"github.com/pthm-cable/codedrift/ui"
)

// togglePad is the theme toggle's distance from the top-right corner.
const togglePad = 20

// Game is the raylib window host: it owns the engine, the theme provider,
// the renderers and the interface around them.
type Game struct {
	opts      anim.Options
	cfg       *config.Config
	engine    *anim.Engine
	store     *theme.Store
	telemetry *anim.Telemetry
	dt        float64

	background *renderer.BackgroundRenderer
	trail      *renderer.TrailRenderer
	layers     *renderer.LayerRenderer
	cursor     *cursor.Cursor

	uiRenderer *ui.Renderer
	hud        *ui.HUD
	controls   *ui.ControlsPanel
	toggle     *ui.ThemeToggle
	layerReg   *ui.LayerRegistry

	screenWidth  float32
	screenHeight float32

	paused  bool
	stepped bool // the engine advanced this frame
	showHUD bool
	hover   bool
}

// NewGameWithOptions creates the window host. Must be called after
// rl.InitWindow.
func NewGameWithOptions(opts anim.Options) (*Game, error) {
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

	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	pal := theme.PaletteFor(initial)

	g := &Game{
		opts:         opts,
		cfg:          cfg,
		engine:       anim.NewEngine(cfg, opts.Seed),
		store:        theme.NewStore(initial),
		telemetry:    tel,
		dt:           dt,
		background:   renderer.NewBackgroundRenderer(int32(w), int32(h), pal),
		trail:        renderer.NewTrailRenderer(int32(w), int32(h)),
		layers:       renderer.NewLayerRenderer(cfg.Font.Path, cfg.Engine),
		cursor:       cursor.New(cfg.Cursor),
		uiRenderer:   ui.NewRenderer(initial),
		layerReg:     ui.NewLayerRegistry(),
		screenWidth:  w,
		screenHeight: h,
		showHUD:      opts.ShowHUD,
	}
	g.hud = ui.NewHUD(g.uiRenderer, 10, 10)
	g.controls = ui.NewControlsPanel(g.uiRenderer, 240, 10, 220)
	g.toggle = ui.NewThemeToggle(w-ui.ToggleWidth-togglePad, togglePad, initial)
	g.engine.SetPhaseTimer(tel.Perf())

	if !cfg.Cursor.Enabled {
		g.layerReg.SetEnabled(ui.LayerCursor, false)
	}
	g.syncSystemCursor()

	g.store.Subscribe(g.applyTheme)

	if err := g.engine.Init(float64(w), float64(h), initial); err != nil {
		// A zero-area window mounts later through Resize.
		slog.Debug("engine not mounted", "error", err, "width", w, "height", h)
	}

	slog.Info("window host started", "seed", opts.Seed, "engine", g.engine)
	return g, nil
}

// applyTheme remounts the engine and restyles everything drawn with the
// previous palette.
func (g *Game) applyTheme(t theme.Theme) {
	if err := g.engine.SetTheme(t); err != nil {
		slog.Warn("theme remount failed", "theme", t.String(), "error", err)
	}
	pal := theme.PaletteFor(t)
	g.background.SetPalette(pal)
	g.trail.Clear()
	g.uiRenderer.SetTheme(t)
	g.toggle.SetTheme(t)
	slog.Info("theme changed", "theme", t.String(), "mounts", g.engine.Mounts())
}

// Update handles input and advances the engine by one frame unless paused.
func (g *Game) Update() {
	g.handleInput()

	frameDT := float64(rl.GetFrameTime())
	mouse := rl.GetMousePosition()
	if g.toggle.Update(frameDT, mouse, rl.IsMouseButtonPressed(rl.MouseButtonLeft)) {
		g.store.Toggle()
	}

	if p := g.engine.Pointer(); p.Seen {
		g.cursor.Update(p.Pos, g.hover, frameDT)
	}

	g.stepped = false
	if g.paused {
		return
	}

	perf := g.telemetry.Perf()
	perf.StartTick()
	f := g.engine.Tick(g.dt)
	g.stepped = f != nil
	if !g.stepped {
		perf.EndTick()
		return
	}
	g.telemetry.Record(g.engine, f)
}

// Draw renders the frame.
func (g *Game) Draw() {
	perf := g.telemetry.Perf()
	if g.stepped {
		perf.StartPhase(telemetry.PhaseRender)
	}

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	g.background.Draw()
	g.drawEngineLayers()

	if g.layerReg.IsEnabled(ui.LayerCursor) {
		renderer.DrawCursor(g.cursor)
	}

	g.toggle.Draw()
	if g.showHUD {
		g.applyHUDAction(g.hud.Draw(g.hudData()))
		g.controls.Draw(g.layerReg)
	}

	rl.EndDrawing()

	if g.stepped {
		perf.EndTick()
	}
	perf.RecordFrame()
}

func (g *Game) hudData() ui.HUDData {
	columns, symbols, snippets := g.engine.Counts()
	var links int
	if f := g.engine.Frame(); f != nil {
		links = len(f.Links)
	}
	return ui.HUDData{
		Title:    g.cfg.Screen.Title,
		Theme:    g.store.Current().String(),
		FPS:      rl.GetFPS(),
		Ticks:    g.engine.Ticks(),
		AnimTime: g.engine.Time(),
		Columns:  columns,
		Symbols:  symbols,
		Snippets: snippets,
		Links:    links,
		Paused:   g.paused,
		Perf:     g.telemetry.Perf().Stats(),
	}
}

func (g *Game) applyHUDAction(a ui.HUDAction) {
	switch a {
	case ui.HUDToggleTheme:
		g.store.Toggle()
	case ui.HUDTogglePause:
		g.togglePause()
	case ui.HUDToggleCursor:
		g.layerReg.Toggle(ui.LayerCursor)
		g.syncSystemCursor()
	case ui.HUDToggleLayers:
		g.controls.Toggle()
	}
}

func (g *Game) togglePause() {
	g.paused = !g.paused
	slog.Debug("pause toggled", "paused", g.paused)
}

// syncSystemCursor hides the OS cursor while the custom one is drawn.
func (g *Game) syncSystemCursor() {
	if g.layerReg.IsEnabled(ui.LayerCursor) {
		rl.HideCursor()
	} else {
		rl.ShowCursor()
	}
}

// Unload releases all resources.
func (g *Game) Unload() {
	g.engine.Dispose()
	g.background.Unload()
	g.trail.Unload()
	g.layers.Unload()
	if err := g.telemetry.Close(); err != nil {
		slog.Error("failed to close telemetry output", "error", err)
	}
}

// Engine returns the animation engine.
func (g *Game) Engine() *anim.Engine {
	return g.engine
}

// Tick returns the number of frames the engine has advanced.
func (g *Game) Tick() int64 {
	return g.engine.Ticks()
}

// String describes the host state for logs.
func (g *Game) String() string {
	return fmt.Sprintf("window %vx%v theme=%s paused=%v", g.screenWidth, g.screenHeight, g.store.Current(), g.paused)
}
