// Package anim holds the animation engine and the display-independent parts
// of its hosts: options, the frame loop, telemetry hooks and the headless run.
package anim

import (
	"errors"
	"math"
	"math/rand"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/codedrift/components"
	"github.com/pthm-cable/codedrift/config"
	"github.com/pthm-cable/codedrift/systems"
	"github.com/pthm-cable/codedrift/telemetry"
	"github.com/pthm-cable/codedrift/theme"
)

// PhaseTimer is told when each update phase of a tick begins.
// telemetry.PerfCollector satisfies it.
type PhaseTimer interface {
	StartPhase(phase string)
}

// ErrSurfaceUnavailable is returned by Init when the surface has no area.
// The engine stays inert: Tick returns nil until a later mount succeeds.
var ErrSurfaceUnavailable = errors.New("engine: drawing surface unavailable")

// ErrDisposed is returned by Init after Dispose.
var ErrDisposed = errors.New("engine: disposed")

// Engine owns the particle populations of one surface and advances them one
// frame per Tick. Every population lives in an ECS world created at mount and
// discarded on the next mount; entities are never added or removed in
// between, they are recycled in place.
//
// Engine is not safe for concurrent use. Hosts call every method from the
// goroutine that drives the frame loop.
type Engine struct {
	cfg *config.Config
	rng *rand.Rand

	world    *ecs.World
	rain     *systems.RainSystem
	symbols  *systems.SymbolSystem
	snippets *systems.SnippetSystem
	links    *systems.LinkSystem

	// Slot tables: index -> entity, fixed for the lifetime of a mount.
	columnSlots  []ecs.Entity
	symbolSlots  []ecs.Entity
	snippetSlots []ecs.Entity

	columnMap  *ecs.Map[components.BinaryColumn]
	symbolMap  *ecs.Map[components.FloatingSymbol]
	posMap     *ecs.Map[components.Position]
	targetMap  *ecs.Map[components.Target]
	snippetMap *ecs.Map[components.Snippet]

	width, height float64
	theme         theme.Theme
	palette       theme.Palette
	pointer       systems.Pointer
	timer         PhaseTimer

	time   float64
	ticks  int64
	mounts int
	frame  *systems.Frame

	mounted  bool
	disposed bool
}

// NewEngine creates an unmounted engine. Call Init before Tick.
func NewEngine(cfg *config.Config, seed int64) *Engine {
	return &Engine{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Init mounts the engine on a width x height surface with the palette of t.
// Any previous particle state is discarded. Elapsed time restarts at zero;
// the pointer snapshot survives because it belongs to the host, not the mount.
func (e *Engine) Init(width, height float64, t theme.Theme) error {
	if e.disposed {
		return ErrDisposed
	}

	e.width, e.height = width, height
	e.theme = t
	e.palette = theme.PaletteFor(t)
	e.unmount()

	if width <= 0 || height <= 0 {
		return ErrSurfaceUnavailable
	}

	ec := &e.cfg.Engine
	world := ecs.NewWorld()

	e.world = world
	e.rain = systems.NewRainSystem(world, ec.Rain, e.rng)
	e.symbols = systems.NewSymbolSystem(world, ec.Symbols, e.rng)
	e.snippets = systems.NewSnippetSystem(world, ec.Snippets, e.rng)
	e.links = systems.NewLinkSystem(ec.Links)

	e.columnMap = ecs.NewMap[components.BinaryColumn](world)
	e.symbolMap = ecs.NewMap[components.FloatingSymbol](world)
	e.posMap = ecs.NewMap[components.Position](world)
	e.targetMap = ecs.NewMap[components.Target](world)
	e.snippetMap = ecs.NewMap[components.Snippet](world)

	e.snippetSlots = e.snippets.Populate(world, e.cfg.SnippetCount(), width, height, &e.palette)
	e.columnSlots = e.rain.Populate(world, width, height, e.palette.Binary.A)
	e.symbolSlots = e.symbols.Populate(world, width, height)

	e.frame = systems.NewFrame(len(e.columnSlots), len(e.symbolSlots), len(e.snippetSlots))
	e.frame.Palette = e.palette
	e.frame.FadeAlpha = ec.FadeAlpha
	e.frame.GlowRadius = ec.Glow.Radius

	e.time = 0
	e.mounted = true
	e.mounts++
	e.logMount()
	return nil
}

// SetTheme remounts the engine with the palette of t. All particle state is
// rebuilt so nothing drawn with the previous palette survives.
func (e *Engine) SetTheme(t theme.Theme) error {
	return e.Init(e.width, e.height, t)
}

// Tick advances every population by one frame and returns the draw list.
// Returns nil while the engine is not mounted.
func (e *Engine) Tick(dt float64) *systems.Frame {
	if !e.mounted {
		return nil
	}

	e.time += dt
	e.ticks++

	f := e.frame
	f.Reset()
	f.Time = e.time
	f.Width, f.Height = e.width, e.height

	// Layer order is part of the output contract: later layers draw on top.
	e.phase(telemetry.PhaseRain)
	e.rain.Update(e.height, f)
	e.phase(telemetry.PhaseSymbols)
	e.symbols.Update(e.time, f)
	e.phase(telemetry.PhaseSnippets)
	e.snippets.Update(e.pointer, e.width, e.height, f)
	e.phase(telemetry.PhaseLinks)
	e.links.Update(f)

	if e.pointer.Seen {
		f.PointerGlow = true
		f.Pointer = e.pointer.Pos
	}

	return f
}

func (e *Engine) phase(name string) {
	if e.timer != nil {
		e.timer.StartPhase(name)
	}
}

// SetPhaseTimer installs t to receive phase boundaries. nil disables timing.
func (e *Engine) SetPhaseTimer(t PhaseTimer) {
	e.timer = t
}

// Resize updates the surface dimensions. Particles keep their positions and
// are brought back by their own recycling. A resize that gives an unmounted
// engine a non-empty surface mounts it. Negative sizes are treated as zero.
func (e *Engine) Resize(width, height float64) {
	if e.disposed {
		return
	}
	e.width, e.height = math.Max(width, 0), math.Max(height, 0)
	if !e.mounted && width > 0 && height > 0 {
		_ = e.Init(width, height, e.theme)
	}
}

// PointerMove records the pointer position in surface coordinates.
func (e *Engine) PointerMove(x, y float64) {
	e.pointer = systems.Pointer{Pos: r2.Vec{X: x, Y: y}, Seen: true}
}

// PointerLeave forgets the pointer until the next move.
func (e *Engine) PointerLeave() {
	e.pointer.Seen = false
}

// Dispose releases all particle state. Further calls to Init fail and Tick
// returns nil. Calling Dispose again is a no-op.
func (e *Engine) Dispose() {
	if e.disposed {
		return
	}
	e.unmount()
	e.disposed = true
}

func (e *Engine) unmount() {
	e.mounted = false
	e.world = nil
	e.rain, e.symbols, e.snippets, e.links = nil, nil, nil, nil
	e.columnSlots, e.symbolSlots, e.snippetSlots = nil, nil, nil
	e.columnMap, e.symbolMap = nil, nil
	e.posMap, e.targetMap, e.snippetMap = nil, nil, nil
	e.frame = nil
}

// Mounted reports whether the engine has live particle state.
func (e *Engine) Mounted() bool { return e.mounted }

// Mounts returns how many times the engine has been mounted.
func (e *Engine) Mounts() int { return e.mounts }

// Size returns the current surface dimensions.
func (e *Engine) Size() (width, height float64) { return e.width, e.height }

// Theme returns the theme of the current mount.
func (e *Engine) Theme() theme.Theme { return e.theme }

// Palette returns the palette of the current mount.
func (e *Engine) Palette() theme.Palette { return e.palette }

// Time returns the elapsed animation time since the last mount.
func (e *Engine) Time() float64 { return e.time }

// Ticks returns the number of frames advanced over the engine's lifetime.
func (e *Engine) Ticks() int64 { return e.ticks }

// Pointer returns the pointer snapshot.
func (e *Engine) Pointer() systems.Pointer { return e.pointer }

// Frame returns the draw list of the last tick. It is empty before the first
// tick of a mount and nil while unmounted.
func (e *Engine) Frame() *systems.Frame { return e.frame }

// Counts returns the population sizes of the current mount.
func (e *Engine) Counts() (columns, symbols, snippets int) {
	return len(e.columnSlots), len(e.symbolSlots), len(e.snippetSlots)
}

// Snippet returns the components of snippet slot i. The pointers stay valid
// until the next mount.
func (e *Engine) Snippet(i int) (*components.Position, *components.Target, *components.Snippet) {
	ent := e.snippetSlots[i]
	return e.posMap.Get(ent), e.targetMap.Get(ent), e.snippetMap.Get(ent)
}

// Column returns binary-rain column slot i.
func (e *Engine) Column(i int) *components.BinaryColumn {
	return e.columnMap.Get(e.columnSlots[i])
}

// Symbol returns floating symbol slot i.
func (e *Engine) Symbol(i int) *components.FloatingSymbol {
	return e.symbolMap.Get(e.symbolSlots[i])
}
