package anim

import (
	"github.com/pthm-cable/codedrift/config"
	"github.com/pthm-cable/codedrift/theme"
)

// Options configures a host. Zero values fall back to the loaded config.
type Options struct {
	Config         *config.Config
	Seed           int64
	Theme          string  // "dark" or "light"; empty uses config
	LogStats       bool    // log window and perf stats through slog
	StatsWindowSec float64 // 0 uses config
	OutputDir      string  // CSV output; empty disables
	Headless       bool
	Frames         int     // headless frame count; 0 runs one stats window
	Width, Height  float64 // headless surface; 0 uses config screen size
	PointerOrbit   bool    // headless: circle a synthetic pointer around the center
	ShowHUD        bool
}

// EffectiveConfig returns Config, or the global config when it is nil.
func (o Options) EffectiveConfig() *config.Config {
	if o.Config != nil {
		return o.Config
	}
	return config.Cfg()
}

// statsWindow returns the effective stats window in seconds.
func (o Options) statsWindow() float64 {
	if o.StatsWindowSec > 0 {
		return o.StatsWindowSec
	}
	return o.EffectiveConfig().Telemetry.StatsWindow
}

// surface returns the effective headless surface size.
func (o Options) surface() (float64, float64) {
	cfg := o.EffectiveConfig()
	w, h := o.Width, o.Height
	if w <= 0 {
		w = float64(cfg.Screen.Width)
	}
	if h <= 0 {
		h = float64(cfg.Screen.Height)
	}
	return w, h
}

// InitialTheme returns the startup theme.
func (o Options) InitialTheme() (theme.Theme, error) {
	name := o.Theme
	if name == "" {
		name = o.EffectiveConfig().Theme.Initial
	}
	return theme.Parse(name)
}

// TimeStep returns the elapsed-time increment per frame.
func (o Options) TimeStep() float64 {
	if dt := o.EffectiveConfig().Engine.TimeStep; dt > 0 {
		return dt
	}
	return 0.016
}
