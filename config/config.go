// Package config provides configuration loading and access for the animation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all animation configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Theme     ThemeConfig     `yaml:"theme"`
	Engine    EngineConfig    `yaml:"engine"`
	Cursor    CursorConfig    `yaml:"cursor"`
	Terminal  TerminalConfig  `yaml:"terminal"`
	Font      FontConfig      `yaml:"font"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ScreenConfig holds window settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
	Resizable bool   `yaml:"resizable"`
}

// ThemeConfig selects the theme active at startup.
type ThemeConfig struct {
	Initial string `yaml:"initial"` // "dark" or "light"
}

// EngineConfig groups the per-population parameters of the animation engine.
type EngineConfig struct {
	TimeStep  float64       `yaml:"time_step"`  // Elapsed-time increment per frame (seconds)
	FadeAlpha float64       `yaml:"fade_alpha"` // Opacity of the trailing fill composited each frame
	Snippets  SnippetConfig `yaml:"snippets"`
	Rain      RainConfig    `yaml:"rain"`
	Symbols   SymbolConfig  `yaml:"symbols"`
	Links     LinkConfig    `yaml:"links"`
	Glow      GlowConfig    `yaml:"glow"`
}

// SnippetConfig holds drifting code-snippet parameters.
type SnippetConfig struct {
	Count           int     `yaml:"count"`
	MaxCount        int     `yaml:"max_count"`        // Hard cap; the link pass is O(n^2)
	RepulsionRadius float64 `yaml:"repulsion_radius"` // Pointer distance below which snippets flee
	PushDistance    float64 `yaml:"push_distance"`    // Target displacement at zero distance
	Easing          float64 `yaml:"easing"`           // Fraction of the remaining gap closed per frame
	RecycleMargin   float64 `yaml:"recycle_margin"`   // Recycle when target.y > height + margin
	SpeedMin        float64 `yaml:"speed_min"`
	SpeedRange      float64 `yaml:"speed_range"`
	FontMin         float64 `yaml:"font_min"`
	FontRange       float64 `yaml:"font_range"`
	HoverBoost      float64 `yaml:"hover_boost"` // Max opacity added at the pointer
	GlowBlur        float64 `yaml:"glow_blur"`   // Max halo size at the pointer
}

// RainConfig holds binary-rain column parameters.
type RainConfig struct {
	ColumnSpacing float64 `yaml:"column_spacing"`
	ColumnJitter  float64 `yaml:"column_jitter"`
	RowHeight     float64 `yaml:"row_height"`
	RowFade       float64 `yaml:"row_fade"` // Alpha lost per row below the head
	SpeedMin      float64 `yaml:"speed_min"`
	SpeedRange    float64 `yaml:"speed_range"`
	RecycleMargin float64 `yaml:"recycle_margin"`
	RestartY      float64 `yaml:"restart_y"`
	FontSize      float64 `yaml:"font_size"`
}

// SymbolConfig holds floating-symbol parameters.
type SymbolConfig struct {
	Count         int     `yaml:"count"`
	BobAmplitude  float64 `yaml:"bob_amplitude"`
	BobFrequency  float64 `yaml:"bob_frequency"`
	RotationSpeed float64 `yaml:"rotation_speed"` // Full spread; actual speed is in +-half of this
	FontSize      float64 `yaml:"font_size"`
}

// LinkConfig holds connecting-line parameters.
type LinkConfig struct {
	Distance float64 `yaml:"distance"`
	MaxAlpha float64 `yaml:"max_alpha"`
}

// GlowConfig holds pointer glow parameters.
type GlowConfig struct {
	Radius float64 `yaml:"radius"`
}

// CursorConfig holds custom cursor follower parameters.
type CursorConfig struct {
	Enabled       bool    `yaml:"enabled"`
	RingSize      float64 `yaml:"ring_size"`
	RingHoverSize float64 `yaml:"ring_hover_size"`
	RingStiffness float64 `yaml:"ring_stiffness"`
	RingDamping   float64 `yaml:"ring_damping"`
	DotSize       float64 `yaml:"dot_size"`
	DotStiffness  float64 `yaml:"dot_stiffness"`
	DotDamping    float64 `yaml:"dot_damping"`
	Substeps      int     `yaml:"substeps"`
}

// TerminalConfig holds terminal host parameters.
type TerminalConfig struct {
	CellWidth  float64 `yaml:"cell_width"`  // Surface pixels per cell column
	CellHeight float64 `yaml:"cell_height"` // Surface pixels per cell row
	TargetFPS  int     `yaml:"target_fps"`
}

// FontConfig holds font settings for the window host.
type FontConfig struct {
	Path string `yaml:"path"` // Empty = raylib default font
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"` // Seconds per stats window
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.normalize()

	return cfg, nil
}

// Default returns the embedded defaults. Panics if they do not parse.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults invalid: %v", err))
	}
	return cfg
}

func (c *Config) validate() error {
	switch c.Theme.Initial {
	case "dark", "light":
	default:
		return fmt.Errorf("theme.initial: unknown theme %q", c.Theme.Initial)
	}
	if c.Engine.Snippets.Count < 0 {
		return fmt.Errorf("engine.snippets.count: must not be negative, got %d", c.Engine.Snippets.Count)
	}
	if c.Engine.Snippets.MaxCount <= 0 {
		return fmt.Errorf("engine.snippets.max_count: must be positive, got %d", c.Engine.Snippets.MaxCount)
	}
	if c.Engine.Symbols.Count < 0 {
		return fmt.Errorf("engine.symbols.count: must not be negative, got %d", c.Engine.Symbols.Count)
	}
	if c.Engine.Rain.ColumnSpacing <= 0 {
		return fmt.Errorf("engine.rain.column_spacing: must be positive, got %v", c.Engine.Rain.ColumnSpacing)
	}
	if c.Engine.Snippets.RepulsionRadius <= 0 || c.Engine.Links.Distance <= 0 {
		return fmt.Errorf("engine: repulsion_radius and links.distance must be positive")
	}
	return nil
}

// normalize fills in minimums for values that have a safe floor.
func (c *Config) normalize() {
	if c.Cursor.Substeps < 1 {
		c.Cursor.Substeps = 1
	}
}

// SnippetCount returns the configured snippet population clamped to MaxCount.
func (c *Config) SnippetCount() int {
	n := c.Engine.Snippets.Count
	if n > c.Engine.Snippets.MaxCount {
		n = c.Engine.Snippets.MaxCount
	}
	if n < 0 {
		n = 0
	}
	return n
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := c.MarshalYAMLBytes()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// MarshalYAMLBytes returns the configuration encoded as YAML.
func (c *Config) MarshalYAMLBytes() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	return data, nil
}
