package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}

	if cfg.Engine.Snippets.Count != 50 {
		t.Errorf("snippets.count = %d, want 50", cfg.Engine.Snippets.Count)
	}
	if cfg.Engine.Snippets.RepulsionRadius != 180 {
		t.Errorf("repulsion_radius = %v, want 180", cfg.Engine.Snippets.RepulsionRadius)
	}
	if cfg.Engine.Rain.ColumnSpacing != 35 {
		t.Errorf("column_spacing = %v, want 35", cfg.Engine.Rain.ColumnSpacing)
	}
	if cfg.Engine.Symbols.Count != 12 {
		t.Errorf("symbols.count = %d, want 12", cfg.Engine.Symbols.Count)
	}
	if cfg.Theme.Initial != "dark" {
		t.Errorf("theme.initial = %q, want dark", cfg.Theme.Initial)
	}
	if cfg.SnippetCount() != 50 {
		t.Errorf("snippet count = %d, want 50", cfg.SnippetCount())
	}
	if cfg.Cursor.Substeps < 1 {
		t.Errorf("cursor substeps = %d, want >= 1", cfg.Cursor.Substeps)
	}
}

func TestLoadOverridesOnlyPresentFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := "theme:\n  initial: light\nengine:\n  snippets:\n    count: 500\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Theme.Initial != "light" {
		t.Errorf("theme.initial = %q, want light", cfg.Theme.Initial)
	}
	if cfg.Engine.Snippets.RepulsionRadius != 180 {
		t.Errorf("repulsion_radius should keep default, got %v", cfg.Engine.Snippets.RepulsionRadius)
	}
	// Count above the cap is clamped so the pairwise link pass stays bounded
	if cfg.SnippetCount() != cfg.Engine.Snippets.MaxCount {
		t.Errorf("snippet count = %d, want cap %d", cfg.SnippetCount(), cfg.Engine.Snippets.MaxCount)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"unknown theme", "theme:\n  initial: sepia\n", "unknown theme"},
		{"negative snippets", "engine:\n  snippets:\n    count: -1\n", "snippets.count"},
		{"zero spacing", "engine:\n  rain:\n    column_spacing: 0\n", "column_spacing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil || !strings.Contains(err.Error(), "reading config file") {
		t.Errorf("expected wrapped read error, got %v", err)
	}
}

func TestWriteYAMLRoundtrip(t *testing.T) {
	cfg := Default()
	cfg.Engine.Snippets.Count = 42

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if loaded.Engine.Snippets.Count != 42 {
		t.Errorf("snippets.count = %d, want 42", loaded.Engine.Snippets.Count)
	}
}

func TestCfgBeforeInitPanics(t *testing.T) {
	saved := global
	global = nil
	defer func() {
		global = saved
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	Cfg()
}

func TestLoadFloorsCursorSubsteps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("cursor:\n  substeps: 0\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Cursor.Substeps != 1 {
		t.Errorf("substeps = %d, want 1", cfg.Cursor.Substeps)
	}
}
