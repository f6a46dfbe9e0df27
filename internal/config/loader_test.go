package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultYAMLMatchesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	def := DefaultSnakeConfig()
	if cfg.Board.Preset != def.Board.Preset {
		t.Errorf("Board.Preset = %q, want %q", cfg.Board.Preset, def.Board.Preset)
	}
	if cfg.Tick.Difficulty != def.Tick.Difficulty {
		t.Errorf("Tick.Difficulty = %q, want %q", cfg.Tick.Difficulty, def.Tick.Difficulty)
	}
	if cfg.Storage.DBPath != def.Storage.DBPath {
		t.Errorf("Storage.DBPath = %q, want %q", cfg.Storage.DBPath, def.Storage.DBPath)
	}
	if cfg.SSH.Address != def.SSH.Address {
		t.Errorf("SSH.Address = %q, want %q", cfg.SSH.Address, def.SSH.Address)
	}
	if cfg.Tick.Progression != def.Tick.Progression {
		t.Errorf("Tick.Progression = %+v, want %+v", cfg.Tick.Progression, def.Tick.Progression)
	}
}

func TestLoadCustomPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "snake.yaml")
	data := []byte("board:\n  width: 12\n  height: 8\ntick:\n  difficulty: hard\nseed: 42\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if !cfg.Board.HasCustomSize() || cfg.Board.Width != 12 || cfg.Board.Height != 8 {
		t.Errorf("Board = %+v, want 12x8", cfg.Board)
	}
	if cfg.Tick.Interval() != 70*time.Millisecond {
		t.Errorf("Interval() = %v, want 70ms", cfg.Tick.Interval())
	}
	if cfg.Seed != 42 {
		t.Errorf("Seed = %d, want 42", cfg.Seed)
	}
	// Fields missing from the file keep their defaults.
	if cfg.SSH.IdleTimeout() != 30*time.Minute {
		t.Errorf("IdleTimeout() = %v, want 30m", cfg.SSH.IdleTimeout())
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() with missing file should fail")
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	dir := filepath.Join(home, ".snake")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("board:\n  preset: tiny\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Board.Preset != "tiny" {
		t.Errorf("Board.Preset = %q, want tiny", cfg.Board.Preset)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Setenv("SNAKE_PRESET", "wide")
	t.Setenv("SNAKE_TICK_MS", "33")
	t.Setenv("SNAKE_SEED", "-7")
	t.Setenv("SNAKE_DB", "/tmp/runs.db")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Board.Preset != "wide" {
		t.Errorf("Board.Preset = %q, want wide", cfg.Board.Preset)
	}
	if cfg.Tick.Interval() != 33*time.Millisecond {
		t.Errorf("Interval() = %v, want 33ms", cfg.Tick.Interval())
	}
	if cfg.Seed != -7 {
		t.Errorf("Seed = %d, want -7", cfg.Seed)
	}
	if cfg.Storage.DBPath != "/tmp/runs.db" {
		t.Errorf("Storage.DBPath = %q", cfg.Storage.DBPath)
	}
}

func TestLoadEnvInvalid(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Setenv("SNAKE_TICK_MS", "fast")

	if _, err := Load(""); err == nil {
		t.Error("Load() should fail on a non-numeric SNAKE_TICK_MS")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SnakeConfig)
		wantErr bool
	}{
		{"defaults", func(*SnakeConfig) {}, false},
		{"custom size", func(c *SnakeConfig) { c.Board.Width, c.Board.Height = 5, 3 }, false},
		{"too narrow", func(c *SnakeConfig) { c.Board.Width, c.Board.Height = 4, 10 }, true},
		{"too short", func(c *SnakeConfig) { c.Board.Width, c.Board.Height = 10, 2 }, true},
		{"half size", func(c *SnakeConfig) { c.Board.Width = 10 }, true},
		{"no board", func(c *SnakeConfig) { c.Board.Preset = "" }, true},
		{"negative interval", func(c *SnakeConfig) { c.Tick.IntervalMS = -1 }, true},
		{"unknown difficulty", func(c *SnakeConfig) { c.Tick.Difficulty = "brutal" }, true},
		{"empty difficulty", func(c *SnakeConfig) { c.Tick.Difficulty = "" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandHome("~/.snake/runs.db")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(home, ".snake", "runs.db"); got != want {
		t.Errorf("ExpandHome() = %q, want %q", got, want)
	}

	got, _ = ExpandHome("/abs/path.db")
	if got != "/abs/path.db" {
		t.Errorf("ExpandHome() changed an absolute path: %q", got)
	}
}
