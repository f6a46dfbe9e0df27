// Package config provides YAML-based configuration loading and tick-rate
// difficulty management for the snake drivers.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// SnakeConfig contains all driver configuration.
type SnakeConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Tick    TickConfig    `yaml:"tick"`
	Seed    int64         `yaml:"seed" env:"SNAKE_SEED"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
	SSH     SSHConfig     `yaml:"ssh"`
}

// BoardConfig selects the board size.
type BoardConfig struct {
	Preset string `yaml:"preset" env:"SNAKE_PRESET"`
	Width  int    `yaml:"width" env:"SNAKE_BOARD_WIDTH"`   // Overrides the preset when set with Height
	Height int    `yaml:"height" env:"SNAKE_BOARD_HEIGHT"` // Overrides the preset when set with Width
}

// TickConfig defines how fast the driver steps the engine.
type TickConfig struct {
	Difficulty  DifficultyPreset  `yaml:"difficulty" env:"SNAKE_DIFFICULTY"`
	IntervalMS  int               `yaml:"interval_ms" env:"SNAKE_TICK_MS"` // 0 = use Difficulty
	Progression ProgressionConfig `yaml:"progression"`
}

// ProgressionConfig speeds the tick up as the score grows.
type ProgressionConfig struct {
	Enabled bool `yaml:"enabled" env:"SNAKE_PROGRESSION"`
	Every   int  `yaml:"every"`   // Points per speed step
	StepMS  int  `yaml:"step_ms"` // Interval reduction per step
	MinMS   int  `yaml:"min_ms"`  // Fastest allowed interval
}

// StorageConfig locates the run history database.
type StorageConfig struct {
	DBPath string `yaml:"db_path" env:"SNAKE_DB"`
}

// LogConfig configures the diagnostic logger.
type LogConfig struct {
	Level string `yaml:"level" env:"SNAKE_LOG_LEVEL"`
	File  string `yaml:"file" env:"SNAKE_LOG_FILE"` // Used while the TUI owns the terminal
}

// SSHConfig configures the remote play server.
type SSHConfig struct {
	Address            string `yaml:"address" env:"SNAKE_SSH_ADDR"`
	HostKey            string `yaml:"host_key" env:"SNAKE_SSH_HOST_KEY"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes" env:"SNAKE_SSH_IDLE_TIMEOUT"`
}

// IdleTimeout returns the SSH idle timeout as a duration.
func (c SSHConfig) IdleTimeout() time.Duration {
	return time.Duration(c.IdleTimeoutMinutes) * time.Minute
}

// HasCustomSize reports whether explicit board dimensions are configured.
func (b BoardConfig) HasCustomSize() bool {
	return b.Width > 0 && b.Height > 0
}

// Interval returns the base tick interval.
func (t TickConfig) Interval() time.Duration {
	if t.IntervalMS > 0 {
		return time.Duration(t.IntervalMS) * time.Millisecond
	}
	return IntervalForPreset(t.Difficulty)
}

// Validate checks values that would otherwise fail deep inside a driver.
func (c SnakeConfig) Validate() error {
	if c.Board.Width != 0 || c.Board.Height != 0 {
		if c.Board.Width < snake.MinWidth || c.Board.Height < snake.MinHeight {
			return fmt.Errorf("config: board %dx%d is smaller than %dx%d",
				c.Board.Width, c.Board.Height, snake.MinWidth, snake.MinHeight)
		}
	}
	if !c.Board.HasCustomSize() && c.Board.Preset == "" {
		return fmt.Errorf("config: board needs a preset or both width and height")
	}
	if c.Tick.IntervalMS < 0 {
		return fmt.Errorf("config: tick interval_ms must not be negative")
	}
	if !ValidPreset(c.Tick.Difficulty) {
		return fmt.Errorf("config: unknown difficulty %q", c.Tick.Difficulty)
	}
	return nil
}
