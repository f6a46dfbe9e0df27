package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the hard-coded defaults, used when the embedded
// YAML cannot be parsed.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Preset: "classic",
		},
		Tick: TickConfig{
			Difficulty: DifficultyNormal,
			Progression: ProgressionConfig{
				Enabled: false,
				Every:   5,
				StepMS:  5,
				MinMS:   45,
			},
		},
		Storage: StorageConfig{
			DBPath: "~/.snake/runs.db",
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.snake/snake.log",
		},
		SSH: SSHConfig{
			Address:            ":23234",
			IdleTimeoutMinutes: 30,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
