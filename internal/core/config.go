package core

import "time"

// RuntimeConfig contains configuration passed from the platform layer to a
// driver. The engine itself only ever sees board dimensions and a seed.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters
	ScreenH      int           // Screen height in characters
	TickInterval time.Duration // Time between engine steps
	Seed         int64         // RNG seed; 0 means seed from host entropy
	Debug        bool          // Show the semi-open tile overlay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		TickInterval: 100 * time.Millisecond,
	}
}

// TickRate returns the number of engine steps per second.
func (c RuntimeConfig) TickRate() int {
	if c.TickInterval <= 0 {
		return 0
	}
	return int(time.Second / c.TickInterval)
}
