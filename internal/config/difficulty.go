package config

import "time"

// DifficultyPreset represents a named tick speed.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyInsane DifficultyPreset = "insane"
)

// Presets lists the difficulty presets from slowest to fastest.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyInsane}

// IntervalForPreset returns the tick interval for a difficulty preset.
// Unknown or empty presets fall back to normal.
func IntervalForPreset(preset DifficultyPreset) time.Duration {
	switch preset {
	case DifficultyEasy:
		return 150 * time.Millisecond
	case DifficultyHard:
		return 70 * time.Millisecond
	case DifficultyInsane:
		return 45 * time.Millisecond
	default:
		return 100 * time.Millisecond
	}
}

// ValidPreset reports whether preset is known. Empty means default.
func ValidPreset(preset DifficultyPreset) bool {
	if preset == "" {
		return true
	}
	for _, p := range Presets {
		if p == preset {
			return true
		}
	}
	return false
}

// Pacer calculates the tick interval for the current score.
type Pacer struct {
	base time.Duration
	prog ProgressionConfig
}

// NewPacer creates a pacer from tick configuration.
func NewPacer(cfg TickConfig) *Pacer {
	return &Pacer{
		base: cfg.Interval(),
		prog: cfg.Progression,
	}
}

// Base returns the interval at score zero.
func (p *Pacer) Base() time.Duration {
	return p.base
}

// Interval returns the tick interval for score.
func (p *Pacer) Interval(score int) time.Duration {
	if !p.prog.Enabled || p.prog.Every <= 0 || p.prog.StepMS <= 0 {
		return p.base
	}

	steps := score / p.prog.Every
	interval := p.base - time.Duration(steps*p.prog.StepMS)*time.Millisecond

	floor := time.Duration(p.prog.MinMS) * time.Millisecond
	if floor <= 0 {
		floor = time.Millisecond
	}
	return max(interval, floor)
}
