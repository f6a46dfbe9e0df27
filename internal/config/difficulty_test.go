package config

import (
	"testing"
	"time"
)

func TestIntervalForPreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		want   time.Duration
	}{
		{DifficultyEasy, 150 * time.Millisecond},
		{DifficultyNormal, 100 * time.Millisecond},
		{DifficultyHard, 70 * time.Millisecond},
		{DifficultyInsane, 45 * time.Millisecond},
		{"", 100 * time.Millisecond},
	}
	for _, tt := range tests {
		if got := IntervalForPreset(tt.preset); got != tt.want {
			t.Errorf("IntervalForPreset(%q) = %v, want %v", tt.preset, got, tt.want)
		}
	}
}

func TestPacer(t *testing.T) {
	cfg := TickConfig{
		Difficulty: DifficultyNormal,
		Progression: ProgressionConfig{
			Enabled: true,
			Every:   5,
			StepMS:  10,
			MinMS:   60,
		},
	}
	p := NewPacer(cfg)

	tests := []struct {
		score int
		want  time.Duration
	}{
		{0, 100 * time.Millisecond},
		{4, 100 * time.Millisecond},
		{5, 90 * time.Millisecond},
		{19, 70 * time.Millisecond},
		{20, 60 * time.Millisecond},
		{500, 60 * time.Millisecond},
	}
	for _, tt := range tests {
		if got := p.Interval(tt.score); got != tt.want {
			t.Errorf("Interval(%d) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestPacerDisabled(t *testing.T) {
	p := NewPacer(TickConfig{IntervalMS: 80})
	if got := p.Interval(1000); got != 80*time.Millisecond {
		t.Errorf("Interval() = %v, want constant 80ms", got)
	}
	if p.Base() != 80*time.Millisecond {
		t.Errorf("Base() = %v", p.Base())
	}
}
