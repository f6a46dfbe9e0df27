// Package session wraps a snake game with the bookkeeping a driver needs:
// a command log since construction, a game-over hook and deterministic
// replay of finished runs.
package session

import (
	"errors"
	"fmt"
	"slices"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/prng"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// CustomPreset names boards whose size did not come from the registry.
const CustomPreset = "custom"

// ErrReplayMismatch is returned when a replayed run does not end the way it
// was recorded.
var ErrReplayMismatch = errors.New("session: replay does not match recorded run")

// Run describes a finished run. Commands holds every command applied since
// the session was created, so Seed plus Commands rebuild the final state.
type Run struct {
	Preset   string
	Width    int
	Height   int
	Seed     prng.Seed
	Score    int
	Reason   snake.Reason
	Ticks    uint64
	Commands []core.Command
}

// Record converts the run to its storage form.
func (r Run) Record() storage.RunRecord {
	return storage.RunRecord{
		Preset:   r.Preset,
		Width:    r.Width,
		Height:   r.Height,
		Seed:     r.Seed.String(),
		Score:    r.Score,
		Reason:   string(r.Reason),
		Ticks:    int64(r.Ticks),
		Commands: core.EncodeCommands(r.Commands),
	}
}

// RunFromRecord decodes a stored run.
func RunFromRecord(rec storage.RunRecord) (Run, error) {
	seed, err := prng.ParseSeed(rec.Seed)
	if err != nil {
		return Run{}, fmt.Errorf("session: run %d: %w", rec.ID, err)
	}
	cmds, err := core.ParseCommands(rec.Commands)
	if err != nil {
		return Run{}, fmt.Errorf("session: run %d: %w", rec.ID, err)
	}
	return Run{
		Preset:   rec.Preset,
		Width:    rec.Width,
		Height:   rec.Height,
		Seed:     seed,
		Score:    rec.Score,
		Reason:   snake.Reason(rec.Reason),
		Ticks:    uint64(rec.Ticks),
		Commands: cmds,
	}, nil
}

// Session owns one game and everything applied to it.
// Not safe for concurrent use.
type Session struct {
	preset     registry.Preset
	game       *snake.Game
	log        []core.Command
	onGameOver func(Run)
}

// New creates a session on the preset's board.
func New(preset registry.Preset, seed prng.Seed, opts ...snake.Option) (*Session, error) {
	opts = append(slices.Clone(opts), snake.WithSeed(seed))
	g, err := snake.New(preset.Width, preset.Height, opts...)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	return &Session{preset: preset, game: g}, nil
}

// NewCustom creates a session on a board that is not a registered preset.
func NewCustom(width, height int, seed prng.Seed, opts ...snake.Option) (*Session, error) {
	return New(registry.Preset{ID: CustomPreset, Title: "Custom", Width: width, Height: height}, seed, opts...)
}

// OnGameOver registers fn to be called each time a run ends.
func (s *Session) OnGameOver(fn func(Run)) {
	s.onGameOver = fn
}

// Apply records cmd and forwards it to the game.
func (s *Session) Apply(cmd core.Command) {
	if cmd == core.CommandNone {
		return
	}
	wasRunning := s.game.Running()
	s.log = append(s.log, cmd)
	s.game.Apply(cmd)

	if wasRunning && s.game.GameOver() && s.onGameOver != nil {
		s.onGameOver(s.currentRun())
	}
}

// ApplyAll applies cmds in order.
func (s *Session) ApplyAll(cmds []core.Command) {
	for _, c := range cmds {
		s.Apply(c)
	}
}

// currentRun snapshots the current run with the full command log.
func (s *Session) currentRun() Run {
	return Run{
		Preset:   s.preset.ID,
		Width:    s.game.Width(),
		Height:   s.game.Height(),
		Seed:     s.game.Seed(),
		Score:    s.game.Score(),
		Reason:   s.game.Reason(),
		Ticks:    s.game.Ticks(),
		Commands: slices.Clone(s.log),
	}
}

// Game returns the underlying game. Callers must mutate it only through
// the session.
func (s *Session) Game() *snake.Game { return s.game }

// Preset returns the board preset.
func (s *Session) Preset() registry.Preset { return s.preset }

// Commands returns a copy of the command log.
func (s *Session) Commands() []core.Command { return slices.Clone(s.log) }

// Replay rebuilds a recorded run and checks that it ends the same way.
// The returned game is left in its final state.
func Replay(r Run, opts ...snake.Option) (*snake.Game, error) {
	opts = append(slices.Clone(opts), snake.WithSeed(r.Seed))
	g, err := snake.New(r.Width, r.Height, opts...)
	if err != nil {
		return nil, fmt.Errorf("session: replay: %w", err)
	}
	for _, c := range r.Commands {
		g.Apply(c)
	}

	if !g.GameOver() || g.Score() != r.Score || g.Reason() != r.Reason || g.Ticks() != r.Ticks {
		return g, fmt.Errorf("%w: got score %d (%q) after %d ticks, want %d (%q) after %d",
			ErrReplayMismatch, g.Score(), g.Reason(), g.Ticks(), r.Score, r.Reason, r.Ticks)
	}
	return g, nil
}
