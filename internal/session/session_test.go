package session

import (
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/prng"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

func quiet() snake.Option {
	return snake.WithLogger(log.New(io.Discard))
}

func tinyPreset(t *testing.T) registry.Preset {
	t.Helper()
	p, err := registry.Get("tiny")
	if err != nil {
		t.Fatalf("registry.Get(tiny) failed: %v", err)
	}
	return p
}

func steps(n int) []core.Command {
	cmds := make([]core.Command, n)
	for i := range cmds {
		cmds[i] = core.CommandStep
	}
	return cmds
}

func TestGameOverHookFiresOnce(t *testing.T) {
	s, err := New(tinyPreset(t), prng.Seed{1, 2}, quiet())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	var runs []Run
	s.OnGameOver(func(r Run) { runs = append(runs, r) })

	// Straight left from (3,2) leaves the board on the fourth step.
	s.ApplyAll(steps(10))

	if len(runs) != 1 {
		t.Fatalf("hook fired %d times, want 1", len(runs))
	}
	r := runs[0]
	if r.Reason != snake.ReasonWall {
		t.Errorf("Reason = %q, want %q", r.Reason, snake.ReasonWall)
	}
	if r.Preset != "tiny" || r.Width != 5 || r.Height != 5 {
		t.Errorf("Run board = %s %dx%d", r.Preset, r.Width, r.Height)
	}
	if r.Ticks != 4 {
		t.Errorf("Ticks = %d, want 4", r.Ticks)
	}
	if len(r.Commands) != 4 {
		t.Errorf("Run carries %d commands, want 4", len(r.Commands))
	}
	if len(s.Commands()) != 10 {
		t.Errorf("session log has %d commands, want 10", len(s.Commands()))
	}
}

func TestApplyIgnoresNone(t *testing.T) {
	s, err := New(tinyPreset(t), prng.Seed{1, 2}, quiet())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	s.Apply(core.CommandNone)
	if len(s.Commands()) != 0 {
		t.Error("CommandNone should not be logged")
	}
}

func TestHookFiresForEveryRun(t *testing.T) {
	s, err := New(tinyPreset(t), prng.Seed{9, 9}, quiet())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	var runs []Run
	s.OnGameOver(func(r Run) { runs = append(runs, r) })

	s.ApplyAll(steps(4))
	s.Apply(core.CommandRestart)
	s.ApplyAll(steps(4))

	if len(runs) != 2 {
		t.Fatalf("hook fired %d times, want 2", len(runs))
	}
	// The second run carries the first run's prefix.
	if len(runs[1].Commands) != 9 {
		t.Errorf("second run carries %d commands, want 9", len(runs[1].Commands))
	}
}

func TestReplayReproducesRun(t *testing.T) {
	s, err := NewCustom(8, 6, prng.Seed{0xbeef, 0x0042}, quiet())
	if err != nil {
		t.Fatalf("NewCustom() failed: %v", err)
	}

	var last Run
	s.OnGameOver(func(r Run) { last = r })

	script, err := core.ParseCommands("..U..R...D..L.... X ..D.R..U...")
	if err != nil {
		t.Fatal(err)
	}
	s.ApplyAll(script)
	for s.Game().Running() {
		s.Apply(core.CommandStep)
	}

	g, err := Replay(last, quiet())
	if err != nil {
		t.Fatalf("Replay() failed: %v", err)
	}
	if g.Score() != s.Game().Score() {
		t.Errorf("replayed score %d, want %d", g.Score(), s.Game().Score())
	}
	if g.DebugState() != s.Game().DebugState() {
		t.Errorf("replayed board differs:\n%s\nwant:\n%s", g.DebugState(), s.Game().DebugState())
	}
}

func TestReplayDetectsMismatch(t *testing.T) {
	s, err := New(tinyPreset(t), prng.Seed{3, 4}, quiet())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	var last Run
	s.OnGameOver(func(r Run) { last = r })
	s.ApplyAll(steps(4))

	last.Score = 99
	if _, err := Replay(last, quiet()); !errors.Is(err, ErrReplayMismatch) {
		t.Errorf("Replay() error = %v, want ErrReplayMismatch", err)
	}

	last.Width = 2
	if _, err := Replay(last, quiet()); !errors.Is(err, snake.ErrInvalidDimensions) {
		t.Errorf("Replay() error = %v, want ErrInvalidDimensions", err)
	}
}

func TestRecordRoundTrip(t *testing.T) {
	r := Run{
		Preset:   "classic",
		Width:    20,
		Height:   16,
		Seed:     prng.Seed{0x1234, 0xabcd},
		Score:    3,
		Reason:   snake.ReasonSelf,
		Ticks:    57,
		Commands: []core.Command{core.CommandStep, core.CommandMoveUp, core.CommandRestart, core.CommandStep},
	}

	rec := r.Record()
	if rec.Seed != "1234:abcd" || rec.Commands != ".UX." {
		t.Errorf("Record() = %+v", rec)
	}

	got, err := RunFromRecord(rec)
	if err != nil {
		t.Fatalf("RunFromRecord() failed: %v", err)
	}
	if got.Seed != r.Seed || got.Reason != r.Reason || got.Ticks != r.Ticks || len(got.Commands) != 4 {
		t.Errorf("RunFromRecord() = %+v", got)
	}

	rec.Commands = ".?"
	if _, err := RunFromRecord(rec); err == nil {
		t.Error("RunFromRecord() should reject unknown command codes")
	}
}
