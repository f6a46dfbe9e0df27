package snake

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/prng"
)

// GameStateType represents the current run state.
type GameStateType string

const (
	StateRunning  GameStateType = "running"
	StateGameOver GameStateType = "game_over"
)

// Snapshot captures the complete game state for determinism testing and
// replay verification. Set-valued fields keep the engine's storage order.
type Snapshot struct {
	Width            int
	Height           int
	Seed             prng.Seed
	Ticks            uint64
	Score            int
	HighScore        int
	HighScoreDisplay int
	Dir              core.Direction
	NextDir          core.Direction
	Snake            []core.Vec
	Food             []core.Vec
	Hazards          []core.Vec
	Free             []core.Vec
	State            GameStateType
	Reason           Reason
}

// Snapshot returns a deep copy of the current state.
func (g *Game) Snapshot() Snapshot {
	state := StateRunning
	if g.gameOver {
		state = StateGameOver
	}

	return Snapshot{
		Width:            g.width,
		Height:           g.height,
		Seed:             g.rng.Seed(),
		Ticks:            g.ticks,
		Score:            g.score,
		HighScore:        g.highScore,
		HighScoreDisplay: g.highScoreDisplay,
		Dir:              g.direction,
		NextDir:          g.nextDirection,
		Snake:            g.Snake(),
		Food:             g.food.Items(),
		Hazards:          g.hazards.Items(),
		Free:             g.free.Items(),
		State:            state,
		Reason:           g.reason,
	}
}

// cellRunes are the plain-text glyphs used by DebugState.
var cellRunes = map[Cell]rune{
	CellEmpty:  '.',
	CellHead:   'O',
	CellBody:   'o',
	CellFood:   '*',
	CellHazard: '~',
}

// DebugState returns a plain-text dump of the board and counters.
func (g *Game) DebugState() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Score: %d, High: %d\n", g.ticks, g.score, g.highScoreDisplay)
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s, Free: %d\n", len(g.snake), g.direction, g.free.Len())
	if g.gameOver {
		fmt.Fprintf(&b, "Game over: %s\n", g.reason)
	}
	for y := range g.height {
		for x := range g.width {
			b.WriteRune(cellRunes[g.CellAt(core.V(x, y))])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
