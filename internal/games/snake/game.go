package snake

import (
	"errors"
	"fmt"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/prng"
)

// Minimum board dimensions.
const (
	MinWidth  = 5
	MinHeight = 3
)

// ErrInvalidDimensions is returned by New for boards below the minimum size.
var ErrInvalidDimensions = errors.New("snake: invalid board dimensions")

// Reason explains why a run ended.
type Reason string

const (
	ReasonNone       Reason = ""
	ReasonWall       Reason = "avoid walls"
	ReasonSelf       Reason = "avoid crashing into your own tail"
	ReasonHazard     Reason = "don't slip on the leftovers"
	ReasonKillScreen Reason = "can't believe you made it this far"
)

// Game is the snake simulation. It is advanced one discrete step at a time
// by its owner and is not safe for concurrent use.
type Game struct {
	width  int
	height int
	rng    *prng.Prng16
	logger *log.Logger

	// Snake cells, head at index 0. body mirrors the same cells for O(1)
	// membership checks. The tail may also be in hazards after an eat.
	snake []core.Vec
	body  *core.Set[core.Vec]

	direction     core.Direction
	nextDirection core.Direction

	food    *core.Set[core.Vec]
	hazards *core.Set[core.Vec]
	free    *core.Set[core.Vec]

	score            int
	highScore        int
	highScoreDisplay int
	ticks            uint64

	gameOver bool
	reason   Reason
}

// Option configures a Game at construction.
type Option func(*Game)

// WithSeed seeds the food generator. Without it the host entropy source is
// used.
func WithSeed(seed prng.Seed) Option {
	return func(g *Game) {
		g.rng = prng.New(seed)
	}
}

// WithLogger sets the sink for the game-over diagnostic line.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

// New creates a game on a width x height board and starts the first run.
func New(width, height int, opts ...Option) (*Game, error) {
	if width < MinWidth || height < MinHeight {
		return nil, fmt.Errorf("%w: %dx%d (minimum %dx%d)",
			ErrInvalidDimensions, width, height, MinWidth, MinHeight)
	}

	cells := width * height
	g := &Game{
		width:   width,
		height:  height,
		snake:   make([]core.Vec, 0, cells),
		body:    core.NewSet[core.Vec](cells),
		food:    core.NewSet[core.Vec](4),
		hazards: core.NewSet[core.Vec](cells),
		free:    core.NewSet[core.Vec](cells),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = prng.New(prng.SeedFromEntropy())
	}
	if g.logger == nil {
		g.logger = log.Default()
	}

	g.Restart()
	return g, nil
}

// MustNew is like New but panics on invalid dimensions.
func MustNew(width, height int, opts ...Option) *Game {
	g, err := New(width, height, opts...)
	if err != nil {
		panic(err)
	}
	return g
}

// Restart begins a new run on the same board. The running high score
// survives; everything else is reinitialized.
func (g *Game) Restart() {
	g.snake = g.snake[:0]
	g.body.Clear()
	g.food.Clear()
	g.hazards.Clear()
	g.initFreePositions()

	row := g.height / 2
	g.pushHead(core.V(g.width-1, row)) // tail
	g.pushHead(core.V(g.width-2, row)) // head

	g.direction = core.DirLeft
	g.nextDirection = core.DirLeft

	g.gameOver = false
	g.reason = ReasonNone
	g.ticks = 0

	g.Spawn(1)

	g.highScoreDisplay = g.highScore
	g.score = 0
}

// ChangeDirection queues d for the next tick. Turning onto the current
// direction or reversing into it is ignored.
func (g *Game) ChangeDirection(d core.Direction) {
	if d == g.direction || d == g.direction.Opposite() {
		return
	}
	g.nextDirection = d
}

// Tick advances the simulation by one step. It does nothing once the game
// is over.
func (g *Game) Tick() {
	if g.gameOver {
		return
	}
	g.ticks++

	g.direction = g.nextDirection
	newHead := g.snake[0].Add(g.direction.Vector())

	switch {
	case !g.InBounds(newHead):
		g.endRun(ReasonWall)
		return
	case g.body.Contains(newHead):
		g.endRun(ReasonSelf)
		return
	case g.hazards.Contains(newHead):
		g.endRun(ReasonHazard)
		return
	}

	g.pushHead(newHead)

	if g.food.Contains(newHead) {
		g.score++
		// The snake grows: the tail stays as its oldest segment and is
		// also a permanent hazard, so popping it later never frees it.
		g.hazards.Add(g.snake[len(g.snake)-1])
		g.food.Remove(newHead)
		g.Spawn(1)
		return
	}

	tail := g.popTail()
	if !g.hazards.Contains(tail) {
		g.release(tail)
	}
}

// Apply dispatches a driver command.
func (g *Game) Apply(cmd core.Command) {
	if d, ok := cmd.Direction(); ok {
		g.ChangeDirection(d)
		return
	}
	switch cmd {
	case core.CommandRestart:
		g.Restart()
	case core.CommandStep:
		g.Tick()
	}
}

// endRun enters the terminal state.
func (g *Game) endRun(reason Reason) {
	g.gameOver = true
	g.reason = reason
	g.highScore = max(g.highScore, g.score)
	g.logger.Info(string(reason), "score", g.score, "high_score", g.highScore)
}

// pushHead adds a new head cell, claiming it from the free pool.
func (g *Game) pushHead(v core.Vec) {
	g.snake = slices.Insert(g.snake, 0, v)
	g.body.Add(v)
	g.claim(v)
}

// popTail removes and returns the last snake cell without releasing it.
func (g *Game) popTail() core.Vec {
	last := len(g.snake) - 1
	tail := g.snake[last]
	g.snake = g.snake[:last]
	g.body.Remove(tail)
	return tail
}

// InBounds reports whether v lies on the board.
func (g *Game) InBounds(v core.Vec) bool {
	return v.X >= 0 && v.Y >= 0 && v.X < g.width && v.Y < g.height
}

// Width returns the board width.
func (g *Game) Width() int { return g.width }

// Height returns the board height.
func (g *Game) Height() int { return g.height }

// Snake returns a copy of the snake cells, head first.
func (g *Game) Snake() []core.Vec { return slices.Clone(g.snake) }

// Head returns the snake's head cell.
func (g *Game) Head() core.Vec { return g.snake[0] }

// Food returns the food cells.
func (g *Game) Food() []core.Vec { return g.food.Items() }

// Hazards returns the hazard cells.
func (g *Game) Hazards() []core.Vec { return g.hazards.Items() }

// FreePositions returns the cells available for food placement.
func (g *Game) FreePositions() []core.Vec { return g.free.Items() }

// Score returns the score of the current run.
func (g *Game) Score() int { return g.score }

// HighScore returns the best score seen by this instance, including the
// current run once it has ended.
func (g *Game) HighScore() int { return g.highScore }

// HighScoreDisplay returns the high score as it stood when the current run
// started.
func (g *Game) HighScoreDisplay() int { return g.highScoreDisplay }

// Running reports whether the current run is still in progress.
func (g *Game) Running() bool { return !g.gameOver }

// GameOver reports whether the current run has ended.
func (g *Game) GameOver() bool { return g.gameOver }

// Reason returns why the current run ended, or ReasonNone while running.
func (g *Game) Reason() Reason { return g.reason }

// Direction returns the committed movement direction.
func (g *Game) Direction() core.Direction { return g.direction }

// Ticks returns the number of steps taken in the current run.
func (g *Game) Ticks() uint64 { return g.ticks }

// Seed returns the seed of the food generator.
func (g *Game) Seed() prng.Seed { return g.rng.Seed() }
