package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// initFreePositions rebuilds the free pool from scratch: every board cell
// that is not snake, hazard or food. Cells are added row by row so the pool
// order, and therefore food placement, depends only on the seed.
func (g *Game) initFreePositions() {
	g.free.Clear()
	for y := range g.height {
		for x := range g.width {
			v := core.V(x, y)
			if g.body.Contains(v) || g.hazards.Contains(v) || g.food.Contains(v) {
				continue
			}
			g.free.Add(v)
		}
	}
}

// claim takes a cell out of the free pool.
func (g *Game) claim(v core.Vec) {
	g.free.Remove(v)
}

// release returns a cell to the free pool.
func (g *Game) release(v core.Vec) {
	g.free.Add(v)
}

// Cell identifies what occupies a board position.
type Cell int

const (
	CellEmpty Cell = iota
	CellHead
	CellBody
	CellFood
	CellHazard
	CellWall // outside the board
)

func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellHead:
		return "head"
	case CellBody:
		return "body"
	case CellFood:
		return "food"
	case CellHazard:
		return "hazard"
	case CellWall:
		return "wall"
	default:
		return "unknown"
	}
}

// CellAt reports what occupies v.
func (g *Game) CellAt(v core.Vec) Cell {
	switch {
	case !g.InBounds(v):
		return CellWall
	case len(g.snake) > 0 && g.snake[0] == v:
		return CellHead
	case g.body.Contains(v):
		return CellBody
	case g.food.Contains(v):
		return CellFood
	case g.hazards.Contains(v):
		return CellHazard
	default:
		return CellEmpty
	}
}
