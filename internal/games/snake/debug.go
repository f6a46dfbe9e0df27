package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// SemiOpenTiles returns the in-bounds cells orthogonally adjacent to the
// head and to every food cell. Neighbours of the head come first, then
// those of each food cell; each cell appears once. Used by the debug
// overlay only.
func (g *Game) SemiOpenTiles() []core.Vec {
	origins := make([]core.Vec, 0, 1+g.food.Len())
	origins = append(origins, g.snake[0])
	for i := range g.food.Len() {
		origins = append(origins, g.food.At(i))
	}

	seen := make(map[core.Vec]bool, len(origins)*4)
	tiles := make([]core.Vec, 0, len(origins)*4)
	for _, o := range origins {
		for _, d := range core.Directions {
			n := o.Add(d.Vector())
			if !g.InBounds(n) || seen[n] {
				continue
			}
			seen[n] = true
			tiles = append(tiles, n)
		}
	}
	return tiles
}
