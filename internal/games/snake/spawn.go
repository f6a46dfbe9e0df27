package snake

// Spawn places n food items on uniformly chosen free cells. If the board
// fills up before all n are placed the run ends on the kill screen.
//
// The index is taken modulo the pool size, which slightly favours low
// indices on pools that are not a power of two. Replays depend on this
// exact selection, so it stays.
func (g *Game) Spawn(n int) {
	for range n {
		if g.free.Len() == 0 {
			g.endRun(ReasonKillScreen)
			return
		}
		idx := int(g.rng.Next()) % g.free.Len()
		cell := g.free.At(idx)
		g.claim(cell)
		g.food.Add(cell)
	}
}
