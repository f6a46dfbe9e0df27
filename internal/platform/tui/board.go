package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// cellWidth is the number of terminal columns per board cell. Terminal
// cells are roughly twice as tall as wide.
const cellWidth = 2

// hudHeight is the number of rows above the board frame.
const hudHeight = 1

// BoardView holds driver-side flags that affect board rendering.
type BoardView struct {
	Title  string // Preset title shown in the HUD
	Debug  bool   // Mark semi-open tiles and show counters
	Paused bool
}

// cellGlyph is the two-column glyph and color for a board cell.
type cellGlyph struct {
	runes [cellWidth]rune
	color core.Color
}

var glyphs = map[snake.Cell]cellGlyph{
	snake.CellEmpty:  {[cellWidth]rune{' ', ' '}, core.ColorDefault},
	snake.CellHead:   {[cellWidth]rune{'█', '█'}, core.ColorSnakeHead},
	snake.CellBody:   {[cellWidth]rune{'▓', '▓'}, core.ColorSnakeBody},
	snake.CellFood:   {[cellWidth]rune{'◖', '◗'}, core.ColorFood},
	snake.CellHazard: {[cellWidth]rune{'░', '░'}, core.ColorHazard},
}

var semiOpenGlyph = cellGlyph{[cellWidth]rune{'·', '·'}, core.ColorDebug}

// BoardRect returns the frame rectangle for a width x height board centered
// on the screen, and false if the screen is too small to hold it.
func BoardRect(screenW, screenH, width, height int) (core.Rect, bool) {
	w := width*cellWidth + 2
	h := height + 2
	if w > screenW || h+hudHeight > screenH {
		return core.Rect{}, false
	}
	x := (screenW - w) / 2
	y := hudHeight + (screenH-hudHeight-h)/2
	return core.NewRect(x, y, w, h), true
}

// FieldRect returns the screen area covered by board cells, inside the
// frame. It is empty when the board does not fit.
func FieldRect(screenW, screenH, width, height int) core.Rect {
	frame, ok := BoardRect(screenW, screenH, width, height)
	if !ok {
		return core.Rect{}
	}
	return core.NewRect(frame.X+1, frame.Y+1, frame.W-2, frame.H-2)
}

// DrawBoard renders g into s: HUD, frame, cells and, when the run has
// ended, the game-over overlay.
func DrawBoard(s *core.Screen, g *snake.Game, view BoardView) {
	s.Clear()

	frame, ok := BoardRect(s.Width(), s.Height(), g.Width(), g.Height())
	if !ok {
		s.DrawTextCentered(s.Height()/2, fmt.Sprintf("terminal too small: need %dx%d",
			g.Width()*cellWidth+2, g.Height()+2+hudHeight))
		return
	}

	drawHUD(s, g, view, frame)
	s.DrawBox(frame, core.ColorBorder)

	ox, oy := frame.X+1, frame.Y+1
	for y := range g.Height() {
		for x := range g.Width() {
			gl := glyphs[g.CellAt(core.V(x, y))]
			drawGlyph(s, ox+x*cellWidth, oy+y, gl)
		}
	}

	if view.Debug {
		for _, v := range g.SemiOpenTiles() {
			if g.CellAt(v) == snake.CellEmpty {
				drawGlyph(s, ox+v.X*cellWidth, oy+v.Y, semiOpenGlyph)
			}
		}
		drawDebugLine(s, g, frame)
	}

	if g.GameOver() {
		drawGameOver(s, g, frame)
	} else if view.Paused {
		drawCentered(s, frame, frame.Y+frame.H/2, "PAUSED", core.ColorYellow)
	}
}

func drawGlyph(s *core.Screen, x, y int, gl cellGlyph) {
	for i, r := range gl.runes {
		s.SetColored(x+i, y, r, gl.color)
	}
}

func drawHUD(s *core.Screen, g *snake.Game, view BoardView, frame core.Rect) {
	left := fmt.Sprintf("Score: %d  High: %d", g.Score(), g.HighScoreDisplay())
	s.DrawText(frame.X, frame.Y-1, left)

	if view.Title != "" {
		right := fmt.Sprintf("%s %dx%d", view.Title, g.Width(), g.Height())
		// Right-aligned to the frame unless that would overlap the score.
		x := max(frame.Right()-len([]rune(right)), frame.X+len(left)+2)
		s.DrawTextColored(x, frame.Y-1, right, core.ColorGray)
	}
}

func drawDebugLine(s *core.Screen, g *snake.Game, frame core.Rect) {
	line := fmt.Sprintf("tick %d  free %d  dir %s  seed %s",
		g.Ticks(), len(g.FreePositions()), g.Direction(), g.Seed())
	s.DrawTextColored(frame.X, frame.Bottom(), line, core.ColorDebug)
}

func drawGameOver(s *core.Screen, g *snake.Game, frame core.Rect) {
	lines := []struct {
		text  string
		color core.Color
	}{
		{"GAME OVER", core.ColorRed},
		{string(g.Reason()), core.ColorYellow},
		{fmt.Sprintf("score %d  best %d", g.Score(), g.HighScore()), core.ColorDefault},
		{"space/r: restart  q: quit", core.ColorGray},
	}

	top := frame.Y + (frame.H-len(lines))/2
	for i, l := range lines {
		drawCentered(s, frame, top+i, l.text, l.color)
	}
}

// drawCentered writes text centered inside frame on row y, clipped to the
// frame's interior.
func drawCentered(s *core.Screen, frame core.Rect, y int, text string, c core.Color) {
	runes := []rune(text)
	inner := frame.W - 2
	if len(runes) > inner {
		runes = runes[:inner]
	}
	x := frame.X + 1 + (inner-len(runes))/2
	s.DrawTextColored(x, y, string(runes), c)
}
