package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// fieldBackground is drawn behind every cell of the playing field.
var fieldBackground = lipgloss.Color("234")

var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:        lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorBrightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	core.ColorBrightRed:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorOrange:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// cellStyle returns the style for a cell color, on the field background
// when onField is set.
func cellStyle(c core.Color, onField bool) lipgloss.Style {
	style, ok := colorStyles[c]
	if !ok {
		style = colorStyles[core.ColorDefault]
	}
	if onField {
		style = style.Background(fieldBackground)
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Cells inside field get the field background; an empty field disables it.
// Adjacent cells with the same color on the same side of the field edge
// share one styled run.
func RenderScreen(s *core.Screen, field core.Rect) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			onField := field.Contains(core.V(x, y))

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color || field.Contains(core.V(x, y)) != onField {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(cellStyle(color, onField).Render(run.String()))
		}
	}
	return sb.String()
}
