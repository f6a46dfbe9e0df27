package core

// Color represents a foreground color for a screen cell.
// Drivers map these to ANSI 256-color codes.
type Color uint8

// Palette used by the board renderer and overlays.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorBrightGreen
	ColorBrightRed
	ColorOrange
	ColorGray
)

// Board element colors.
const (
	ColorSnakeHead = ColorBrightGreen
	ColorSnakeBody = ColorGreen
	ColorFood      = ColorBrightRed
	ColorHazard    = ColorCyan
	ColorBorder    = ColorGray
	ColorDebug     = ColorOrange
)
