// Package core provides fundamental types and utilities for the snake engine
// and its drivers. It contains no external dependencies (especially no Bubble
// Tea) to keep game logic pure and testable.
package core

// Vec is an integer board coordinate. The origin is the top-left cell,
// X grows to the right and Y grows downward.
type Vec struct {
	X, Y int
}

// V is shorthand for constructing a Vec.
func V(x, y int) Vec {
	return Vec{X: x, Y: y}
}

// Add returns the component-wise sum of two vectors.
func (v Vec) Add(other Vec) Vec {
	return Vec{X: v.X + other.X, Y: v.Y + other.Y}
}

// Direction is one of the four orthogonal movement directions.
type Direction int

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// Directions lists every direction in clockwise order starting at Up.
var Directions = [4]Direction{DirUp, DirRight, DirDown, DirLeft}

// Vector returns the unit delta for the direction.
func (d Direction) Vector() Vec {
	switch d {
	case DirUp:
		return Vec{X: 0, Y: -1}
	case DirRight:
		return Vec{X: 1, Y: 0}
	case DirDown:
		return Vec{X: 0, Y: 1}
	case DirLeft:
		return Vec{X: -1, Y: 0}
	default:
		return Vec{}
	}
}

// Opposite returns the reverse direction. Up/Down and Left/Right pair up.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirRight:
		return DirLeft
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return d
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "unknown"
	}
}

// Rect represents an axis-aligned box on the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the vector lies inside this rectangle.
func (r Rect) Contains(v Vec) bool {
	return v.X >= r.X && v.X < r.Right() && v.Y >= r.Y && v.Y < r.Bottom()
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
