// Package core provides the grid primitives shared by the snake engine and its
// collaborators. It contains no external dependencies (especially no Bubble Tea)
// to keep game logic pure and testable.
package core

import "fmt"

// Point is a cell coordinate on the grid. X grows to the right, Y grows downward.
// A Point carries no bounds; the engine checks bounds during collision detection.
type Point struct {
	X, Y int
}

// P is shorthand for Point{X: x, Y: y}.
func P(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the component-wise sum of two points.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns the component-wise difference p - o.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Neg returns the point mirrored through the origin.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// IsZero reports whether both components are zero.
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// In reports whether p lies inside a width x height grid anchored at the origin.
func (p Point) In(width, height int) bool {
	return p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction is one of the four cardinal movement directions.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Directions lists every direction in declaration order.
var Directions = [...]Direction{DirRight, DirDown, DirLeft, DirUp}

// Vector returns the unit vector for the direction.
func (d Direction) Vector() Point {
	switch d {
	case DirRight:
		return Point{X: 1}
	case DirDown:
		return Point{Y: 1}
	case DirLeft:
		return Point{X: -1}
	case DirUp:
		return Point{Y: -1}
	default:
		return Point{}
	}
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case DirRight:
		return DirLeft
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirDown
	}
}

// Valid reports whether d is one of the four cardinal directions.
func (d Direction) Valid() bool {
	return d >= DirRight && d <= DirUp
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// DirectionOf maps a unit vector back to its direction.
// Returns false for the zero vector and anything that is not a unit step.
func DirectionOf(v Point) (Direction, bool) {
	switch v {
	case Point{X: 1}:
		return DirRight, true
	case Point{Y: 1}:
		return DirDown, true
	case Point{X: -1}:
		return DirLeft, true
	case Point{Y: -1}:
		return DirUp, true
	}
	return 0, false
}

// IsReversal reports whether requested is the exact negation of current,
// i.e. whether their vectors sum to zero.
func IsReversal(current, requested Direction) bool {
	return current.Vector().Add(requested.Vector()).IsZero()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
