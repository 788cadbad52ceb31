package snake

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrIndexOutOfRange is returned by OrientationAt for an index outside the body.
var ErrIndexOutOfRange = errors.New("snake: segment index out of range")

// Part identifies which kind of segment an index refers to.
type Part int

const (
	PartHead Part = iota
	PartBody
	PartTail
)

func (p Part) String() string {
	switch p {
	case PartHead:
		return "head"
	case PartBody:
		return "body"
	case PartTail:
		return "tail"
	default:
		return "unknown"
	}
}

// Shape is the layout of an interior segment relative to its two neighbors.
// Straight shapes carry the direction of travel; corner shapes name the two
// sides of the cell that connect to neighbors.
type Shape int

const (
	ShapeUp Shape = iota
	ShapeDown
	ShapeLeft
	ShapeRight
	ShapeUpRight
	ShapeUpLeft
	ShapeDownRight
	ShapeDownLeft
)

func (s Shape) String() string {
	switch s {
	case ShapeUp:
		return "up"
	case ShapeDown:
		return "down"
	case ShapeLeft:
		return "left"
	case ShapeRight:
		return "right"
	case ShapeUpRight:
		return "up-right"
	case ShapeUpLeft:
		return "up-left"
	case ShapeDownRight:
		return "down-right"
	case ShapeDownLeft:
		return "down-left"
	default:
		return "unknown"
	}
}

// Straight reports whether the shape is a straight run rather than a corner.
func (s Shape) Straight() bool {
	return s <= ShapeRight
}

// Orientation is what a renderer needs to pick a glyph for one segment.
// Facing is meaningful for the head and tail, Shape for interior segments.
type Orientation struct {
	Part   Part
	Facing core.Direction
	Shape  Shape
}

// OrientationAt derives the orientation of segment index from its neighbors.
//   - head: the committed direction
//   - tail: the direction from the tail toward the next segment
//   - body: one of the eight shapes in Shape
func (s *State) OrientationAt(index int) (Orientation, error) {
	n := len(s.body)
	if index < 0 || index >= n {
		return Orientation{}, fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, index, n)
	}

	if index == 0 {
		return Orientation{Part: PartHead, Facing: s.direction}, nil
	}

	if index == n-1 {
		return Orientation{Part: PartTail, Facing: s.tailFacing()}, nil
	}

	shape, ok := interiorShape(s.body[index-1], s.body[index], s.body[index+1])
	if !ok {
		return Orientation{}, fmt.Errorf("snake: segment %d is not adjacent to its neighbors", index)
	}
	return Orientation{Part: PartBody, Shape: shape}, nil
}

// tailFacing points from the tail toward its neighbor. A neighbor sitting on
// the tail cell gives a zero vector, so the segment two back is used instead.
func (s *State) tailFacing() core.Direction {
	n := len(s.body)
	tail := s.body[n-1]
	v := s.body[n-2].Sub(tail)
	if v.IsZero() && n >= 3 {
		v = s.body[n-3].Sub(s.body[n-2])
	}
	if dir, ok := core.DirectionOf(v); ok {
		return dir
	}
	return s.direction
}

// interiorShape classifies seg from the vector between its neighbors.
// prev is closer to the head, next closer to the tail. The vector is negated
// when seg leaves prev horizontally so a corner maps to the same key in
// both travel directions.
func interiorShape(prev, seg, next core.Point) (Shape, bool) {
	key := prev.Sub(next)
	if seg.X != prev.X {
		key = key.Neg()
	}

	switch key {
	case core.P(0, -2):
		return ShapeUp, true
	case core.P(0, 2):
		return ShapeDown, true
	case core.P(-2, 0):
		return ShapeRight, true
	case core.P(2, 0):
		return ShapeLeft, true
	case core.P(-1, -1):
		return ShapeUpRight, true
	case core.P(1, -1):
		return ShapeUpLeft, true
	case core.P(-1, 1):
		return ShapeDownRight, true
	case core.P(1, 1):
		return ShapeDownLeft, true
	}
	return 0, false
}
