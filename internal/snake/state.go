// Package snake implements the snake simulation engine: body movement,
// direction handling, growth, collision detection and food placement.
// It has no knowledge of terminals, timers or key events; a platform
// collaborator calls Session.Tick on a fixed cadence and reads the state back.
package snake

import (
	"github.com/vovakirdan/tui-snake/internal/core"
)

// MinLength is the length of a freshly reset snake. A live snake never gets shorter.
const MinLength = 3

// DeathCause describes how the snake died.
type DeathCause int

const (
	DeathNone DeathCause = iota
	DeathWall            // Head left the grid
	DeathSelf            // Head ran into the body
)

func (c DeathCause) String() string {
	switch c {
	case DeathNone:
		return "none"
	case DeathWall:
		return "wall"
	case DeathSelf:
		return "self"
	default:
		return "unknown"
	}
}

// TickResult reports what happened during one State.Tick.
type TickResult struct {
	Moved bool       // False when the state was already dead
	Ate   bool       // Head landed on the food cell
	Died  bool       // This tick killed the snake
	Cause DeathCause // Set when Died
	Head  core.Point // Head position after the tick
}

// State is the snake itself: its body, committed and pending direction, and
// whether the previous tick ate food.
type State struct {
	body      []core.Point // Head at index 0, tail last
	direction core.Direction
	pending   core.Direction
	justGrew  bool // Ate on the previous tick; skip one tail truncation
	dead      bool
	cause     DeathCause
}

// NewState builds a live snake from an explicit body and direction.
// The body is copied. Used by Session.Reset and by tests that need a
// specific shape.
func NewState(body []core.Point, dir core.Direction) *State {
	s := &State{}
	s.reset(body, dir)
	return s
}

func (s *State) reset(body []core.Point, dir core.Direction) {
	s.body = append(s.body[:0], body...)
	s.direction = dir
	s.pending = dir
	s.justGrew = false
	s.dead = false
	s.cause = DeathNone
}

// Tick advances the snake by one cell inside a width x height grid.
// food is the current food cell; landing on it sets the growth flag so the
// next tick keeps the tail.
func (s *State) Tick(width, height int, food core.Point) TickResult {
	if s.dead || len(s.body) == 0 {
		return TickResult{Head: s.Head()}
	}

	s.direction = s.pending
	newHead := s.body[0].Add(s.direction.Vector())

	grow := s.justGrew
	s.justGrew = false
	if grow {
		s.body = append(s.body, core.Point{})
	}
	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = newHead

	result := TickResult{Moved: true, Head: newHead}

	switch {
	case !newHead.In(width, height):
		result.Cause = DeathWall
	case s.hitsBody(newHead):
		result.Cause = DeathSelf
	}
	if result.Cause != DeathNone {
		s.dead = true
		s.cause = result.Cause
		result.Died = true
		return result
	}

	if newHead == food {
		s.justGrew = true
		result.Ate = true
	}
	return result
}

// hitsBody reports whether p coincides with any segment behind the head.
func (s *State) hitsBody(p core.Point) bool {
	for _, seg := range s.body[1:] {
		if seg == p {
			return true
		}
	}
	return false
}

// ChangeDirection requests a new direction for the next tick.
// A request that reverses the committed direction is rejected; otherwise it
// replaces any earlier request made since the last tick. Returns whether the
// request was accepted.
func (s *State) ChangeDirection(requested core.Direction) bool {
	if s.dead || !requested.Valid() {
		return false
	}
	if core.IsReversal(s.direction, requested) {
		return false
	}
	s.pending = requested
	return true
}

// Body returns a copy of the segments, head first.
func (s *State) Body() []core.Point {
	out := make([]core.Point, len(s.body))
	copy(out, s.body)
	return out
}

// Len returns the number of segments.
func (s *State) Len() int {
	return len(s.body)
}

// Head returns the head position.
func (s *State) Head() core.Point {
	if len(s.body) == 0 {
		return core.Point{}
	}
	return s.body[0]
}

// Direction returns the committed direction.
func (s *State) Direction() core.Direction {
	return s.direction
}

// Pending returns the direction that will be committed on the next tick.
func (s *State) Pending() core.Direction {
	return s.pending
}

// JustGrew reports whether the previous tick ate food.
func (s *State) JustGrew() bool {
	return s.justGrew
}

// Dead reports whether the snake has collided.
func (s *State) Dead() bool {
	return s.dead
}

// Cause returns how the snake died, or DeathNone while alive.
func (s *State) Cause() DeathCause {
	return s.cause
}

// Occupies reports whether any segment is at p.
func (s *State) Occupies(p core.Point) bool {
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}

// Occupied returns the set of cells covered by the body.
func (s *State) Occupied() Occupancy {
	occ := make(Occupancy, len(s.body))
	for _, seg := range s.body {
		occ[seg] = struct{}{}
	}
	return occ
}
