package snake

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// StateType is the coarse state of a session.
type StateType string

const (
	StatePlaying   StateType = "playing"
	StateGameOver  StateType = "game_over"
	StateBoardFull StateType = "board_full"
)

// Snapshot captures a session for determinism testing and for recording results.
type Snapshot struct {
	Tick     uint64
	Score    int
	Length   int
	Head     core.Point
	Dir      core.Direction
	Food     core.Point
	JustGrew bool
	State    StateType
	Outcome  Outcome
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case s.outcome == OutcomeBoardFull:
		state = StateBoardFull
	case !s.running:
		state = StateGameOver
	}

	return Snapshot{
		Tick:     s.ticks,
		Score:    s.score,
		Length:   s.snake.Len(),
		Head:     s.snake.Head(),
		Dir:      s.snake.Direction(),
		Food:     s.food,
		JustGrew: s.snake.JustGrew(),
		State:    state,
		Outcome:  s.outcome,
	}
}

// DebugState returns a multi-line description of the session.
func (s *Session) DebugState() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Score: %d, Grid: %dx%d\n", s.ticks, s.score, s.cfg.Width, s.cfg.Height)
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s, Pending: %s\n", s.snake.Len(), s.snake.Direction(), s.snake.Pending())
	fmt.Fprintf(&b, "Head: %v, Food: %v\n", s.snake.Head(), s.food)
	fmt.Fprintf(&b, "Running: %v, Outcome: %s\n", s.running, s.outcome)
	return b.String()
}
