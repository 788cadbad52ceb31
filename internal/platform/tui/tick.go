// Package tui provides the Bubble Tea integration for the snake game.
// It drives a snake.Session on a fixed cadence, maps keys to direction
// requests and draws the session into a terminal.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Loop identifies the tick loop that scheduled it; a model ignores ticks
// from loops it did not start.
type TickMsg struct {
	Time time.Time
	Loop uint64
}

var loopSeq atomic.Uint64

// newTickLoop returns an identifier for a fresh tick loop.
func newTickLoop() uint64 {
	return loopSeq.Add(1)
}

// tickCmd returns a Bubble Tea command that sends one tick message after interval.
func tickCmd(interval time.Duration, loop uint64) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Loop: loop}
	})
}
