package tui

import (
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/presets"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

func testRuntime() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	cfg.ScreenW = 100
	cfg.ScreenH = 30
	return cfg
}

func TestMenuListsPresets(t *testing.T) {
	m := NewMenuModel(nil, testRuntime())

	require.Len(t, m.items, len(presets.List()))
	require.Equal(t, presets.Classic, m.items[0].Preset.ID)
	require.Contains(t, m.View(), "Classic 20x20")
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(nil, testRuntime())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(MenuModel)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)

	require.NotNil(t, cmd)
	require.NotNil(t, m.Selected())
	require.Equal(t, presets.Compact, m.Selected().Preset.ID)
}

func TestMenuCursorStaysInRange(t *testing.T) {
	m := NewMenuModel(nil, testRuntime())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(MenuModel)
	require.Equal(t, 0, m.cursor)

	for rangeIter := 0; rangeIter < 10; rangeIter++ {
		next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = next.(MenuModel)
	}
	require.Equal(t, len(m.items)-1, m.cursor)
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := NewMenuModel(nil, testRuntime())
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.True(t, next.(MenuModel).WantsScoreboard())

	m = NewMenuModel(nil, testRuntime())
	next, _ = m.Update(runeKey("q"))
	require.True(t, next.(MenuModel).IsQuitting())
}

func TestResultRows(t *testing.T) {
	rows := resultRows([]storage.Result{
		{Score: 12, Length: 15, Player: "ann", Outcome: "self", CreatedAt: time.Date(2026, 3, 4, 5, 6, 0, 0, time.UTC)},
		{Score: 3, Length: 6, Outcome: "board_full"},
	})

	require.Len(t, rows, 2)
	require.Equal(t, "#1", rows[0][0])
	require.Equal(t, "12", rows[0][1])
	require.Equal(t, "15", rows[0][2])
	require.Equal(t, "ann", rows[0][3])
	require.Equal(t, "bit self", rows[0][4])
	require.Equal(t, "Mar 04 05:06", rows[0][5])
	require.Equal(t, "-", rows[1][3])
	require.Equal(t, "cleared!", rows[1][4])
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 100, 30)
	require.Contains(t, m.View(), "No scores recorded yet")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	require.Equal(t, 1, m.presetCursor)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.True(t, next.(ScoreboardModel).IsGoingBack())
}

func TestSessionModelFlow(t *testing.T) {
	logger := log.New(io.Discard)
	m := NewSessionModel(nil, testRuntime(), "guest", logger)

	// Pick the first preset.
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(SessionModel)
	require.NotNil(t, m.game)
	require.NotNil(t, cmd)

	// Pause, then go back to the menu without quitting the program.
	next, _ = m.Update(runeKey("p"))
	m = next.(SessionModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(SessionModel)
	require.Nil(t, m.game)
	require.False(t, m.quitting)
	require.Contains(t, m.View(), "Pick a board")

	// Scoreboard and back.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(SessionModel)
	require.NotNil(t, m.scoreboard)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(SessionModel)
	require.Nil(t, m.scoreboard)

	next, cmd = m.Update(runeKey("q"))
	require.True(t, next.(SessionModel).quitting)
	require.NotNil(t, cmd)
}
