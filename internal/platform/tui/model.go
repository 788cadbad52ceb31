package tui

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/presets"
	"github.com/vovakirdan/tui-snake/internal/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Model is the Bubble Tea model for playing one preset.
// Key presses become direction requests; TickMsg drives Session.Tick.
type Model struct {
	session     *snake.Session
	preset      presets.Preset
	screen      *core.Screen
	store       *storage.Store
	config      core.RuntimeConfig
	keyMapper   *KeyMapper
	help        help.Model
	player      string
	sessionID   string // Identifies the current game in the score store
	loop        uint64
	best        int
	paused      bool
	quitting    bool
	backToMenu  bool
	embedded    bool // Owned by a parent model; back does not quit the program
	resultSaved bool // Whether the result has been saved for the current game
}

// NewModel creates a new model for the given preset.
func NewModel(preset presets.Preset, store *storage.Store, cfg core.RuntimeConfig, player string) (Model, error) {
	cfg.Seed = cfg.SeedOrNow()
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = core.DefaultTickInterval
	}

	session, err := snake.NewSession(preset.Session(), rand.New(rand.NewSource(cfg.Seed)))
	if err != nil {
		return Model{}, fmt.Errorf("tui: cannot start %s: %w", preset.ID, err)
	}

	m := Model{
		session:   session,
		preset:    preset,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH-1), // Last row is the help line
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		help:      help.New(),
		player:    player,
		sessionID: uuid.NewString(),
		loop:      newTickLoop(),
	}
	m.help.Width = cfg.ScreenW

	if store != nil {
		if best, err := store.HighScore(preset.ID); err == nil {
			m.best = best
		}
	}

	return m, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickInterval, m.loop)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height-1)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.abandon()
		m.quitting = true
		return m, tea.Quit
	}

	if dir, ok := action.Direction(); ok {
		if !m.paused {
			m.session.RequestDirection(dir)
		}
		return m, nil
	}

	switch action {
	case core.ActionPause:
		if m.session.Running() {
			m.paused = !m.paused
		}
	case core.ActionRestart:
		if !m.session.Running() {
			m.restart()
		}
	case core.ActionBack:
		if !m.session.Running() || m.paused {
			m.abandon()
			m.backToMenu = true
			if !m.embedded {
				return m, tea.Quit
			}
		}
	}

	return m, nil
}

// handleTick advances the session unless paused, and records a finished game once.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.paused && m.session.Running() {
		m.session.Tick()
		if !m.session.Running() {
			m.saveResult(m.session.Outcome().String())
		}
	}

	return m, tickCmd(m.config.TickInterval, m.loop)
}

// restart resets the session for a new game on the same preset.
func (m *Model) restart() {
	m.session.Reset()
	m.sessionID = uuid.NewString()
	m.resultSaved = false
	m.paused = false
}

// outcomeAbandoned records a game left before it ended.
const outcomeAbandoned = "abandoned"

// abandon records a game the player leaves while it is still running.
// Games left before the first move are not recorded.
func (m *Model) abandon() {
	if m.session.Running() && m.session.Ticks() > 0 {
		m.saveResult(outcomeAbandoned)
	}
}

// saveResult stores the finished game once. Storage is best-effort; the game
// continues without it.
func (m *Model) saveResult(outcome string) {
	if m.resultSaved {
		return
	}
	m.resultSaved = true
	m.best = max(m.best, m.session.Score())

	if m.store == nil {
		return
	}
	snap := m.session.Snapshot()
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveResult(storage.Result{
		Preset:    m.preset.ID,
		Player:    m.player,
		SessionID: m.sessionID,
		Score:     snap.Score,
		Length:    snap.Length,
		Ticks:     int64(snap.Tick),
		Outcome:   outcome,
	})
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	DrawSession(m.screen, m.session, m.hud())

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".snake", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("%s_%s.txt", m.preset.ID, time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

func (m Model) hud() HUD {
	return HUD{Preset: m.preset.ID, Best: m.best, Paused: m.paused}
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawSession(m.screen, m.session, m.hud())
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// Session returns the session being played.
func (m Model) Session() *snake.Session {
	return m.session
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a Bubble Tea program playing preset.
// Returns true if the player asked to go back to the menu.
func Run(preset presets.Preset, store *storage.Store, cfg core.RuntimeConfig, player string) (backToMenu bool, err error) {
	model, err := NewModel(preset, store, cfg, player)
	if err != nil {
		return false, err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
