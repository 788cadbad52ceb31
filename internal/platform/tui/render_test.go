package tui

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

func newRenderSession(t *testing.T) *snake.Session {
	t.Helper()
	s, err := snake.NewSession(snake.Config{Width: 20, Height: 20}, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	return s
}

func TestSegmentGlyph(t *testing.T) {
	tests := []struct {
		o    snake.Orientation
		want rune
	}{
		{snake.Orientation{Part: snake.PartHead, Facing: core.DirRight}, '▶'},
		{snake.Orientation{Part: snake.PartHead, Facing: core.DirLeft}, '◀'},
		{snake.Orientation{Part: snake.PartHead, Facing: core.DirUp}, '▲'},
		{snake.Orientation{Part: snake.PartHead, Facing: core.DirDown}, '▼'},
		{snake.Orientation{Part: snake.PartTail, Facing: core.DirRight}, '╶'},
		{snake.Orientation{Part: snake.PartTail, Facing: core.DirUp}, '╵'},
		{snake.Orientation{Part: snake.PartBody, Shape: snake.ShapeRight}, '─'},
		{snake.Orientation{Part: snake.PartBody, Shape: snake.ShapeLeft}, '─'},
		{snake.Orientation{Part: snake.PartBody, Shape: snake.ShapeUp}, '│'},
		{snake.Orientation{Part: snake.PartBody, Shape: snake.ShapeDown}, '│'},
		{snake.Orientation{Part: snake.PartBody, Shape: snake.ShapeUpRight}, '└'},
		{snake.Orientation{Part: snake.PartBody, Shape: snake.ShapeUpLeft}, '┘'},
		{snake.Orientation{Part: snake.PartBody, Shape: snake.ShapeDownRight}, '┌'},
		{snake.Orientation{Part: snake.PartBody, Shape: snake.ShapeDownLeft}, '┐'},
	}

	for _, tt := range tests {
		require.Equal(t, string(tt.want), string(SegmentGlyph(tt.o)), "%+v", tt.o)
	}
}

func TestBoardOrigin(t *testing.T) {
	cfg := snake.Config{Width: 20, Height: 20}

	x, y, ok := BoardOrigin(core.NewScreen(40, 30), cfg)
	require.True(t, ok)
	require.Equal(t, 10, x)
	require.Equal(t, hudRows+1, y)

	_, _, ok = BoardOrigin(core.NewScreen(21, 30), cfg)
	require.False(t, ok)
	_, _, ok = BoardOrigin(core.NewScreen(40, 23), cfg)
	require.False(t, ok)
}

func TestDrawSessionPlacesSnakeAndFood(t *testing.T) {
	s := newRenderSession(t)
	screen := core.NewScreen(40, 30)

	DrawSession(screen, s, HUD{Preset: "classic", Best: 7})

	ox, oy, ok := BoardOrigin(screen, s.Config())
	require.True(t, ok)

	// Start body: head (10,10), then (9,10), tail (8,10), facing right.
	require.Equal(t, '▶', screen.Get(ox+10, oy+10))
	require.Equal(t, headColor, screen.GetCell(ox+10, oy+10).Color)
	require.Equal(t, '─', screen.Get(ox+9, oy+10))
	require.Equal(t, bodyColor, screen.GetCell(ox+9, oy+10).Color)
	require.Equal(t, '╶', screen.Get(ox+8, oy+10))

	food := s.Food()
	require.Equal(t, foodGlyph, screen.Get(ox+food.X, oy+food.Y))
	require.Equal(t, foodColor, screen.GetCell(ox+food.X, oy+food.Y).Color)

	require.Equal(t, '┌', screen.Get(ox-1, oy-1))
	require.Equal(t, '┘', screen.Get(ox+20, oy+20))

	// 40 columns drop the preset name but keep every counter.
	hud := screen.Row(0)
	require.Contains(t, hud, "Score: 0")
	require.Contains(t, hud, "Length: 3")
	require.Contains(t, hud, "Best: 7")
	require.NotContains(t, hud, "classic")

	wide := core.NewScreen(80, 30)
	DrawSession(wide, s, HUD{Preset: "classic", Best: 7})
	require.Contains(t, wide.Row(0), "Snake [classic]  Score: 0  Length: 3  Best: 7")
}

func TestHUDLineFitsWidth(t *testing.T) {
	tests := []struct {
		width int
		want  string
	}{
		{80, " Snake [classic]  Score: 12  Length: 15  Best: 30"},
		{40, " Score: 12  Length: 15  Best: 30"},
		{17, " S:12 L:15 B:30"},
		{12, " S:12 L:15"},
		{5, " S:12"},
		{3, ""},
	}
	for _, tt := range tests {
		got := hudLine(tt.width, 12, 15, 30, "classic")
		require.Equal(t, tt.want, got, "width %d", tt.width)
		require.LessOrEqual(t, len([]rune(got)), tt.width)
	}
}

func TestDrawSessionCorner(t *testing.T) {
	s := newRenderSession(t)
	require.True(t, s.RequestDirection(core.DirUp))
	s.Tick()

	screen := core.NewScreen(40, 30)
	DrawSession(screen, s, HUD{})
	ox, oy, _ := BoardOrigin(screen, s.Config())

	// Body is now (10,9), (10,10), (9,10): a corner joining up and left.
	require.Equal(t, '▲', screen.Get(ox+10, oy+9))
	require.Equal(t, '┘', screen.Get(ox+10, oy+10))
	require.Equal(t, '╶', screen.Get(ox+9, oy+10))
}

func TestDrawSessionOverlays(t *testing.T) {
	s := newRenderSession(t)
	screen := core.NewScreen(40, 30)

	DrawSession(screen, s, HUD{Paused: true})
	require.Contains(t, screen.String(), "Paused")

	for s.Running() {
		s.Tick()
	}
	DrawSession(screen, s, HUD{})
	out := screen.String()
	require.Contains(t, out, "Game Over")
	require.Contains(t, out, "Press R")
}

func TestDrawSessionTooSmall(t *testing.T) {
	s := newRenderSession(t)
	screen := core.NewScreen(30, 10)

	DrawSession(screen, s, HUD{})

	out := screen.String()
	require.Contains(t, out, "Window too small")
	require.False(t, strings.ContainsRune(out, '▶'))
}

func TestRenderScreenKeepsText(t *testing.T) {
	screen := core.NewScreen(10, 2)
	screen.DrawTextColored(0, 0, "snake", core.ColorGreen)
	screen.DrawText(0, 1, "tail")

	out := RenderScreen(screen)
	require.Contains(t, out, "snake")
	require.Contains(t, out, "tail")
	require.Equal(t, 1, strings.Count(out, "\n"))
}
