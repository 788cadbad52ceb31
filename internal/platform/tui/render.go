package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Glyphs and colors for the board.
const (
	foodGlyph = '●'

	headColor = core.ColorBrightGreen
	bodyColor = core.ColorGreen
	foodColor = core.ColorBrightRed
	wallColor = core.ColorGray
	hudColor  = core.ColorWhite
)

// hudRows is the number of screen rows above the board.
const hudRows = 2

// HUD is what the renderer shows around the board.
type HUD struct {
	Preset string
	Best   int
	Paused bool
}

// SegmentGlyph returns the rune for a body segment with the given orientation.
func SegmentGlyph(o snake.Orientation) rune {
	switch o.Part {
	case snake.PartHead:
		switch o.Facing {
		case core.DirUp:
			return '▲'
		case core.DirDown:
			return '▼'
		case core.DirLeft:
			return '◀'
		default:
			return '▶'
		}
	case snake.PartTail:
		switch o.Facing {
		case core.DirUp:
			return '╵'
		case core.DirDown:
			return '╷'
		case core.DirLeft:
			return '╴'
		default:
			return '╶'
		}
	}

	switch o.Shape {
	case snake.ShapeUp, snake.ShapeDown:
		return '│'
	case snake.ShapeLeft, snake.ShapeRight:
		return '─'
	case snake.ShapeUpRight:
		return '└'
	case snake.ShapeUpLeft:
		return '┘'
	case snake.ShapeDownRight:
		return '┌'
	case snake.ShapeDownLeft:
		return '┐'
	}
	return '█'
}

// BoardOrigin returns the screen position of grid cell (0,0) for a grid
// centered below the HUD. ok is false when the screen is too small.
func BoardOrigin(dst *core.Screen, cfg snake.Config) (x, y int, ok bool) {
	boxW, boxH := cfg.Width+2, cfg.Height+2
	if dst.Width() < boxW || dst.Height() < boxH+hudRows {
		return 0, 0, false
	}
	return (dst.Width()-boxW)/2 + 1, hudRows + 1, true
}

// DrawSession draws the HUD, the board, the snake, the food and any overlay.
func DrawSession(dst *core.Screen, s *snake.Session, hud HUD) {
	dst.Clear()
	drawHUD(dst, s, hud)

	cfg := s.Config()
	ox, oy, ok := BoardOrigin(dst, cfg)
	if !ok {
		drawOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", cfg.Width+2, cfg.Height+2+hudRows))
		return
	}

	dst.DrawBox(ox-1, oy-1, cfg.Width+2, cfg.Height+2, wallColor)

	food := s.Food()
	dst.SetColored(ox+food.X, oy+food.Y, foodGlyph, foodColor)

	// Tail first so the head wins if a dead snake overlaps itself.
	body := s.Body()
	for i := len(body) - 1; i >= 0; i-- {
		seg := body[i]
		if !seg.In(cfg.Width, cfg.Height) {
			continue
		}
		o, err := s.OrientationAt(i)
		if err != nil {
			continue
		}
		color := bodyColor
		if o.Part == snake.PartHead {
			color = headColor
		}
		dst.SetColored(ox+seg.X, oy+seg.Y, SegmentGlyph(o), color)
	}

	switch {
	case s.Outcome() == snake.OutcomeBoardFull:
		drawOverlay(dst, "Board cleared!", fmt.Sprintf("Score: %d  Press R", s.Score()))
	case !s.Running():
		drawOverlay(dst, gameOverReason(s.Outcome()), fmt.Sprintf("Score: %d  Press R", s.Score()))
	case hud.Paused:
		drawOverlay(dst, "Paused", "Press P to continue")
	}
}

func gameOverReason(o snake.Outcome) string {
	switch o {
	case snake.OutcomeWall:
		return "Game Over: hit the wall"
	case snake.OutcomeSelf:
		return "Game Over: bit yourself"
	default:
		return "Game Over"
	}
}

// drawHUD draws the top status bar.
func drawHUD(dst *core.Screen, s *snake.Session, hud HUD) {
	dst.DrawTextColored(0, 0, hudLine(dst.Width(), s.Score(), s.Length(), max(hud.Best, s.Score()), hud.Preset), hudColor)

	for x := 0; x < dst.Width(); x++ {
		dst.SetColored(x, 1, '─', wallColor)
	}
}

// hudLine returns the most detailed status line that fits in width.
// Fields are dropped from the right when even the short form is too wide.
func hudLine(width, score, length, best int, preset string) string {
	candidates := []string{
		fmt.Sprintf(" Snake [%s]  Score: %d  Length: %d  Best: %d", preset, score, length, best),
		fmt.Sprintf(" Score: %d  Length: %d  Best: %d", score, length, best),
		fmt.Sprintf(" S:%d L:%d B:%d", score, length, best),
		fmt.Sprintf(" S:%d L:%d", score, length),
		fmt.Sprintf(" S:%d", score),
	}
	for _, line := range candidates {
		if utf8.RuneCountInString(line) <= width {
			return line
		}
	}
	return ""
}

// drawOverlay draws a centered two-line message box.
func drawOverlay(dst *core.Screen, line1, line2 string) {
	w := max(len([]rune(line1)), len([]rune(line2))) + 4
	h := 5
	x := (dst.Width() - w) / 2
	y := (dst.Height() - h) / 2

	for j := y + 1; j < y+h-1; j++ {
		for i := x + 1; i < x+w-1; i++ {
			dst.Set(i, j, ' ')
		}
	}
	dst.DrawBox(x, y, w, h, core.ColorYellow)
	dst.DrawTextCentered(y+1, line1, core.ColorBrightYellow)
	dst.DrawTextCentered(y+3, line2, core.ColorWhite)
}
