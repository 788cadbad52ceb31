package snake

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrInvalidGrid is returned when a grid cannot host the starting snake and its food.
var ErrInvalidGrid = errors.New("snake: invalid grid")

// Config is the grid a session is played on.
type Config struct {
	Width  int
	Height int
}

// Validate checks that the starting snake and one food cell fit on the grid.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: dimensions must be positive, got %dx%d", ErrInvalidGrid, c.Width, c.Height)
	}
	// The starting body spans x = w/2-2 .. w/2, so w/2 must be at least 2.
	if c.Width/2 < MinLength-1 {
		return fmt.Errorf("%w: width %d cannot fit a %d-segment snake", ErrInvalidGrid, c.Width, MinLength)
	}
	if c.Width*c.Height <= MinLength {
		return fmt.Errorf("%w: %dx%d leaves no room for food", ErrInvalidGrid, c.Width, c.Height)
	}
	return nil
}

// Outcome is how a session ended.
type Outcome int

const (
	OutcomeNone      Outcome = iota // Still running
	OutcomeWall                     // Snake left the grid
	OutcomeSelf                     // Snake ran into itself
	OutcomeBoardFull                // Snake covers every free cell; nowhere left for food
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeWall:
		return "wall"
	case OutcomeSelf:
		return "self"
	case OutcomeBoardFull:
		return "board_full"
	default:
		return "unknown"
	}
}

func outcomeFor(c DeathCause) Outcome {
	switch c {
	case DeathWall:
		return OutcomeWall
	case DeathSelf:
		return OutcomeSelf
	default:
		return OutcomeNone
	}
}

// Session is one game: the snake, the food, the score and whether play is running.
// It is not safe for concurrent use; callers deliver ticks and direction
// requests from a single goroutine.
type Session struct {
	cfg     Config
	spawner *FoodSpawner
	snake   *State
	food    core.Point
	score   int
	running bool
	ticks   uint64
	outcome Outcome
}

// NewSession validates cfg and returns a session ready to tick.
func NewSession(cfg Config, rng *rand.Rand) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, errors.New("snake: nil random source")
	}

	s := &Session{
		cfg:     cfg,
		spawner: NewFoodSpawner(rng),
		snake:   &State{},
	}
	s.Reset()
	return s, nil
}

// StartBody returns the canonical starting body for a grid: three segments
// centered on the grid, head first, facing right.
func StartBody(cfg Config) []core.Point {
	cx, cy := cfg.Width/2, cfg.Height/2
	return []core.Point{
		{X: cx, Y: cy},
		{X: cx - 1, Y: cy},
		{X: cx - 2, Y: cy},
	}
}

// StartDirection is the direction a reset snake faces.
const StartDirection = core.DirRight

// Reset restores the starting snake, places fresh food and zeroes the score.
func (s *Session) Reset() {
	s.snake.reset(StartBody(s.cfg), StartDirection)
	s.score = 0
	s.ticks = 0
	s.outcome = OutcomeNone
	s.running = true

	// Validate guarantees a free cell for the starting snake.
	food, err := s.spawner.Respawn(s.snake.Occupied(), s.cfg.Width, s.cfg.Height)
	if err != nil {
		panic(fmt.Sprintf("snake: reset on a validated grid: %v", err))
	}
	s.food = food
}

// Tick advances the game by one step. It does nothing once the session has ended.
func (s *Session) Tick() TickResult {
	if !s.running {
		return TickResult{Head: s.snake.Head()}
	}
	s.ticks++

	result := s.snake.Tick(s.cfg.Width, s.cfg.Height, s.food)
	if result.Died {
		s.running = false
		s.outcome = outcomeFor(result.Cause)
		return result
	}

	if result.Ate {
		s.score++
		food, err := s.spawner.Respawn(s.snake.Occupied(), s.cfg.Width, s.cfg.Height)
		if err != nil {
			s.running = false
			s.outcome = OutcomeBoardFull
			return result
		}
		s.food = food
	}
	return result
}

// RequestDirection forwards a direction change while the session is running.
func (s *Session) RequestDirection(d core.Direction) bool {
	if !s.running {
		return false
	}
	return s.snake.ChangeDirection(d)
}

// OrientationAt returns the orientation of body segment index.
func (s *Session) OrientationAt(index int) (Orientation, error) {
	return s.snake.OrientationAt(index)
}

// Body returns a copy of the snake's segments, head first.
func (s *Session) Body() []core.Point { return s.snake.Body() }

// Length returns the number of segments.
func (s *Session) Length() int { return s.snake.Len() }

// Direction returns the snake's committed direction.
func (s *Session) Direction() core.Direction { return s.snake.Direction() }

// Pending returns the direction queued for the next tick.
func (s *Session) Pending() core.Direction { return s.snake.Pending() }

// Food returns the food cell.
func (s *Session) Food() core.Point { return s.food }

// Score returns the number of food items eaten.
func (s *Session) Score() int { return s.score }

// Running reports whether the session still accepts ticks.
func (s *Session) Running() bool { return s.running }

// Ticks returns the number of ticks processed since the last reset.
func (s *Session) Ticks() uint64 { return s.ticks }

// Outcome returns how the session ended, or OutcomeNone while running.
func (s *Session) Outcome() Outcome { return s.outcome }

// Config returns the grid the session plays on.
func (s *Session) Config() Config { return s.cfg }
