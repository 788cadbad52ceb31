package snake

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func newTestSession(t *testing.T, w, h int, seed int64) *Session {
	t.Helper()
	s, err := NewSession(Config{Width: w, Height: h}, rand.New(rand.NewSource(seed)))
	require.NoError(t, err)
	return s
}

func TestNewSessionCanonicalStart(t *testing.T) {
	s := newTestSession(t, 20, 20, 1)

	require.Equal(t, []core.Point{{X: 10, Y: 10}, {X: 9, Y: 10}, {X: 8, Y: 10}}, s.Body())
	require.Equal(t, core.DirRight, s.Direction())
	require.Equal(t, core.DirRight, s.Pending())
	require.Equal(t, 0, s.Score())
	require.Equal(t, uint64(0), s.Ticks())
	require.True(t, s.Running())
	require.Equal(t, OutcomeNone, s.Outcome())
	require.True(t, s.Food().In(20, 20))
	require.NotContains(t, s.Body(), s.Food())
}

func TestNewSessionCompactGrid(t *testing.T) {
	s := newTestSession(t, 15, 15, 1)
	require.Equal(t, []core.Point{{X: 7, Y: 7}, {X: 6, Y: 7}, {X: 5, Y: 7}}, s.Body())
}

func TestConfigValidate(t *testing.T) {
	invalid := []Config{
		{Width: 0, Height: 5},
		{Width: 5, Height: 0},
		{Width: -1, Height: 1},
		{Width: 3, Height: 10},
	}
	for _, cfg := range invalid {
		err := cfg.Validate()
		require.ErrorIs(t, err, ErrInvalidGrid, "%+v", cfg)

		_, err = NewSession(cfg, rand.New(rand.NewSource(1)))
		require.ErrorIs(t, err, ErrInvalidGrid, "%+v", cfg)
	}

	valid := []Config{
		{Width: 4, Height: 1},
		{Width: 15, Height: 15},
		{Width: 20, Height: 20},
		{Width: 40, Height: 3},
	}
	for _, cfg := range valid {
		require.NoError(t, cfg.Validate(), "%+v", cfg)
	}
}

func TestNewSessionNilRand(t *testing.T) {
	_, err := NewSession(Config{Width: 10, Height: 10}, nil)
	require.Error(t, err)
}

func TestSessionEatScoresAndGrowsNextTick(t *testing.T) {
	s := newTestSession(t, 20, 20, 1)
	s.food = core.P(11, 10)

	res := s.Tick()
	require.True(t, res.Ate)
	require.Equal(t, 1, s.Score())
	require.Equal(t, 3, s.Length())
	require.NotEqual(t, core.P(11, 10), s.Food())
	require.NotContains(t, s.Body(), s.Food())

	s.food = core.P(0, 0)
	s.Tick()
	require.Equal(t, 4, s.Length())
	require.Equal(t, []core.Point{{X: 12, Y: 10}, {X: 11, Y: 10}, {X: 10, Y: 10}, {X: 9, Y: 10}}, s.Body())
}

func TestSessionWallEndsGame(t *testing.T) {
	s := newTestSession(t, 20, 20, 1)
	s.food = core.P(0, 0)

	// Head starts at x=10 facing right; the tenth move leaves the grid.
	for rangeIter := 0; rangeIter < 9; rangeIter++ {
		s.Tick()
		require.True(t, s.Running())
	}
	res := s.Tick()
	require.True(t, res.Died)
	require.False(t, s.Running())
	require.Equal(t, OutcomeWall, s.Outcome())
	require.Equal(t, uint64(10), s.Ticks())

	snap := s.Snapshot()
	require.Equal(t, StateGameOver, snap.State)
	require.Equal(t, OutcomeWall, snap.Outcome)
	require.Contains(t, s.DebugState(), "Running: false, Outcome: wall")
}

func TestSessionIgnoresInputAfterGameOver(t *testing.T) {
	s := newTestSession(t, 20, 20, 1)
	s.food = core.P(0, 0)
	for s.Running() {
		s.Tick()
	}

	ticks := s.Ticks()
	body := s.Body()
	require.False(t, s.RequestDirection(core.DirUp))

	s.Tick()
	require.Equal(t, ticks, s.Ticks())
	require.Equal(t, body, s.Body())
}

func TestSessionResetAfterGameOver(t *testing.T) {
	s := newTestSession(t, 20, 20, 1)
	s.food = core.P(11, 10)
	s.Tick()
	s.food = core.P(0, 0)
	for s.Running() {
		s.Tick()
	}
	require.Equal(t, 1, s.Score())

	s.Reset()
	require.True(t, s.Running())
	require.Equal(t, 0, s.Score())
	require.Equal(t, OutcomeNone, s.Outcome())
	require.Equal(t, StartBody(s.Config()), s.Body())
	require.False(t, s.Snapshot().JustGrew)

	s.Reset()
	require.Equal(t, StartBody(s.Config()), s.Body())
}

func TestSessionBoardFull(t *testing.T) {
	s := newTestSession(t, 4, 2, 1)

	// Seven of eight cells covered, the snake about to eat the last one.
	s.snake.reset([]core.Point{
		{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}, {X: 3, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0},
	}, core.DirLeft)
	s.snake.justGrew = true
	s.food = core.P(0, 1)

	res := s.Tick()
	require.True(t, res.Ate)
	require.False(t, res.Died)
	require.Equal(t, 8, s.Length())
	require.False(t, s.Running())
	require.Equal(t, OutcomeBoardFull, s.Outcome())
	require.Equal(t, StateBoardFull, s.Snapshot().State)
}

func TestSessionRequestDirection(t *testing.T) {
	s := newTestSession(t, 20, 20, 1)

	require.False(t, s.RequestDirection(core.DirLeft))
	require.True(t, s.RequestDirection(core.DirUp))
	require.Equal(t, core.DirUp, s.Pending())
	require.Equal(t, core.DirRight, s.Direction())
}

func TestSessionOrientationAt(t *testing.T) {
	s := newTestSession(t, 20, 20, 1)

	head, err := s.OrientationAt(0)
	require.NoError(t, err)
	require.Equal(t, PartHead, head.Part)
	require.Equal(t, core.DirRight, head.Facing)

	_, err = s.OrientationAt(s.Length())
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestSessionDeterminism(t *testing.T) {
	const ticks = 300

	run := func() []Snapshot {
		s := newTestSession(t, 15, 15, 42)
		input := rand.New(rand.NewSource(7))
		var out []Snapshot
		for rangeIter := 0; rangeIter < ticks; rangeIter++ {
			if !s.Running() {
				s.Reset()
			}
			s.RequestDirection(core.Directions[input.Intn(len(core.Directions))])
			s.Tick()
			out = append(out, s.Snapshot())
		}
		return out
	}

	require.Equal(t, run(), run())
}

func TestSessionInvariantsUnderRandomPlay(t *testing.T) {
	s := newTestSession(t, 12, 10, 3)
	input := rand.New(rand.NewSource(11))

	for rangeIter := 0; rangeIter < 5000; rangeIter++ {
		if !s.Running() {
			s.Reset()
		}
		prevLen := s.Length()

		s.RequestDirection(core.Directions[input.Intn(len(core.Directions))])
		res := s.Tick()

		require.GreaterOrEqual(t, s.Length(), MinLength)
		if res.Died {
			continue
		}
		require.GreaterOrEqual(t, s.Length(), prevLen)
		require.LessOrEqual(t, s.Length()-prevLen, 1)

		body := s.Body()
		seen := make(map[core.Point]bool, len(body))
		for i, seg := range body {
			require.True(t, seg.In(12, 10), "segment %d out of grid", i)
			require.False(t, seen[seg], "segment %d overlaps", i)
			seen[seg] = true
			if i > 0 {
				d := body[i-1].Sub(seg)
				_, ok := core.DirectionOf(d)
				require.True(t, ok, "segments %d and %d not adjacent", i-1, i)
			}
		}
		if s.Running() {
			require.False(t, seen[s.Food()], "food on the body")
		}
	}
}
