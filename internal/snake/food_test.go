package snake

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestRespawnAvoidsOccupied(t *testing.T) {
	spawner := NewFoodSpawner(rand.New(rand.NewSource(999)))
	occupied := Occupancy{}
	for x := 0; x < 10; x++ {
		occupied[core.P(x, 3)] = struct{}{}
	}

	for rangeIter := 0; rangeIter < 500; rangeIter++ {
		p, err := spawner.Respawn(occupied, 10, 10)
		require.NoError(t, err)
		require.False(t, occupied.Has(p), "food spawned on occupied cell %v", p)
		require.True(t, p.In(10, 10), "food spawned out of bounds at %v", p)
	}
}

func TestRespawnSingleFreeCell(t *testing.T) {
	spawner := NewFoodSpawner(rand.New(rand.NewSource(1)))
	occupied := Occupancy{}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			occupied[core.P(x, y)] = struct{}{}
		}
	}
	delete(occupied, core.P(2, 3))

	for rangeIter := 0; rangeIter < 20; rangeIter++ {
		p, err := spawner.Respawn(occupied, 5, 5)
		require.NoError(t, err)
		require.Equal(t, core.P(2, 3), p)
	}
}

func TestRespawnFullGrid(t *testing.T) {
	spawner := NewFoodSpawner(rand.New(rand.NewSource(1)))
	occupied := Occupancy{}
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			occupied[core.P(x, y)] = struct{}{}
		}
	}

	_, err := spawner.Respawn(occupied, 3, 2)
	require.ErrorIs(t, err, ErrNoFreeCell)
}

func TestRespawnIgnoresCellsOutsideGrid(t *testing.T) {
	spawner := NewFoodSpawner(rand.New(rand.NewSource(7)))
	occupied := Occupancy{
		core.P(-1, 0): {},
		core.P(0, 0):  {},
		core.P(5, 5):  {},
	}

	// 2x1 grid with one occupied cell inside: the other cell is free.
	p, err := spawner.Respawn(occupied, 2, 1)
	require.NoError(t, err)
	require.Equal(t, core.P(1, 0), p)
}

func TestRespawnEmptyGrid(t *testing.T) {
	spawner := NewFoodSpawner(rand.New(rand.NewSource(7)))
	_, err := spawner.Respawn(nil, 0, 10)
	require.ErrorIs(t, err, ErrNoFreeCell)
}

func TestRespawnCoversGrid(t *testing.T) {
	// Uniform sampling should reach every free cell of a small grid.
	spawner := NewFoodSpawner(rand.New(rand.NewSource(2024)))
	seen := map[core.Point]bool{}
	for rangeIter := 0; rangeIter < 2000; rangeIter++ {
		p, err := spawner.Respawn(nil, 4, 4)
		require.NoError(t, err)
		seen[p] = true
	}
	require.Len(t, seen, 16)
}
