package snake

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrNoFreeCell is returned when every cell of the grid is occupied.
var ErrNoFreeCell = errors.New("snake: no free cell for food")

// Occupancy is the set of cells food must not land on.
type Occupancy map[core.Point]struct{}

// Has reports whether p is occupied.
func (o Occupancy) Has(p core.Point) bool {
	_, ok := o[p]
	return ok
}

// FoodSpawner picks random free cells for food.
// It keeps no game state; the RNG is its only field so seeded games replay
// the same food sequence.
type FoodSpawner struct {
	rng *rand.Rand
}

// NewFoodSpawner creates a spawner drawing from rng.
func NewFoodSpawner(rng *rand.Rand) *FoodSpawner {
	return &FoodSpawner{rng: rng}
}

// Respawn samples uniformly random cells of a width x height grid until one
// is not in occupied. Occupied cells outside the grid are ignored.
func (f *FoodSpawner) Respawn(occupied Occupancy, width, height int) (core.Point, error) {
	cells := width * height
	if cells <= 0 {
		return core.Point{}, ErrNoFreeCell
	}

	inside := 0
	for p := range occupied {
		if p.In(width, height) {
			inside++
		}
	}
	if inside >= cells {
		return core.Point{}, ErrNoFreeCell
	}

	// Rejection sampling is uniform and cheap while the board is mostly empty.
	for i := 0; i < 4*cells; i++ {
		p := core.Point{X: f.rng.Intn(width), Y: f.rng.Intn(height)}
		if !occupied.Has(p) {
			return p, nil
		}
	}

	// Nearly full board: pick uniformly among the remaining free cells.
	free := make([]core.Point, 0, cells-inside)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := core.Point{X: x, Y: y}
			if !occupied.Has(p) {
				free = append(free, p)
			}
		}
	}
	return free[f.rng.Intn(len(free))], nil
}
