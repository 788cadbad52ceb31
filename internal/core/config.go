package core

import "time"

// DefaultTickInterval is the time between two engine ticks.
const DefaultTickInterval = 200 * time.Millisecond

// RuntimeConfig is what the platform hands to a play session: the grid to
// simulate, the tick cadence, the RNG seed and the terminal it draws into.
type RuntimeConfig struct {
	GridW        int           // Grid width in cells
	GridH        int           // Grid height in cells
	TickInterval time.Duration // Time between engine ticks
	Seed         int64         // RNG seed; 0 means seed from the clock
	ScreenW      int           // Terminal width in characters
	ScreenH      int           // Terminal height in characters
}

// DefaultConfig returns a RuntimeConfig for the classic 20x20 board.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		GridW:        20,
		GridH:        20,
		TickInterval: DefaultTickInterval,
		Seed:         0,
		ScreenW:      80,
		ScreenH:      24,
	}
}

// SeedOrNow returns the configured seed, or the current time when unset.
func (c RuntimeConfig) SeedOrNow() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
