// Package presets provides a registry of named grid presets.
// The built-in presets register themselves in init(); the CLI and the menu
// look presets up by name without hardcoding grid sizes.
package presets

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Preset is a named grid configuration.
type Preset struct {
	ID     string
	Title  string
	Width  int
	Height int
}

// Session returns the engine configuration for the preset.
func (p Preset) Session() snake.Config {
	return snake.Config{Width: p.Width, Height: p.Height}
}

// Built-in preset IDs.
const (
	Classic = "classic"
	Compact = "compact"
)

// Default is the preset used when none is named.
const Default = Classic

var (
	presets = make(map[string]Preset)
	mu      sync.RWMutex
)

func init() {
	Register(Preset{ID: Classic, Title: "Classic 20x20", Width: 20, Height: 20})
	Register(Preset{ID: Compact, Title: "Compact 15x15", Width: 15, Height: 15})
}

// Register adds a preset to the registry.
// Panics if a preset with the same ID is already registered or if its grid
// cannot host a game.
func Register(p Preset) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := presets[p.ID]; exists {
		panic(fmt.Sprintf("presets: preset %q already registered", p.ID))
	}
	if err := p.Session().Validate(); err != nil {
		panic(fmt.Sprintf("presets: preset %q: %v", p.ID, err))
	}

	presets[p.ID] = p
}

// List returns all registered presets, sorted by ID.
func List() []Preset {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Preset, 0, len(presets))
	for _, p := range presets {
		result = append(result, p)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns the preset with the given ID.
// Returns an error if the ID is not registered.
func Get(id string) (Preset, error) {
	mu.RLock()
	defer mu.RUnlock()

	p, ok := presets[id]
	if !ok {
		return Preset{}, fmt.Errorf("presets: unknown preset %q", id)
	}

	return p, nil
}

// Exists checks if a preset with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := presets[id]
	return ok
}

// Custom returns an unregistered preset for an explicit grid size, used when
// the grid comes from flags or a config file instead of a named preset.
func Custom(width, height int) Preset {
	return Preset{
		ID:     fmt.Sprintf("custom-%dx%d", width, height),
		Title:  fmt.Sprintf("Custom %dx%d", width, height),
		Width:  width,
		Height: height,
	}
}
