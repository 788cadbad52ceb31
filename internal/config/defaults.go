package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Width:  20,
			Height: 20,
		},
		TickInterval: core.DefaultTickInterval,
		Seed:         0,
		Storage: StorageConfig{
			Path: "~/.snake/scores.db",
		},
		SSH: SSHConfig{
			Address:     ":23234",
			HostKey:     "",
			IdleTimeout: 30 * time.Minute,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
