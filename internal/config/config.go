// Package config provides YAML-based configuration loading for the snake
// game: grid size, tick cadence, RNG seed, score storage and the SSH server.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Grid         GridConfig    `yaml:"grid"`
	TickInterval time.Duration `yaml:"tick_interval"`
	Seed         int64         `yaml:"seed"` // 0 = random based on time
	Storage      StorageConfig `yaml:"storage"`
	SSH          SSHConfig     `yaml:"ssh"`
}

// GridConfig defines the playfield size in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// StorageConfig defines where finished-game results are kept.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// SSHConfig defines the remote play server.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"` // Empty = ~/.snake/host_key, generated on first start
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Validate checks the values the engine and the tick loop depend on.
func (c SnakeConfig) Validate() error {
	if c.TickInterval <= 0 {
		return fmt.Errorf("%w: tick_interval must be positive, got %s", ErrInvalidConfig, c.TickInterval)
	}
	if err := c.Session().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.SSH.IdleTimeout < 0 {
		return fmt.Errorf("%w: ssh.idle_timeout must not be negative", ErrInvalidConfig)
	}
	return nil
}

// Session returns the engine configuration for the grid.
func (c SnakeConfig) Session() snake.Config {
	return snake.Config{Width: c.Grid.Width, Height: c.Grid.Height}
}

// Runtime returns the runtime configuration passed to the terminal collaborator.
// Screen dimensions are left at their defaults; the caller fills them from the terminal.
func (c SnakeConfig) Runtime() core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.GridW = c.Grid.Width
	rc.GridH = c.Grid.Height
	rc.TickInterval = c.TickInterval
	rc.Seed = c.Seed
	return rc
}

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
