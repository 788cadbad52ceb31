// snake is a terminal snake game.
//
// Usage:
//
//	snake list              - List available boards
//	snake play [board]      - Play a board (default: classic)
//	snake menu              - Start menu to pick boards interactively
//	snake serve             - Start SSH server for remote play
//	snake scores [board]    - Show high scores for a board
//
// Global flags:
//
//	--tick <duration>  - Time between moves (default: 200ms)
//	--seed <value>     - Set RNG seed for reproducible food placement
//	--db <path>        - Set database path (default: ~/.snake/scores.db)
//	--config <path>    - Use a specific config file
//	--width, --height  - Play on a custom grid size
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/presets"
)

var (
	// Global flags
	flagTick   time.Duration
	flagSeed   int64
	flagDBPath string
	flagConfig string
	flagWidth  int
	flagHeight int
)

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "snake"})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic arcade game in your terminal",
	Long: `Snake is a terminal version of the classic arcade game.
Steer the snake to the food, grow longer, and don't hit the walls or yourself.

Available commands:
  list     - Show all available boards
  play     - Play a board directly
  menu     - Interactive board picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  snake play
  snake play compact
  snake play --width 30 --height 12 --tick 150ms
  snake menu
  snake serve --ssh :2222
  snake scores classic`,
	SilenceUsage: true,
}

func init() {
	defaults := config.DefaultSnakeConfig()

	rootCmd.PersistentFlags().DurationVar(&flagTick, "tick", defaults.TickInterval, "Time between moves")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", defaults.Storage.Path, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagWidth, "width", defaults.Grid.Width, "Grid width in cells")
	rootCmd.PersistentFlags().IntVar(&flagHeight, "height", defaults.Grid.Height, "Grid height in cells")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// loadSettings loads the config file and applies any flags set on the command line.
func loadSettings(cmd *cobra.Command) (config.SnakeConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("tick") {
		cfg.TickInterval = flagTick
	}
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("db") {
		cfg.Storage.Path = flagDBPath
	}
	if flags.Changed("width") {
		cfg.Grid.Width = flagWidth
	}
	if flags.Changed("height") {
		cfg.Grid.Height = flagHeight
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// errPresetWithGrid is returned when a named preset is combined with --width or --height.
var errPresetWithGrid = errors.New("a named board has a fixed grid; drop --width/--height or the board name")

// resolvePreset picks the board to play: a named preset if given, otherwise
// the registered preset matching the configured grid, otherwise a custom one.
// gridFlags reports whether --width or --height was set on the command line.
func resolvePreset(args []string, cfg config.SnakeConfig, gridFlags bool) (presets.Preset, error) {
	if len(args) > 0 {
		if gridFlags {
			return presets.Preset{}, errPresetWithGrid
		}
		return presets.Get(args[0])
	}
	for _, p := range presets.List() {
		if p.Width == cfg.Grid.Width && p.Height == cfg.Grid.Height {
			return p, nil
		}
	}
	return presets.Custom(cfg.Grid.Width, cfg.Grid.Height), nil
}

// gridFlagsSet reports whether the grid size was given on the command line.
func gridFlagsSet(cmd *cobra.Command) bool {
	return cmd.Flags().Changed("width") || cmd.Flags().Changed("height")
}

// playerName returns the local user name recorded with results.
func playerName() string {
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "player"
}

// runtimeConfig builds the runtime config for a local terminal session.
func runtimeConfig(cfg config.SnakeConfig, preset presets.Preset) core.RuntimeConfig {
	rc := cfg.Runtime()
	rc.GridW = preset.Width
	rc.GridH = preset.Height
	rc.ScreenW, rc.ScreenH = terminalSize()
	return rc
}
