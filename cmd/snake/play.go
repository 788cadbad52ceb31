package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [board]",
	Short: "Play a board",
	Long: `Start playing on the specified board (default: classic).

Controls:
  Arrows/WASD/HJKL - Steer
  P/Space          - Pause
  R/Enter          - Restart (after game over)
  Esc/B            - Leave (when paused or after game over)
  Q/Ctrl+C         - Quit

Examples:
  snake play
  snake play compact
  snake play --tick 120ms
  snake play --width 30 --height 15
  snake play --config ./my-snake.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	preset, err := resolvePreset(args, cfg, gridFlagsSet(cmd))
	if errors.Is(err, errPresetWithGrid) {
		return err
	}
	if err != nil {
		return fmt.Errorf("%w (run 'snake list' to see available boards)", err)
	}

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	_, runErr := tui.Run(preset, store, runtimeConfig(cfg, preset), playerName())

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("error running game: %w", runErr)
	}
	return nil
}

// terminalSize returns the current terminal size, or 80x24 when unknown.
func terminalSize() (width, height int) {
	width, height = 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}
