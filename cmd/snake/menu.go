package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/presets"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start snake with a board picker menu",
	Long: `Start snake in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a board.
Leave a finished or paused game with Esc to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select board
  Tab          - Scoreboard
  Q/Esc        - Quit

Examples:
  snake menu
  snake menu --tick 150ms
  snake menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	rc := cfg.Runtime()
	rc.ScreenW, rc.ScreenH = terminalSize()

	for {
		menuResult, err := tui.RunMenu(store, rc)
		if err != nil {
			return fmt.Errorf("error running menu: %w", err)
		}

		// Keep any size changes from the menu
		rc = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, rc.ScreenW, rc.ScreenH)
			if sbErr != nil {
				return fmt.Errorf("error running scoreboard: %w", sbErr)
			}
			if goBack {
				continue
			}
			return nil
		}

		preset, err := presets.Get(menuResult.PresetID)
		if err != nil {
			logger.Error("unknown board", "id", menuResult.PresetID)
			continue
		}

		backToMenu, err := tui.Run(preset, store, rc, playerName())
		if err != nil {
			return fmt.Errorf("error running game: %w", err)
		}
		if !backToMenu {
			return nil
		}
	}
}
