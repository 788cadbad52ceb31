package main

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagLimit int
	flagClear bool
	flagAll   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [board]",
	Short: "Show high scores for a board",
	Long: `Display the top high scores for the specified board (default: classic).

Examples:
  snake scores
  snake scores compact --limit 20
  snake scores --limit 0         # every recorded game
  snake scores --all             # summary of every board
  snake scores classic --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of results to show (0 = all)")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all results for the board")
	scoresCmd.Flags().BoolVar(&flagAll, "all", false, "Show a summary of every board played")
}

func runScores(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	if flagAll {
		return printAllStats(store)
	}

	preset, err := resolvePreset(args, cfg, gridFlagsSet(cmd))
	if errors.Is(err, errPresetWithGrid) {
		return err
	}
	if err != nil {
		return fmt.Errorf("%w (run 'snake list' to see available boards)", err)
	}

	if flagClear {
		if err := store.ClearResults(preset.ID); err != nil {
			return err
		}
		fmt.Printf("Cleared all results for %s.\n", preset.Title)
		return nil
	}

	var results []storage.Result
	if flagLimit == 0 {
		results, err = store.AllResults(preset.ID)
	} else {
		results, err = store.TopResults(preset.ID, flagLimit)
	}
	if err != nil {
		return fmt.Errorf("error retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", preset.Title)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'snake play %s' to set the first high score!\n", preset.ID)
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %-12s  %-10s  %s\n", "Rank", "Score", "Length", "Player", "Ended", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-12s  %-10s  %s\n", "----", "-----", "------", "------", "-----", "----")

	for i, r := range results {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-6d  %-6d  %-12s  %-10s  %s\n", i+1, r.Score, r.Length, r.Player, r.Outcome, dateStr)
	}

	stats, err := store.Stats(preset.ID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Games: %d  Average: %.1f  Longest snake: %d\n",
			stats.HighScore, stats.Games, stats.AvgScore, stats.LongestSnake)
		if stats.BoardsCleared > 0 {
			fmt.Printf("Boards cleared: %d\n", stats.BoardsCleared)
		}
	}
	return nil
}

// printAllStats prints one summary line per board that has recorded games.
func printAllStats(store *storage.Store) error {
	all, err := store.AllStats()
	if err != nil {
		return fmt.Errorf("error retrieving stats: %w", err)
	}
	if len(all) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-14s  %-5s  %-5s  %-7s  %-7s  %s\n", "Board", "Games", "Best", "Average", "Longest", "Last played")
	fmt.Printf("  %-14s  %-5s  %-5s  %-7s  %-7s  %s\n", "-----", "-----", "----", "-------", "-------", "-----------")
	for _, id := range ids {
		st := all[id]
		fmt.Printf("  %-14s  %-5d  %-5d  %-7.1f  %-7d  %s\n",
			id, st.Games, st.HighScore, st.AvgScore, st.LongestSnake, st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
