package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bomber/internal/platform/tui"
	"github.com/vovakirdan/tui-bomber/internal/registry"
	"github.com/vovakirdan/tui-bomber/internal/storage"
)

var (
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [level-id]",
	Short: "Show high scores",
	Long: `Display the top 10 scores of every mode. With a level ID, only runs
that ended on that level are shown.

Examples:
  bomber scores
  bomber scores 03-maze
  bomber scores --interactive
  bomber scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Open the scoreboard")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded score")
}

func runScores(_ *cobra.Command, args []string) error {
	levelID := ""
	if len(args) == 1 {
		levelID = args[0]
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		return clearScores(store)
	}

	if flagInteractive {
		cfg := runtimeConfig()
		_, err := tui.RunScoreboard(store, levelID, cfg.ScreenW, cfg.ScreenH)
		return err
	}

	for _, g := range registry.List() {
		if err := printScores(store, g, levelID); err != nil {
			return err
		}
	}
	return nil
}

func clearScores(store *storage.Store) error {
	for _, g := range registry.List() {
		n, err := store.Count(g.ID)
		if err != nil {
			return err
		}
		if err := store.ClearScores(g.ID); err != nil {
			return err
		}
		fmt.Printf("Cleared %d %s scores.\n", n, g.Title)
	}
	return nil
}

func printScores(store *storage.Store, g registry.GameInfo, levelID string) error {
	var (
		scores []storage.ScoreEntry
		err    error
	)
	if levelID == "" {
		scores, err = store.TopScores(g.ID, 10)
	} else {
		var all []storage.ScoreEntry
		all, err = store.TopScoresForLevel(levelID, 100)
		for _, e := range all {
			if e.GameID == g.ID && len(scores) < 10 {
				scores = append(scores, e)
			}
		}
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	title := g.Title
	if levelID != "" {
		title = fmt.Sprintf("%s, level %s", title, levelID)
	}
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("  No scores recorded yet.")
		fmt.Println()
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-12s  %s\n", "Rank", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-8s  %-12s  %s\n", "----", "-----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-12s  %s\n", i+1, entry.Score, entry.LevelID, dateStr)
	}

	if levelID == "" {
		stats, statsErr := store.GetGameStats(g.ID)
		if statsErr == nil {
			fmt.Printf("\n  Best: %d over %d runs, average %.0f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
		}
	}
	fmt.Println()
	return nil
}
