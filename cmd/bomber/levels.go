package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bomber/internal/games/bomber/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all available levels",
	Long: `Shows the built-in levels, or the levels in --levels dir.
Files that fail to parse or validate are skipped.`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagLevelsDir, "levels", "", "Directory of level YAML files (default: built-in levels)")
}

// levelLoader reads --levels when set, the built-in levels otherwise.
func levelLoader() *levels.Loader {
	if flagLevelsDir != "" {
		return levels.NewDirLoader(flagLevelsDir)
	}
	return levels.Embedded()
}

// checkLevelID fails early on a level ID the loader does not know,
// naming the IDs it does.
func checkLevelID(loader *levels.Loader, id string) error {
	_, err := loader.LoadByID(id)
	if !errors.Is(err, levels.ErrNotFound) {
		return err
	}
	ids, listErr := loader.ListIDs()
	if listErr != nil || len(ids) == 0 {
		return err
	}
	return fmt.Errorf("%w (available: %s)", err, strings.Join(ids, ", "))
}

func runLevels(_ *cobra.Command, _ []string) error {
	list, err := levelLoader().LoadAll()
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Println("No levels available.")
		return nil
	}

	fmt.Println("Available levels:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, l := range list {
		maxIDLen = max(maxIDLen, len(l.ID))
	}

	fmt.Printf("  %-*s  %-8s  %-7s  %-8s  %s\n", maxIDLen, "ID", "Mode", "Size", "Targets", "Name")
	fmt.Printf("  %-*s  %-8s  %-7s  %-8s  %s\n", maxIDLen, "--", "----", "----", "-------", "----")

	for _, l := range list {
		size := fmt.Sprintf("%dx%d", l.Grid.Width, l.Grid.Height())
		targets := fmt.Sprintf("%d+%d", l.Grid.Count(levels.TileBreakable), len(l.Enemies))
		fmt.Printf("  %-*s  %-8s  %-7s  %-8s  %s\n", maxIDLen, l.ID, l.Kind, size, targets, l.Title())
	}

	fmt.Println()
	fmt.Println("Targets are breakable walls + monsters.")
	fmt.Println("Run 'bomber play <id>' to start a campaign level.")
	return nil
}
