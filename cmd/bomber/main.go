// bomber is a top-down bomb-laying arcade game for the terminal.
//
// Usage:
//
//	bomber                    - Pick a mode from the menu
//	bomber play [level-id]    - Play the campaign, or start at a level
//	bomber levels             - List available levels
//	bomber scores [level-id]  - Show high scores
//	bomber serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.bomber/scores.db)
//	--log-level <level> - debug, info, warn or error (default: warn)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber"
	"github.com/vovakirdan/tui-bomber/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bomber",
	Short: "Bomber - lay bombs, clear walls, outrun monsters",
	Long: `Bomber is a top-down arcade game for the terminal. Walk the maze,
drop bombs to blast breakable walls and monsters, and collect the
pickups they leave behind.

Available commands:
  play     - Play the campaign or survival mode
  levels   - Show all available levels
  scores   - View high scores
  serve    - Start SSH server for remote play

Run without a command to pick a mode from the menu.

Examples:
  bomber
  bomber play
  bomber play 02-rooms --difficulty hard
  bomber play --mode survival
  bomber serve --ssh :2222
  bomber scores 03-maze`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogger,
	RunE:              runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultTickRate, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setupLogger creates the process logger on stderr. The TUI owns stdout.
func setupLogger(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "bomber",
		Level:           level,
	})
	bomber.SetLogger(logger)
	return nil
}

// openStore opens the score database. Games still run without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}
