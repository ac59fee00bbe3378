package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-bomber/internal/config"
	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber"
	"github.com/vovakirdan/tui-bomber/internal/platform/tui"
	"github.com/vovakirdan/tui-bomber/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMode       string
	flagLevelsDir  string
)

var playCmd = &cobra.Command{
	Use:   "play [level-id]",
	Short: "Play a game",
	Long: `Start playing. The campaign runs every campaign level in order;
give a level ID to start somewhere else. Survival mode keeps sending
monsters into an arena until your health runs out.

Controls:
  WASD/Arrows  - Move (hold)
  Space/Enter  - Place bomb
  P/Esc        - Pause
  R            - Restart (after game over)
  Ctrl+S       - Save screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - More health and bombs, slow monster waves
  normal - Default settings
  hard   - Less health and bombs, fast monster waves
  fixed  - No progression, monsters never speed up

Examples:
  bomber play
  bomber play 03-maze
  bomber play --mode survival --difficulty hard
  bomber play --levels ./my-levels
  bomber play --config ./my-bomber.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagMode, "mode", "campaign", "Game mode: campaign, survival")
	playCmd.Flags().StringVar(&flagLevelsDir, "levels", "", "Directory of level YAML files (default: built-in levels)")
}

// gameIDForMode maps a --mode value to a registry ID.
func gameIDForMode(mode string) (string, error) {
	switch mode {
	case "", "campaign":
		return bomber.IDCampaign, nil
	case "survival":
		return bomber.IDSurvival, nil
	}
	return "", fmt.Errorf("unknown mode %q (expected campaign or survival)", mode)
}

// applyGameFlags hands the play flags to the game package.
func applyGameFlags(levelID string) error {
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}
	bomber.SetConfigPath(flagConfig)
	bomber.SetDifficultyPreset(flagDifficulty)
	bomber.SetLevelsDir(flagLevelsDir)
	bomber.SetStartLevel(levelID)
	return nil
}

// runtimeConfig sizes the runtime to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID, err := gameIDForMode(flagMode)
	if err != nil {
		return err
	}

	levelID := ""
	if len(args) == 1 {
		levelID = args[0]
		if err := checkLevelID(levelLoader(), levelID); err != nil {
			return err
		}
	}
	if err := applyGameFlags(levelID); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, runtimeConfig(), tui.Options{Store: store, Logger: logger}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
