package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bomber/internal/platform/tui"
	"github.com/vovakirdan/tui-bomber/internal/registry"
)

// runMenu loops between the mode picker, the scoreboard and games until
// the player quits.
func runMenu(_ *cobra.Command, _ []string) error {
	if err := applyGameFlags(""); err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	for {
		result, err := tui.RunMenu(store, cfg)
		if err != nil {
			return fmt.Errorf("running menu: %w", err)
		}
		cfg = result.Config

		switch {
		case result.Quit:
			return nil

		case result.WantsScoreboard:
			goBack, err := tui.RunScoreboard(store, "", cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return fmt.Errorf("running scoreboard: %w", err)
			}
			if !goBack {
				return nil
			}

		default:
			game, err := registry.Create(result.GameID)
			if err != nil {
				return fmt.Errorf("creating game: %w", err)
			}
			if err := tui.Run(game, cfg, tui.Options{Store: store, Logger: logger}); err != nil {
				return fmt.Errorf("running game: %w", err)
			}
			// Quitting a game ends the session, as in play
			return nil
		}
	}
}
