package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/huematch/internal/platform/tui"
	"github.com/vovakirdan/huematch/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode.
After a game ends, press B to return to the menu and play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select mode
  Tab          - Scoreboard
  Q            - Quit

Examples:
  huematch menu
  huematch menu --fps 30
  huematch menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}
	env := newEnv(store)
	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(env, cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			logger.Error("cannot create game", "mode", menuResult.GameID, "err", err)
			continue
		}

		// Fresh rounds for every game unless a seed was given
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		final, err := tui.Run(game, env, cfg)
		if err != nil {
			return err
		}
		if final.IsQuitting() {
			return nil
		}
	}
}
