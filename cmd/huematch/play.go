package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/huematch/internal/platform/tui"
	"github.com/vovakirdan/huematch/internal/puzzle"
	"github.com/vovakirdan/huematch/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode. Without a mode, Time Trial starts.

Click the tile whose color matches the background. In Time Trial every
match adds time to the clock; Against the Clock gives one fixed minute;
Infinite has no clock and ends when you press B.

Controls:
  Mouse click  - Pick a tile
  P/Space      - Pause
  B/Esc        - End the game, then back
  R            - Restart (after game over)
  H            - Review the rounds (after game over)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Decoys are further from the target and fewer
  normal - Default settings
  hard   - Decoys are closer to the target and more numerous

Examples:
  huematch play
  huematch play infinite
  huematch play against-the-clock --difficulty hard
  huematch play time_trial --config ./my-huematch.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	mode := puzzle.ModeTimeTrial
	if len(args) == 1 {
		m, err := puzzle.ParseMode(args[0])
		if err != nil {
			return fmt.Errorf("%w\nRun 'huematch modes' to see available modes", err)
		}
		mode = m
	}

	game, err := registry.Create(mode.ID())
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	final, err := tui.Run(game, newEnv(store), runtimeConfig())
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	if id := final.SavedGameID(); id != "" {
		fmt.Printf("Game saved. Review it with: huematch history %s\n", id)
	}
	return nil
}
