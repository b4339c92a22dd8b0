package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/huematch/internal/puzzle"
	"github.com/vovakirdan/huematch/internal/registry"
	"github.com/vovakirdan/huematch/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show high scores for a mode",
	Long: `Display the top 10 high scores and the stored game stats of a mode.

Examples:
  huematch scores time_trial
  huematch scores infinite`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func runScores(_ *cobra.Command, args []string) error {
	mode, err := puzzle.ParseMode(args[0])
	if err != nil {
		return fmt.Errorf("%w\nRun 'huematch modes' to see available modes", err)
	}
	info, ok := registry.Lookup(mode.ID())
	if !ok {
		return fmt.Errorf("mode %q is not registered", mode.ID())
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	scores, err := store.TopScores(info.ID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", info.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'huematch play %s' to set the first high score!\n", info.ID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.HighScore(info.ID); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
	if stats, err := store.GetModeStats(info.ID); err == nil && stats.GamesCount > 0 {
		fmt.Printf("Games: %d  Average: %.1f  Best streak: %d  Time played: %s\n",
			stats.GamesCount, stats.AvgScore, stats.BestStreak, puzzle.FormatSeconds(stats.TotalTime))
	}
	return nil
}
