package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/huematch/internal/puzzle"
	"github.com/vovakirdan/huematch/internal/storage"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history [game-id]",
	Short: "Review stored games",
	Long: `Without arguments, list the most recent stored games.
With a game ID, print every round of that game.

Examples:
  huematch history
  huematch history --limit 50
  huematch history 0b7c1e9e-5a43-4c55-9d0c-1d6f1f3f2a11`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Number of games to list")
}

func runHistory(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if len(args) == 0 {
		return listGames(store)
	}
	return showGame(store, args[0])
}

func listGames(store *storage.Store) error {
	games, err := store.RecentGames(flagHistoryLimit)
	if err != nil {
		return err
	}
	if len(games) == 0 {
		fmt.Println("No games stored yet.")
		return nil
	}

	fmt.Printf("  %-36s  %-18s  %-6s  %-6s  %-6s  %-6s  %-10s  %s\n",
		"ID", "Mode", "Score", "Levels", "Streak", "Time", "Player", "Date")
	for _, g := range games {
		fmt.Printf("  %-36s  %-18s  %-6d  %-6d  %-6d  %-6s  %-10s  %s\n",
			g.ID, g.Mode, g.Score, g.LevelsPlayed, g.MaxStreak,
			puzzle.FormatSeconds(g.TotalTime), g.Player, g.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func showGame(store *storage.Store, id string) error {
	g, err := store.GameByID(id)
	if err != nil {
		return err
	}
	rounds, err := store.GameRounds(id)
	if err != nil {
		return err
	}

	title := g.Mode
	if m, err := puzzle.ParseMode(g.Mode); err == nil {
		title = m.Title()
	}
	fmt.Printf("%s - score %d, %d levels, longest streak %d, %s\n",
		title, g.Score, g.LevelsPlayed, g.MaxStreak, puzzle.FormatSeconds(g.TotalTime))
	fmt.Printf("Played by %s on %s\n\n", g.Player, g.CreatedAt.Format("2006-01-02 15:04"))

	fmt.Printf("  %-5s  %-7s  %-9s  %-5s  %s\n", "Round", "Result", "Target", "Tiles", "Click")
	for i, r := range rounds {
		result := "miss"
		if r.Scored {
			result = "match"
		}
		target := "-"
		if r.CorrectIndex >= 0 && r.CorrectIndex < len(r.Tiles) {
			target = r.Tiles[r.CorrectIndex].Color.Hex()
		}
		fmt.Printf("  %-5d  %-7s  %-9s  %-5d  (%.0f, %.0f)\n",
			i+1, result, target, len(r.Tiles), r.Click.X, r.Click.Y)
	}
	return nil
}
