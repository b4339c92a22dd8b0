package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/huematch/internal/puzzle"
	"github.com/vovakirdan/huematch/internal/registry"
)

var modesCmd = &cobra.Command{
	Use:     "modes",
	Aliases: []string{"list"},
	Short:   "List all game modes",
	Long:    `Shows every game mode with its countdown settings.`,
	Run:     runModes,
}

func runModes(_ *cobra.Command, _ []string) {
	modes := registry.List()
	if len(modes) == 0 {
		fmt.Println("No modes available.")
		return
	}

	settings := puzzleCfg.Settings()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range modes {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Println("Available modes:")
	fmt.Println()
	fmt.Printf("  %-*s  %-18s  %-14s  %s\n", maxIDLen, "ID", "Title", "Clock", "Description")
	fmt.Printf("  %-*s  %-18s  %-14s  %s\n", maxIDLen, "--", "-----", "-----", "-----------")

	for _, g := range modes {
		clock := "none"
		if m, err := puzzle.ParseMode(g.ID); err == nil && m.HasCountdown() {
			ms := settings.ModeSettings(m)
			clock = fmt.Sprintf("%gs", ms.StartSeconds)
			if ms.SecondsPerSuccess > 0 {
				clock += fmt.Sprintf(" +%gs", ms.SecondsPerSuccess)
			}
		}
		fmt.Printf("  %-*s  %-18s  %-14s  %s\n", maxIDLen, g.ID, g.Title, clock, g.Description)
	}

	fmt.Println()
	fmt.Println("Run 'huematch play <id>' to play a mode.")
}
