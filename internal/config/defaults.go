package config

import (
	_ "embed"

	"github.com/vovakirdan/huematch/internal/puzzle"
)

//go:embed defaults/huematch.yaml
var defaultPuzzleYAML []byte

// DefaultPuzzleConfig returns the hardcoded default configuration.
func DefaultPuzzleConfig() PuzzleConfig {
	s := puzzle.DefaultSettings()

	modes := make(map[string]ModeConfig, len(s.Modes))
	for _, m := range puzzle.Modes() {
		ms := s.ModeSettings(m)
		modes[m.ID()] = ModeConfig{
			StartSeconds:      ms.StartSeconds,
			SecondsPerSuccess: ms.SecondsPerSuccess,
		}
	}

	return PuzzleConfig{
		Board: BoardConfig{
			Width:         s.BoardWidth,
			Height:        s.BoardHeight,
			ScreenPadding: s.ScreenPadding,
			MaxShapeSize:  s.MaxShapeSize,
		},
		Rounds: RoundsConfig{
			Difficulty:           s.Difficulty,
			ObjectsPerDifficulty: s.ObjectsPerDifficulty,
			JitterMax:            s.JitterMax,
			MaxAttempts:          s.MaxAttempts,
			TransitionSeconds:    s.TransitionSeconds,
		},
		Modes: modes,
		History: HistoryConfig{
			PageSize: puzzle.DefaultPageSize,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPuzzleYAML
}
