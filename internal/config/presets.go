package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. An empty name means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Easy decoys differ more from the target and are fewer; hard decoys are
// closer and more numerous. Normal leaves the config unchanged.
func ApplyPreset(cfg *PuzzleConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Rounds.JitterMax *= 2
		cfg.Rounds.ObjectsPerDifficulty = max(cfg.Rounds.ObjectsPerDifficulty-1, 1)
	case DifficultyHard:
		cfg.Rounds.JitterMax /= 2
		cfg.Rounds.ObjectsPerDifficulty++
	}
}
