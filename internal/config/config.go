// Package config provides YAML-based configuration loading and
// difficulty presets for HueMatch.
package config

import (
	"fmt"

	"github.com/vovakirdan/huematch/internal/puzzle"
)

// PuzzleConfig contains all configuration for the puzzle engine and its hosts.
type PuzzleConfig struct {
	Board   BoardConfig           `yaml:"board"`
	Rounds  RoundsConfig          `yaml:"rounds"`
	Modes   map[string]ModeConfig `yaml:"modes"`
	History HistoryConfig         `yaml:"history"`
}

// BoardConfig defines the world size and tile sizing.
type BoardConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	ScreenPadding float64 `yaml:"screen_padding"`
	MaxShapeSize  float64 `yaml:"max_shape_size"`
}

// RoundsConfig defines round generation.
type RoundsConfig struct {
	Difficulty           int     `yaml:"difficulty"`
	ObjectsPerDifficulty int     `yaml:"objects_per_difficulty"`
	JitterMax            float64 `yaml:"jitter_max"`
	MaxAttempts          int     `yaml:"max_attempts"`
	TransitionSeconds    float64 `yaml:"transition_seconds"`
}

// ModeConfig defines the countdown of one game mode.
type ModeConfig struct {
	StartSeconds      float64 `yaml:"start_seconds"`
	SecondsPerSuccess float64 `yaml:"seconds_per_success"`
}

// HistoryConfig defines the history review screen.
type HistoryConfig struct {
	PageSize int `yaml:"page_size"`
}

// Settings converts the configuration into engine settings.
// Unknown mode keys are ignored; missing modes keep their defaults.
func (c PuzzleConfig) Settings() puzzle.Settings {
	s := puzzle.DefaultSettings()
	s.Difficulty = c.Rounds.Difficulty
	s.ObjectsPerDifficulty = c.Rounds.ObjectsPerDifficulty
	s.JitterMax = c.Rounds.JitterMax
	s.MaxAttempts = c.Rounds.MaxAttempts
	s.TransitionSeconds = c.Rounds.TransitionSeconds
	s.BoardWidth = c.Board.Width
	s.BoardHeight = c.Board.Height
	s.ScreenPadding = c.Board.ScreenPadding
	s.MaxShapeSize = c.Board.MaxShapeSize

	for id, mc := range c.Modes {
		m, err := puzzle.ParseMode(id)
		if err != nil {
			continue
		}
		s.Modes[m] = puzzle.ModeSettings{
			StartSeconds:      mc.StartSeconds,
			SecondsPerSuccess: mc.SecondsPerSuccess,
		}
	}
	return s
}

// PageSize returns the history page size, falling back to the default.
func (c PuzzleConfig) PageSize() int {
	if c.History.PageSize <= 0 {
		return puzzle.DefaultPageSize
	}
	return c.History.PageSize
}

// Validate checks the configuration.
func (c PuzzleConfig) Validate() error {
	for id := range c.Modes {
		if _, err := puzzle.ParseMode(id); err != nil {
			return fmt.Errorf("config: modes: %w", err)
		}
	}
	if c.History.PageSize < 0 {
		return fmt.Errorf("config: history page_size must not be negative, got %d", c.History.PageSize)
	}
	if err := c.Settings().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
