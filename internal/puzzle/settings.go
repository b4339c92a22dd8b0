package puzzle

import (
	"fmt"

	"github.com/vovakirdan/huematch/internal/core"
)

// Settings configures an Engine. Zero values are not usable; start from
// DefaultSettings and override fields.
type Settings struct {
	// Difficulty multiplies the decoy count. It is never raised during play.
	Difficulty int
	// ObjectsPerDifficulty is the number of decoys per difficulty step.
	ObjectsPerDifficulty int
	// JitterMax bounds the scalar offset between a decoy and the base color.
	JitterMax float64
	// MaxAttempts is the number of placement retries per tile.
	MaxAttempts int
	// TransitionSeconds is the length of the background fade between rounds.
	TransitionSeconds float64

	BoardWidth    float64
	BoardHeight   float64
	ScreenPadding float64
	MaxShapeSize  float64

	Modes map[GameMode]ModeSettings
}

// DefaultSettings returns the stock engine settings for an 800x600 board.
func DefaultSettings() Settings {
	modes := make(map[GameMode]ModeSettings, 3)
	for _, m := range Modes() {
		modes[m] = DefaultModeSettings(m)
	}
	return Settings{
		Difficulty:           1,
		ObjectsPerDifficulty: 2,
		JitterMax:            0.1,
		MaxAttempts:          DefaultMaxAttempts,
		TransitionSeconds:    1,
		BoardWidth:           800,
		BoardHeight:          600,
		ScreenPadding:        50,
		MaxShapeSize:         140,
		Modes:                modes,
	}
}

// ModeSettings returns the countdown for m, falling back to the built-in one.
func (s Settings) ModeSettings(m GameMode) ModeSettings {
	if ms, ok := s.Modes[m]; ok {
		return ms
	}
	return DefaultModeSettings(m)
}

// TileSize returns the tile edge for the configured board.
func (s Settings) TileSize() float64 {
	return min(s.BoardWidth/4, s.MaxShapeSize)
}

// PlayArea returns the region tiles are placed in.
func (s Settings) PlayArea() core.Rect {
	return core.NewRect(0, 0, s.BoardWidth, s.BoardHeight).Inset(s.ScreenPadding)
}

// Validate checks the settings. A zero jitter would let decoys equal the
// target color, so it is rejected.
func (s Settings) Validate() error {
	switch {
	case s.Difficulty < 1:
		return fmt.Errorf("%w: difficulty must be at least 1, got %d", ErrInvalidSettings, s.Difficulty)
	case s.ObjectsPerDifficulty < 0:
		return fmt.Errorf("%w: objects per difficulty must not be negative, got %d", ErrInvalidSettings, s.ObjectsPerDifficulty)
	case s.JitterMax <= 0:
		return fmt.Errorf("%w: jitter max must be positive, got %v", ErrInvalidSettings, s.JitterMax)
	case s.MaxAttempts < 0:
		return fmt.Errorf("%w: max attempts must not be negative, got %d", ErrInvalidSettings, s.MaxAttempts)
	case s.TransitionSeconds < 0:
		return fmt.Errorf("%w: transition seconds must not be negative, got %v", ErrInvalidSettings, s.TransitionSeconds)
	case s.BoardWidth <= 0 || s.BoardHeight <= 0:
		return fmt.Errorf("%w: board must have a positive size, got %vx%v", ErrInvalidSettings, s.BoardWidth, s.BoardHeight)
	case s.ScreenPadding < 0:
		return fmt.Errorf("%w: screen padding must not be negative, got %v", ErrInvalidSettings, s.ScreenPadding)
	case s.MaxShapeSize <= 0:
		return fmt.Errorf("%w: max shape size must be positive, got %v", ErrInvalidSettings, s.MaxShapeSize)
	}
	for m, ms := range s.Modes {
		if ms.StartSeconds < 0 || ms.SecondsPerSuccess < 0 {
			return fmt.Errorf("%w: mode %s has a negative duration", ErrInvalidSettings, m.ID())
		}
	}
	return nil
}
