package puzzle

import (
	"fmt"
	"strings"
)

// GameMode selects the countdown and scoring rule of a game.
type GameMode int

const (
	// ModeInfinite has no countdown; the game runs until the host stops it.
	ModeInfinite GameMode = iota
	// ModeAgainstTheClock plays against a fixed countdown.
	ModeAgainstTheClock
	// ModeTimeTrial adds time to the countdown for every correct answer.
	ModeTimeTrial
)

// Modes returns every game mode in menu order.
func Modes() []GameMode {
	return []GameMode{ModeInfinite, ModeAgainstTheClock, ModeTimeTrial}
}

// ID returns the stable identifier used in configuration and storage.
func (m GameMode) ID() string {
	switch m {
	case ModeInfinite:
		return "infinite"
	case ModeAgainstTheClock:
		return "against_the_clock"
	case ModeTimeTrial:
		return "time_trial"
	default:
		return "unknown"
	}
}

// Title returns a human-readable name.
func (m GameMode) Title() string {
	switch m {
	case ModeInfinite:
		return "Infinite"
	case ModeAgainstTheClock:
		return "Against the Clock"
	case ModeTimeTrial:
		return "Time Trial"
	default:
		return "Unknown"
	}
}

func (m GameMode) String() string {
	return m.ID()
}

// HasCountdown reports whether the mode ends when a timer runs out.
func (m GameMode) HasCountdown() bool {
	return m == ModeAgainstTheClock || m == ModeTimeTrial
}

// ParseMode parses a mode identifier. Hyphens and case are ignored.
func ParseMode(s string) (GameMode, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for _, m := range Modes() {
		if m.ID() == key {
			return m, nil
		}
	}
	return ModeInfinite, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// ModeSettings holds the countdown parameters of one mode.
type ModeSettings struct {
	StartSeconds      float64
	SecondsPerSuccess float64
}

// DefaultModeSettings returns the built-in countdown for a mode.
func DefaultModeSettings(m GameMode) ModeSettings {
	switch m {
	case ModeAgainstTheClock:
		return ModeSettings{StartSeconds: 60}
	case ModeTimeTrial:
		return ModeSettings{StartSeconds: 30, SecondsPerSuccess: 3}
	default:
		return ModeSettings{}
	}
}
