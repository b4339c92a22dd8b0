package puzzle

import "errors"

var (
	// ErrIndexOutOfRange is returned for history lookups past the recorded entries.
	ErrIndexOutOfRange = errors.New("puzzle: history index out of range")

	// ErrInvalidSettings is returned when engine settings fail validation.
	ErrInvalidSettings = errors.New("puzzle: invalid settings")

	// ErrUnknownMode is returned by ParseMode for unrecognized identifiers.
	ErrUnknownMode = errors.New("puzzle: unknown game mode")
)
