package quiz

import "errors"

var (
	// ErrSessionNotFound is returned when grading against an unknown or
	// expired session ID.
	ErrSessionNotFound = errors.New("session not found")

	// ErrInvalidChoice is returned when the chosen index is outside the
	// option range of the current round.
	ErrInvalidChoice = errors.New("invalid choice")
)
