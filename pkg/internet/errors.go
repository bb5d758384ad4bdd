package internet

import "errors"

// Package-specific errors
var (
	// ErrInvalidLength is returned when a password cannot fit one character
	// of every enabled class, or the length is not positive.
	ErrInvalidLength = errors.New("invalid password length")

	// ErrNoCharsets is returned when every password character class has
	// been disabled.
	ErrNoCharsets = errors.New("no password character classes enabled")
)
