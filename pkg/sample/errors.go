package sample

import "errors"

// Package-specific errors
var (
	// ErrInvalidRange is returned when a range has min > max or the scaled
	// range cannot be represented exactly.
	ErrInvalidRange = errors.New("invalid range")

	// ErrEmptyInput is returned when a selection is requested over zero candidates.
	ErrEmptyInput = errors.New("selection over empty input")

	// ErrInvalidCount is returned when a without-replacement pick requests
	// more elements than the population holds, or a negative count.
	ErrInvalidCount = errors.New("invalid selection count")

	// ErrInvalidWeight is returned when a weighted option carries a weight <= 0.
	ErrInvalidWeight = errors.New("option weight must be positive")

	// ErrNoValidValue is returned when a multiple-of constraint has no
	// satisfying value inside the range.
	ErrNoValidValue = errors.New("no valid value in range")
)
