package locale

import "errors"

// Package-specific errors
var (
	// ErrUnknownLocale is returned when no dataset is registered under the
	// requested code.
	ErrUnknownLocale = errors.New("unknown locale")

	// ErrAlreadyRegistered is returned when a dataset code is registered twice.
	ErrAlreadyRegistered = errors.New("locale already registered")

	// ErrIncompleteDataset is returned when a dataset is missing a table
	// the generators rely on.
	ErrIncompleteDataset = errors.New("incomplete locale dataset")
)
