package validator

import "errors"

var (
	// ErrValidationFailed is the sentinel every ValidationErrors unwraps to.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidPattern is returned when a catalog rule pattern does not compile.
	ErrInvalidPattern = errors.New("invalid rule pattern")

	// ErrDuplicateField is returned when a catalog declares the same field twice.
	ErrDuplicateField = errors.New("duplicate catalog field")

	// ErrUnknownField is returned when a field has no rule in the catalog.
	ErrUnknownField = errors.New("unknown field")
)
