package form

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g. Ctrl+C).
	ErrAborted = errors.New("form: aborted")

	// ErrTooManyAttempts is returned when a prompt keeps receiving invalid input.
	ErrTooManyAttempts = errors.New("form: too many invalid attempts")

	// ErrInvalidRecord is returned when the assembled record fails validation.
	ErrInvalidRecord = errors.New("form: invalid record")
)
