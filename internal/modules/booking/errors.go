package booking

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("booking not found")
	// ErrConflict is the overbooking signal. Handlers must keep it
	// distinguishable from every other failure (HTTP 409).
	ErrConflict = errors.New("date conflict: overbooking detected")
)
