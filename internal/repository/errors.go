package repository

import "errors"

var (
	// ErrConflict means the write would violate the room overlap invariant.
	ErrConflict = errors.New("booking date conflict")
)
