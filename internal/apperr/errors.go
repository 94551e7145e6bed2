package apperr

import "errors"

// ErrInvalid is returned when the input fails domain validation (HTTP 400).
var ErrInvalid = errors.New("invalid input")

// ErrNotFound indicates that the requested resource does not exist (HTTP 404).
var ErrNotFound = errors.New("not found")

// ErrConflict indicates a state conflict: a request that can no longer take
// the operation, or a concurrent write that won the race (HTTP 409).
var ErrConflict = errors.New("conflict")
