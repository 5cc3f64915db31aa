package errors

import "errors"

// Sentinel errors shared across features. Callers test with errors.Is so
// wrapped context survives the trip up the stack.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrUnavailable  = errors.New("backend unavailable")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrInternal     = errors.New("internal server error")
)
