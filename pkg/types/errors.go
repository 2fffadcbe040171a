package types

import "errors"

// Repository operation errors. Handlers map these onto HTTP status codes:
// ErrNotFound -> 404, ErrDuplicateEmail -> 409, ErrMissingFields and the
// ErrInvalid* family -> 400.
var (
	ErrNotFound       = errors.New("record not found")
	ErrInvalidID      = errors.New("invalid record id")
	ErrMissingFields  = errors.New("missing required fields")
	ErrDuplicateEmail = errors.New("email already registered")
)

// Entity field validation errors.
var (
	ErrInvalidStatus   = errors.New("invalid status value")
	ErrInvalidPriority = errors.New("invalid priority value")
	ErrInvalidRole     = errors.New("invalid role value")
)
