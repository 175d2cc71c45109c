package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, oversized or non-image asset).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrConflict is returned when a write collides with a uniqueness constraint,
// such as two concurrent creates racing to the same slug. The slug allocator's
// probing makes this rare but the database unique index is the real guarantee.
// Handlers should map this to HTTP 409.
var ErrConflict = errors.New("conflict")

// ErrPersistence is returned when the store reports success but yields no row
// where one was expected. Handlers should map this to HTTP 500.
var ErrPersistence = errors.New("persistence error")
