package domain

import "errors"

// ErrNotFound is returned by store and service functions when the requested
// resource does not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails business rule validation
// (e.g. missing trip name, a wizard step with no stops).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrDateRange is returned when a trip's start date is after its end date.
// It blocks the same transitions as ErrValidation but carries a dedicated
// message so the UI can highlight the date fields specifically.
var ErrDateRange = errors.New("start date is after end date")

// ErrDecode is returned when a share token cannot be decoded back into a trip.
// Callers recover by discarding the token and falling back to the normal,
// non-shared view; this error must never surface as a user-facing failure.
var ErrDecode = errors.New("decode error")
