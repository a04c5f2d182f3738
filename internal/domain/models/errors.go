package models

import "errors"

// Validation errors are raised locally, before any store round-trip.
var (
	// ErrEmptyCropName indicates a crop create attempt without a name.
	ErrEmptyCropName = errors.New("crop name must not be empty")

	// ErrInvalidAmount indicates an expense amount that is empty, unparseable
	// or not positive. Such amounts are never written silently.
	ErrInvalidAmount = errors.New("expense amount must be a positive number")

	// ErrIndexOutOfRange indicates an expense index outside the current
	// sequence bounds, a caller precondition violation.
	ErrIndexOutOfRange = errors.New("expense index out of range")
)
