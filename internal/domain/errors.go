package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the demo entities.
var (
	// ErrInvalidValue is returned when an entity field violates a domain
	// constraint. It is always wrapped with a more specific error below.
	ErrInvalidValue = errors.New("invalid value")

	// ErrInvalidID is returned when an entity identifier is not positive.
	ErrInvalidID = fmt.Errorf("%w: id must be positive", ErrInvalidValue)

	// ErrEmptyName is returned when a required name field is blank.
	ErrEmptyName = fmt.Errorf("%w: name cannot be empty", ErrInvalidValue)

	// ErrNegativeQuantity is returned when a quantity would go below zero.
	ErrNegativeQuantity = fmt.Errorf("%w: quantity cannot be negative", ErrInvalidValue)

	// ErrNegativePrice is returned when a price would go below zero.
	ErrNegativePrice = fmt.Errorf("%w: price cannot be negative", ErrInvalidValue)

	// ErrAgeOutOfRange is returned when a patient age is outside 0..130.
	ErrAgeOutOfRange = fmt.Errorf("%w: age must be between 0 and 130", ErrInvalidValue)

	// ErrScoreOutOfRange is returned when a score is outside 0..100.
	ErrScoreOutOfRange = fmt.Errorf("%w: score must be between 0 and 100", ErrInvalidValue)

	// ErrUnknownAccountKind is returned when an account carries a kind
	// outside the closed set of checking, savings and credit line.
	ErrUnknownAccountKind = fmt.Errorf("%w: unknown account kind", ErrInvalidValue)

	// ErrInsufficientFunds is returned when a withdrawal would take an
	// account below the limit its kind allows.
	ErrInsufficientFunds = fmt.Errorf("%w: insufficient funds", ErrInvalidValue)
)

// IsInvalidValueError checks if the error is any kind of "invalid value"
// error, including the field-specific wrappers above.
func IsInvalidValueError(err error) bool {
	return errors.Is(err, ErrInvalidValue)
}
