package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store instances.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an insert would create a second entity
	// under an identifier that is already taken.
	ErrDuplicate = errors.New("entity already exists")
)

// IsNotFoundError checks if the error is any kind of "not found" error,
// including the contextual wrappers produced by named stores.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// StoreError is a custom error type for store-specific errors with additional context.
type StoreError struct {
	Entity    string // The entity kind the store holds (e.g., "patient", "product")
	Operation string // The operation that failed (e.g., "insert", "update")
	ID        int    // The identifier involved
	Err       error  // Underlying sentinel or validation error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	return fmt.Sprintf("%s operation on %s %d failed: %v", e.Operation, e.Entity, e.ID, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// newStoreError creates a StoreError carrying the store's entity name,
// the failed operation, and the identifier the caller passed.
func newStoreError(entity, operation string, id int, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		ID:        id,
		Err:       err,
	}
}
