package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	t.Parallel()

	assert.True(t, IsNotFoundError(ErrNotFound))
	assert.True(t, IsNotFoundError(fmt.Errorf("%w: widget", ErrNotFound)))
	assert.True(t, IsNotFoundError(newStoreError("widget", "get", 1, ErrNotFound)))
	assert.False(t, IsNotFoundError(ErrDuplicate))
	assert.False(t, IsNotFoundError(nil))
}

func TestIsDuplicateError(t *testing.T) {
	t.Parallel()

	assert.True(t, IsDuplicateError(ErrDuplicate))
	assert.True(t, IsDuplicateError(newStoreError("widget", "insert", 1, ErrDuplicate)))
	assert.False(t, IsDuplicateError(ErrNotFound))
	assert.False(t, IsDuplicateError(nil))
}

func TestStoreErrorMessageAndUnwrap(t *testing.T) {
	t.Parallel()

	err := newStoreError("product", "update", 3, ErrNotFound)
	assert.Equal(t, "update operation on product 3 failed: entity not found", err.Error())
	assert.ErrorIs(t, err, ErrNotFound)

	var storeErr *StoreError
	assert.True(t, errors.As(err, &storeErr))
}
