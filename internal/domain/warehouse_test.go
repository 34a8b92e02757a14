package domain

import (
	"errors"
	"testing"
)

func TestNewProduct(t *testing.T) {
	t.Parallel()

	p, err := NewProduct(1, "Pallet jack", 4, 349.99)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if p.Quantity != 4 {
		t.Errorf("Expected quantity 4, got %d", p.Quantity)
	}

	// Test invalid id
	_, err = NewProduct(-1, "Pallet jack", 4, 349.99)
	if !errors.Is(err, ErrInvalidID) {
		t.Errorf("Expected ErrInvalidID, got %v", err)
	}

	// Test negative quantity
	_, err = NewProduct(1, "Pallet jack", -4, 349.99)
	if !errors.Is(err, ErrNegativeQuantity) {
		t.Errorf("Expected ErrNegativeQuantity, got %v", err)
	}

	// Test negative price
	_, err = NewProduct(1, "Pallet jack", 4, -1)
	if !errors.Is(err, ErrNegativePrice) {
		t.Errorf("Expected ErrNegativePrice, got %v", err)
	}
}

func TestProductWithQuantity(t *testing.T) {
	t.Parallel()

	p := Product{ID: 1, Name: "Pallet jack", Quantity: 4, Price: 349.99}

	updated, err := p.WithQuantity(10)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if updated.Quantity != 10 {
		t.Errorf("Expected quantity 10, got %d", updated.Quantity)
	}
	if p.Quantity != 4 {
		t.Errorf("Receiver must be unchanged, got %d", p.Quantity)
	}

	_, err = p.WithQuantity(-5)
	if !errors.Is(err, ErrNegativeQuantity) {
		t.Errorf("Expected ErrNegativeQuantity, got %v", err)
	}
	if !IsInvalidValueError(err) {
		t.Errorf("Expected an invalid-value kind, got %v", err)
	}
}
