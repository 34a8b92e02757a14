package domain

import "time"

// Item represents one stocked entry in the inventory demo.
//
// The JSON tags are the flat-file wire names: the inventory demo serializes
// its whole store as an array of these objects and reads the same shape back.
type Item struct {
	ID        int       `json:"id"        validate:"gt=0"`
	Name      string    `json:"name"      validate:"required"`
	Quantity  int       `json:"quantity"  validate:"gte=0"`
	DateAdded time.Time `json:"dateAdded"`
}

// EntityID returns the item's unique identifier.
func (i Item) EntityID() int { return i.ID }

// NewItem creates an Item stamped with the current time and validates it.
func NewItem(id int, name string, quantity int) (Item, error) {
	item := Item{
		ID:        id,
		Name:      name,
		Quantity:  quantity,
		DateAdded: time.Now().UTC(),
	}
	if err := item.Validate(); err != nil {
		return Item{}, err
	}
	return item, nil
}

// Validate checks if the Item has valid data.
func (i Item) Validate() error {
	return checkStruct(i)
}

// WithQuantity returns a copy of the item holding quantity, or
// ErrNegativeQuantity if quantity is below zero.
func (i Item) WithQuantity(quantity int) (Item, error) {
	if quantity < 0 {
		return Item{}, ErrNegativeQuantity
	}
	i.Quantity = quantity
	return i, nil
}
