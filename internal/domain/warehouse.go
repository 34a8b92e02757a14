package domain

// Product represents a stocked item in the warehouse demo.
type Product struct {
	ID       int     `json:"id"       validate:"gt=0"`
	Name     string  `json:"name"     validate:"required"`
	Quantity int     `json:"quantity" validate:"gte=0"`
	Price    float64 `json:"price"    validate:"gte=0"`
}

// EntityID returns the product's unique identifier.
func (p Product) EntityID() int { return p.ID }

// NewProduct creates a Product and validates it.
func NewProduct(id int, name string, quantity int, price float64) (Product, error) {
	p := Product{
		ID:       id,
		Name:     name,
		Quantity: quantity,
		Price:    price,
	}
	if err := p.Validate(); err != nil {
		return Product{}, err
	}
	return p, nil
}

// Validate checks if the Product has valid data.
func (p Product) Validate() error {
	return checkStruct(p)
}

// WithQuantity returns a copy of the product holding quantity, or
// ErrNegativeQuantity if quantity is below zero. Intended for use with
// KeyedStore.Update so a rejected value never reaches the store.
func (p Product) WithQuantity(quantity int) (Product, error) {
	if quantity < 0 {
		return Product{}, ErrNegativeQuantity
	}
	p.Quantity = quantity
	return p, nil
}
