package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents a catalog entry. It is handled by value and never mutated in place.
type Product struct {
	ID       uuid.UUID
	Name     string
	Category Category
	Price    decimal.Decimal
}

// NewProduct creates a product with a freshly generated ID.
func NewProduct(name string, category Category, price decimal.Decimal) Product {
	return Product{
		ID:       uuid.New(),
		Name:     name,
		Category: category,
		Price:    price,
	}
}

// WithPrice returns a copy of the product carrying the given price.
func (p Product) WithPrice(price decimal.Decimal) Product {
	p.Price = price
	return p
}
