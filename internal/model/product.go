package model

import (
	"github.com/google/uuid"
)

// Product represents an inventory item.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Category    string
	InStock     bool
}

// InitMeta assigns a fresh identifier to the product.
func (p *Product) InitMeta() {
	p.ID = uuid.NewString()
}

// SeedProducts returns the records the store starts with.
func SeedProducts() []Product {
	return []Product{
		{
			ID:          "1",
			Name:        "Laptop",
			Description: "High-performance laptop with 16GB RAM",
			Price:       1200,
			Category:    "electronics",
			InStock:     true,
		},
		{
			ID:          "2",
			Name:        "Smartphone",
			Description: "Latest model with 128GB storage",
			Price:       800,
			Category:    "electronics",
			InStock:     true,
		},
		{
			ID:          "3",
			Name:        "Coffee Maker",
			Description: "Programmable coffee maker with timer",
			Price:       50,
			Category:    "kitchen",
			InStock:     false,
		},
	}
}
