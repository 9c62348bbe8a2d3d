package repository

import (
	"context"
	"errors"

	"github.com/iyhunko/product-inventory-api/internal/model"
)

var (
	// ErrNotFound is returned when no product has the requested ID.
	ErrNotFound = errors.New("product not found")

	// ErrNilProduct is returned when a nil product is passed to a write operation.
	ErrNilProduct = errors.New("product cannot be nil")
)

// ProductRepository defines the storage operations for products.
// List returns copies in insertion order; callers may modify them freely.
type ProductRepository interface {
	List(ctx context.Context, query Query) (result []model.Product, err error)
	FindByID(ctx context.Context, id string) (result *model.Product, err error)
	Create(ctx context.Context, product *model.Product) (result *model.Product, err error)
	Update(ctx context.Context, id string, product *model.Product) (result *model.Product, err error)
	DeleteByID(ctx context.Context, id string) (deleted *model.Product, err error)
}
