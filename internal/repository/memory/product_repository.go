package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/iyhunko/product-inventory-api/internal/model"
	"github.com/iyhunko/product-inventory-api/internal/repository"
)

// ProductRepository keeps products in an ordered slice. Every operation is a
// linear scan under the lock.
type ProductRepository struct {
	mu       sync.RWMutex
	products []model.Product
}

// NewProductRepository creates a repository holding a copy of seed.
func NewProductRepository(seed ...model.Product) *ProductRepository {
	return &ProductRepository{products: append([]model.Product(nil), seed...)}
}

// NewSeededProductRepository creates a repository holding the default seed products.
func NewSeededProductRepository() *ProductRepository {
	return NewProductRepository(model.SeedProducts()...)
}

var _ repository.ProductRepository = (*ProductRepository)(nil)

// Reset replaces the contents with a copy of seed.
func (r *ProductRepository) Reset(seed ...model.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = append([]model.Product(nil), seed...)
}

// List returns copies of the products matching the query filters, in insertion order.
func (r *ProductRepository) List(_ context.Context, query repository.Query) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		if query.Matches(p) {
			result = append(result, p)
		}
	}
	return result, nil
}

// FindByID retrieves a single product by ID.
func (r *ProductRepository) FindByID(_ context.Context, id string) (*model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, fmt.Errorf("find %q: %w", id, repository.ErrNotFound)
	}
	found := r.products[idx]
	return &found, nil
}

// Create appends a product, assigning a new ID when it has none.
func (r *ProductRepository) Create(_ context.Context, product *model.Product) (*model.Product, error) {
	if product == nil {
		return nil, repository.ErrNilProduct
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	created := *product
	// Only initialize metadata if not already set
	if created.ID == "" {
		created.InitMeta()
	}
	if r.indexOf(created.ID) >= 0 {
		return nil, fmt.Errorf("create %q: product already exists", created.ID)
	}

	r.products = append(r.products, created)
	return &created, nil
}

// Update replaces every field of the product with the given ID. The stored ID is kept.
func (r *ProductRepository) Update(_ context.Context, id string, product *model.Product) (*model.Product, error) {
	if product == nil {
		return nil, repository.ErrNilProduct
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, fmt.Errorf("update %q: %w", id, repository.ErrNotFound)
	}

	updated := *product
	updated.ID = id
	r.products[idx] = updated
	return &updated, nil
}

// DeleteByID removes a product and returns its last state.
func (r *ProductRepository) DeleteByID(_ context.Context, id string) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, fmt.Errorf("delete %q: %w", id, repository.ErrNotFound)
	}

	deleted := r.products[idx]
	r.products = append(r.products[:idx], r.products[idx+1:]...)
	return &deleted, nil
}

// indexOf must be called with the lock held.
func (r *ProductRepository) indexOf(id string) int {
	for i := range r.products {
		if r.products[i].ID == id {
			return i
		}
	}
	return -1
}
