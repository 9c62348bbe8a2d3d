package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/iyhunko/product-inventory-api/internal/apperr"
	"github.com/iyhunko/product-inventory-api/internal/metrics"
	"github.com/iyhunko/product-inventory-api/internal/model"
	"github.com/iyhunko/product-inventory-api/internal/repository"
	"github.com/iyhunko/product-inventory-api/internal/sqs"
)

// productNotFoundMessage is the client facing message for unknown product IDs.
const productNotFoundMessage = "Product not found"

// Publisher sends product change notifications.
type Publisher interface {
	PublishProductMessage(ctx context.Context, msg sqs.ProductMessage) error
}

// ProductPage is one page of a filtered product listing.
type ProductPage struct {
	Total    int
	Page     int
	Limit    int
	Products []model.Product
}

// ProductService implements the product use cases on top of a repository.
type ProductService struct {
	repo      repository.ProductRepository
	publisher Publisher
}

// NewProductService creates the service. publisher may be nil to disable notifications.
func NewProductService(repo repository.ProductRepository, publisher Publisher) *ProductService {
	return &ProductService{
		repo:      repo,
		publisher: publisher,
	}
}

// ListProducts filters the inventory and returns the requested page. Total
// counts the filtered products before pagination.
func (ps *ProductService) ListProducts(ctx context.Context, query repository.Query) (*ProductPage, error) {
	products, err := ps.repo.List(ctx, query)
	if err != nil {
		return nil, err
	}

	return &ProductPage{
		Total:    len(products),
		Page:     query.Paginator.Page,
		Limit:    query.Paginator.Limit,
		Products: repository.Paginate(products, query.Paginator),
	}, nil
}

// GetProduct returns the product with the given ID or a not found error.
func (ps *ProductService) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	product, err := ps.repo.FindByID(ctx, id)
	if err != nil {
		return nil, classify(err)
	}
	return product, nil
}

// CreateProduct stores product under a freshly generated ID.
func (ps *ProductService) CreateProduct(ctx context.Context, product model.Product) (*model.Product, error) {
	product.ID = ""
	created, err := ps.repo.Create(ctx, &product)
	if err != nil {
		return nil, err
	}

	metrics.ProductsCreated.Inc()
	ps.notify(ctx, sqs.ActionCreated, created)

	return created, nil
}

// UpdateProduct replaces every field of the product with the given ID; the ID itself never changes.
func (ps *ProductService) UpdateProduct(ctx context.Context, id string, product model.Product) (*model.Product, error) {
	updated, err := ps.repo.Update(ctx, id, &product)
	if err != nil {
		return nil, classify(err)
	}

	metrics.ProductsUpdated.Inc()
	ps.notify(ctx, sqs.ActionUpdated, updated)

	return updated, nil
}

// DeleteProduct removes the product and returns what it held.
func (ps *ProductService) DeleteProduct(ctx context.Context, id string) (*model.Product, error) {
	deleted, err := ps.repo.DeleteByID(ctx, id)
	if err != nil {
		return nil, classify(err)
	}

	metrics.ProductsDeleted.Inc()
	ps.notify(ctx, sqs.ActionDeleted, deleted)

	return deleted, nil
}

// GetStats aggregates the whole inventory.
func (ps *ProductService) GetStats(ctx context.Context) (model.Stats, error) {
	products, err := ps.repo.List(ctx, *repository.NewQuery())
	if err != nil {
		return model.Stats{}, err
	}
	return model.ComputeStats(products), nil
}

func (ps *ProductService) notify(ctx context.Context, action sqs.Action, product *model.Product) {
	if ps.publisher == nil {
		return
	}
	if err := ps.publisher.PublishProductMessage(ctx, sqs.NewProductMessage(action, product)); err != nil {
		// Log error but don't fail the request
		slog.Error("Failed to send SQS message", slog.Any("err", err), slog.String("action", string(action)), slog.String("product_id", product.ID))
	}
}

func classify(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.NotFound(productNotFoundMessage, err)
	}
	return err
}
