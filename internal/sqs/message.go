package sqs

import (
	"errors"
	"fmt"

	"github.com/iyhunko/product-inventory-api/internal/model"
)

var (
	// ErrUnknownAction is returned for notifications whose action is not a product change.
	ErrUnknownAction = errors.New("unknown product action")

	// ErrMissingProductID is returned for notifications that do not name a product.
	ErrMissingProductID = errors.New("missing product id")
)

// Action names the product change carried by a ProductMessage.
type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// ProductMessage represents a message about a product change.
type ProductMessage struct {
	Action    Action  `json:"action"`
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Category  string  `json:"category"`
	InStock   bool    `json:"in_stock"`
}

// NewProductMessage builds the message for a change to product.
func NewProductMessage(action Action, product *model.Product) ProductMessage {
	return ProductMessage{
		Action:    action,
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Category:  product.Category,
		InStock:   product.InStock,
	}
}

// Validate checks that the message describes a known change to an identified product.
func (m ProductMessage) Validate() error {
	switch m.Action {
	case ActionCreated, ActionUpdated, ActionDeleted:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, m.Action)
	}
	if m.ProductID == "" {
		return ErrMissingProductID
	}
	return nil
}
