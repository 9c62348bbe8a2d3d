package middleware

import (
	"bytes"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/iyhunko/product-inventory-api/internal/apperr"
)

const (
	requiredFieldsMessage = "All fields (name, description, price, category, inStock) are required"
	invalidBodyMessage    = "Request body must be a JSON object"
	invalidPriceMessage   = "Price must be a positive number"
	invalidInStockMessage = "inStock must be a boolean"
)

var textFields = []string{"name", "description", "category"}

// ValidateProduct checks a create or update body before it reaches the
// handler. The body stays cached on the context so handlers can bind it again
// with ShouldBindBodyWith.
func ValidateProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body map[string]any
		if err := c.ShouldBindBodyWith(&body, binding.JSON); err != nil {
			if !emptyBody(c) {
				abortWithError(c, &apperr.Error{Kind: apperr.KindValidation, Message: invalidBodyMessage, Err: err})
				return
			}
			body = map[string]any{}
		} else if body == nil {
			abortWithError(c, apperr.Validation(invalidBodyMessage))
			return
		}

		if err := validateProductFields(body); err != nil {
			abortWithError(c, err)
			return
		}
		c.Next()
	}
}

func emptyBody(c *gin.Context) bool {
	raw, ok := c.Get(gin.BodyBytesKey)
	if !ok {
		return true
	}
	b, _ := raw.([]byte)
	return len(bytes.TrimSpace(b)) == 0
}

// validateProductFields works on the loosely decoded body so a false or null
// inStock counts as present and wrong JSON types get a precise message.
func validateProductFields(body map[string]any) error {
	for _, field := range textFields {
		if v, ok := body[field]; !ok || v == nil || v == "" {
			return apperr.Validation(requiredFieldsMessage)
		}
	}
	if _, ok := body["inStock"]; !ok || missingPrice(body["price"]) {
		return apperr.Validation(requiredFieldsMessage)
	}

	for _, field := range textFields {
		if _, ok := body[field].(string); !ok {
			return apperr.Validation(field + " must be a string")
		}
	}

	if price, ok := body["price"].(float64); !ok || price < 0 {
		return apperr.Validation(invalidPriceMessage)
	}

	if _, ok := body["inStock"].(bool); !ok {
		return apperr.Validation(invalidInStockMessage)
	}

	return nil
}

// missingPrice treats an absent, null or zero price as not supplied. Non-numeric
// values are left to the type check.
func missingPrice(v any) bool {
	if v == nil {
		return true
	}
	price, ok := v.(float64)
	return ok && price == 0
}
