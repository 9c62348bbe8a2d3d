package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/iyhunko/product-inventory-api/internal/apperr"
	"github.com/iyhunko/product-inventory-api/internal/model"
	"github.com/iyhunko/product-inventory-api/internal/repository"
	"github.com/iyhunko/product-inventory-api/internal/service"
)

const invalidRequestMessage = "Invalid product payload"

// ProductController handles HTTP requests for product operations.
type ProductController struct {
	productService *service.ProductService
}

// NewProductController creates a new ProductController with the given product service.
func NewProductController(productService *service.ProductService) *ProductController {
	return &ProductController{
		productService: productService,
	}
}

// ProductRequest represents the request body for creating or replacing a product.
// InStock is a pointer so an explicit false is distinguishable from a missing field.
type ProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Price       *float64 `json:"price" binding:"required,gt=0"`
	Category    string   `json:"category" binding:"required"`
	InStock     *bool    `json:"inStock" binding:"required"`
}

// ProductResponse represents the response body for a product.
type ProductResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	InStock     bool    `json:"inStock"`
}

// ListProductsRequest represents the query parameters for listing products.
type ListProductsRequest struct {
	Category string `form:"category"`
	Search   string `form:"search"`
	Page     string `form:"page"`
	Limit    string `form:"limit"`
}

// ListProductsResponse represents the response body for listing products.
type ListProductsResponse struct {
	Total    int               `json:"total"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
	Products []ProductResponse `json:"products"`
}

// StatsResponse represents the response body for inventory statistics.
type StatsResponse struct {
	TotalProducts int            `json:"totalProducts"`
	Categories    map[string]int `json:"categories"`
	InStock       int            `json:"inStock"`
	OutOfStock    int            `json:"outOfStock"`
	AveragePrice  float64        `json:"averagePrice"`
}

// ListProducts handles the HTTP GET request for listing products with filters and pagination.
func (pc *ProductController) ListProducts(c *gin.Context) {
	var req ListProductsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		_ = c.Error(&apperr.Error{Kind: apperr.KindValidation, Message: err.Error(), Err: err})
		return
	}

	query := repository.NewQuery().
		With(repository.CategoryField, req.Category).
		With(repository.SearchField, req.Search)
	if err := query.ApplyPagination(req.Page, req.Limit); err != nil {
		_ = c.Error(&apperr.Error{Kind: apperr.KindValidation, Message: err.Error(), Err: err})
		return
	}

	page, err := pc.productService.ListProducts(c.Request.Context(), *query)
	if err != nil {
		_ = c.Error(err)
		return
	}

	productResponses := make([]ProductResponse, 0, len(page.Products))
	for i := range page.Products {
		productResponses = append(productResponses, toProductResponse(&page.Products[i]))
	}

	c.JSON(http.StatusOK, ListProductsResponse{
		Total:    page.Total,
		Page:     page.Page,
		Limit:    page.Limit,
		Products: productResponses,
	})
}

// GetProduct handles the HTTP GET request for a single product.
func (pc *ProductController) GetProduct(c *gin.Context) {
	product, err := pc.productService.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, toProductResponse(product))
}

// CreateProduct handles the HTTP POST request for creating a new product.
func (pc *ProductController) CreateProduct(c *gin.Context) {
	product, ok := bindProduct(c)
	if !ok {
		return
	}

	createdProduct, err := pc.productService.CreateProduct(c.Request.Context(), product)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, toProductResponse(createdProduct))
}

// UpdateProduct handles the HTTP PUT request replacing every field of a product.
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	product, ok := bindProduct(c)
	if !ok {
		return
	}

	updatedProduct, err := pc.productService.UpdateProduct(c.Request.Context(), c.Param("id"), product)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, toProductResponse(updatedProduct))
}

// DeleteProduct handles the HTTP DELETE request for deleting a product by ID.
// The response carries the removed product.
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	deletedProduct, err := pc.productService.DeleteProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, toProductResponse(deletedProduct))
}

// GetStats handles the HTTP GET request for inventory statistics.
func (pc *ProductController) GetStats(c *gin.Context) {
	stats, err := pc.productService.GetStats(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, StatsResponse{
		TotalProducts: stats.TotalProducts,
		Categories:    stats.Categories,
		InStock:       stats.InStock,
		OutOfStock:    stats.OutOfStock,
		AveragePrice:  stats.AveragePrice,
	})
}

// bindProduct reads the body cached by the validation middleware. Any "id"
// in the body is ignored.
func bindProduct(c *gin.Context) (model.Product, bool) {
	var req ProductRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		_ = c.Error(&apperr.Error{Kind: apperr.KindValidation, Message: invalidRequestMessage, Err: err})
		return model.Product{}, false
	}

	return model.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Category:    req.Category,
		InStock:     *req.InStock,
	}, true
}

func toProductResponse(product *model.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Category:    product.Category,
		InStock:     product.InStock,
	}
}
