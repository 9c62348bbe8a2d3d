package http

import (
	"github.com/gin-gonic/gin"
	"github.com/iyhunko/product-inventory-api/internal/apperr"
	"github.com/iyhunko/product-inventory-api/internal/config"
	"github.com/iyhunko/product-inventory-api/internal/http/controller"
	"github.com/iyhunko/product-inventory-api/internal/http/middleware"
)

const (
	apiPrefix          = "/api"
	routeNotFoundError = "Route not found"
)

func InitRouter(conf *config.Config, server *gin.Engine, ctr *controller.Controller, productCtr *controller.ProductController) *gin.Engine {
	// Order matters: metrics wrap recovery so panicking requests are counted
	// as 500s, and the error handler wraps auth so rejected requests still get
	// a JSON body.
	server.Use(
		middleware.Metrics(),
		middleware.Recovery(),
		middleware.Logger(),
		middleware.CORS(),
		middleware.ErrorHandler(),
		middleware.Auth(apiPrefix, conf.APIKey),
	)

	server.GET("/", ctr.Welcome)
	server.GET("/ping", ctr.Ping)

	// Product endpoints
	products := server.Group(apiPrefix + "/products")
	{
		products.GET("", productCtr.ListProducts)
		products.GET("/stats", productCtr.GetStats)
		products.GET("/:id", productCtr.GetProduct)
		products.POST("", middleware.ValidateProduct(), productCtr.CreateProduct)
		products.PUT("/:id", middleware.ValidateProduct(), productCtr.UpdateProduct)
		products.DELETE("/:id", productCtr.DeleteProduct)
	}

	server.NoRoute(func(c *gin.Context) {
		_ = c.Error(apperr.NotFound(routeNotFoundError, nil))
	})

	return server
}
