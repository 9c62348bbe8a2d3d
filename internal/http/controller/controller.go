package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iyhunko/product-inventory-api/internal/config"
)

// WelcomeMessage is served on the root path.
const WelcomeMessage = "Welcome to the Product API! Go to /api/products to see all products."

// Controller handles general HTTP requests.
type Controller struct {
	config *config.Config
}

// New creates a new Controller with the given configuration.
func New(config *config.Config) *Controller {
	return &Controller{
		config: config,
	}
}

// Welcome handles the HTTP GET request for the root path.
func (con *Controller) Welcome(c *gin.Context) {
	c.String(http.StatusOK, WelcomeMessage)
}

// Ping handles the HTTP GET request for health check endpoint.
func (con *Controller) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":       "pong",
		"notifications": con.config.NotificationsEnabled(),
	})
}
