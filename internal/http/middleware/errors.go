package middleware

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/iyhunko/product-inventory-api/internal/apperr"
)

// ErrorHandler turns the last error attached to the context into the JSON
// error response. It is the only place where error kinds become status codes.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		status, message := apperr.Resolve(err)
		slog.Error("request failed",
			slog.Any("err", err),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", status),
		)

		if c.Writer.Written() {
			return
		}
		c.JSON(status, gin.H{"error": message})
	}
}

func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
