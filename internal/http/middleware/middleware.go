package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iyhunko/product-inventory-api/internal/apperr"
)

// Recovery is a middleware that recovers from panics and returns a 500 with
// the generic error body instead of crashing the server.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("Panic recovered",
					slog.Any("error", err),
					slog.String("path", c.Request.URL.Path),
					slog.String("method", c.Request.Method),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": apperr.GenericMessage,
				})
			}
		}()
		c.Next()
	}
}

// Logger records every request when it arrives and again, at debug level, once it completes.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		slog.Info("incoming request",
			slog.Time("timestamp", start),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.RequestURI()),
		)

		c.Next()

		slog.Debug("request completed",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.RequestURI()),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", time.Since(start)),
		)
	}
}

// CORS allows browser clients from any origin and answers preflight requests directly.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.Writer.Header()
		header.Set("Access-Control-Allow-Origin", "*")
		header.Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		header.Set("Access-Control-Allow-Headers", "Content-Type, Authorization, "+APIKeyHeader)
		header.Set("Access-Control-Max-Age", "86400")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
