package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/iyhunko/product-inventory-api/internal/apperr"
)

const (
	// APIKeyHeader carries the shared secret.
	APIKeyHeader = "X-API-Key"

	unauthorizedMessage = "Unauthorized: Invalid or missing API key"
)

// Auth rejects requests under prefix that do not carry apiKey in the
// X-API-Key header. It runs for unmatched routes too, so unknown paths under
// the prefix are not revealed to unauthenticated clients. An empty apiKey
// rejects everything under the prefix.
func Auth(prefix, apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !hasPathPrefix(c.Request.URL.Path, prefix) {
			c.Next()
			return
		}

		provided := c.GetHeader(APIKeyHeader)
		if provided == "" || apiKey == "" ||
			subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
			abortWithError(c, apperr.Authentication(unauthorizedMessage))
			return
		}
		c.Next()
	}
}

// hasPathPrefix matches prefix itself and anything below it, but not siblings
// like "/apiary" for "/api".
func hasPathPrefix(path, prefix string) bool {
	prefix = strings.TrimSuffix(prefix, "/")
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}
