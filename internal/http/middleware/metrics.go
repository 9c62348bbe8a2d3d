package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iyhunko/product-inventory-api/internal/metrics"
)

const unmatchedRoute = "unmatched"

// Metrics records request count and latency per route pattern, so IDs in the
// path do not explode label cardinality. It must run outside Recovery to see
// the 500 written for a panicking handler.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = unmatchedRoute
		}
		metrics.HTTPLatency.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
		metrics.HTTPRequests.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
