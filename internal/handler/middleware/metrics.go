package middleware

import (
	"time"

	"innbook/internal/infra/observability"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records request count and latency per route
// template, so path parameters do not explode label cardinality.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		observability.ObserveHTTP(route, c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}
