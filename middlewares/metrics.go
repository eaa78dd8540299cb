package middlewares

import (
	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/food-ordering/metrics"
)

// MetricsMiddleware records request counts and latency per route template.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}
		done := metrics.StartRequest(c.Request.Method)
		c.Next()
		done(c.FullPath(), c.Writer.Status())
	}
}
