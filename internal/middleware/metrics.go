package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mmynk/consorcio/internal/metrics"
)

// Metrics records request durations by method, route template and status.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
