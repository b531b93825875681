package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/eshaffer321/komisi/internal/infrastructure/metrics"
)

// Metrics records request counts and latency by route template. Unmatched
// routes are grouped under "unmatched".
func Metrics(m *metrics.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.RecordHTTPRequest(route, c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}
