package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/kiroku/internal/metrics"
)

const unmatchedRoute = "unmatched"

// Metrics observes every request under its route template, so that
// /api/records/1 and /api/records/2 share one series.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		m.ObserveRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
