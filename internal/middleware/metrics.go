package middleware

import (
	"strconv"

	"github.com/SscSPs/rotalivre/internal/observability"
	"github.com/gin-gonic/gin"
)

// MetricsMiddleware counts requests by matched route and status.
func MetricsMiddleware(m *observability.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.HTTPRequests.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
