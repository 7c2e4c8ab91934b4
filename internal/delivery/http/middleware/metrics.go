package middleware

import (
	"go-jobboard-api/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request counters and latency labelled by the matched route
// template, so path parameters do not explode label cardinality.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		done := m.StartRequest()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		done(route, c.Request.Method, c.Writer.Status())
	}
}
