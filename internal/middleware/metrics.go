package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"shrinkr/internal/metrics"
)

// MetricsMiddleware records request count, latency and in-flight requests
func MetricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		m.HTTPRequestsActive.Inc()
		defer m.HTTPRequestsActive.Dec()

		// route template keeps label cardinality bounded
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		m.HTTPRequestsTotal.WithLabelValues(path, c.Request.Method, status).Inc()
		m.HTTPRequestDuration.WithLabelValues(path, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}
