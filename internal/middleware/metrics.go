package middleware

import (
	"strconv"
	"time"

	"urbannest-properties/pkg/metrics"

	"github.com/gin-gonic/gin"
)

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = c.Request.URL.Path
		}
		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, endpoint, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, endpoint, status).Observe(duration)
	}
}
