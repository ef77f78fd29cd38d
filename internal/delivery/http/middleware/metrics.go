package middleware

import (
	"log/slog"
	"strconv"
	"time"

	"go-talent-intake/internal/domain"
	"go-talent-intake/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records request counts and latencies per route template.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method
		status := c.Writer.Status()

		metrics.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
		metrics.HTTPRequestDurationSeconds.WithLabelValues(method, path).Observe(duration)

		slog.Debug("request completed",
			"method", method,
			"path", path,
			"status", status,
			"duration_seconds", duration,
			"request_id", c.GetString(string(domain.KeyRequestID)),
		)
	}
}
