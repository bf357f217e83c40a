package logger

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jazflix/jazflix-bo/backend/go-services/pkg/metrics"
)

// Middleware logs one line per request: server errors at error level, client
// errors at warn, everything else at info. It also feeds the request latency
// histogram.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		elapsed := time.Since(start)

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.RequestDuration.WithLabelValues(route, c.Request.Method).Observe(elapsed.Seconds())

		status := c.Writer.Status()
		const format = "%s %s -> %d (%s) %s"
		switch {
		case status >= 500:
			Errorf(format, c.Request.Method, c.Request.URL.Path, status, elapsed, c.ClientIP())
		case status >= 400:
			Warnf(format, c.Request.Method, c.Request.URL.Path, status, elapsed, c.ClientIP())
		default:
			Infof(format, c.Request.Method, c.Request.URL.Path, status, elapsed, c.ClientIP())
		}
	}
}
