package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jazflix/jazflix-bo/backend/go-services/pkg/logger"
)

// Probe checks one dependency. A nil Probe marks a dependency that is not
// configured, which counts as ready.
type Probe func(ctx context.Context) error

// probeTimeout bounds each dependency check.
var probeTimeout = 2 * time.Second

var startTime = time.Now()

// RegisterHealth mounts GET /health (liveness) and GET /ready, which is 200
// only when every configured dependency answers.
func RegisterHealth(r gin.IRoutes, deps map[string]Probe) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	r.GET("/ready", func(c *gin.Context) {
		ready := true
		status := make(map[string]bool, len(deps))
		for name, probe := range deps {
			if probe == nil {
				status[name] = true
				continue
			}
			ctx, cancel := context.WithTimeout(c.Request.Context(), probeTimeout)
			err := probe(ctx)
			cancel()
			if err != nil {
				logger.Warnf("readiness: %s: %v", name, err)
				ready = false
			}
			status[name] = err == nil
		}

		uptime := time.Since(startTime).String()
		if !ready {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "deps": status, "uptime": uptime})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "deps": status, "uptime": uptime})
	})
}
