package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthChecker reports liveness of a dependency.
type HealthChecker func(ctx context.Context) error

// HealthHandler reports service and dependency health.
type HealthHandler struct {
	checks map[string]HealthChecker
}

// NewHealthHandler creates a new health handler from named dependency checks.
func NewHealthHandler(checks map[string]HealthChecker) *HealthHandler {
	return &HealthHandler{checks: checks}
}

// Health returns 200 when every dependency answers, 503 otherwise.
// GET /healthz.
func (h *HealthHandler) Health(c *gin.Context) {
	status := http.StatusOK
	deps := make(map[string]string, len(h.checks))
	for name, check := range h.checks {
		if err := check(c.Request.Context()); err != nil {
			deps[name] = err.Error()
			status = http.StatusServiceUnavailable
		} else {
			deps[name] = "ok"
		}
	}
	c.JSON(status, gin.H{"dependencies": deps})
}
