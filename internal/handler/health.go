package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/moneyforge/fincalc/pkg/response"
)

type HealthHandler struct {
	redis   *redis.Client
	timeout time.Duration
}

// NewHealthHandler accepts a nil redis client when caching is disabled;
// readiness then skips the connectivity check.
func NewHealthHandler(redis *redis.Client, timeout time.Duration) *HealthHandler {
	return &HealthHandler{
		redis:   redis,
		timeout: timeout,
	}
}

type HealthStatus struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]string `json:"checks"`
}

// Health performs a basic health check
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status := HealthStatus{
		Status:    "ok",
		Timestamp: time.Now(),
		Checks:    make(map[string]string),
	}

	response.Success(w, status)
}

// Ready performs readiness check including redis connectivity
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	status := HealthStatus{
		Status:    "ok",
		Timestamp: time.Now(),
		Checks:    make(map[string]string),
	}

	if h.redis == nil {
		status.Checks["redis"] = "disabled"
		response.Success(w, status)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.redis.Ping(ctx).Err(); err != nil {
		status.Status = "error"
		status.Checks["redis"] = "failed: " + err.Error()
		response.Error(w, http.StatusServiceUnavailable, "Service not ready", nil)
		return
	}

	status.Checks["redis"] = "ok"
	response.Success(w, status)
}
