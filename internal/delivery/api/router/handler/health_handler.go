package handler

import (
	"net/http"
	"time"

	"mandoob/config"
	"mandoob/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports process liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "healthy"})
}

// StatusHandler serves the public service status endpoint.
type StatusHandler struct {
	serviceName string
	startedAt   time.Time
}

// NewStatusHandler creates a StatusHandler reporting the configured service name.
func NewStatusHandler(cfg *config.Config) *StatusHandler {
	return &StatusHandler{
		serviceName: cfg.Env.ServiceName,
		startedAt:   time.Now(),
	}
}

// Status returns service name, status and uptime.
func (h *StatusHandler) Status(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"service":        h.serviceName,
		"status":         "online",
		"uptime_seconds": int64(time.Since(h.startedAt).Seconds()),
		"timestamp":      time.Now().UTC(),
	})
}
