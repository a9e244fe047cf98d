package api

import (
	"time"

	xhttp "VolScan/pkg/http"

	"github.com/labstack/echo/v4"
)

// HealthHandler registers only the liveness route, for binaries that expose
// metrics but no read API.
type HealthHandler struct {
	started time.Time
}

// NewHealthHandler creates the liveness-only handler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{started: time.Now()}
}

// RegisterRoutes wires the liveness endpoint.
func (h *HealthHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", func(c echo.Context) error {
		return xhttp.SuccessResponse(c, map[string]interface{}{
			"status": "ok",
			"uptime": time.Since(h.started).String(),
		})
	})
}
