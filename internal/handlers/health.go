package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Gauge reports a current count.
type Gauge func() int

// HealthHandler serves GET /health.
type HealthHandler struct {
	sessions Gauge
	visitors Gauge
}

// NewHealthHandler creates a new HealthHandler. Nil gauges report zero.
func NewHealthHandler(sessions, visitors Gauge) *HealthHandler {
	return &HealthHandler{sessions: sessions, visitors: visitors}
}

// Get reports that the server is up.
func (h *HealthHandler) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:   "ok",
		Sessions: read(h.sessions),
		Visitors: read(h.visitors),
	})
}

func read(g Gauge) int {
	if g == nil {
		return 0
	}
	return g()
}
