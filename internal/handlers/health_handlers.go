package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"boardinghouse/pkg/database"
)

// HealthHandlers exposes the liveness probe. The graph store is pinged
// on every call so the endpoint doubles as a connectivity check.
type HealthHandlers struct {
	graph *database.Graph
}

func NewHealthHandlers(graph *database.Graph) *HealthHandlers {
	return &HealthHandlers{graph: graph}
}

type healthStatus struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}

func (h *HealthHandlers) HealthCheck(c echo.Context) error {
	status := healthStatus{
		Status:    "healthy",
		Database:  "connected",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	code := http.StatusOK
	if err := h.graph.Ping(c.Request().Context()); err != nil {
		status.Status = "degraded"
		status.Database = "unreachable"
		code = http.StatusServiceUnavailable
	}
	return c.JSON(code, status)
}
