package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/agentmaestro/agentmaestro/pkg/database"
	"github.com/agentmaestro/agentmaestro/pkg/executor"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusUnhealthy = "unhealthy"
)

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status     string                 `json:"status"`
	Database   *database.HealthStatus `json:"database,omitempty"`
	WorkerPool *executor.Health       `json:"worker_pool,omitempty"`
	Error      string                 `json:"error,omitempty"`
}

// healthHandler handles GET /health. Only internal components are
// checked; the external tool-runner is deliberately excluded so its
// outages cannot make the orchestrator restart.
func (s *Server) healthHandler(c *echo.Context) error {
	reqCtx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	resp := HealthResponse{Status: healthStatusHealthy}

	dbHealth, err := database.Health(reqCtx, s.dbClient.DB())
	resp.Database = dbHealth
	if err != nil {
		resp.Status = healthStatusUnhealthy
		resp.Error = err.Error()
		return c.JSON(http.StatusServiceUnavailable, &resp)
	}

	if s.pool != nil {
		pool := s.pool.Health()
		resp.WorkerPool = &pool
	}
	return c.JSON(http.StatusOK, &resp)
}
