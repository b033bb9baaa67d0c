package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/agentmaestro/agentmaestro/pkg/models"
)

// spawnSubrunRequest is the body of POST /api/runs/:run_id/spawn_subrun/.
// Join and failure policy knobs live under options.
type spawnSubrunRequest struct {
	InputText string             `json:"input_text,omitempty"`
	Options   spawnSubrunOptions `json:"options"`
}

type spawnSubrunOptions struct {
	JoinPolicy     string         `json:"join_policy,omitempty"`
	Quorum         *int           `json:"quorum,omitempty"`
	TimeoutSeconds *int           `json:"timeout_seconds,omitempty"`
	FailurePolicy  string         `json:"failure_policy,omitempty"`
	GroupID        string         `json:"group_id,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`
}

// spawnSubrunResponse reports the spawned child.
type spawnSubrunResponse struct {
	ChildRunID    string `json:"child_run_id"`
	Status        string `json:"status"`
	CorrelationID string `json:"correlation_id"`
}

// spawnSubrunHandler handles POST /api/runs/:run_id/spawn_subrun/.
func (s *Server) spawnSubrunHandler(c *echo.Context) error {
	var req spawnSubrunRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	child, _, err := s.subruns.Spawn(c.Request().Context(), c.Param("run_id"), models.SpawnSubrunRequest{
		InputText:      req.InputText,
		JoinPolicy:     req.Options.JoinPolicy,
		Quorum:         req.Options.Quorum,
		TimeoutSeconds: req.Options.TimeoutSeconds,
		FailurePolicy:  req.Options.FailurePolicy,
		GroupID:        req.Options.GroupID,
		Metadata:       req.Options.Metadata,
	}, currentUser(c))
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, &spawnSubrunResponse{
		ChildRunID:    child.ID,
		Status:        string(child.Status),
		CorrelationID: child.CorrelationID,
	})
}
