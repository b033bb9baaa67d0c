package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/agentmaestro/agentmaestro/ent"
	"github.com/agentmaestro/agentmaestro/pkg/models"
	"github.com/agentmaestro/agentmaestro/pkg/services"
)

// requireRunAccess loads a run and verifies the caller is an active
// member of its workspace. All read paths go through it.
func (s *Server) requireRunAccess(c *echo.Context, runID string) (*ent.AgentRun, error) {
	run, err := s.runs.GetRun(c.Request().Context(), runID)
	if err != nil {
		return nil, mapServiceError(err)
	}
	if _, err := services.RequireMember(c.Request().Context(), s.dbClient.Client, run.WorkspaceID, currentUser(c), "read run"); err != nil {
		return nil, mapServiceError(err)
	}
	return run, nil
}

// createRunHandler handles POST /api/runs/.
func (s *Server) createRunHandler(c *echo.Context) error {
	var req models.CreateRunRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	run, err := s.runs.CreateRun(c.Request().Context(), req, currentUser(c))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, models.NewRunResponse(run))
}

// listRunsHandler handles GET /api/runs/?workspace_id=<id>.
func (s *Server) listRunsHandler(c *echo.Context) error {
	workspaceID := c.QueryParam("workspace_id")
	if workspaceID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "workspace_id is required")
	}
	if _, err := services.RequireMember(c.Request().Context(), s.dbClient.Client, workspaceID, currentUser(c), "list runs"); err != nil {
		return mapServiceError(err)
	}

	limit, offset := 0, 0
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}
	if v := c.QueryParam("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}

	runs, total, err := s.runs.ListRuns(c.Request().Context(), workspaceID, c.QueryParam("status"), limit, offset)
	if err != nil {
		return mapServiceError(err)
	}

	resp := models.RunListResponse{Runs: make([]models.RunResponse, 0, len(runs)), Total: total}
	for _, run := range runs {
		resp.Runs = append(resp.Runs, models.NewRunResponse(run))
	}
	return c.JSON(http.StatusOK, resp)
}

// getRunHandler handles GET /api/runs/:run_id/.
func (s *Server) getRunHandler(c *echo.Context) error {
	run, err := s.requireRunAccess(c, c.Param("run_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, models.NewRunResponse(run))
}

// cancelRunRequest is the optional body of a cancel request.
type cancelRunRequest struct {
	Reason string `json:"reason,omitempty"`
}

// cancelRunHandler handles POST /api/runs/:run_id/cancel/.
func (s *Server) cancelRunHandler(c *echo.Context) error {
	var req cancelRunRequest
	_ = c.Bind(&req) // body is optional

	reason := req.Reason
	if reason == "" {
		reason = "cancelled by user"
	}
	run, err := s.runs.Cancel(c.Request().Context(), c.Param("run_id"), reason, currentUser(c))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, models.NewRunResponse(run))
}

// pauseRunHandler handles POST /api/runs/:run_id/pause/.
func (s *Server) pauseRunHandler(c *echo.Context) error {
	run, err := s.runs.Pause(c.Request().Context(), c.Param("run_id"), currentUser(c))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, models.NewRunResponse(run))
}

// resumeRunHandler handles POST /api/runs/:run_id/resume/.
func (s *Server) resumeRunHandler(c *echo.Context) error {
	run, err := s.runs.Resume(c.Request().Context(), c.Param("run_id"), currentUser(c))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, models.NewRunResponse(run))
}

// retryRunHandler handles POST /api/runs/:run_id/retry/. The failed
// run is left untouched; the response describes the fresh run.
func (s *Server) retryRunHandler(c *echo.Context) error {
	run, err := s.runs.Retry(c.Request().Context(), c.Param("run_id"), currentUser(c))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, models.NewRunResponse(run))
}
