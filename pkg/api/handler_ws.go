package api

import (
	"context"
	"net/http"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	echo "github.com/labstack/echo/v5"

	"github.com/agentmaestro/agentmaestro/ent"
	"github.com/agentmaestro/agentmaestro/pkg/events"
	"github.com/agentmaestro/agentmaestro/pkg/quota"
	"github.com/agentmaestro/agentmaestro/pkg/services"
)

// wsWorkspaceHandler handles GET /ws/ui/workspace/?workspace_id=<id>.
// The connection is subscribed to the workspace stream; approvers may
// opt into the approvals stream with subscribe_approvals.
func (s *Server) wsWorkspaceHandler(c *echo.Context) error {
	workspaceID := c.QueryParam("workspace_id")
	if workspaceID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "workspace_id is required")
	}

	m, err := services.RequireMember(c.Request().Context(), s.dbClient.Client, workspaceID, currentUser(c), "workspace stream")
	if err != nil {
		return mapServiceError(err)
	}

	sess := &events.Session{
		UserID:      currentUser(c),
		WorkspaceID: workspaceID,
		CanApprove:  services.CanApprove(m.Role),
		CanOperate:  services.CanOperate(m.Role),
	}
	return s.serveWS(c, sess)
}

// wsRunHandler handles GET /ws/ui/run/:run_id/. Membership in the
// run's workspace is verified before the upgrade.
func (s *Server) wsRunHandler(c *echo.Context) error {
	run, err := s.requireRunAccessWS(c, c.Param("run_id"))
	if err != nil {
		return err
	}

	m, err := services.RequireMember(c.Request().Context(), s.dbClient.Client, run.WorkspaceID, currentUser(c), "run stream")
	if err != nil {
		return mapServiceError(err)
	}

	sess := &events.Session{
		UserID:      currentUser(c),
		WorkspaceID: run.WorkspaceID,
		RunID:       run.ID,
		CanApprove:  services.CanApprove(m.Role),
		CanOperate:  services.CanOperate(m.Role),
	}
	return s.serveWS(c, sess)
}

func (s *Server) requireRunAccessWS(c *echo.Context, runID string) (*ent.AgentRun, error) {
	run, err := s.runs.GetRun(c.Request().Context(), runID)
	if err != nil {
		return nil, mapServiceError(err)
	}
	return run, nil
}

// serveWS admits the connection against the per-workspace and per-user
// connection limits, upgrades it and hands it to the connection
// manager. Blocks for the life of the connection.
func (s *Server) serveWS(c *echo.Context, sess *events.Session) error {
	ctx := c.Request().Context()

	// One token per connection; released when the socket closes.
	connToken := uuid.New().String()
	if err := s.quota.AcquireConcurrency(ctx, quota.WSConnectionsWorkspace, sess.WorkspaceID, connToken); err != nil {
		return mapServiceError(err)
	}
	if err := s.quota.AcquireConcurrency(ctx, quota.WSConnectionsUser, sess.UserID, connToken); err != nil {
		releaseCtx := context.WithoutCancel(ctx)
		_ = s.quota.ReleaseConcurrency(releaseCtx, quota.WSConnectionsWorkspace, sess.WorkspaceID, connToken)
		return mapServiceError(err)
	}
	defer func() {
		releaseCtx := context.WithoutCancel(ctx)
		_ = s.quota.ReleaseConcurrency(releaseCtx, quota.WSConnectionsWorkspace, sess.WorkspaceID, connToken)
		_ = s.quota.ReleaseConcurrency(releaseCtx, quota.WSConnectionsUser, sess.UserID, connToken)
	}()

	conn, err := websocket.Accept(c.Response(), c.Request(), &websocket.AcceptOptions{
		// Cookie-session auth already ran; cross-origin upgrades carry
		// the cookie, so the origin check stays on.
	})
	if err != nil {
		return err
	}

	s.connManager.HandleConnection(ctx, conn, sess)
	return nil
}
