package api

import (
	"context"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/agentmaestro/agentmaestro/pkg/config"
	"github.com/agentmaestro/agentmaestro/pkg/database"
	"github.com/agentmaestro/agentmaestro/pkg/events"
	"github.com/agentmaestro/agentmaestro/pkg/executor"
	"github.com/agentmaestro/agentmaestro/pkg/quota"
	"github.com/agentmaestro/agentmaestro/pkg/services"
)

// Server is the HTTP + WebSocket surface. Handlers delegate to the
// service layer; the server itself only binds requests, checks
// membership where the service does not, and maps errors.
type Server struct {
	cfg      *config.Config
	dbClient *database.Client
	quota    *quota.Manager

	runs       *services.RunService
	subruns    *services.SubrunService
	toolcalls  *services.ToolCallService
	snapshots  *services.SnapshotService
	workspaces *services.WorkspaceService

	pool        *executor.Pool
	connManager *events.ConnectionManager

	echo *echo.Echo
	http *http.Server
}

// NewServer creates the API server and registers all routes.
func NewServer(
	cfg *config.Config,
	dbClient *database.Client,
	q *quota.Manager,
	runs *services.RunService,
	subruns *services.SubrunService,
	toolcalls *services.ToolCallService,
	snapshots *services.SnapshotService,
	workspaces *services.WorkspaceService,
	pool *executor.Pool,
	connManager *events.ConnectionManager,
) *Server {
	s := &Server{
		cfg:         cfg,
		dbClient:    dbClient,
		quota:       q,
		runs:        runs,
		subruns:     subruns,
		toolcalls:   toolcalls,
		snapshots:   snapshots,
		workspaces:  workspaces,
		pool:        pool,
		connManager: connManager,
	}

	e := echo.New()
	e.Use(securityHeaders())

	// Unauthenticated probe endpoint.
	e.GET("/health", s.healthHandler)

	// REST API, cookie-session authenticated.
	api := e.Group("/api", s.sessionAuth())
	api.POST("/runs/", s.createRunHandler)
	api.GET("/runs/", s.listRunsHandler)
	api.GET("/runs/:run_id/", s.getRunHandler)
	api.GET("/runs/:run_id/snapshot/", s.snapshotHandler)
	api.POST("/runs/:run_id/spawn_subrun/", s.spawnSubrunHandler)
	api.POST("/runs/:run_id/cancel/", s.cancelRunHandler)
	api.POST("/runs/:run_id/pause/", s.pauseRunHandler)
	api.POST("/runs/:run_id/resume/", s.resumeRunHandler)
	api.POST("/runs/:run_id/retry/", s.retryRunHandler)
	api.POST("/toolcalls/:tool_call_id/approve/", s.approveToolCallHandler)

	// WebSocket endpoints, same cookie session.
	ws := e.Group("/ws", s.sessionAuth())
	ws.GET("/ui/workspace/", s.wsWorkspaceHandler)
	ws.GET("/ui/run/:run_id/", s.wsRunHandler)

	s.echo = e
	return s
}

// Start begins serving on addr. Blocks until the listener fails or
// Shutdown is called.
func (s *Server) Start(addr string) error {
	// Read/write timeouts stay unset: they would sever long-lived
	// WebSocket connections. Per-frame deadlines are enforced in the
	// connection manager instead.
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: s.cfg.Server.HTTPReadTimeout,
	}
	return s.http.ListenAndServe()
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// Handler exposes the routing tree for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}
