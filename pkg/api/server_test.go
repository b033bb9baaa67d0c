package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentmaestro/agentmaestro/ent/agentrun"
	"github.com/agentmaestro/agentmaestro/pkg/config"
	"github.com/agentmaestro/agentmaestro/pkg/masking"
	"github.com/agentmaestro/agentmaestro/pkg/quota"
	"github.com/agentmaestro/agentmaestro/pkg/runstate"
	"github.com/agentmaestro/agentmaestro/pkg/services"
	"github.com/agentmaestro/agentmaestro/pkg/toolrunner"
	testdb "github.com/agentmaestro/agentmaestro/test/database"
	"github.com/agentmaestro/agentmaestro/test/util"
)

const testSessionSecret = "api-test-secret"

type nopScheduler struct{}

func (nopScheduler) Enqueue(string, time.Duration) {}
func (nopScheduler) Revoke(string)                 {}

type nopRunner struct{}

func (nopRunner) Invoke(_ context.Context, req toolrunner.Request) (*toolrunner.Response, error) {
	return &toolrunner.Response{RequestID: req.RequestID, Status: toolrunner.StatusCompleted}, nil
}

// newTestServer wires the full service stack behind the HTTP surface.
// The executor pool and WebSocket manager stay nil; REST routes do not
// touch them.
func newTestServer(t *testing.T) (*Server, *util.Workspace) {
	t.Helper()

	dbc := testdb.NewTestClient(t)
	q := quota.NewManager(quota.NewMemoryKV(), "test", true)
	machine := runstate.NewMachine(q)
	sched := nopScheduler{}

	runs := services.NewRunService(dbc.Client, q, machine, sched)
	subruns := services.NewSubrunService(dbc.Client, q, machine, sched, 4)
	runs.SetCompleter(subruns)
	toolcalls := services.NewToolCallService(dbc.Client, q, machine, sched, nopRunner{}, masking.NewService(), config.ToolrunnerConfig{
		DefaultTimeoutSeconds: 30,
		MaxOutputBytes:        1 << 20,
	})
	snapshots := services.NewSnapshotService(dbc.Client, q)
	workspaces := services.NewWorkspaceService(dbc.Client)

	cfg := &config.Config{
		Server: &config.ServerConfig{
			SessionSecret:     testSessionSecret,
			SessionCookieName: "am_session",
			WSWriteTimeout:    5 * time.Second,
			HTTPReadTimeout:   5 * time.Second,
		},
	}
	srv := NewServer(cfg, dbc, q, runs, subruns, toolcalls, snapshots, workspaces, nil, nil)
	return srv, util.CreateWorkspaceFixture(t, dbc.Client)
}

// doJSON performs an authenticated request against the routing tree.
// An empty userID sends no session cookie.
func doJSON(t *testing.T, srv *Server, userID, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.AddCookie(&http.Cookie{
			Name:  "am_session",
			Value: EncodeSession(testSessionSecret, userID, time.Hour),
		})
	}
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestCreateRunEndpoint(t *testing.T) {
	srv, ws := newTestServer(t)

	t.Run("creates a pending run with 200", func(t *testing.T) {
		rec := doJSON(t, srv, ws.OwnerID, http.MethodPost, "/api/runs/", map[string]any{
			"workspace_id": ws.Workspace.ID,
			"agent_id":     ws.Agent.ID,
			"input_text":   "check the deployment",
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp["run_id"])
		assert.Equal(t, "pending", resp["status"])
	})

	t.Run("no session cookie is 401", func(t *testing.T) {
		rec := doJSON(t, srv, "", http.MethodPost, "/api/runs/", map[string]any{
			"workspace_id": ws.Workspace.ID,
			"agent_id":     ws.Agent.ID,
			"input_text":   "x",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("non-member is 403", func(t *testing.T) {
		rec := doJSON(t, srv, "stranger", http.MethodPost, "/api/runs/", map[string]any{
			"workspace_id": ws.Workspace.ID,
			"agent_id":     ws.Agent.ID,
			"input_text":   "x",
		})
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestSpawnSubrunEndpoint(t *testing.T) {
	srv, ws := newTestServer(t)
	parent := util.CreateRunFixture(t, srv.dbClient.Client, ws, agentrun.StatusRunning)

	rec := doJSON(t, srv, ws.OwnerID, http.MethodPost, "/api/runs/"+parent.ID+"/spawn_subrun/", map[string]any{
		"input_text": "investigate host A",
		"options":    map[string]any{"join_policy": "wait_any"},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["child_run_id"])
	assert.Equal(t, "pending", resp["status"])
}

func TestRunControlEndpoints(t *testing.T) {
	srv, ws := newTestServer(t)

	t.Run("pause of a running run is 200", func(t *testing.T) {
		run := util.CreateRunFixture(t, srv.dbClient.Client, ws, agentrun.StatusRunning)
		rec := doJSON(t, srv, ws.OwnerID, http.MethodPost, "/api/runs/"+run.ID+"/pause/", nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "paused", resp["status"])
	})

	t.Run("pause of a pending run is 400 naming the edge", func(t *testing.T) {
		run := util.CreateRunFixture(t, srv.dbClient.Client, ws, agentrun.StatusPending)
		rec := doJSON(t, srv, ws.OwnerID, http.MethodPost, "/api/runs/"+run.ID+"/pause/", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		assert.Contains(t, rec.Body.String(), "pending")
		assert.Contains(t, rec.Body.String(), "paused")
	})

	t.Run("resume of a completed run is 400", func(t *testing.T) {
		run := util.CreateRunFixture(t, srv.dbClient.Client, ws, agentrun.StatusCompleted)
		rec := doJSON(t, srv, ws.OwnerID, http.MethodPost, "/api/runs/"+run.ID+"/resume/", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
	})

	t.Run("cancel of an unknown run is 404", func(t *testing.T) {
		rec := doJSON(t, srv, ws.OwnerID, http.MethodPost, "/api/runs/no-such-run/cancel/", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
