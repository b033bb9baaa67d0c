package events_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentmaestro/agentmaestro/ent"
	"github.com/agentmaestro/agentmaestro/ent/agentrun"
	"github.com/agentmaestro/agentmaestro/pkg/events"
	"github.com/agentmaestro/agentmaestro/pkg/journal"
	testdb "github.com/agentmaestro/agentmaestro/test/database"
	"github.com/agentmaestro/agentmaestro/test/util"
)

// setupFanout wires a real NOTIFY listener and connection manager
// against a shared-schema database, the same topology one pod runs in
// production.
func setupFanout(t *testing.T) (*testdb.SharedTestDB, *ent.Client, *events.ConnectionManager) {
	t.Helper()

	shared := testdb.NewSharedTestDB(t)
	dbc := shared.NewClient(t)

	manager := events.NewConnectionManager(nil, 5*time.Second)
	listener := events.NewListener(shared.ConnString(), manager)
	require.NoError(t, listener.Start(context.Background()))
	t.Cleanup(func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		listener.Stop(stopCtx)
	})
	manager.SetListener(listener)

	return shared, dbc.Client, manager
}

// dialRunStream upgrades a WebSocket against the manager and returns a
// channel of decoded frames. The first frame is the connected ack,
// which the manager only sends after LISTEN succeeded.
func dialRunStream(t *testing.T, manager *events.ConnectionManager, sess *events.Session) <-chan map[string]any {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		manager.HandleConnection(r.Context(), conn, sess)
	}))
	t.Cleanup(srv.Close)

	dialCtx, dialCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer dialCancel()
	conn, _, err := websocket.Dial(dialCtx, srv.URL, nil)
	require.NoError(t, err)

	readCtx, readCancel := context.WithCancel(context.Background())
	t.Cleanup(func() {
		readCancel()
		_ = conn.Close(websocket.StatusNormalClosure, "")
	})

	frames := make(chan map[string]any, 16)
	go func() {
		defer close(frames)
		for {
			_, data, err := conn.Read(readCtx)
			if err != nil {
				return
			}
			var frame map[string]any
			if json.Unmarshal(data, &frame) == nil {
				frames <- frame
			}
		}
	}()

	first := waitFrame(t, frames, 10*time.Second)
	require.Equal(t, "connected", first["type"])
	return frames
}

func waitFrame(t *testing.T, frames <-chan map[string]any, timeout time.Duration) map[string]any {
	t.Helper()
	select {
	case frame, ok := <-frames:
		require.True(t, ok, "connection closed before a frame arrived")
		return frame
	case <-time.After(timeout):
		t.Fatal("timed out waiting for a frame")
		return nil
	}
}

// appendRunEvent journals one committed event on the run.
func appendRunEvent(t *testing.T, client *ent.Client, runID, eventType string) {
	t.Helper()
	ctx := context.Background()
	err := journal.WithTx(ctx, client, func(tx *ent.Tx, _ *journal.Hooks) error {
		run, err := journal.LockRun(ctx, tx, runID)
		if err != nil {
			return err
		}
		_, err = journal.AppendEvent(ctx, tx, run, eventType, map[string]any{"note": "fanout test"})
		return err
	})
	require.NoError(t, err)
}

func TestFanout_CommittedEventReachesSubscriber(t *testing.T) {
	_, client, manager := setupFanout(t)
	ws := util.CreateWorkspaceFixture(t, client)
	run := util.CreateRunFixture(t, client, ws, agentrun.StatusRunning)

	frames := dialRunStream(t, manager, &events.Session{
		UserID:      ws.OwnerID,
		WorkspaceID: ws.Workspace.ID,
		RunID:       run.ID,
	})

	appendRunEvent(t, client, run.ID, events.EventDebugLog)

	frame := waitFrame(t, frames, 10*time.Second)
	assert.Equal(t, "push", frame["type"])
	assert.Equal(t, events.RunTopic(run.ID), frame["topic"])
	assert.Equal(t, events.EventDebugLog, frame["event"])
	assert.Equal(t, run.ID, frame["run_id"])
	assert.Equal(t, float64(1), frame["seq"])
}

func TestFanout_RollbackDeliversNothing(t *testing.T) {
	_, client, manager := setupFanout(t)
	ws := util.CreateWorkspaceFixture(t, client)
	run := util.CreateRunFixture(t, client, ws, agentrun.StatusRunning)

	frames := dialRunStream(t, manager, &events.Session{
		UserID:      ws.OwnerID,
		WorkspaceID: ws.Workspace.ID,
		RunID:       run.ID,
	})

	// Append and then fail the transaction. pg_notify rides the
	// transaction, so the rollback must suppress the push as well.
	errBoom := errors.New("boom")
	ctx := context.Background()
	err := journal.WithTx(ctx, client, func(tx *ent.Tx, _ *journal.Hooks) error {
		locked, err := journal.LockRun(ctx, tx, run.ID)
		if err != nil {
			return err
		}
		if _, err := journal.AppendEvent(ctx, tx, locked, events.EventDebugLog, nil); err != nil {
			return err
		}
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	select {
	case frame := <-frames:
		t.Fatalf("rolled-back append must not push, got %v", frame)
	case <-time.After(250 * time.Millisecond):
	}

	// The stream is still live: a committed append is delivered and
	// takes seq 1, confirming the rollback left no trace.
	appendRunEvent(t, client, run.ID, events.EventDebugLog)
	frame := waitFrame(t, frames, 10*time.Second)
	assert.Equal(t, "push", frame["type"])
	assert.Equal(t, float64(1), frame["seq"])
}

func TestFanout_ListenerReconnects(t *testing.T) {
	shared, client, manager := setupFanout(t)
	ws := util.CreateWorkspaceFixture(t, client)
	run := util.CreateRunFixture(t, client, ws, agentrun.StatusRunning)

	frames := dialRunStream(t, manager, &events.Session{
		UserID:      ws.OwnerID,
		WorkspaceID: ws.Workspace.ID,
		RunID:       run.ID,
	})

	appendRunEvent(t, client, run.ID, events.EventDebugLog)
	waitFrame(t, frames, 10*time.Second)

	// Kill the dedicated LISTEN connection server-side. The listener
	// reconnects with backoff and re-issues LISTEN for the topic.
	killer := shared.NewClient(t)
	_, err := killer.DB().ExecContext(context.Background(),
		`SELECT pg_terminate_backend(pid) FROM pg_stat_activity
		 WHERE pid <> pg_backend_pid() AND query LIKE 'LISTEN %'`)
	require.NoError(t, err)

	// Notifications raised while the connection is down are dropped,
	// so keep appending until one lands on the re-established LISTEN.
	deadline := time.Now().Add(20 * time.Second)
	var frame map[string]any
	for frame == nil && time.Now().Before(deadline) {
		appendRunEvent(t, client, run.ID, events.EventDebugLog)
		select {
		case f, ok := <-frames:
			require.True(t, ok, "connection closed during reconnect")
			frame = f
		case <-time.After(700 * time.Millisecond):
		}
	}
	require.NotNil(t, frame, "no push delivered after the listener reconnect")
	assert.Equal(t, "push", frame["type"])
	assert.Equal(t, events.RunTopic(run.ID), frame["topic"])
}
