package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentmaestro/agentmaestro/ent/agentrun"
	"github.com/agentmaestro/agentmaestro/ent/membership"
	"github.com/agentmaestro/agentmaestro/ent/runevent"
	"github.com/agentmaestro/agentmaestro/pkg/events"
	"github.com/agentmaestro/agentmaestro/pkg/models"
	"github.com/agentmaestro/agentmaestro/pkg/quota"
	"github.com/agentmaestro/agentmaestro/pkg/runstate"
	"github.com/agentmaestro/agentmaestro/test/util"
)

func TestCreateRun(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ws := util.CreateWorkspaceFixture(t, env.client)

	t.Run("creates a pending run and enqueues its first tick", func(t *testing.T) {
		run, err := env.runs.CreateRun(ctx, models.CreateRunRequest{
			WorkspaceID: ws.Workspace.ID,
			AgentID:     ws.Agent.ID,
			InputText:   "summarize the incident",
		}, ws.OwnerID)
		require.NoError(t, err)

		assert.Equal(t, agentrun.StatusPending, run.Status)
		assert.Equal(t, agentrun.ChannelAPI, run.Channel, "channel defaults to api")
		assert.NotEmpty(t, run.CorrelationID)
		assert.Zero(t, run.CurrentStepIndex)
		assert.Equal(t, 1, env.sched.enqueueCount(run.ID))
	})

	t.Run("rejects a missing workspace", func(t *testing.T) {
		_, err := env.runs.CreateRun(ctx, models.CreateRunRequest{AgentID: ws.Agent.ID}, ws.OwnerID)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects an unknown channel", func(t *testing.T) {
		_, err := env.runs.CreateRun(ctx, models.CreateRunRequest{
			WorkspaceID: ws.Workspace.ID,
			AgentID:     ws.Agent.ID,
			Channel:     "carrier-pigeon",
		}, ws.OwnerID)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects an agent from another workspace", func(t *testing.T) {
		other := util.CreateWorkspaceFixture(t, env.client)
		_, err := env.runs.CreateRun(ctx, models.CreateRunRequest{
			WorkspaceID: ws.Workspace.ID,
			AgentID:     other.Agent.ID,
		}, ws.OwnerID)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects a viewer", func(t *testing.T) {
		viewerID := uuid.New().String()
		util.AddMemberFixture(t, env.client, ws.Workspace.ID, viewerID, membership.RoleViewer)

		_, err := env.runs.CreateRun(ctx, models.CreateRunRequest{
			WorkspaceID: ws.Workspace.ID,
			AgentID:     ws.Agent.ID,
		}, viewerID)
		assert.True(t, IsPermissionError(err))
	})

	t.Run("rejects a non-member", func(t *testing.T) {
		_, err := env.runs.CreateRun(ctx, models.CreateRunRequest{
			WorkspaceID: ws.Workspace.ID,
			AgentID:     ws.Agent.ID,
		}, uuid.New().String())
		assert.True(t, IsPermissionError(err))
	})
}

func TestCreateRun_ConcurrencyCap(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ws := util.CreateWorkspaceFixture(t, env.client)

	req := models.CreateRunRequest{WorkspaceID: ws.Workspace.ID, AgentID: ws.Agent.ID}
	for i := 0; i < quota.ConcurrentParentRuns.MaxConcurrent; i++ {
		_, err := env.runs.CreateRun(ctx, req, ws.OwnerID)
		require.NoError(t, err, "run %d should fit under the cap", i+1)
	}

	_, err := env.runs.CreateRun(ctx, req, ws.OwnerID)
	require.Error(t, err)
	assert.True(t, quota.IsLimitExceeded(err))

	// Cancelling one run frees a parent slot.
	first, err := env.client.AgentRun.Query().
		Where(agentrun.WorkspaceIDEQ(ws.Workspace.ID)).
		First(ctx)
	require.NoError(t, err)
	_, err = env.runs.Cancel(ctx, first.ID, "make room", ws.OwnerID)
	require.NoError(t, err)

	_, err = env.runs.CreateRun(ctx, req, ws.OwnerID)
	require.NoError(t, err)
}

func TestListRuns(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ws := util.CreateWorkspaceFixture(t, env.client)

	util.CreateRunFixture(t, env.client, ws, agentrun.StatusRunning)
	util.CreateRunFixture(t, env.client, ws, agentrun.StatusRunning)
	util.CreateRunFixture(t, env.client, ws, agentrun.StatusCompleted)

	t.Run("returns all runs with total", func(t *testing.T) {
		runs, total, err := env.runs.ListRuns(ctx, ws.Workspace.ID, "", 50, 0)
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Len(t, runs, 3)
	})

	t.Run("filters by status", func(t *testing.T) {
		runs, total, err := env.runs.ListRuns(ctx, ws.Workspace.ID, "running", 50, 0)
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Len(t, runs, 2)
	})

	t.Run("paginates with total unaffected", func(t *testing.T) {
		runs, total, err := env.runs.ListRuns(ctx, ws.Workspace.ID, "", 2, 2)
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Len(t, runs, 1)
	})

	t.Run("rejects an unknown status filter", func(t *testing.T) {
		_, _, err := env.runs.ListRuns(ctx, ws.Workspace.ID, "exploded", 50, 0)
		assert.True(t, IsValidationError(err))
	})
}

func TestCancel(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ws := util.CreateWorkspaceFixture(t, env.client)

	t.Run("cancels a running run and journals the reason", func(t *testing.T) {
		run := util.CreateRunFixture(t, env.client, ws, agentrun.StatusRunning)

		cancelled, err := env.runs.Cancel(ctx, run.ID, "operator abort", ws.OwnerID)
		require.NoError(t, err)
		assert.Equal(t, agentrun.StatusCanceled, cancelled.Status)
		assert.True(t, cancelled.CancelRequested)
		require.NotNil(t, cancelled.EndedAt)

		evts, err := env.client.RunEvent.Query().
			Where(runevent.RunIDEQ(run.ID), runevent.EventTypeEQ(events.EventRunCancelled)).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, evts, 1)
		assert.Equal(t, "operator abort", evts[0].Payload["reason"])
	})

	t.Run("cascades to non-terminal children", func(t *testing.T) {
		parent := util.CreateRunFixture(t, env.client, ws, agentrun.StatusRunning)
		child, err := env.client.AgentRun.Create().
			SetID(uuid.New().String()).
			SetWorkspaceID(ws.Workspace.ID).
			SetAgentID(ws.Agent.ID).
			SetParentRunID(parent.ID).
			SetCorrelationID(uuid.New().String()).
			SetStatus(agentrun.StatusRunning).
			SetInputText("child work").
			Save(ctx)
		require.NoError(t, err)

		_, err = env.runs.Cancel(ctx, parent.ID, "abort tree", ws.OwnerID)
		require.NoError(t, err)

		reloaded, err := env.client.AgentRun.Get(ctx, child.ID)
		require.NoError(t, err)
		assert.Equal(t, agentrun.StatusCanceled, reloaded.Status)

		// The parent journals the child's cancellation under the
		// child's correlation ID.
		evts, err := env.client.RunEvent.Query().
			Where(runevent.RunIDEQ(parent.ID), runevent.EventTypeEQ(events.EventSubrunCancelled)).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, evts, 1)
		assert.Equal(t, child.ID, evts[0].Payload["child_run_id"])
		assert.Equal(t, child.CorrelationID, evts[0].CorrelationID)
	})

	t.Run("cancelling a terminal run is a no-op", func(t *testing.T) {
		run := util.CreateRunFixture(t, env.client, ws, agentrun.StatusCompleted)

		got, err := env.runs.Cancel(ctx, run.ID, "too late", ws.OwnerID)
		require.NoError(t, err)
		assert.Equal(t, agentrun.StatusCompleted, got.Status)

		count, err := env.client.RunEvent.Query().Where(runevent.RunIDEQ(run.ID)).Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, count, "no events journaled for a no-op cancel")
	})

	t.Run("unknown run is not found", func(t *testing.T) {
		_, err := env.runs.Cancel(ctx, uuid.New().String(), "x", ws.OwnerID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("viewer cannot cancel", func(t *testing.T) {
		run := util.CreateRunFixture(t, env.client, ws, agentrun.StatusRunning)
		viewerID := uuid.New().String()
		util.AddMemberFixture(t, env.client, ws.Workspace.ID, viewerID, membership.RoleViewer)

		_, err := env.runs.Cancel(ctx, run.ID, "x", viewerID)
		assert.True(t, IsPermissionError(err))
	})
}

func TestPauseResume(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ws := util.CreateWorkspaceFixture(t, env.client)

	t.Run("pause and resume round trip", func(t *testing.T) {
		run := util.CreateRunFixture(t, env.client, ws, agentrun.StatusRunning)

		paused, err := env.runs.Pause(ctx, run.ID, ws.OwnerID)
		require.NoError(t, err)
		assert.Equal(t, agentrun.StatusPaused, paused.Status)
		assert.Zero(t, env.sched.enqueueCount(run.ID), "pausing schedules nothing")

		resumed, err := env.runs.Resume(ctx, run.ID, ws.OwnerID)
		require.NoError(t, err)
		assert.Equal(t, agentrun.StatusRunning, resumed.Status)
		assert.Equal(t, 1, env.sched.enqueueCount(run.ID), "resume schedules a tick")
	})

	t.Run("pausing a pending run is illegal", func(t *testing.T) {
		run := util.CreateRunFixture(t, env.client, ws, agentrun.StatusPending)

		_, err := env.runs.Pause(ctx, run.ID, ws.OwnerID)
		require.Error(t, err)
		var ite *runstate.IllegalTransitionError
		assert.ErrorAs(t, err, &ite)
	})
}

func TestRetry(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ws := util.CreateWorkspaceFixture(t, env.client)

	t.Run("starts a fresh run sharing the correlation ID", func(t *testing.T) {
		failed := util.CreateRunFixture(t, env.client, ws, agentrun.StatusFailed)

		fresh, err := env.runs.Retry(ctx, failed.ID, ws.OwnerID)
		require.NoError(t, err)
		assert.NotEqual(t, failed.ID, fresh.ID)
		assert.Equal(t, agentrun.StatusPending, fresh.Status)
		assert.Equal(t, failed.CorrelationID, fresh.CorrelationID)
		assert.Equal(t, failed.InputText, fresh.InputText)
		assert.Equal(t, 1, env.sched.enqueueCount(fresh.ID))

		// The failed run stays untouched.
		reloaded, err := env.client.AgentRun.Get(ctx, failed.ID)
		require.NoError(t, err)
		assert.Equal(t, agentrun.StatusFailed, reloaded.Status)
	})

	t.Run("only failed runs can be retried", func(t *testing.T) {
		run := util.CreateRunFixture(t, env.client, ws, agentrun.StatusRunning)
		_, err := env.runs.Retry(ctx, run.ID, ws.OwnerID)
		assert.True(t, IsValidationError(err))
	})
}
