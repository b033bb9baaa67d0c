package executor

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentmaestro/agentmaestro/ent/agentrun"
	"github.com/agentmaestro/agentmaestro/pkg/quota"
	"github.com/agentmaestro/agentmaestro/pkg/runstate"
	testdb "github.com/agentmaestro/agentmaestro/test/database"
	"github.com/agentmaestro/agentmaestro/test/util"
)

func TestSweep_ReclaimsStaleLeases(t *testing.T) {
	dbc := testdb.NewTestClient(t)
	ctx := context.Background()
	ws := util.CreateWorkspaceFixture(t, dbc.Client)

	q := quota.NewManager(quota.NewMemoryKV(), "test", true)
	sched := &recordingScheduler{}
	recovery := NewRecovery(dbc.Client, runstate.NewMachine(q), sched, 30*time.Second)

	staleAt := time.Now().UTC().Add(-time.Minute)
	stale := util.CreateRunFixture(t, dbc.Client, ws, agentrun.StatusRunning)
	_, err := dbc.AgentRun.UpdateOneID(stale.ID).
		SetLockedBy("crashed-pod-worker").
		SetLockedAt(staleAt).
		SetLockExpiresAt(staleAt.Add(30 * time.Second)).
		Save(ctx)
	require.NoError(t, err)

	now := time.Now().UTC()
	fresh := util.CreateRunFixture(t, dbc.Client, ws, agentrun.StatusRunning)
	_, err = dbc.AgentRun.UpdateOneID(fresh.ID).
		SetLockedBy("live-worker").
		SetLockedAt(now).
		SetLockExpiresAt(now.Add(30 * time.Second)).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, recovery.Sweep(ctx))

	got, err := dbc.AgentRun.Get(ctx, stale.ID)
	require.NoError(t, err)
	assert.Nil(t, got.LockedBy, "stale lease cleared")
	assert.Nil(t, got.LockedAt)
	assert.Equal(t, 1, sched.count(stale.ID), "reclaimed run gets a tick")

	got, err = dbc.AgentRun.Get(ctx, fresh.ID)
	require.NoError(t, err)
	require.NotNil(t, got.LockedBy)
	assert.Equal(t, "live-worker", *got.LockedBy, "live lease untouched")
	assert.Zero(t, sched.count(fresh.ID))
}

func TestSweep_ResumesWaitingParents(t *testing.T) {
	dbc := testdb.NewTestClient(t)
	ctx := context.Background()
	ws := util.CreateWorkspaceFixture(t, dbc.Client)

	q := quota.NewManager(quota.NewMemoryKV(), "test", true)
	sched := &recordingScheduler{}
	recovery := NewRecovery(dbc.Client, runstate.NewMachine(q), sched, 30*time.Second)

	addChild := func(parentID string, status agentrun.Status) {
		_, err := dbc.AgentRun.Create().
			SetID(uuid.New().String()).
			SetWorkspaceID(ws.Workspace.ID).
			SetAgentID(ws.Agent.ID).
			SetParentRunID(parentID).
			SetCorrelationID(uuid.New().String()).
			SetStatus(status).
			SetInputText("child work").
			Save(ctx)
		require.NoError(t, err)
	}

	// Parent whose notification was lost: all children terminal.
	orphaned := util.CreateRunFixture(t, dbc.Client, ws, agentrun.StatusWaitingForSubrun)
	addChild(orphaned.ID, agentrun.StatusCompleted)
	addChild(orphaned.ID, agentrun.StatusFailed)

	// Parent with a live child keeps waiting.
	waiting := util.CreateRunFixture(t, dbc.Client, ws, agentrun.StatusWaitingForSubrun)
	addChild(waiting.ID, agentrun.StatusCompleted)
	addChild(waiting.ID, agentrun.StatusRunning)

	require.NoError(t, recovery.Sweep(ctx))

	got, err := dbc.AgentRun.Get(ctx, orphaned.ID)
	require.NoError(t, err)
	assert.Equal(t, agentrun.StatusRunning, got.Status)
	assert.Equal(t, 1, sched.count(orphaned.ID))

	got, err = dbc.AgentRun.Get(ctx, waiting.ID)
	require.NoError(t, err)
	assert.Equal(t, agentrun.StatusWaitingForSubrun, got.Status)
	assert.Zero(t, sched.count(waiting.ID))
}

func TestSweep_IsIdempotent(t *testing.T) {
	dbc := testdb.NewTestClient(t)
	ctx := context.Background()
	ws := util.CreateWorkspaceFixture(t, dbc.Client)

	q := quota.NewManager(quota.NewMemoryKV(), "test", true)
	sched := &recordingScheduler{}
	recovery := NewRecovery(dbc.Client, runstate.NewMachine(q), sched, 30*time.Second)

	parent := util.CreateRunFixture(t, dbc.Client, ws, agentrun.StatusWaitingForSubrun)

	require.NoError(t, recovery.Sweep(ctx))
	require.NoError(t, recovery.Sweep(ctx))

	// A childless waiting parent resumes exactly once.
	got, err := dbc.AgentRun.Get(ctx, parent.ID)
	require.NoError(t, err)
	assert.Equal(t, agentrun.StatusRunning, got.Status)
	assert.Equal(t, 1, sched.count(parent.ID))
}
