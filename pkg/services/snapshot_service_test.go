package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentmaestro/agentmaestro/ent"
	"github.com/agentmaestro/agentmaestro/ent/agentrun"
	"github.com/agentmaestro/agentmaestro/ent/agentstep"
	"github.com/agentmaestro/agentmaestro/pkg/events"
	"github.com/agentmaestro/agentmaestro/pkg/journal"
	"github.com/agentmaestro/agentmaestro/test/util"
)

func TestSnapshot(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ws := util.CreateWorkspaceFixture(t, env.client)
	run := util.CreateRunFixture(t, env.client, ws, agentrun.StatusRunning)

	// Three steps, each emitting step_created, plus one bare event.
	err := journal.WithTx(ctx, env.client, func(tx *ent.Tx, hooks *journal.Hooks) error {
		locked, err := journal.LockRun(ctx, tx, run.ID)
		if err != nil {
			return err
		}
		for _, kind := range []agentstep.Kind{agentstep.KindPlan, agentstep.KindModelCall, agentstep.KindObservation} {
			if _, locked, err = journal.AppendStep(ctx, tx, locked, kind, nil); err != nil {
				return err
			}
		}
		_, err = journal.AppendEvent(ctx, tx, locked, events.EventStateChanged, map[string]any{"to": "completed"})
		return err
	})
	require.NoError(t, err)

	child, err := env.client.AgentRun.Create().
		SetID(uuid.New().String()).
		SetWorkspaceID(ws.Workspace.ID).
		SetAgentID(ws.Agent.ID).
		SetParentRunID(run.ID).
		SetCorrelationID(uuid.New().String()).
		SetStatus(agentrun.StatusCompleted).
		SetInputText("child work").
		Save(ctx)
	require.NoError(t, err)

	t.Run("full snapshot from seq zero", func(t *testing.T) {
		snap, err := env.snapshots.Snapshot(ctx, run.ID, 0)
		require.NoError(t, err)

		assert.Equal(t, run.ID, snap.Run.ID)
		require.Len(t, snap.Steps, 3)
		for i, st := range snap.Steps {
			assert.Equal(t, i+1, st.StepIndex, "steps arrive in journal order")
		}
		require.Len(t, snap.Events, 4)
		for i, e := range snap.Events {
			assert.Equal(t, i+1, e.Seq, "events arrive in seq order")
		}
		require.Len(t, snap.Children, 1)
		assert.Equal(t, child.ID, snap.Children[0].ID)
	})

	t.Run("since_seq resumes after the given event", func(t *testing.T) {
		snap, err := env.snapshots.Snapshot(ctx, run.ID, 2)
		require.NoError(t, err)

		require.Len(t, snap.Events, 2)
		assert.Equal(t, 3, snap.Events[0].Seq)
		assert.Equal(t, 4, snap.Events[1].Seq)
		assert.Len(t, snap.Steps, 3, "steps are always complete")
		assert.Equal(t, 2, snap.SinceSeq)
	})

	t.Run("since_seq past the end yields no events", func(t *testing.T) {
		snap, err := env.snapshots.Snapshot(ctx, run.ID, 100)
		require.NoError(t, err)
		assert.Empty(t, snap.Events)
	})

	t.Run("negative since_seq is rejected", func(t *testing.T) {
		_, err := env.snapshots.Snapshot(ctx, run.ID, -1)
		assert.True(t, IsValidationError(err))
	})

	t.Run("unknown run is not found", func(t *testing.T) {
		_, err := env.snapshots.Snapshot(ctx, uuid.New().String(), 0)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
