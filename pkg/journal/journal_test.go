package journal

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentmaestro/agentmaestro/ent"
	"github.com/agentmaestro/agentmaestro/ent/agentrun"
	"github.com/agentmaestro/agentmaestro/ent/agentstep"
	"github.com/agentmaestro/agentmaestro/ent/runevent"
	"github.com/agentmaestro/agentmaestro/pkg/events"
	testdb "github.com/agentmaestro/agentmaestro/test/database"
	"github.com/agentmaestro/agentmaestro/test/util"
)

func TestAppendStep(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	ws := util.CreateWorkspaceFixture(t, client.Client)
	run := util.CreateRunFixture(t, client.Client, ws, agentrun.StatusRunning)

	// Append three steps across separate transactions, the way the
	// executor does one step per tick.
	kinds := []agentstep.Kind{agentstep.KindPlan, agentstep.KindModelCall, agentstep.KindObservation}
	for i, kind := range kinds {
		err := WithTx(ctx, client.Client, func(tx *ent.Tx, hooks *Hooks) error {
			locked, err := LockRun(ctx, tx, run.ID)
			if err != nil {
				return err
			}
			step, updated, err := AppendStep(ctx, tx, locked, kind, map[string]any{"n": i})
			if err != nil {
				return err
			}
			assert.Equal(t, i+1, step.StepIndex)
			assert.Equal(t, i+1, updated.CurrentStepIndex)
			assert.Equal(t, run.CorrelationID, step.CorrelationID)
			return nil
		})
		require.NoError(t, err)
	}

	// Steps are dense 1..3 with no gaps.
	steps, err := client.AgentStep.Query().
		Where(agentstep.RunIDEQ(run.ID)).
		Order(ent.Asc(agentstep.FieldStepIndex)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, steps, 3)
	for i, s := range steps {
		assert.Equal(t, i+1, s.StepIndex)
	}

	// Each append emitted exactly one step_created event, seq 1..3.
	evts, err := client.RunEvent.Query().
		Where(runevent.RunIDEQ(run.ID)).
		Order(ent.Asc(runevent.FieldSeq)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, evts, 3)
	for i, e := range evts {
		assert.Equal(t, i+1, e.Seq)
		assert.Equal(t, events.EventStepCreated, e.EventType)
		assert.Equal(t, float64(i+1), e.Payload["step_index"])
	}

	// The cursor on the run row matches the last step.
	reloaded, err := client.AgentRun.Get(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, reloaded.CurrentStepIndex)
}

func TestAppendEvent_SeqMonotonic(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	ws := util.CreateWorkspaceFixture(t, client.Client)
	run := util.CreateRunFixture(t, client.Client, ws, agentrun.StatusRunning)

	// Interleave bare events with step appends; seq stays gap-free
	// across both paths because they share one allocator.
	err := WithTx(ctx, client.Client, func(tx *ent.Tx, hooks *Hooks) error {
		locked, err := LockRun(ctx, tx, run.ID)
		if err != nil {
			return err
		}
		if _, err := AppendEvent(ctx, tx, locked, events.EventStateChanged, map[string]any{"to": "running"}); err != nil {
			return err
		}
		_, locked, err = AppendStep(ctx, tx, locked, agentstep.KindModelCall, nil)
		if err != nil {
			return err
		}
		_, err = AppendEvent(ctx, tx, locked, events.EventStateChanged, map[string]any{"to": "completed"})
		return err
	})
	require.NoError(t, err)

	evts, err := client.RunEvent.Query().
		Where(runevent.RunIDEQ(run.ID)).
		Order(ent.Asc(runevent.FieldSeq)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, evts, 3)
	assert.Equal(t, []string{
		events.EventStateChanged,
		events.EventStepCreated,
		events.EventStateChanged,
	}, []string{evts[0].EventType, evts[1].EventType, evts[2].EventType})
	for i, e := range evts {
		assert.Equal(t, i+1, e.Seq)
	}
}

func TestAppendEvent_CorrelationOverride(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	ws := util.CreateWorkspaceFixture(t, client.Client)
	run := util.CreateRunFixture(t, client.Client, ws, agentrun.StatusRunning)

	err := WithTx(ctx, client.Client, func(tx *ent.Tx, hooks *Hooks) error {
		locked, err := LockRun(ctx, tx, run.ID)
		if err != nil {
			return err
		}
		_, err = AppendEvent(ctx, tx, locked, events.EventSubrunSpawned,
			map[string]any{"child_run_id": "child-1"},
			WithCorrelationID("corr-override"))
		return err
	})
	require.NoError(t, err)

	evt, err := client.RunEvent.Query().Where(runevent.RunIDEQ(run.ID)).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "corr-override", evt.CorrelationID)
}

func TestWithTx_RollbackPersistsNothing(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	ws := util.CreateWorkspaceFixture(t, client.Client)
	run := util.CreateRunFixture(t, client.Client, ws, agentrun.StatusRunning)

	boom := errors.New("boom")
	hookRan := false
	err := WithTx(ctx, client.Client, func(tx *ent.Tx, hooks *Hooks) error {
		locked, err := LockRun(ctx, tx, run.ID)
		if err != nil {
			return err
		}
		hooks.OnCommit(func() { hookRan = true })
		if _, _, err := AppendStep(ctx, tx, locked, agentstep.KindPlan, nil); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.False(t, hookRan, "post-commit hooks must not run on rollback")

	stepCount, err := client.AgentStep.Query().Where(agentstep.RunIDEQ(run.ID)).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, stepCount)

	evtCount, err := client.RunEvent.Query().Where(runevent.RunIDEQ(run.ID)).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, evtCount)

	reloaded, err := client.AgentRun.Get(ctx, run.ID)
	require.NoError(t, err)
	assert.Zero(t, reloaded.CurrentStepIndex, "cursor must not move on rollback")
}

func TestLockRunNoWait_Contention(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	ctx := context.Background()

	holder := shared.NewClient(t)
	contender := shared.NewClient(t)

	ws := util.CreateWorkspaceFixture(t, holder.Client)
	run := util.CreateRunFixture(t, holder.Client, ws, agentrun.StatusPending)

	tx1, err := holder.Tx(ctx)
	require.NoError(t, err)
	defer func() { _ = tx1.Rollback() }()

	_, err = LockRun(ctx, tx1, run.ID)
	require.NoError(t, err)

	// A second pod claiming the same run must bounce immediately
	// instead of queueing behind the holder.
	err = WithTx(ctx, contender.Client, func(tx *ent.Tx, hooks *Hooks) error {
		_, err := LockRunNoWait(ctx, tx, run.ID)
		return err
	})
	require.ErrorIs(t, err, ErrRunLocked)

	// Releasing the lock makes the run claimable again.
	require.NoError(t, tx1.Rollback())
	err = WithTx(ctx, contender.Client, func(tx *ent.Tx, hooks *Hooks) error {
		_, err := LockRunNoWait(ctx, tx, run.ID)
		return err
	})
	require.NoError(t, err)
}

func TestLockRun_MissingRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	err := WithTx(ctx, client.Client, func(tx *ent.Tx, hooks *Hooks) error {
		_, err := LockRun(ctx, tx, "no-such-run")
		return err
	})
	require.Error(t, err)
	assert.True(t, ent.IsNotFound(err))
}
