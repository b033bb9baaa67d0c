package executor

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentmaestro/agentmaestro/ent"
	"github.com/agentmaestro/agentmaestro/ent/agentrun"
	"github.com/agentmaestro/agentmaestro/ent/agentstep"
	"github.com/agentmaestro/agentmaestro/pkg/journal"
	"github.com/agentmaestro/agentmaestro/pkg/models"
	"github.com/agentmaestro/agentmaestro/pkg/quota"
	"github.com/agentmaestro/agentmaestro/pkg/runstate"
	"github.com/agentmaestro/agentmaestro/pkg/services"
	testdb "github.com/agentmaestro/agentmaestro/test/database"
	"github.com/agentmaestro/agentmaestro/test/util"
)

// recordingScheduler captures Enqueue calls without executing them.
type recordingScheduler struct {
	mu       sync.Mutex
	enqueued []string
}

func (r *recordingScheduler) Enqueue(runID string, delay time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.enqueued = append(r.enqueued, runID)
}

func (r *recordingScheduler) Revoke(taskID string) {}

func (r *recordingScheduler) count(runID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, id := range r.enqueued {
		if id == runID {
			n++
		}
	}
	return n
}

type tickerEnv struct {
	client  *ent.Client
	sched   *recordingScheduler
	machine *runstate.Machine
	subruns *services.SubrunService
	ticker  *Ticker
}

func newTickerEnv(t *testing.T, workerID string, lease time.Duration) *tickerEnv {
	t.Helper()
	dbc := testdb.NewTestClient(t)
	q := quota.NewManager(quota.NewMemoryKV(), "test", true)
	machine := runstate.NewMachine(q)
	sched := &recordingScheduler{}
	subruns := services.NewSubrunService(dbc.Client, q, machine, sched, 5)
	return &tickerEnv{
		client:  dbc.Client,
		sched:   sched,
		machine: machine,
		subruns: subruns,
		ticker:  NewTicker(dbc.Client, q, machine, subruns, workerID, lease),
	}
}

func getRun(t *testing.T, client *ent.Client, runID string) *ent.AgentRun {
	t.Helper()
	run, err := client.AgentRun.Get(context.Background(), runID)
	require.NoError(t, err)
	return run
}

func TestTick_PendingStartsTheRun(t *testing.T) {
	env := newTickerEnv(t, "worker-1", 30*time.Second)
	ctx := context.Background()
	ws := util.CreateWorkspaceFixture(t, env.client)
	run := util.CreateRunFixture(t, env.client, ws, agentrun.StatusPending)

	require.NoError(t, env.ticker.Tick(ctx, run.ID))

	got := getRun(t, env.client, run.ID)
	assert.Equal(t, agentrun.StatusRunning, got.Status)
	assert.Equal(t, 1, got.CurrentStepIndex)
	assert.NotNil(t, got.StartedAt)
	assert.Nil(t, got.LockedBy, "lease released after the tick")
	assert.Nil(t, got.LockExpiresAt)

	step, err := env.client.AgentStep.Query().
		Where(agentstep.RunIDEQ(run.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, agentstep.KindModelCall, step.Kind)
	assert.Equal(t, run.InputText, step.Payload["input_text"])
}

func TestTick_RunningCompletesTheRun(t *testing.T) {
	env := newTickerEnv(t, "worker-1", 30*time.Second)
	ctx := context.Background()
	ws := util.CreateWorkspaceFixture(t, env.client)
	run := util.CreateRunFixture(t, env.client, ws, agentrun.StatusPending)

	require.NoError(t, env.ticker.Tick(ctx, run.ID))
	require.NoError(t, env.ticker.Tick(ctx, run.ID))

	got := getRun(t, env.client, run.ID)
	assert.Equal(t, agentrun.StatusCompleted, got.Status)
	assert.Equal(t, 2, got.CurrentStepIndex)
	assert.NotNil(t, got.EndedAt)

	steps, err := env.client.AgentStep.Query().
		Where(agentstep.RunIDEQ(run.ID)).
		Order(ent.Asc(agentstep.FieldStepIndex)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, steps, 2)
	assert.Equal(t, agentstep.KindModelCall, steps[0].Kind)
	assert.Equal(t, agentstep.KindObservation, steps[1].Kind)
}

func TestTick_DuplicateIsIdempotent(t *testing.T) {
	env := newTickerEnv(t, "worker-1", 30*time.Second)
	ctx := context.Background()
	ws := util.CreateWorkspaceFixture(t, env.client)

	// A running run whose cursor already moved past the expected
	// value: the duplicate tick must not append anything.
	run := util.CreateRunFixture(t, env.client, ws, agentrun.StatusRunning)
	_, err := env.client.AgentRun.UpdateOneID(run.ID).SetCurrentStepIndex(2).Save(ctx)
	require.NoError(t, err)

	require.NoError(t, env.ticker.Tick(ctx, run.ID))

	got := getRun(t, env.client, run.ID)
	assert.Equal(t, agentrun.StatusRunning, got.Status)
	assert.Equal(t, 2, got.CurrentStepIndex)

	count, err := env.client.AgentStep.Query().Where(agentstep.RunIDEQ(run.ID)).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestTick_InertStatuses(t *testing.T) {
	env := newTickerEnv(t, "worker-1", 30*time.Second)
	ctx := context.Background()
	ws := util.CreateWorkspaceFixture(t, env.client)

	for _, status := range []agentrun.Status{
		agentrun.StatusPaused,
		agentrun.StatusWaitingForApproval,
		agentrun.StatusWaitingForSubrun,
		agentrun.StatusCompleted,
		agentrun.StatusCanceled,
	} {
		t.Run(string(status), func(t *testing.T) {
			run := util.CreateRunFixture(t, env.client, ws, status)
			require.NoError(t, env.ticker.Tick(ctx, run.ID))

			got := getRun(t, env.client, run.ID)
			assert.Equal(t, status, got.Status, "tick takes no action")
			assert.Nil(t, got.LockedBy)
		})
	}
}

func TestTick_LeaseContention(t *testing.T) {
	env := newTickerEnv(t, "worker-1", 30*time.Second)
	ctx := context.Background()
	ws := util.CreateWorkspaceFixture(t, env.client)
	run := util.CreateRunFixture(t, env.client, ws, agentrun.StatusPending)

	now := time.Now().UTC()
	_, err := env.client.AgentRun.UpdateOneID(run.ID).
		SetLockedBy("worker-on-another-pod").
		SetLockedAt(now).
		SetLockExpiresAt(now.Add(30 * time.Second)).
		Save(ctx)
	require.NoError(t, err)

	err = env.ticker.Tick(ctx, run.ID)
	require.Error(t, err)
	assert.True(t, IsTransient(err), "a live foreign lease is retryable")

	got := getRun(t, env.client, run.ID)
	assert.Equal(t, agentrun.StatusPending, got.Status, "no work happened")
	require.NotNil(t, got.LockedBy)
	assert.Equal(t, "worker-on-another-pod", *got.LockedBy, "foreign lease untouched")
}

func TestTick_ExpiredLeaseIsReclaimed(t *testing.T) {
	env := newTickerEnv(t, "worker-1", 30*time.Second)
	ctx := context.Background()
	ws := util.CreateWorkspaceFixture(t, env.client)
	run := util.CreateRunFixture(t, env.client, ws, agentrun.StatusPending)

	stale := time.Now().UTC().Add(-time.Minute)
	_, err := env.client.AgentRun.UpdateOneID(run.ID).
		SetLockedBy("crashed-worker").
		SetLockedAt(stale).
		SetLockExpiresAt(stale.Add(30 * time.Second)).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, env.ticker.Tick(ctx, run.ID))

	got := getRun(t, env.client, run.ID)
	assert.Equal(t, agentrun.StatusRunning, got.Status, "expired lease does not block progress")
	assert.Nil(t, got.LockedBy)
}

func TestTick_RowLockContention(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	ctx := context.Background()

	holder := shared.NewClient(t)
	other := shared.NewClient(t)

	ws := util.CreateWorkspaceFixture(t, holder.Client)
	run := util.CreateRunFixture(t, holder.Client, ws, agentrun.StatusPending)

	q := quota.NewManager(quota.NewMemoryKV(), "test", true)
	ticker := NewTicker(other.Client, q, runstate.NewMachine(q), nil, "worker-2", 30*time.Second)

	tx, err := holder.Tx(ctx)
	require.NoError(t, err)
	defer func() { _ = tx.Rollback() }()
	_, err = journal.LockRun(ctx, tx, run.ID)
	require.NoError(t, err)

	err = ticker.Tick(ctx, run.ID)
	require.ErrorIs(t, err, journal.ErrRunLocked)
}

func TestTick_CompletedChildResumesParent(t *testing.T) {
	env := newTickerEnv(t, "worker-1", 30*time.Second)
	ctx := context.Background()
	ws := util.CreateWorkspaceFixture(t, env.client)
	parent := util.CreateRunFixture(t, env.client, ws, agentrun.StatusRunning)

	child, _, err := env.subruns.Spawn(ctx, parent.ID, models.SpawnSubrunRequest{
		InputText: "delegated work",
	}, ws.OwnerID)
	require.NoError(t, err)
	require.Equal(t, agentrun.StatusWaitingForSubrun, getRun(t, env.client, parent.ID).Status)

	// Two ticks drive the child to completion; the post-commit hook
	// notifies the parent's join policy.
	require.NoError(t, env.ticker.Tick(ctx, child.ID))
	require.NoError(t, env.ticker.Tick(ctx, child.ID))

	assert.Equal(t, agentrun.StatusCompleted, getRun(t, env.client, child.ID).Status)
	assert.Equal(t, agentrun.StatusRunning, getRun(t, env.client, parent.ID).Status)
	assert.Equal(t, 1, env.sched.count(parent.ID), "parent gets its resume tick")
}

func TestTick_CancelRequestedTakesNoAction(t *testing.T) {
	env := newTickerEnv(t, "worker-1", 30*time.Second)
	ctx := context.Background()
	ws := util.CreateWorkspaceFixture(t, env.client)
	run := util.CreateRunFixture(t, env.client, ws, agentrun.StatusRunning)
	_, err := env.client.AgentRun.UpdateOneID(run.ID).
		SetCurrentStepIndex(1).
		SetCancelRequested(true).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, env.ticker.Tick(ctx, run.ID))

	got := getRun(t, env.client, run.ID)
	assert.Equal(t, agentrun.StatusRunning, got.Status)
	assert.Equal(t, 1, got.CurrentStepIndex)
}
