package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentmaestro/agentmaestro/ent"
	"github.com/agentmaestro/agentmaestro/ent/agentrun"
	"github.com/agentmaestro/agentmaestro/ent/agentstep"
	"github.com/agentmaestro/agentmaestro/ent/runevent"
	"github.com/agentmaestro/agentmaestro/ent/subrunlink"
	"github.com/agentmaestro/agentmaestro/pkg/events"
	"github.com/agentmaestro/agentmaestro/pkg/models"
	"github.com/agentmaestro/agentmaestro/test/util"
)

// markTerminal forces a run into a terminal status, standing in for an
// executor that finished the run.
func markTerminal(t *testing.T, env *testEnv, runID string, status agentrun.Status) {
	t.Helper()
	_, err := env.client.AgentRun.UpdateOneID(runID).
		SetStatus(status).
		SetEndedAt(time.Now().UTC()).
		Save(context.Background())
	require.NoError(t, err)
}

func runStatus(t *testing.T, env *testEnv, runID string) agentrun.Status {
	t.Helper()
	run, err := env.client.AgentRun.Get(context.Background(), runID)
	require.NoError(t, err)
	return run.Status
}

func TestSpawn(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ws := util.CreateWorkspaceFixture(t, env.client)

	t.Run("parks the parent and enqueues the child", func(t *testing.T) {
		parent := util.CreateRunFixture(t, env.client, ws, agentrun.StatusRunning)

		child, link, err := env.subruns.Spawn(ctx, parent.ID, models.SpawnSubrunRequest{
			InputText: "investigate host A",
		}, ws.OwnerID)
		require.NoError(t, err)

		assert.Equal(t, agentrun.StatusPending, child.Status)
		require.NotNil(t, child.ParentRunID)
		assert.Equal(t, parent.ID, *child.ParentRunID)
		assert.NotEqual(t, parent.CorrelationID, child.CorrelationID, "child gets its own correlation ID")
		assert.Equal(t, 1, env.sched.enqueueCount(child.ID))

		assert.Equal(t, subrunlink.JoinPolicyWaitAll, link.JoinPolicy, "join policy defaults to wait_all")
		assert.Equal(t, subrunlink.FailurePolicyFailFast, link.FailurePolicy, "failure policy defaults to fail_fast")
		assert.NotEmpty(t, link.GroupID)

		assert.Equal(t, agentrun.StatusWaitingForSubrun, runStatus(t, env, parent.ID))

		// The spawn is recorded as a step on the parent journal.
		step, err := env.client.AgentStep.Query().
			Where(agentstep.RunIDEQ(parent.ID), agentstep.KindEQ(agentstep.KindSubrunSpawn)).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, step.StepIndex)
		assert.Equal(t, child.ID, step.Payload["child_run_id"])

		evts, err := env.client.RunEvent.Query().
			Where(runevent.RunIDEQ(parent.ID), runevent.EventTypeEQ(events.EventSubrunSpawned)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, evts)
	})

	t.Run("second spawn joins the same group without re-parking", func(t *testing.T) {
		parent := util.CreateRunFixture(t, env.client, ws, agentrun.StatusRunning)

		_, link1, err := env.subruns.Spawn(ctx, parent.ID, models.SpawnSubrunRequest{InputText: "a"}, ws.OwnerID)
		require.NoError(t, err)
		_, link2, err := env.subruns.Spawn(ctx, parent.ID, models.SpawnSubrunRequest{
			InputText: "b",
			GroupID:   link1.GroupID,
		}, ws.OwnerID)
		require.NoError(t, err)

		assert.Equal(t, link1.GroupID, link2.GroupID)
		assert.Equal(t, agentrun.StatusWaitingForSubrun, runStatus(t, env, parent.ID))
	})

	t.Run("quorum join requires a quorum value", func(t *testing.T) {
		parent := util.CreateRunFixture(t, env.client, ws, agentrun.StatusRunning)
		_, _, err := env.subruns.Spawn(ctx, parent.ID, models.SpawnSubrunRequest{
			InputText:  "x",
			JoinPolicy: "quorum",
		}, ws.OwnerID)
		assert.True(t, IsValidationError(err))
	})

	t.Run("timeout join requires timeout_seconds", func(t *testing.T) {
		parent := util.CreateRunFixture(t, env.client, ws, agentrun.StatusRunning)
		_, _, err := env.subruns.Spawn(ctx, parent.ID, models.SpawnSubrunRequest{
			InputText:  "x",
			JoinPolicy: "timeout",
		}, ws.OwnerID)
		assert.True(t, IsValidationError(err))
	})

	t.Run("unknown join policy is rejected", func(t *testing.T) {
		parent := util.CreateRunFixture(t, env.client, ws, agentrun.StatusRunning)
		_, _, err := env.subruns.Spawn(ctx, parent.ID, models.SpawnSubrunRequest{
			InputText:  "x",
			JoinPolicy: "first_past_the_post",
		}, ws.OwnerID)
		assert.True(t, IsValidationError(err))
	})

	t.Run("cannot spawn from a terminal parent", func(t *testing.T) {
		parent := util.CreateRunFixture(t, env.client, ws, agentrun.StatusCompleted)
		_, _, err := env.subruns.Spawn(ctx, parent.ID, models.SpawnSubrunRequest{InputText: "x"}, ws.OwnerID)
		assert.True(t, IsValidationError(err))
	})
}

func TestSpawn_MaxPendingChildren(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ws := util.CreateWorkspaceFixture(t, env.client)
	parent := util.CreateRunFixture(t, env.client, ws, agentrun.StatusRunning)

	for i := 0; i < 5; i++ {
		_, _, err := env.subruns.Spawn(ctx, parent.ID, models.SpawnSubrunRequest{InputText: "x"}, ws.OwnerID)
		require.NoError(t, err, "child %d should fit", i+1)
	}

	_, _, err := env.subruns.Spawn(ctx, parent.ID, models.SpawnSubrunRequest{InputText: "x"}, ws.OwnerID)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	// Nothing from the rejected spawn may persist.
	count, err := env.client.AgentRun.Query().Where(agentrun.ParentRunIDEQ(parent.ID)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}

func TestCompleteSubrun_WaitAll(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ws := util.CreateWorkspaceFixture(t, env.client)
	parent := util.CreateRunFixture(t, env.client, ws, agentrun.StatusRunning)

	c1, link, err := env.subruns.Spawn(ctx, parent.ID, models.SpawnSubrunRequest{InputText: "a"}, ws.OwnerID)
	require.NoError(t, err)
	c2, _, err := env.subruns.Spawn(ctx, parent.ID, models.SpawnSubrunRequest{
		InputText: "b",
		GroupID:   link.GroupID,
	}, ws.OwnerID)
	require.NoError(t, err)

	markTerminal(t, env, c1.ID, agentrun.StatusCompleted)
	require.NoError(t, env.subruns.CompleteSubrun(ctx, c1.ID))
	assert.Equal(t, agentrun.StatusWaitingForSubrun, runStatus(t, env, parent.ID),
		"parent waits for the whole group")

	markTerminal(t, env, c2.ID, agentrun.StatusCompleted)
	require.NoError(t, env.subruns.CompleteSubrun(ctx, c2.ID))
	assert.Equal(t, agentrun.StatusRunning, runStatus(t, env, parent.ID))
	assert.Equal(t, 1, env.sched.enqueueCount(parent.ID), "parent resumes with a tick")

	// Each completion journals a subrun_completed on the parent.
	evts, err := env.client.RunEvent.Query().
		Where(runevent.RunIDEQ(parent.ID), runevent.EventTypeEQ(events.EventSubrunCompleted)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, evts)
}

func TestCompleteSubrun_WaitAny(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ws := util.CreateWorkspaceFixture(t, env.client)
	parent := util.CreateRunFixture(t, env.client, ws, agentrun.StatusRunning)

	c1, link, err := env.subruns.Spawn(ctx, parent.ID, models.SpawnSubrunRequest{
		InputText:  "a",
		JoinPolicy: "wait_any",
	}, ws.OwnerID)
	require.NoError(t, err)
	c2, _, err := env.subruns.Spawn(ctx, parent.ID, models.SpawnSubrunRequest{
		InputText:  "b",
		JoinPolicy: "wait_any",
		GroupID:    link.GroupID,
	}, ws.OwnerID)
	require.NoError(t, err)

	markTerminal(t, env, c1.ID, agentrun.StatusCompleted)
	require.NoError(t, env.subruns.CompleteSubrun(ctx, c1.ID))

	assert.Equal(t, agentrun.StatusRunning, runStatus(t, env, parent.ID),
		"first completion resumes the parent")
	assert.Equal(t, agentrun.StatusPending, runStatus(t, env, c2.ID),
		"the straggler keeps running")
}

func TestCompleteSubrun_Quorum(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ws := util.CreateWorkspaceFixture(t, env.client)
	parent := util.CreateRunFixture(t, env.client, ws, agentrun.StatusRunning)

	quorum := 2
	spawn := func(input, groupID string) *ent.AgentRun {
		child, _, err := env.subruns.Spawn(ctx, parent.ID, models.SpawnSubrunRequest{
			InputText:  input,
			JoinPolicy: "quorum",
			Quorum:     &quorum,
			GroupID:    groupID,
		}, ws.OwnerID)
		require.NoError(t, err)
		return child
	}

	c1, link, err := env.subruns.Spawn(ctx, parent.ID, models.SpawnSubrunRequest{
		InputText:  "a",
		JoinPolicy: "quorum",
		Quorum:     &quorum,
	}, ws.OwnerID)
	require.NoError(t, err)
	c2 := spawn("b", link.GroupID)
	spawn("c", link.GroupID)

	markTerminal(t, env, c1.ID, agentrun.StatusCompleted)
	require.NoError(t, env.subruns.CompleteSubrun(ctx, c1.ID))
	assert.Equal(t, agentrun.StatusWaitingForSubrun, runStatus(t, env, parent.ID),
		"one of two quorum votes is not enough")

	markTerminal(t, env, c2.ID, agentrun.StatusCompleted)
	require.NoError(t, env.subruns.CompleteSubrun(ctx, c2.ID))
	assert.Equal(t, agentrun.StatusRunning, runStatus(t, env, parent.ID))
}

func TestCompleteSubrun_Timeout(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ws := util.CreateWorkspaceFixture(t, env.client)
	parent := util.CreateRunFixture(t, env.client, ws, agentrun.StatusRunning)

	timeout := 30
	spawn := func(input, groupID string) (*ent.AgentRun, *ent.SubrunLink) {
		child, link, err := env.subruns.Spawn(ctx, parent.ID, models.SpawnSubrunRequest{
			InputText:      input,
			JoinPolicy:     "timeout",
			TimeoutSeconds: &timeout,
			GroupID:        groupID,
		}, ws.OwnerID)
		require.NoError(t, err)
		return child, link
	}

	c1, link := spawn("a", "")
	c2, _ := spawn("b", link.GroupID)
	c3, _ := spawn("c", link.GroupID)

	markTerminal(t, env, c1.ID, agentrun.StatusCompleted)
	require.NoError(t, env.subruns.CompleteSubrun(ctx, c1.ID))
	assert.Equal(t, agentrun.StatusWaitingForSubrun, runStatus(t, env, parent.ID),
		"before the deadline the parent waits for the stragglers")

	// Push the group's deadline into the past. The deadline is anchored
	// on the oldest link's created_at, which is immutable through ent.
	_, err := env.db.ExecContext(ctx,
		"UPDATE subrun_links SET created_at = $1 WHERE group_id = $2",
		time.Now().UTC().Add(-time.Minute), link.GroupID)
	require.NoError(t, err)

	markTerminal(t, env, c2.ID, agentrun.StatusCompleted)
	require.NoError(t, env.subruns.CompleteSubrun(ctx, c2.ID))

	assert.Equal(t, agentrun.StatusRunning, runStatus(t, env, parent.ID),
		"past the deadline a completion resumes the parent")
	assert.Equal(t, 1, env.sched.enqueueCount(parent.ID))
	assert.Equal(t, agentrun.StatusPending, runStatus(t, env, c3.ID),
		"the straggler is left to finish on its own")
}

func TestCompleteSubrun_FailFast(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ws := util.CreateWorkspaceFixture(t, env.client)
	parent := util.CreateRunFixture(t, env.client, ws, agentrun.StatusRunning)

	child, _, err := env.subruns.Spawn(ctx, parent.ID, models.SpawnSubrunRequest{InputText: "a"}, ws.OwnerID)
	require.NoError(t, err)

	markTerminal(t, env, child.ID, agentrun.StatusFailed)
	require.NoError(t, env.subruns.CompleteSubrun(ctx, child.ID))

	assert.Equal(t, agentrun.StatusFailed, runStatus(t, env, parent.ID))
}

func TestCompleteSubrun_CancelSiblings(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ws := util.CreateWorkspaceFixture(t, env.client)
	parent := util.CreateRunFixture(t, env.client, ws, agentrun.StatusRunning)

	c1, link, err := env.subruns.Spawn(ctx, parent.ID, models.SpawnSubrunRequest{
		InputText:     "a",
		FailurePolicy: "cancel_siblings",
	}, ws.OwnerID)
	require.NoError(t, err)
	c2, _, err := env.subruns.Spawn(ctx, parent.ID, models.SpawnSubrunRequest{
		InputText:     "b",
		FailurePolicy: "cancel_siblings",
		GroupID:       link.GroupID,
	}, ws.OwnerID)
	require.NoError(t, err)

	markTerminal(t, env, c1.ID, agentrun.StatusFailed)
	require.NoError(t, env.subruns.CompleteSubrun(ctx, c1.ID))

	assert.Equal(t, agentrun.StatusCanceled, runStatus(t, env, c2.ID))
	assert.Equal(t, agentrun.StatusFailed, runStatus(t, env, parent.ID))
}

func TestCompleteSubrun_ContinuePolicy(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ws := util.CreateWorkspaceFixture(t, env.client)
	parent := util.CreateRunFixture(t, env.client, ws, agentrun.StatusRunning)

	child, _, err := env.subruns.Spawn(ctx, parent.ID, models.SpawnSubrunRequest{
		InputText:     "a",
		FailurePolicy: "continue",
	}, ws.OwnerID)
	require.NoError(t, err)

	// The only child failing under continue still satisfies wait_all,
	// so the parent resumes instead of failing.
	markTerminal(t, env, child.ID, agentrun.StatusFailed)
	require.NoError(t, env.subruns.CompleteSubrun(ctx, child.ID))

	assert.Equal(t, agentrun.StatusRunning, runStatus(t, env, parent.ID))
}

func TestCompleteSubrun_NoOps(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ws := util.CreateWorkspaceFixture(t, env.client)

	t.Run("live child changes nothing", func(t *testing.T) {
		parent := util.CreateRunFixture(t, env.client, ws, agentrun.StatusRunning)
		child, _, err := env.subruns.Spawn(ctx, parent.ID, models.SpawnSubrunRequest{InputText: "a"}, ws.OwnerID)
		require.NoError(t, err)

		require.NoError(t, env.subruns.CompleteSubrun(ctx, child.ID))
		assert.Equal(t, agentrun.StatusWaitingForSubrun, runStatus(t, env, parent.ID))
	})

	t.Run("non-subrun terminal run changes nothing", func(t *testing.T) {
		run := util.CreateRunFixture(t, env.client, ws, agentrun.StatusCompleted)
		require.NoError(t, env.subruns.CompleteSubrun(ctx, run.ID))
	})
}

func TestCancelSubrun(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ws := util.CreateWorkspaceFixture(t, env.client)
	parent := util.CreateRunFixture(t, env.client, ws, agentrun.StatusRunning)

	child, _, err := env.subruns.Spawn(ctx, parent.ID, models.SpawnSubrunRequest{
		InputText:     "a",
		FailurePolicy: "continue",
	}, ws.OwnerID)
	require.NoError(t, err)

	require.NoError(t, env.subruns.CancelSubrun(ctx, child.ID, "no longer needed", true))

	assert.Equal(t, agentrun.StatusCanceled, runStatus(t, env, child.ID))
	// Under continue + wait_all with no remaining children the parent
	// resumes.
	assert.Equal(t, agentrun.StatusRunning, runStatus(t, env, parent.ID))
}
