package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentmaestro/agentmaestro/ent"
	"github.com/agentmaestro/agentmaestro/ent/agentrun"
	"github.com/agentmaestro/agentmaestro/ent/agentstep"
	"github.com/agentmaestro/agentmaestro/ent/membership"
	"github.com/agentmaestro/agentmaestro/ent/runevent"
	"github.com/agentmaestro/agentmaestro/ent/toolcall"
	"github.com/agentmaestro/agentmaestro/pkg/events"
	"github.com/agentmaestro/agentmaestro/test/util"
)

const toolWait = 5 * time.Second

// waitInvoked blocks until the fake runner has been called once.
func waitInvoked(t *testing.T, env *testEnv) {
	t.Helper()
	select {
	case <-env.runner.invoked:
	case <-time.After(toolWait):
		t.Fatal("tool-runner was never invoked")
	}
}

func toolCallStatus(t *testing.T, env *testEnv, id string) toolcall.Status {
	t.Helper()
	tc, err := env.client.ToolCall.Get(context.Background(), id)
	require.NoError(t, err)
	return tc.Status
}

func TestRequestApproval(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ws := util.CreateWorkspaceFixture(t, env.client)
	util.CreateToolDefinitionFixture(t, env.client, ws.Workspace.ID, "search", true, nil)

	t.Run("gated tool parks the run pending approval", func(t *testing.T) {
		run := util.CreateRunFixture(t, env.client, ws, agentrun.StatusRunning)

		tc, err := env.toolcalls.RequestApproval(ctx, run.ID, "search", map[string]any{"q": "x"}, true)
		require.NoError(t, err)
		assert.Equal(t, toolcall.StatusPending, tc.Status)
		assert.True(t, tc.RequiresApproval)

		assert.Equal(t, agentrun.StatusWaitingForApproval, runStatus(t, env, run.ID))
		assert.Zero(t, env.runner.callCount(), "nothing executes before approval")

		// A tool_call step lands on the journal.
		step, err := env.client.AgentStep.Query().
			Where(agentstep.RunIDEQ(run.ID), agentstep.KindEQ(agentstep.KindToolCall)).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, "search", step.Payload["tool_name"])

		evt, err := env.client.RunEvent.Query().
			Where(runevent.RunIDEQ(run.ID), runevent.EventTypeEQ(events.EventToolCallRequested)).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, true, evt.Payload["requires_approval"])
	})

	t.Run("pre-approved tool executes after commit", func(t *testing.T) {
		run := util.CreateRunFixture(t, env.client, ws, agentrun.StatusRunning)

		tc, err := env.toolcalls.RequestApproval(ctx, run.ID, "search", map[string]any{"q": "x"}, false)
		require.NoError(t, err)
		assert.Equal(t, toolcall.StatusApproved, tc.Status)
		assert.Equal(t, agentrun.StatusRunning, runStatus(t, env, run.ID), "run is not parked")

		waitInvoked(t, env)
		require.Eventually(t, func() bool {
			return toolCallStatus(t, env, tc.ID) == toolcall.StatusSucceeded
		}, toolWait, 25*time.Millisecond)

		got, err := env.client.ToolCall.Get(ctx, tc.ID)
		require.NoError(t, err)
		assert.Equal(t, "tool output", got.Stdout)

		req := env.runner.lastCall()
		assert.Equal(t, tc.ID, req.RequestID)
		assert.Equal(t, "search", req.ToolName)
		assert.False(t, req.Policy.RequiresApproval)
	})

	t.Run("unknown tool is rejected", func(t *testing.T) {
		run := util.CreateRunFixture(t, env.client, ws, agentrun.StatusRunning)
		_, err := env.toolcalls.RequestApproval(ctx, run.ID, "no-such-tool", nil, true)
		assert.True(t, IsValidationError(err))
	})

	t.Run("args failing the schema are rejected", func(t *testing.T) {
		util.CreateToolDefinitionFixture(t, env.client, ws.Workspace.ID, "strict", true, map[string]any{
			"type":     "object",
			"required": []any{"target"},
		})
		run := util.CreateRunFixture(t, env.client, ws, agentrun.StatusRunning)

		_, err := env.toolcalls.RequestApproval(ctx, run.ID, "strict", map[string]any{}, true)
		assert.True(t, IsValidationError(err))

		count, err := env.client.AgentStep.Query().Where(agentstep.RunIDEQ(run.ID)).Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, count, "rejected request journals nothing")
	})

	t.Run("paused run cannot request a tool call", func(t *testing.T) {
		run := util.CreateRunFixture(t, env.client, ws, agentrun.StatusPaused)
		_, err := env.toolcalls.RequestApproval(ctx, run.ID, "search", nil, true)
		assert.True(t, IsValidationError(err))
	})
}

func TestApprove(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ws := util.CreateWorkspaceFixture(t, env.client)
	util.CreateToolDefinitionFixture(t, env.client, ws.Workspace.ID, "search", true, nil)

	t.Run("approval resumes the run and executes the call", func(t *testing.T) {
		run := util.CreateRunFixture(t, env.client, ws, agentrun.StatusRunning)
		tc, err := env.toolcalls.RequestApproval(ctx, run.ID, "search", map[string]any{"q": "x"}, true)
		require.NoError(t, err)

		approved, err := env.toolcalls.Approve(ctx, tc.ID, ws.OwnerID)
		require.NoError(t, err)
		assert.Equal(t, toolcall.StatusApproved, approved.Status)
		require.NotNil(t, approved.ApprovedBy)
		assert.Equal(t, ws.OwnerID, *approved.ApprovedBy)
		assert.NotNil(t, approved.ApprovedAt)

		assert.Equal(t, agentrun.StatusRunning, runStatus(t, env, run.ID))
		assert.Equal(t, 1, env.sched.enqueueCount(run.ID))

		waitInvoked(t, env)
		require.Eventually(t, func() bool {
			return toolCallStatus(t, env, tc.ID) == toolcall.StatusSucceeded
		}, toolWait, 25*time.Millisecond)

		evt, err := env.client.RunEvent.Query().
			Where(runevent.RunIDEQ(run.ID), runevent.EventTypeEQ(events.EventToolCallCompleted)).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, "succeeded", evt.Payload["status"])
	})

	t.Run("viewer cannot approve", func(t *testing.T) {
		run := util.CreateRunFixture(t, env.client, ws, agentrun.StatusRunning)
		tc, err := env.toolcalls.RequestApproval(ctx, run.ID, "search", nil, true)
		require.NoError(t, err)

		viewerID := uuid.New().String()
		util.AddMemberFixture(t, env.client, ws.Workspace.ID, viewerID, membership.RoleViewer)

		_, err = env.toolcalls.Approve(ctx, tc.ID, viewerID)
		assert.True(t, IsPermissionError(err))
		assert.Equal(t, toolcall.StatusPending, toolCallStatus(t, env, tc.ID))
	})

	t.Run("operator can approve", func(t *testing.T) {
		run := util.CreateRunFixture(t, env.client, ws, agentrun.StatusRunning)
		tc, err := env.toolcalls.RequestApproval(ctx, run.ID, "search", nil, true)
		require.NoError(t, err)

		operatorID := uuid.New().String()
		util.AddMemberFixture(t, env.client, ws.Workspace.ID, operatorID, membership.RoleOperator)

		_, err = env.toolcalls.Approve(ctx, tc.ID, operatorID)
		require.NoError(t, err)
		waitInvoked(t, env)
	})

	t.Run("second approval is rejected", func(t *testing.T) {
		run := util.CreateRunFixture(t, env.client, ws, agentrun.StatusRunning)
		tc, err := env.toolcalls.RequestApproval(ctx, run.ID, "search", nil, true)
		require.NoError(t, err)

		_, err = env.toolcalls.Approve(ctx, tc.ID, ws.OwnerID)
		require.NoError(t, err)
		waitInvoked(t, env)

		_, err = env.toolcalls.Approve(ctx, tc.ID, ws.OwnerID)
		assert.ErrorIs(t, err, ErrAlreadyActedOn)
	})

	t.Run("unknown tool call is not found", func(t *testing.T) {
		_, err := env.toolcalls.Approve(ctx, uuid.New().String(), ws.OwnerID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

// createApprovedToolCall seeds a step and an approved tool call
// directly, bypassing the request flow and its post-commit goroutine.
func createApprovedToolCall(t *testing.T, env *testEnv, run *ent.AgentRun, toolName string) *ent.ToolCall {
	t.Helper()
	ctx := context.Background()

	step, err := env.client.AgentStep.Create().
		SetID(uuid.New().String()).
		SetRunID(run.ID).
		SetStepIndex(run.CurrentStepIndex + 1).
		SetKind(agentstep.KindToolCall).
		SetPayload(map[string]any{"tool_name": toolName}).
		SetCorrelationID(run.CorrelationID).
		Save(ctx)
	require.NoError(t, err)

	tc, err := env.client.ToolCall.Create().
		SetID(uuid.New().String()).
		SetRunID(run.ID).
		SetStepID(step.ID).
		SetToolName(toolName).
		SetArgs(map[string]any{"q": "x"}).
		SetRequiresApproval(true).
		SetStatus(toolcall.StatusApproved).
		Save(ctx)
	require.NoError(t, err)
	return tc
}

func TestExecute(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ws := util.CreateWorkspaceFixture(t, env.client)
	util.CreateToolDefinitionFixture(t, env.client, ws.Workspace.ID, "search", true, nil)

	t.Run("records the result and schedules the next tick", func(t *testing.T) {
		run := util.CreateRunFixture(t, env.client, ws, agentrun.StatusRunning)
		tc := createApprovedToolCall(t, env, run, "search")

		require.NoError(t, env.toolcalls.Execute(ctx, tc.ID))
		<-env.runner.invoked

		got, err := env.client.ToolCall.Get(ctx, tc.ID)
		require.NoError(t, err)
		assert.Equal(t, toolcall.StatusSucceeded, got.Status)
		assert.Equal(t, "tool output", got.Stdout)
		require.NotNil(t, got.ExitCode)
		assert.Zero(t, *got.ExitCode)
		assert.NotNil(t, got.EndedAt)

		assert.Equal(t, 1, env.sched.enqueueCount(run.ID))
	})

	t.Run("secrets in output are masked before journaling", func(t *testing.T) {
		env.runner.mu.Lock()
		env.runner.resp.Stdout = `connected with api_key: "svcacct_0123456789abcdefghij"`
		env.runner.resp.Result = map[string]any{"cred": "password=hunter2secret"}
		env.runner.mu.Unlock()

		run := util.CreateRunFixture(t, env.client, ws, agentrun.StatusRunning)
		tc := createApprovedToolCall(t, env, run, "search")

		require.NoError(t, env.toolcalls.Execute(ctx, tc.ID))
		<-env.runner.invoked

		got, err := env.client.ToolCall.Get(ctx, tc.ID)
		require.NoError(t, err)
		assert.Contains(t, got.Stdout, "__MASKED_API_KEY__")
		assert.NotContains(t, got.Stdout, "svcacct_0123456789abcdefghij")
		assert.Contains(t, got.Result["cred"], "__MASKED_PASSWORD__")
	})

	t.Run("result for a terminal run is dropped", func(t *testing.T) {
		run := util.CreateRunFixture(t, env.client, ws, agentrun.StatusCanceled)
		tc := createApprovedToolCall(t, env, run, "search")

		require.NoError(t, env.toolcalls.Execute(ctx, tc.ID))
		<-env.runner.invoked

		// The call stays in running; no completion event is journaled.
		assert.Equal(t, toolcall.StatusRunning, toolCallStatus(t, env, tc.ID))
		count, err := env.client.RunEvent.Query().
			Where(runevent.RunIDEQ(run.ID), runevent.EventTypeEQ(events.EventToolCallCompleted)).
			Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)
		assert.Zero(t, env.sched.enqueueCount(run.ID))
	})

	t.Run("a pending call is not executable", func(t *testing.T) {
		run := util.CreateRunFixture(t, env.client, ws, agentrun.StatusRunning)
		tc := createApprovedToolCall(t, env, run, "search")
		_, err := env.client.ToolCall.UpdateOneID(tc.ID).SetStatus(toolcall.StatusPending).Save(ctx)
		require.NoError(t, err)

		err = env.toolcalls.Execute(ctx, tc.ID)
		assert.True(t, IsValidationError(err))
		assert.Zero(t, env.runner.callCount())
	})

	t.Run("disabled tool is rejected", func(t *testing.T) {
		def := util.CreateToolDefinitionFixture(t, env.client, ws.Workspace.ID, "retired", true, nil)
		_, err := env.client.ToolDefinition.UpdateOneID(def.ID).SetEnabled(false).Save(ctx)
		require.NoError(t, err)

		run := util.CreateRunFixture(t, env.client, ws, agentrun.StatusRunning)
		tc := createApprovedToolCall(t, env, run, "retired")

		err = env.toolcalls.Execute(ctx, tc.ID)
		assert.True(t, IsValidationError(err))
	})
}
