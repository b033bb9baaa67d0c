package util

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/agentmaestro/agentmaestro/ent"
	"github.com/agentmaestro/agentmaestro/ent/agentrun"
	"github.com/agentmaestro/agentmaestro/ent/membership"
)

// Workspace is the bundle of fixture rows most service tests need:
// one workspace, one owner membership and one agent.
type Workspace struct {
	Workspace *ent.Workspace
	Agent     *ent.Agent
	OwnerID   string
}

// CreateWorkspaceFixture creates a workspace with an owner member and
// a default agent.
func CreateWorkspaceFixture(t *testing.T, client *ent.Client) *Workspace {
	t.Helper()
	ctx := context.Background()

	ws, err := client.Workspace.Create().
		SetID(uuid.New().String()).
		SetName("test-workspace").
		Save(ctx)
	require.NoError(t, err)

	ownerID := uuid.New().String()
	AddMemberFixture(t, client, ws.ID, ownerID, membership.RoleOwner)

	ag, err := client.Agent.Create().
		SetID(uuid.New().String()).
		SetWorkspaceID(ws.ID).
		SetName("test-agent").
		SetSystemPrompt("You are a test agent.").
		SetDefaultModel("test-model").
		Save(ctx)
	require.NoError(t, err)

	return &Workspace{Workspace: ws, Agent: ag, OwnerID: ownerID}
}

// AddMemberFixture adds an active member with the given role.
func AddMemberFixture(t *testing.T, client *ent.Client, workspaceID, userID string, role membership.Role) *ent.Membership {
	t.Helper()

	m, err := client.Membership.Create().
		SetID(uuid.New().String()).
		SetWorkspaceID(workspaceID).
		SetUserID(userID).
		SetRole(role).
		Save(context.Background())
	require.NoError(t, err)
	return m
}

// CreateRunFixture creates a run in the given status.
func CreateRunFixture(t *testing.T, client *ent.Client, ws *Workspace, status agentrun.Status) *ent.AgentRun {
	t.Helper()

	run, err := client.AgentRun.Create().
		SetID(uuid.New().String()).
		SetWorkspaceID(ws.Workspace.ID).
		SetAgentID(ws.Agent.ID).
		SetStartedBy(ws.OwnerID).
		SetCorrelationID(uuid.New().String()).
		SetStatus(status).
		SetInputText("do the thing").
		Save(context.Background())
	require.NoError(t, err)
	return run
}

// CreateToolDefinitionFixture registers an enabled tool in the workspace.
func CreateToolDefinitionFixture(t *testing.T, client *ent.Client, workspaceID, name string, requiresApproval bool, argsSchema map[string]any) *ent.ToolDefinition {
	t.Helper()

	if argsSchema == nil {
		argsSchema = map[string]any{"type": "object"}
	}
	def, err := client.ToolDefinition.Create().
		SetID(uuid.New().String()).
		SetWorkspaceID(workspaceID).
		SetName(name).
		SetArgsSchema(argsSchema).
		SetDefaultRequiresApproval(requiresApproval).
		Save(context.Background())
	require.NoError(t, err)
	return def
}
