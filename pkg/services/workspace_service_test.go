package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentmaestro/agentmaestro/ent/membership"
	"github.com/agentmaestro/agentmaestro/ent/tooldefinition"
	"github.com/agentmaestro/agentmaestro/test/util"
)

func TestCreateWorkspace(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := NewWorkspaceService(env.client)

	t.Run("creates the workspace with an owner membership", func(t *testing.T) {
		ownerID := uuid.New().String()
		ws, err := svc.CreateWorkspace(ctx, "platform-team", ownerID)
		require.NoError(t, err)
		assert.Equal(t, "platform-team", ws.Name)

		m, err := RequireMember(ctx, env.client, ws.ID, ownerID, "check")
		require.NoError(t, err)
		assert.Equal(t, membership.RoleOwner, m.Role)
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		_, err := svc.CreateWorkspace(ctx, "", uuid.New().String())
		assert.True(t, IsValidationError(err))
	})
}

func TestAddMember(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := NewWorkspaceService(env.client)
	ws := util.CreateWorkspaceFixture(t, env.client)

	t.Run("owner grants roles", func(t *testing.T) {
		m, err := svc.AddMember(ctx, ws.Workspace.ID, uuid.New().String(), membership.RoleOperator, ws.OwnerID)
		require.NoError(t, err)
		assert.Equal(t, membership.RoleOperator, m.Role)
	})

	t.Run("operator cannot manage members", func(t *testing.T) {
		operatorID := uuid.New().String()
		util.AddMemberFixture(t, env.client, ws.Workspace.ID, operatorID, membership.RoleOperator)

		_, err := svc.AddMember(ctx, ws.Workspace.ID, uuid.New().String(), membership.RoleViewer, operatorID)
		assert.True(t, IsPermissionError(err))
	})

	t.Run("duplicate membership already exists", func(t *testing.T) {
		userID := uuid.New().String()
		_, err := svc.AddMember(ctx, ws.Workspace.ID, userID, membership.RoleViewer, ws.OwnerID)
		require.NoError(t, err)
		_, err = svc.AddMember(ctx, ws.Workspace.ID, userID, membership.RoleViewer, ws.OwnerID)
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})
}

func TestUpsertToolDefinition(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := NewWorkspaceService(env.client)
	ws := util.CreateWorkspaceFixture(t, env.client)

	t.Run("creates and then replaces a definition", func(t *testing.T) {
		def, err := svc.UpsertToolDefinition(ctx, ws.Workspace.ID, "restart_pod",
			map[string]any{"type": "object"}, "high", true, ws.OwnerID)
		require.NoError(t, err)
		assert.Equal(t, tooldefinition.DefaultRiskLevelHigh, def.DefaultRiskLevel)
		assert.True(t, def.DefaultRequiresApproval)

		updated, err := svc.UpsertToolDefinition(ctx, ws.Workspace.ID, "restart_pod",
			map[string]any{"type": "object"}, "low", false, ws.OwnerID)
		require.NoError(t, err)
		assert.Equal(t, def.ID, updated.ID, "upsert keeps the definition ID")
		assert.Equal(t, tooldefinition.DefaultRiskLevelLow, updated.DefaultRiskLevel)
		assert.False(t, updated.DefaultRequiresApproval)
	})

	t.Run("unknown risk level is rejected", func(t *testing.T) {
		_, err := svc.UpsertToolDefinition(ctx, ws.Workspace.ID, "x", nil, "radioactive", false, ws.OwnerID)
		assert.True(t, IsValidationError(err))
	})

	t.Run("viewer cannot manage tools", func(t *testing.T) {
		viewerID := uuid.New().String()
		util.AddMemberFixture(t, env.client, ws.Workspace.ID, viewerID, membership.RoleViewer)
		_, err := svc.UpsertToolDefinition(ctx, ws.Workspace.ID, "x", nil, "", false, viewerID)
		assert.True(t, IsPermissionError(err))
	})
}
