package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/agentmaestro/agentmaestro/ent"
	"github.com/agentmaestro/agentmaestro/ent/membership"
	"github.com/agentmaestro/agentmaestro/ent/tooldefinition"
)

// WorkspaceService manages tenancy: workspaces, memberships, agents
// and tool definitions.
type WorkspaceService struct {
	client *ent.Client
}

// NewWorkspaceService creates a new WorkspaceService.
func NewWorkspaceService(client *ent.Client) *WorkspaceService {
	return &WorkspaceService{client: client}
}

// CreateWorkspace creates a workspace with ownerUserID as its owner.
func (s *WorkspaceService) CreateWorkspace(ctx context.Context, name, ownerUserID string) (*ent.Workspace, error) {
	if name == "" {
		return nil, NewValidationError("name", "required")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	ws, err := tx.Workspace.Create().
		SetID(uuid.New().String()).
		SetName(name).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("create workspace: %w", err)
	}

	if _, err := tx.Membership.Create().
		SetID(uuid.New().String()).
		SetWorkspaceID(ws.ID).
		SetUserID(ownerUserID).
		SetRole(membership.RoleOwner).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("create owner membership: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit workspace: %w", err)
	}
	return ws, nil
}

// AddMember grants a user a role in the workspace. Only owners and
// admins may manage membership.
func (s *WorkspaceService) AddMember(ctx context.Context, workspaceID, userID string, role membership.Role, actorID string) (*ent.Membership, error) {
	actor, err := RequireMember(ctx, s.client, workspaceID, actorID, "manage members")
	if err != nil {
		return nil, err
	}
	if actor.Role != membership.RoleOwner && actor.Role != membership.RoleAdmin {
		return nil, NewPermissionError(actorID, workspaceID, "manage members")
	}
	if err := membership.RoleValidator(role); err != nil {
		return nil, NewValidationError("role", "must be one of owner, admin, operator, viewer")
	}

	m, err := s.client.Membership.Create().
		SetID(uuid.New().String()).
		SetWorkspaceID(workspaceID).
		SetUserID(userID).
		SetRole(role).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("create membership: %w", err)
	}
	return m, nil
}

// CreateAgent registers an agent definition in a workspace.
func (s *WorkspaceService) CreateAgent(ctx context.Context, workspaceID, name, systemPrompt, model string, actorID string) (*ent.Agent, error) {
	if name == "" {
		return nil, NewValidationError("name", "required")
	}
	if _, err := RequireOperator(ctx, s.client, workspaceID, actorID, "create agent"); err != nil {
		return nil, err
	}

	ag, err := s.client.Agent.Create().
		SetID(uuid.New().String()).
		SetWorkspaceID(workspaceID).
		SetName(name).
		SetSystemPrompt(systemPrompt).
		SetDefaultModel(model).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("create agent: %w", err)
	}
	return ag, nil
}

// UpsertToolDefinition creates or replaces a workspace tool definition.
func (s *WorkspaceService) UpsertToolDefinition(ctx context.Context, workspaceID, name string, argsSchema map[string]any, riskLevel string, requiresApproval bool, actorID string) (*ent.ToolDefinition, error) {
	if name == "" {
		return nil, NewValidationError("name", "required")
	}
	if _, err := RequireOperator(ctx, s.client, workspaceID, actorID, "manage tools"); err != nil {
		return nil, err
	}
	risk := tooldefinition.DefaultRiskLevelLow
	if riskLevel != "" {
		risk = tooldefinition.DefaultRiskLevel(riskLevel)
		if err := tooldefinition.DefaultRiskLevelValidator(risk); err != nil {
			return nil, NewValidationError("risk_level", "must be one of low, medium, high")
		}
	}

	existing, err := s.client.ToolDefinition.Query().
		Where(
			tooldefinition.WorkspaceIDEQ(workspaceID),
			tooldefinition.NameEQ(name),
		).
		Only(ctx)
	switch {
	case err == nil:
		return s.client.ToolDefinition.UpdateOneID(existing.ID).
			SetArgsSchema(argsSchema).
			SetDefaultRiskLevel(risk).
			SetDefaultRequiresApproval(requiresApproval).
			SetEnabled(true).
			Save(ctx)
	case ent.IsNotFound(err):
		return s.client.ToolDefinition.Create().
			SetID(uuid.New().String()).
			SetWorkspaceID(workspaceID).
			SetName(name).
			SetArgsSchema(argsSchema).
			SetDefaultRiskLevel(risk).
			SetDefaultRequiresApproval(requiresApproval).
			Save(ctx)
	default:
		return nil, fmt.Errorf("query tool definition: %w", err)
	}
}
