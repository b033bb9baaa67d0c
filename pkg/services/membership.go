package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/agentmaestro/agentmaestro/ent"
	"github.com/agentmaestro/agentmaestro/ent/membership"
)

// CanOperate reports whether a role may start, cancel, pause, resume
// and retry runs and spawn subruns.
func CanOperate(role membership.Role) bool {
	switch role {
	case membership.RoleOwner, membership.RoleAdmin, membership.RoleOperator:
		return true
	}
	return false
}

// CanApprove reports whether a role may approve tool calls.
func CanApprove(role membership.Role) bool {
	// Same set as CanOperate today; kept separate because the two
	// capabilities are checked at different points.
	return CanOperate(role)
}

// RequireMember loads the active membership of user in workspace,
// returning a PermissionError when none exists.
func RequireMember(ctx context.Context, client *ent.Client, workspaceID, userID, action string) (*ent.Membership, error) {
	m, err := client.Membership.Query().
		Where(
			membership.WorkspaceIDEQ(workspaceID),
			membership.UserIDEQ(userID),
			membership.Active(true),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NewPermissionError(userID, workspaceID, action)
		}
		return nil, fmt.Errorf("query membership: %w", err)
	}
	return m, nil
}

// RequireOperator loads the membership and rejects roles that cannot
// operate runs.
func RequireOperator(ctx context.Context, client *ent.Client, workspaceID, userID, action string) (*ent.Membership, error) {
	m, err := RequireMember(ctx, client, workspaceID, userID, action)
	if err != nil {
		return nil, err
	}
	if !CanOperate(m.Role) {
		return nil, NewPermissionError(userID, workspaceID, action)
	}
	return m, nil
}

// recordAction appends a UserActionLog row in the caller's transaction.
// Audit rows ride the same commit as the action they describe.
func recordAction(ctx context.Context, tx *ent.Tx, workspaceID, userID, action, targetType, targetID string, detail map[string]any) error {
	_, err := tx.UserActionLog.Create().
		SetID(uuid.New().String()).
		SetWorkspaceID(workspaceID).
		SetUserID(userID).
		SetAction(action).
		SetTargetType(targetType).
		SetTargetID(targetID).
		SetDetail(detail).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("record user action %s: %w", action, err)
	}
	return nil
}
