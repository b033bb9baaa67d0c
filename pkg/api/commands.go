package api

import (
	"context"
	"fmt"

	"github.com/agentmaestro/agentmaestro/pkg/events"
	"github.com/agentmaestro/agentmaestro/pkg/models"
	"github.com/agentmaestro/agentmaestro/pkg/services"
)

// WSCommandHandler executes domain commands arriving over WebSocket
// connections. Role checks ride on the services; the handler only
// resolves the target run from the connection's session.
type WSCommandHandler struct {
	runs      *services.RunService
	subruns   *services.SubrunService
	toolcalls *services.ToolCallService
	snapshots *services.SnapshotService
}

// NewWSCommandHandler creates the command dispatcher given to the
// connection manager.
func NewWSCommandHandler(
	runs *services.RunService,
	subruns *services.SubrunService,
	toolcalls *services.ToolCallService,
	snapshots *services.SnapshotService,
) *WSCommandHandler {
	return &WSCommandHandler{runs: runs, subruns: subruns, toolcalls: toolcalls, snapshots: snapshots}
}

var _ events.CommandHandler = (*WSCommandHandler)(nil)

// HandleCommand dispatches one client command and returns the reply
// frame. Run-scoped commands are only valid on per-run connections.
func (h *WSCommandHandler) HandleCommand(ctx context.Context, sess *events.Session, msg *events.ClientMessage) (any, error) {
	switch msg.Cmd {
	case "request_snapshot":
		runID, err := h.runFromSession(sess)
		if err != nil {
			return nil, err
		}
		sinceSeq := 0
		if msg.SinceSeq != nil {
			sinceSeq = *msg.SinceSeq
		}
		snap, err := h.snapshots.Snapshot(ctx, runID, sinceSeq)
		if err != nil {
			return nil, err
		}
		return map[string]any{"type": "snapshot", "run_id": runID, "data": snap}, nil

	case "approve_tool_call":
		if msg.ToolCallID == "" {
			return nil, services.NewValidationError("tool_call_id", "required")
		}
		tc, err := h.toolcalls.Approve(ctx, msg.ToolCallID, sess.UserID)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"type": "result", "cmd": msg.Cmd,
			"tool_call_id": tc.ID, "run_id": tc.RunID, "status": string(tc.Status),
		}, nil

	case "cancel_run":
		runID, err := h.runFromSession(sess)
		if err != nil {
			return nil, err
		}
		reason := msg.Reason
		if reason == "" {
			reason = "cancelled by user"
		}
		run, err := h.runs.Cancel(ctx, runID, reason, sess.UserID)
		if err != nil {
			return nil, err
		}
		return h.runFrame(msg.Cmd, run.ID, string(run.Status)), nil

	case "pause_run":
		runID, err := h.runFromSession(sess)
		if err != nil {
			return nil, err
		}
		run, err := h.runs.Pause(ctx, runID, sess.UserID)
		if err != nil {
			return nil, err
		}
		return h.runFrame(msg.Cmd, run.ID, string(run.Status)), nil

	case "resume_run":
		runID, err := h.runFromSession(sess)
		if err != nil {
			return nil, err
		}
		run, err := h.runs.Resume(ctx, runID, sess.UserID)
		if err != nil {
			return nil, err
		}
		return h.runFrame(msg.Cmd, run.ID, string(run.Status)), nil

	case "retry_run":
		runID, err := h.runFromSession(sess)
		if err != nil {
			return nil, err
		}
		run, err := h.runs.Retry(ctx, runID, sess.UserID)
		if err != nil {
			return nil, err
		}
		// The frame names the fresh run, not the failed one.
		return h.runFrame(msg.Cmd, run.ID, string(run.Status)), nil

	case "spawn_subrun":
		runID, err := h.runFromSession(sess)
		if err != nil {
			return nil, err
		}
		child, link, err := h.subruns.Spawn(ctx, runID, models.SpawnSubrunRequest{
			InputText:      msg.InputText,
			JoinPolicy:     msg.JoinPolicy,
			Quorum:         msg.Quorum,
			TimeoutSeconds: msg.TimeoutSeconds,
			FailurePolicy:  msg.FailurePolicy,
			GroupID:        msg.GroupID,
			Metadata:       msg.Metadata,
		}, sess.UserID)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"type": "result", "cmd": msg.Cmd,
			"child_run_id":    child.ID,
			"status":          string(child.Status),
			"correlation_id":  child.CorrelationID,
			"subrun_group_id": link.GroupID,
		}, nil

	default:
		return nil, fmt.Errorf("unknown command %q", msg.Cmd)
	}
}

func (h *WSCommandHandler) runFromSession(sess *events.Session) (string, error) {
	if sess.RunID == "" {
		return "", fmt.Errorf("command requires a run stream connection")
	}
	return sess.RunID, nil
}

func (h *WSCommandHandler) runFrame(cmd, runID, status string) map[string]any {
	return map[string]any{"type": "result", "cmd": cmd, "run_id": runID, "status": status}
}
