package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/agentmaestro/agentmaestro/ent"
	"github.com/agentmaestro/agentmaestro/ent/agentrun"
	"github.com/agentmaestro/agentmaestro/ent/agentstep"
	"github.com/agentmaestro/agentmaestro/ent/toolcall"
	"github.com/agentmaestro/agentmaestro/ent/tooldefinition"
	"github.com/agentmaestro/agentmaestro/pkg/config"
	"github.com/agentmaestro/agentmaestro/pkg/events"
	"github.com/agentmaestro/agentmaestro/pkg/journal"
	"github.com/agentmaestro/agentmaestro/pkg/masking"
	"github.com/agentmaestro/agentmaestro/pkg/quota"
	"github.com/agentmaestro/agentmaestro/pkg/runstate"
	"github.com/agentmaestro/agentmaestro/pkg/toolrunner"
)

// ToolRunner invokes the external tool-runner. Implemented by
// toolrunner.Client; tests substitute a fake.
type ToolRunner interface {
	Invoke(ctx context.Context, req toolrunner.Request) (*toolrunner.Response, error)
}

// ToolCallService owns the tool call flow: approval request, approval,
// and execution against the tool-runner. Tool output is masked before
// it reaches the journal.
type ToolCallService struct {
	client  *ent.Client
	quota   *quota.Manager
	machine *runstate.Machine
	sched   Scheduler
	runner  ToolRunner
	masker  *masking.Service
	cfg     config.ToolrunnerConfig
}

// NewToolCallService creates a new ToolCallService.
func NewToolCallService(client *ent.Client, q *quota.Manager, machine *runstate.Machine, sched Scheduler, runner ToolRunner, masker *masking.Service, cfg config.ToolrunnerConfig) *ToolCallService {
	return &ToolCallService{client: client, quota: q, machine: machine, sched: sched, runner: runner, masker: masker, cfg: cfg}
}

// RequestApproval records a tool call step on the run. When approval
// is required the run parks in WAITING_FOR_APPROVAL and the approvals
// stream is notified; otherwise the call is created pre-approved and
// executed once the transaction commits.
func (s *ToolCallService) RequestApproval(ctx context.Context, runID, toolName string, args map[string]any, requiresApproval bool) (*ent.ToolCall, error) {
	var tc *ent.ToolCall
	err := journal.WithTx(ctx, s.client, func(tx *ent.Tx, hooks *journal.Hooks) error {
		run, err := journal.LockRun(ctx, tx, runID)
		if err != nil {
			return err
		}
		switch run.Status {
		case agentrun.StatusPending, agentrun.StatusRunning, agentrun.StatusWaitingForApproval:
		default:
			return NewValidationError("run_id",
				fmt.Sprintf("cannot request a tool call in status %s", run.Status))
		}

		def, err := tx.ToolDefinition.Query().
			Where(
				tooldefinition.WorkspaceIDEQ(run.WorkspaceID),
				tooldefinition.NameEQ(toolName),
			).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return NewValidationError("tool_name", "no such tool in workspace")
			}
			return fmt.Errorf("query tool definition: %w", err)
		}
		if err := validateToolArgs(def, args); err != nil {
			return err
		}

		step, run, err := journal.AppendStep(ctx, tx, run, agentstep.KindToolCall, map[string]any{
			"tool_name": toolName,
			"args":      args,
		})
		if err != nil {
			return err
		}

		status := toolcall.StatusPending
		if !requiresApproval {
			status = toolcall.StatusApproved
		}
		tc, err = tx.ToolCall.Create().
			SetID(uuid.New().String()).
			SetRunID(run.ID).
			SetStepID(step.ID).
			SetToolName(toolName).
			SetArgs(args).
			SetRiskLevel(toolcall.RiskLevel(def.DefaultRiskLevel)).
			SetRequiresApproval(requiresApproval).
			SetStatus(status).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create tool call: %w", err)
		}

		eventOpts := []journal.EventOption{}
		if requiresApproval {
			eventOpts = append(eventOpts, journal.WithApprovalsCopy())
		}
		if _, err := journal.AppendEvent(ctx, tx, run, events.EventToolCallRequested, map[string]any{
			"tool_call_id":      tc.ID,
			"tool_name":         toolName,
			"requires_approval": requiresApproval,
			"risk_level":        string(def.DefaultRiskLevel),
		}, eventOpts...); err != nil {
			return err
		}

		if requiresApproval {
			if _, err := s.machine.Transition(ctx, tx, hooks, run, agentrun.StatusWaitingForApproval); err != nil {
				return err
			}
		} else {
			tcID := tc.ID
			hooks.OnCommit(func() {
				go func() {
					if err := s.Execute(context.WithoutCancel(ctx), tcID); err != nil {
						slog.Warn("Tool call execution failed", "tool_call_id", tcID, "error", err)
					}
				}()
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tc, nil
}

// Approve marks a pending tool call approved on behalf of user, moves
// the run back to RUNNING and kicks off execution after commit.
func (s *ToolCallService) Approve(ctx context.Context, toolCallID, userID string) (*ent.ToolCall, error) {
	existing, err := s.client.ToolCall.Get(ctx, toolCallID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get tool call: %w", err)
	}
	run, err := s.client.AgentRun.Get(ctx, existing.RunID)
	if err != nil {
		return nil, fmt.Errorf("get run: %w", err)
	}
	m, err := RequireMember(ctx, s.client, run.WorkspaceID, userID, "approve tool call")
	if err != nil {
		return nil, err
	}
	if !CanApprove(m.Role) {
		return nil, NewPermissionError(userID, run.WorkspaceID, "approve tool call")
	}

	var tc *ent.ToolCall
	err = journal.WithTx(ctx, s.client, func(tx *ent.Tx, hooks *journal.Hooks) error {
		lockedRun, err := journal.LockRun(ctx, tx, run.ID)
		if err != nil {
			return err
		}
		tc, err = tx.ToolCall.Query().
			Where(toolcall.IDEQ(toolCallID)).
			ForUpdate().
			Only(ctx)
		if err != nil {
			return fmt.Errorf("lock tool call: %w", err)
		}
		if !tc.RequiresApproval {
			return NewValidationError("tool_call_id", "tool call does not require approval")
		}
		if tc.Status != toolcall.StatusPending {
			return ErrAlreadyActedOn
		}

		now := time.Now().UTC()
		tc, err = tx.ToolCall.UpdateOneID(tc.ID).
			SetStatus(toolcall.StatusApproved).
			SetApprovedBy(userID).
			SetApprovedAt(now).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("approve tool call: %w", err)
		}

		if _, err := journal.AppendEvent(ctx, tx, lockedRun, events.EventToolCallApproved, map[string]any{
			"tool_call_id": tc.ID,
			"tool_name":    tc.ToolName,
			"status":       "APPROVED",
			"approved_by":  userID,
		}, journal.WithApprovalsCopy(), journal.WithUser(userID)); err != nil {
			return err
		}

		if _, err := s.machine.Transition(ctx, tx, hooks, lockedRun, agentrun.StatusRunning); err != nil {
			return err
		}

		if err := recordAction(ctx, tx, lockedRun.WorkspaceID, userID, "tool_call_approved", "tool_call", tc.ID, map[string]any{
			"tool_name": tc.ToolName,
		}); err != nil {
			return err
		}

		runID := lockedRun.ID
		tcID := tc.ID
		hooks.OnCommit(func() {
			s.sched.Enqueue(runID, 0)
			go func() {
				if err := s.Execute(context.WithoutCancel(ctx), tcID); err != nil {
					slog.Warn("Tool call execution failed", "tool_call_id", tcID, "error", err)
				}
			}()
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tc, nil
}

// Execute runs an approved tool call against the tool-runner and
// records the result. No run row lock is held while the HTTP call is
// in flight. Results arriving after the run turned terminal are
// dropped.
func (s *ToolCallService) Execute(ctx context.Context, toolCallID string) error {
	tc, err := s.client.ToolCall.Get(ctx, toolCallID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("get tool call: %w", err)
	}
	switch tc.Status {
	case toolcall.StatusApproved, toolcall.StatusRunning:
	default:
		return NewValidationError("tool_call_id",
			fmt.Sprintf("tool call in status %s is not executable", tc.Status))
	}

	run, err := s.client.AgentRun.Get(ctx, tc.RunID)
	if err != nil {
		return fmt.Errorf("get run: %w", err)
	}

	def, err := s.client.ToolDefinition.Query().
		Where(
			tooldefinition.WorkspaceIDEQ(run.WorkspaceID),
			tooldefinition.NameEQ(tc.ToolName),
			tooldefinition.Enabled(true),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return NewValidationError("tool_name", "tool is not enabled in workspace")
		}
		return fmt.Errorf("query tool definition: %w", err)
	}

	preApproved := !tc.RequiresApproval
	slotsHeld := false
	if !preApproved {
		if err := s.quota.AcquireConcurrency(ctx, quota.ConcurrentToolCallsWS, run.WorkspaceID, tc.ID); err != nil {
			return err
		}
		if err := s.quota.AcquireConcurrency(ctx, quota.ConcurrentToolCallsRun, run.ID, tc.ID); err != nil {
			_ = s.quota.ReleaseConcurrency(ctx, quota.ConcurrentToolCallsWS, run.WorkspaceID, tc.ID)
			return err
		}
		slotsHeld = true
	}
	defer func() {
		if slotsHeld {
			releaseCtx := context.WithoutCancel(ctx)
			_ = s.quota.ReleaseConcurrency(releaseCtx, quota.ConcurrentToolCallsWS, run.WorkspaceID, tc.ID)
			_ = s.quota.ReleaseConcurrency(releaseCtx, quota.ConcurrentToolCallsRun, run.ID, tc.ID)
		}
	}()

	started := time.Now().UTC()
	if _, err := s.client.ToolCall.UpdateOneID(tc.ID).
		SetStatus(toolcall.StatusRunning).
		SetStartedAt(started).
		Save(ctx); err != nil {
		return fmt.Errorf("mark tool call running: %w", err)
	}

	resp, err := s.runner.Invoke(ctx, toolrunner.Request{
		RequestID:   tc.ID,
		WorkspaceID: run.WorkspaceID,
		RunID:       run.ID,
		ToolName:    tc.ToolName,
		Args:        tc.Args,
		Policy: toolrunner.Policy{
			RiskLevel:        string(tc.RiskLevel),
			ToolDefinitionID: def.ID,
			RequiresApproval: tc.RequiresApproval,
		},
		Limits: toolrunner.Limits{
			TimeoutS:       s.cfg.DefaultTimeoutSeconds,
			MaxOutputBytes: s.cfg.MaxOutputBytes,
		},
	})
	if err != nil {
		return err
	}

	return journal.WithTx(ctx, s.client, func(tx *ent.Tx, hooks *journal.Hooks) error {
		lockedRun, err := journal.LockRun(ctx, tx, run.ID)
		if err != nil {
			return err
		}
		if runstate.IsTerminal(lockedRun.Status) {
			slog.Info("Dropping tool result for terminal run",
				"run_id", lockedRun.ID, "tool_call_id", tc.ID)
			return nil
		}

		status := toolcall.StatusSucceeded
		if resp.Status != toolrunner.StatusCompleted {
			status = toolcall.StatusFailed
		}
		upd := tx.ToolCall.UpdateOneID(tc.ID).
			SetStatus(status).
			SetStdout(s.masker.MaskString(resp.Stdout)).
			SetStderr(s.masker.MaskString(resp.Stderr)).
			SetEndedAt(time.Now().UTC())
		if resp.ExitCode != nil {
			upd.SetExitCode(*resp.ExitCode)
		}
		if resp.Result != nil {
			upd.SetResult(s.masker.MaskResult(resp.Result))
		}
		if _, err := upd.Save(ctx); err != nil {
			return fmt.Errorf("record tool call result: %w", err)
		}

		payload := map[string]any{
			"tool_call_id": tc.ID,
			"tool_name":    tc.ToolName,
			"status":       string(status),
			"duration_ms":  resp.DurationMs,
		}
		if resp.ExitCode != nil {
			payload["exit_code"] = *resp.ExitCode
		}
		if _, err := journal.AppendEvent(ctx, tx, lockedRun, events.EventToolCallCompleted, payload); err != nil {
			return err
		}

		runID := lockedRun.ID
		hooks.OnCommit(func() { s.sched.Enqueue(runID, 0) })
		return nil
	})
}

// validateToolArgs checks args against the tool definition's JSON
// schema, when one is declared.
func validateToolArgs(def *ent.ToolDefinition, args map[string]any) error {
	if len(def.ArgsSchema) == 0 {
		return nil
	}

	compiler := jsonschema.NewCompiler()
	url := "mem://" + def.ID + ".json"
	if err := compiler.AddResource(url, any(def.ArgsSchema)); err != nil {
		return fmt.Errorf("load args schema for tool %s: %w", def.Name, err)
	}
	sch, err := compiler.Compile(url)
	if err != nil {
		return fmt.Errorf("compile args schema for tool %s: %w", def.Name, err)
	}

	var doc any = map[string]any(args)
	if args == nil {
		doc = map[string]any{}
	}
	if err := sch.Validate(doc); err != nil {
		return NewValidationError("args", err.Error())
	}
	return nil
}
