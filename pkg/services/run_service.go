package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/agentmaestro/agentmaestro/ent"
	"github.com/agentmaestro/agentmaestro/ent/agent"
	"github.com/agentmaestro/agentmaestro/ent/agentrun"
	"github.com/agentmaestro/agentmaestro/pkg/events"
	"github.com/agentmaestro/agentmaestro/pkg/journal"
	"github.com/agentmaestro/agentmaestro/pkg/models"
	"github.com/agentmaestro/agentmaestro/pkg/quota"
	"github.com/agentmaestro/agentmaestro/pkg/runstate"
)

// Scheduler enqueues run ticks for asynchronous execution. Implemented
// by the executor pool; a recording fake stands in for it in tests.
type Scheduler interface {
	// Enqueue schedules tick(runID) after the given delay.
	Enqueue(runID string, delay time.Duration)
	// Revoke cancels a previously scheduled task, if still pending.
	Revoke(taskID string)
}

// terminalStatuses are the statuses with no outgoing edges.
var terminalStatuses = []agentrun.Status{
	agentrun.StatusCompleted,
	agentrun.StatusFailed,
	agentrun.StatusCanceled,
}

// SubrunCompleter drives a parent's failure/join policy after one of
// its children reaches a terminal status. Implemented by SubrunService.
type SubrunCompleter interface {
	CompleteSubrun(ctx context.Context, childRunID string) error
}

// RunService manages run lifecycle: creation, cancellation, pause,
// resume and retry.
type RunService struct {
	client    *ent.Client
	quota     *quota.Manager
	machine   *runstate.Machine
	sched     Scheduler
	completer SubrunCompleter
}

// NewRunService creates a new RunService.
func NewRunService(client *ent.Client, q *quota.Manager, machine *runstate.Machine, sched Scheduler) *RunService {
	return &RunService{client: client, quota: q, machine: machine, sched: sched}
}

// SetCompleter wires the subrun controller. Called once during startup;
// split from the constructor because the two services reference each
// other.
func (s *RunService) SetCompleter(c SubrunCompleter) {
	s.completer = c
}

// CreateRun validates the request, admits it against workspace quotas
// and creates a PENDING run. A tick is enqueued once the transaction
// commits.
func (s *RunService) CreateRun(ctx context.Context, req models.CreateRunRequest, userID string) (*ent.AgentRun, error) {
	if req.WorkspaceID == "" {
		return nil, NewValidationError("workspace_id", "required")
	}
	if req.AgentID == "" {
		return nil, NewValidationError("agent_id", "required")
	}
	channel := agentrun.ChannelAPI
	if req.Channel != "" {
		channel = agentrun.Channel(req.Channel)
		if err := agentrun.ChannelValidator(channel); err != nil {
			return nil, NewValidationError("channel", "must be one of dashboard, telegram, api")
		}
	}

	if _, err := RequireOperator(ctx, s.client, req.WorkspaceID, userID, "create run"); err != nil {
		return nil, err
	}

	ag, err := s.client.Agent.Query().
		Where(agent.IDEQ(req.AgentID), agent.WorkspaceIDEQ(req.WorkspaceID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NewValidationError("agent_id", "no such agent in workspace")
		}
		return nil, fmt.Errorf("query agent: %w", err)
	}

	if err := s.quota.ConsumeRate(ctx, quota.RunCreation, req.WorkspaceID); err != nil {
		return nil, err
	}

	runID := uuid.New().String()
	if err := s.quota.AcquireRunSlots(ctx, req.WorkspaceID, runID, true); err != nil {
		return nil, err
	}

	var run *ent.AgentRun
	err = journal.WithTx(ctx, s.client, func(tx *ent.Tx, hooks *journal.Hooks) error {
		var err error
		run, err = tx.AgentRun.Create().
			SetID(runID).
			SetWorkspaceID(req.WorkspaceID).
			SetAgentID(ag.ID).
			SetStartedBy(userID).
			SetCorrelationID(uuid.New().String()).
			SetStatus(agentrun.StatusPending).
			SetChannel(channel).
			SetInputText(req.InputText).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create run: %w", err)
		}

		if err := recordAction(ctx, tx, req.WorkspaceID, userID, "run_created", "agent_run", runID, map[string]any{
			"agent_id": ag.ID,
			"channel":  string(channel),
		}); err != nil {
			return err
		}

		hooks.OnCommit(func() { s.sched.Enqueue(runID, 0) })
		return nil
	})
	if err != nil {
		s.quota.ReleaseRunSlots(context.WithoutCancel(ctx), req.WorkspaceID, runID, true)
		return nil, err
	}
	return run, nil
}

// GetRun loads a run by ID.
func (s *RunService) GetRun(ctx context.Context, runID string) (*ent.AgentRun, error) {
	run, err := s.client.AgentRun.Get(ctx, runID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get run: %w", err)
	}
	return run, nil
}

// ListRuns returns a page of a workspace's runs, newest first, with
// the total count. status filters when non-empty.
func (s *RunService) ListRuns(ctx context.Context, workspaceID, status string, limit, offset int) ([]*ent.AgentRun, int, error) {
	q := s.client.AgentRun.Query().Where(agentrun.WorkspaceIDEQ(workspaceID))
	if status != "" {
		st := agentrun.Status(status)
		if err := agentrun.StatusValidator(st); err != nil {
			return nil, 0, NewValidationError("status", "unknown status")
		}
		q = q.Where(agentrun.StatusEQ(st))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count runs: %w", err)
	}

	if limit <= 0 || limit > 100 {
		limit = 50
	}
	runs, err := q.
		Order(ent.Desc(agentrun.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list runs: %w", err)
	}
	return runs, total, nil
}

// Cancel cancels a run and cascades to its non-terminal children.
// userID may be empty for system-initiated cancellation; user cancels
// are role-checked and audited. Cancelling a terminal run is a no-op.
func (s *RunService) Cancel(ctx context.Context, runID, reason, userID string) (*ent.AgentRun, error) {
	existing, err := s.GetRun(ctx, runID)
	if err != nil {
		return nil, err
	}
	if userID != "" {
		if _, err := RequireOperator(ctx, s.client, existing.WorkspaceID, userID, "cancel run"); err != nil {
			return nil, err
		}
	}

	var run *ent.AgentRun
	err = journal.WithTx(ctx, s.client, func(tx *ent.Tx, hooks *journal.Hooks) error {
		locked, err := journal.LockRun(ctx, tx, runID)
		if err != nil {
			return err
		}
		run, err = cancelRunLocked(ctx, tx, hooks, s.machine, s.sched, locked, reason)
		if err != nil {
			return err
		}
		if userID != "" {
			if err := recordAction(ctx, tx, run.WorkspaceID, userID, "run_cancelled", "agent_run", runID, map[string]any{
				"reason": reason,
			}); err != nil {
				return err
			}
		}

		// Drive the parent's failure/join policy after commit.
		if locked.ParentRunID != nil && !runstate.IsTerminal(locked.Status) && s.completer != nil {
			childID := locked.ID
			hooks.OnCommit(func() {
				if err := s.completer.CompleteSubrun(context.WithoutCancel(ctx), childID); err != nil {
					slog.Warn("Failed to notify parent of cancelled child",
						"child_run_id", childID, "error", err)
				}
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return run, nil
}

// Pause moves a RUNNING run to PAUSED.
func (s *RunService) Pause(ctx context.Context, runID, userID string) (*ent.AgentRun, error) {
	return s.userTransition(ctx, runID, userID, agentrun.StatusPaused, "run_paused", nil)
}

// Resume moves a PAUSED run back to RUNNING and schedules a tick.
func (s *RunService) Resume(ctx context.Context, runID, userID string) (*ent.AgentRun, error) {
	return s.userTransition(ctx, runID, userID, agentrun.StatusRunning, "run_resumed", func(hooks *journal.Hooks) {
		hooks.OnCommit(func() { s.sched.Enqueue(runID, 0) })
	})
}

func (s *RunService) userTransition(ctx context.Context, runID, userID string, to agentrun.Status, action string, after func(*journal.Hooks)) (*ent.AgentRun, error) {
	existing, err := s.GetRun(ctx, runID)
	if err != nil {
		return nil, err
	}
	if _, err := RequireOperator(ctx, s.client, existing.WorkspaceID, userID, action); err != nil {
		return nil, err
	}

	var run *ent.AgentRun
	err = journal.WithTx(ctx, s.client, func(tx *ent.Tx, hooks *journal.Hooks) error {
		locked, err := journal.LockRun(ctx, tx, runID)
		if err != nil {
			return err
		}
		run, err = s.machine.Transition(ctx, tx, hooks, locked, to)
		if err != nil {
			return err
		}
		if err := recordAction(ctx, tx, run.WorkspaceID, userID, action, "agent_run", runID, nil); err != nil {
			return err
		}
		if after != nil {
			after(hooks)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return run, nil
}

// Retry starts a fresh run from a FAILED run's inputs. Terminal runs
// are immutable, so retry never mutates the failed run; the new run
// shares its correlation_id for tracing.
func (s *RunService) Retry(ctx context.Context, runID, userID string) (*ent.AgentRun, error) {
	failed, err := s.GetRun(ctx, runID)
	if err != nil {
		return nil, err
	}
	if failed.Status != agentrun.StatusFailed {
		return nil, NewValidationError("run_id", "only failed runs can be retried")
	}
	if _, err := RequireOperator(ctx, s.client, failed.WorkspaceID, userID, "retry run"); err != nil {
		return nil, err
	}

	if err := s.quota.ConsumeRate(ctx, quota.RunCreation, failed.WorkspaceID); err != nil {
		return nil, err
	}
	newID := uuid.New().String()
	if err := s.quota.AcquireRunSlots(ctx, failed.WorkspaceID, newID, true); err != nil {
		return nil, err
	}

	var run *ent.AgentRun
	err = journal.WithTx(ctx, s.client, func(tx *ent.Tx, hooks *journal.Hooks) error {
		var err error
		run, err = tx.AgentRun.Create().
			SetID(newID).
			SetWorkspaceID(failed.WorkspaceID).
			SetAgentID(failed.AgentID).
			SetStartedBy(userID).
			SetCorrelationID(failed.CorrelationID).
			SetStatus(agentrun.StatusPending).
			SetChannel(failed.Channel).
			SetInputText(failed.InputText).
			SetMaxSteps(failed.MaxSteps).
			SetMaxToolCalls(failed.MaxToolCalls).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create retry run: %w", err)
		}
		if err := recordAction(ctx, tx, failed.WorkspaceID, userID, "run_retried", "agent_run", newID, map[string]any{
			"retried_from": failed.ID,
		}); err != nil {
			return err
		}
		hooks.OnCommit(func() { s.sched.Enqueue(newID, 0) })
		return nil
	})
	if err != nil {
		s.quota.ReleaseRunSlots(context.WithoutCancel(ctx), failed.WorkspaceID, newID, true)
		return nil, err
	}
	return run, nil
}

// cancelRunLocked cancels a run the caller has already locked in tx,
// then cascades to all non-terminal children. Terminal runs are a
// no-op. The cascade does not notify the cancelled run's own parent;
// callers decide whether to drive parent policy.
func cancelRunLocked(ctx context.Context, tx *ent.Tx, hooks *journal.Hooks, machine *runstate.Machine, sched Scheduler, run *ent.AgentRun, reason string) (*ent.AgentRun, error) {
	if runstate.IsTerminal(run.Status) {
		return run, nil
	}

	updated, err := tx.AgentRun.UpdateOneID(run.ID).
		SetCancelRequested(true).
		ClearLockedTaskID().
		SetErrorSummary(reason).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("mark run %s cancel requested: %w", run.ID, err)
	}

	if taskID := run.LockedTaskID; taskID != nil && sched != nil {
		id := *taskID
		hooks.OnCommit(func() { sched.Revoke(id) })
	}

	updated, err = machine.Transition(ctx, tx, hooks, updated, agentrun.StatusCanceled)
	if err != nil {
		return nil, err
	}

	if _, err := journal.AppendEvent(ctx, tx, updated, events.EventRunCancelled, map[string]any{
		"reason": reason,
	}); err != nil {
		return nil, err
	}

	children, err := tx.AgentRun.Query().
		Where(
			agentrun.ParentRunIDEQ(run.ID),
			agentrun.StatusNotIn(terminalStatuses...),
		).
		ForUpdate().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("lock children of run %s: %w", run.ID, err)
	}
	for _, child := range children {
		if err := cancelSubrunLocked(ctx, tx, hooks, machine, sched, updated, child, "parent run canceled"); err != nil {
			return nil, err
		}
	}

	return updated, nil
}

// cancelSubrunLocked cancels one locked child and journals the
// subrun_cancelled event on its (locked) parent with the child's
// correlation_id.
func cancelSubrunLocked(ctx context.Context, tx *ent.Tx, hooks *journal.Hooks, machine *runstate.Machine, sched Scheduler, parent *ent.AgentRun, child *ent.AgentRun, reason string) error {
	if _, err := cancelRunLocked(ctx, tx, hooks, machine, sched, child, reason); err != nil {
		return err
	}

	_, err := journal.AppendEvent(ctx, tx, parent, events.EventSubrunCancelled, map[string]any{
		"child_run_id": child.ID,
		"reason":       reason,
	}, journal.WithCorrelationID(child.CorrelationID))
	return err
}
