// Package executor advances runs tick by tick. Each tick claims the
// run row with FOR UPDATE NOWAIT, takes a worker lease, performs at
// most one unit of progress and releases the lease, all in a single
// transaction. Concurrency across workers and pods is resolved
// entirely at the run row.
package executor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/agentmaestro/agentmaestro/ent"
	"github.com/agentmaestro/agentmaestro/ent/agentrun"
	"github.com/agentmaestro/agentmaestro/ent/agentstep"
	"github.com/agentmaestro/agentmaestro/pkg/journal"
	"github.com/agentmaestro/agentmaestro/pkg/quota"
	"github.com/agentmaestro/agentmaestro/pkg/runstate"
	"github.com/agentmaestro/agentmaestro/pkg/services"
)

// expectedCursor maps a dispatchable status to the cursor value a tick
// requires. A mismatch means another tick already did this unit of
// work, so the duplicate no-ops.
var expectedCursor = map[agentrun.Status]int{
	agentrun.StatusPending: 0,
	agentrun.StatusRunning: 1,
}

// Ticker executes single ticks. Safe for concurrent use.
type Ticker struct {
	client   *ent.Client
	quota    *quota.Manager
	machine  *runstate.Machine
	subruns  *services.SubrunService
	workerID string
	lease    time.Duration
}

// NewTicker creates a Ticker identified as workerID in lease fields.
func NewTicker(client *ent.Client, q *quota.Manager, machine *runstate.Machine, subruns *services.SubrunService, workerID string, lease time.Duration) *Ticker {
	return &Ticker{client: client, quota: q, machine: machine, subruns: subruns, workerID: workerID, lease: lease}
}

// Tick advances runID by one unit of work. Returns a transient error
// (lease or quota contention) when the caller should retry with
// backoff; any other error is permanent and the caller marks the run
// FAILED.
func (t *Ticker) Tick(ctx context.Context, runID string) error {
	return journal.WithTx(ctx, t.client, func(tx *ent.Tx, hooks *journal.Hooks) error {
		run, err := journal.LockRunNoWait(ctx, tx, runID)
		if err != nil {
			return err // ErrRunLocked is transient; callers classify
		}

		now := time.Now().UTC()

		// A non-expired lease held by someone else means a competing
		// advance is in flight. Expired leases are reclaimed here; any
		// worker may do so.
		if run.LockedBy != nil && *run.LockedBy != t.workerID && !t.leaseExpired(run, now) {
			return &TransientError{Err: fmt.Errorf("run %s leased by %s", runID, *run.LockedBy)}
		}
		run, err = tx.AgentRun.UpdateOneID(run.ID).
			SetLockedBy(t.workerID).
			SetLockedAt(now).
			SetLockExpiresAt(now.Add(t.lease)).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("claim lease on run %s: %w", runID, err)
		}

		if err := t.quota.ConsumeRate(ctx, quota.RunTick, run.WorkspaceID); err != nil {
			return &TransientError{Err: err}
		}

		if err := t.dispatch(ctx, tx, hooks, run); err != nil {
			return err
		}

		return t.releaseLease(ctx, tx, run.ID)
	})
}

func (t *Ticker) leaseExpired(run *ent.AgentRun, now time.Time) bool {
	if run.LockExpiresAt != nil && !now.Before(*run.LockExpiresAt) {
		return true
	}
	return run.LockedAt != nil && now.Sub(*run.LockedAt) >= t.lease
}

func (t *Ticker) releaseLease(ctx context.Context, tx *ent.Tx, runID string) error {
	_, err := tx.AgentRun.UpdateOneID(runID).
		ClearLockedBy().
		ClearLockedAt().
		ClearLockExpiresAt().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("release lease on run %s: %w", runID, err)
	}
	return nil
}

// dispatch performs the status-specific unit of work. Runs that are
// terminal, paused, cancelled or waiting take no action; their lease
// is simply released.
func (t *Ticker) dispatch(ctx context.Context, tx *ent.Tx, hooks *journal.Hooks, run *ent.AgentRun) error {
	if runstate.IsTerminal(run.Status) || runstate.IsWaiting(run.Status) ||
		run.Status == agentrun.StatusPaused || run.CancelRequested {
		return nil
	}

	if want, ok := expectedCursor[run.Status]; !ok || run.CurrentStepIndex != want {
		// A duplicate tick; the unit of work already happened.
		return nil
	}

	switch run.Status {
	case agentrun.StatusPending:
		run, err := t.machine.Transition(ctx, tx, hooks, run, agentrun.StatusRunning)
		if err != nil {
			return err
		}
		_, _, err = journal.AppendStep(ctx, tx, run, agentstep.KindModelCall, map[string]any{
			"input_text": run.InputText,
		})
		return err

	case agentrun.StatusRunning:
		_, run, err := journal.AppendStep(ctx, tx, run, agentstep.KindObservation, map[string]any{
			"outcome": "completed",
		})
		if err != nil {
			return err
		}
		if _, err := t.machine.Transition(ctx, tx, hooks, run, agentrun.StatusCompleted); err != nil {
			return err
		}
		if run.ParentRunID != nil {
			childID := run.ID
			hooks.OnCommit(func() {
				if err := t.subruns.CompleteSubrun(context.WithoutCancel(ctx), childID); err != nil {
					logCompleteFailure(childID, err)
				}
			})
		}
		return nil
	}
	return nil
}

func logCompleteFailure(childID string, err error) {
	slog.Warn("Subrun completion failed after tick",
		"child_run_id", childID, "error", err)
}
