package executor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/agentmaestro/agentmaestro/ent"
	"github.com/agentmaestro/agentmaestro/ent/agentrun"
	"github.com/agentmaestro/agentmaestro/pkg/journal"
	"github.com/agentmaestro/agentmaestro/pkg/runstate"
	"github.com/agentmaestro/agentmaestro/pkg/services"
)

// Recovery is the periodic self-healing sweep: stale leases are
// reclaimed, parents whose children all finished are resumed. All pods
// run it independently; every operation is idempotent.
type Recovery struct {
	client  *ent.Client
	machine *runstate.Machine
	sched   services.Scheduler
	lease   time.Duration
}

// NewRecovery creates a recovery sweep.
func NewRecovery(client *ent.Client, machine *runstate.Machine, sched services.Scheduler, lease time.Duration) *Recovery {
	return &Recovery{client: client, machine: machine, sched: sched, lease: lease}
}

// Run executes the sweep every interval until ctx or stopCh signals.
// One sweep runs immediately at startup to clean up after crashed
// pods.
func (r *Recovery) Run(ctx context.Context, stopCh <-chan struct{}, interval time.Duration) {
	if err := r.Sweep(ctx); err != nil {
		slog.Error("Startup recovery sweep failed", "error", err)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-stopCh:
			return
		case <-ticker.C:
			if err := r.Sweep(ctx); err != nil {
				slog.Error("Recovery sweep failed", "error", err)
			}
		}
	}
}

// Sweep runs both recovery passes once.
func (r *Recovery) Sweep(ctx context.Context) error {
	if err := r.reclaimStaleLeases(ctx); err != nil {
		return err
	}
	return r.resumeWaitingParents(ctx)
}

// reclaimStaleLeases clears expired leases and enqueues a tick for
// each reclaimed run.
func (r *Recovery) reclaimStaleLeases(ctx context.Context) error {
	now := time.Now().UTC()

	stale, err := r.client.AgentRun.Query().
		Where(
			agentrun.LockedAtNotNil(),
			agentrun.Or(
				agentrun.LockExpiresAtLTE(now),
				agentrun.LockedAtLTE(now.Add(-r.lease)),
			),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query stale leases: %w", err)
	}

	for _, run := range stale {
		if err := r.reclaimOne(ctx, run.ID); err != nil {
			slog.Error("Failed to reclaim stale lease", "run_id", run.ID, "error", err)
			continue
		}
		slog.Warn("Reclaimed stale lease", "run_id", run.ID)
		r.sched.Enqueue(run.ID, 0)
	}
	return nil
}

func (r *Recovery) reclaimOne(ctx context.Context, runID string) error {
	return journal.WithTx(ctx, r.client, func(tx *ent.Tx, _ *journal.Hooks) error {
		run, err := journal.LockRunNoWait(ctx, tx, runID)
		if err != nil {
			return err
		}
		now := time.Now().UTC()
		expired := run.LockExpiresAt != nil && !now.Before(*run.LockExpiresAt) ||
			run.LockedAt != nil && now.Sub(*run.LockedAt) >= r.lease
		if run.LockedAt == nil || !expired {
			return nil // lease released or renewed since the scan
		}
		return tx.AgentRun.UpdateOneID(run.ID).
			ClearLockedBy().
			ClearLockedAt().
			ClearLockExpiresAt().
			Exec(ctx)
	})
}

// resumeWaitingParents moves WAITING_FOR_SUBRUN runs whose children
// are all terminal back to RUNNING. This catches parents whose child
// completion notification was lost.
func (r *Recovery) resumeWaitingParents(ctx context.Context) error {
	waiting, err := r.client.AgentRun.Query().
		Where(agentrun.StatusEQ(agentrun.StatusWaitingForSubrun)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query waiting parents: %w", err)
	}

	for _, parent := range waiting {
		live, err := r.client.AgentRun.Query().
			Where(
				agentrun.ParentRunIDEQ(parent.ID),
				agentrun.StatusNotIn(
					agentrun.StatusCompleted,
					agentrun.StatusFailed,
					agentrun.StatusCanceled,
				),
			).
			Count(ctx)
		if err != nil {
			return fmt.Errorf("count live children of %s: %w", parent.ID, err)
		}
		if live > 0 {
			continue
		}

		if err := r.resumeOne(ctx, parent.ID); err != nil {
			slog.Error("Failed to resume waiting parent", "run_id", parent.ID, "error", err)
		}
	}
	return nil
}

func (r *Recovery) resumeOne(ctx context.Context, runID string) error {
	return journal.WithTx(ctx, r.client, func(tx *ent.Tx, hooks *journal.Hooks) error {
		run, err := journal.LockRun(ctx, tx, runID)
		if err != nil {
			return err
		}
		if run.Status != agentrun.StatusWaitingForSubrun {
			return nil
		}
		if _, err := r.machine.Transition(ctx, tx, hooks, run, agentrun.StatusRunning); err != nil {
			return err
		}
		slog.Info("Resumed parent with no live children", "run_id", runID)
		id := run.ID
		hooks.OnCommit(func() { r.sched.Enqueue(id, 0) })
		return nil
	})
}
