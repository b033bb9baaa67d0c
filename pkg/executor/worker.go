package executor

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/agentmaestro/agentmaestro/ent"
	"github.com/agentmaestro/agentmaestro/ent/agentrun"
	"github.com/agentmaestro/agentmaestro/pkg/journal"
	"github.com/agentmaestro/agentmaestro/pkg/runstate"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// WorkerHealth is one worker's health snapshot.
type WorkerHealth struct {
	ID             string       `json:"id"`
	Status         WorkerStatus `json:"status"`
	CurrentRunID   string       `json:"current_run_id,omitempty"`
	TicksProcessed int          `json:"ticks_processed"`
	LastActivity   time.Time    `json:"last_activity"`
}

// Worker consumes tick tasks from the pool queue.
type Worker struct {
	id      string
	pool    *Pool
	ticker  *Ticker
	backoff time.Duration

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	mu             sync.RWMutex
	status         WorkerStatus
	currentRunID   string
	ticksProcessed int
	lastActivity   time.Time
}

// NewWorker creates a tick worker.
func NewWorker(id string, pool *Pool, ticker *Ticker, backoff time.Duration) *Worker {
	return &Worker{
		id:           id,
		pool:         pool,
		ticker:       ticker,
		backoff:      backoff,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for the current tick to
// finish. Safe to call multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health snapshot.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:             w.id,
		Status:         w.status,
		CurrentRunID:   w.currentRunID,
		TicksProcessed: w.ticksProcessed,
		LastActivity:   w.lastActivity,
	}
}

func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id)
	log.Info("Tick worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Tick worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, tick worker shutting down")
			return
		case t := <-w.pool.queue:
			w.setWorking(t.runID)
			w.process(ctx, t)
			w.setIdle()
		}
	}
}

// process runs one tick and classifies its outcome: transient errors
// requeue with backoff, anything else fails the run permanently.
func (w *Worker) process(ctx context.Context, t task) {
	err := w.ticker.Tick(ctx, t.runID)
	if err == nil {
		return
	}

	if IsTransient(err) {
		slog.Debug("Tick contention, retrying",
			"worker_id", w.id, "run_id", t.runID, "backoff", w.backoff, "error", err)
		w.pool.Enqueue(t.runID, w.backoff)
		return
	}

	slog.Error("Tick failed permanently",
		"worker_id", w.id, "run_id", t.runID, "error", err)
	if failErr := w.failRun(ctx, t.runID, err); failErr != nil {
		slog.Error("Failed to mark run FAILED",
			"worker_id", w.id, "run_id", t.runID, "error", failErr)
	}
}

// failRun marks a run FAILED with error_summary set to the tick error.
// Already-terminal runs are left untouched.
func (w *Worker) failRun(ctx context.Context, runID string, cause error) error {
	return journal.WithTx(ctx, w.ticker.client, func(tx *ent.Tx, hooks *journal.Hooks) error {
		run, err := journal.LockRun(ctx, tx, runID)
		if err != nil {
			return err
		}
		if runstate.IsTerminal(run.Status) {
			return nil
		}
		run, err = tx.AgentRun.UpdateOneID(run.ID).
			SetErrorSummary(fmt.Sprintf("%v", cause)).
			ClearLockedBy().
			ClearLockedAt().
			ClearLockExpiresAt().
			Save(ctx)
		if err != nil {
			return fmt.Errorf("record error summary: %w", err)
		}
		if _, err := w.ticker.machine.Transition(ctx, tx, hooks, run, agentrun.StatusFailed); err != nil {
			return err
		}
		if run.ParentRunID != nil {
			childID := run.ID
			hooks.OnCommit(func() {
				if err := w.ticker.subruns.CompleteSubrun(context.WithoutCancel(ctx), childID); err != nil {
					logCompleteFailure(childID, err)
				}
			})
		}
		return nil
	})
}

func (w *Worker) setWorking(runID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = WorkerStatusWorking
	w.currentRunID = runID
	w.lastActivity = time.Now()
}

func (w *Worker) setIdle() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = WorkerStatusIdle
	w.currentRunID = ""
	w.ticksProcessed++
	w.lastActivity = time.Now()
}
