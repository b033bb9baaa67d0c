package executor

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/agentmaestro/agentmaestro/ent"
	"github.com/agentmaestro/agentmaestro/pkg/config"
	"github.com/agentmaestro/agentmaestro/pkg/quota"
	"github.com/agentmaestro/agentmaestro/pkg/runstate"
	"github.com/agentmaestro/agentmaestro/pkg/services"
)

// task is one scheduled tick of one run.
type task struct {
	runID string
}

// Pool manages tick workers and the shared task queue. It implements
// services.Scheduler: services enqueue ticks, workers consume them.
type Pool struct {
	podID   string
	client  *ent.Client
	cfg     *config.ExecutorConfig
	quota   *quota.Manager
	machine *runstate.Machine
	subruns *services.SubrunService

	queue   chan task
	workers []*Worker

	// pending task handles, keyed by task ID, for revocation of
	// not-yet-fired delayed ticks.
	pending map[string]*time.Timer
	mu      sync.Mutex

	recovery *Recovery
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	started  bool
}

// NewPool creates a worker pool. Call SetSubruns before Start; the
// subrun controller is wired late because it also schedules through
// the pool.
func NewPool(podID string, client *ent.Client, cfg *config.ExecutorConfig, q *quota.Manager, machine *runstate.Machine) *Pool {
	return &Pool{
		podID:   podID,
		client:  client,
		cfg:     cfg,
		quota:   q,
		machine: machine,
		queue:   make(chan task, cfg.QueueCapacity),
		pending: make(map[string]*time.Timer),
		stopCh:  make(chan struct{}),
	}
}

// SetSubruns wires the subrun controller used by ticks that complete
// child runs.
func (p *Pool) SetSubruns(s *services.SubrunService) {
	p.subruns = s
}

// SetRecovery wires the periodic recovery sweep.
func (p *Pool) SetRecovery(r *Recovery) {
	p.recovery = r
}

// Start spawns the workers and the recovery loop. Safe to call once.
func (p *Pool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	if p.subruns == nil {
		return fmt.Errorf("worker pool started without a subrun controller")
	}
	p.started = true

	slog.Info("Starting tick worker pool",
		"pod_id", p.podID, "worker_count", p.cfg.WorkerCount)

	for i := 0; i < p.cfg.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.podID, i)
		ticker := NewTicker(p.client, p.quota, p.machine, p.subruns, workerID, p.cfg.Lease())
		w := NewWorker(workerID, p, ticker, p.cfg.RetryBackoff())
		p.workers = append(p.workers, w)
		w.Start(ctx)
	}

	if p.recovery != nil {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			p.recovery.Run(ctx, p.stopCh, p.cfg.RecoveryInterval)
		}()
	}

	return nil
}

// Stop drains the pool gracefully: workers finish their current tick.
func (p *Pool) Stop() {
	slog.Info("Stopping tick worker pool")

	p.mu.Lock()
	for id, timer := range p.pending {
		timer.Stop()
		delete(p.pending, id)
	}
	p.mu.Unlock()

	for _, w := range p.workers {
		w.Stop()
	}
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	slog.Info("Tick worker pool stopped")
}

// Enqueue schedules tick(runID) after delay. The task handle is
// stamped on the run row so a later cancel can revoke the pending
// tick.
func (p *Pool) Enqueue(runID string, delay time.Duration) {
	taskID := uuid.New().String()

	// Best-effort handle stamp; revocation degrades gracefully when
	// this write loses a race with the tick itself.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := p.client.AgentRun.UpdateOneID(runID).
			SetLockedTaskID(taskID).
			Exec(ctx); err != nil && !ent.IsNotFound(err) {
			slog.Debug("Failed to stamp task handle", "run_id", runID, "error", err)
		}
	}()

	fire := func() {
		p.mu.Lock()
		delete(p.pending, taskID)
		p.mu.Unlock()
		select {
		case p.queue <- task{runID: runID}:
		default:
			slog.Warn("Tick queue full, retrying later", "run_id", runID)
			p.Enqueue(runID, p.cfg.RetryBackoff())
		}
	}

	p.mu.Lock()
	p.pending[taskID] = time.AfterFunc(delay, fire)
	p.mu.Unlock()
}

// Revoke cancels a pending delayed tick by its task handle. Ticks that
// already fired are unaffected; the run-level cancel flag covers them.
func (p *Pool) Revoke(taskID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if timer, ok := p.pending[taskID]; ok {
		timer.Stop()
		delete(p.pending, taskID)
	}
}

// Health reports pool-level health for the health endpoint.
type Health struct {
	PodID      string         `json:"pod_id"`
	QueueDepth int            `json:"queue_depth"`
	Workers    []WorkerHealth `json:"workers"`
}

// Health returns a point-in-time health snapshot.
func (p *Pool) Health() Health {
	h := Health{
		PodID:      p.podID,
		QueueDepth: len(p.queue),
		Workers:    make([]WorkerHealth, 0, len(p.workers)),
	}
	for _, w := range p.workers {
		h.Workers = append(h.Workers, w.Health())
	}
	return h
}
