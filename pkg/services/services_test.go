package services

import (
	"context"
	stdsql "database/sql"
	"sync"
	"testing"
	"time"

	"github.com/agentmaestro/agentmaestro/ent"
	"github.com/agentmaestro/agentmaestro/pkg/config"
	"github.com/agentmaestro/agentmaestro/pkg/masking"
	"github.com/agentmaestro/agentmaestro/pkg/quota"
	"github.com/agentmaestro/agentmaestro/pkg/runstate"
	"github.com/agentmaestro/agentmaestro/pkg/toolrunner"
	testdb "github.com/agentmaestro/agentmaestro/test/database"
)

// fakeScheduler records enqueued ticks and revoked tasks instead of
// running them, so tests can drive the executor explicitly.
type fakeScheduler struct {
	mu       sync.Mutex
	enqueued []string
	revoked  []string
}

func (f *fakeScheduler) Enqueue(runID string, delay time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.enqueued = append(f.enqueued, runID)
}

func (f *fakeScheduler) Revoke(taskID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.revoked = append(f.revoked, taskID)
}

func (f *fakeScheduler) enqueuedRuns() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.enqueued...)
}

func (f *fakeScheduler) enqueueCount(runID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, id := range f.enqueued {
		if id == runID {
			n++
		}
	}
	return n
}

// fakeRunner returns a canned response and signals each invocation on
// a buffered channel, so tests can wait for the post-commit goroutine.
type fakeRunner struct {
	mu      sync.Mutex
	calls   []toolrunner.Request
	resp    toolrunner.Response
	invoked chan struct{}
}

func newFakeRunner(resp toolrunner.Response) *fakeRunner {
	return &fakeRunner{resp: resp, invoked: make(chan struct{}, 16)}
}

func (f *fakeRunner) Invoke(_ context.Context, req toolrunner.Request) (*toolrunner.Response, error) {
	f.mu.Lock()
	f.calls = append(f.calls, req)
	resp := f.resp
	f.mu.Unlock()
	f.invoked <- struct{}{}

	resp.RequestID = req.RequestID
	return &resp, nil
}

func (f *fakeRunner) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeRunner) lastCall() toolrunner.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[len(f.calls)-1]
}

// testEnv bundles a database-backed service stack with recording
// fakes for the scheduler and tool-runner.
type testEnv struct {
	client    *ent.Client
	db        *stdsql.DB
	quota     *quota.Manager
	machine   *runstate.Machine
	sched     *fakeScheduler
	runner    *fakeRunner
	runs      *RunService
	subruns   *SubrunService
	toolcalls *ToolCallService
	snapshots *SnapshotService
}

// newTestEnv spins up the full service stack against a fresh schema.
// Rate limits are bypassed so tests stay deterministic; concurrency
// caps remain in force.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dbc := testdb.NewTestClient(t)
	q := quota.NewManager(quota.NewMemoryKV(), "test", true)
	machine := runstate.NewMachine(q)
	sched := &fakeScheduler{}
	exitCode := 0
	runner := newFakeRunner(toolrunner.Response{
		Status:   toolrunner.StatusCompleted,
		ExitCode: &exitCode,
		Stdout:   "tool output",
		Result:   map[string]any{"ok": true},
	})

	runs := NewRunService(dbc.Client, q, machine, sched)
	subruns := NewSubrunService(dbc.Client, q, machine, sched, 5)
	runs.SetCompleter(subruns)
	toolcalls := NewToolCallService(dbc.Client, q, machine, sched, runner, masking.NewService(), config.ToolrunnerConfig{
		DefaultTimeoutSeconds: 30,
		MaxOutputBytes:        1 << 20,
	})
	snapshots := NewSnapshotService(dbc.Client, q)

	return &testEnv{
		client:    dbc.Client,
		db:        dbc.DB(),
		quota:     q,
		machine:   machine,
		sched:     sched,
		runner:    runner,
		runs:      runs,
		subruns:   subruns,
		toolcalls: toolcalls,
		snapshots: snapshots,
	}
}
