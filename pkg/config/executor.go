package config

import (
	"fmt"
	"time"
)

// ExecutorConfig controls the lease + tick executor and recovery sweeper.
type ExecutorConfig struct {
	// WorkerCount is the number of tick worker goroutines per replica.
	WorkerCount int

	// LeaseSeconds is how long a worker lease on a run remains valid.
	// Expired leases may be reclaimed by any worker.
	LeaseSeconds int

	// RetryBackoffSeconds is the delay before re-enqueueing a tick that
	// failed with a transient error (lease contention, tick-rate overflow).
	RetryBackoffSeconds int

	// MaxPendingSubrunsPerParent caps non-terminal children per parent run.
	MaxPendingSubrunsPerParent int

	// RecoveryInterval is how often the recovery sweeper runs
	// (stale-lease reclaim, waiting-parent reconciliation).
	RecoveryInterval time.Duration

	// QueueCapacity bounds the in-process tick queue.
	QueueCapacity int

	// GracefulShutdownTimeout is the max time to wait for in-flight ticks
	// during shutdown.
	GracefulShutdownTimeout time.Duration
}

// LoadExecutorConfig reads executor knobs from the environment.
func LoadExecutorConfig() *ExecutorConfig {
	return &ExecutorConfig{
		WorkerCount:                envInt("EXECUTOR_WORKER_COUNT", 5),
		LeaseSeconds:               envInt("LEASE_SECONDS", 20),
		RetryBackoffSeconds:        envInt("RETRY_BACKOFF_SECONDS", 5),
		MaxPendingSubrunsPerParent: envInt("MAX_PENDING_SUBRUNS_PER_PARENT", 4),
		RecoveryInterval:           envDuration("RECOVERY_INTERVAL", 30*time.Second),
		QueueCapacity:              envInt("EXECUTOR_QUEUE_CAPACITY", 1024),
		GracefulShutdownTimeout:    envDuration("EXECUTOR_SHUTDOWN_TIMEOUT", 30*time.Second),
	}
}

// Lease returns the lease duration.
func (c *ExecutorConfig) Lease() time.Duration {
	return time.Duration(c.LeaseSeconds) * time.Second
}

// RetryBackoff returns the transient-retry backoff duration.
func (c *ExecutorConfig) RetryBackoff() time.Duration {
	return time.Duration(c.RetryBackoffSeconds) * time.Second
}

// Validate checks executor configuration invariants.
func (c *ExecutorConfig) Validate() error {
	if c.WorkerCount < 1 {
		return fmt.Errorf("worker count must be at least 1, got %d", c.WorkerCount)
	}
	if c.LeaseSeconds < 1 {
		return fmt.Errorf("lease seconds must be at least 1, got %d", c.LeaseSeconds)
	}
	if c.MaxPendingSubrunsPerParent < 1 {
		return fmt.Errorf("max pending subruns per parent must be at least 1, got %d", c.MaxPendingSubrunsPerParent)
	}
	return nil
}
