package quota

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// concurrencyTTL bounds how long a concurrency token set survives without
// any acquire refreshing it. Protects against leaked tokens after a crash
// that skipped release; releases themselves are idempotent.
const concurrencyTTL = time.Hour

// Manager admits or rejects attempts to consume named resources. It is
// the only component that mutates quota keys in the shared KV.
type Manager struct {
	kv         KV
	prefix     string
	bypassRate bool
}

// NewManager creates a quota manager.
// bypassRate disables RATE enforcement only; concurrency limits always hold.
func NewManager(kv KV, prefix string, bypassRate bool) *Manager {
	return &Manager{kv: kv, prefix: prefix, bypassRate: bypassRate}
}

// rateKey: <prefix>:<scope>:<LIMIT_NAME>
func (m *Manager) rateKey(limit Limit, scope string) string {
	return fmt.Sprintf("%s:%s:%s", m.prefix, scope, limit.Name)
}

// concKey: <prefix>:concurrent:<scope>:<LIMIT_NAME>
func (m *Manager) concKey(limit Limit, scope string) string {
	return fmt.Sprintf("%s:concurrent:%s:%s", m.prefix, scope, limit.Name)
}

// ConsumeRate consumes one request against a RATE limit scoped to the
// given workspace/run/user ID. Returns LimitExceededError on overflow.
func (m *Manager) ConsumeRate(ctx context.Context, limit Limit, scope string) error {
	if limit.Kind != KindRate {
		return fmt.Errorf("limit %s is not a rate limit", limit.Name)
	}
	if m.bypassRate {
		return nil
	}

	key := m.rateKey(limit, scope)
	window := time.Duration(limit.WindowSeconds) * time.Second
	count, err := m.kv.IncrWithExpire(ctx, key, window)
	if err != nil {
		return err
	}
	if count > limit.Cap() {
		return &LimitExceededError{Limit: limit, Key: key}
	}
	return nil
}

// AcquireConcurrency takes one token in a CONCURRENCY limit's set,
// identified by the caller-provided member string. Acquiring a member
// already held is a no-op success.
func (m *Manager) AcquireConcurrency(ctx context.Context, limit Limit, scope, member string) error {
	if limit.Kind != KindConcurrency {
		return fmt.Errorf("limit %s is not a concurrency limit", limit.Name)
	}

	key := m.concKey(limit, scope)
	admitted, err := m.kv.SetAddIfUnder(ctx, key, member, limit.MaxConcurrent, concurrencyTTL)
	if err != nil {
		return err
	}
	if !admitted {
		return &LimitExceededError{Limit: limit, Key: key}
	}
	return nil
}

// ReleaseConcurrency returns a token. Idempotent: releasing an absent
// member succeeds silently.
func (m *Manager) ReleaseConcurrency(ctx context.Context, limit Limit, scope, member string) error {
	if limit.Kind != KindConcurrency {
		return fmt.Errorf("limit %s is not a concurrency limit", limit.Name)
	}
	return m.kv.SetRemove(ctx, m.concKey(limit, scope), member)
}

// Held returns the current token count for a concurrency limit.
func (m *Manager) Held(ctx context.Context, limit Limit, scope string) (int64, error) {
	return m.kv.SetCard(ctx, m.concKey(limit, scope))
}

// AcquireRunSlots acquires CONCURRENT_TOTAL_RUNS and, for top-level runs,
// CONCURRENT_PARENT_RUNS. If the second acquisition fails, the first is
// rolled back so a rejected run holds nothing.
func (m *Manager) AcquireRunSlots(ctx context.Context, workspaceID, runID string, includeParent bool) error {
	if err := m.AcquireConcurrency(ctx, ConcurrentTotalRuns, workspaceID, runID); err != nil {
		return err
	}
	if includeParent {
		if err := m.AcquireConcurrency(ctx, ConcurrentParentRuns, workspaceID, runID); err != nil {
			if relErr := m.ReleaseConcurrency(ctx, ConcurrentTotalRuns, workspaceID, runID); relErr != nil {
				slog.Warn("Failed to roll back total-runs slot",
					"workspace_id", workspaceID, "run_id", runID, "error", relErr)
			}
			return err
		}
	}
	return nil
}

// ReleaseRunSlots is the symmetric, idempotent release of AcquireRunSlots.
func (m *Manager) ReleaseRunSlots(ctx context.Context, workspaceID, runID string, includeParent bool) {
	if includeParent {
		if err := m.ReleaseConcurrency(ctx, ConcurrentParentRuns, workspaceID, runID); err != nil {
			slog.Warn("Failed to release parent-runs slot",
				"workspace_id", workspaceID, "run_id", runID, "error", err)
		}
	}
	if err := m.ReleaseConcurrency(ctx, ConcurrentTotalRuns, workspaceID, runID); err != nil {
		slog.Warn("Failed to release total-runs slot",
			"workspace_id", workspaceID, "run_id", runID, "error", err)
	}
}
