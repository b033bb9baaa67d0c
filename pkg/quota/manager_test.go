package quota

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_ConsumeRate(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()

	now := time.Now()
	kv.SetClock(func() time.Time { return now })

	m := NewManager(kv, "test", false)

	t.Run("admits up to the window cap then rejects", func(t *testing.T) {
		capacity := RunCreation.Cap()
		for i := int64(0); i < capacity; i++ {
			require.NoError(t, m.ConsumeRate(ctx, RunCreation, "ws-1"))
		}

		err := m.ConsumeRate(ctx, RunCreation, "ws-1")
		require.Error(t, err)
		assert.True(t, IsLimitExceeded(err))
		assert.Contains(t, err.Error(), "RUN_CREATION")
	})

	t.Run("scopes are independent", func(t *testing.T) {
		require.NoError(t, m.ConsumeRate(ctx, RunCreation, "ws-2"))
	})

	t.Run("window expiry readmits", func(t *testing.T) {
		now = now.Add(2 * time.Second)
		require.NoError(t, m.ConsumeRate(ctx, RunCreation, "ws-1"))
	})

	t.Run("bypass disables rate checks only", func(t *testing.T) {
		bypassed := NewManager(NewMemoryKV(), "test", true)
		for i := 0; i < 1000; i++ {
			require.NoError(t, bypassed.ConsumeRate(ctx, RunCreation, "ws-1"))
		}
		// Concurrency still enforced under bypass.
		for i := 0; i < ConcurrentToolCallsWS.MaxConcurrent; i++ {
			require.NoError(t, bypassed.AcquireConcurrency(ctx, ConcurrentToolCallsWS, "ws-1", fmt.Sprintf("tc-%d", i)))
		}
		err := bypassed.AcquireConcurrency(ctx, ConcurrentToolCallsWS, "ws-1", "tc-overflow")
		assert.True(t, IsLimitExceeded(err))
	})
}

func TestManager_RunSlots(t *testing.T) {
	ctx := context.Background()

	t.Run("parent overflow rolls back the total slot", func(t *testing.T) {
		kv := NewMemoryKV()
		m := NewManager(kv, "test", false)

		for i := 0; i < ConcurrentParentRuns.MaxConcurrent; i++ {
			require.NoError(t, m.AcquireRunSlots(ctx, "ws-1", fmt.Sprintf("run-%d", i), true))
		}

		err := m.AcquireRunSlots(ctx, "ws-1", "run-overflow", true)
		require.Error(t, err)
		assert.True(t, IsLimitExceeded(err))

		// The rejected run must hold nothing in either set.
		total, err := m.Held(ctx, ConcurrentTotalRuns, "ws-1")
		require.NoError(t, err)
		assert.Equal(t, int64(ConcurrentParentRuns.MaxConcurrent), total)
	})

	t.Run("children skip the parent slot", func(t *testing.T) {
		kv := NewMemoryKV()
		m := NewManager(kv, "test", false)

		for i := 0; i < ConcurrentTotalRuns.MaxConcurrent; i++ {
			require.NoError(t, m.AcquireRunSlots(ctx, "ws-1", fmt.Sprintf("child-%d", i), false))
		}
		err := m.AcquireRunSlots(ctx, "ws-1", "child-overflow", false)
		assert.True(t, IsLimitExceeded(err))

		parents, err := m.Held(ctx, ConcurrentParentRuns, "ws-1")
		require.NoError(t, err)
		assert.Zero(t, parents)
	})

	t.Run("release is idempotent", func(t *testing.T) {
		kv := NewMemoryKV()
		m := NewManager(kv, "test", false)

		require.NoError(t, m.AcquireRunSlots(ctx, "ws-1", "run-a", true))
		m.ReleaseRunSlots(ctx, "ws-1", "run-a", true)
		m.ReleaseRunSlots(ctx, "ws-1", "run-a", true)

		total, err := m.Held(ctx, ConcurrentTotalRuns, "ws-1")
		require.NoError(t, err)
		assert.Zero(t, total)
	})
}
