package quota

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryKV_IncrWithExpire(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()

	now := time.Now()
	kv.SetClock(func() time.Time { return now })

	t.Run("increments within window", func(t *testing.T) {
		for i := int64(1); i <= 3; i++ {
			v, err := kv.IncrWithExpire(ctx, "k1", time.Second)
			require.NoError(t, err)
			assert.Equal(t, i, v)
		}
	})

	t.Run("resets after window expiry", func(t *testing.T) {
		now = now.Add(2 * time.Second)
		v, err := kv.IncrWithExpire(ctx, "k1", time.Second)
		require.NoError(t, err)
		assert.Equal(t, int64(1), v)
	})
}

func TestMemoryKV_SetAddIfUnder(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()

	t.Run("admits up to max", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			ok, err := kv.SetAddIfUnder(ctx, "s1", fmt.Sprintf("m%d", i), 3, time.Hour)
			require.NoError(t, err)
			assert.True(t, ok)
		}
		ok, err := kv.SetAddIfUnder(ctx, "s1", "overflow", 3, time.Hour)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("re-adding a held member is a no-op success", func(t *testing.T) {
		ok, err := kv.SetAddIfUnder(ctx, "s1", "m0", 3, time.Hour)
		require.NoError(t, err)
		assert.True(t, ok)

		card, err := kv.SetCard(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, int64(3), card)
	})

	t.Run("remove frees a slot", func(t *testing.T) {
		require.NoError(t, kv.SetRemove(ctx, "s1", "m0"))
		ok, err := kv.SetAddIfUnder(ctx, "s1", "fresh", 3, time.Hour)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("removing an absent member is not an error", func(t *testing.T) {
		require.NoError(t, kv.SetRemove(ctx, "s1", "never-added"))
		require.NoError(t, kv.SetRemove(ctx, "no-such-set", "x"))
	})
}

// Concurrency sets never exceed their cap, no matter how acquires and
// releases interleave.
func TestMemoryKV_BoundednessProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("cardinality never exceeds max", prop.ForAll(
		func(ops []int, max int) bool {
			ctx := context.Background()
			kv := NewMemoryKV()

			for _, op := range ops {
				member := fmt.Sprintf("m%d", op%10)
				if op%3 == 0 {
					_ = kv.SetRemove(ctx, "set", member)
				} else {
					_, _ = kv.SetAddIfUnder(ctx, "set", member, max, time.Hour)
				}
				card, err := kv.SetCard(ctx, "set")
				if err != nil || card > int64(max) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 100)),
		gen.IntRange(1, 8),
	))

	properties.TestingRun(t)
}
