package quota

import (
	"context"
	"time"
)

// KV is the shared key-value store backing quota state. Only the quota
// manager mutates these keys. Implementations must make each operation
// atomic across concurrent callers and replicas.
type KV interface {
	// IncrWithExpire atomically increments the counter at key, setting the
	// TTL when the key is first created, and returns the post-increment value.
	IncrWithExpire(ctx context.Context, key string, ttl time.Duration) (int64, error)

	// SetAddIfUnder adds member to the set at key iff the current
	// cardinality is below max, refreshing the TTL on success.
	// Returns true if the member was admitted (or already present).
	SetAddIfUnder(ctx context.Context, key, member string, max int, ttl time.Duration) (bool, error)

	// SetRemove removes member from the set at key. Removing an absent
	// member is not an error.
	SetRemove(ctx context.Context, key, member string) error

	// SetCard returns the cardinality of the set at key.
	SetCard(ctx context.Context, key string) (int64, error)
}
