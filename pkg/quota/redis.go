package quota

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisKV implements KV on a shared Redis instance. Scripts keep the
// check-and-mutate steps atomic across replicas.
type RedisKV struct {
	rdb *redis.Client
}

// NewRedisKV creates a Redis-backed KV.
func NewRedisKV(rdb *redis.Client) *RedisKV {
	return &RedisKV{rdb: rdb}
}

// incrScript increments the counter and sets the TTL only when the key
// is freshly created, so the window does not slide on every request.
var incrScript = redis.NewScript(`
local n = redis.call("INCR", KEYS[1])
if n == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return n
`)

// IncrWithExpire implements KV.
func (r *RedisKV) IncrWithExpire(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	n, err := incrScript.Run(ctx, r.rdb, []string{key}, ttl.Milliseconds()).Int64()
	if err != nil {
		return 0, fmt.Errorf("quota incr %s: %w", key, err)
	}
	return n, nil
}

// addIfUnderScript admits a member only while the set is under its cap.
// Re-adding a held member is a no-op admit so releases stay idempotent.
var addIfUnderScript = redis.NewScript(`
if redis.call("SISMEMBER", KEYS[1], ARGV[1]) == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[3])
  return 1
end
if redis.call("SCARD", KEYS[1]) >= tonumber(ARGV[2]) then
  return 0
end
redis.call("SADD", KEYS[1], ARGV[1])
redis.call("PEXPIRE", KEYS[1], ARGV[3])
return 1
`)

// SetAddIfUnder implements KV.
func (r *RedisKV) SetAddIfUnder(ctx context.Context, key, member string, max int, ttl time.Duration) (bool, error) {
	n, err := addIfUnderScript.Run(ctx, r.rdb, []string{key}, member, max, ttl.Milliseconds()).Int64()
	if err != nil {
		return false, fmt.Errorf("quota set add %s: %w", key, err)
	}
	return n == 1, nil
}

// SetRemove implements KV.
func (r *RedisKV) SetRemove(ctx context.Context, key, member string) error {
	if err := r.rdb.SRem(ctx, key, member).Err(); err != nil {
		return fmt.Errorf("quota set remove %s: %w", key, err)
	}
	return nil
}

// SetCard implements KV.
func (r *RedisKV) SetCard(ctx context.Context, key string) (int64, error) {
	n, err := r.rdb.SCard(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("quota set card %s: %w", key, err)
	}
	return n, nil
}
