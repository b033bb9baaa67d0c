package quota

import (
	"context"
	"sync"
	"time"
)

// MemoryKV is an in-process KV used by tests and single-replica
// deployments without Redis. TTLs are checked lazily on access.
type MemoryKV struct {
	mu       sync.Mutex
	counters map[string]*memCounter
	sets     map[string]*memSet
	now      func() time.Time
}

type memCounter struct {
	value     int64
	expiresAt time.Time
}

type memSet struct {
	members   map[string]bool
	expiresAt time.Time
}

// NewMemoryKV creates an empty in-memory KV.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{
		counters: make(map[string]*memCounter),
		sets:     make(map[string]*memSet),
		now:      time.Now,
	}
}

// SetClock overrides the clock, letting tests advance time across
// rate-limit windows deterministically.
func (m *MemoryKV) SetClock(now func() time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}

// IncrWithExpire implements KV.
func (m *MemoryKV) IncrWithExpire(_ context.Context, key string, ttl time.Duration) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.counters[key]
	if !ok || m.now().After(c.expiresAt) {
		c = &memCounter{expiresAt: m.now().Add(ttl)}
		m.counters[key] = c
	}
	c.value++
	return c.value, nil
}

// SetAddIfUnder implements KV.
func (m *MemoryKV) SetAddIfUnder(_ context.Context, key, member string, max int, ttl time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sets[key]
	if !ok || m.now().After(s.expiresAt) {
		s = &memSet{members: make(map[string]bool)}
		m.sets[key] = s
	}
	s.expiresAt = m.now().Add(ttl)

	if s.members[member] {
		return true, nil
	}
	if len(s.members) >= max {
		return false, nil
	}
	s.members[member] = true
	return true, nil
}

// SetRemove implements KV.
func (m *MemoryKV) SetRemove(_ context.Context, key, member string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sets[key]; ok {
		delete(s.members, member)
	}
	return nil
}

// SetCard implements KV.
func (m *MemoryKV) SetCard(_ context.Context, key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sets[key]
	if !ok || m.now().After(s.expiresAt) {
		return 0, nil
	}
	return int64(len(s.members)), nil
}
