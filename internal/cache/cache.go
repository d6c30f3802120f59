package cache

import (
	"time"

	"github.com/puzpuzpuz/xsync/v4"
)

// TimeNow is swapped out in tests to control expiry.
var TimeNow = time.Now

type entry[V any] struct {
	value    V
	storedAt time.Time
}

// TTL is a process-wide best-effort cache. Entries older than the configured
// TTL are treated as absent on read; nothing is proactively purged.
type TTL[V any] struct {
	ttl     time.Duration
	entries *xsync.Map[string, entry[V]]
}

func New[V any](ttl time.Duration) *TTL[V] {
	return &TTL[V]{
		ttl:     ttl,
		entries: xsync.NewMap[string, entry[V]](),
	}
}

// Get returns the cached value for key, or ok=false on a miss or a stale entry.
func (c *TTL[V]) Get(key string) (V, bool) {
	var zero V
	e, ok := c.entries.Load(key)
	if !ok {
		return zero, false
	}
	if TimeNow().Sub(e.storedAt) > c.ttl {
		return zero, false
	}
	return e.value, true
}

// Set stores value under key, resetting its expiry window.
func (c *TTL[V]) Set(key string, value V) {
	c.entries.Store(key, entry[V]{value: value, storedAt: TimeNow()})
}
