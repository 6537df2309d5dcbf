// Package probecache caches the output of short-lived OS probes.
package probecache

import (
	"sync"
	"time"

	"go.trai.ch/mountbar/internal/core/domain"
	"go.trai.ch/mountbar/internal/core/ports"
)

// Cache is a bounded, time-aware map from probe key to the last captured entry.
// It is safe for concurrent use.
type Cache struct {
	mu         sync.Mutex
	entries    map[domain.ProbeKey]domain.ProbeEntry
	capacity   int
	staleAfter time.Duration
	now        func() time.Time
	logger     ports.Logger
}

// Option configures a Cache.
type Option func(*Cache)

// WithClock replaces the cache's time source.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		c.now = now
	}
}

// WithCapacity overrides domain.ProbeCacheCapacity.
func WithCapacity(n int) Option {
	return func(c *Cache) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// New creates an empty Cache.
func New(logger ports.Logger, opts ...Option) *Cache {
	c := &Cache{
		entries:    make(map[domain.ProbeKey]domain.ProbeEntry),
		capacity:   domain.ProbeCacheCapacity,
		staleAfter: domain.ProbeStaleAfter,
		now:        time.Now,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the entry for key if it is younger than maxAge.
// Expired entries are reported as absent but left for the sweep.
func (c *Cache) Get(key domain.ProbeKey, maxAge time.Duration) (entry domain.ProbeEntry, ok bool) {
	c.withLock("get", func() {
		now := c.now()
		c.sweep(now)

		e, found := c.entries[key]
		if found && e.Age(now) < maxAge {
			entry, ok = e, true
		}
	})
	return entry, ok
}

// Put inserts or replaces the entry for key.
func (c *Cache) Put(key domain.ProbeKey, entry domain.ProbeEntry) {
	c.withLock("put", func() {
		c.sweep(c.now())

		if _, exists := c.entries[key]; !exists && len(c.entries) >= c.capacity {
			c.evictOldest()
		}
		c.entries[key] = entry
	})
}

// InvalidatePrefix removes every entry whose key starts with prefix.
func (c *Cache) InvalidatePrefix(prefix string) {
	c.withLock("invalidate", func() {
		for key := range c.entries {
			if key.HasPrefix(prefix) {
				delete(c.entries, key)
			}
		}
	})
}

// InvalidateAll removes every entry.
func (c *Cache) InvalidateAll() {
	c.withLock("invalidate-all", func() {
		clear(c.entries)
	})
}

// Now reads the cache's clock. Captures stamped with it age consistently
// under WithClock.
func (c *Cache) Now() time.Time {
	return c.now()
}

// Len returns the number of stored entries, expired ones included.
func (c *Cache) Len() int {
	var n int
	c.withLock("len", func() {
		n = len(c.entries)
	})
	return n
}

// withLock runs fn while holding the lock. A panic inside fn is recovered and
// the map is kept as it was left, so one failed holder cannot wedge the cache.
func (c *Cache) withLock(op string, fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	defer func() {
		if r := recover(); r != nil {
			if c.entries == nil {
				c.entries = make(map[domain.ProbeKey]domain.ProbeEntry)
			}
			if c.logger != nil {
				c.logger.Warn("probe cache recovered from failed holder", "op", op, "panic", r)
			}
		}
	}()
	fn()
}

// sweep drops entries older than the staleness ceiling. Callers hold mu.
func (c *Cache) sweep(now time.Time) {
	for key, e := range c.entries {
		if e.Age(now) > c.staleAfter {
			delete(c.entries, key)
		}
	}
}

// evictOldest drops the entry with the earliest capture time. Callers hold mu.
func (c *Cache) evictOldest() {
	var (
		oldestKey domain.ProbeKey
		oldestAt  time.Time
		found     bool
	)
	for key, e := range c.entries {
		if !found || e.CapturedAt.Before(oldestAt) {
			oldestKey, oldestAt, found = key, e.CapturedAt, true
		}
	}
	if found {
		delete(c.entries, oldestKey)
	}
}
