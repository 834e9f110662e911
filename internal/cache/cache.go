// Package cache provides a bounded, concurrency-safe cache for translation results.
package cache

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

const shardCount = 16

// Cache maps source strings to values. It is split into shards picked by an
// xxhash of the key so concurrent translations of different inputs rarely
// contend on the same lock.
//
// Eviction strategy: when a shard reaches its capacity the whole shard is
// replaced. This is simpler than a true LRU and suits the workload, where a
// small number of derived field expressions repeat across many models.
//
// Values are shared between callers and must not be modified.
type Cache[V any] struct {
	shards [shardCount]shard[V]
}

type shard[V any] struct {
	mu    sync.RWMutex
	items map[string]V
	max   int
}

// New creates a cache holding roughly capacity entries. A capacity below one
// yields a nil cache, on which every method is a no-op miss.
func New[V any](capacity int) *Cache[V] {
	if capacity < 1 {
		return nil
	}
	perShard := (capacity + shardCount - 1) / shardCount
	c := &Cache[V]{}
	for i := range c.shards {
		c.shards[i].items = make(map[string]V, perShard)
		c.shards[i].max = perShard
	}
	return c
}

func (c *Cache[V]) shardFor(key string) *shard[V] {
	return &c.shards[xxhash.Sum64String(key)%shardCount]
}

// Get returns the cached value for key
func (c *Cache[V]) Get(key string) (V, bool) {
	if c == nil {
		var zero V
		return zero, false
	}
	s := c.shardFor(key)
	s.mu.RLock()
	v, ok := s.items[key]
	s.mu.RUnlock()
	return v, ok
}

// Put stores v under key
func (c *Cache[V]) Put(key string, v V) {
	if c == nil {
		return
	}
	s := c.shardFor(key)
	s.mu.Lock()
	if _, exists := s.items[key]; !exists && len(s.items) >= s.max {
		// Evict everything and start fresh rather than tracking individual entry ages.
		s.items = make(map[string]V, s.max)
	}
	s.items[key] = v
	s.mu.Unlock()
}

// GetOrCompute returns the cached value for key, computing and storing it on
// a miss. Errors are returned as is and never cached. hit reports whether the
// value came from the cache.
func (c *Cache[V]) GetOrCompute(key string, compute func() (V, error)) (v V, hit bool, err error) {
	if v, ok := c.Get(key); ok {
		return v, true, nil
	}
	v, err = compute()
	if err != nil {
		return v, false, err
	}
	c.Put(key, v)
	return v, false, nil
}

// Len returns the number of cached entries
func (c *Cache[V]) Len() int {
	if c == nil {
		return 0
	}
	n := 0
	for i := range c.shards {
		c.shards[i].mu.RLock()
		n += len(c.shards[i].items)
		c.shards[i].mu.RUnlock()
	}
	return n
}
