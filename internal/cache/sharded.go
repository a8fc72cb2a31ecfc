package cache

import (
	"fmt"
	"sync"
	"sync/atomic"

	pkgerrors "lrucache/pkg/errors"

	"github.com/twmb/murmur3"
)

// Stats is a snapshot of a Sharded cache's counters
type Stats struct {
	Hits      uint64 `json:"hits"`
	Misses    uint64 `json:"misses"`
	Evictions uint64 `json:"evictions"`
}

type shard[V any] struct {
	mu  sync.Mutex
	lru *LRUCache[string, V]
}

// Sharded spreads string keys over independent LRU caches, each guarded by
// its own mutex, so it can be shared between goroutines. Eviction order is
// least recently used within a shard.
type Sharded[V any] struct {
	shards   []*shard[V]
	capacity int

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// NewSharded creates a cache of the given total capacity split over shards
func NewSharded[V any](capacity, shards int) (*Sharded[V], error) {
	return NewShardedWithEvict[V](capacity, shards, nil)
}

// NewShardedWithEvict is like NewSharded and calls onEvict for every
// evicted entry. onEvict runs while the owning shard is locked and must not
// call back into the cache.
func NewShardedWithEvict[V any](capacity, shards int, onEvict EvictCallback[string, V]) (*Sharded[V], error) {
	if shards < 1 {
		return nil, fmt.Errorf("%w: %d", pkgerrors.ErrInvalidShardCount, shards)
	}
	if capacity < shards {
		return nil, fmt.Errorf("%w: %d is less than shard count %d", pkgerrors.ErrInvalidCapacity, capacity, shards)
	}

	s := &Sharded[V]{
		shards:   make([]*shard[V], shards),
		capacity: capacity,
	}
	evict := func(key string, value V) {
		s.evictions.Add(1)
		if onEvict != nil {
			onEvict(key, value)
		}
	}

	// Spread the remainder over the first shards so capacities sum exactly
	base, extra := capacity/shards, capacity%shards
	for i := range s.shards {
		shardCap := base
		if i < extra {
			shardCap++
		}
		lru, err := NewWithEvict[string, V](shardCap, evict)
		if err != nil {
			return nil, err
		}
		s.shards[i] = &shard[V]{lru: lru}
	}
	return s, nil
}

func (s *Sharded[V]) shardFor(key string) *shard[V] {
	if len(s.shards) == 1 {
		return s.shards[0]
	}
	return s.shards[murmur3.Sum32([]byte(key))%uint32(len(s.shards))]
}

// Add inserts or updates key in its shard
func (s *Sharded[V]) Add(key string, value V) {
	sh := s.shardFor(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	sh.lru.Add(key, value)
}

// Get returns the value for key, or ErrKeyNotFound
func (s *Sharded[V]) Get(key string) (V, error) {
	sh := s.shardFor(key)
	sh.mu.Lock()
	value, err := sh.lru.Get(key)
	sh.mu.Unlock()

	if err != nil {
		s.misses.Add(1)
		return value, err
	}
	s.hits.Add(1)
	return value, nil
}

// Size returns the number of resident entries across all shards
func (s *Sharded[V]) Size() int {
	total := 0
	for _, sh := range s.shards {
		sh.mu.Lock()
		total += sh.lru.Size()
		sh.mu.Unlock()
	}
	return total
}

// Capacity returns the total capacity
func (s *Sharded[V]) Capacity() int {
	return s.capacity
}

// Shards returns the number of shards
func (s *Sharded[V]) Shards() int {
	return len(s.shards)
}

// Stats returns the hit, miss and eviction counters
func (s *Sharded[V]) Stats() Stats {
	return Stats{
		Hits:      s.hits.Load(),
		Misses:    s.misses.Load(),
		Evictions: s.evictions.Load(),
	}
}
