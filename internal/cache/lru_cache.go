package cache

import (
	"fmt"

	pkgerrors "lrucache/pkg/errors"
)

// DefaultCapacity is the capacity callers use when they have no better value.
const DefaultCapacity = 100

// EvictCallback is invoked with the key and value of an entry evicted by
// capacity pressure.
type EvictCallback[K comparable, V any] func(key K, value V)

// LRUCache implements a fixed capacity Least Recently Used cache.
//
// It is not safe for concurrent use; callers that share a cache between
// goroutines must serialize access themselves (see Sharded).
type LRUCache[K comparable, V any] struct {
	capacity int
	size     int
	index    *hashIndex[K]
	list     *recencyList[K, V]
	onEvict  EvictCallback[K, V]
}

// New creates a new LRU cache holding at most capacity entries
func New[K comparable, V any](capacity int) (*LRUCache[K, V], error) {
	return NewWithEvict[K, V](capacity, nil)
}

// NewWithEvict is like New and calls onEvict for every evicted entry
func NewWithEvict[K comparable, V any](capacity int, onEvict EvictCallback[K, V]) (*LRUCache[K, V], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: %d", pkgerrors.ErrInvalidCapacity, capacity)
	}
	return &LRUCache[K, V]{
		capacity: capacity,
		index:    newHashIndex[K](capacity),
		list:     newRecencyList[K, V](capacity),
		onEvict:  onEvict,
	}, nil
}

// Add inserts or updates a key-value pair and marks it most recently used
func (c *LRUCache[K, V]) Add(key K, value V) {
	// Existing key: replace in place and promote
	if slot, ok := c.index.get(key); ok {
		c.list.at(slot).value = value
		c.list.touch(slot)
		return
	}

	// Make room before inserting so size never exceeds capacity
	if c.size == c.capacity {
		c.evictOldest()
	}

	slot := c.list.alloc(key, value)
	c.index.put(key, slot)
	c.list.appendMostRecent(slot)
	c.size++
}

// Get returns the value for key and marks it most recently used.
// A miss returns ErrKeyNotFound and leaves the cache untouched.
func (c *LRUCache[K, V]) Get(key K) (V, error) {
	slot, ok := c.index.get(key)
	if !ok {
		var zero V
		return zero, fmt.Errorf("%w: %v", pkgerrors.ErrKeyNotFound, key)
	}
	c.list.touch(slot)
	return c.list.at(slot).value, nil
}

// Peek returns the value for key without updating its recency
func (c *LRUCache[K, V]) Peek(key K) (V, bool) {
	slot, ok := c.index.get(key)
	if !ok {
		var zero V
		return zero, false
	}
	return c.list.at(slot).value, true
}

// Contains reports whether key is resident without updating its recency
func (c *LRUCache[K, V]) Contains(key K) bool {
	_, ok := c.index.get(key)
	return ok
}

// Size returns the number of resident entries
func (c *LRUCache[K, V]) Size() int {
	return c.size
}

// Capacity returns the maximum number of resident entries
func (c *LRUCache[K, V]) Capacity() int {
	return c.capacity
}

// Oldest returns the least recently used entry without touching it
func (c *LRUCache[K, V]) Oldest() (key K, value V, ok bool) {
	slot, ok := c.list.oldest()
	if !ok {
		return key, value, false
	}
	e := c.list.at(slot)
	return e.key, e.value, true
}

// Newest returns the most recently used entry without touching it
func (c *LRUCache[K, V]) Newest() (key K, value V, ok bool) {
	slot, ok := c.list.newest()
	if !ok {
		return key, value, false
	}
	e := c.list.at(slot)
	return e.key, e.value, true
}

// Keys returns the resident keys from least to most recently used
func (c *LRUCache[K, V]) Keys() []K {
	keys := make([]K, 0, c.size)
	c.list.walk(func(_ int, e *entry[K, V]) {
		keys = append(keys, e.key)
	})
	return keys
}

// evictOldest drops the least recently used entry from both the list and
// the index before its slot is reused.
func (c *LRUCache[K, V]) evictOldest() {
	slot := c.list.popLeastRecent()
	e := c.list.at(slot)
	key, value := e.key, e.value
	c.index.remove(key)
	c.list.release(slot)
	c.size--

	if c.onEvict != nil {
		c.onEvict(key, value)
	}
}
