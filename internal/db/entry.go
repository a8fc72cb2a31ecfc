package db

import (
	"lrucache/internal/metrics"
)

// Put adds or updates key in the named cache
func (db *DB) Put(cacheName, key string, value any) error {
	c, err := db.GetCache(cacheName)
	if err != nil {
		return err
	}

	c.entries.Add(key, value)
	metrics.Entries.WithLabelValues(cacheName).Set(float64(c.entries.Size()))
	return nil
}

// Get returns the value for key in the named cache. A missing key yields
// ErrKeyNotFound, a missing cache ErrCacheNotFound.
func (db *DB) Get(cacheName, key string) (any, error) {
	c, err := db.GetCache(cacheName)
	if err != nil {
		return nil, err
	}

	value, err := c.entries.Get(key)
	if err != nil {
		metrics.Misses.WithLabelValues(cacheName).Inc()
		return nil, err
	}
	metrics.Hits.WithLabelValues(cacheName).Inc()
	return value, nil
}
