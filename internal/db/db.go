package db

import (
	"fmt"
	"sync"

	"lrucache/internal/config"
	"lrucache/internal/metrics"
	pkgerrors "lrucache/pkg/errors"
	"lrucache/pkg/logger"
)

// DB is a registry of named caches. It is safe for concurrent use: the
// registry is guarded by mu and every cache serializes its own shards.
type DB struct {
	conf *config.Config

	mu     sync.RWMutex
	caches map[string]*Cache
}

func New(conf *config.Config) (*DB, error) {
	if conf == nil {
		return nil, fmt.Errorf("%w: nil config", pkgerrors.ErrInvalidConfig)
	}
	return &DB{
		conf:   conf,
		caches: make(map[string]*Cache),
	}, nil
}

// Open creates the caches listed in the config
func (db *DB) Open() error {
	for _, cc := range db.conf.Caches {
		if _, err := db.CreateCache(&CreateCacheOptions{
			Name:     cc.Name,
			Capacity: cc.Capacity,
			Shards:   cc.Shards,
		}); err != nil {
			return err
		}
	}
	logger.Info("Opened cache registry", "caches", len(db.conf.Caches))
	return nil
}

// Close drops every cache
func (db *DB) Close() {
	db.mu.Lock()
	defer db.mu.Unlock()

	for name := range db.caches {
		metrics.Forget(name)
	}
	db.caches = make(map[string]*Cache)
	metrics.Caches.Set(0)
}
