package errors

import "errors"

var (
	// Cache errors
	ErrInvalidCapacity   = errors.New("invalid cache capacity")
	ErrKeyNotFound       = errors.New("key not found")
	ErrInvalidShardCount = errors.New("invalid shard count")

	// Registry errors
	ErrCacheExists   = errors.New("cache already exists")
	ErrCacheNotFound = errors.New("cache not found")

	// Config errors
	ErrInvalidConfig = errors.New("invalid config")
)
