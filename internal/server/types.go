package server

import DB "lrucache/internal/db"

// CreateCacheRequest represents the request body for creating a cache.
// Zero capacity or shards take the configured defaults.
type CreateCacheRequest struct {
	Name     string `json:"name" binding:"required"`
	Capacity int    `json:"capacity,omitempty"`
	Shards   int    `json:"shards,omitempty"`
}

// ListCachesResponse represents the response body for listing caches
type ListCachesResponse struct {
	Caches []DB.CacheInfo `json:"caches"`
}

// PutEntryRequest represents the request body for storing an entry
type PutEntryRequest struct {
	Value any `json:"value"`
}

// EntryResponse represents a single cache entry
type EntryResponse struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}
