package server

import (
	"errors"
	"net/http"

	DB "lrucache/internal/db"
	pkgerrors "lrucache/pkg/errors"
	"lrucache/pkg/logger"

	"github.com/gin-gonic/gin"
)

// statusFor maps registry and cache errors onto HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, pkgerrors.ErrCacheNotFound), errors.Is(err, pkgerrors.ErrKeyNotFound):
		return http.StatusNotFound
	case errors.Is(err, pkgerrors.ErrCacheExists):
		return http.StatusConflict
	case errors.Is(err, pkgerrors.ErrInvalidCapacity),
		errors.Is(err, pkgerrors.ErrInvalidShardCount),
		errors.Is(err, pkgerrors.ErrInvalidConfig):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", "method", c.Request.Method, "path", c.Request.URL.Path, "error", err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func (s *Server) handleHealthCheck() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// Cache handlers
func (s *Server) handleCreateCache() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateCacheRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		cache, err := s.db.CreateCache(&DB.CreateCacheOptions{
			Name:     req.Name,
			Capacity: req.Capacity,
			Shards:   req.Shards,
		})
		if err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusCreated, cache.Info())
	}
}

func (s *Server) handleGetCache() gin.HandlerFunc {
	return func(c *gin.Context) {
		cache, err := s.db.GetCache(c.Param("name"))
		if err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, cache.Info())
	}
}

func (s *Server) handleDeleteCache() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := s.db.DeleteCache(c.Param("name")); err != nil {
			writeError(c, err)
			return
		}

		c.Status(http.StatusNoContent)
	}
}

func (s *Server) handleListCaches() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, ListCachesResponse{Caches: s.db.ListCaches()})
	}
}

// Entry handlers
func (s *Server) handlePutEntry() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PutEntryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		key := c.Param("key")
		if err := s.db.Put(c.Param("name"), key, req.Value); err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, EntryResponse{Key: key, Value: req.Value})
	}
}

func (s *Server) handleGetEntry() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Param("key")
		value, err := s.db.Get(c.Param("name"), key)
		if err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, EntryResponse{Key: key, Value: value})
	}
}
