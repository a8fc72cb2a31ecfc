package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	DB "lrucache/internal/db"
	"lrucache/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const defaultShutdownTimeout = 5 * time.Second

type Server struct {
	router *gin.Engine
	db     *DB.DB

	ShutdownTimeout time.Duration
}

// New creates a new server instance
func New(db *DB.DB) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	// Keys may contain escaped slashes
	router.UseRawPath = true
	s := &Server{
		db:              db,
		router:          router,
		ShutdownTimeout: defaultShutdownTimeout,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleHealthCheck())
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.router.POST("/v1/caches", s.handleCreateCache())
	s.router.GET("/v1/caches", s.handleListCaches())
	s.router.GET("/v1/caches/:name", s.handleGetCache())
	s.router.DELETE("/v1/caches/:name", s.handleDeleteCache())

	s.router.PUT("/v1/caches/:name/entries/:key", s.handlePutEntry())
	s.router.GET("/v1/caches/:name/entries/:key", s.handleGetEntry())
}

// Handler exposes the router, mainly for tests and embedding
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server", "timeout", s.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}
