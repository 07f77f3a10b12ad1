// Package server exposes the analysis service over a JSON HTTP API and an
// MCP tool endpoint.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/gzhole/labelshield/internal/service"
)

const (
	Name    = "labelshield"
	Version = "0.1.0"

	shutdownTimeout = 5 * time.Second
)

// Purger removes expired cache entries. The SQLite store implements it.
type Purger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

type Config struct {
	Addr string
	// Purger, when set, is run every PurgeInterval while the server is up.
	Purger        Purger
	PurgeInterval time.Duration
}

type Server struct {
	svc        *service.Service
	log        *zap.Logger
	config     Config
	httpServer *http.Server
}

func New(svc *service.Service, cfg Config, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.PurgeInterval <= 0 {
		cfg.PurgeInterval = time.Hour
	}

	s := &Server{svc: svc, log: log, config: cfg}
	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		s.log.Info("starting server", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	if s.config.Purger != nil {
		go s.purgeLoop(ctx)
	}

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.httpServer.Shutdown(shutdownCtx)
}

func (s *Server) purgeLoop(ctx context.Context) {
	ticker := time.NewTicker(s.config.PurgeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.config.Purger.PurgeExpired(ctx)
			if err != nil {
				s.log.Warn("cache purge failed", zap.Error(err))
				continue
			}
			if n > 0 {
				s.log.Info("purged expired cache entries", zap.Int64("count", n))
			}
		}
	}
}
