package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/gzhole/labelshield/internal/catalog"
	"github.com/gzhole/labelshield/internal/config"
	"github.com/gzhole/labelshield/internal/logger"
	"github.com/gzhole/labelshield/internal/service"
	"github.com/gzhole/labelshield/internal/store/redis"
	"github.com/gzhole/labelshield/internal/store/sqlite"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(config.Flags{
		CatalogPath: catalogPath,
		LogPath:     logPath,
		DBPath:      dbPath,
		Addr:        addr,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// loadCatalog reads the base catalog and merges every enabled pack into it.
func loadCatalog(cfg *config.Config) (*catalog.Catalog, []catalog.PackInfo, error) {
	base, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	merged, infos, err := catalog.LoadPacks(cfg.PacksDir, base)
	if err != nil {
		return nil, infos, fmt.Errorf("failed to load packs: %w", err)
	}
	for _, info := range infos {
		if info.Err != nil {
			fmt.Fprintf(os.Stderr, "⚠  Skipping pack %s: %v\n", info.Name, info.Err)
		}
	}
	return merged, infos, nil
}

// app bundles a service with the resources it holds open.
type app struct {
	cfg     *config.Config
	svc     *service.Service
	store   *sqlite.Store
	closers []io.Closer
}

func (r *app) Close() error {
	var first error
	for i := len(r.closers) - 1; i >= 0; i-- {
		if err := r.closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// openApp wires the catalog, profile store, result cache and audit log
// according to cfg.
func openApp(ctx context.Context, cfg *config.Config, log *zap.Logger) (*app, error) {
	cat, _, err := loadCatalog(cfg)
	if err != nil {
		return nil, err
	}

	rt := &app{cfg: cfg}

	store, err := sqlite.OpenStore(ctx, cfg.DBPath, cfg.Cache.TTL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	rt.store = store
	rt.closers = append(rt.closers, store)

	opts := []service.Option{
		service.WithProfileStore(store),
		service.WithLogger(log),
	}

	switch cfg.Cache.Backend {
	case config.CacheSQLite:
		opts = append(opts, service.WithCache(store))
	case config.CacheRedis:
		cache, err := redis.New(ctx, cfg.Cache.RedisAddr, cfg.Cache.TTL)
		if err != nil {
			_ = rt.Close()
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		rt.closers = append(rt.closers, cache)
		opts = append(opts, service.WithCache(cache))
	}

	audit, err := logger.New(cfg.LogPath, logger.WithRedaction(cfg.LogRedaction))
	if err != nil {
		_ = rt.Close()
		return nil, fmt.Errorf("failed to open audit log: %w", err)
	}
	rt.closers = append(rt.closers, audit)
	opts = append(opts, service.WithAuditor(audit))

	svc, err := service.New(cat, opts...)
	if err != nil {
		_ = rt.Close()
		return nil, err
	}
	rt.svc = svc
	return rt, nil
}
