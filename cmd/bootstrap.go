package cmd

import (
	"context"
	"fmt"
	"time"

	"gamestats/core/cache"
	"gamestats/core/config"
	"gamestats/core/database"
	"gamestats/core/metrics"
	"gamestats/core/provider"
	corestats "gamestats/core/stats"
	"gamestats/core/storage"
	"gamestats/feature/playerstats"
	"gamestats/feature/snapshots"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// app holds the components shared by the server and the CLI commands.
type app struct {
	cfg       *config.Config
	logger    *zap.Logger
	metrics   *metrics.Metrics
	db        *gorm.DB
	cache     cache.Cache
	providers *provider.Registry
	storage   storage.Client
	snapshots *snapshots.Service
	stats     *playerstats.Service
}

// bootstrap wires every component from the configuration. Optional components
// (database, storage) that fail to connect are logged and left disabled.
func bootstrap(ctx context.Context, cfg *config.Config, logg *zap.Logger) (*app, error) {
	a := &app{cfg: cfg, logger: logg, metrics: metrics.New()}

	// 1. Normalizer, with optional database overrides
	normalizer := corestats.DefaultNormalizer()
	if cfg.Database.Enabled {
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			a.db = conn
			if overrides, err := database.LoadOverrides(ctx, conn); err != nil {
				logg.Warn("Failed to load stat overrides", zap.Error(err))
			} else {
				normalizer = normalizer.WithOverrides(overrides.Aliases, overrides.Blacklist)
				logg.Info("Loaded stat overrides",
					zap.Int("aliases", len(overrides.Aliases)),
					zap.Int("blacklist", len(overrides.Blacklist)),
				)
			}
		}
	}

	// 2. Cache
	c, err := cache.New(cfg.Cache, logg)
	if err != nil {
		logg.Warn("Cache backend unavailable, falling back to memory", zap.String("driver", cfg.Cache.Driver), zap.Error(err))
		c = cache.NewMemory()
	}
	a.cache = c
	loader := cache.NewLoader(c, cfg.Cache.TTL(), logg, a.metrics)

	// 3. Providers
	tracker := provider.NewTracker(cfg.Provider,
		provider.WithLogger(logg),
		provider.WithMetrics(a.metrics),
	)
	if a.providers, err = provider.NewRegistry(tracker); err != nil {
		return nil, err
	}

	// 4. Snapshot storage (Optional)
	opts := []playerstats.Option{playerstats.WithMetrics(a.metrics)}
	if cfg.Storage.Enabled {
		if err := a.connectStorage(ctx); err != nil {
			logg.Warn("Snapshot storage unavailable", zap.Error(err))
		} else {
			opts = append(opts, playerstats.WithArchiver(a.snapshots))
		}
	}

	a.stats = playerstats.NewService(a.providers, cfg.Provider.ModeTable(), loader, normalizer, logg, opts...)
	return a, nil
}

func (a *app) connectStorage(ctx context.Context) error {
	client, err := storage.NewClient(a.cfg.Storage)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	created, err := storage.EnsureBucket(ctx, client, a.cfg.Storage.Bucket, a.cfg.Storage.Region)
	if err != nil {
		return fmt.Errorf("failed to prepare bucket %s: %w", a.cfg.Storage.Bucket, err)
	}
	if created {
		a.logger.Info("Created snapshot bucket", zap.String("bucket", a.cfg.Storage.Bucket))
	}

	a.storage = client
	a.snapshots = snapshots.NewService(client, a.cfg.Storage, a.logger)
	return nil
}

// close releases the cache and database connections.
func (a *app) close() {
	if err := a.cache.Close(); err != nil {
		a.logger.Warn("Failed to close cache", zap.Error(err))
	}
	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}
