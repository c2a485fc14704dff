package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gamestats/core/metrics"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ErrMiss indicates that the key was not found in the cache.
var ErrMiss = errors.New("cache miss")

// Cache stores raw provider responses.
type Cache interface {
	// Name identifies the backend (memory, redis, none).
	Name() string
	// Get returns the value or ErrMiss.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores a value for ttl. A ttl of 0 skips caching.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Delete removes a value.
	Delete(ctx context.Context, key string) error
	// Close releases backend resources.
	Close() error
}

// New creates the cache backend selected by cfg.Driver.
func New(cfg Config, logger *zap.Logger) (Cache, error) {
	switch cfg.Driver {
	case DriverMemory, "":
		return NewMemory(), nil
	case DriverRedis:
		return NewRedis(cfg, logger)
	case DriverNone:
		return Noop{}, nil
	default:
		return nil, fmt.Errorf("unsupported cache driver %q", cfg.Driver)
	}
}

// LoadFunc produces a value on a cache miss.
type LoadFunc func(ctx context.Context) ([]byte, error)

// Loader reads through a Cache, collapsing concurrent misses of the same key
// into a single load.
type Loader struct {
	cache   Cache
	ttl     time.Duration
	logger  *zap.Logger
	metrics *metrics.Metrics
	sf      singleflight.Group
}

// NewLoader creates a read-through loader.
func NewLoader(c Cache, ttl time.Duration, logger *zap.Logger, m *metrics.Metrics) *Loader {
	return &Loader{cache: c, ttl: ttl, logger: logger, metrics: m}
}

// GetOrLoad returns the cached value for key, or calls load and caches its result.
// hit reports whether the value came from the cache. Load errors are not cached.
func (l *Loader) GetOrLoad(ctx context.Context, key string, load LoadFunc) (value []byte, hit bool, err error) {
	if v, err := l.cache.Get(ctx, key); err == nil {
		l.metrics.ObserveCache(l.cache.Name(), "hit")
		return v, true, nil
	} else if !errors.Is(err, ErrMiss) {
		// A broken cache must not break requests
		l.logger.Warn("Cache read failed", zap.String("key", key), zap.Error(err))
	}
	l.metrics.ObserveCache(l.cache.Name(), "miss")

	// The shared load outlives any single caller; the provider client bounds it
	// with its own timeout.
	shared := context.WithoutCancel(ctx)
	result, err, _ := l.sf.Do(key, func() (interface{}, error) {
		v, err := load(shared)
		if err != nil {
			return nil, err
		}
		if err := l.cache.Set(shared, key, v, l.ttl); err != nil {
			l.logger.Warn("Cache write failed", zap.String("key", key), zap.Error(err))
		}
		return v, nil
	})
	if err != nil {
		return nil, false, err
	}

	return result.([]byte), false, nil
}

// Invalidate drops key from the cache.
func (l *Loader) Invalidate(ctx context.Context, key string) error {
	return l.cache.Delete(ctx, key)
}

// Cache returns the backend.
func (l *Loader) Cache() Cache {
	return l.cache
}

// Noop is a cache that never stores anything.
type Noop struct{}

func (Noop) Name() string { return DriverNone }

func (Noop) Get(context.Context, string) ([]byte, error) { return nil, ErrMiss }

func (Noop) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (Noop) Delete(context.Context, string) error { return nil }

func (Noop) Close() error { return nil }
