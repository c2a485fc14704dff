// Package cache caches raw provider responses so repeated stats requests for the
// same player do not hit the provider.
//
// # Backends
//
//   - memory: in-process TTL map (default).
//   - redis: shared cache for several instances, backed by go-redis.
//   - none: disables caching.
//
// # Loader
//
// Loader reads through a backend and uses singleflight so concurrent misses for the
// same player collapse into one provider call. Cache failures are logged and treated
// as misses; they never fail a request.
//
// # Usage
//
//	c, err := cache.New(cfg.Cache, logger)
//	loader := cache.NewLoader(c, cfg.Cache.TTL(), logger, m)
//	body, hit, err := loader.GetOrLoad(ctx, key, fetch)
package cache
