package cache

import (
	"context"
	"errors"
	"time"

	"cinepulse/pkg/logger"
)

// ReadThrough returns the cached value under key, or calls load and caches its
// result for ttl. Load errors are returned as-is and never cached. Cache
// failures are logged and treated as misses. A nil Service disables caching.
func ReadThrough[T any](ctx context.Context, svc Service, key string, ttl time.Duration, load func() (T, error)) (T, error) {
	if svc == nil {
		return load()
	}
	log := logger.GetDefault()

	var cached T
	err := svc.Get(ctx, key, &cached)
	switch {
	case err == nil:
		log.LogCacheLookup(ctx, key, true)
		return cached, nil
	case errors.Is(err, ErrCacheMiss):
		log.LogCacheLookup(ctx, key, false)
	default:
		log.LogCacheFailure(ctx, "get", key, err)
	}

	value, err := load()
	if err != nil {
		return value, err
	}

	if err := svc.Set(ctx, key, value, ttl); err != nil {
		log.LogCacheFailure(ctx, "set", key, err)
	}
	return value, nil
}

// Invalidate deletes every key matching patterns, logging failures.
func Invalidate(ctx context.Context, svc Service, patterns ...string) {
	if svc == nil {
		return
	}
	for _, pattern := range patterns {
		if err := svc.DeletePattern(ctx, pattern); err != nil {
			logger.GetDefault().LogCacheFailure(ctx, "invalidate", pattern, err)
		}
	}
}
