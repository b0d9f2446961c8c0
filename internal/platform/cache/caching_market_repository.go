// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"forestcoin/internal/feature/markets/domain/entity"
	"forestcoin/internal/feature/markets/usecase"
	"forestcoin/internal/platform/telemetry"
)

// CachingMarketRepository decorates a MarketRepository with a time-based
// revalidation cache. A successful result is reused for ttl; the first call
// after expiry goes to the provider again. Failures are never cached.
type CachingMarketRepository struct {
	inner     usecase.MarketRepository
	store     Store
	ttl       time.Duration
	namespace string
	group     singleflight.Group
}

var _ usecase.MarketRepository = (*CachingMarketRepository)(nil)

// NewCachingMarketRepository decorates a MarketRepository with a Store.
// If store is nil, an in-memory store is used. If ttl is 0, it defaults to
// usecase.RevalidateInterval. If namespace is empty, it uses "markets".
func NewCachingMarketRepository(store Store, ttl time.Duration, inner usecase.MarketRepository, namespace string) *CachingMarketRepository {
	if store == nil {
		store = NewMemoryStore()
	}
	if ttl <= 0 {
		ttl = usecase.RevalidateInterval
	}
	if namespace == "" {
		namespace = "markets"
	}
	return &CachingMarketRepository{
		inner:     inner,
		store:     store,
		ttl:       ttl,
		namespace: namespace,
	}
}

// TopAssets returns the cached list for q while it is fresh, otherwise fetches it.
// Concurrent misses for the same query share one provider call.
func (c *CachingMarketRepository) TopAssets(ctx context.Context, q entity.MarketQuery) ([]entity.Asset, error) {
	key := c.cacheKey(q)

	// 1) Check cache
	if assets, ok, err := c.store.Get(ctx, key); err != nil {
		slog.Warn("cache read failed, fetching from provider", "key", key, "error", err)
	} else if ok {
		telemetry.CacheHit()
		return entity.CloneAssets(assets), nil
	}
	telemetry.CacheMiss()

	// 2) Fallback to provider
	// The shared fetch outlives the caller that started it; the HTTP client
	// timeout still bounds it.
	fetchCtx := context.WithoutCancel(ctx)
	v, err, _ := c.group.Do(key, func() (any, error) {
		// A caller that missed just before the previous flight stored its
		// result starts a new flight; it must reuse that result.
		if assets, ok, err := c.store.Get(fetchCtx, key); err == nil && ok {
			return assets, nil
		}

		out, err := c.inner.TopAssets(fetchCtx, q)
		telemetry.UpstreamFetch(err)
		if err != nil {
			return nil, err
		}
		// 3) Store in cache (best effort)
		if err := c.store.Set(fetchCtx, key, out, c.ttl); err != nil {
			slog.Warn("cache write failed", "key", key, "error", err)
		}
		return out, nil
	})
	if err != nil {
		return nil, err
	}
	return entity.CloneAssets(v.([]entity.Asset)), nil
}

// cacheKey generates a cache key from the canonical request signature.
func (c *CachingMarketRepository) cacheKey(q entity.MarketQuery) string {
	return c.namespace + ":coins_markets:" + q.Key()
}
