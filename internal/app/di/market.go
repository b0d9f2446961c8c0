// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"

	"forestcoin/internal/feature/markets/usecase"
	"forestcoin/internal/platform/cache"
	"forestcoin/internal/platform/externalapi/coingecko"
	infrahttp "forestcoin/internal/platform/http"
	"forestcoin/internal/shared/ratelimiter"
)

// NewMarket creates a fully configured CoinGeckoMarket with HTTP client and rate limiter.
func NewMarket(cfg coingecko.Config) *coingecko.CoinGeckoMarket {
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	limiter := ratelimiter.NewRateLimiter(cfg.MaxRequestsMin, time.Minute)
	return coingecko.NewCoinGeckoMarket(cfg, httpClient, limiter)
}

// NewCacheStore returns a Redis-backed store when rdb is available.
// Otherwise, it falls back to an in-process memory store.
func NewCacheStore(rdb *redis.Client) cache.Store {
	if rdb != nil {
		return cache.NewRedisStore(rdb)
	}
	return cache.NewMemoryStore()
}

// NewMarketsUsecase wires the provider, the revalidation cache and the usecase.
func NewMarketsUsecase(cfg coingecko.Config, rdb *redis.Client) *usecase.MarketsUsecase {
	market := NewMarket(cfg)
	cached := cache.NewCachingMarketRepository(NewCacheStore(rdb), usecase.RevalidateInterval, market, "markets")
	return usecase.NewMarketsUsecase(cached)
}
