// Package telemetry publishes process counters through expvar (/debug/vars).
package telemetry

import (
	"expvar"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	httpRequestsTotal         = expvar.NewInt("http_requests_total")
	httpRequestErrorsTotal    = expvar.NewInt("http_request_errors_total")
	httpRequestLatencyMsTotal = expvar.NewInt("http_request_latency_ms_total")
	httpRequestsByRoute       = expvar.NewMap("http_requests_by_route")
	cacheHitsTotal            = expvar.NewInt("market_cache_hits_total")
	cacheMissesTotal          = expvar.NewInt("market_cache_misses_total")
	upstreamFetchesTotal      = expvar.NewInt("market_upstream_fetches_total")
	upstreamErrorsTotal       = expvar.NewInt("market_upstream_errors_total")
)

// RequestMetrics records request volume, error count and latency per route.
func RequestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "/unknown"
		}
		key := strings.TrimSpace(c.Request.Method + " " + route)

		httpRequestsTotal.Add(1)
		httpRequestsByRoute.Add(key, 1)
		if c.Writer.Status() >= 400 {
			httpRequestErrorsTotal.Add(1)
		}
		httpRequestLatencyMsTotal.Add(time.Since(start).Milliseconds())
	}
}

// Handler serves all expvar variables as JSON.
func Handler() gin.HandlerFunc {
	return gin.WrapH(expvar.Handler())
}

// CacheHit counts one market request served from the revalidation cache.
func CacheHit() { cacheHitsTotal.Add(1) }

// CacheMiss counts one market request that had to go to the provider.
func CacheMiss() { cacheMissesTotal.Add(1) }

// UpstreamFetch counts one provider call and whether it failed.
func UpstreamFetch(err error) {
	upstreamFetchesTotal.Add(1)
	if err != nil {
		upstreamErrorsTotal.Add(1)
	}
}

// Snapshot holds the market counters reported by /healthz.
type Snapshot struct {
	CacheHits      int64 `json:"cache_hits"`
	CacheMisses    int64 `json:"cache_misses"`
	UpstreamCalls  int64 `json:"upstream_calls"`
	UpstreamErrors int64 `json:"upstream_errors"`
}

// Markets returns the current market counters.
func Markets() Snapshot {
	return Snapshot{
		CacheHits:      cacheHitsTotal.Value(),
		CacheMisses:    cacheMissesTotal.Value(),
		UpstreamCalls:  upstreamFetchesTotal.Value(),
		UpstreamErrors: upstreamErrorsTotal.Value(),
	}
}
