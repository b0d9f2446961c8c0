// Package ratelimiter は外部API呼び出しの頻度を制限します。
package ratelimiter

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiterInterface は、API呼び出しなどの操作の頻度を制限するインターフェースです。
type RateLimiterInterface interface {
	// Wait は呼び出しが許可されるまで待機します。ctxがキャンセルされた場合はエラーを返します。
	Wait(ctx context.Context) error
}

// RateLimiter は、interval あたり limit 回までの呼び出しを許可します。
type RateLimiter struct {
	limiter  *rate.Limiter
	limit    int
	interval time.Duration
}

// NewRateLimiter は新しいRateLimiterのインスタンスを生成します。
// limit が0以下の場合は制限なしになります。
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	if limit <= 0 || interval <= 0 {
		return &RateLimiter{limiter: rate.NewLimiter(rate.Inf, 0)}
	}
	every := rate.Every(interval / time.Duration(limit))
	return &RateLimiter{
		limiter:  rate.NewLimiter(every, limit),
		limit:    limit,
		interval: interval,
	}
}

// Wait はレートリミットの上限に達しているかを確認し、必要であれば待機します。
func (rl *RateLimiter) Wait(ctx context.Context) error {
	if rl.limiter.Allow() {
		return nil
	}
	slog.Warn("rate limit reached, waiting", "limit", rl.limit, "interval", rl.interval)
	return rl.limiter.Wait(ctx)
}
