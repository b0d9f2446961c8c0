// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"forestcoin/internal/platform/telemetry"
)

// redisPingTimeout はヘルスチェック時のRedis疎通確認の上限時間です。
const redisPingTimeout = time.Second

// Redisの状態表示
const (
	RedisDisabled    = "disabled"
	RedisOK          = "ok"
	RedisUnreachable = "unreachable"
)

// Pinger はRedisクライアントの疎通確認部分だけを抽象化します。
type Pinger interface {
	Ping(ctx context.Context) *redis.StatusCmd
}

// HealthResponse は /healthz のJSON本文です。
type HealthResponse struct {
	Status string             `json:"status"`
	Redis  string             `json:"redis"`
	Cache  telemetry.Snapshot `json:"cache"`
}

// HealthWithRedis はサービスヘルスチェック用の /healthz エンドポイントを処理します。
// Redisの疎通状況とマーケットキャッシュの計測値を含めて応答します。
// rdbがnilの場合はメモリキャッシュで動作中として "disabled" を返します。
// Redisに届かなくてもキャッシュはプロバイダーへ直接フォールバックするため、ステータスは200のままです。
func HealthWithRedis(rdb Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		state := RedisDisabled
		if rdb != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), redisPingTimeout)
			defer cancel()
			if err := rdb.Ping(ctx).Err(); err != nil {
				slog.Warn("health check: redis ping failed", "error", err)
				state = RedisUnreachable
			} else {
				state = RedisOK
			}
		}
		respond(c, HealthResponse{Status: "ok", Redis: state, Cache: telemetry.Markets()})
	}
}

// respond はHTTPメソッドに応じて適切にレスポンスし、キャッシュを防止します。
func respond(c *gin.Context, body HealthResponse) {
	// 明示的にキャッシュを防止
	c.Header("Cache-Control", "no-store")

	// すべてのGET/HEAD/OPTIONSリクエストに対して200または204を返す
	switch c.Request.Method {
	case http.MethodHead:
		c.Status(http.StatusOK)
	case http.MethodOptions:
		c.Status(http.StatusNoContent)
	default:
		c.JSON(http.StatusOK, body)
	}
}
