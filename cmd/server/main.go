package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"forestcoin/internal/app/di"
	"forestcoin/internal/app/router"
	marketshandler "forestcoin/internal/feature/markets/transport/handler"
	"forestcoin/internal/platform/externalapi/coingecko"
	platformhandler "forestcoin/internal/platform/http/handler"
	infraredis "forestcoin/internal/platform/redis"
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}

	// Redis（任意。使えない場合はプロセス内キャッシュで動作）
	var rdb *redisv9.Client
	var pinger platformhandler.Pinger
	if tmp, err := infraredis.NewRedisClient(infraredis.LoadConfig()); err != nil {
		log.Println("[WARN] Redis unavailable. Using in-memory cache:", err)
	} else {
		rdb = tmp
		pinger = rdb
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// CoinGecko設定
	cfg := coingecko.LoadConfig()
	if cfg.APIKey == "" {
		log.Println("[INFO] COINGECKO_API_KEY is not set. Using the keyless public API.")
	}

	// Usecase（プロバイダー + 60秒の再検証キャッシュ）
	marketsUC := di.NewMarketsUsecase(cfg, rdb)

	// Handler
	marketsH := marketshandler.NewMarketsHandler(marketsUC)

	// ルータ生成
	r := router.NewRouter(marketsH, platformhandler.HealthWithRedis(pinger))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
