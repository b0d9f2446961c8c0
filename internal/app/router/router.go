package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	marketshandler "forestcoin/internal/feature/markets/transport/handler"
	"forestcoin/internal/platform/telemetry"
	"forestcoin/internal/platform/web"
)

func NewRouter(markets *marketshandler.MarketsHandler, health gin.HandlerFunc) *gin.Engine {
	r := gin.Default()
	r.Use(telemetry.RequestMetrics())
	r.SetHTMLTemplate(web.MustTemplates())

	// 導通確認用
	r.GET("/healthz", health)
	r.HEAD("/healthz", health)
	r.OPTIONS("/healthz", health)
	// expvarの計測値
	r.GET("/debug/vars", telemetry.Handler())
	// ロゴなどの埋め込み静的ファイル
	r.StaticFS("/static", http.FS(web.Static()))

	// サーバーサイドレンダリングのダッシュボード
	r.GET("/", markets.Dashboard)

	// 同じデータをJSONで公開（ブラウザから直接読めるようにCORSを許可）
	api := r.Group("/api/v1")
	api.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept"},
	}))
	{
		api.GET("/markets", markets.ListMarkets)
	}

	return r
}
