// Package handler はmarketsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"forestcoin/internal/api"
	"forestcoin/internal/feature/markets/domain"
	"forestcoin/internal/feature/markets/domain/entity"
	"forestcoin/internal/feature/markets/transport/http/dto"
	"forestcoin/internal/feature/markets/usecase"
	"forestcoin/internal/platform/web"
)

const (
	// PageTitle はダッシュボードの見出しです。
	PageTitle = "ForestCoin Dashboard"
	// FetchFailedMessage は取得失敗時にユーザーへ表示する固定文言です。
	FetchFailedMessage = "Failed to load cryptocurrency data. Please try again later."
)

// MarketsUsecase はマーケットデータ取得のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type MarketsUsecase interface {
	FetchTopAssets(ctx context.Context, limit int) ([]entity.Asset, error)
}

// MarketsHandler はダッシュボードとマーケットAPIのHTTPリクエストを処理します。
type MarketsHandler struct {
	uc MarketsUsecase
}

// NewMarketsHandler は指定されたusecaseでMarketsHandlerの新しいインスタンスを生成します。
func NewMarketsHandler(uc MarketsUsecase) *MarketsHandler {
	return &MarketsHandler{uc: uc}
}

// Dashboard は時価総額上位の銘柄をHTMLの表として描画します。
//
// エンドポイント:
// GET /
func (h *MarketsHandler) Dashboard(c *gin.Context) {
	assets, err := h.uc.FetchTopAssets(c.Request.Context(), usecase.DefaultLimit)
	if err != nil {
		slog.Error("failed to load dashboard", "error", err)
		c.Header("Cache-Control", "no-store")
		c.HTML(statusFor(err), web.ErrorTemplate, dto.ErrorPage{
			Title:   PageTitle,
			Message: FetchFailedMessage,
			Detail:  err.Error(),
		})
		return
	}

	c.Header("Cache-Control", cacheControl())
	c.HTML(http.StatusOK, web.DashboardTemplate, dto.DashboardPage{
		Title:             PageTitle,
		RevalidateSeconds: revalidateSeconds(),
		Rows:              dto.NewAssetRows(assets),
	})
}

// ListMarkets はダッシュボードと同じ行を生の数値と整形済み文字列の両方でJSONとして返します。
//
// エンドポイント:
// GET /api/v1/markets
func (h *MarketsHandler) ListMarkets(c *gin.Context) {
	assets, err := h.uc.FetchTopAssets(c.Request.Context(), usecase.DefaultLimit)
	if err != nil {
		slog.Error("failed to list markets", "error", err)
		c.JSON(statusFor(err), api.ErrorResponse{Error: err.Error()})
		return
	}

	out := make([]api.MarketResponse, 0, len(assets))
	for i, a := range assets {
		row := dto.NewAssetRow(i+1, a)
		out = append(out, api.MarketResponse{
			Rank:                     row.Rank,
			ID:                       a.ID,
			Symbol:                   a.Symbol,
			Name:                     a.Name,
			Image:                    a.Image,
			CurrentPrice:             a.CurrentPrice,
			MarketCap:                a.MarketCap,
			TotalVolume:              a.TotalVolume,
			PriceChangePercentage24h: a.PriceChangePercentage24h,
			Display: api.MarketDisplay{
				Price:     row.Price,
				Change24h: row.Change,
				Direction: row.Direction,
				MarketCap: row.MarketCap,
				Volume24h: row.Volume,
			},
		})
	}

	c.Header("Cache-Control", cacheControl())
	c.JSON(http.StatusOK, out)
}

// statusFor はプロバイダー起因の失敗を502、それ以外を500に対応付けます。
func statusFor(err error) int {
	if domain.IsFetchError(err) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func revalidateSeconds() int {
	return int(usecase.RevalidateInterval.Seconds())
}

// cacheControl はブラウザには保持させず、共有キャッシュ（CDN）にだけ再検証間隔分の再利用を許可します。
func cacheControl() string {
	return fmt.Sprintf("public, max-age=0, s-maxage=%d", revalidateSeconds())
}
