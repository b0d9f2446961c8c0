// Package usecase は暗号資産マーケットデータ取得のビジネスロジックを実装します。
package usecase

import (
	"context"
	"time"

	"forestcoin/internal/feature/markets/domain"
	"forestcoin/internal/feature/markets/domain/entity"
)

const (
	// DefaultLimit はダッシュボードが常に要求する銘柄数です。
	DefaultLimit = 50
	// RevalidateInterval は取得結果を再利用する固定の再検証間隔です。
	RevalidateInterval = 60 * time.Second
)

// MarketRepository はマーケットデータ取得レイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type MarketRepository interface {
	// TopAssets は指定クエリでプロバイダーから銘柄一覧を取得します。
	TopAssets(ctx context.Context, q entity.MarketQuery) ([]entity.Asset, error)
}

// MarketsUsecase は時価総額上位銘柄の取得ユースケースです。
type MarketsUsecase struct {
	market MarketRepository
}

// NewMarketsUsecase はMarketsUsecaseの新しいインスタンスを生成します。
func NewMarketsUsecase(market MarketRepository) *MarketsUsecase {
	return &MarketsUsecase{market: market}
}

// FetchTopAssets は時価総額の降順で最大limit件の銘柄を返します。
// 並び順はプロバイダーの結果をそのまま維持し、ローカルで再ソートしません。
// エラーはすべて呼び出し元へ伝播します。
func (mu *MarketsUsecase) FetchTopAssets(ctx context.Context, limit int) ([]entity.Asset, error) {
	if limit <= 0 {
		return nil, domain.ErrInvalidLimit
	}

	assets, err := mu.market.TopAssets(ctx, entity.NewTopMarketQuery(limit))
	if err != nil {
		return nil, err
	}

	// プロバイダーが要求より多く返した場合でも契約（件数 <= limit）を守る
	if len(assets) > limit {
		assets = assets[:limit]
	}
	return assets, nil
}
