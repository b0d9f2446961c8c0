// Package dto はmarketsフィーチャーの画面表示用データを定義します。
package dto

import (
	"strings"

	"forestcoin/internal/feature/markets/domain/entity"
	"forestcoin/internal/shared/format"
)

// AssetRow はダッシュボードの表の1行です。文字列はすべて表示用に整形済みです。
type AssetRow struct {
	Rank       int    // 1始まりの順位
	ID         string // 銘柄ID
	Name       string // 表示名
	Symbol     string // 大文字のティッカー
	Image      string // アイコンURL
	Price      string // 現在価格
	Change     string // 24時間変動率（欠損時はプレースホルダー）
	Direction  string // positive / negative / unknown
	BadgeClass string // 変動率バッジのCSSクラス
	MarketCap  string // 時価総額
	Volume     string // 24時間出来高
}

// DashboardPage はダッシュボードテンプレートに渡すデータです。
type DashboardPage struct {
	Title             string
	RevalidateSeconds int
	Rows              []AssetRow
}

// ErrorPage は取得失敗時のテンプレートに渡すデータです。
type ErrorPage struct {
	Title   string
	Message string // 固定のユーザー向けメッセージ
	Detail  string // 失敗の詳細（空の場合は表示しない）
}

// badgeClasses は変動方向ごとのバッジの配色です。
var badgeClasses = map[format.Direction]string{
	format.Positive: "badge badge--positive",
	format.Negative: "badge badge--negative",
	format.Unknown:  "badge badge--unknown",
}

// NewAssetRow は銘柄と順位から表示用の行を生成します。
func NewAssetRow(rank int, a entity.Asset) AssetRow {
	change, dir := format.PercentPtr(a.PriceChangePercentage24h)
	return AssetRow{
		Rank:       rank,
		ID:         a.ID,
		Name:       a.Name,
		Symbol:     strings.ToUpper(a.Symbol),
		Image:      a.Image,
		Price:      format.Currency(a.CurrentPrice),
		Change:     change,
		Direction:  dir.String(),
		BadgeClass: badgeClasses[dir],
		MarketCap:  format.Currency(a.MarketCap),
		Volume:     format.Currency(a.TotalVolume),
	}
}

// NewAssetRows は取得順（時価総額の降順）を保ったまま行に変換します。
func NewAssetRows(assets []entity.Asset) []AssetRow {
	rows := make([]AssetRow, 0, len(assets))
	for i, a := range assets {
		rows = append(rows, NewAssetRow(i+1, a))
	}
	return rows
}
