package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"forestcoin/internal/feature/markets/domain/entity"
	"forestcoin/internal/shared/format"
)

func TestNewAssetRow(t *testing.T) {
	t.Parallel()

	up, down := 1.234, -0.5
	tests := []struct {
		name     string
		asset    entity.Asset
		expected AssetRow
	}{
		{
			name: "positive change",
			asset: entity.Asset{
				ID: "bitcoin", Symbol: "btc", Name: "Bitcoin", Image: "https://example.com/btc.png",
				CurrentPrice: 67890, MarketCap: 1_500_000_000, TotalVolume: 2_300_000,
				PriceChangePercentage24h: &up,
			},
			expected: AssetRow{
				Rank: 1, ID: "bitcoin", Name: "Bitcoin", Symbol: "BTC", Image: "https://example.com/btc.png",
				Price: "$67,890", Change: "+1.23%", Direction: "positive", BadgeClass: "badge badge--positive",
				MarketCap: "$1.50B", Volume: "$2.30M",
			},
		},
		{
			name: "negative change",
			asset: entity.Asset{
				ID: "ethereum", Symbol: "eth", Name: "Ethereum",
				CurrentPrice: 1234.5, MarketCap: 1_000_000, TotalVolume: 0,
				PriceChangePercentage24h: &down,
			},
			expected: AssetRow{
				Rank: 1, ID: "ethereum", Name: "Ethereum", Symbol: "ETH",
				Price: "$1,234.50", Change: "-0.50%", Direction: "negative", BadgeClass: "badge badge--negative",
				MarketCap: "$1.00M", Volume: "$0",
			},
		},
		{
			name: "missing change",
			asset: entity.Asset{
				ID: "tether", Symbol: "usdt", Name: "Tether", CurrentPrice: 1,
			},
			expected: AssetRow{
				Rank: 1, ID: "tether", Name: "Tether", Symbol: "USDT",
				Price: "$1", Change: format.Placeholder, Direction: "unknown", BadgeClass: "badge badge--unknown",
				MarketCap: "$0", Volume: "$0",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, NewAssetRow(1, tt.asset))
		})
	}
}

func TestNewAssetRows_KeepsOrder(t *testing.T) {
	t.Parallel()

	rows := NewAssetRows([]entity.Asset{{ID: "a"}, {ID: "b"}, {ID: "c"}})
	assert.Len(t, rows, 3)
	for i, id := range []string{"a", "b", "c"} {
		assert.Equal(t, id, rows[i].ID)
		assert.Equal(t, i+1, rows[i].Rank)
	}

	assert.Empty(t, NewAssetRows(nil))
}
