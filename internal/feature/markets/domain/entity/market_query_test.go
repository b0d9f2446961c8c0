package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTopMarketQuery_Values(t *testing.T) {
	t.Parallel()

	v := NewTopMarketQuery(50).Values()

	assert.Equal(t, "usd", v.Get("vs_currency"))
	assert.Equal(t, "market_cap_desc", v.Get("order"))
	assert.Equal(t, "50", v.Get("per_page"))
	assert.Equal(t, "1", v.Get("page"))
	assert.Equal(t, "24h", v.Get("price_change_percentage"))
}

func TestMarketQuery_Key(t *testing.T) {
	t.Parallel()

	key := NewTopMarketQuery(50).Key()

	assert.Equal(t, "order=market_cap_desc&page=1&per_page=50&price_change_percentage=24h&vs_currency=usd", key)
	assert.Equal(t, key, NewTopMarketQuery(50).Key(), "equal queries must share a key")
	assert.NotEqual(t, key, NewTopMarketQuery(20).Key())
}

func TestCloneAssets(t *testing.T) {
	t.Parallel()

	change := 2.5
	in := []Asset{{ID: "bitcoin", PriceChangePercentage24h: &change}, {ID: "tether"}}

	out := CloneAssets(in)
	*out[0].PriceChangePercentage24h = -1
	out[1].Name = "mutated"

	assert.Equal(t, 2.5, *in[0].PriceChangePercentage24h)
	assert.Empty(t, in[1].Name)
	assert.Nil(t, CloneAssets(nil))
}
