package entity

import (
	"net/url"
	"strconv"
)

const (
	// VsCurrencyUSD is the only quote currency the dashboard renders.
	VsCurrencyUSD = "usd"
	// OrderMarketCapDesc asks the provider to rank by market cap, largest first.
	OrderMarketCapDesc = "market_cap_desc"
	// PriceChange24h requests the inline 24h percentage change.
	PriceChange24h = "24h"
)

// MarketQuery is the full parameter set of a "coins markets" request.
// Two queries with equal fields always produce the same Key.
type MarketQuery struct {
	VsCurrency            string
	Order                 string
	PerPage               int
	Page                  int
	PriceChangePercentage string
}

// NewTopMarketQuery builds the query for the first page of the top `limit`
// assets by market cap in USD, including the 24h change.
func NewTopMarketQuery(limit int) MarketQuery {
	return MarketQuery{
		VsCurrency:            VsCurrencyUSD,
		Order:                 OrderMarketCapDesc,
		PerPage:               limit,
		Page:                  1,
		PriceChangePercentage: PriceChange24h,
	}
}

// Values returns the query as URL parameters.
func (q MarketQuery) Values() url.Values {
	v := url.Values{}
	v.Set("vs_currency", q.VsCurrency)
	v.Set("order", q.Order)
	v.Set("per_page", strconv.Itoa(q.PerPage))
	v.Set("page", strconv.Itoa(q.Page))
	if q.PriceChangePercentage != "" {
		v.Set("price_change_percentage", q.PriceChangePercentage)
	}
	return v
}

// Key returns the canonical serialization of the query (keys sorted).
func (q MarketQuery) Key() string {
	return q.Values().Encode()
}
