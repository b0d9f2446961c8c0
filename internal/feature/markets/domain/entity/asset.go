// Package entity defines the domain models for the markets feature.
package entity

// Asset is one cryptocurrency's market snapshot at fetch time, exactly as the
// provider returned it. Values are in USD.
type Asset struct {
	ID           string  `json:"id"`            // Stable provider identifier (e.g., "bitcoin")
	Symbol       string  `json:"symbol"`        // Ticker, not unique across providers (e.g., "btc")
	Name         string  `json:"name"`          // Display name
	Image        string  `json:"image"`         // Icon URL
	CurrentPrice float64 `json:"current_price"` // Spot price
	MarketCap    float64 `json:"market_cap"`    // Total market capitalization
	TotalVolume  float64 `json:"total_volume"`  // 24h trading volume

	// PriceChangePercentage24h is nil when the provider sends null or omits it.
	PriceChangePercentage24h *float64 `json:"price_change_percentage_24h"`
}

// CloneAssets returns a deep copy so a cached snapshot is never shared with callers.
func CloneAssets(in []Asset) []Asset {
	if in == nil {
		return nil
	}
	out := make([]Asset, len(in))
	for i, a := range in {
		out[i] = a
		if a.PriceChangePercentage24h != nil {
			v := *a.PriceChangePercentage24h
			out[i].PriceChangePercentage24h = &v
		}
	}
	return out
}
