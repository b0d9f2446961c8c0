// Package api defines the JSON shapes shared by HTTP handlers.
package api

// ErrorResponse is the body of every JSON error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MarketDisplay holds the preformatted strings shown in the dashboard table.
type MarketDisplay struct {
	Price     string `json:"price"`
	Change24h string `json:"change_24h"`
	Direction string `json:"direction"`
	MarketCap string `json:"market_cap"`
	Volume24h string `json:"volume_24h"`
}

// MarketResponse is one asset as returned by GET /api/v1/markets.
type MarketResponse struct {
	Rank                     int           `json:"rank"`
	ID                       string        `json:"id"`
	Symbol                   string        `json:"symbol"`
	Name                     string        `json:"name"`
	Image                    string        `json:"image"`
	CurrentPrice             float64       `json:"current_price"`
	MarketCap                float64       `json:"market_cap"`
	TotalVolume              float64       `json:"total_volume"`
	PriceChangePercentage24h *float64      `json:"price_change_percentage_24h"`
	Display                  MarketDisplay `json:"display"`
}
