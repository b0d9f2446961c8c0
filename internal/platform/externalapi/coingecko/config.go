// Package coingecko provides a client for the CoinGecko market data API.
package coingecko

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	// PublicBaseURL is the keyless/demo API root.
	PublicBaseURL = "https://api.coingecko.com/api/v3"
	// ProBaseURL is the paid API root.
	ProBaseURL = "https://pro-api.coingecko.com/api/v3"

	demoAPIKeyHeader = "x-cg-demo-api-key"
	proAPIKeyHeader  = "x-cg-pro-api-key"
)

// Config holds configuration for the CoinGecko API client.
type Config struct {
	BaseURL        string        // Base URL for the API (e.g., "https://api.coingecko.com/api/v3")
	APIKey         string        // Optional API key; sent only when non-empty
	Timeout        time.Duration // Overall HTTP request timeout
	MaxRequestsMin int           // Outbound requests allowed per minute; 0 disables limiting
}

// LoadConfig loads CoinGecko configuration from environment variables.
func LoadConfig() Config {
	cfg := Config{
		BaseURL:        os.Getenv("COINGECKO_BASE_URL"),
		APIKey:         os.Getenv("COINGECKO_API_KEY"),
		Timeout:        10 * time.Second,
		MaxRequestsMin: 30,
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL(os.Getenv("COINGECKO_PLAN"))
	}
	if v := os.Getenv("COINGECKO_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
	if v := os.Getenv("COINGECKO_MAX_RPM"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRequestsMin = n
		}
	}
	return cfg
}

// DefaultBaseURL returns the API root for the given plan ("pro" or anything else).
func DefaultBaseURL(plan string) string {
	if strings.EqualFold(strings.TrimSpace(plan), "pro") {
		return ProBaseURL
	}
	return PublicBaseURL
}

// apiKeyHeader picks the header name CoinGecko expects for the base URL.
func apiKeyHeader(baseURL string) string {
	if strings.Contains(baseURL, "pro-api.coingecko.com") {
		return proAPIKeyHeader
	}
	return demoAPIKeyHeader
}
