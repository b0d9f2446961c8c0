package coingecko

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"

	"forestcoin/internal/feature/markets/domain"
	"forestcoin/internal/feature/markets/domain/entity"
	"forestcoin/internal/feature/markets/usecase"
	"forestcoin/internal/shared/ratelimiter"
)

//go:generate mockgen -destination=mock_http_client_test.go -package=coingecko . HTTPClient

// HTTPClient は外部APIへのHTTPリクエストを実行するインターフェースです。
// *http.Client がこれを満たします。
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// CoinGeckoMarket はCoinGecko外部APIから銘柄一覧を取得するMarketRepository実装です。
type CoinGeckoMarket struct {
	cfg     Config
	client  HTTPClient
	limiter ratelimiter.RateLimiterInterface
}

// CoinGeckoMarketがMarketRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.MarketRepository = (*CoinGeckoMarket)(nil)

// NewCoinGeckoMarket は指定された設定とHTTPクライアントでCoinGeckoMarketの新しいインスタンスを生成します。
// limiter が nil の場合はレート制限を行いません。
func NewCoinGeckoMarket(cfg Config, client HTTPClient, limiter ratelimiter.RateLimiterInterface) *CoinGeckoMarket {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.BaseURL == "" {
		cfg.BaseURL = PublicBaseURL
	}
	return &CoinGeckoMarket{cfg: cfg, client: client, limiter: limiter}
}

// TopAssets は coins/markets エンドポイントを1回だけ呼び出し、
// レスポンスをそのまま entity.Asset のスライスとして返します。
// IDが空または重複する行を含む応答は拒否します。
// リトライは行いません。失敗はすべて *domain.FetchError になります。
func (m *CoinGeckoMarket) TopAssets(ctx context.Context, q entity.MarketQuery) ([]entity.Asset, error) {
	if m.limiter != nil {
		if err := m.limiter.Wait(ctx); err != nil {
			return nil, toFetchError(ctx, err)
		}
	}

	// URLを生成
	u := fmt.Sprintf("%s/coins/markets?%s", m.cfg.BaseURL, q.Values().Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &domain.FetchError{Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if m.cfg.APIKey != "" {
		req.Header.Set(apiKeyHeader(m.cfg.BaseURL), m.cfg.APIKey)
	}

	// リクエストを実行
	res, err := m.client.Do(req)
	if err != nil {
		return nil, toFetchError(ctx, err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		slog.Warn("coingecko returned non-success status", "status", res.StatusCode, "per_page", q.PerPage)
		return nil, &domain.FetchError{StatusCode: res.StatusCode, Status: statusText(res)}
	}

	// JSONレスポンスをデコード（フィールドの変換・null補正は行わない）
	var assets []entity.Asset
	if err := json.NewDecoder(res.Body).Decode(&assets); err != nil {
		return nil, toFetchError(ctx, fmt.Errorf("decode markets response: %w", err))
	}
	// 不正な行を含む応答は全体を拒否する（キャッシュにも保存されない）
	if err := validateAssets(assets); err != nil {
		slog.Warn("coingecko returned invalid assets", "error", err)
		return nil, &domain.FetchError{Err: err}
	}
	return assets, nil
}

// validateAssets checks that every asset has a non-empty id, unique within the response.
func validateAssets(assets []entity.Asset) error {
	seen := make(map[string]int, len(assets))
	for i, a := range assets {
		if a.ID == "" {
			return fmt.Errorf("asset at position %d has empty id", i)
		}
		if j, ok := seen[a.ID]; ok {
			return fmt.Errorf("duplicate asset id %q at positions %d and %d", a.ID, j, i)
		}
		seen[a.ID] = i
	}
	return nil
}

// statusText returns the reason phrase without the numeric code ("503 Service Unavailable" -> "Service Unavailable").
func statusText(res *http.Response) string {
	if s := strings.TrimSpace(strings.TrimPrefix(res.Status, strconv.Itoa(res.StatusCode))); s != "" {
		return s
	}
	return http.StatusText(res.StatusCode)
}

// toFetchError wraps err, flagging deadline expiry and client timeouts.
func toFetchError(ctx context.Context, err error) *domain.FetchError {
	var netErr net.Error
	timeout := errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(ctx.Err(), context.DeadlineExceeded) ||
		(errors.As(err, &netErr) && netErr.Timeout())
	return &domain.FetchError{Timeout: timeout, Err: err}
}
