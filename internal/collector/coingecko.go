package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"CryptoBit/internal/model"
)

// CoinGeckoFetcher implements MarketFetcher using the CoinGecko public API.
type CoinGeckoFetcher struct {
	BaseURL   string
	UserAgent string
	Client    *http.Client
}

// NewCoinGeckoFetcher creates a fetcher with optional proxy support.
func NewCoinGeckoFetcher(baseURL, userAgent, proxyURL string) *CoinGeckoFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &CoinGeckoFetcher{
		BaseURL:   strings.TrimRight(baseURL, "/"),
		UserAgent: userAgent,
		Client: &http.Client{
			Timeout:   10 * time.Second,
			Transport: transport,
		},
	}
}

func (f *CoinGeckoFetcher) Name() string { return "coingecko" }

// cgMarket is the per-coin shape of the /coins/markets response.
type cgMarket struct {
	Symbol       string  `json:"symbol"`
	CurrentPrice float64 `json:"current_price"`
	Change24h    float64 `json:"price_change_percentage_24h"`
	TotalVolume  float64 `json:"total_volume"`
}

func (f *CoinGeckoFetcher) FetchQuotes(ctx context.Context, coins map[string]string) (map[string]model.Quote, error) {
	ids := make([]string, 0, len(coins))
	symbols := make(map[string]string, len(coins)) // upper symbol -> configured symbol
	for sym, id := range coins {
		ids = append(ids, id)
		symbols[strings.ToUpper(sym)] = sym
	}
	sort.Strings(ids)

	endpoint := fmt.Sprintf("%s/coins/markets?vs_currency=usd&ids=%s&price_change_percentage=24h",
		f.BaseURL, url.QueryEscape(strings.Join(ids, ",")))

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", f.UserAgent)

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("coingecko fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, ErrRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("coingecko: status %d, body: %s", resp.StatusCode, string(body))
	}

	var markets []cgMarket
	if err := json.NewDecoder(resp.Body).Decode(&markets); err != nil {
		return nil, fmt.Errorf("coingecko decode: %w", err)
	}

	quotes := make(map[string]model.Quote, len(markets))
	for _, m := range markets {
		sym, ok := symbols[strings.ToUpper(m.Symbol)]
		if !ok {
			continue
		}
		quotes[sym] = model.Quote{
			Symbol:    sym,
			Price:     m.CurrentPrice,
			Change24h: m.Change24h,
			Volume:    m.TotalVolume,
		}
	}
	return quotes, nil
}
