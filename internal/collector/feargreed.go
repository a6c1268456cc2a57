package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// FearGreedFetcher implements SentimentFetcher using the alternative.me
// Fear & Greed index API.
type FearGreedFetcher struct {
	BaseURL string
	Client  *http.Client
}

// NewFearGreedFetcher creates a fetcher with optional proxy support.
func NewFearGreedFetcher(baseURL, proxyURL string) *FearGreedFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &FearGreedFetcher{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client: &http.Client{
			Timeout:   8 * time.Second,
			Transport: transport,
		},
	}
}

func (f *FearGreedFetcher) Name() string { return "feargreed" }

func (f *FearGreedFetcher) FetchFearGreed(ctx context.Context) (int, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", f.BaseURL+"/fng/?limit=1", nil)
	if err != nil {
		return 0, err
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("feargreed fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("feargreed: status %d", resp.StatusCode)
	}

	var result struct {
		Data []struct {
			Value string `json:"value"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, fmt.Errorf("feargreed decode: %w", err)
	}
	if len(result.Data) == 0 {
		return 0, fmt.Errorf("feargreed: no data returned")
	}
	value, err := strconv.Atoi(result.Data[0].Value)
	if err != nil {
		return 0, fmt.Errorf("feargreed parse value: %w", err)
	}
	return value, nil
}
