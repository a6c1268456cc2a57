package collector

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"CryptoBit/internal/model"
)

func TestCoinGeckoFetcher_FetchQuotes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("vs_currency"); got != "usd" {
			t.Errorf("expected vs_currency=usd, got %q", got)
		}
		if got := r.URL.Query().Get("price_change_percentage"); got != "24h" {
			t.Errorf("expected price_change_percentage=24h, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"symbol":"btc","current_price":50000,"price_change_percentage_24h":2.5,"total_volume":1000000},
			{"symbol":"xrp","current_price":0.5,"price_change_percentage_24h":-1.0,"total_volume":900}
		]`))
	}))
	defer srv.Close()

	f := NewCoinGeckoFetcher(srv.URL, "test-agent", "")
	quotes, err := f.FetchQuotes(context.Background(), map[string]string{"BTC": "bitcoin"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(quotes) != 1 {
		t.Fatalf("expected 1 quote (untracked coins dropped), got %d", len(quotes))
	}
	q := quotes["BTC"]
	if q.Price != 50000 || q.Change24h != 2.5 || q.Volume != 1000000 {
		t.Errorf("unexpected quote %+v", q)
	}
}

func TestCoinGeckoFetcher_RateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	f := NewCoinGeckoFetcher(srv.URL, "test-agent", "")
	_, err := f.FetchQuotes(context.Background(), map[string]string{"BTC": "bitcoin"})
	if err != ErrRateLimited {
		t.Errorf("expected ErrRateLimited, got %v", err)
	}
}

func TestFearGreedFetcher(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[{"value":"37"}]}`))
	}))
	defer srv.Close()

	f := NewFearGreedFetcher(srv.URL, "")
	got, err := f.FetchFearGreed(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 37 {
		t.Errorf("expected 37, got %d", got)
	}
}

func TestFearGreedFetcher_NoData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	f := NewFearGreedFetcher(srv.URL, "")
	if _, err := f.FetchFearGreed(context.Background()); err == nil {
		t.Error("expected error for empty data")
	}
}

func TestCollector_SentimentFailureDefaultsTo50(t *testing.T) {
	c := NewCollector(
		&MockMarketFetcher{Quotes: map[string]model.Quote{"BTC": {Symbol: "BTC", Price: 100}}},
		&MockSentimentFetcher{Err: context.DeadlineExceeded},
		map[string]string{"BTC": "bitcoin"},
	)
	quotes, fg := c.Collect(context.Background())
	if len(quotes) != 1 {
		t.Errorf("expected quotes despite sentiment failure, got %d", len(quotes))
	}
	if fg != 50 {
		t.Errorf("expected neutral default 50, got %d", fg)
	}
}

// countingFetcher counts FetchQuotes calls and always rate-limits.
type countingFetcher struct {
	calls int
}

func (c *countingFetcher) Name() string { return "counting" }

func (c *countingFetcher) FetchQuotes(_ context.Context, _ map[string]string) (map[string]model.Quote, error) {
	c.calls++
	return nil, ErrRateLimited
}

func TestCollector_RateLimitCooldown(t *testing.T) {
	market := &countingFetcher{}
	c := NewCollector(market, &MockSentimentFetcher{Value: 50}, map[string]string{"BTC": "bitcoin"})

	quotes, _ := c.Collect(context.Background())
	if len(quotes) != 0 {
		t.Errorf("expected no quotes while rate limited, got %d", len(quotes))
	}
	if market.calls != 1 {
		t.Fatalf("expected 1 market call, got %d", market.calls)
	}

	// second cycle inside the cooldown must not hit the API again
	c.Collect(context.Background())
	if market.calls != 1 {
		t.Errorf("expected cooldown to skip the market call, got %d calls", market.calls)
	}
}
