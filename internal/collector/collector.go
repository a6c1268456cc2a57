package collector

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"CryptoBit/internal/model"
)

// RateLimitCooldown is how long market fetches are skipped after HTTP 429.
const RateLimitCooldown = 60 * time.Second

// MockMarketFetcher returns controllable fixed data for development and testing.
type MockMarketFetcher struct {
	Quotes map[string]model.Quote
	Err    error
}

func (m *MockMarketFetcher) Name() string { return "mock-market" }

func (m *MockMarketFetcher) FetchQuotes(_ context.Context, _ map[string]string) (map[string]model.Quote, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Quotes, nil
}

// MockSentimentFetcher returns a fixed Fear & Greed value.
type MockSentimentFetcher struct {
	Value int
	Err   error
}

func (m *MockSentimentFetcher) Name() string { return "mock-sentiment" }

func (m *MockSentimentFetcher) FetchFearGreed(_ context.Context) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	return m.Value, nil
}

// Collector fetches quotes and sentiment for each poll cycle.
type Collector struct {
	Market    MarketFetcher
	Sentiment SentimentFetcher
	Coins     map[string]string // symbol -> remote id

	mu            sync.Mutex
	cooldownUntil time.Time
}

// NewCollector creates a new Collector.
func NewCollector(market MarketFetcher, sentiment SentimentFetcher, coins map[string]string) *Collector {
	return &Collector{Market: market, Sentiment: sentiment, Coins: coins}
}

// Collect returns the current quotes and sentiment value. Market failures
// yield an empty quote map for the cycle; a 429 additionally starts the
// rate-limit cooldown. Sentiment failures yield the neutral value 50.
func (c *Collector) Collect(ctx context.Context) (map[string]model.Quote, int) {
	quotes := map[string]model.Quote{}

	c.mu.Lock()
	cooling := time.Now().Before(c.cooldownUntil)
	c.mu.Unlock()

	if cooling {
		log.Println("[WARN] market fetch skipped: rate-limit cooldown active")
	} else {
		q, err := c.Market.FetchQuotes(ctx, c.Coins)
		switch {
		case errors.Is(err, ErrRateLimited):
			c.mu.Lock()
			c.cooldownUntil = time.Now().Add(RateLimitCooldown)
			c.mu.Unlock()
			log.Printf("[WARN] rate limited by %s, cooling down for %v", c.Market.Name(), RateLimitCooldown)
		case err != nil:
			log.Printf("[WARN] quote fetch failed: %v", err)
		default:
			quotes = q
		}
	}

	fearGreed, err := c.Sentiment.FetchFearGreed(ctx)
	if err != nil {
		log.Printf("[WARN] sentiment fetch failed, defaulting to 50: %v", err)
		fearGreed = 50
	}
	return quotes, fearGreed
}
