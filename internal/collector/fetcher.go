package collector

import (
	"context"
	"errors"

	"CryptoBit/internal/model"
)

// ErrRateLimited is returned when the market API responds with HTTP 429.
var ErrRateLimited = errors.New("market api rate limited")

// MarketFetcher fetches current quotes for a set of coins.
// The coins map is symbol -> remote id.
type MarketFetcher interface {
	FetchQuotes(ctx context.Context, coins map[string]string) (map[string]model.Quote, error)
	Name() string
}

// SentimentFetcher fetches the Fear & Greed index value in [0, 100].
type SentimentFetcher interface {
	FetchFearGreed(ctx context.Context) (int, error)
	Name() string
}
