package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"CryptoBit/internal/model"
)

const (
	snapshotKey = "cryptobit:snapshot"
	quoteKeyFmt = "cryptobit:quote:%s"

	// Entries outlive several poll cycles but expire quickly once the
	// poller stops, so external readers never see stale data as fresh.
	entryTTL = 5 * time.Minute
)

// SnapshotCache mirrors the latest snapshot and per-coin quotes into Redis
// for external readers. The in-memory store remains the source of truth;
// the service degrades to memory-only when Redis is absent.
type SnapshotCache struct {
	client *redis.Client
}

// New connects to Redis and verifies the connection.
func New(addr, password string, db int) (*SnapshotCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &SnapshotCache{client: client}, nil
}

// SetSnapshot stores the full dashboard snapshot.
func (c *SnapshotCache) SetSnapshot(ctx context.Context, snap *model.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := c.client.Set(ctx, snapshotKey, data, entryTTL).Err(); err != nil {
		return fmt.Errorf("set snapshot: %w", err)
	}
	return nil
}

// SetQuote stores the latest quote for one coin.
func (c *SnapshotCache) SetQuote(ctx context.Context, q model.Quote) error {
	data, err := json.Marshal(q)
	if err != nil {
		return fmt.Errorf("marshal quote: %w", err)
	}
	key := fmt.Sprintf(quoteKeyFmt, q.Symbol)
	if err := c.client.Set(ctx, key, data, entryTTL).Err(); err != nil {
		return fmt.Errorf("set quote %s: %w", q.Symbol, err)
	}
	return nil
}

// GetQuote retrieves the latest cached quote for a coin.
func (c *SnapshotCache) GetQuote(ctx context.Context, symbol string) (*model.Quote, error) {
	data, err := c.client.Get(ctx, fmt.Sprintf(quoteKeyFmt, symbol)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("no cached quote for %s", symbol)
		}
		return nil, fmt.Errorf("get quote %s: %w", symbol, err)
	}
	var q model.Quote
	if err := json.Unmarshal([]byte(data), &q); err != nil {
		return nil, fmt.Errorf("unmarshal quote %s: %w", symbol, err)
	}
	return &q, nil
}

// Ping checks connectivity for health reporting.
func (c *SnapshotCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close releases the Redis connection.
func (c *SnapshotCache) Close() error {
	return c.client.Close()
}
