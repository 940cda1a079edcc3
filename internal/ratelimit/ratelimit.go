// Package ratelimit implements fixed-window rate limiting over Redis
// counters. A burst straddling a window boundary can momentarily pass up to
// twice the limit; that is the accepted fixed-window tradeoff.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// FixedWindow counts events per key in wall-clock windows of fixed length.
type FixedWindow struct {
	client *redis.Client
}

// NewFixedWindow creates a FixedWindow limiter.
func NewFixedWindow(client *redis.Client) *FixedWindow {
	return &FixedWindow{client: client}
}

// Allow increments the counter for key and reports whether the event is
// within the limit. The first increment in a window sets the expiry to the
// window length.
func (f *FixedWindow) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	count, err := f.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("increment rate counter: %w", err)
	}

	if count == 1 {
		if err := f.client.Expire(ctx, key, window).Err(); err != nil {
			return false, fmt.Errorf("set rate window expiry: %w", err)
		}
	}

	return count <= int64(limit), nil
}

// TTL returns the remaining time in the current window for key, or zero if
// the key has no expiry or does not exist.
func (f *FixedWindow) TTL(ctx context.Context, key string) (time.Duration, error) {
	ttl, err := f.client.TTL(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("rate window ttl: %w", err)
	}
	if ttl < 0 {
		return 0, nil
	}
	return ttl, nil
}
