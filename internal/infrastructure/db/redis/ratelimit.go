package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultLimit  = 30
	defaultWindow = time.Minute
)

// RateLimiter is a fixed-window counter backed by Redis.
// Key format: ratelimit:jwt:<client_key>
type RateLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

// NewRateLimiter creates a RateLimiter with the default budget of
// defaultLimit requests per defaultWindow.
func NewRateLimiter(client *redis.Client) *RateLimiter {
	return &RateLimiter{client: client, limit: defaultLimit, window: defaultWindow}
}

// Allow increments the counter for key and reports whether the caller
// is still within budget for the current window. The first hit in a
// window sets the expiry that closes it.
func (l *RateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := l.key(key)

	n, err := l.client.Incr(ctx, k).Result()
	if err != nil {
		return false, fmt.Errorf("rate limit incr: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, k, l.window).Err(); err != nil {
			return false, fmt.Errorf("rate limit expire: %w", err)
		}
	}

	return n <= l.limit, nil
}

func (l *RateLimiter) key(clientKey string) string {
	return fmt.Sprintf("ratelimit:jwt:%s", clientKey)
}
