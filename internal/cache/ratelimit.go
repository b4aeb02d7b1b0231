package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// rateLimitPrefix is the Redis key prefix for per-client auth rate limits.
const rateLimitPrefix = "ratelimit:auth:"

// fixedWindowScript increments the counter for the current window and sets
// the window expiry on first hit, atomically.
var fixedWindowScript = redis.NewScript(`
	local key = KEYS[1]
	local window = tonumber(ARGV[1])

	local count = redis.call('INCR', key)
	if count == 1 then
		redis.call('PEXPIRE', key, window)
	end

	local ttl = redis.call('PTTL', key)
	return {count, ttl}
`)

// RateLimitResult contains the result of a rate limit check.
type RateLimitResult struct {
	Allowed    bool
	Remaining  int64
	RetryAfter time.Duration
}

// CheckAuthRateLimit checks and updates the fixed-window rate limit for a
// client hitting the auth endpoints. The key is typically the client IP.
func (c *Cache) CheckAuthRateLimit(ctx context.Context, client string, max int, window time.Duration) (*RateLimitResult, error) {
	key := rateLimitPrefix + client

	res, err := fixedWindowScript.Run(ctx, c.client, []string{key}, window.Milliseconds()).Int64Slice()
	if err != nil {
		return nil, fmt.Errorf("rate limit script failed: %w", err)
	}
	if len(res) != 2 {
		return nil, fmt.Errorf("rate limit script returned %d values", len(res))
	}

	count, ttlMillis := res[0], res[1]

	result := &RateLimitResult{
		Allowed:   count <= int64(max),
		Remaining: int64(max) - count,
	}
	if result.Remaining < 0 {
		result.Remaining = 0
	}
	if !result.Allowed && ttlMillis > 0 {
		result.RetryAfter = time.Duration(ttlMillis) * time.Millisecond
	}

	return result, nil
}
