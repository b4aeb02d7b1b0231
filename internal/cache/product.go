package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shopkit/shopkit/internal/model"
)

const (
	// productListKey is the Redis key holding the serialized product list.
	productListKey = "products:list"

	// DefaultProductListTTL bounds staleness when invalidation is missed.
	DefaultProductListTTL = 30 * time.Second
)

// ErrCacheMiss indicates the requested entry is not cached.
var ErrCacheMiss = errors.New("cache miss")

// GetProductList retrieves the cached product list.
// Returns ErrCacheMiss if the list is not cached.
func (c *Cache) GetProductList(ctx context.Context) ([]*model.Product, error) {
	data, err := c.client.Get(ctx, productListKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var products []*model.Product
	if err := json.Unmarshal(data, &products); err != nil {
		// Treat a corrupt entry as a miss; it will be overwritten.
		return nil, ErrCacheMiss
	}

	return products, nil
}

// SetProductList caches the product list with the given TTL.
// A non-positive TTL falls back to DefaultProductListTTL.
func (c *Cache) SetProductList(ctx context.Context, products []*model.Product, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = DefaultProductListTTL
	}

	data, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("marshal product list: %w", err)
	}

	if err := c.client.Set(ctx, productListKey, data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}

	return nil
}

// InvalidateProductList drops the cached product list.
func (c *Cache) InvalidateProductList(ctx context.Context) error {
	if err := c.client.Del(ctx, productListKey).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}
