// Package redis caches assembled search pages per owner. Entries are
// short-lived and every write by an owner flushes that owner's entries,
// so a cached page is never served across a mutation.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/linkvault/linkvault/internal/search"
)

// DefaultSearchTTL bounds staleness for cache entries that survive
// because the owner made no writes.
const DefaultSearchTTL = 5 * time.Minute

// Cache handles Redis operations for search results.
type Cache struct {
	client *redis.Client
}

// NewCache creates a new Redis-backed search cache.
func NewCache(client *redis.Client) *Cache {
	return &Cache{client: client}
}

// GetSearch returns the cached result for q, or (nil, nil) on a miss.
func (c *Cache) GetSearch(ctx context.Context, q search.Query) (*search.Result, error) {
	data, err := c.client.Get(ctx, SearchKey(q)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil // cache miss
		}
		return nil, fmt.Errorf("failed to get cached search: %w", err)
	}

	var res search.Result
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached search: %w", err)
	}
	return &res, nil
}

// PutSearch stores the result for q with the given TTL.
func (c *Cache) PutSearch(ctx context.Context, q search.Query, res *search.Result, ttl time.Duration) error {
	data, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("failed to marshal search result: %w", err)
	}
	if err := c.client.Set(ctx, SearchKey(q), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache search result: %w", err)
	}
	return nil
}

// FlushOwner removes every cached search result belonging to ownerID.
// Called after any bookmark write by that owner.
func (c *Cache) FlushOwner(ctx context.Context, ownerID string) error {
	iter := c.client.Scan(ctx, 0, OwnerPattern(ownerID), 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete cache key: %w", err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to flush owner cache: %w", err)
	}
	return nil
}
