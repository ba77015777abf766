// Package cache keeps rendered category listings in Redis so repeat page
// loads skip the directory fetch.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/staff-directory/internal/domain"
	"github.com/spec-kit/staff-directory/internal/persistence"
)

const keyPrefix = "staff:listing:"

// ListingCache is a best-effort read-through cache. Any Redis failure
// degrades to a miss; the cache never fails a request.
type ListingCache struct {
	redis  *persistence.Redis
	ttl    time.Duration
	logger *zap.Logger
}

// NewListingCache constructs the cache.
func NewListingCache(redis *persistence.Redis, ttl time.Duration, logger *zap.Logger) *ListingCache {
	return &ListingCache{redis: redis, ttl: ttl, logger: logger}
}

// Get returns the cached listing for a category, if present.
func (c *ListingCache) Get(ctx context.Context, category domain.Category) ([]domain.StaffRecord, bool) {
	if !c.enabled() {
		return nil, false
	}

	payload, err := c.redis.Client.Get(ctx, key(category)).Bytes()
	if err != nil {
		return nil, false
	}

	var records []domain.StaffRecord
	if err := json.Unmarshal(payload, &records); err != nil {
		c.logger.Warn("discarding corrupt listing cache entry",
			zap.String("category", string(category)), zap.Error(err))
		c.Invalidate(ctx, category)
		return nil, false
	}
	return records, true
}

// Set stores the listing for a category.
func (c *ListingCache) Set(ctx context.Context, category domain.Category, records []domain.StaffRecord) {
	if !c.enabled() {
		return
	}

	payload, err := json.Marshal(records)
	if err != nil {
		c.logger.Warn("failed to encode listing for cache", zap.Error(err))
		return
	}
	if err := c.redis.Client.Set(ctx, key(category), payload, c.ttl).Err(); err != nil {
		c.logger.Warn("failed to cache listing",
			zap.String("category", string(category)), zap.Error(err))
	}
}

// Invalidate drops the cached listing for a category. Called after every
// successful mutation.
func (c *ListingCache) Invalidate(ctx context.Context, category domain.Category) {
	if !c.enabled() {
		return
	}
	if err := c.redis.Client.Del(ctx, key(category)).Err(); err != nil {
		c.logger.Warn("failed to invalidate listing cache",
			zap.String("category", string(category)), zap.Error(err))
	}
}

func (c *ListingCache) enabled() bool {
	return c != nil && c.redis != nil && c.redis.Client != nil && c.ttl > 0
}

func key(category domain.Category) string {
	return keyPrefix + string(category)
}
