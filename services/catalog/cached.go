// File: services/catalog/cached.go
package catalog

import (
	"context"
	"encoding/json"
	"time"

	"dinebot/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const snapshotKey = "catalog:snapshot"

// CachedFetcher wraps a Fetcher with a short-lived redis cache so chat bursts
// don't hammer the catalog service. Cache misses and redis failures fall
// through to the wrapped fetcher; a turn never fails because the cache is down.
type CachedFetcher struct {
	inner  Fetcher
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedFetcher(inner Fetcher, client *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedFetcher {
	return &CachedFetcher{inner: inner, client: client, ttl: ttl, logger: logger}
}

func (f *CachedFetcher) FetchAll(ctx context.Context) models.Catalog {
	if data, err := f.client.Get(ctx, snapshotKey).Bytes(); err == nil {
		var cat models.Catalog
		if err := json.Unmarshal(data, &cat); err == nil {
			return cat
		}
		f.logger.Warn("catalog: dropping unreadable cache entry", zap.Error(err))
	}

	cat := f.inner.FetchAll(ctx)
	// An all-empty snapshot means the upstream is down; caching it would
	// pin the outage for a full TTL.
	if len(cat.Restaurants) == 0 && len(cat.Categories) == 0 && len(cat.Items) == 0 {
		return cat
	}
	if b, err := json.Marshal(cat); err == nil {
		if err := f.client.Set(ctx, snapshotKey, b, f.ttl).Err(); err != nil {
			f.logger.Warn("catalog: cache write failed", zap.Error(err))
		}
	}
	return cat
}
