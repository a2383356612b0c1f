package catalog

import (
	"context"
	"testing"
	"time"

	"dinebot/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type countingFetcher struct {
	cat   models.Catalog
	calls int
}

func (f *countingFetcher) FetchAll(ctx context.Context) models.Catalog {
	f.calls++
	return f.cat
}

func newCachedFetcher(t *testing.T, inner Fetcher) *CachedFetcher {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewCachedFetcher(inner, client, time.Minute, zap.NewNop())
}

func TestCachedFetcherServesSecondCallFromCache(t *testing.T) {
	inner := &countingFetcher{cat: models.Catalog{
		Restaurants: []models.Restaurant{{ID: "r1", Name: "Spice Route"}},
	}}
	fetcher := newCachedFetcher(t, inner)
	ctx := context.Background()

	first := fetcher.FetchAll(ctx)
	second := fetcher.FetchAll(ctx)

	assert.Equal(t, 1, inner.calls, "the second read must come from the cache")
	require.Len(t, second.Restaurants, 1)
	assert.Equal(t, first, second)
}

func TestCachedFetcherNeverCachesAnEmptySnapshot(t *testing.T) {
	inner := &countingFetcher{}
	fetcher := newCachedFetcher(t, inner)
	ctx := context.Background()

	fetcher.FetchAll(ctx)
	fetcher.FetchAll(ctx)

	assert.Equal(t, 2, inner.calls, "an upstream outage must not be pinned for a TTL")
}

func TestCachedFetcherFallsThroughWhenRedisIsDown(t *testing.T) {
	inner := &countingFetcher{cat: models.Catalog{
		Items: []models.Item{{ID: "i1", Name: "Chicken Biryani"}},
	}}
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	mr.Close()

	fetcher := NewCachedFetcher(inner, client, time.Minute, zap.NewNop())
	cat := fetcher.FetchAll(context.Background())

	require.Len(t, cat.Items, 1)
	assert.Equal(t, 1, inner.calls)
}
