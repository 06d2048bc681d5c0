package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madrasah-erp/finance/internal/application/adapter"
)

func newTestCache(t *testing.T) (*miniredis.Miniredis, *reportListCache) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cache := NewReportListCache(client, time.Minute, time.Second, DefaultBreakerSettings()).(*reportListCache)
	return server, cache
}

func TestReportListCache_SetGetInvalidate(t *testing.T) {
	server, cache := newTestCache(t)
	ctx := context.Background()
	schoolID := uuid.New()
	otherSchool := uuid.New()

	_, generation, hit := cache.Get(ctx, schoolID, "page=1")
	assert.False(t, hit)
	assert.Equal(t, adapter.CacheGeneration(0), generation)

	_, otherGeneration, _ := cache.Get(ctx, otherSchool, "page=1")
	cache.Set(ctx, schoolID, "page=1", generation, []byte(`{"reports":[]}`))
	cache.Set(ctx, otherSchool, "page=1", otherGeneration, []byte(`{"reports":[1]}`))

	page, _, hit := cache.Get(ctx, schoolID, "page=1")
	require.True(t, hit)
	assert.JSONEq(t, `{"reports":[]}`, string(page))
	assert.Equal(t, time.Minute, server.TTL(pageKey(schoolID, 0, "page=1")))

	require.NoError(t, cache.Invalidate(ctx, schoolID))

	_, generation, hit = cache.Get(ctx, schoolID, "page=1")
	assert.False(t, hit)
	assert.Equal(t, adapter.CacheGeneration(1), generation)

	_, _, hit = cache.Get(ctx, otherSchool, "page=1")
	assert.True(t, hit)
}

func TestReportListCache_InvalidateBetweenMissAndStore(t *testing.T) {
	_, cache := newTestCache(t)
	ctx := context.Background()
	schoolID := uuid.New()

	_, generation, hit := cache.Get(ctx, schoolID, "page=1")
	require.False(t, hit)

	require.NoError(t, cache.Invalidate(ctx, schoolID))
	cache.Set(ctx, schoolID, "page=1", generation, []byte(`{"reports":[]}`))

	page, current, hit := cache.Get(ctx, schoolID, "page=1")
	assert.False(t, hit)
	assert.Nil(t, page)
	assert.Equal(t, generation+1, current)
}

func TestReportListCache_FailuresAreMisses(t *testing.T) {
	server, cache := newTestCache(t)
	ctx := context.Background()
	schoolID := uuid.New()

	cache.Set(ctx, schoolID, "page=1", 0, []byte("{}"))
	server.Close()

	_, generation, hit := cache.Get(ctx, schoolID, "page=1")
	assert.False(t, hit)
	assert.Equal(t, adapter.NoCacheGeneration, generation)
	assert.Error(t, cache.Invalidate(ctx, schoolID))
}

func TestReportListCache_SetWithoutGenerationIsDropped(t *testing.T) {
	server, cache := newTestCache(t)
	ctx := context.Background()
	schoolID := uuid.New()

	cache.Set(ctx, schoolID, "page=1", adapter.NoCacheGeneration, []byte("{}"))

	assert.Empty(t, server.Keys())
}

func TestReportListCache_BreakerOpens(t *testing.T) {
	server, cache := newTestCache(t)
	ctx := context.Background()
	schoolID := uuid.New()
	server.Close()

	for i := 0; i < 5; i++ {
		_ = cache.Invalidate(ctx, schoolID)
	}

	err := cache.Invalidate(ctx, schoolID)
	require.Error(t, err)
	assert.ErrorContains(t, err, "circuit breaker is open")
}

func TestNoopReportListCache(t *testing.T) {
	cache := NewNoopReportListCache()
	ctx := context.Background()

	cache.Set(ctx, uuid.New(), "page=1", 0, []byte("{}"))
	_, generation, hit := cache.Get(ctx, uuid.New(), "page=1")
	assert.False(t, hit)
	assert.Equal(t, adapter.NoCacheGeneration, generation)
	assert.NoError(t, cache.Invalidate(ctx, uuid.New()))
}
