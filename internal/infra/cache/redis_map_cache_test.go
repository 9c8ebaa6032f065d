package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"conecta/config"
	"conecta/internal/domain/entity"
	"conecta/internal/domain/service"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func setupTestRedis(t *testing.T) (service.MapCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisMapCache(client, time.Minute), mr
}

func sampleProjection() []*entity.MapProvider {
	lat, lon := 4.4389, -75.2322

	return []*entity.MapProvider{
		{ID: 1, Name: "Hotel Tolima", ProviderType: "hotel", Latitude: &lat, Longitude: &lon, ShortDescription: "Hotel céntrico"},
		{ID: 2, Name: "Hostal Sin Mapa", ProviderType: "hotel"},
	}
}

func TestRedisMapCache_Miss(t *testing.T) {
	cache, _ := setupTestRedis(t)

	providers, ok, err := cache.Get(context.Background(), nil)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, providers)
}

func TestRedisMapCache_SetThenGet(t *testing.T) {
	cache, mr := setupTestRedis(t)
	ctx := context.Background()
	hotel := "hotel"

	require.NoError(t, cache.Set(ctx, &hotel, 0, sampleProjection()))

	providers, ok, err := cache.Get(ctx, &hotel)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, sampleProjection(), providers)

	_, ok, err = cache.Get(ctx, nil)
	require.NoError(t, err)
	assert.False(t, ok, "filters are cached independently")

	assert.Equal(t, time.Minute, mr.TTL(mapKey))
}

func TestRedisMapCache_TypeFilterIsCaseSensitive(t *testing.T) {
	cache, _ := setupTestRedis(t)
	ctx := context.Background()
	lower, upper := "hotel", "Hotel"

	require.NoError(t, cache.Set(ctx, &lower, 0, sampleProjection()))

	_, ok, err := cache.Get(ctx, &upper)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisMapCache_EmptyProjectionIsAHit(t *testing.T) {
	cache, _ := setupTestRedis(t)
	ctx := context.Background()
	guide := "guia"

	require.NoError(t, cache.Set(ctx, &guide, 0, nil))

	providers, ok, err := cache.Get(ctx, &guide)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, providers)
}

func TestRedisMapCache_Invalidate(t *testing.T) {
	cache, mr := setupTestRedis(t)
	ctx := context.Background()
	hotel := "hotel"

	require.NoError(t, cache.Set(ctx, nil, 0, sampleProjection()))
	require.NoError(t, cache.Set(ctx, &hotel, 0, sampleProjection()))

	require.NoError(t, cache.Invalidate(ctx))
	assert.False(t, mr.Exists(mapKey))

	_, ok, err := cache.Get(ctx, nil)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisMapCache_FillAfterInvalidateIsDropped(t *testing.T) {
	cache, mr := setupTestRedis(t)
	ctx := context.Background()

	// A reader captures the generation, then a writer invalidates before the reader fills.
	generation, err := cache.Generation(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), generation)

	require.NoError(t, cache.Invalidate(ctx))

	require.NoError(t, cache.Set(ctx, nil, generation, sampleProjection()))
	assert.False(t, mr.Exists(mapKey))

	_, ok, err := cache.Get(ctx, nil)
	require.NoError(t, err)
	assert.False(t, ok)

	current, err := cache.Generation(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), current)

	require.NoError(t, cache.Set(ctx, nil, current, sampleProjection()))
	_, ok, err = cache.Get(ctx, nil)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisMapCache_ServerDown(t *testing.T) {
	cache, mr := setupTestRedis(t)
	mr.Close()

	_, _, err := cache.Get(context.Background(), nil)
	assert.Error(t, err)
	assert.Error(t, cache.Invalidate(context.Background()))
}

func TestNewMapCache_NoopWithoutRedis(t *testing.T) {
	cache := NewMapCache(MapCacheParams{
		Lc:     fxtest.NewLifecycle(t),
		Config: &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	ctx := context.Background()
	require.NoError(t, cache.Set(ctx, nil, 0, sampleProjection()))

	_, ok, err := cache.Get(ctx, nil)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, cache.Invalidate(ctx))
}

func TestNewMapCache_WithRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	lc := fxtest.NewLifecycle(t)

	cache := NewMapCache(MapCacheParams{
		Lc:     lc,
		Config: &config.Config{Redis: &config.RedisConfig{Addr: mr.Addr(), MapTTL: time.Minute}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	lc.RequireStart()

	ctx := context.Background()
	require.NoError(t, cache.Set(ctx, nil, 0, sampleProjection()))
	assert.True(t, mr.Exists(mapKey))

	lc.RequireStop()
}
