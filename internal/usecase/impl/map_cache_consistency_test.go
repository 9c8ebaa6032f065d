package impl

import (
	"context"
	"testing"
	"time"

	"conecta/internal/domain/entity"
	"conecta/internal/infra/cache"
	mockRepo "conecta/internal/mocks/repository"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// An update that lands while a map read is between its query and its cache fill
// must not leave the pre-update projection cached.
func TestMapService_UpdateDuringReadDoesNotCacheStaleProjection(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	mapCache := cache.NewRedisMapCache(client, time.Minute)

	providerRepo := mockRepo.NewMockProviderRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	store := newMemoryDirectory()
	store.bind(providerRepo, reviewRepo)

	providers := NewProviderService(ProviderServiceParams{
		ProviderRepo: providerRepo,
		MapCache:     mapCache,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})
	maps := NewMapService(MapServiceParams{
		ProviderRepo: providerRepo,
		MapCache:     mapCache,
		Logger:       newDiscardLogger(),
	})

	ctx := context.Background()
	created, err := providers.CreateProvider(ctx, hotelTolimaInput())
	require.NoError(t, err)

	snapshot := func() []*entity.Provider {
		rows := make([]*entity.Provider, 0, len(store.providers))
		for _, provider := range store.providers {
			row := *provider
			rows = append(rows, &row)
		}

		return rows
	}

	// The first read takes its rows, then an update commits before the fill.
	providerRepo.EXPECT().ListForMap(mock.Anything, (*string)(nil)).
		RunAndReturn(func(ctx context.Context, _ *string) ([]*entity.Provider, error) {
			rows := snapshot()
			_, err := providers.UpdateProvider(ctx, created.ID, &entity.ProviderPatch{Name: entity.Some("Hotel Tolima Plaza")})
			require.NoError(t, err)

			return rows, nil
		}).Once()
	providerRepo.EXPECT().ListForMap(mock.Anything, (*string)(nil)).
		RunAndReturn(func(context.Context, *string) ([]*entity.Provider, error) {
			return snapshot(), nil
		})

	stale, err := maps.ProvidersForMap(ctx, nil)
	require.NoError(t, err)
	require.Len(t, stale, 1)
	assert.Equal(t, "Hotel Tolima", stale[0].Name)

	fresh, err := maps.ProvidersForMap(ctx, nil)
	require.NoError(t, err)
	require.Len(t, fresh, 1)
	assert.Equal(t, "Hotel Tolima Plaza", fresh[0].Name)

	cached, err := maps.ProvidersForMap(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, fresh, cached)
	providerRepo.AssertNumberOfCalls(t, "ListForMap", 2)
}
