package impl

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"conecta/internal/domain/entity"
	domainerrors "conecta/internal/domain/errors"
	"conecta/internal/domain/repository"
	mockRepo "conecta/internal/mocks/repository"
	mockService "conecta/internal/mocks/service"
	"conecta/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// providerServiceFixtures holds all test dependencies for provider service tests.
type providerServiceFixtures struct {
	service      usecase.ProviderUsecase
	providerRepo *mockRepo.MockProviderRepository
	mapCache     *mockService.MockMapCache
}

func createTestProviderService(t *testing.T) providerServiceFixtures {
	providerRepo := mockRepo.NewMockProviderRepository(t)
	mapCache := mockService.NewMockMapCache(t)

	service := NewProviderService(ProviderServiceParams{
		ProviderRepo: providerRepo,
		MapCache:     mapCache,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return providerServiceFixtures{
		service:      service,
		providerRepo: providerRepo,
		mapCache:     mapCache,
	}
}

func hotelTolimaInput() *usecase.CreateProviderInput {
	return &usecase.CreateProviderInput{
		Name:             "Hotel Tolima",
		ProviderType:     "hotel",
		ShortDescription: "Hotel céntrico",
		Phone:            "3001234567",
		Address:          "Calle 10 # 5-20",
		City:             "Ibagué",
		Latitude:         float64Ptr(4.4389),
		Longitude:        float64Ptr(-75.2322),
	}
}

func TestProviderService_CreateProvider_Success(t *testing.T) {
	fx := createTestProviderService(t)

	ctx := context.Background()

	fx.providerRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Provider")).
		Run(func(_ context.Context, provider *entity.Provider) {
			provider.ID = 1
		}).
		Return(nil)
	fx.mapCache.EXPECT().Invalidate(ctx).Return(nil)
	fx.providerRepo.EXPECT().FindByID(ctx, int64(1)).Return(&entity.Provider{
		ID:           1,
		Name:         "Hotel Tolima",
		ProviderType: "hotel",
		Phone:        "3001234567",
		City:         "Ibagué",
		Available:    true,
	}, nil)

	detail, err := fx.service.CreateProvider(ctx, hotelTolimaInput())
	require.NoError(t, err)
	assert.Equal(t, int64(1), detail.ID)
	assert.Equal(t, "Hotel Tolima", detail.Name)
	assert.Equal(t, "3001234567", detail.Phone)
	assert.True(t, detail.Available)
	assert.NotNil(t, detail.Reviews)
	assert.Empty(t, detail.Reviews)
}

func TestProviderService_CreateProvider_AlwaysAvailable(t *testing.T) {
	fx := createTestProviderService(t)

	ctx := context.Background()

	fx.providerRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(provider *entity.Provider) bool {
			return provider.Available
		})).
		Return(nil)
	fx.mapCache.EXPECT().Invalidate(ctx).Return(nil)
	fx.providerRepo.EXPECT().FindByID(ctx, mock.Anything).Return(&entity.Provider{Available: true}, nil)

	_, err := fx.service.CreateProvider(ctx, hotelTolimaInput())
	require.NoError(t, err)
}

func TestProviderService_CreateProvider_DuplicatePhone(t *testing.T) {
	fx := createTestProviderService(t)

	ctx := context.Background()

	fx.providerRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Provider")).
		Return(repository.ErrDuplicatePhone)

	detail, err := fx.service.CreateProvider(ctx, hotelTolimaInput())
	assert.Nil(t, detail)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPhoneAlreadyRegistered))
}

func TestProviderService_CreateProvider_ValidationFailed(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(input *usecase.CreateProviderInput)
		field  string
	}{
		{
			name:   "blank name",
			mutate: func(input *usecase.CreateProviderInput) { input.Name = "   " },
			field:  "nombre",
		},
		{
			name:   "missing phone",
			mutate: func(input *usecase.CreateProviderInput) { input.Phone = "" },
			field:  "telefono",
		},
		{
			name:   "phone wider than its column",
			mutate: func(input *usecase.CreateProviderInput) { input.Phone = strings.Repeat("3", 31) },
			field:  "telefono",
		},
		{
			name:   "provider type wider than its column",
			mutate: func(input *usecase.CreateProviderInput) { input.ProviderType = strings.Repeat("h", 51) },
			field:  "tipo_proveedor",
		},
		{
			name:   "latitude out of range",
			mutate: func(input *usecase.CreateProviderInput) { input.Latitude = float64Ptr(91) },
			field:  "latitud",
		},
		{
			name:   "longitude out of range",
			mutate: func(input *usecase.CreateProviderInput) { input.Longitude = float64Ptr(-181) },
			field:  "longitud",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProviderService(t)

			input := hotelTolimaInput()
			tt.mutate(input)

			detail, err := fx.service.CreateProvider(context.Background(), input)
			assert.Nil(t, detail)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Contains(t, appErr.Details(), tt.field)
		})
	}
}

func TestProviderService_CreateProvider_CacheFailureDoesNotFail(t *testing.T) {
	fx := createTestProviderService(t)

	ctx := context.Background()

	fx.providerRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Provider")).
		Return(nil)
	fx.mapCache.EXPECT().Invalidate(ctx).Return(errors.New("redis down"))
	fx.providerRepo.EXPECT().FindByID(ctx, mock.Anything).Return(&entity.Provider{}, nil)

	detail, err := fx.service.CreateProvider(ctx, hotelTolimaInput())
	require.NoError(t, err)
	assert.NotNil(t, detail)
}

func TestProviderService_CreateProvider_ReturnsStoredRow(t *testing.T) {
	fx := createTestProviderService(t)

	ctx := context.Background()

	fx.providerRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Provider")).
		Run(func(_ context.Context, provider *entity.Provider) {
			provider.ID = 7
		}).
		Return(nil)
	fx.mapCache.EXPECT().Invalidate(ctx).Return(nil)
	fx.providerRepo.EXPECT().FindByID(ctx, int64(7)).Return(&entity.Provider{
		ID:        7,
		Name:      "Hotel Tolima",
		Phone:     "3001234567",
		City:      "Ibagué, Tolima",
		Available: true,
	}, nil)

	detail, err := fx.service.CreateProvider(ctx, hotelTolimaInput())
	require.NoError(t, err)
	assert.Equal(t, "Ibagué, Tolima", detail.City)
	assert.Empty(t, detail.Reviews)
}

func TestProviderService_CreateProvider_ReadBackFailureKeepsCreated(t *testing.T) {
	fx := createTestProviderService(t)

	ctx := context.Background()

	fx.providerRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Provider")).
		Run(func(_ context.Context, provider *entity.Provider) {
			provider.ID = 8
		}).
		Return(nil)
	fx.mapCache.EXPECT().Invalidate(ctx).Return(nil)
	fx.providerRepo.EXPECT().FindByID(ctx, int64(8)).Return(nil, errors.New("connection reset"))

	detail, err := fx.service.CreateProvider(ctx, hotelTolimaInput())
	require.NoError(t, err)
	assert.Equal(t, int64(8), detail.ID)
	assert.Equal(t, "Hotel Tolima", detail.Name)
}

func TestProviderService_ListProviders_ZeroLimit(t *testing.T) {
	fx := createTestProviderService(t)

	ctx := context.Background()

	fx.providerRepo.EXPECT().
		List(ctx, 0, 0).
		Return([]*entity.Provider{}, nil)

	summaries, err := fx.service.ListProviders(ctx, 0, 0)
	require.NoError(t, err)
	assert.NotNil(t, summaries)
	assert.Empty(t, summaries)
}

func TestProviderService_ListProviders_ClampsLimit(t *testing.T) {
	fx := createTestProviderService(t)

	ctx := context.Background()

	fx.providerRepo.EXPECT().
		List(ctx, 10, 1000).
		Return([]*entity.Provider{
			{ID: 11, Name: "Guía Nevado", ProviderType: "guia", City: "Ibagué", Available: true},
		}, nil)

	summaries, err := fx.service.ListProviders(ctx, 10, 5000)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, int64(11), summaries[0].ID)
	assert.Equal(t, "guia", summaries[0].ProviderType)
}

func TestProviderService_ListProviders_NegativeBounds(t *testing.T) {
	fx := createTestProviderService(t)

	ctx := context.Background()

	_, err := fx.service.ListProviders(ctx, -1, 10)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = fx.service.ListProviders(ctx, 0, -5)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestProviderService_GetProviderDetail_NotFound(t *testing.T) {
	fx := createTestProviderService(t)

	ctx := context.Background()

	fx.providerRepo.EXPECT().
		FindByID(ctx, int64(42)).
		Return(nil, repository.ErrProviderNotFound)

	detail, err := fx.service.GetProviderDetail(ctx, 42)
	assert.Nil(t, detail)
	assert.True(t, errors.Is(err, domainerrors.ErrProviderNotFound))
}

func TestProviderService_GetProviderDetail_IncludesReviews(t *testing.T) {
	fx := createTestProviderService(t)

	ctx := context.Background()

	fx.providerRepo.EXPECT().
		FindByID(ctx, int64(1)).
		Return(&entity.Provider{
			ID:   1,
			Name: "Hotel Tolima",
			Reviews: []entity.Review{
				{ID: 1, Rating: 5, ProviderID: 1},
				{ID: 2, Rating: 3, ProviderID: 1},
			},
		}, nil)

	detail, err := fx.service.GetProviderDetail(ctx, 1)
	require.NoError(t, err)
	require.Len(t, detail.Reviews, 2)
	assert.Equal(t, int64(1), detail.Reviews[0].ID)
	assert.Equal(t, int64(2), detail.Reviews[1].ID)
}

func TestProviderService_UpdateProvider_OnlyAvailability(t *testing.T) {
	fx := createTestProviderService(t)

	ctx := context.Background()

	patch, err := entity.ParseProviderPatch(map[string]json.RawMessage{
		"disponible": json.RawMessage(`false`),
	})
	require.NoError(t, err)

	stored := &entity.Provider{
		ID:           1,
		Name:         "Hotel Tolima",
		ProviderType: "hotel",
		Phone:        "3001234567",
		City:         "Ibagué",
		Available:    true,
	}

	fx.providerRepo.EXPECT().
		UpdateFields(ctx, int64(1), patch).
		RunAndReturn(func(_ context.Context, _ int64, p *entity.ProviderPatch) (*entity.Provider, error) {
			updated := *stored
			p.Apply(&updated)

			return &updated, nil
		})
	fx.mapCache.EXPECT().Invalidate(ctx).Return(nil)

	detail, err := fx.service.UpdateProvider(ctx, 1, patch)
	require.NoError(t, err)
	assert.False(t, detail.Available)
	assert.Equal(t, stored.Name, detail.Name)
	assert.Equal(t, stored.Phone, detail.Phone)
	assert.Equal(t, stored.City, detail.City)
}

func TestProviderService_UpdateProvider_EmptyPatchSkipsInvalidation(t *testing.T) {
	fx := createTestProviderService(t)

	ctx := context.Background()
	patch := &entity.ProviderPatch{}

	fx.providerRepo.EXPECT().
		UpdateFields(ctx, int64(1), patch).
		Return(&entity.Provider{ID: 1, Name: "Hotel Tolima", Available: true}, nil)

	detail, err := fx.service.UpdateProvider(ctx, 1, patch)
	require.NoError(t, err)
	assert.Equal(t, "Hotel Tolima", detail.Name)
}

func TestProviderService_UpdateProvider_NotFound(t *testing.T) {
	fx := createTestProviderService(t)

	ctx := context.Background()
	patch := &entity.ProviderPatch{Available: entity.Some(false)}

	fx.providerRepo.EXPECT().
		UpdateFields(ctx, int64(99), patch).
		Return(nil, repository.ErrProviderNotFound)

	detail, err := fx.service.UpdateProvider(ctx, 99, patch)
	assert.Nil(t, detail)
	assert.True(t, errors.Is(err, domainerrors.ErrProviderNotFound))
}

func TestProviderService_UpdateProvider_DuplicatePhone(t *testing.T) {
	fx := createTestProviderService(t)

	ctx := context.Background()
	patch := &entity.ProviderPatch{Phone: entity.Some("3009999999")}

	fx.providerRepo.EXPECT().
		UpdateFields(ctx, int64(1), patch).
		Return(nil, repository.ErrDuplicatePhone)

	_, err := fx.service.UpdateProvider(ctx, 1, patch)
	assert.True(t, errors.Is(err, domainerrors.ErrPhoneAlreadyRegistered))
}

func TestProviderService_DeleteProvider_ReturnsSnapshot(t *testing.T) {
	fx := createTestProviderService(t)

	ctx := context.Background()

	fx.providerRepo.EXPECT().
		Delete(ctx, int64(1)).
		Return(&entity.Provider{
			ID:   1,
			Name: "Hotel Tolima",
			Reviews: []entity.Review{
				{ID: 1, Rating: 4, ProviderID: 1},
				{ID: 2, Rating: 5, ProviderID: 1},
				{ID: 3, Rating: 2, ProviderID: 1},
			},
		}, nil)
	fx.mapCache.EXPECT().Invalidate(ctx).Return(nil)

	detail, err := fx.service.DeleteProvider(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Hotel Tolima", detail.Name)
	assert.Len(t, detail.Reviews, 3)
}

func TestProviderService_DeleteProvider_NotFound(t *testing.T) {
	fx := createTestProviderService(t)

	ctx := context.Background()

	fx.providerRepo.EXPECT().
		Delete(ctx, int64(7)).
		Return(nil, repository.ErrProviderNotFound)

	detail, err := fx.service.DeleteProvider(ctx, 7)
	assert.Nil(t, detail)
	assert.True(t, errors.Is(err, domainerrors.ErrProviderNotFound))
}

func TestProviderService_DeleteProvider_DatabaseError(t *testing.T) {
	fx := createTestProviderService(t)

	ctx := context.Background()
	dbErr := domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "failed to delete provider")

	fx.providerRepo.EXPECT().
		Delete(ctx, int64(7)).
		Return(nil, dbErr)

	_, err := fx.service.DeleteProvider(ctx, 7)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 500, appErr.HTTPCode())
}
