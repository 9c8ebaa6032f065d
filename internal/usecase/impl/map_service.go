package impl

import (
	"context"
	"log/slog"

	deliverycontext "conecta/internal/delivery/context"
	"conecta/internal/domain/entity"
	"conecta/internal/domain/repository"
	"conecta/internal/domain/service"
	"conecta/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// mapService implements the MapUsecase interface.
type mapService struct {
	providerRepo repository.ProviderRepository
	mapCache     service.MapCache
	logger       *slog.Logger
}

// MapServiceParams holds dependencies for MapService, injected by Fx.
type MapServiceParams struct {
	fx.In

	ProviderRepo repository.ProviderRepository
	MapCache     service.MapCache
	Logger       *slog.Logger
}

// NewMapService is the constructor for mapService.
func NewMapService(params MapServiceParams) usecase.MapUsecase {
	return &mapService{
		providerRepo: params.ProviderRepo,
		mapCache:     params.MapCache,
		logger:       params.Logger,
	}
}

func (srv *mapService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ProvidersForMap returns the map projection, served from cache when possible.
// The type filter is an exact, case-sensitive match and availability is not considered.
func (srv *mapService) ProvidersForMap(ctx context.Context, providerType *string) ([]*entity.MapProvider, error) {
	cached, ok, err := srv.mapCache.Get(ctx, providerType)
	if err != nil {
		srv.log(ctx).Warn("Failed to read map cache", slog.Any("error", err))
	} else if ok {
		return cached, nil
	}

	// The generation must be read before the rows so a concurrent write can void this fill.
	generation, genErr := srv.mapCache.Generation(ctx)
	if genErr != nil {
		srv.log(ctx).Warn("Failed to read map cache generation", slog.Any("error", genErr))
	}

	providers, err := srv.providerRepo.ListForMap(ctx, providerType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list providers for map")
	}

	projection := make([]*entity.MapProvider, 0, len(providers))
	for _, provider := range providers {
		projection = append(projection, provider.MapView())
	}

	if genErr == nil {
		if err := srv.mapCache.Set(ctx, providerType, generation, projection); err != nil {
			srv.log(ctx).Warn("Failed to write map cache", slog.Any("error", err))
		}
	}

	return projection, nil
}

// ProvidersForMapGeoJSON renders the projection as point features.
// Providers missing either coordinate cannot be placed and are skipped.
func (srv *mapService) ProvidersForMapGeoJSON(ctx context.Context, providerType *string) (*geojson.FeatureCollection, error) {
	projection, err := srv.ProvidersForMap(ctx, providerType)
	if err != nil {
		return nil, err
	}

	collection := geojson.NewFeatureCollection()
	for _, provider := range projection {
		if !provider.HasCoordinates() {
			continue
		}

		feature := geojson.NewFeature(orb.Point{*provider.Longitude, *provider.Latitude})
		feature.ID = provider.ID
		feature.Properties["id"] = provider.ID
		feature.Properties["nombre"] = provider.Name
		feature.Properties["tipo_proveedor"] = provider.ProviderType
		feature.Properties["descripcion_corta"] = provider.ShortDescription
		collection.Append(feature)
	}

	return collection, nil
}
