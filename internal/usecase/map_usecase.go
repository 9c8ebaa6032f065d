package usecase

import (
	"context"

	"conecta/internal/domain/entity"

	"github.com/paulmach/orb/geojson"
)

// MapUsecase defines the interface for the geospatial projection of the directory
type MapUsecase interface {
	// ProvidersForMap returns every provider projected for map display,
	// optionally restricted to an exact provider type
	ProvidersForMap(ctx context.Context, providerType *string) ([]*entity.MapProvider, error)

	// ProvidersForMapGeoJSON returns the same projection as a FeatureCollection,
	// skipping providers without both coordinates
	ProvidersForMapGeoJSON(ctx context.Context, providerType *string) (*geojson.FeatureCollection, error)
}
