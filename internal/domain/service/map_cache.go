package service

import (
	"context"

	"conecta/internal/domain/entity"
)

// MapCache defines the interface for caching the map projection
type MapCache interface {
	// Get returns the cached projection for the filter; ok is false on a miss
	Get(ctx context.Context, providerType *string) (providers []*entity.MapProvider, ok bool, err error)

	// Generation returns the current invalidation counter.
	// Read it before loading the projection and hand it back to Set.
	Generation(ctx context.Context) (int64, error)

	// Set stores the projection for the filter unless the cache was invalidated
	// after generation was read; a dropped write is not an error
	Set(ctx context.Context, providerType *string, generation int64, providers []*entity.MapProvider) error

	// Invalidate drops every cached projection and bumps the generation
	Invalidate(ctx context.Context) error
}
