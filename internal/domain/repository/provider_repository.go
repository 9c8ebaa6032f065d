// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"conecta/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for provider persistence.
var (
	// ErrProviderNotFound is returned when a provider does not exist.
	ErrProviderNotFound = errors.New("provider not found")
	// ErrDuplicatePhone is returned when another provider already uses the phone number.
	ErrDuplicatePhone = errors.New("provider phone already registered")
)

// ProviderRepository defines the interface for provider-related database operations.
type ProviderRepository interface {
	// Create persists a new provider and assigns its ID.
	Create(ctx context.Context, provider *entity.Provider) error

	// FindByID retrieves a provider with its reviews.
	FindByID(ctx context.Context, id int64) (*entity.Provider, error)

	// Exists reports whether a provider with the given ID exists.
	// Inside a transaction the row is share-locked until commit.
	Exists(ctx context.Context, id int64) (bool, error)

	// List returns a page of providers ordered by ID, without reviews.
	List(ctx context.Context, offset, limit int) ([]*entity.Provider, error)

	// ListAvailable returns every provider whose availability flag is set.
	ListAvailable(ctx context.Context) ([]*entity.Provider, error)

	// ListForMap returns every provider, optionally restricted to an exact provider type.
	ListForMap(ctx context.Context, providerType *string) ([]*entity.Provider, error)

	// UpdateFields applies the supplied fields of patch and returns the updated provider with reviews.
	UpdateFields(ctx context.Context, id int64, patch *entity.ProviderPatch) (*entity.Provider, error)

	// Delete removes the provider and all of its reviews atomically,
	// returning the pre-deletion snapshot.
	Delete(ctx context.Context, id int64) (*entity.Provider, error)
}
