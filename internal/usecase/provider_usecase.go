package usecase

import (
	"context"

	"conecta/internal/domain/entity"
)

// CreateProviderInput carries the fields required to list a new provider
type CreateProviderInput struct {
	Name             string
	ProviderType     string
	ShortDescription string
	Phone            string
	Address          string
	City             string
	Latitude         *float64
	Longitude        *float64
}

// ProviderUsecase defines the interface for provider directory use cases
type ProviderUsecase interface {
	// CreateProvider lists a new, available provider and returns its detail view
	CreateProvider(ctx context.Context, input *CreateProviderInput) (*entity.ProviderDetail, error)

	// ListProviders returns a page of summary views
	ListProviders(ctx context.Context, offset, limit int) ([]*entity.ProviderSummary, error)

	// GetProviderDetail returns the detail view with nested reviews
	GetProviderDetail(ctx context.Context, id int64) (*entity.ProviderDetail, error)

	// UpdateProvider applies a partial update and returns the resulting detail view
	UpdateProvider(ctx context.Context, id int64, patch *entity.ProviderPatch) (*entity.ProviderDetail, error)

	// DeleteProvider removes the provider with its reviews and returns the pre-deletion detail view
	DeleteProvider(ctx context.Context, id int64) (*entity.ProviderDetail, error)
}
