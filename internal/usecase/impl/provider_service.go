// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"conecta/config"
	deliverycontext "conecta/internal/delivery/context"
	"conecta/internal/domain/entity"
	domainerrors "conecta/internal/domain/errors"
	"conecta/internal/domain/repository"
	"conecta/internal/domain/service"
	"conecta/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// providerService implements the ProviderUsecase interface.
type providerService struct {
	providerRepo repository.ProviderRepository
	mapCache     service.MapCache
	maxPageLimit int
	logger       *slog.Logger
}

// ProviderServiceParams holds dependencies for ProviderService, injected by Fx.
type ProviderServiceParams struct {
	fx.In

	ProviderRepo repository.ProviderRepository
	MapCache     service.MapCache
	Config       *config.Config
	Logger       *slog.Logger
}

// NewProviderService is the constructor for providerService.
func NewProviderService(params ProviderServiceParams) usecase.ProviderUsecase {
	return &providerService{
		providerRepo: params.ProviderRepo,
		mapCache:     params.MapCache,
		maxPageLimit: maxPageLimit(params.Config),
		logger:       params.Logger,
	}
}

func (srv *providerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProvider validates the input, persists a new available provider and returns its detail view.
func (srv *providerService) CreateProvider(ctx context.Context, input *usecase.CreateProviderInput) (*entity.ProviderDetail, error) {
	if problems := validateCreateProvider(input); len(problems) > 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails(problems.Error())
	}

	provider := &entity.Provider{
		Name:             input.Name,
		ProviderType:     input.ProviderType,
		ShortDescription: input.ShortDescription,
		Phone:            input.Phone,
		Address:          input.Address,
		City:             input.City,
		Latitude:         input.Latitude,
		Longitude:        input.Longitude,
		Available:        true,
		Reviews:          []entity.Review{},
	}

	if err := srv.providerRepo.Create(ctx, provider); err != nil {
		if errors.Is(err, repository.ErrDuplicatePhone) {
			return nil, errors.Wrap(domainerrors.ErrPhoneAlreadyRegistered, "create provider")
		}

		return nil, errors.Wrap(err, "failed to create provider")
	}

	srv.log(ctx).Info("Provider created",
		slog.Int64("provider_id", provider.ID),
		slog.String("provider_type", provider.ProviderType),
	)
	srv.invalidateMap(ctx)

	// Read back so the response carries what the store actually holds.
	stored, err := srv.providerRepo.FindByID(ctx, provider.ID)
	if err != nil {
		srv.log(ctx).Warn("Failed to read back created provider",
			slog.Int64("provider_id", provider.ID),
			slog.Any("error", err),
		)

		return provider.Detail(), nil
	}

	return stored.Detail(), nil
}

// ListProviders returns a page of summary views ordered by ID.
func (srv *providerService) ListProviders(ctx context.Context, offset, limit int) ([]*entity.ProviderSummary, error) {
	offset, limit, err := normalizePage(offset, limit, srv.maxPageLimit)
	if err != nil {
		return nil, err
	}

	providers, err := srv.providerRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list providers")
	}

	summaries := make([]*entity.ProviderSummary, 0, len(providers))
	for _, provider := range providers {
		summaries = append(summaries, provider.Summary())
	}

	return summaries, nil
}

// GetProviderDetail returns the detail view of a provider.
func (srv *providerService) GetProviderDetail(ctx context.Context, id int64) (*entity.ProviderDetail, error) {
	provider, err := srv.providerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateProviderError(err, "failed to find provider by ID")
	}

	return provider.Detail(), nil
}

// UpdateProvider applies only the supplied fields of patch.
func (srv *providerService) UpdateProvider(ctx context.Context, id int64, patch *entity.ProviderPatch) (*entity.ProviderDetail, error) {
	if patch == nil {
		patch = &entity.ProviderPatch{}
	}

	provider, err := srv.providerRepo.UpdateFields(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicatePhone) {
			return nil, errors.Wrap(domainerrors.ErrPhoneAlreadyRegistered, "update provider")
		}

		return nil, translateProviderError(err, "failed to update provider")
	}

	if !patch.IsEmpty() {
		srv.log(ctx).Info("Provider updated",
			slog.Int64("provider_id", id),
			slog.Bool("available", provider.Available),
		)
		srv.invalidateMap(ctx)
	}

	return provider.Detail(), nil
}

// DeleteProvider removes a provider together with its reviews.
func (srv *providerService) DeleteProvider(ctx context.Context, id int64) (*entity.ProviderDetail, error) {
	provider, err := srv.providerRepo.Delete(ctx, id)
	if err != nil {
		return nil, translateProviderError(err, "failed to delete provider")
	}

	srv.log(ctx).Info("Provider deleted",
		slog.Int64("provider_id", id),
		slog.Int("reviews_removed", len(provider.Reviews)),
	)
	srv.invalidateMap(ctx)

	return provider.Detail(), nil
}

// invalidateMap drops cached map projections; a cache failure only costs freshness.
func (srv *providerService) invalidateMap(ctx context.Context) {
	if err := srv.mapCache.Invalidate(ctx); err != nil {
		srv.log(ctx).Warn("Failed to invalidate map cache", slog.Any("error", err))
	}
}

// translateProviderError maps repository errors to the domain taxonomy.
func translateProviderError(err error, message string) error {
	if errors.Is(err, repository.ErrProviderNotFound) {
		return errors.Wrap(domainerrors.ErrProviderNotFound, message)
	}

	return errors.Wrap(err, message)
}

func validateCreateProvider(input *usecase.CreateProviderInput) entity.FieldErrors {
	problems := entity.FieldErrors{}
	if input == nil {
		problems["body"] = "is required"

		return problems
	}

	required := map[string]string{
		"nombre":         input.Name,
		"tipo_proveedor": input.ProviderType,
		"telefono":       input.Phone,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			problems[field] = "is required"
		}
	}

	texts := map[string]string{
		"nombre":            input.Name,
		"tipo_proveedor":    input.ProviderType,
		"descripcion_corta": input.ShortDescription,
		"telefono":          input.Phone,
		"direccion":         input.Address,
		"ciudad":            input.City,
	}
	for field, value := range texts {
		if _, taken := problems[field]; taken {
			continue
		}
		if problem, ok := entity.CheckTextLength(field, value); !ok {
			problems[field] = problem
		}
	}

	if input.Latitude != nil && (*input.Latitude < -90 || *input.Latitude > 90) {
		problems["latitud"] = "must be between -90 and 90"
	}
	if input.Longitude != nil && (*input.Longitude < -180 || *input.Longitude > 180) {
		problems["longitud"] = "must be between -180 and 180"
	}

	return problems
}
