package impl

import (
	"context"
	"fmt"
	"log/slog"

	"conecta/config"
	deliverycontext "conecta/internal/delivery/context"
	"conecta/internal/domain/entity"
	domainerrors "conecta/internal/domain/errors"
	"conecta/internal/domain/repository"
	"conecta/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	txManager    repository.TransactionManager
	providerRepo repository.ProviderRepository
	reviewRepo   repository.ReviewRepository
	maxPageLimit int
	logger       *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ProviderRepo repository.ProviderRepository
	ReviewRepo   repository.ReviewRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		txManager:    params.TxManager,
		providerRepo: params.ProviderRepo,
		reviewRepo:   params.ReviewRepo,
		maxPageLimit: maxPageLimit(params.Config),
		logger:       params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateReview attaches a review to an existing provider.
// The existence check and the insert share one transaction so a concurrent
// provider deletion cannot leave an orphaned review behind.
func (srv *reviewService) CreateReview(ctx context.Context, providerID int64, input *usecase.CreateReviewInput) (*entity.Review, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("calificacion: is required")
	}
	if !entity.ValidRating(input.Rating) {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("calificacion: must be between %d and %d", entity.MinRating, entity.MaxRating))
	}

	review := &entity.Review{
		Rating:     input.Rating,
		Comment:    input.Comment,
		ProviderID: providerID,
	}

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		exists, err := factory.ProviderRepo().Exists(ctx, providerID)
		if err != nil {
			return errors.Wrap(err, "failed to check provider existence")
		}
		if !exists {
			return errors.Wrap(domainerrors.ErrProviderNotFound, "create review")
		}

		if err := factory.ReviewRepo().Create(ctx, review); err != nil {
			if errors.Is(err, repository.ErrProviderNotFound) {
				return errors.Wrap(domainerrors.ErrProviderNotFound, "create review")
			}

			return errors.Wrap(err, "failed to create review")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Review created",
		slog.Int64("review_id", review.ID),
		slog.Int64("provider_id", providerID),
		slog.Int("rating", review.Rating),
	)

	return review, nil
}

// ListReviews returns a page of reviews of an existing provider.
func (srv *reviewService) ListReviews(ctx context.Context, providerID int64, offset, limit int) ([]*entity.Review, error) {
	offset, limit, err := normalizePage(offset, limit, srv.maxPageLimit)
	if err != nil {
		return nil, err
	}

	exists, err := srv.providerRepo.Exists(ctx, providerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check provider existence")
	}
	if !exists {
		return nil, errors.Wrap(domainerrors.ErrProviderNotFound, "list reviews")
	}

	if limit == 0 {
		return []*entity.Review{}, nil
	}

	reviews, err := srv.reviewRepo.ListByProvider(ctx, providerID, offset, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}

// DeleteReview removes a single review, leaving its provider untouched.
func (srv *reviewService) DeleteReview(ctx context.Context, reviewID int64) (*entity.Review, error) {
	review, err := srv.reviewRepo.Delete(ctx, reviewID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, errors.Wrap(domainerrors.ErrReviewNotFound, "delete review")
		}

		return nil, errors.Wrap(err, "failed to delete review")
	}

	srv.log(ctx).Info("Review deleted",
		slog.Int64("review_id", reviewID),
		slog.Int64("provider_id", review.ProviderID),
	)

	return review, nil
}
