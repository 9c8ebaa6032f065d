package postgres

import (
	"context"

	"conecta/internal/domain/entity"
	domainerrors "conecta/internal/domain/errors"
	"conecta/internal/domain/repository"
	"conecta/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// reviewRepository implements the repository.ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{
		db: db,
	}
}

// Create persists a new review and assigns its ID and creation timestamp.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProviderNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("calificacion: must be between 1 and 5")
		}
		if isValueTooLong(err) {
			return valueTooLongError(err)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt

	return nil
}

// ListByProvider returns a page of a provider's reviews in insertion order.
func (repo *reviewRepository) ListByProvider(ctx context.Context, providerID int64, offset, limit int) ([]*entity.Review, error) {
	if limit == 0 {
		return []*entity.Review{}, nil
	}

	var reviewModels []*model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("proveedor_id = ?", providerID).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reviews by provider")
	}

	reviews := make([]*entity.Review, 0, len(reviewModels))
	for _, reviewM := range reviewModels {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews, nil
}

// Delete removes a review in a single statement and returns the deleted row.
func (repo *reviewRepository) Delete(ctx context.Context, id int64) (*entity.Review, error) {
	var reviewM model.ReviewModel

	result := repo.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Delete(&reviewM)

	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to delete review")
	}

	if result.RowsAffected == 0 {
		return nil, repository.ErrReviewNotFound
	}

	return toReviewDomain(&reviewM), nil
}

// DeleteByProvider removes every review of a provider.
func (repo *reviewRepository) DeleteByProvider(ctx context.Context, providerID int64) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("proveedor_id = ?", providerID).
		Delete(&model.ReviewModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete reviews by provider")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toReviewDomain converts a GORM ReviewModel to a domain Review entity.
func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	return &entity.Review{
		ID:         data.ID,
		Rating:     data.Rating,
		Comment:    data.Comment,
		CreatedAt:  data.CreatedAt,
		ProviderID: data.ProviderID,
	}
}

// fromReviewDomain converts a domain Review entity to a GORM ReviewModel.
func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	if data == nil {
		return nil
	}

	return &model.ReviewModel{
		ID:         data.ID,
		Rating:     data.Rating,
		Comment:    data.Comment,
		CreatedAt:  data.CreatedAt,
		ProviderID: data.ProviderID,
	}
}
