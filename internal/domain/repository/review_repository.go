package repository

import (
	"context"

	"conecta/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrReviewNotFound is returned when a review does not exist.
var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository defines the interface for review-related database operations.
type ReviewRepository interface {
	// Create persists a new review for review.ProviderID and assigns its ID and timestamp.
	Create(ctx context.Context, review *entity.Review) error

	// ListByProvider returns a page of a provider's reviews in insertion order.
	ListByProvider(ctx context.Context, providerID int64, offset, limit int) ([]*entity.Review, error)

	// Delete removes a review and returns its pre-deletion snapshot.
	Delete(ctx context.Context, id int64) (*entity.Review, error)

	// DeleteByProvider removes every review of a provider and returns how many were removed.
	DeleteByProvider(ctx context.Context, providerID int64) (int64, error)
}
