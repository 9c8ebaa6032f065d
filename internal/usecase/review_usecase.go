package usecase

import (
	"context"

	"conecta/internal/domain/entity"
)

// CreateReviewInput carries the fields of a new review
type CreateReviewInput struct {
	Rating  int
	Comment *string
}

// ReviewUsecase defines the interface for review use cases
type ReviewUsecase interface {
	// CreateReview attaches a review to an existing provider
	CreateReview(ctx context.Context, providerID int64, input *CreateReviewInput) (*entity.Review, error)

	// ListReviews returns a page of an existing provider's reviews
	ListReviews(ctx context.Context, providerID int64, offset, limit int) ([]*entity.Review, error)

	// DeleteReview removes a single review and returns it
	DeleteReview(ctx context.Context, reviewID int64) (*entity.Review, error)
}
