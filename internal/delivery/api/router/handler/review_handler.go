package handler

import (
	"log/slog"
	"net/http"

	"conecta/config"
	"conecta/internal/delivery/api/response"
	"conecta/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
	Config   *config.Config
	Logger   *slog.Logger
}

// ReviewHandler holds dependencies for review-related handlers
type ReviewHandler struct {
	reviewUC     usecase.ReviewUsecase
	defaultLimit int
	logger       *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	defaultLimit := 100
	if params.Config != nil && params.Config.Directory != nil && params.Config.Directory.DefaultPageLimit > 0 {
		defaultLimit = params.Config.Directory.DefaultPageLimit
	}

	return &ReviewHandler{
		reviewUC:     params.ReviewUC,
		defaultLimit: defaultLimit,
		logger:       params.Logger,
	}
}

// CreateReviewRequest represents the request body for reviewing a provider
type CreateReviewRequest struct {
	Rating  int     `json:"calificacion" validate:"min=1,max=5"`
	Comment *string `json:"comentario" validate:"omitempty,max=1000"`
}

// CreateReview handles attaching a review to a provider
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	providerID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", err.Error())
	}

	var req CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de la reseña inválidos")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	review, err := h.reviewUC.CreateReview(c.Request().Context(), providerID, &usecase.CreateReviewInput{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, review)
}

// ListReviews handles paginated review listing for a provider
func (h *ReviewHandler) ListReviews(c echo.Context) error {
	providerID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", err.Error())
	}

	skip, limit, err := pageParams(c, h.defaultLimit)
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "skip y limit deben ser números enteros")
	}

	reviews, err := h.reviewUC.ListReviews(c.Request().Context(), providerID, skip, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reviews)
}

// DeleteReview handles deleting a single review
func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	reviewID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", err.Error())
	}

	review, err := h.reviewUC.DeleteReview(c.Request().Context(), reviewID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, review)
}
