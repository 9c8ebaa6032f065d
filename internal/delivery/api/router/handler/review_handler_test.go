package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"conecta/internal/domain/entity"
	domainerrors "conecta/internal/domain/errors"
	mockUsecase "conecta/internal/mocks/usecase"
	"conecta/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reviewHandlerFixtures struct {
	handler  *ReviewHandler
	reviewUC *mockUsecase.MockReviewUsecase
}

func createTestReviewHandler(t *testing.T) reviewHandlerFixtures {
	reviewUC := mockUsecase.NewMockReviewUsecase(t)

	handler := NewReviewHandler(ReviewHandlerParams{
		ReviewUC: reviewUC,
		Config:   newTestConfig(),
		Logger:   newDiscardLogger(),
	})

	return reviewHandlerFixtures{
		handler:  handler,
		reviewUC: reviewUC,
	}
}

func TestReviewHandler_CreateReview_Created(t *testing.T) {
	fx := createTestReviewHandler(t)
	e := newTestEcho()
	c, rec := newTestContext(e, http.MethodPost, "/proveedores/1/resenas",
		`{"calificacion": 5, "comentario": "Excelente servicio"}`, "id", "1")

	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	fx.reviewUC.EXPECT().
		CreateReview(mock.Anything, int64(1), mock.MatchedBy(func(input *usecase.CreateReviewInput) bool {
			return input.Rating == 5 && input.Comment != nil && *input.Comment == "Excelente servicio"
		})).
		Return(&entity.Review{
			ID:         10,
			Rating:     5,
			Comment:    stringPtr("Excelente servicio"),
			CreatedAt:  createdAt,
			ProviderID: 1,
		}, nil)

	require.NoError(t, fx.handler.CreateReview(c))
	assertStatus(t, rec, http.StatusCreated)

	var review map[string]any
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &review))
	assert.Equal(t, float64(10), review["id"])
	assert.Equal(t, float64(1), review["proveedor_id"])
	assert.Equal(t, "2026-03-01T12:00:00Z", review["fecha_creacion"])
}

func TestReviewHandler_CreateReview_WithoutComment(t *testing.T) {
	fx := createTestReviewHandler(t)
	e := newTestEcho()
	c, rec := newTestContext(e, http.MethodPost, "/proveedores/1/resenas", `{"calificacion": 3}`, "id", "1")

	fx.reviewUC.EXPECT().
		CreateReview(mock.Anything, int64(1), mock.MatchedBy(func(input *usecase.CreateReviewInput) bool {
			return input.Rating == 3 && input.Comment == nil
		})).
		Return(&entity.Review{ID: 11, Rating: 3, ProviderID: 1}, nil)

	require.NoError(t, fx.handler.CreateReview(c))
	assertStatus(t, rec, http.StatusCreated)

	var review map[string]any
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &review))
	assert.Contains(t, review, "comentario")
	assert.Nil(t, review["comentario"])
}

func TestReviewHandler_CreateReview_RatingOutOfRange(t *testing.T) {
	for _, body := range []string{`{"calificacion": 0}`, `{"calificacion": 6}`, `{}`} {
		t.Run(body, func(t *testing.T) {
			fx := createTestReviewHandler(t)
			e := newTestEcho()
			c, rec := newTestContext(e, http.MethodPost, "/proveedores/1/resenas", body, "id", "1")

			require.NoError(t, fx.handler.CreateReview(c))
			assertStatus(t, rec, http.StatusBadRequest)

			env := decodeEnvelope(t, rec)
			assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
			assert.Contains(t, decodeDetails(t, env), "calificacion")
		})
	}
}

func TestReviewHandler_CreateReview_ProviderNotFound(t *testing.T) {
	fx := createTestReviewHandler(t)
	e := newTestEcho()
	c, rec := newTestContext(e, http.MethodPost, "/proveedores/99/resenas", `{"calificacion": 4}`, "id", "99")

	fx.reviewUC.EXPECT().
		CreateReview(mock.Anything, int64(99), mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrProviderNotFound, "create review"))

	require.NoError(t, fx.handler.CreateReview(c))
	assertStatus(t, rec, http.StatusNotFound)
	assert.Equal(t, "PROVIDER_NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
}

func TestReviewHandler_ListReviews_PassesPaging(t *testing.T) {
	fx := createTestReviewHandler(t)
	e := newTestEcho()
	c, rec := newTestContext(e, http.MethodGet, "/proveedores/1/resenas?skip=1&limit=2", "", "id", "1")

	fx.reviewUC.EXPECT().
		ListReviews(mock.Anything, int64(1), 1, 2).
		Return([]*entity.Review{{ID: 2, Rating: 4, ProviderID: 1}, {ID: 3, Rating: 3, ProviderID: 1}}, nil)

	require.NoError(t, fx.handler.ListReviews(c))
	assertStatus(t, rec, http.StatusOK)

	var reviews []entity.Review
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &reviews))
	require.Len(t, reviews, 2)
	assert.Equal(t, int64(2), reviews[0].ID)
}

func TestReviewHandler_ListReviews_InvalidID(t *testing.T) {
	fx := createTestReviewHandler(t)
	e := newTestEcho()
	c, rec := newTestContext(e, http.MethodGet, "/proveedores/x/resenas", "", "id", "x")

	require.NoError(t, fx.handler.ListReviews(c))
	assertStatus(t, rec, http.StatusBadRequest)
	assert.Equal(t, "INVALID_ID", decodeEnvelope(t, rec).Error.Code)
}

func TestReviewHandler_DeleteReview_NotFound(t *testing.T) {
	fx := createTestReviewHandler(t)
	e := newTestEcho()
	c, rec := newTestContext(e, http.MethodDelete, "/resenas/5", "", "id", "5")

	fx.reviewUC.EXPECT().
		DeleteReview(mock.Anything, int64(5)).
		Return(nil, errors.Wrap(domainerrors.ErrReviewNotFound, "delete review"))

	require.NoError(t, fx.handler.DeleteReview(c))
	assertStatus(t, rec, http.StatusNotFound)
	assert.Equal(t, "REVIEW_NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
}

func TestReviewHandler_DeleteReview_ReturnsDeleted(t *testing.T) {
	fx := createTestReviewHandler(t)
	e := newTestEcho()
	c, rec := newTestContext(e, http.MethodDelete, "/resenas/5", "", "id", "5")

	fx.reviewUC.EXPECT().
		DeleteReview(mock.Anything, int64(5)).
		Return(&entity.Review{ID: 5, Rating: 2, ProviderID: 1}, nil)

	require.NoError(t, fx.handler.DeleteReview(c))
	assertStatus(t, rec, http.StatusOK)

	var review entity.Review
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &review))
	assert.Equal(t, 2, review.Rating)
}
