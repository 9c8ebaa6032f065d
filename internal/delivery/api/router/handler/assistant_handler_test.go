package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	domainerrors "conecta/internal/domain/errors"
	mockUsecase "conecta/internal/mocks/usecase"
	"conecta/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAssistantHandler(t *testing.T) (*AssistantHandler, *mockUsecase.MockAssistantUsecase) {
	assistantUC := mockUsecase.NewMockAssistantUsecase(t)

	return NewAssistantHandler(AssistantHandlerParams{
		AssistantUC: assistantUC,
		Logger:      newDiscardLogger(),
	}), assistantUC
}

func TestAssistantHandler_Recommend_Success(t *testing.T) {
	handler, assistantUC := createTestAssistantHandler(t)
	e := newTestEcho()
	body := `{"usuario_id":"u-1","mensaje":"¿Qué hago en Ibagué?","incluir_proveedores":true}`
	c, rec := newTestContext(e, http.MethodPost, "/asistente/recomendaciones", body)

	assistantUC.EXPECT().
		Recommend(mock.Anything, mock.MatchedBy(func(input *usecase.RecommendationInput) bool {
			var raw map[string]any
			if err := json.Unmarshal(input.Raw, &raw); err != nil {
				return false
			}

			return input.Message == "¿Qué hago en Ibagué?" &&
				input.UserID != nil && *input.UserID == "u-1" &&
				input.IncludeAvailableProviders &&
				raw["mensaje"] == "¿Qué hago en Ibagué?"
		})).
		Return(&usecase.RecommendationOutput{Response: "Visita el Cañón de las Hermosas", Model: "test-model"}, nil)

	require.NoError(t, handler.Recommend(c))
	assertStatus(t, rec, http.StatusOK)

	var output map[string]string
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &output))
	assert.Equal(t, "Visita el Cañón de las Hermosas", output["respuesta"])
	assert.Equal(t, "test-model", output["modelo"])
}

func TestAssistantHandler_Recommend_MissingMessage(t *testing.T) {
	handler, _ := createTestAssistantHandler(t)
	e := newTestEcho()
	c, rec := newTestContext(e, http.MethodPost, "/asistente/recomendaciones", `{"usuario_id":"u-1"}`)

	require.NoError(t, handler.Recommend(c))
	assertStatus(t, rec, http.StatusBadRequest)
	assert.Contains(t, decodeDetails(t, decodeEnvelope(t, rec)), "mensaje")
}

func TestAssistantHandler_Recommend_UpstreamErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "quota exceeded",
			err:        errors.Wrap(domainerrors.ErrAssistantQuotaExceeded, "recommend"),
			wantStatus: http.StatusTooManyRequests,
			wantCode:   "ASSISTANT_QUOTA_EXCEEDED",
		},
		{
			name:       "unavailable",
			err:        domainerrors.ErrAssistantUnavailable.WithDetails("assistant not configured"),
			wantStatus: http.StatusBadGateway,
			wantCode:   "ASSISTANT_UNAVAILABLE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, assistantUC := createTestAssistantHandler(t)
			e := newTestEcho()
			c, rec := newTestContext(e, http.MethodPost, "/asistente/recomendaciones", `{"mensaje":"hola"}`)

			assistantUC.EXPECT().
				Recommend(mock.Anything, mock.Anything).
				Return(nil, tt.err)

			require.NoError(t, handler.Recommend(c))
			assertStatus(t, rec, tt.wantStatus)

			env := decodeEnvelope(t, rec)
			assert.Equal(t, tt.wantCode, env.Error.Code)
			// Server-side failures never leak details.
			assert.Empty(t, env.Error.Details)
		})
	}
}
