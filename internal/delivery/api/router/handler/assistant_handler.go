package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"conecta/internal/delivery/api/response"
	"conecta/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AssistantHandlerParams holds dependencies for AssistantHandler, injected by Fx.
type AssistantHandlerParams struct {
	fx.In

	AssistantUC usecase.AssistantUsecase
	Logger      *slog.Logger
}

// AssistantHandler serves trip recommendations
type AssistantHandler struct {
	assistantUC usecase.AssistantUsecase
	logger      *slog.Logger
}

// NewAssistantHandler is the constructor for AssistantHandler
func NewAssistantHandler(params AssistantHandlerParams) *AssistantHandler {
	return &AssistantHandler{
		assistantUC: params.AssistantUC,
		logger:      params.Logger,
	}
}

// RecommendationRequest represents the request body for a trip recommendation
type RecommendationRequest struct {
	UserID                    *string `json:"usuario_id,omitempty" validate:"omitempty,max=100"`
	Message                   string  `json:"mensaje" validate:"required,max=2000"`
	IncludeAvailableProviders bool    `json:"incluir_proveedores"`
}

// Recommend handles a trip recommendation request
func (h *AssistantHandler) Recommend(c echo.Context) error {
	var req RecommendationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Solicitud al asistente inválida")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	raw, err := json.Marshal(req)
	if err != nil {
		return err
	}

	output, err := h.assistantUC.Recommend(c.Request().Context(), &usecase.RecommendationInput{
		UserID:                    req.UserID,
		Message:                   req.Message,
		IncludeAvailableProviders: req.IncludeAvailableProviders,
		Raw:                       raw,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output)
}
