package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"conecta/config"
	"conecta/internal/delivery/api/response"
	"conecta/internal/domain/entity"
	"conecta/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProviderHandlerParams holds dependencies for ProviderHandler, injected by Fx.
type ProviderHandlerParams struct {
	fx.In

	ProviderUC usecase.ProviderUsecase
	Config     *config.Config
	Logger     *slog.Logger
}

// ProviderHandler holds dependencies for provider-related handlers
type ProviderHandler struct {
	providerUC   usecase.ProviderUsecase
	defaultLimit int
	logger       *slog.Logger
}

// NewProviderHandler is the constructor for ProviderHandler
func NewProviderHandler(params ProviderHandlerParams) *ProviderHandler {
	defaultLimit := 100
	if params.Config != nil && params.Config.Directory != nil && params.Config.Directory.DefaultPageLimit > 0 {
		defaultLimit = params.Config.Directory.DefaultPageLimit
	}

	return &ProviderHandler{
		providerUC:   params.ProviderUC,
		defaultLimit: defaultLimit,
		logger:       params.Logger,
	}
}

// CreateProviderRequest represents the request body for listing a new provider.
// Text fields that may legitimately be empty are pointers so absence can be told apart.
type CreateProviderRequest struct {
	Name             string   `json:"nombre" validate:"required,max=255"`
	ProviderType     string   `json:"tipo_proveedor" validate:"required,max=50"`
	ShortDescription *string  `json:"descripcion_corta" validate:"required,max=500"`
	Phone            string   `json:"telefono" validate:"required,max=30"`
	Address          *string  `json:"direccion" validate:"required,max=255"`
	City             *string  `json:"ciudad" validate:"required,max=100"`
	Latitude         *float64 `json:"latitud" validate:"omitempty,gte=-90,lte=90"`
	Longitude        *float64 `json:"longitud" validate:"omitempty,gte=-180,lte=180"`
}

// CreateProvider handles provider creation
func (h *ProviderHandler) CreateProvider(c echo.Context) error {
	var req CreateProviderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos del proveedor inválidos")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	input := &usecase.CreateProviderInput{
		Name:             req.Name,
		ProviderType:     req.ProviderType,
		ShortDescription: *req.ShortDescription,
		Phone:            req.Phone,
		Address:          *req.Address,
		City:             *req.City,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
	}

	detail, err := h.providerUC.CreateProvider(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, detail)
}

// ListProviders handles paginated provider listing
func (h *ProviderHandler) ListProviders(c echo.Context) error {
	skip, limit, err := pageParams(c, h.defaultLimit)
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "skip y limit deben ser números enteros")
	}

	summaries, err := h.providerUC.ListProviders(c.Request().Context(), skip, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summaries)
}

// GetProvider handles retrieving a provider with its reviews
func (h *ProviderHandler) GetProvider(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", err.Error())
	}

	detail, err := h.providerUC.GetProviderDetail(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, detail)
}

// UpdateProvider handles partial provider updates for both PUT and PATCH
func (h *ProviderHandler) UpdateProvider(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", err.Error())
	}

	fields := map[string]json.RawMessage{}
	if err := c.Echo().JSONSerializer.Deserialize(c, &fields); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "El cuerpo debe ser un objeto JSON")
	}

	patch, err := entity.ParseProviderPatch(fields)
	if err != nil {
		return validationFailed(c, err)
	}

	detail, err := h.providerUC.UpdateProvider(c.Request().Context(), id, patch)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, detail)
}

// DeleteProvider handles provider deletion together with its reviews
func (h *ProviderHandler) DeleteProvider(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", err.Error())
	}

	detail, err := h.providerUC.DeleteProvider(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, detail)
}
