package handler

import (
	"log/slog"
	"net/http"

	"conecta/internal/delivery/api/response"
	"conecta/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const geoJSONContentType = "application/geo+json"

// MapHandlerParams holds dependencies for MapHandler, injected by Fx.
type MapHandlerParams struct {
	fx.In

	MapUC  usecase.MapUsecase
	Logger *slog.Logger
}

// MapHandler serves the geospatial projection of the directory
type MapHandler struct {
	mapUC  usecase.MapUsecase
	logger *slog.Logger
}

// NewMapHandler is the constructor for MapHandler
func NewMapHandler(params MapHandlerParams) *MapHandler {
	return &MapHandler{
		mapUC:  params.MapUC,
		logger: params.Logger,
	}
}

// typeFilter returns the tipo query parameter, or nil when it was not sent
func typeFilter(c echo.Context) *string {
	if !c.QueryParams().Has("tipo") {
		return nil
	}
	providerType := c.QueryParam("tipo")

	return &providerType
}

// ProvidersForMap handles the map projection listing
func (h *MapHandler) ProvidersForMap(c echo.Context) error {
	providers, err := h.mapUC.ProvidersForMap(c.Request().Context(), typeFilter(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, providers)
}

// ProvidersForMapGeoJSON renders the projection as a bare GeoJSON FeatureCollection
func (h *MapHandler) ProvidersForMapGeoJSON(c echo.Context) error {
	collection, err := h.mapUC.ProvidersForMapGeoJSON(c.Request().Context(), typeFilter(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	body, err := collection.MarshalJSON()
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, geoJSONContentType, body)
}
