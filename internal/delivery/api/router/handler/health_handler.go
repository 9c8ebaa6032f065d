package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"conecta/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const healthPingTimeout = 2 * time.Second

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	DB     *gorm.DB `optional:"true"`
	Logger *slog.Logger
}

// HealthHandler reports service liveness and database reachability
type HealthHandler struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{
		db:     params.DB,
		logger: params.Logger,
	}
}

// HealthCheck returns 200 when the service and its database are reachable
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	status := map[string]string{"status": "ok"}
	if h.db == nil {
		return response.Success(c, http.StatusOK, status)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), healthPingTimeout)
	defer cancel()

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		h.logger.Warn("Health check failed", slog.Any("error", err))

		return response.Error(c, http.StatusServiceUnavailable, "DATABASE_UNAVAILABLE", "La base de datos no responde", nil)
	}

	status["database"] = "ok"

	return response.Success(c, http.StatusOK, status)
}
