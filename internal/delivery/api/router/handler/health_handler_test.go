package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestHealthHandler_NoDatabase(t *testing.T) {
	handler := NewHealthHandler(HealthHandlerParams{Logger: newDiscardLogger()})
	e := newTestEcho()
	c, rec := newTestContext(e, http.MethodGet, "/health", "")

	require.NoError(t, handler.HealthCheck(c))
	assertStatus(t, rec, http.StatusOK)
	assert.JSONEq(t, `{"status":"ok"}`, string(decodeEnvelope(t, rec).Data))
}

func TestHealthHandler_DatabaseUnreachable(t *testing.T) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=127.0.0.1 port=1 user=conecta dbname=conecta sslmode=disable connect_timeout=1",
	}), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	require.NoError(t, err)

	handler := NewHealthHandler(HealthHandlerParams{DB: db, Logger: newDiscardLogger()})
	e := newTestEcho()
	c, rec := newTestContext(e, http.MethodGet, "/health", "")

	require.NoError(t, handler.HealthCheck(c))
	assertStatus(t, rec, http.StatusServiceUnavailable)

	env := decodeEnvelope(t, rec)
	assert.Equal(t, "DATABASE_UNAVAILABLE", env.Error.Code)
}
