package assistant

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"conecta/config"
	deliverycontext "conecta/internal/delivery/context"
	"conecta/internal/domain/entity"
	"conecta/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestAssistantConfig(baseURL string) *config.AssistantConfig {
	return &config.AssistantConfig{
		Provider: "openai",
		BaseURL:  baseURL,
		APIKey:   "test-key",
		Model:    "openrouter/auto",
		Timeout:  5 * time.Second,
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxRequests:  1,
			Timeout:      time.Minute,
			FailureRatio: 0.5,
			MinRequests:  2,
		},
	}
}

var testMessages = []entity.ChatMessage{
	{Role: entity.ChatRoleSystem, Content: "Eres un guía del Tolima."},
	{Role: entity.ChatRoleUser, Content: "¿Qué hacer en Ibagué?"},
}

func TestOpenAIAssistant_Complete_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "req-123", r.Header.Get(deliverycontext.HeaderXRequestID))

		var body chatCompletionRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "openrouter/auto", body.Model)
		assert.Equal(t, testMessages, body.Messages)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Visita el Cañón de las Hermosas."}}]}`))
	}))
	defer server.Close()

	assistant := NewOpenAIAssistant(newTestAssistantConfig(server.URL+"/api/v1/"), newDiscardLogger())
	defer assistant.Close()

	ctx := deliverycontext.WithRequestID(context.Background(), "req-123")
	reply, err := assistant.Complete(ctx, testMessages)
	require.NoError(t, err)
	assert.Equal(t, "Visita el Cañón de las Hermosas.", reply)
	assert.Equal(t, "openrouter/auto", assistant.Model())
}

func TestOpenAIAssistant_Complete_QuotaStatuses(t *testing.T) {
	for _, status := range []int{http.StatusPaymentRequired, http.StatusTooManyRequests} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"error":{"message":"Insufficient credits"}}`))
		}))

		assistant := NewOpenAIAssistant(newTestAssistantConfig(server.URL), newDiscardLogger())

		_, err := assistant.Complete(context.Background(), testMessages)
		require.Error(t, err)
		assert.True(t, errors.Is(err, service.ErrAssistantQuotaExceeded), "status %d", status)

		server.Close()
	}
}

func TestOpenAIAssistant_Complete_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`upstream unavailable`))
	}))
	defer server.Close()

	assistant := NewOpenAIAssistant(newTestAssistantConfig(server.URL), newDiscardLogger())

	_, err := assistant.Complete(context.Background(), testMessages)
	require.Error(t, err)
	assert.False(t, errors.Is(err, service.ErrAssistantQuotaExceeded))
	assert.Contains(t, err.Error(), "502")
}

func TestOpenAIAssistant_Complete_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	assistant := NewOpenAIAssistant(newTestAssistantConfig(server.URL), newDiscardLogger())

	_, err := assistant.Complete(context.Background(), testMessages)
	assert.Error(t, err)
}

func TestOpenAIAssistant_Complete_BreakerOpens(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	assistant := NewOpenAIAssistant(newTestAssistantConfig(server.URL), newDiscardLogger())

	for range 2 {
		_, err := assistant.Complete(context.Background(), testMessages)
		require.Error(t, err)
	}

	_, err := assistant.Complete(context.Background(), testMessages)
	require.Error(t, err)
	assert.True(t, errors.Is(err, gobreaker.ErrOpenState))
	assert.Equal(t, int32(2), calls.Load())
}

func TestOpenAIAssistant_Complete_QuotaDoesNotTripBreaker(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	assistant := NewOpenAIAssistant(newTestAssistantConfig(server.URL), newDiscardLogger())

	for range 4 {
		_, err := assistant.Complete(context.Background(), testMessages)
		assert.True(t, errors.Is(err, service.ErrAssistantQuotaExceeded))
	}
	assert.Equal(t, int32(4), calls.Load())
}
