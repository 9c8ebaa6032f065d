package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"conecta/config"
	deliverycontext "conecta/internal/delivery/context"
	"conecta/internal/domain/entity"
	"conecta/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sony/gobreaker/v2"
)

const (
	breakerName         = "chat_completions"
	maxResponseBodySize = 1 << 20
	maxErrorBodyLogged  = 512
)

var circuitBreakerState = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "assistant_circuit_breaker_state",
		Help: "Current state of the chat-completion circuit breaker (0=closed, 1=half-open, 2=open)",
	},
	[]string{"name"},
)

func init() {
	prometheus.MustRegister(circuitBreakerState)
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// openAIAssistant implements ChatAssistant against any OpenAI-compatible
// chat-completions endpoint, such as OpenRouter
type openAIAssistant struct {
	endpoint   string
	apiKey     string
	model      string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[string]
	logger     *slog.Logger
}

type chatCompletionRequest struct {
	Model    string               `json:"model"`
	Messages []entity.ChatMessage `json:"messages"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message entity.ChatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// NewOpenAIAssistant creates a chat assistant for an OpenAI-compatible endpoint
func NewOpenAIAssistant(cfg *config.AssistantConfig, logger *slog.Logger) service.ChatAssistant {
	cbCfg := withBreakerDefaults(cfg.CircuitBreaker)

	settings := gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: cbCfg.MaxRequests,
		Interval:    cbCfg.Interval,
		Timeout:     cbCfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cbCfg.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)

			return failureRatio >= cbCfg.FailureRatio
		},
		// A quota rejection or a caller cancellation says nothing about upstream health.
		IsSuccessful: func(err error) bool {
			return err == nil ||
				errors.Is(err, service.ErrAssistantQuotaExceeded) ||
				errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("Circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
			circuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
		},
	}

	circuitBreakerState.WithLabelValues(breakerName).Set(0)

	return &openAIAssistant{
		endpoint: strings.TrimRight(cfg.BaseURL, "/") + "/chat/completions",
		apiKey:   cfg.APIKey,
		model:    cfg.Model,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		breaker: gobreaker.NewCircuitBreaker[string](settings),
		logger:  logger,
	}
}

func withBreakerDefaults(cbCfg config.CircuitBreakerConfig) config.CircuitBreakerConfig {
	if cbCfg.MaxRequests == 0 {
		cbCfg.MaxRequests = 1
	}
	if cbCfg.Interval == 0 {
		cbCfg.Interval = 60 * time.Second
	}
	if cbCfg.Timeout == 0 {
		cbCfg.Timeout = 30 * time.Second
	}
	if cbCfg.FailureRatio == 0 {
		cbCfg.FailureRatio = 0.5
	}
	if cbCfg.MinRequests == 0 {
		cbCfg.MinRequests = 5
	}

	return cbCfg
}

// Complete sends the messages through the circuit breaker
func (a *openAIAssistant) Complete(ctx context.Context, messages []entity.ChatMessage) (string, error) {
	reply, err := a.breaker.Execute(func() (string, error) {
		return a.complete(ctx, messages)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return "", errors.Wrap(err, "chat completion circuit open")
	}
	if err != nil {
		return "", err
	}

	return reply, nil
}

func (a *openAIAssistant) complete(ctx context.Context, messages []entity.ChatMessage) (string, error) {
	body, err := json.Marshal(chatCompletionRequest{
		Model:    a.model,
		Messages: messages,
	})
	if err != nil {
		return "", errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+a.apiKey)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", errors.WithStack(err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		return "", errors.Wrap(err, "failed to read chat completion response")
	}

	switch {
	case resp.StatusCode == http.StatusPaymentRequired || resp.StatusCode == http.StatusTooManyRequests:
		return "", errors.Wrapf(service.ErrAssistantQuotaExceeded, "chat completion returned status %d", resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return "", errors.Errorf("chat completion returned status %d: %s", resp.StatusCode, truncate(payload))
	}

	var parsed chatCompletionResponse
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return "", errors.Wrap(err, "failed to decode chat completion response")
	}
	if parsed.Error != nil {
		return "", errors.Errorf("chat completion failed: %s", parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}

	return parsed.Choices[0].Message.Content, nil
}

// Model returns the configured model name
func (a *openAIAssistant) Model() string {
	return a.model
}

// Close releases idle connections
func (a *openAIAssistant) Close() error {
	a.httpClient.CloseIdleConnections()

	return nil
}

func truncate(body []byte) string {
	if len(body) > maxErrorBodyLogged {
		return string(body[:maxErrorBodyLogged])
	}

	return string(body)
}
