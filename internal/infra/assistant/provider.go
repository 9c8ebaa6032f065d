package assistant

import (
	"context"
	"log/slog"

	"conecta/config"
	"conecta/internal/domain/constants"
	"conecta/internal/domain/entity"
	"conecta/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// disabledAssistant is used when no chat-completion backend is configured
type disabledAssistant struct {
	logger *slog.Logger
}

func (a *disabledAssistant) Complete(ctx context.Context, messages []entity.ChatMessage) (string, error) {
	a.logger.Debug("[DisabledAssistant] Chat completion requested but no provider is configured",
		slog.Int("message_count", len(messages)),
	)

	return "", service.ErrAssistantDisabled
}

func (a *disabledAssistant) Model() string {
	return ""
}

func (a *disabledAssistant) Close() error {
	return nil
}

// Params holds dependencies for ChatAssistant, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewChatAssistant creates a ChatAssistant based on configuration
func NewChatAssistant(params Params) (service.ChatAssistant, error) {
	cfg := params.Config.Assistant
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("Assistant not configured, recommendations are disabled")

		return &disabledAssistant{logger: logger}, nil
	}

	// A provider without credentials runs disabled so the directory still boots.
	if cfg.APIKey == "" {
		logger.Warn("Assistant API key not set, recommendations are disabled",
			slog.String("provider", cfg.Provider),
		)

		return &disabledAssistant{logger: logger}, nil
	}
	if cfg.Model == "" {
		return nil, errors.Errorf("model is required for %s assistant", cfg.Provider)
	}

	var assistant service.ChatAssistant
	var err error

	switch cfg.Provider {
	case constants.AssistantProviderOpenAI:
		if cfg.BaseURL == "" {
			return nil, errors.New("base URL is required for openai assistant")
		}
		logger.Info("Using OpenAI-compatible assistant",
			slog.String("base_url", cfg.BaseURL),
			slog.String("model", cfg.Model),
		)

		assistant = NewOpenAIAssistant(cfg, logger)

	case constants.AssistantProviderGemini:
		assistant, err = NewGeminiAssistant(params.Ctx, cfg, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown assistant provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing ChatAssistant")

			return assistant.Close()
		},
	})

	return assistant, nil
}
