package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"conecta/config"
	deliverycontext "conecta/internal/delivery/context"
	"conecta/internal/domain/entity"
	domainerrors "conecta/internal/domain/errors"
	"conecta/internal/domain/repository"
	"conecta/internal/domain/service"
	"conecta/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultSystemPrompt = "Eres un asistente de turismo del Tolima. " +
	"Recomienda planes, alojamientos y guías locales de forma breve y concreta."

// assistantService implements the AssistantUsecase interface.
type assistantService struct {
	assistant       service.ChatAssistant
	providerRepo    repository.ProviderRepository
	interactionRepo repository.InteractionRepository
	systemPrompt    string
	timeout         time.Duration
	logTimeout      time.Duration
	logger          *slog.Logger

	// pending tracks detached interaction recordings
	pending sync.WaitGroup
}

// AssistantServiceParams holds dependencies for AssistantService, injected by Fx.
type AssistantServiceParams struct {
	fx.In

	Assistant       service.ChatAssistant
	ProviderRepo    repository.ProviderRepository
	InteractionRepo repository.InteractionRepository
	Config          *config.Config
	Logger          *slog.Logger
}

// NewAssistantService is the constructor for assistantService.
func NewAssistantService(params AssistantServiceParams) usecase.AssistantUsecase {
	srv := &assistantService{
		assistant:       params.Assistant,
		providerRepo:    params.ProviderRepo,
		interactionRepo: params.InteractionRepo,
		systemPrompt:    defaultSystemPrompt,
		logger:          params.Logger,
	}

	if params.Config != nil && params.Config.Assistant != nil {
		assistantCfg := params.Config.Assistant
		if strings.TrimSpace(assistantCfg.SystemPrompt) != "" {
			srv.systemPrompt = assistantCfg.SystemPrompt
		}
		srv.timeout = assistantCfg.Timeout
		srv.logTimeout = assistantCfg.LogTimeout
	}

	return srv
}

func (srv *assistantService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Recommend asks the chat assistant for trip recommendations and records the exchange in the background.
func (srv *assistantService) Recommend(ctx context.Context, input *usecase.RecommendationInput) (*usecase.RecommendationOutput, error) {
	if input == nil || strings.TrimSpace(input.Message) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("mensaje: is required")
	}

	var providers []*entity.Provider
	if input.IncludeAvailableProviders {
		available, err := srv.providerRepo.ListAvailable(ctx)
		if err != nil {
			// The answer is still useful without the snapshot.
			srv.log(ctx).Warn("Failed to load available providers for assistant", slog.Any("error", err))
		} else {
			providers = available
		}
	}

	messages := srv.buildMessages(input.Message, providers)

	callCtx := ctx
	if srv.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, srv.timeout)
		defer cancel()
	}

	started := time.Now()
	reply, callErr := srv.assistant.Complete(callCtx, messages)
	latency := time.Since(started)

	srv.record(ctx, input, reply, map[string]any{
		"model":          srv.assistant.Model(),
		"latency_ms":     latency.Milliseconds(),
		"provider_count": len(providers),
		"error":          errorText(callErr),
	})

	if callErr != nil {
		return nil, srv.translateAssistantError(ctx, callErr)
	}

	return &usecase.RecommendationOutput{
		Response: reply,
		Model:    srv.assistant.Model(),
	}, nil
}

// Drain waits for pending interaction recordings or for ctx to end.
func (srv *assistantService) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		srv.pending.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "interaction recordings still pending")
	}
}

func (srv *assistantService) buildMessages(message string, providers []*entity.Provider) []entity.ChatMessage {
	var content strings.Builder
	content.WriteString(message)

	if len(providers) > 0 {
		content.WriteString("\n\nProveedores disponibles:\n")
		for _, provider := range providers {
			fmt.Fprintf(&content, "- %s (%s, %s)", provider.Name, provider.ProviderType, provider.City)
			if provider.ShortDescription != "" {
				fmt.Fprintf(&content, ": %s", provider.ShortDescription)
			}
			content.WriteString("\n")
		}
	}

	return []entity.ChatMessage{
		{Role: entity.ChatRoleSystem, Content: srv.systemPrompt},
		{Role: entity.ChatRoleUser, Content: content.String()},
	}
}

// record stores the exchange on a detached goroutine; failures are only logged.
func (srv *assistantService) record(ctx context.Context, input *usecase.RecommendationInput, reply string, metadata map[string]any) {
	userInput := input.Raw
	if len(userInput) == 0 {
		encoded, err := json.Marshal(map[string]any{"mensaje": input.Message})
		if err != nil {
			srv.log(ctx).Warn("Failed to encode assistant input", slog.Any("error", err))

			return
		}
		userInput = encoded
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		metadata["request_id"] = requestID
	}

	interaction := &entity.Interaction{
		UserID:     input.UserID,
		UserInput:  userInput,
		AIResponse: reply,
		Metadata:   metadata,
	}

	logger := srv.log(ctx)
	recordCtx := context.WithoutCancel(ctx)

	srv.pending.Add(1)
	go func() {
		defer srv.pending.Done()

		if srv.logTimeout > 0 {
			var cancel context.CancelFunc
			recordCtx, cancel = context.WithTimeout(recordCtx, srv.logTimeout)
			defer cancel()
		}

		if err := srv.interactionRepo.Create(recordCtx, interaction); err != nil {
			logger.Warn("Failed to record assistant interaction", slog.Any("error", err))

			return
		}

		logger.Debug("Assistant interaction recorded", slog.Int64("interaction_id", interaction.ID))
	}()
}

func (srv *assistantService) translateAssistantError(ctx context.Context, err error) error {
	srv.log(ctx).Error("Assistant call failed", slog.Any("error", err))

	switch {
	case errors.Is(err, service.ErrAssistantQuotaExceeded):
		return errors.Wrap(domainerrors.ErrAssistantQuotaExceeded, "assistant call")
	case errors.Is(err, service.ErrAssistantDisabled):
		return domainerrors.ErrAssistantUnavailable.WithDetails("assistant not configured")
	default:
		return errors.Wrap(domainerrors.ErrAssistantUnavailable, err.Error())
	}
}

func errorText(err error) any {
	if err == nil {
		return nil
	}

	return err.Error()
}
