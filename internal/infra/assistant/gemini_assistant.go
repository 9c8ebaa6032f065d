package assistant

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"conecta/config"
	"conecta/internal/domain/entity"
	"conecta/internal/domain/service"

	"github.com/google/generative-ai-go/genai"
	"github.com/pkg/errors"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// geminiAssistant implements ChatAssistant using Google's Gemini API
type geminiAssistant struct {
	client *genai.Client
	model  string
	logger *slog.Logger
}

// NewGeminiAssistant creates a chat assistant backed by Gemini
func NewGeminiAssistant(ctx context.Context, cfg *config.AssistantConfig, logger *slog.Logger) (service.ChatAssistant, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Gemini client")
	}

	logger.Info("Gemini assistant initialized", slog.String("model", cfg.Model))

	return &geminiAssistant{
		client: client,
		model:  cfg.Model,
		logger: logger,
	}, nil
}

// Complete folds system messages into the system instruction and replays the
// remaining turns as chat history before sending the final user message
func (g *geminiAssistant) Complete(ctx context.Context, messages []entity.ChatMessage) (string, error) {
	model := g.client.GenerativeModel(g.model)

	var system []genai.Part
	var turns []*genai.Content
	for _, message := range messages {
		switch message.Role {
		case entity.ChatRoleSystem:
			system = append(system, genai.Text(message.Content))
		case entity.ChatRoleAssistant:
			turns = append(turns, &genai.Content{Role: "model", Parts: []genai.Part{genai.Text(message.Content)}})
		default:
			turns = append(turns, &genai.Content{Role: "user", Parts: []genai.Part{genai.Text(message.Content)}})
		}
	}
	if len(system) > 0 {
		model.SystemInstruction = &genai.Content{Parts: system}
	}
	if len(turns) == 0 {
		return "", errors.New("no user message to send")
	}

	session := model.StartChat()
	session.History = turns[:len(turns)-1]

	resp, err := session.SendMessage(ctx, turns[len(turns)-1].Parts...)
	if err != nil {
		if isQuotaError(err) {
			return "", errors.Wrap(service.ErrAssistantQuotaExceeded, err.Error())
		}

		return "", errors.Wrap(err, "gemini generate error")
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}

	return sb.String(), nil
}

// Model returns the configured model name
func (g *geminiAssistant) Model() string {
	return g.model
}

// Close releases the underlying client
func (g *geminiAssistant) Close() error {
	return g.client.Close()
}

func isQuotaError(err error) bool {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusTooManyRequests {
		return true
	}

	return strings.Contains(err.Error(), "RESOURCE_EXHAUSTED")
}
