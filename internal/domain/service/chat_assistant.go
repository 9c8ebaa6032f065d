package service

import (
	"context"

	"conecta/internal/domain/entity"

	"github.com/pkg/errors"
)

var (
	// ErrAssistantQuotaExceeded is returned when the model provider rejects the call for quota or credits.
	ErrAssistantQuotaExceeded = errors.New("assistant quota exceeded")
	// ErrAssistantDisabled is returned when no chat-completion backend is configured.
	ErrAssistantDisabled = errors.New("assistant not configured")
)

// ChatAssistant defines the interface for chat-completion backends
type ChatAssistant interface {
	// Complete sends the ordered messages and returns the assistant's reply text
	Complete(ctx context.Context, messages []entity.ChatMessage) (string, error)

	// Model names the backing model, recorded with every interaction
	Model() string

	// Close releases any resources held by the assistant
	Close() error
}
