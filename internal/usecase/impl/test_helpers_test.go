package impl

import (
	"io"
	"log/slog"
	"time"

	"conecta/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Directory: &config.DirectoryConfig{
			DefaultPageLimit: 100,
			MaxPageLimit:     1000,
		},
		Assistant: &config.AssistantConfig{
			Model:        "test-model",
			Timeout:      time.Second,
			LogTimeout:   time.Second,
			SystemPrompt: "Eres un guía del Tolima.",
		},
	}
}

func float64Ptr(v float64) *float64 {
	return &v
}

func stringPtr(v string) *string {
	return &v
}
