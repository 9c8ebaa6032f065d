package usecase

import (
	"context"
	"encoding/json"
)

// RecommendationInput is a trip recommendation request from a traveller
type RecommendationInput struct {
	UserID  *string
	Message string
	// IncludeAvailableProviders enriches the prompt with the currently available providers
	IncludeAvailableProviders bool
	// Raw is the request as received, recorded with the interaction
	Raw json.RawMessage
}

// RecommendationOutput is the assistant's answer
type RecommendationOutput struct {
	Response string `json:"respuesta"`
	Model    string `json:"modelo"`
}

// AssistantUsecase defines the interface for the trip assistant
type AssistantUsecase interface {
	// Recommend asks the language model for trip recommendations.
	// The exchange is recorded in the background and never affects the answer.
	Recommend(ctx context.Context, input *RecommendationInput) (*RecommendationOutput, error)

	// Drain waits for background recordings to finish or ctx to end
	Drain(ctx context.Context) error
}
