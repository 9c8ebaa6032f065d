package constants

// Chat assistant backends selectable through configuration
const (
	AssistantProviderOpenAI = "openai"
	AssistantProviderGemini = "gemini"
)
