package entity

import (
	"encoding/json"
	"time"
)

// Interaction is one recorded exchange with the trip assistant.
type Interaction struct {
	ID         int64
	UserID     *string
	UserInput  json.RawMessage
	AIResponse string
	Metadata   map[string]any
	CreatedAt  time.Time
}
