package model

import (
	"time"

	"gorm.io/datatypes"
)

// InteractionModel is the GORM-specific struct for the 'ai_interactions' table.
type InteractionModel struct {
	ID         int64          `gorm:"primaryKey;autoIncrement"`
	UserID     *string        `gorm:"type:varchar(255);index"`
	UserInput  datatypes.JSON `gorm:"type:jsonb;not null"`
	AIResponse string         `gorm:"column:ai_response;type:text;not null"`
	Metadata   datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt  time.Time      `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (InteractionModel) TableName() string {
	return "ai_interactions"
}

// All lists every persistence model, in dependency order, for migrations and code generation.
func All() []any {
	return []any{
		&ProviderModel{},
		&ReviewModel{},
		&InteractionModel{},
	}
}
