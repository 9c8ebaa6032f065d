package repository

import (
	"context"

	"conecta/internal/domain/entity"
)

// InteractionRepository records assistant exchanges.
type InteractionRepository interface {
	Create(ctx context.Context, interaction *entity.Interaction) error
}
