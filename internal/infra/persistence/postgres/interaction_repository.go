package postgres

import (
	"context"
	"encoding/json"

	"conecta/internal/domain/entity"
	domainerrors "conecta/internal/domain/errors"
	"conecta/internal/domain/repository"
	"conecta/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// interactionRepository implements the repository.InteractionRepository interface.
type interactionRepository struct {
	db *gorm.DB
}

// NewInteractionRepository is the constructor for interactionRepository.
func NewInteractionRepository(db *gorm.DB) repository.InteractionRepository {
	return &interactionRepository{
		db: db,
	}
}

// Create records one assistant exchange.
func (repo *interactionRepository) Create(ctx context.Context, interaction *entity.Interaction) error {
	interactionM, err := fromInteractionDomain(interaction)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(interactionM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to record assistant interaction")
	}

	interaction.ID = interactionM.ID
	interaction.CreatedAt = interactionM.CreatedAt

	return nil
}

// fromInteractionDomain converts a domain Interaction entity to a GORM InteractionModel.
func fromInteractionDomain(data *entity.Interaction) (*model.InteractionModel, error) {
	userInput := datatypes.JSON(data.UserInput)
	if len(userInput) == 0 {
		userInput = datatypes.JSON("{}")
	}

	metadata := datatypes.JSON("{}")
	if len(data.Metadata) > 0 {
		raw, err := json.Marshal(data.Metadata)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode interaction metadata")
		}
		metadata = raw
	}

	return &model.InteractionModel{
		UserID:     data.UserID,
		UserInput:  userInput,
		AIResponse: data.AIResponse,
		Metadata:   metadata,
		CreatedAt:  data.CreatedAt,
	}, nil
}
