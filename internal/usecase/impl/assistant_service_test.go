package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	deliverycontext "conecta/internal/delivery/context"
	"conecta/internal/domain/entity"
	domainerrors "conecta/internal/domain/errors"
	"conecta/internal/domain/service"
	mockRepo "conecta/internal/mocks/repository"
	mockService "conecta/internal/mocks/service"
	"conecta/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// assistantServiceFixtures holds all test dependencies for assistant service tests.
type assistantServiceFixtures struct {
	service         usecase.AssistantUsecase
	assistant       *mockService.MockChatAssistant
	providerRepo    *mockRepo.MockProviderRepository
	interactionRepo *mockRepo.MockInteractionRepository
}

func createTestAssistantService(t *testing.T) assistantServiceFixtures {
	assistant := mockService.NewMockChatAssistant(t)
	providerRepo := mockRepo.NewMockProviderRepository(t)
	interactionRepo := mockRepo.NewMockInteractionRepository(t)

	service := NewAssistantService(AssistantServiceParams{
		Assistant:       assistant,
		ProviderRepo:    providerRepo,
		InteractionRepo: interactionRepo,
		Config:          newTestConfig(),
		Logger:          newDiscardLogger(),
	})

	return assistantServiceFixtures{
		service:         service,
		assistant:       assistant,
		providerRepo:    providerRepo,
		interactionRepo: interactionRepo,
	}
}

func (fx assistantServiceFixtures) drain(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	require.NoError(t, fx.service.Drain(ctx))
}

func TestAssistantService_Recommend_Success(t *testing.T) {
	fx := createTestAssistantService(t)

	ctx := context.Background()
	userID := "user-1"

	fx.assistant.EXPECT().
		Complete(mock.Anything, mock.MatchedBy(func(messages []entity.ChatMessage) bool {
			return len(messages) == 2 &&
				messages[0].Role == entity.ChatRoleSystem &&
				messages[0].Content == "Eres un guía del Tolima." &&
				messages[1].Role == entity.ChatRoleUser &&
				messages[1].Content == "¿Qué hacer en Ibagué?"
		})).
		Return("Visita el Jardín Botánico San Jorge.", nil)
	fx.assistant.EXPECT().Model().Return("test-model")
	fx.interactionRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(interaction *entity.Interaction) bool {
			return interaction.UserID != nil && *interaction.UserID == userID &&
				interaction.AIResponse == "Visita el Jardín Botánico San Jorge." &&
				interaction.Metadata["model"] == "test-model" &&
				interaction.Metadata["error"] == nil
		})).
		Return(nil)

	output, err := fx.service.Recommend(ctx, &usecase.RecommendationInput{
		UserID:  &userID,
		Message: "¿Qué hacer en Ibagué?",
	})
	require.NoError(t, err)
	assert.Equal(t, "Visita el Jardín Botánico San Jorge.", output.Response)
	assert.Equal(t, "test-model", output.Model)

	fx.drain(t)
}

func TestAssistantService_Recommend_IncludesAvailableProviders(t *testing.T) {
	fx := createTestAssistantService(t)

	ctx := context.Background()

	fx.providerRepo.EXPECT().
		ListAvailable(ctx).
		Return([]*entity.Provider{
			{ID: 1, Name: "Hotel Tolima", ProviderType: "hotel", City: "Ibagué", Available: true},
		}, nil)
	fx.assistant.EXPECT().
		Complete(mock.Anything, mock.MatchedBy(func(messages []entity.ChatMessage) bool {
			return strings.Contains(messages[1].Content, "Hotel Tolima (hotel, Ibagué)")
		})).
		Return("Te recomiendo el Hotel Tolima.", nil)
	fx.assistant.EXPECT().Model().Return("test-model")
	fx.interactionRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(interaction *entity.Interaction) bool {
			return interaction.Metadata["provider_count"] == 1
		})).
		Return(nil)

	output, err := fx.service.Recommend(ctx, &usecase.RecommendationInput{
		Message:                   "¿Dónde dormir?",
		IncludeAvailableProviders: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Te recomiendo el Hotel Tolima.", output.Response)

	fx.drain(t)
}

func TestAssistantService_Recommend_RecordsRequestID(t *testing.T) {
	fx := createTestAssistantService(t)

	ctx := deliverycontext.WithRequestID(context.Background(), "req-77")

	fx.assistant.EXPECT().Complete(mock.Anything, mock.Anything).Return("Respuesta", nil)
	fx.assistant.EXPECT().Model().Return("test-model")
	fx.interactionRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(interaction *entity.Interaction) bool {
			return interaction.Metadata["request_id"] == "req-77"
		})).
		Return(nil)

	_, err := fx.service.Recommend(ctx, &usecase.RecommendationInput{Message: "Hola"})
	require.NoError(t, err)

	fx.drain(t)
}

func TestAssistantService_Recommend_BackgroundCallHasNoRequestID(t *testing.T) {
	fx := createTestAssistantService(t)

	fx.assistant.EXPECT().Complete(mock.Anything, mock.Anything).Return("Respuesta", nil)
	fx.assistant.EXPECT().Model().Return("test-model")
	fx.interactionRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(interaction *entity.Interaction) bool {
			_, tagged := interaction.Metadata["request_id"]

			return !tagged
		})).
		Return(nil)

	_, err := fx.service.Recommend(context.Background(), &usecase.RecommendationInput{Message: "Hola"})
	require.NoError(t, err)

	fx.drain(t)
}

func TestAssistantService_Recommend_RecordingFailureDoesNotFail(t *testing.T) {
	fx := createTestAssistantService(t)

	ctx := context.Background()

	fx.assistant.EXPECT().Complete(mock.Anything, mock.Anything).Return("Respuesta", nil)
	fx.assistant.EXPECT().Model().Return("test-model")
	fx.interactionRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Interaction")).
		Return(errors.New("insert failed"))

	output, err := fx.service.Recommend(ctx, &usecase.RecommendationInput{Message: "Hola"})
	require.NoError(t, err)
	assert.Equal(t, "Respuesta", output.Response)

	fx.drain(t)
}

func TestAssistantService_Recommend_RecordingOutlivesRequestContext(t *testing.T) {
	fx := createTestAssistantService(t)

	ctx, cancel := context.WithCancel(context.Background())

	fx.assistant.EXPECT().Complete(mock.Anything, mock.Anything).Return("Respuesta", nil)
	fx.assistant.EXPECT().Model().Return("test-model")
	fx.interactionRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Interaction")).
		RunAndReturn(func(recordCtx context.Context, _ *entity.Interaction) error {
			return recordCtx.Err()
		})

	_, err := fx.service.Recommend(ctx, &usecase.RecommendationInput{Message: "Hola"})
	require.NoError(t, err)
	cancel()

	fx.drain(t)
}

func TestAssistantService_Recommend_QuotaExceeded(t *testing.T) {
	fx := createTestAssistantService(t)

	ctx := context.Background()

	fx.assistant.EXPECT().
		Complete(mock.Anything, mock.Anything).
		Return("", errors.Wrap(service.ErrAssistantQuotaExceeded, "status 402"))
	fx.assistant.EXPECT().Model().Return("test-model")
	fx.interactionRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(interaction *entity.Interaction) bool {
			return interaction.Metadata["error"] != nil
		})).
		Return(nil)

	output, err := fx.service.Recommend(ctx, &usecase.RecommendationInput{Message: "Hola"})
	assert.Nil(t, output)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAssistantQuotaExceeded))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 429, appErr.HTTPCode())

	fx.drain(t)
}

func TestAssistantService_Recommend_UpstreamFailure(t *testing.T) {
	fx := createTestAssistantService(t)

	ctx := context.Background()

	fx.assistant.EXPECT().Complete(mock.Anything, mock.Anything).Return("", errors.New("connection reset"))
	fx.assistant.EXPECT().Model().Return("test-model")
	fx.interactionRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	_, err := fx.service.Recommend(ctx, &usecase.RecommendationInput{Message: "Hola"})
	assert.True(t, errors.Is(err, domainerrors.ErrAssistantUnavailable))

	fx.drain(t)
}

func TestAssistantService_Recommend_Disabled(t *testing.T) {
	fx := createTestAssistantService(t)

	ctx := context.Background()

	fx.assistant.EXPECT().Complete(mock.Anything, mock.Anything).Return("", service.ErrAssistantDisabled)
	fx.assistant.EXPECT().Model().Return("")
	fx.interactionRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	_, err := fx.service.Recommend(ctx, &usecase.RecommendationInput{Message: "Hola"})
	assert.True(t, errors.Is(err, domainerrors.ErrAssistantUnavailable))

	fx.drain(t)
}

func TestAssistantService_Recommend_EmptyMessage(t *testing.T) {
	fx := createTestAssistantService(t)

	output, err := fx.service.Recommend(context.Background(), &usecase.RecommendationInput{Message: "  "})
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAssistantService_Drain_RespectsContext(t *testing.T) {
	fx := createTestAssistantService(t)

	release := make(chan struct{})

	fx.assistant.EXPECT().Complete(mock.Anything, mock.Anything).Return("Respuesta", nil)
	fx.assistant.EXPECT().Model().Return("test-model")
	fx.interactionRepo.EXPECT().
		Create(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, *entity.Interaction) error {
			<-release

			return nil
		})

	_, err := fx.service.Recommend(context.Background(), &usecase.RecommendationInput{Message: "Hola"})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.Error(t, fx.service.Drain(ctx))

	close(release)
	fx.drain(t)
}
