package main

import (
	"context"
	"log/slog"
	"os"

	"conecta/config"
	"conecta/internal/delivery"
	"conecta/internal/delivery/api"
	apimiddleware "conecta/internal/delivery/api/middleware"
	"conecta/internal/delivery/api/router/handler"
	"conecta/internal/domain/lifecycle"
	"conecta/internal/infra/assistant"
	"conecta/internal/infra/cache"
	logs "conecta/internal/infra/log"
	"conecta/internal/infra/persistence/postgres"
	"conecta/internal/usecase"
	"conecta/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			drainAssistantOnStop,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewProviderRepository,
			postgres.NewReviewRepository,
			postgres.NewInteractionRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			assistant.NewChatAssistant,
			cache.NewMapCache,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewProviderService,
			impl.NewReviewService,
			impl.NewMapService,
			impl.NewAssistantService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewProviderHandler,
			handler.NewReviewHandler,
			handler.NewMapHandler,
			handler.NewAssistantHandler,
			handler.NewHealthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}

// drainAssistantOnStop lets in-flight interaction recordings finish before the database closes.
func drainAssistantOnStop(lc fx.Lifecycle, assistantUC usecase.AssistantUsecase, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			drainCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := assistantUC.Drain(drainCtx); err != nil {
				logger.Warn("Interaction recordings still pending at shutdown", slog.Any("error", err))
			}

			return nil
		},
	})
}
