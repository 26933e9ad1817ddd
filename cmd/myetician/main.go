package main

import (
	"context"
	"log/slog"
	"os"

	"myetician/config"
	"myetician/internal/delivery"
	"myetician/internal/delivery/api"
	"myetician/internal/delivery/api/middleware"
	"myetician/internal/delivery/api/router/handler"
	"myetician/internal/infra/auth"
	"myetician/internal/infra/clock"
	firebaseinfra "myetician/internal/infra/firebase"
	"myetician/internal/infra/foodlookup"
	logs "myetician/internal/infra/log"
	"myetician/internal/infra/observability"
	"myetician/internal/infra/persistence"
	"myetician/internal/infra/pubsub"
	"myetician/internal/usecase/impl"

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
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		firebaseinfra.NewApp,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			persistence.New,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			clock.New,
			auth.NewIdentityVerifier,
			foodlookup.New,
			pubsub.NewEventPublisher,
			observability.NewErrorReporter,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewProfileService,
			impl.NewMealService,
			impl.NewFoodService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewProfileHandler,
			handler.NewMealHandler,
			handler.NewFoodHandler,
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
