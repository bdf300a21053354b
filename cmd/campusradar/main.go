package main

import (
	"context"
	"log/slog"
	"os"

	"campusradar/config"
	"campusradar/internal/delivery"
	"campusradar/internal/delivery/api"
	"campusradar/internal/delivery/api/router/handler"
	"campusradar/internal/infra/connectivity"
	logs "campusradar/internal/infra/log"
	"campusradar/internal/infra/metrics"
	"campusradar/internal/infra/persistence/firestore"
	"campusradar/internal/infra/persistence/postgres"
	"campusradar/internal/infra/persistence/tiered"
	"campusradar/internal/usecase/impl"

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
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		metrics.New,
		context.Background,
		connectivity.New,
		postgres.New,
		firestore.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			// Remote document store
			firestore.NewUserStore,
			firestore.NewProductStore,
			// Local snapshot store
			postgres.NewLocalUserStore,
			postgres.NewLocalProductStore,
			// Remote-first, local-fallback repositories
			tiered.NewUserRepository,
			tiered.NewProductRepository,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewProximityService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewProximityHandler,
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
