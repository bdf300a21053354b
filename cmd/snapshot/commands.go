package main

import (
	"context"
	"fmt"

	"campusradar/config"
	logs "campusradar/internal/infra/log"
	"campusradar/internal/infra/persistence/firestore"
	"campusradar/internal/infra/persistence/postgres"
	"campusradar/internal/infra/persistence/tiered"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func runMigrate(ctx context.Context) error {
	var db *gorm.DB

	return withApp(ctx, func(ctx context.Context) error {
		if err := postgres.Migrate(ctx, db); err != nil {
			return err
		}
		fmt.Println("Local snapshot tables are up to date")

		return nil
	},
		fx.Provide(postgres.New),
		fx.Populate(&db),
	)
}

func runRefresh(ctx context.Context) error {
	var refresher *tiered.Refresher

	return withApp(ctx, func(ctx context.Context) error {
		stats, err := refresher.Refresh(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Copied %d users and %d products\n", stats.Users, stats.Products)

		return nil
	},
		fx.Provide(
			postgres.New,
			firestore.New,
			firestore.NewUserStore,
			firestore.NewProductStore,
			postgres.NewLocalUserStore,
			postgres.NewLocalProductStore,
			tiered.NewRefresher,
		),
		fx.Populate(&refresher),
	)
}

// withApp starts the given components, runs fn and stops them again.
func withApp(ctx context.Context, fn func(context.Context) error, opts ...fx.Option) error {
	app := fx.New(append([]fx.Option{
		fx.NopLogger,
		fx.Provide(config.New, logs.New),
	}, opts...)...)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build components")
	}

	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start components")
	}

	runErr := fn(ctx)

	if err := app.Stop(context.WithoutCancel(ctx)); err != nil && runErr == nil {
		return errors.Wrap(err, "failed to stop components")
	}

	return runErr
}
