// Package postgres implements the local snapshot store on PostgreSQL through gorm.
package postgres

import (
	"context"
	"log/slog"

	"campusradar/config"
	"campusradar/internal/domain/lifecycle"
	"campusradar/internal/errors"
	"campusradar/internal/infra/metrics"
	"campusradar/internal/infra/persistence/model"

	"github.com/prometheus/client_golang/prometheus/collectors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// dbStatsName prefixes the connection pool metrics, e.g. go_sql_open_connections{db_name="campusradar_local"}.
const dbStatsName = "campusradar_local"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Recorder `optional:"true"`
}

// New opens the snapshot database. The connection is verified, and the tables
// optionally migrated, when the application starts.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres configuration is required for the local store")
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	// Snapshot upserts open their own transaction; single reads need none.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newQueryLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	if registry := params.Metrics.Registry(); registry != nil {
		registry.MustRegister(collectors.NewDBStatsCollector(sqlDB, dbStatsName))
	}

	autoMigrate := params.Config.LocalStore != nil && params.Config.LocalStore.AutoMigrate

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}
			if !autoMigrate {
				return nil
			}
			if err := Migrate(ctx, db); err != nil {
				return err
			}
			params.Logger.Info("Local snapshot tables migrated")

			return nil
		},
		OnStop: func(_ context.Context) error {
			params.Logger.Info("Closing local snapshot database")

			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}

// Migrate creates or updates the snapshot tables
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&model.LocalUserModel{}, &model.LocalProductModel{}); err != nil {
		return errors.Wrap(err, "failed to migrate local snapshot tables")
	}

	return nil
}
