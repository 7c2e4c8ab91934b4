package main

import (
	"context"
	"fmt"

	"go-jobboard-api/config"
	"go-jobboard-api/internal/domain"
	"go-jobboard-api/internal/repository/gormstore"
	"go-jobboard-api/internal/repository/postgres"
	"go-jobboard-api/internal/usecase"
	"go-jobboard-api/pkg/database"
	"go-jobboard-api/pkg/logger"

	"go.uber.org/zap"
)

// storage bundles the repositories of one backend with its health probe and
// a close function.
type storage struct {
	users        domain.UserRepository
	candidates   domain.CandidateRepository
	companies    domain.CompanyRepository
	jobs         domain.JobRepository
	applications domain.ApplicationRepository

	ping  usecase.HealthCheck
	close func()
}

func openStorage(ctx context.Context, cfg *config.Config, migrate bool) (*storage, error) {
	switch cfg.StorageDriver {
	case config.StorageSQLite:
		return openSQLite(ctx, cfg)
	default:
		return openPostgres(ctx, cfg, migrate)
	}
}

func openPostgres(ctx context.Context, cfg *config.Config, migrate bool) (*storage, error) {
	if migrate {
		logger.From(ctx).Info("applying migrations")
		if err := database.MigrateUp(ctx, cfg.DBUrl); err != nil {
			return nil, err
		}
	}

	pool, err := database.NewPostgresConnection(ctx, cfg.DBUrl, cfg.DBConnectRetries)
	if err != nil {
		return nil, err
	}

	return &storage{
		users:        postgres.NewUserRepository(pool),
		candidates:   postgres.NewCandidateRepository(pool),
		companies:    postgres.NewCompanyRepository(pool),
		jobs:         postgres.NewJobRepository(pool),
		applications: postgres.NewApplicationRepository(pool),
		ping:         pool.Ping,
		close: func() {
			logger.From(ctx).Info("closing postgres pool")
			pool.Close()
		},
	}, nil
}

// The SQLite backend creates its schema on start, so migrate is implied.
func openSQLite(ctx context.Context, cfg *config.Config) (*storage, error) {
	db, err := database.NewSQLiteConnection(cfg.SQLitePath)
	if err != nil {
		return nil, err
	}
	if err := gormstore.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("migrate sqlite schema: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sqlite handle: %w", err)
	}
	logger.From(ctx).Info("using sqlite storage", zap.String("path", cfg.SQLitePath))

	return &storage{
		users:        gormstore.NewUserRepository(db),
		candidates:   gormstore.NewCandidateRepository(db),
		companies:    gormstore.NewCompanyRepository(db),
		jobs:         gormstore.NewJobRepository(db),
		applications: gormstore.NewApplicationRepository(db),
		ping:         sqlDB.PingContext,
		close: func() {
			if err := sqlDB.Close(); err != nil {
				logger.From(ctx).Warn("could not close sqlite", zap.Error(err))
			}
		},
	}, nil
}
