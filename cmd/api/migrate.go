package main

import (
	"context"
	"errors"

	"go-jobboard-api/config"
	"go-jobboard-api/pkg/database"
	"go-jobboard-api/pkg/logger"

	"github.com/spf13/cobra"
)

func migrateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manages the postgres schema",
	}

	requirePostgres := func(cmd *cobra.Command, args []string) error {
		if cfg.StorageDriver != config.StoragePostgres {
			return errors.New("migrations apply to the postgres storage driver only")
		}
		if cfg.DBUrl == "" {
			return errors.New("DATABASE_URL is required")
		}
		return nil
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:     "up",
			Short:   "Migrates the database to the latest version",
			PreRunE: requirePostgres,
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := context.Background()
				if err := database.MigrateUp(ctx, cfg.DBUrl); err != nil {
					return err
				}
				logger.From(ctx).Info("database is up to date")
				return nil
			},
		},
		&cobra.Command{
			Use:     "status",
			Short:   "Prints the applied state of every migration",
			PreRunE: requirePostgres,
			RunE: func(cmd *cobra.Command, args []string) error {
				return database.MigrationStatus(context.Background(), cfg.DBUrl)
			},
		},
	)
	return cmd
}
