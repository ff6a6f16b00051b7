package main

import (
	"context"
	"database/sql"
	"fmt"
	root "labelchecker"
	"labelchecker/internal/config"
	"labelchecker/pkg/logger"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateApp applies the embedded goose migrations.
func migrateApp(db *sql.DB) error {
	goose.SetBaseFS(root.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("could not set goose dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("could not apply migrations: %w", err)
	}

	return nil
}

// migrateRiver brings the River tables up to the version bundled with the
// linked river module.
func migrateRiver(ctx context.Context, db *sql.DB) error {
	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return fmt.Errorf("could not create river migrator: %w", err)
	}

	all := migrator.AllVersions()
	target := all[len(all)-1].Version
	existing, err := migrator.ExistingVersions(ctx)
	if err != nil {
		return fmt.Errorf("could not read river migrations: %w", err)
	}
	if len(existing) > 0 && existing[len(existing)-1].Version >= target {
		return nil
	}

	res, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, &rivermigrate.MigrateOpts{TargetVersion: target})
	if err != nil {
		return fmt.Errorf("could not migrate river tables: %w", err)
	}
	logger.Info(ctx, "river tables migrated", zap.Int("versions", len(res.Versions)), zap.Int("target", target))

	return nil
}

// migrateCommand constructs the 'migrate' subcommand that applies the
// application and River migrations.
func migrateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			db := strg.DB.(*sql.DB)
			if err := migrateApp(db); err != nil {
				logger.Fatal(ctx, "could not migrate database", zap.Error(err))
			}
			if err := migrateRiver(ctx, db); err != nil {
				logger.Fatal(ctx, "could not migrate river queue", zap.Error(err))
			}
			logger.Info(ctx, "database is up to date")
		},
	}

	return cmd
}
