package main

import (
	"context"
	"database/sql"
	"fmt"
	root "sonoplan"
	"sonoplan/internal/config"
	"sonoplan/pkg/logger"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateSchema applies the embedded goose migrations: tables and the default scan types.
func migrateSchema(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(root.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("could not set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("could not apply schema migrations: %w", err)
	}

	return nil
}

// migrateQueue brings the River tables to the latest version and reports the
// versions it moved between.
func migrateQueue(ctx context.Context, db *sql.DB) (from, to int, err error) {
	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return 0, 0, fmt.Errorf("could not create river migrator: %w", err)
	}

	all := migrator.AllVersions()
	to = all[len(all)-1].Version

	existing, err := migrator.ExistingVersions(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("could not read river migration versions: %w", err)
	}
	if len(existing) > 0 {
		from = existing[len(existing)-1].Version
	}
	if from >= to {
		return from, from, nil
	}

	if _, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, &rivermigrate.MigrateOpts{
		TargetVersion: to,
	}); err != nil {
		return from, 0, fmt.Errorf("could not apply river migrations: %w", err)
	}

	return from, to, nil
}

func migrateCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Migrates the schema, default scan types and River queue tables",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()

			pgsql, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			if err := migrateSchema(ctx, pgsql.SQLDB()); err != nil {
				logger.Fatal(ctx, "could not migrate schema", zap.Error(err))
			}
			logger.Info(ctx, "schema migrated")

			from, to, err := migrateQueue(ctx, pgsql.SQLDB())
			if err != nil {
				logger.Fatal(ctx, "could not migrate river queue", zap.Error(err))
			}
			logger.Info(ctx, "river queue migrated", zap.Int("from", from), zap.Int("to", to))
		},
	}
}
