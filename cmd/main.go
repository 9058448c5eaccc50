// Package main provides the CLI entrypoint for the scan scheduling service.
// It wires subcommands (serve, migrate, plan), loads configuration, and initializes logging.
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"sonoplan/internal/config"
	"sonoplan/pkg/logger"
	"sonoplan/pkg/storage/postgres"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func postgresOptions(cfg *config.Config) postgres.Options {
	db := cfg.Database

	return postgres.Options{
		Username:           db.Username,
		Password:           db.Password,
		Host:               db.Host,
		Port:               db.Port,
		Database:           db.DatabaseName,
		SslMode:            db.SslMode,
		MaxOpenConnections: db.MaxOpenConnections,
		MaxIdleConnections: db.MaxIdleConnections,
		ConnMaxLifetime:    db.ConnMaxLifetime,
		ConnMaxIdleTime:    db.ConnMaxIdleTime,
	}
}

// getPostgres connects to the database or exits. The returned func closes the pool.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	pgsql, err := postgres.New(ctx, postgresOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not connect to postgres", zap.Error(err),
			zap.String("host", cfg.Database.Host), zap.String("database", cfg.Database.DatabaseName))
	}

	return pgsql, func() {
		logger.Info(ctx, "closing postgres pool...")
		if err := pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres pool", zap.Error(err))
		}
	}
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "sonoplan",
		Short: "Pregnancy ultrasound scan scheduling",
	}

	// The config is needed to build the subcommands, before cobra parses
	// anything, so -c is read up front with the flag package. It stops at the
	// subcommand name: sonoplan -c config.yml serve. The cobra flag only keeps
	// cobra from rejecting -c.
	rootCmd.PersistentFlags().StringP("config", "c", "", "Config File Path (environment only when empty)")

	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	configPath := flags.String("c", "", "The config file path")
	_ = flags.Parse(os.Args[1:])

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("could not load config %q: %v", *configPath, err)
	}

	if err := logger.Setup(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatal("could not setup logger: ", err)
	}

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		migrateCommand(cfg),
		serveCommand(cfg),
		planCommand(cfg),
	)

	err = rootCmd.Execute()
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
