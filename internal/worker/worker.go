package worker

import (
	"context"
	"fmt"
	"log/slog"
	"sonoplan/internal/config"
	"sonoplan/internal/schedule"
	"sonoplan/pkg/logger"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

// Options configure the River client that runs reminder jobs.
type Options struct {
	// MaxWorkers is the number of reminder jobs processed concurrently.
	MaxWorkers int
	// Snooze is how long a reminder is deferred when delivery is unavailable.
	Snooze time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxWorkers: cfg.Worker.MaxWorkers,
		Snooze:     cfg.Worker.Snooze,
	}
}

// Start registers the reminder worker and starts a River client on dbPool.
// The caller stops the client on shutdown.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	scheduler schedule.Scheduler,
	options Options) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewReminderWorker(scheduler, options.Snooze))

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: options.MaxWorkers},
		},
		Workers: workers,
		Logger:  slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
