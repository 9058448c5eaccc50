package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"sonoplan/internal/api"
	"sonoplan/internal/api/handler/v1handler"
	"sonoplan/internal/config"
	"sonoplan/internal/schedule"
	"sonoplan/internal/worker"
	"sonoplan/pkg/logger"
	"sonoplan/pkg/metrics"
	"sonoplan/pkg/notify"
	"sonoplan/pkg/notify/webhook"
	"sonoplan/pkg/storage"
	"sonoplan/pkg/storage/cache"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// withCache wraps strg with the Redis scan type cache when Redis is configured.
// The returned cleanup closes the Redis client.
func withCache(ctx context.Context, cfg *config.Config, strg storage.Storage) (storage.Storage, func()) {
	if cfg.Redis.Addr == "" {
		logger.Info(ctx, "redis address not configured, scan type cache disabled")

		return strg, func() {}
	}

	client, err := cache.NewRedis(ctx, cache.RedisOptions{
		Addr:         cfg.Redis.Addr,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})
	if err != nil {
		logger.Fatal(ctx, "could not connect to redis", zap.Error(err))
	}

	return cache.New(strg, client, cache.Options{TTL: cfg.Redis.ScanTypesTTL}), func() {
		logger.Info(ctx, "closing redis client...")
		if err := client.Close(); err != nil {
			logger.Warn(ctx, "could not close redis client", zap.Error(err))
		}
	}
}

// newNotifier returns the webhook notifier when a webhook URL is configured
// and the logging notifier otherwise.
func newNotifier(ctx context.Context, cfg *config.Config) notify.Notifier {
	if cfg.Notify.WebhookURL == "" {
		logger.Info(ctx, "notify webhook not configured, reminders will only be logged")

		return notify.Log{}
	}

	return webhook.New(&http.Client{Timeout: cfg.Notify.Timeout}, cfg.Notify.WebhookURL, cfg.Notify.WebhookToken)
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and the reminder worker",
		Run: func(cmd *cobra.Command, args []string) {
			runWorker, _ := cmd.Flags().GetBool("worker")

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			pgsql, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			strg, closeCache := withCache(ctx, cfg, pgsql)
			defer closeCache()

			mp, err := metrics.NewMeterProvider(prometheus.DefaultRegisterer)
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}

			scheduleOptions := schedule.NewOptions(cfg)
			scheduleOptions.MeterProvider = mp
			scheduleOptions.Notifier = newNotifier(ctx, cfg)
			scheduler := schedule.New(strg, scheduleOptions)

			server, err := api.NewServer(api.Deps{
				Deps: v1handler.Deps{Scheduler: scheduler},
			}, api.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not create webserver", zap.Error(err))
			}

			g, gctx := errgroup.WithContext(ctx)

			g.Go(func() error {
				logger.Info(ctx, "starting webserver...", zap.String("addr", server.Addr))
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("could not start webserver: %w", err)
				}

				return nil
			})
			g.Go(func() error {
				<-gctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
				defer cancel()

				logger.Info(ctx, "stopping webserver...")
				if err := server.Shutdown(shutdownCtx); err != nil {
					return fmt.Errorf("could not stop webserver: %w", err)
				}

				return nil
			})

			if runWorker {
				// detached so a signal lets running jobs drain through Stop
				riverClient, err := worker.Start(context.WithoutCancel(ctx), pgsql.Pool, scheduler, worker.NewOptions(cfg))
				if err != nil {
					logger.Fatal(ctx, "could not start reminder worker", zap.Error(err))
				}
				logger.Info(ctx, "reminder worker started")

				g.Go(func() error {
					<-gctx.Done()
					shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
					defer cancel()

					logger.Info(ctx, "stopping reminder worker...")
					if err := riverClient.Stop(shutdownCtx); err != nil {
						return fmt.Errorf("could not stop reminder worker: %w", err)
					}

					return nil
				})
			}

			if err := g.Wait(); err != nil {
				logger.Error(ctx, "serve stopped with error", zap.Error(err))
			}

			if err := mp.Shutdown(context.Background()); err != nil {
				logger.Warn(ctx, "could not shutdown meter provider", zap.Error(err))
			}
		},
	}

	cmd.Flags().Bool("worker", true, "Run the reminder worker in this process")

	return cmd
}
