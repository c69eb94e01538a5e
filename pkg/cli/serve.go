package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/maham-hq/maham/pkg/cli/config"
	httpctrl "github.com/maham-hq/maham/pkg/controller/http"
	"github.com/maham-hq/maham/pkg/service/i18n"
	"github.com/maham-hq/maham/pkg/service/worker"
	"github.com/maham-hq/maham/pkg/usecase"
	"github.com/maham-hq/maham/pkg/utils/logging"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

func cmdServe() *cli.Command {
	var (
		addr          string
		statsInterval time.Duration

		repoCfg    config.Repository
		storageCfg config.Storage
		authCfg    config.Auth
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Listen address",
			Value:       "127.0.0.1:8080",
			Sources:     cli.EnvVars("MAHAM_ADDR"),
			Destination: &addr,
		},
		&cli.DurationFlag{
			Name:        "stats-refresh-interval",
			Usage:       "Interval for recomputing employee task counters",
			Value:       10 * time.Minute,
			Sources:     cli.EnvVars("MAHAM_STATS_REFRESH_INTERVAL"),
			Destination: &statsInterval,
		},
	}
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, storageCfg.Flags()...)
	flags = append(flags, authCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			// Initialize repository based on backend type
			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			// Initialize file storage
			storageClient, err := storageCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize storage")
			}
			defer func() {
				if err := storageClient.Close(); err != nil {
					logging.Default().Error("failed to close storage", "error", err.Error())
				}
			}()

			ucOpts := []usecase.Option{
				usecase.WithStorage(storageClient),
			}
			authOpts, err := authCfg.Options()
			if err != nil {
				return goerr.Wrap(err, "failed to configure authentication")
			}
			ucOpts = append(ucOpts, authOpts...)

			uc := usecase.New(repo, ucOpts...)

			i18nSvc, err := i18n.New()
			if err != nil {
				return goerr.Wrap(err, "failed to load locale catalogs")
			}

			statsWorker := worker.NewStatsRefreshWorker(repo, statsInterval)
			if err := statsWorker.Start(ctx); err != nil {
				return goerr.Wrap(err, "failed to start stats refresh worker")
			}
			defer statsWorker.Stop()

			srv := &http.Server{
				Addr:              addr,
				Handler:           httpctrl.New(uc, httpctrl.WithI18n(i18nSvc)),
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			eg, ctx := errgroup.WithContext(ctx)
			eg.Go(func() error {
				logging.Default().Info("Starting HTTP server", "addr", addr)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return goerr.Wrap(err, "failed to run HTTP server")
				}
				return nil
			})
			eg.Go(func() error {
				<-ctx.Done()
				logging.Default().Info("Shutting down HTTP server")

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
				defer cancel()
				if err := srv.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shut down HTTP server")
				}
				return nil
			})

			return eg.Wait()
		},
	}
}
