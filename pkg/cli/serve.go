package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/rrs/pkg/cli/config"
	"github.com/m-mizutani/rrs/pkg/controller/server"
	"github.com/m-mizutani/rrs/pkg/domain/types"
	"github.com/m-mizutani/rrs/pkg/infra"
	"github.com/m-mizutani/rrs/pkg/repository/memory"
	"github.com/m-mizutani/rrs/pkg/usecase"
	"github.com/m-mizutani/rrs/pkg/utils/logging"

	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	var (
		addr       string
		reportTTL  time.Duration
		skipErrors bool

		github config.GitHub
		sentry config.Sentry
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8000",
			Sources:     cli.EnvVars("RRS_ADDR"),
			Destination: &addr,
		},
		&cli.DurationFlag{
			Name:        "report-ttl",
			Usage:       "How long a built report is served before it is rebuilt (0 rebuilds on every request)",
			Value:       server.DefaultReportTTL,
			Sources:     cli.EnvVars("RRS_REPORT_TTL"),
			Destination: &reportTTL,
		},
		&cli.BoolFlag{
			Name:        "skip-errors",
			Usage:       "Skip repositories whose latest release cannot be fetched instead of failing the request",
			Sources:     cli.EnvVars("RRS_SKIP_ERRORS"),
			Destination: &skipErrors,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Serve the release report over HTTP",
		Flags: slice.Flatten(
			serveFlags,
			github.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Duration("ReportTTL", reportTTL),
				slog.Bool("SkipErrors", skipErrors),
				slog.Any("GitHub", github),
				slog.Any("Sentry", sentry),
			)

			if reportTTL < 0 {
				return goerr.Wrap(types.ErrInvalidOption, "report TTL must not be negative", goerr.V("report_ttl", reportTTL))
			}

			if err := sentry.Configure(ctx); err != nil {
				return err
			}

			ghClient, err := github.NewClient(ctx)
			if err != nil {
				return err
			}

			clients := infra.New(
				infra.WithGitHub(ghClient),
				infra.WithReportRepository(memory.New()),
			)

			uc := usecase.New(clients)
			s := server.New(uc,
				server.WithReportTTL(reportTTL),
				server.WithSkipErrors(skipErrors),
			)

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				// building a report walks every starred repository one by one
				WriteTimeout: 5 * time.Minute,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
			}

			return nil
		},
	}
}
