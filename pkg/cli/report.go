package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/rrs/pkg/cli/config"
	"github.com/m-mizutani/rrs/pkg/controller/printer"
	"github.com/m-mizutani/rrs/pkg/domain/model"
	"github.com/m-mizutani/rrs/pkg/infra"
	"github.com/m-mizutani/rrs/pkg/usecase"
	"github.com/m-mizutani/rrs/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func reportCommand(stdout io.Writer) *cli.Command {
	var (
		format     string
		skipErrors bool

		github config.GitHub
		sentry config.Sentry
	)

	reportFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "format",
			Aliases:     []string{"f"},
			Usage:       "Output format [text|json]",
			Value:       string(printer.FormatText),
			Sources:     cli.EnvVars("RRS_FORMAT"),
			Destination: &format,
		},
		&cli.BoolFlag{
			Name:        "skip-errors",
			Usage:       "Skip repositories whose latest release cannot be fetched instead of aborting",
			Sources:     cli.EnvVars("RRS_SKIP_ERRORS"),
			Destination: &skipErrors,
		},
	}

	return &cli.Command{
		Name:    "report",
		Aliases: []string{"r"},
		Usage:   "Print the latest release of each starred repository, newest first",
		Flags: slice.Flatten(
			reportFlags,
			github.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Debug("starting report",
				slog.String("Format", format),
				slog.Bool("SkipErrors", skipErrors),
				slog.Any("GitHub", github),
				slog.Any("Sentry", sentry),
			)

			outFormat, err := printer.ParseFormat(format)
			if err != nil {
				return err
			}

			if err := sentry.Configure(ctx); err != nil {
				return err
			}

			ghClient, err := github.NewClient(ctx)
			if err != nil {
				return err
			}

			p, err := printer.New(outFormat, stdout,
				printer.WithColor(stdout == os.Stdout && !color.NoColor),
			)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			uc := usecase.New(infra.New(infra.WithGitHub(ghClient)))
			report, err := uc.BuildReleaseReport(ctx, &model.BuildReleaseReportInput{
				SkipErrors: skipErrors,
			})
			if err != nil {
				return err
			}

			return p.Print(report)
		},
	}
}
