package cli

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/m-mizutani/rrs/pkg/utils/errutil"
	"github.com/m-mizutani/rrs/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// ConfigureLogging applies the global log flags. Tests replace it to observe them.
var ConfigureLogging = logging.Configure

type CLI struct {
	stdout io.Writer
}

type Option func(*CLI)

// WithStdout replaces os.Stdout as the destination of reports.
func WithStdout(w io.Writer) Option {
	return func(x *CLI) {
		x.stdout = w
	}
}

func New(options ...Option) *CLI {
	x := &CLI{
		stdout: os.Stdout,
	}
	for _, opt := range options {
		opt(x)
	}
	return x
}

func (x *CLI) Run(argv []string) error {
	var (
		logLevel  string
		logFormat string
		logOutput string
	)

	app := &cli.Command{
		Name:  "rrs",
		Usage: "Recent releases of your starred GitHub repositories",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "Log level [debug|info|warn|error]",
				Aliases:     []string{"l"},
				Sources:     cli.EnvVars("RRS_LOG_LEVEL"),
				Destination: &logLevel,
				Value:       "info",
			},
			&cli.StringFlag{
				Name:        "log-format",
				Usage:       "Log format [text|json]",
				Sources:     cli.EnvVars("RRS_LOG_FORMAT"),
				Destination: &logFormat,
				Value:       "text",
			},
			&cli.StringFlag{
				Name:        "log-output",
				Usage:       "Log output [-|stdout|stderr|<file>]",
				Aliases:     []string{"o"},
				Sources:     cli.EnvVars("RRS_LOG_OUTPUT"),
				Destination: &logOutput,
				Value:       "stderr",
			},
		},
		Commands: []*cli.Command{
			reportCommand(x.stdout),
			serveCommand(),
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := ConfigureLogging(logFormat, logLevel, logOutput); err != nil {
				return ctx, err
			}
			return ctx, nil
		},
	}

	ctx := context.Background()
	if err := app.Run(ctx, argv); err != nil {
		errutil.HandleError(ctx, "fatal error", err)
		errutil.Flush(2 * time.Second)
		return err
	}

	return nil
}
