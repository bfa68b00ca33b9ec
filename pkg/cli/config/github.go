package config

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/m-mizutani/rrs/pkg/domain/types"
	"github.com/m-mizutani/rrs/pkg/infra/credential"
	"github.com/m-mizutani/rrs/pkg/infra/github"
	"github.com/m-mizutani/rrs/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

type GitHub struct {
	token     types.GitHubToken `masq:"secret"`
	tokenFile string
	apiURL    string
	userAgent string
	timeout   time.Duration
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub personal access token (takes precedence over --github-token-file)",
			Category:    "GitHub",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("RRS_GITHUB_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "github-token-file",
			Usage:       "File containing GitHub personal access token",
			Category:    "GitHub",
			Value:       credential.DefaultTokenFile,
			Destination: &x.tokenFile,
			Sources:     cli.EnvVars("RRS_GITHUB_TOKEN_FILE"),
		},
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub REST API base URL",
			Category:    "GitHub",
			Value:       types.DefaultGitHubAPIURL,
			Destination: &x.apiURL,
			Sources:     cli.EnvVars("RRS_GITHUB_API_URL"),
		},
		&cli.StringFlag{
			Name:        "github-user-agent",
			Usage:       "User-Agent header sent to GitHub",
			Category:    "GitHub",
			Value:       types.DefaultUserAgent,
			Destination: &x.userAgent,
			Sources:     cli.EnvVars("RRS_GITHUB_USER_AGENT"),
		},
		&cli.DurationFlag{
			Name:        "github-timeout",
			Usage:       "Timeout of each GitHub API request (0 means no timeout)",
			Category:    "GitHub",
			Value:       30 * time.Second,
			Destination: &x.timeout,
			Sources:     cli.EnvVars("RRS_GITHUB_TIMEOUT"),
		},
	}
}

// NewClient resolves the token and builds the GitHub API client.
func (x *GitHub) NewClient(ctx context.Context) (*github.Client, error) {
	token, err := credential.Resolve(x.token, x.tokenFile)
	if err != nil {
		return nil, err
	}

	logging.From(ctx).Debug("GitHub token resolved", slog.Any("token", token))

	return github.New(token,
		github.WithBaseURL(x.apiURL),
		github.WithUserAgent(x.userAgent),
		github.WithHTTPClient(&http.Client{Timeout: x.timeout}),
	)
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("Token.len", len(x.token)),
		slog.String("TokenFile", x.tokenFile),
		slog.String("APIURL", x.apiURL),
		slog.String("UserAgent", x.userAgent),
		slog.Duration("Timeout", x.timeout),
	)
}
