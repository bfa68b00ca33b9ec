package github

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/rrs/pkg/domain/interfaces"
	"github.com/m-mizutani/rrs/pkg/domain/model"
	"github.com/m-mizutani/rrs/pkg/domain/types"
	"github.com/m-mizutani/rrs/pkg/utils/logging"
)

type Client struct {
	client *github.Client
}

var _ interfaces.GitHub = (*Client)(nil)

type config struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

type Option func(*config)

// WithBaseURL replaces https://api.github.com/, e.g. for GitHub Enterprise Server.
func WithBaseURL(baseURL string) Option {
	return func(cfg *config) {
		cfg.baseURL = baseURL
	}
}

func WithUserAgent(userAgent string) Option {
	return func(cfg *config) {
		cfg.userAgent = userAgent
	}
}

// WithHTTPClient sets the client whose transport and timeout are used to send requests.
func WithHTTPClient(client *http.Client) Option {
	return func(cfg *config) {
		cfg.httpClient = client
	}
}

func New(token types.GitHubToken, options ...Option) (*Client, error) {
	token = types.GitHubToken(strings.TrimSpace(string(token)))
	if token == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "token is empty")
	}

	cfg := &config{
		baseURL:    types.DefaultGitHubAPIURL,
		userAgent:  types.DefaultUserAgent,
		httpClient: http.DefaultClient,
	}
	for _, opt := range options {
		opt(cfg)
	}

	if cfg.userAgent == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "user agent is empty")
	}

	baseURL, err := url.Parse(cfg.baseURL)
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "invalid base URL", goerr.V("url", cfg.baseURL), goerr.V("error", err.Error()))
	}
	if baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "base URL must be absolute", goerr.V("url", cfg.baseURL))
	}
	if !strings.HasSuffix(baseURL.Path, "/") {
		baseURL.Path += "/"
	}

	base := http.DefaultTransport
	if cfg.httpClient != nil && cfg.httpClient.Transport != nil {
		base = cfg.httpClient.Transport
	}

	httpClient := &http.Client{
		Transport: newHeaderTransport(base, token, cfg.userAgent),
	}
	if cfg.httpClient != nil {
		httpClient.Timeout = cfg.httpClient.Timeout
	}

	client := github.NewClient(httpClient)
	client.BaseURL = baseURL
	client.UserAgent = cfg.userAgent

	return &Client{client: client}, nil
}

func (x *Client) ListStarred(ctx context.Context) ([]*model.StarredRepository, error) {
	// https://docs.github.com/en/rest/activity/starring?apiVersion=2022-11-28#list-repositories-starred-by-the-authenticated-user
	endpoint := fmt.Sprintf("user/starred?per_page=%d", types.StarredPerPage)

	req, err := x.client.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create request", goerr.V("endpoint", endpoint))
	}

	var repos []*model.StarredRepository
	resp, err := x.client.Do(ctx, req, &repos)
	if err != nil {
		return nil, wrapResponseError(resp, err, "failed to list starred repositories", endpoint)
	}

	// go-github accepts an empty body, and `null` decodes into a nil slice; neither is a list
	if repos == nil {
		return nil, goerr.Wrap(types.ErrDecode, "starred repository list is missing",
			goerr.V("endpoint", endpoint),
			goerr.V("status", resp.StatusCode),
		)
	}
	for i, repo := range repos {
		if err := repo.Validate(); err != nil {
			return nil, goerr.Wrap(err, "invalid starred repository", goerr.V("index", i))
		}
	}

	logging.From(ctx).Debug("Listed starred repositories",
		slog.Int("count", len(repos)),
	)

	return repos, nil
}

func (x *Client) GetLatestRelease(ctx context.Context, fullName types.RepoFullName) (*model.ReleaseInfo, error) {
	owner, repo, ok := fullName.Split()
	if !ok {
		return nil, goerr.Wrap(types.ErrInvalidOption, "repository full name must be owner/repo", goerr.V("full_name", fullName))
	}

	// https://docs.github.com/en/rest/releases/releases?apiVersion=2022-11-28#get-the-latest-release
	endpoint := fmt.Sprintf("repos/%s/%s/releases/latest", url.PathEscape(owner), url.PathEscape(repo))

	req, err := x.client.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create request", goerr.V("endpoint", endpoint))
	}

	var info model.ReleaseInfo
	resp, err := x.client.Do(ctx, req, &info)
	if resp != nil && resp.StatusCode == http.StatusNotFound {
		logging.From(ctx).Debug("No release found", slog.Any("repo", fullName))
		return nil, nil
	}
	if err != nil {
		return nil, wrapResponseError(resp, err, "failed to get latest release", endpoint)
	}

	if err := info.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid latest release", goerr.V("repo", fullName))
	}

	return &info, nil
}

// wrapResponseError classifies an error returned by go-github into ErrTransport,
// ErrUnexpectedStatus or ErrDecode. The original error is kept as the "cause" value.
func wrapResponseError(resp *github.Response, err error, msg, endpoint string) error {
	if resp == nil {
		return goerr.Wrap(types.ErrTransport, msg,
			goerr.V("endpoint", endpoint),
			goerr.V("cause", err),
		)
	}

	var (
		errResp      *github.ErrorResponse
		rateLimitErr *github.RateLimitError
		abuseErr     *github.AbuseRateLimitError
		acceptedErr  *github.AcceptedError
	)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 ||
		errors.As(err, &errResp) || errors.As(err, &rateLimitErr) ||
		errors.As(err, &abuseErr) || errors.As(err, &acceptedErr) {
		return goerr.Wrap(types.ErrUnexpectedStatus, msg,
			goerr.V("endpoint", endpoint),
			goerr.V("status", resp.StatusCode),
			goerr.V("cause", err),
		)
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return goerr.Wrap(types.ErrTransport, msg,
			goerr.V("endpoint", endpoint),
			goerr.V("status", resp.StatusCode),
			goerr.V("cause", err),
		)
	}

	// go-github returns the decoder error as is after a successful status
	return goerr.Wrap(types.ErrDecode, msg,
		goerr.V("endpoint", endpoint),
		goerr.V("status", resp.StatusCode),
		goerr.V("cause", err),
	)
}
