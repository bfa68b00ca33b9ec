package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/rrs/pkg/domain/model"
	"github.com/m-mizutani/rrs/pkg/domain/types"
	"github.com/m-mizutani/rrs/pkg/utils/logging"
)

// FetchStarred returns the first page of starred repositories in the order GitHub returns them.
func (x *UseCase) FetchStarred(ctx context.Context) ([]*model.StarredRepository, error) {
	if x.clients.GitHub() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub client is required")
	}

	repos, err := x.clients.GitHub().ListStarred(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch starred repositories")
	}
	for i, repo := range repos {
		if err := repo.Validate(); err != nil {
			return nil, goerr.Wrap(err, "invalid starred repository", goerr.V("index", i))
		}
	}

	if len(repos) >= types.StarredPerPage {
		logging.From(ctx).Warn("Only the first page of starred repositories is reported",
			slog.Int("per_page", types.StarredPerPage),
		)
	}

	return repos, nil
}

// ResolveLatestRelease returns nil without error if the repository has no release.
func (x *UseCase) ResolveLatestRelease(ctx context.Context, fullName types.RepoFullName) (*model.LatestRelease, error) {
	if x.clients.GitHub() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub client is required")
	}
	if _, _, ok := fullName.Split(); !ok {
		return nil, goerr.Wrap(types.ErrInvalidOption, "repository full name must be owner/repo", goerr.V("full_name", fullName))
	}

	info, err := x.clients.GitHub().GetLatestRelease(ctx, fullName)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get latest release", goerr.V("repo", fullName))
	}
	if info == nil {
		return nil, nil
	}

	if err := info.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid latest release", goerr.V("repo", fullName))
	}

	return model.NewLatestRelease(fullName, info), nil
}

// BuildReleaseReport fetches starred repositories, resolves the latest release of each one
// by one and returns them newest first. Repositories without a release are left out.
func (x *UseCase) BuildReleaseReport(ctx context.Context, input *model.BuildReleaseReportInput) (*model.ReleaseReport, error) {
	logger := logging.From(ctx)
	if input == nil {
		input = &model.BuildReleaseReportInput{}
	}

	repos, err := x.FetchStarred(ctx)
	if err != nil {
		return nil, err
	}

	logger.Info("Resolving latest releases",
		slog.Int("starred_repos", len(repos)),
		slog.Bool("skip_errors", input.SkipErrors),
	)

	results := make([]*model.LatestRelease, 0, len(repos))
	var skipped int

	for i, repo := range repos {
		release, err := x.ResolveLatestRelease(ctx, repo.FullName)
		if err != nil {
			if !input.SkipErrors {
				return nil, goerr.Wrap(err, "aborted release report",
					goerr.V("repo", repo.FullName),
					goerr.V("progress", i+1),
					goerr.V("total", len(repos)),
				)
			}

			skipped++
			logger.Warn("Skipping repository due to release lookup failure",
				slog.Any("repo", repo.FullName),
				slog.Any("error", err),
			)
			continue
		}

		if release == nil {
			logger.Debug("Repository has no release", slog.Any("repo", repo.FullName))
			continue
		}

		results = append(results, release)
	}

	report := &model.ReleaseReport{
		GeneratedAt:  logging.CtxTime(ctx),
		StarredCount: len(repos),
		SkippedCount: skipped,
		Releases:     model.SortReleases(results),
	}

	logger.Info("Built release report",
		slog.Int("starred_repos", report.StarredCount),
		slog.Int("releases", len(report.Releases)),
		slog.Int("skipped", report.SkippedCount),
	)

	return report, nil
}
