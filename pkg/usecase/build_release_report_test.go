package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/rrs/pkg/domain/mock"
	"github.com/m-mizutani/rrs/pkg/domain/model"
	"github.com/m-mizutani/rrs/pkg/domain/types"
	"github.com/m-mizutani/rrs/pkg/infra"
	"github.com/m-mizutani/rrs/pkg/usecase"
	"github.com/m-mizutani/rrs/pkg/utils/logging"
)

func starred(names ...string) []*model.StarredRepository {
	repos := make([]*model.StarredRepository, len(names))
	for i, name := range names {
		owner, repo, _ := types.RepoFullName(name).Split()
		repos[i] = &model.StarredRepository{
			ID:       types.GitHubRepoID(i + 1),
			NodeID:   fmt.Sprintf("R_%d", i+1),
			Name:     repo,
			FullName: types.RepoFullName(owner + "/" + repo),
		}
	}
	return repos
}

func releaseAt(repo types.RepoFullName, publishedAt time.Time) *model.ReleaseInfo {
	return &model.ReleaseInfo{
		HTMLURL:     "https://github.com/" + string(repo) + "/releases/tag/v1",
		Name:        "v1",
		TagName:     "v1",
		PublishedAt: &publishedAt,
	}
}

// releaseTable answers GetLatestRelease from a map; repositories not in the map have no release.
func releaseTable(table map[types.RepoFullName]time.Time) func(ctx context.Context, fullName types.RepoFullName) (*model.ReleaseInfo, error) {
	return func(ctx context.Context, fullName types.RepoFullName) (*model.ReleaseInfo, error) {
		publishedAt, ok := table[fullName]
		if !ok {
			return nil, nil
		}
		return releaseAt(fullName, publishedAt), nil
	}
}

func TestBuildReleaseReport(t *testing.T) {
	date := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	t.Run("skip 404 and sort newest first", func(t *testing.T) {
		mockGH := &mock.GitHubMock{
			ListStarredFunc: func(ctx context.Context) ([]*model.StarredRepository, error) {
				return starred("owner/a", "owner/b", "owner/c"), nil
			},
			GetLatestReleaseFunc: releaseTable(map[types.RepoFullName]time.Time{
				"owner/a": date(2023, 1, 1),
				"owner/c": date(2024, 6, 15),
			}),
		}
		uc := usecase.New(infra.New(infra.WithGitHub(mockGH)))

		report, err := uc.BuildReleaseReport(context.Background(), &model.BuildReleaseReportInput{})
		gt.NoError(t, err)
		gt.V(t, report.StarredCount).Equal(3)
		gt.V(t, report.SkippedCount).Equal(0)
		gt.V(t, len(report.Releases)).Equal(2)
		gt.V(t, report.Releases[0].Repository).Equal(types.RepoFullName("owner/c"))
		gt.V(t, report.Releases[0].PublishedAt).Equal(date(2024, 6, 15))
		gt.V(t, report.Releases[1].Repository).Equal(types.RepoFullName("owner/a"))
		gt.V(t, report.Releases[1].PublishedAt).Equal(date(2023, 1, 1))

		// every repository is looked up once, in listing order
		calls := mockGH.GetLatestReleaseCalls()
		gt.V(t, len(calls)).Equal(3)
		gt.V(t, calls[0].FullName).Equal(types.RepoFullName("owner/a"))
		gt.V(t, calls[1].FullName).Equal(types.RepoFullName("owner/b"))
		gt.V(t, calls[2].FullName).Equal(types.RepoFullName("owner/c"))
	})

	t.Run("empty starred list makes no release lookup", func(t *testing.T) {
		mockGH := &mock.GitHubMock{
			ListStarredFunc: func(ctx context.Context) ([]*model.StarredRepository, error) {
				return nil, nil
			},
		}
		uc := usecase.New(infra.New(infra.WithGitHub(mockGH)))

		report, err := uc.BuildReleaseReport(context.Background(), nil)
		gt.NoError(t, err)
		gt.V(t, len(report.Releases)).Equal(0)
		gt.V(t, report.StarredCount).Equal(0)
		gt.V(t, len(mockGH.GetLatestReleaseCalls())).Equal(0)
	})

	t.Run("every repository without release gives empty report", func(t *testing.T) {
		mockGH := &mock.GitHubMock{
			ListStarredFunc: func(ctx context.Context) ([]*model.StarredRepository, error) {
				return starred("owner/a", "owner/b", "owner/c", "owner/d"), nil
			},
			GetLatestReleaseFunc: releaseTable(nil),
		}
		uc := usecase.New(infra.New(infra.WithGitHub(mockGH)))

		report, err := uc.BuildReleaseReport(context.Background(), nil)
		gt.NoError(t, err)
		gt.V(t, len(report.Releases)).Equal(0)
		gt.V(t, report.StarredCount).Equal(4)
		gt.V(t, len(mockGH.GetLatestReleaseCalls())).Equal(4)
	})

	t.Run("M of N repositories with releases give M entries in descending order", func(t *testing.T) {
		base := date(2020, 1, 1)
		table := map[types.RepoFullName]time.Time{}
		var names []string
		for i := 0; i < 20; i++ {
			name := fmt.Sprintf("owner/repo-%02d", i)
			names = append(names, name)
			// every third repository has no release; the others have distinct timestamps
			if i%3 != 0 {
				table[types.RepoFullName(name)] = base.Add(time.Duration((i*7)%20) * 24 * time.Hour)
			}
		}

		mockGH := &mock.GitHubMock{
			ListStarredFunc: func(ctx context.Context) ([]*model.StarredRepository, error) {
				return starred(names...), nil
			},
			GetLatestReleaseFunc: releaseTable(table),
		}
		uc := usecase.New(infra.New(infra.WithGitHub(mockGH)))

		report, err := uc.BuildReleaseReport(context.Background(), nil)
		gt.NoError(t, err)
		gt.V(t, len(report.Releases)).Equal(len(table))

		for i, release := range report.Releases {
			expected, ok := table[release.Repository]
			gt.True(t, ok)
			gt.V(t, release.PublishedAt).Equal(expected)
			if i > 0 {
				gt.True(t, report.Releases[i-1].PublishedAt.After(release.PublishedAt))
			}
		}
	})

	t.Run("transport failure on second lookup aborts the run", func(t *testing.T) {
		mockGH := &mock.GitHubMock{
			ListStarredFunc: func(ctx context.Context) ([]*model.StarredRepository, error) {
				return starred("owner/a", "owner/b", "owner/c"), nil
			},
			GetLatestReleaseFunc: func(ctx context.Context, fullName types.RepoFullName) (*model.ReleaseInfo, error) {
				if fullName == "owner/b" {
					return nil, goerr.Wrap(types.ErrTransport, "connection reset")
				}
				return releaseAt(fullName, date(2023, 1, 1)), nil
			},
		}
		uc := usecase.New(infra.New(infra.WithGitHub(mockGH)))

		report, err := uc.BuildReleaseReport(context.Background(), nil)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrTransport))
		gt.V(t, report).Equal(nil)
		// owner/c is never looked up
		gt.V(t, len(mockGH.GetLatestReleaseCalls())).Equal(2)
	})

	t.Run("listing failure aborts before any lookup", func(t *testing.T) {
		mockGH := &mock.GitHubMock{
			ListStarredFunc: func(ctx context.Context) ([]*model.StarredRepository, error) {
				return nil, goerr.Wrap(types.ErrDecode, "unexpected field type")
			},
		}
		uc := usecase.New(infra.New(infra.WithGitHub(mockGH)))

		_, err := uc.BuildReleaseReport(context.Background(), &model.BuildReleaseReportInput{SkipErrors: true})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrDecode))
		gt.V(t, len(mockGH.GetLatestReleaseCalls())).Equal(0)
	})

	t.Run("skip errors continues after failed lookup", func(t *testing.T) {
		mockGH := &mock.GitHubMock{
			ListStarredFunc: func(ctx context.Context) ([]*model.StarredRepository, error) {
				return starred("owner/a", "owner/b", "owner/c"), nil
			},
			GetLatestReleaseFunc: func(ctx context.Context, fullName types.RepoFullName) (*model.ReleaseInfo, error) {
				switch fullName {
				case "owner/a":
					return releaseAt(fullName, date(2023, 1, 1)), nil
				case "owner/b":
					return nil, goerr.Wrap(types.ErrDecode, "malformed body")
				default:
					return releaseAt(fullName, date(2024, 6, 15)), nil
				}
			},
		}
		uc := usecase.New(infra.New(infra.WithGitHub(mockGH)))

		report, err := uc.BuildReleaseReport(context.Background(), &model.BuildReleaseReportInput{SkipErrors: true})
		gt.NoError(t, err)
		gt.V(t, report.SkippedCount).Equal(1)
		gt.V(t, len(report.Releases)).Equal(2)
		gt.V(t, report.Releases[0].Repository).Equal(types.RepoFullName("owner/c"))
		gt.V(t, report.Releases[1].Repository).Equal(types.RepoFullName("owner/a"))
	})

	t.Run("generated time comes from context", func(t *testing.T) {
		now := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)
		ctx := logging.CtxWithTime(context.Background(), func() time.Time { return now })

		mockGH := &mock.GitHubMock{
			ListStarredFunc: func(ctx context.Context) ([]*model.StarredRepository, error) {
				return starred("owner/a"), nil
			},
			GetLatestReleaseFunc: releaseTable(nil),
		}
		uc := usecase.New(infra.New(infra.WithGitHub(mockGH)))

		report, err := uc.BuildReleaseReport(ctx, nil)
		gt.NoError(t, err)
		gt.V(t, report.GeneratedAt).Equal(now)
	})

	t.Run("malformed listing entry aborts even with skip errors", func(t *testing.T) {
		testCases := map[string]*model.StarredRepository{
			"null entry":        nil,
			"missing full_name": {ID: 2, Name: "b"},
		}

		for name, bad := range testCases {
			t.Run(name, func(t *testing.T) {
				mockGH := &mock.GitHubMock{
					ListStarredFunc: func(ctx context.Context) ([]*model.StarredRepository, error) {
						return append(starred("owner/a"), bad), nil
					},
					GetLatestReleaseFunc: releaseTable(map[types.RepoFullName]time.Time{"owner/a": date(2023, 1, 1)}),
				}
				uc := usecase.New(infra.New(infra.WithGitHub(mockGH)))

				report, err := uc.BuildReleaseReport(context.Background(), &model.BuildReleaseReportInput{SkipErrors: true})
				gt.Error(t, err)
				gt.True(t, errors.Is(err, types.ErrDecode))
				gt.V(t, report).Equal(nil)
				gt.V(t, len(mockGH.GetLatestReleaseCalls())).Equal(0)
			})
		}
	})

	t.Run("GitHub client is required", func(t *testing.T) {
		uc := usecase.New(infra.New())

		_, err := uc.BuildReleaseReport(context.Background(), nil)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})
}

func TestResolveLatestRelease(t *testing.T) {
	publishedAt := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	t.Run("project release with repository name", func(t *testing.T) {
		mockGH := &mock.GitHubMock{
			GetLatestReleaseFunc: func(ctx context.Context, fullName types.RepoFullName) (*model.ReleaseInfo, error) {
				return &model.ReleaseInfo{
					HTMLURL:     "https://github.com/owner/repo/releases/tag/v2.0.0",
					TagName:     "v2.0.0",
					PublishedAt: &publishedAt,
				}, nil
			},
		}
		uc := usecase.New(infra.New(infra.WithGitHub(mockGH)))

		release, err := uc.ResolveLatestRelease(context.Background(), "owner/repo")
		gt.NoError(t, err)
		gt.V(t, release.Repository).Equal(types.RepoFullName("owner/repo"))
		gt.V(t, release.Version).Equal("v2.0.0")
		gt.V(t, release.PublishedAt).Equal(publishedAt)
		gt.V(t, release.HTMLURL).Equal("https://github.com/owner/repo/releases/tag/v2.0.0")
	})

	t.Run("no release is not an error", func(t *testing.T) {
		mockGH := &mock.GitHubMock{GetLatestReleaseFunc: releaseTable(nil)}
		uc := usecase.New(infra.New(infra.WithGitHub(mockGH)))

		release, err := uc.ResolveLatestRelease(context.Background(), "owner/repo")
		gt.NoError(t, err)
		gt.V(t, release).Equal(nil)
	})

	t.Run("release without published time is decode error", func(t *testing.T) {
		mockGH := &mock.GitHubMock{
			GetLatestReleaseFunc: func(ctx context.Context, fullName types.RepoFullName) (*model.ReleaseInfo, error) {
				return &model.ReleaseInfo{Name: "v1"}, nil
			},
		}
		uc := usecase.New(infra.New(infra.WithGitHub(mockGH)))

		_, err := uc.ResolveLatestRelease(context.Background(), "owner/repo")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrDecode))
	})

	t.Run("malformed full name is rejected before lookup", func(t *testing.T) {
		mockGH := &mock.GitHubMock{GetLatestReleaseFunc: releaseTable(nil)}
		uc := usecase.New(infra.New(infra.WithGitHub(mockGH)))

		_, err := uc.ResolveLatestRelease(context.Background(), "no-slash")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
		gt.V(t, len(mockGH.GetLatestReleaseCalls())).Equal(0)
	})
}
