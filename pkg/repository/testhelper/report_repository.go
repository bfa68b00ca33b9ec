package testhelper

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/rrs/pkg/domain/interfaces"
	"github.com/m-mizutani/rrs/pkg/domain/model"
	"github.com/m-mizutani/rrs/pkg/domain/types"
	"github.com/m-mizutani/rrs/pkg/repository"
)

// TestAll runs all test cases for ReportRepository. newRepo must return an empty repository.
func TestAll(t *testing.T, newRepo func() interfaces.ReportRepository) {
	t.Run("EmptyRepository", func(t *testing.T) {
		TestEmptyRepository(t, newRepo())
	})
	t.Run("PutAndGet", func(t *testing.T) {
		TestPutAndGet(t, newRepo())
	})
	t.Run("Overwrite", func(t *testing.T) {
		TestOverwrite(t, newRepo())
	})
	t.Run("Isolation", func(t *testing.T) {
		TestIsolation(t, newRepo())
	})
}

func newReport(generatedAt time.Time, repos ...string) *model.ReleaseReport {
	report := &model.ReleaseReport{
		GeneratedAt:  generatedAt,
		StarredCount: len(repos) + 1,
	}
	for i, repo := range repos {
		report.Releases = append(report.Releases, &model.LatestRelease{
			Repository:  types.RepoFullName("owner/" + repo),
			Version:     "v1.0.0",
			PublishedAt: generatedAt.Add(-time.Duration(i) * time.Hour),
			HTMLURL:     "https://github.com/owner/" + repo + "/releases/tag/v1.0.0",
		})
	}
	return report
}

// TestEmptyRepository checks that nothing is returned before the first PutReport
func TestEmptyRepository(t *testing.T, repo interfaces.ReportRepository) {
	_, err := repo.GetReport(context.Background())
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))
}

// TestPutAndGet checks that a stored report is returned unchanged
func TestPutAndGet(t *testing.T, repo interfaces.ReportRepository) {
	ctx := context.Background()
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	report := newReport(now, "a", "b")

	gt.NoError(t, repo.PutReport(ctx, report))

	got, err := repo.GetReport(ctx)
	gt.NoError(t, err)
	gt.V(t, got.GeneratedAt).Equal(now)
	gt.V(t, got.StarredCount).Equal(3)
	gt.V(t, len(got.Releases)).Equal(2)
	gt.V(t, got.Releases[0].Repository).Equal(report.Releases[0].Repository)
	gt.V(t, got.Releases[1].HTMLURL).Equal(report.Releases[1].HTMLURL)

	gt.Error(t, repo.PutReport(ctx, nil))
}

// TestOverwrite checks that only the latest report is kept
func TestOverwrite(t *testing.T, repo interfaces.ReportRepository) {
	ctx := context.Background()
	first := newReport(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "a")
	second := newReport(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), "b", "c", "d")

	gt.NoError(t, repo.PutReport(ctx, first))
	gt.NoError(t, repo.PutReport(ctx, second))

	got, err := repo.GetReport(ctx)
	gt.NoError(t, err)
	gt.V(t, got.GeneratedAt).Equal(second.GeneratedAt)
	gt.V(t, len(got.Releases)).Equal(3)
}

// TestIsolation checks that callers cannot modify the stored report through returned values
func TestIsolation(t *testing.T, repo interfaces.ReportRepository) {
	ctx := context.Background()
	report := newReport(time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), "a", "b")
	gt.NoError(t, repo.PutReport(ctx, report))

	report.Releases[0].Version = "modified-after-put"
	report.Releases = report.Releases[:1]

	got, err := repo.GetReport(ctx)
	gt.NoError(t, err)
	gt.V(t, len(got.Releases)).Equal(2)
	gt.V(t, got.Releases[0].Version).Equal("v1.0.0")

	got.Releases[1].Version = "modified-after-get"
	again, err := repo.GetReport(ctx)
	gt.NoError(t, err)
	gt.V(t, again.Releases[1].Version).Equal("v1.0.0")
}
