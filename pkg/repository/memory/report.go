package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/rrs/pkg/domain/model"
	"github.com/m-mizutani/rrs/pkg/repository"
)

type reportRepository struct {
	mu     sync.RWMutex
	report *model.ReleaseReport
}

func (r *reportRepository) PutReport(ctx context.Context, report *model.ReleaseReport) error {
	if report == nil {
		return goerr.New("report is nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.report = copyReport(report)
	return nil
}

func (r *reportRepository) GetReport(ctx context.Context) (*model.ReleaseReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.report == nil {
		return nil, goerr.Wrap(repository.ErrNotFound, "report not found")
	}

	return copyReport(r.report), nil
}

func copyReport(report *model.ReleaseReport) *model.ReleaseReport {
	copied := *report
	copied.Releases = make([]*model.LatestRelease, len(report.Releases))
	for i, release := range report.Releases {
		if release == nil {
			continue
		}
		r := *release
		copied.Releases[i] = &r
	}
	return &copied
}
