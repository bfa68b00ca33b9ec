package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/rrs/pkg/domain/model"
	"github.com/m-mizutani/rrs/pkg/repository"
	"github.com/m-mizutani/rrs/pkg/utils/logging"
)

// GetReleaseReport returns the stored report if it is younger than input.MaxAge,
// otherwise builds a new one and stores it.
func (x *UseCase) GetReleaseReport(ctx context.Context, input *model.GetReleaseReportInput) (*model.ReleaseReport, error) {
	if input == nil {
		input = &model.GetReleaseReportInput{}
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := x.buildSem.Acquire(ctx, 1); err != nil {
		return nil, goerr.Wrap(err, "canceled while waiting for another report build")
	}
	defer x.buildSem.Release(1)

	logger := logging.From(ctx)
	store := x.clients.ReportRepository()

	if store != nil && input.MaxAge > 0 {
		report, err := store.GetReport(ctx)
		switch {
		case err == nil:
			age := logging.CtxTime(ctx).Sub(report.GeneratedAt)
			if age < input.MaxAge {
				logger.Debug("Serving stored report", slog.Duration("age", age))
				return report, nil
			}
			logger.Debug("Stored report is stale", slog.Duration("age", age))

		case errors.Is(err, repository.ErrNotFound):
			logger.Debug("No stored report")

		default:
			return nil, goerr.Wrap(err, "failed to get stored report")
		}
	}

	report, err := x.BuildReleaseReport(ctx, &input.BuildReleaseReportInput)
	if err != nil {
		return nil, err
	}

	if store != nil {
		if err := store.PutReport(ctx, report); err != nil {
			return nil, goerr.Wrap(err, "failed to store report")
		}
	}

	return report, nil
}
