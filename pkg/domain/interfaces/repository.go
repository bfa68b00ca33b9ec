package interfaces

import (
	"context"

	"github.com/m-mizutani/rrs/pkg/domain/model"
)

//go:generate moq -out ../mock/report_repository_mock.go -pkg mock . ReportRepository

// ReportRepository keeps the last built report inside the running process.
type ReportRepository interface {
	PutReport(ctx context.Context, report *model.ReleaseReport) error
	GetReport(ctx context.Context) (*model.ReleaseReport, error)
}
