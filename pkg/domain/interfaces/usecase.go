package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/m-mizutani/rrs/pkg/domain/model"
)

type UseCase interface {
	BuildReleaseReport(ctx context.Context, input *model.BuildReleaseReportInput) (*model.ReleaseReport, error)
	GetReleaseReport(ctx context.Context, input *model.GetReleaseReportInput) (*model.ReleaseReport, error)
}
