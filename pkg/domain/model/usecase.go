package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/rrs/pkg/domain/types"
)

type BuildReleaseReportInput struct {
	// SkipErrors makes a failed release lookup skip the repository instead of aborting the run.
	SkipErrors bool
}

type GetReleaseReportInput struct {
	BuildReleaseReportInput

	// MaxAge is how long a stored report is served before it is rebuilt. Zero always rebuilds.
	MaxAge time.Duration
}

func (x *GetReleaseReportInput) Validate() error {
	if x.MaxAge < 0 {
		return goerr.Wrap(types.ErrInvalidOption, "max age must not be negative", goerr.V("max_age", x.MaxAge))
	}
	return nil
}
