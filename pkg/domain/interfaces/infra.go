package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHub

import (
	"context"

	"github.com/m-mizutani/rrs/pkg/domain/model"
	"github.com/m-mizutani/rrs/pkg/domain/types"
)

type GitHub interface {
	// ListStarred returns a single page of repositories starred by the authenticated user.
	ListStarred(ctx context.Context) ([]*model.StarredRepository, error)

	// GetLatestRelease returns nil without error if the repository has no release.
	GetLatestRelease(ctx context.Context, fullName types.RepoFullName) (*model.ReleaseInfo, error)
}
