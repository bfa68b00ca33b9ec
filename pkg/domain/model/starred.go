package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/rrs/pkg/domain/types"
)

// StarredRepository is a repository the authenticated user has starred.
type StarredRepository struct {
	ID       types.GitHubRepoID `json:"id"`
	NodeID   string             `json:"node_id"`
	Name     string             `json:"name"`
	FullName types.RepoFullName `json:"full_name"`
}

// Validate rejects a null entry and a full_name that is not owner/repo.
func (x *StarredRepository) Validate() error {
	if x == nil {
		return goerr.Wrap(types.ErrDecode, "starred repository entry is null")
	}
	if _, _, ok := x.FullName.Split(); !ok {
		return goerr.Wrap(types.ErrDecode, "full_name of starred repository must be owner/repo",
			goerr.V("id", x.ID),
			goerr.V("full_name", x.FullName),
		)
	}
	return nil
}
