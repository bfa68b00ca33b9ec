package model

import (
	"slices"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/rrs/pkg/domain/types"
)

// ReleaseInfo is the decoded body of the "latest release" endpoint.
type ReleaseInfo struct {
	HTMLURL     string     `json:"html_url"`
	Name        string     `json:"name"`
	TagName     string     `json:"tag_name"`
	PublishedAt *time.Time `json:"published_at"`
}

func (x *ReleaseInfo) Validate() error {
	if x.HTMLURL == "" {
		return goerr.Wrap(types.ErrDecode, "html_url is missing", goerr.V("tag_name", x.TagName))
	}
	if x.PublishedAt == nil {
		return goerr.Wrap(types.ErrDecode, "published_at is missing", goerr.V("html_url", x.HTMLURL))
	}
	return nil
}

// Version returns the release name, or the tag name when the release is unnamed.
func (x *ReleaseInfo) Version() string {
	if x.Name != "" {
		return x.Name
	}
	return x.TagName
}

// LatestRelease is the latest release of a starred repository.
type LatestRelease struct {
	Repository  types.RepoFullName `json:"repository"`
	Version     string             `json:"version"`
	PublishedAt time.Time          `json:"published_at"`
	HTMLURL     string             `json:"html_url"`
}

// NewLatestRelease pairs a decoded release with its repository. info must be validated.
func NewLatestRelease(repo types.RepoFullName, info *ReleaseInfo) *LatestRelease {
	return &LatestRelease{
		Repository:  repo,
		Version:     info.Version(),
		PublishedAt: *info.PublishedAt,
		HTMLURL:     info.HTMLURL,
	}
}

// SortReleases drops nil entries and returns the rest ordered by PublishedAt, newest first.
// Entries with the same PublishedAt keep their input order. results is not modified.
func SortReleases(results []*LatestRelease) []*LatestRelease {
	releases := make([]*LatestRelease, 0, len(results))
	for _, r := range results {
		if r != nil {
			releases = append(releases, r)
		}
	}

	slices.SortStableFunc(releases, func(a, b *LatestRelease) int {
		return b.PublishedAt.Compare(a.PublishedAt)
	})

	return releases
}

type ReleaseReport struct {
	GeneratedAt  time.Time        `json:"generated_at"`
	StarredCount int              `json:"starred_count"`
	SkippedCount int              `json:"skipped_count"`
	Releases     []*LatestRelease `json:"releases"`
}
