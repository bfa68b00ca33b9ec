package types

import (
	"log/slog"
	"strings"
)

type (
	GitHubToken  string
	GitHubRepoID int64
	RepoFullName string
)

const (
	DefaultGitHubAPIURL = "https://api.github.com/"
	DefaultUserAgent    = "App-Recent-Releases-Stars"
	GitHubAPIVersion    = "2022-11-28"
	GitHubMediaType     = "application/vnd.github+json"

	// StarredPerPage is the page size of the single starred repository listing request.
	StarredPerPage = 100
)

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}

// Split returns owner and repository name. ok is false if x is not in "owner/repo" form.
func (x RepoFullName) Split() (owner, repo string, ok bool) {
	owner, repo, found := strings.Cut(string(x), "/")
	if !found || owner == "" || repo == "" || strings.Contains(repo, "/") {
		return "", "", false
	}
	return owner, repo, true
}
