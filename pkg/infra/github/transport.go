package github

import (
	"net/http"

	"github.com/m-mizutani/rrs/pkg/domain/types"
)

// headerTransport sets the fixed header set required by the GitHub REST API on every request.
// Headers set by go-github (Accept, User-Agent) are overwritten.
type headerTransport struct {
	base   http.RoundTripper
	header map[string]string
}

func newHeaderTransport(base http.RoundTripper, token types.GitHubToken, userAgent string) *headerTransport {
	return &headerTransport{
		base: base,
		header: map[string]string{
			"X-GitHub-Api-Version": types.GitHubAPIVersion,
			"Accept":               types.GitHubMediaType,
			"Authorization":        "Bearer " + string(token),
			"User-Agent":           userAgent,
		},
	}
}

func (x *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTripper must not modify the original request
	r := req.Clone(req.Context())
	for k, v := range x.header {
		r.Header.Set(k, v)
	}
	return x.base.RoundTrip(r)
}
