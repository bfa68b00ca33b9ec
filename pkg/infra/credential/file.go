package credential

import (
	"io"
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/rrs/pkg/domain/types"
	"github.com/m-mizutani/rrs/pkg/utils/safe"
	"github.com/mitchellh/go-homedir"
)

// DefaultTokenFile is where the GitHub token is read from unless specified.
const DefaultTokenFile = "~/.rrs_token"

// maxTokenFileSize bounds how much of the token file is read. GitHub tokens are far shorter.
const maxTokenFileSize = 64 * 1024

// LoadToken reads a GitHub token from path. A leading "~" is expanded to the home
// directory. Surrounding whitespace is trimmed and an empty token is an error.
func LoadToken(path string) (types.GitHubToken, error) {
	if path == "" {
		return "", goerr.Wrap(types.ErrCredential, "token file path is empty")
	}

	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", goerr.Wrap(types.ErrCredential, "failed to expand token file path",
			goerr.V("path", path),
			goerr.V("error", err.Error()),
		)
	}

	fd, err := os.Open(expanded)
	if err != nil {
		return "", goerr.Wrap(types.ErrCredential, "failed to open token file",
			goerr.V("path", expanded),
			goerr.V("error", err.Error()),
		)
	}
	defer safe.Close(fd)

	raw, err := io.ReadAll(io.LimitReader(fd, maxTokenFileSize))
	if err != nil {
		return "", goerr.Wrap(types.ErrCredential, "failed to read token file",
			goerr.V("path", expanded),
			goerr.V("error", err.Error()),
		)
	}

	token := strings.TrimSpace(string(raw))
	if token == "" {
		return "", goerr.Wrap(types.ErrCredential, "token file is empty", goerr.V("path", expanded))
	}

	return types.GitHubToken(token), nil
}

// Resolve returns token if it is not blank, otherwise the token loaded from path.
func Resolve(token types.GitHubToken, path string) (types.GitHubToken, error) {
	if trimmed := strings.TrimSpace(string(token)); trimmed != "" {
		return types.GitHubToken(trimmed), nil
	}
	return LoadToken(path)
}
