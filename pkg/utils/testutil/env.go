package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
)

// GetEnvOrSkip returns the value of the environment variable. If not set, skip the test.
func GetEnvOrSkip(t *testing.T, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("%s is not set, skipping test", key)
	}
	return value
}

// WriteTokenFile writes content to dir/.rrs_token and returns the path.
func WriteTokenFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ".rrs_token")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

// UnsetToken clears RRS_GITHUB_TOKEN for the test so the token file is used.
func UnsetToken(t *testing.T) {
	t.Helper()
	t.Setenv("RRS_GITHUB_TOKEN", "")
}
