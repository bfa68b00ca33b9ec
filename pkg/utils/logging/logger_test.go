package logging_test

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/rrs/pkg/domain/types"
	"github.com/m-mizutani/rrs/pkg/utils/logging"
)

func restoreDefault(t *testing.T) {
	t.Cleanup(func() {
		gt.NoError(t, logging.Configure("text", "info", "stderr"))
	})
}

func TestConfigure(t *testing.T) {
	restoreDefault(t)

	testCases := map[string]struct {
		format string
		level  string
		output string
		isErr  bool
	}{
		"json to stdout":    {format: "json", level: "info", output: "stdout"},
		"text to stderr":    {format: "text", level: "debug", output: "stderr"},
		"dash means stdout": {format: "text", level: "warn", output: "-"},
		"invalid format":    {format: "yaml", level: "info", output: "stderr", isErr: true},
		"invalid level":     {format: "json", level: "verbose", output: "stderr", isErr: true},
		"unwritable output": {format: "json", level: "info", output: "/nonexistent/dir/log.txt", isErr: true},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			err := logging.Configure(tc.format, tc.level, tc.output)
			if tc.isErr {
				gt.Error(t, err)
			} else {
				gt.NoError(t, err)
			}
		})
	}
}

func TestConfigureMasksSecrets(t *testing.T) {
	restoreDefault(t)

	type tokenHolder struct {
		Token types.GitHubToken
		Path  string
	}
	type taggedSecret struct {
		Value string `masq:"secret"`
	}

	logFile := filepath.Join(t.TempDir(), "rrs.log")
	gt.NoError(t, logging.Configure("json", "info", logFile))

	logging.Default().Info("loaded credential",
		slog.Any("holder", tokenHolder{Token: "ghp_very_secret_token", Path: "~/.rrs_token"}),
		slog.Any("tagged", taggedSecret{Value: "tagged_secret_value"}),
	)

	raw := gt.R1(os.ReadFile(logFile)).NoError(t)
	out := string(raw)
	gt.True(t, strings.Contains(out, "loaded credential"))
	gt.True(t, strings.Contains(out, "~/.rrs_token"))
	gt.False(t, strings.Contains(out, "ghp_very_secret_token"))
	gt.False(t, strings.Contains(out, "tagged_secret_value"))
}

func TestConfigureLevel(t *testing.T) {
	restoreDefault(t)

	logFile := filepath.Join(t.TempDir(), "rrs.log")
	gt.NoError(t, logging.Configure("json", "warn", logFile))

	logging.Default().Info("hidden message")
	logging.Default().Warn("visible message")

	out := string(gt.R1(os.ReadFile(logFile)).NoError(t))
	gt.False(t, strings.Contains(out, "hidden message"))
	gt.True(t, strings.Contains(out, "visible message"))
}

func TestConfigureAppendsToLogFile(t *testing.T) {
	restoreDefault(t)

	logFile := filepath.Join(t.TempDir(), "rrs.log")
	gt.NoError(t, logging.Configure("json", "info", logFile))
	logging.Default().Info("first run")

	gt.NoError(t, logging.Configure("json", "info", logFile))
	logging.Default().Info("second run")

	out := string(gt.R1(os.ReadFile(logFile)).NoError(t))
	gt.True(t, strings.Contains(out, "first run"))
	gt.True(t, strings.Contains(out, "second run"))
}

func TestConfigureInvalidOption(t *testing.T) {
	restoreDefault(t)

	err := logging.Configure("json", "info", filepath.Join(t.TempDir(), "missing", "rrs.log"))
	gt.True(t, errors.Is(err, types.ErrInvalidOption))

	err = logging.Configure("xml", "info", "stderr")
	gt.True(t, errors.Is(err, types.ErrInvalidOption))
}

func TestConfigureInvalidFormatDoesNotOpenFile(t *testing.T) {
	restoreDefault(t)

	logFile := filepath.Join(t.TempDir(), "rrs.log")
	err := logging.Configure("yaml", "info", logFile)
	gt.True(t, errors.Is(err, types.ErrInvalidOption))

	_, statErr := os.Stat(logFile)
	gt.True(t, errors.Is(statErr, os.ErrNotExist))
}
