package errutil

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/rrs/pkg/utils/logging"
)

// HandleError sends err to Sentry (if configured) and logs it with msg.
func HandleError(ctx context.Context, msg string, err error) {
	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		if goErr := goerr.Unwrap(err); goErr != nil {
			for k, v := range goErr.Values() {
				scope.SetExtra(fmt.Sprintf("%v", k), v)
			}
		}
	})

	attrs := []any{slog.Any("error", err)}
	if evID := hub.CaptureException(err); evID != nil {
		attrs = append(attrs, slog.Any("sentry.EventID", *evID))
	}

	logging.From(ctx).Error(msg, attrs...)
}

// Flush waits for buffered Sentry events before the process exits.
func Flush(timeout time.Duration) {
	if sentry.CurrentHub().Client() == nil {
		return
	}
	if !sentry.Flush(timeout) {
		logging.Default().Warn("Sentry events were not flushed", slog.Duration("timeout", timeout))
	}
}
