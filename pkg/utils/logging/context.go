package logging

import (
	"context"
	"log/slog"
	"time"

	"github.com/m-mizutani/rrs/pkg/domain/types"
)

type ctxKey int

const (
	loggerKey ctxKey = iota
	requestIDKey
	clockKey
)

// CtxRequestID returns the request ID bound to ctx. When none is bound, a new ID is
// generated and returned with a derived context carrying it.
func CtxRequestID(ctx context.Context) (types.RequestID, context.Context) {
	if id, ok := ctx.Value(requestIDKey).(types.RequestID); ok {
		return id, ctx
	}

	id := types.NewRequestID()
	return id, context.WithValue(ctx, requestIDKey, id)
}

func With(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// From falls back to the default logger.
func From(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return defaultLogger
}

// TimeFunc is the clock used for report timestamps.
type TimeFunc func() time.Time

// CtxTime reads the clock bound by CtxWithTime, or the wall clock.
func CtxTime(ctx context.Context) time.Time {
	if now, ok := ctx.Value(clockKey).(TimeFunc); ok {
		return now()
	}
	return time.Now()
}

func CtxWithTime(ctx context.Context, now TimeFunc) context.Context {
	return context.WithValue(ctx, clockKey, now)
}
