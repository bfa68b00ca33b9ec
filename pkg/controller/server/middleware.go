package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/m-mizutani/rrs/pkg/utils/logging"
)

// preProcess binds a request ID and a logger carrying it to the request context,
// then writes one access log line per request.
func preProcess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID, ctx := logging.CtxRequestID(r.Context())
		logger := logging.From(ctx).With(slog.Any("request_id", reqID))
		ctx = logging.With(ctx, logger)

		aw := &accessLogWriter{
			ResponseWriter: w,
			status:         http.StatusOK,
		}

		requestedAt := time.Now()
		next.ServeHTTP(aw, r.WithContext(ctx))

		logger.Info("http access",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("query", r.URL.RawQuery),
			slog.String("remote_addr", r.RemoteAddr),
			slog.Int("status", aw.status),
			slog.Int("response_bytes", aw.written),
			slog.String("user_agent", r.UserAgent()),
			slog.Duration("elapsed", time.Since(requestedAt)),
		)
	})
}

type accessLogWriter struct {
	http.ResponseWriter
	status  int
	written int
}

func (x *accessLogWriter) WriteHeader(code int) {
	x.status = code
	x.ResponseWriter.WriteHeader(code)
}

func (x *accessLogWriter) Write(b []byte) (int, error) {
	n, err := x.ResponseWriter.Write(b)
	x.written += n
	return n, err
}
