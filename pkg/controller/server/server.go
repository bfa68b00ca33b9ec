package server

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/rrs/pkg/controller/printer"
	"github.com/m-mizutani/rrs/pkg/domain/interfaces"
	"github.com/m-mizutani/rrs/pkg/domain/model"
	"github.com/m-mizutani/rrs/pkg/domain/types"
	"github.com/m-mizutani/rrs/pkg/utils/errutil"
	"github.com/m-mizutani/rrs/pkg/utils/logging"
)

// DefaultReportTTL is how long a built report is served before it is rebuilt.
const DefaultReportTTL = 10 * time.Minute

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: The response data is not from user input
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

type config struct {
	reportTTL  time.Duration
	skipErrors bool
}

type Option func(*config)

func WithReportTTL(ttl time.Duration) Option {
	return func(cfg *config) {
		cfg.reportTTL = ttl
	}
}

func WithSkipErrors(skip bool) Option {
	return func(cfg *config) {
		cfg.skipErrors = skip
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{
		reportTTL: DefaultReportTTL,
	}
	for _, opt := range options {
		opt(cfg)
	}

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})
	r.Get("/releases", func(w http.ResponseWriter, r *http.Request) {
		handleReleases(uc, cfg, w, r)
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}

func handleReleases(uc interfaces.UseCase, cfg *config, w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	format := printer.FormatJSON
	if v := r.URL.Query().Get("format"); v != "" {
		f, err := printer.ParseFormat(v)
		if err != nil {
			safeWrite(w, http.StatusBadRequest, []byte(err.Error()))
			return
		}
		format = f
	}

	report, err := uc.GetReleaseReport(ctx, &model.GetReleaseReportInput{
		BuildReleaseReportInput: model.BuildReleaseReportInput{
			SkipErrors: cfg.skipErrors,
		},
		MaxAge: cfg.reportTTL,
	})
	if err != nil {
		errutil.HandleError(ctx, "fail to get release report", err)
		safeWrite(w, errorStatus(err), []byte(http.StatusText(errorStatus(err))))
		return
	}

	var buf bytes.Buffer
	p, err := printer.New(format, &buf)
	if err != nil {
		errutil.HandleError(ctx, "fail to create printer", err)
		safeWrite(w, http.StatusInternalServerError, []byte(http.StatusText(http.StatusInternalServerError)))
		return
	}
	if err := p.Print(report); err != nil {
		errutil.HandleError(ctx, "fail to print release report", goerr.Wrap(err, "printing report"))
		safeWrite(w, http.StatusInternalServerError, []byte(http.StatusText(http.StatusInternalServerError)))
		return
	}

	switch format {
	case printer.FormatText:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	default:
		w.Header().Set("Content-Type", "application/json")
	}
	safeWrite(w, http.StatusOK, buf.Bytes())
}

// errorStatus maps failures of the upstream GitHub API to 502 and the rest to 500.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, types.ErrTransport),
		errors.Is(err, types.ErrDecode),
		errors.Is(err, types.ErrUnexpectedStatus):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
