package printer

import (
	"io"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/rrs/pkg/domain/model"
	"github.com/m-mizutani/rrs/pkg/domain/types"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Formats lists accepted values of --format.
var Formats = []Format{FormatText, FormatJSON}

func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", goerr.Wrap(types.ErrInvalidOption, "unsupported output format", goerr.V("format", s))
}

// Printer writes a release report to its output.
type Printer interface {
	Print(report *model.ReleaseReport) error
}

type config struct {
	color bool
}

type Option func(*config)

// WithColor highlights repository names in the text format. No effect on json.
func WithColor(enabled bool) Option {
	return func(cfg *config) {
		cfg.color = enabled
	}
}

func New(format Format, w io.Writer, options ...Option) (Printer, error) {
	cfg := &config{}
	for _, opt := range options {
		opt(cfg)
	}

	switch format {
	case FormatText:
		return newTextPrinter(w, cfg.color), nil
	case FormatJSON:
		return &jsonPrinter{w: w}, nil
	default:
		return nil, goerr.Wrap(types.ErrInvalidOption, "unsupported output format", goerr.V("format", format))
	}
}
