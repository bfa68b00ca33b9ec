package printer

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/rrs/pkg/domain/model"
)

// DateLayout is dd/mm/yyyy. Dates are printed in UTC.
const DateLayout = "02/01/2006"

type textPrinter struct {
	w    io.Writer
	repo *color.Color
}

func newTextPrinter(w io.Writer, enableColor bool) *textPrinter {
	repo := color.New(color.FgCyan, color.Bold)
	if enableColor {
		repo.EnableColor()
	} else {
		repo.DisableColor()
	}

	return &textPrinter{w: w, repo: repo}
}

func (x *textPrinter) Print(report *model.ReleaseReport) error {
	if report == nil {
		return goerr.New("report is nil")
	}

	for _, release := range report.Releases {
		if _, err := x.repo.Fprintln(x.w, release.Repository); err != nil {
			return goerr.Wrap(err, "failed to write repository name", goerr.V("repo", release.Repository))
		}

		if _, err := fmt.Fprintf(x.w, "   - Version : %s\n   - Date : %s\n   - %s\n\n",
			release.Version,
			release.PublishedAt.UTC().Format(DateLayout),
			release.HTMLURL,
		); err != nil {
			return goerr.Wrap(err, "failed to write release", goerr.V("repo", release.Repository))
		}
	}

	return nil
}
