package printer

import (
	"encoding/json"
	"io"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/rrs/pkg/domain/model"
)

type jsonPrinter struct {
	w io.Writer
}

func (x *jsonPrinter) Print(report *model.ReleaseReport) error {
	if report == nil {
		return goerr.New("report is nil")
	}

	out := *report
	if out.Releases == nil {
		out.Releases = []*model.LatestRelease{}
	}

	enc := json.NewEncoder(x.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&out); err != nil {
		return goerr.Wrap(err, "failed to encode report")
	}

	return nil
}
