package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
)

// Format specifies the output format for reports.
type Format string

const (
	// FormatText produces human-readable text output.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
)

// Reporter formats and writes batch reports.
type Reporter struct {
	out    io.Writer
	format Format
}

// NewReporter creates a new Reporter.
func NewReporter(out io.Writer, format Format) *Reporter {
	return &Reporter{
		out:    out,
		format: format,
	}
}

// Report writes the batch report to the output.
func (r *Reporter) Report(rep *Report) error {
	if rep == nil {
		return nil
	}

	switch r.format {
	case FormatJSON:
		return r.reportJSON(rep)
	default:
		return r.reportText(rep)
	}
}

// reportJSON writes the report as JSON, including summary counts.
func (r *Reporter) reportJSON(rep *Report) error {
	out := struct {
		*Report
		Total   int `json:"total"`
		Valid   int `json:"valid"`
		Invalid int `json:"invalid"`
	}{
		Report:  rep,
		Total:   rep.Total(),
		Valid:   rep.ValidCount(),
		Invalid: rep.InvalidCount(),
	}

	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(out), "encoding JSON report")
}

// reportText writes the report as human-readable text: one verdict line
// per address, then a summary.
func (r *Reporter) reportText(rep *Report) error {
	for _, e := range rep.Entries {
		if e.Valid {
			fmt.Fprintf(r.out, "%s %s\n", color.GreenString("✓ VALID:"), e.Input)
		} else {
			fmt.Fprintf(r.out, "%s %s (%s)\n", color.RedString("✗ INVALID:"), e.Input, e.Reason)
		}
	}

	if rep.Total() > 0 {
		fmt.Fprintln(r.out)
	}

	summary := fmt.Sprintf("Checked %d address(es): %d valid, %d invalid",
		rep.Total(), rep.ValidCount(), rep.InvalidCount())
	if rep.AllValid() {
		fmt.Fprintln(r.out, color.GreenString("%s", summary))
	} else {
		fmt.Fprintln(r.out, color.RedString("%s", summary))
	}

	return nil
}
