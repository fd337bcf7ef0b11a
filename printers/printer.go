// Package printers renders help screens and parse reports.
package printers

import (
	"fmt"
	"os"
	"time"

	"github.com/ecli-go/ecli/report"
)

const (
	positionalsHeader = "Positional arguments:"
	unsetHeader       = "Unset options:"
)

// headline returns the first line of a report: the greeting, or the
// positionals header when there is none.
func headline(r *report.Report) string {
	if r.Greeting != "" {
		return r.Greeting
	}
	return positionalsHeader
}

// stamp prefixes line with the report start time when enabled.
func stamp(opt *options, r *report.Report, line string) string {
	if !opt.ShowTimestamp {
		return line
	}
	return r.StartTimeFormatted() + " " + line
}

// finish stamps the end time of r unless it is already set.
func finish(r *report.Report) {
	if r != nil && r.EndTime.IsZero() {
		r.EndTime = time.Now()
	}
}

// printError is shared by the printers that keep stdout for their own output.
func printError(prefix, format string, args ...any) {
	fmt.Fprintf(os.Stderr, prefix+format+"\n", args...)
}
