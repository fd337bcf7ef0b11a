package printers

import (
	"fmt"
	"os"

	"github.com/ecli-go/ecli/option"
	"github.com/ecli-go/ecli/report"
)

// PlainPrinter prints help screens and reports as plain text.
type PlainPrinter struct {
	opt options
}

type PlainPrinterOption = option.Option[PlainPrinter]

func (p *PlainPrinter) options() *options {
	return &p.opt
}

// NewPlainPrinter creates a new PlainPrinter instance.
func NewPlainPrinter(opts ...PlainPrinterOption) *PlainPrinter {
	p := &PlainPrinter{opt: defaultOptions()}

	option.Apply(p, opts...)

	return p
}

// PrintHelp prints the help screen exactly as laid out by report.Help.
func (p *PlainPrinter) PrintHelp(h *report.Help) {
	fmt.Fprint(p.opt.Out, h.String())
}

// PrintReport prints the greeting, or the positional arguments one per line
// when there is no greeting.
func (p *PlainPrinter) PrintReport(r *report.Report) {
	if r.Greeting != "" {
		fmt.Fprintf(p.opt.Out, "%s\n", stamp(&p.opt, r, "\t"+r.Greeting))
	} else {
		fmt.Fprintf(p.opt.Out, "%s\n", stamp(&p.opt, r, positionalsHeader))
		for _, arg := range r.Positionals {
			fmt.Fprintf(p.opt.Out, "\t%s\n", arg)
		}
	}

	if !p.opt.ShowUnset {
		return
	}

	unset := r.UnsetEntries()
	if len(unset) == 0 {
		return
	}

	fmt.Fprintf(p.opt.Out, "%s\n", unsetHeader)
	for _, e := range unset {
		fmt.Fprintf(p.opt.Out, "\t%s\n", e.Name)
	}
}

// PrintError prints an error message to stderr.
func (p *PlainPrinter) PrintError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

// Shutdown sets the end time of the report. Nothing else to release.
func (p *PlainPrinter) Shutdown(r *report.Report) {
	finish(r)
}
