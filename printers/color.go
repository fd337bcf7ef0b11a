package printers

import (
	"fmt"
	"os"

	"github.com/ecli-go/ecli/option"
	"github.com/ecli-go/ecli/report"
	"github.com/gookit/color"
)

// Color functions used when printing information
var (
	ColorCyan        = color.Cyan.Sprintf
	ColorLightCyan   = color.LightCyan.Sprintf
	ColorGreen       = color.Green.Sprintf
	ColorLightGreen  = color.LightGreen.Sprintf
	ColorYellow      = color.Yellow.Sprintf
	ColorLightYellow = color.LightYellow.Sprintf
	ColorRed         = color.Red.Sprintf
)

// ColorPrinter prints the same layout as PlainPrinter with ANSI colors.
type ColorPrinter struct {
	opt options
}

type ColorPrinterOption = option.Option[ColorPrinter]

func (p *ColorPrinter) options() *options {
	return &p.opt
}

// NewColorPrinter creates a new ColorPrinter instance.
func NewColorPrinter(opts ...ColorPrinterOption) *ColorPrinter {
	p := &ColorPrinter{opt: defaultOptions()}

	option.Apply(p, opts...)

	return p
}

// PrintHelp prints the intro in light cyan and the name column in yellow.
// Colors aside, the layout matches report.Help.String.
func (p *ColorPrinter) PrintHelp(h *report.Help) {
	fmt.Fprint(p.opt.Out, ColorLightCyan("%s", h.Intro), "\n\n")

	width := h.Width()
	for _, row := range h.Rows {
		fmt.Fprint(p.opt.Out, "\t", ColorYellow("%s", row.Column(width)), "  \t", row.Description, "\n")
	}

	fmt.Fprint(p.opt.Out, "\n")
}

// PrintReport prints the greeting in light green, or the positional
// arguments in cyan.
func (p *ColorPrinter) PrintReport(r *report.Report) {
	if r.Greeting != "" {
		fmt.Fprintln(p.opt.Out, ColorLightGreen("%s", stamp(&p.opt, r, "\t"+r.Greeting)))
	} else {
		fmt.Fprintln(p.opt.Out, ColorLightYellow("%s", stamp(&p.opt, r, positionalsHeader)))
		for _, arg := range r.Positionals {
			fmt.Fprintln(p.opt.Out, ColorCyan("\t%s", arg))
		}
	}

	if !p.opt.ShowUnset {
		return
	}

	unset := r.UnsetEntries()
	if len(unset) == 0 {
		return
	}

	fmt.Fprintln(p.opt.Out, ColorLightYellow("%s", unsetHeader))
	for _, e := range unset {
		fmt.Fprintln(p.opt.Out, ColorYellow("\t%s", e.Name))
	}
}

// PrintError prints an error message in red to stderr.
func (p *ColorPrinter) PrintError(format string, args ...any) {
	fmt.Fprintln(os.Stderr, ColorRed(format, args...))
}

// Shutdown sets the end time of the report.
func (p *ColorPrinter) Shutdown(r *report.Report) {
	finish(r)
}
