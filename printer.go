package ecli

import (
	"fmt"

	"github.com/ecli-go/ecli/printers"
	"github.com/ecli-go/ecli/report"
)

var (
	_ Printer = (*printers.ColorPrinter)(nil)
	_ Printer = (*printers.JSONPrinter)(nil)
	_ Printer = (*printers.CSVPrinter)(nil)
	_ Printer = (*printers.DatabasePrinter)(nil)
	_ Printer = (*printers.PlainPrinter)(nil)
)

// Printer defines a set of methods that any printer implementation must provide.
// Printers are responsible for outputting information, but should not modify
// parse results.
type Printer interface {
	// PrintHelp prints the help screen of an option set.
	PrintHelp(h *report.Help)

	// PrintReport prints the outcome of a parse: the greeting when the
	// caller computed one, the positional arguments otherwise.
	PrintReport(r *report.Report)

	// PrintError should print an error message.
	// Printer should also apply \n to the given string, if needed.
	PrintError(format string, args ...any)

	// Shutdown sets the report end time and releases files or connections.
	// It does not exit the program.
	Shutdown(r *report.Report)
}

// PrinterConfig holds all configuration options for Printer creation
type PrinterConfig struct {
	OutputJSON    bool
	PrettyJSON    bool
	NoColor       bool
	WithTimestamp bool
	ShowUnset     bool
	OutputDBPath  string
	OutputCSVPath string
	Program       string
}

// NewPrinter creates and returns an appropriate printer based on configuration
func NewPrinter(cfg PrinterConfig) (Printer, error) {
	if cfg.PrettyJSON && !cfg.OutputJSON {
		return nil, fmt.Errorf("--pretty has no effect without the --json flag")
	}

	switch {
	case cfg.OutputJSON:
		opts := []printers.JSONPrinterOption{}
		if cfg.PrettyJSON {
			opts = append(opts, printers.WithPrettyJSON())
		}
		if cfg.WithTimestamp {
			opts = append(opts, printers.WithTimestamp[*printers.JSONPrinter]())
		}
		if cfg.ShowUnset {
			opts = append(opts, printers.WithUnset[*printers.JSONPrinter]())
		}
		return printers.NewJSONPrinter(opts...), nil

	case cfg.OutputDBPath != "":
		opts := []printers.DatabasePrinterOption{}
		if cfg.ShowUnset {
			opts = append(opts, printers.WithUnset[*printers.DatabasePrinter]())
		}
		return printers.NewDatabasePrinter(cfg.Program, cfg.OutputDBPath, opts...)

	case cfg.OutputCSVPath != "":
		opts := []printers.CSVPrinterOption{}
		if cfg.WithTimestamp {
			opts = append(opts, printers.WithTimestamp[*printers.CSVPrinter]())
		}
		if cfg.ShowUnset {
			opts = append(opts, printers.WithUnset[*printers.CSVPrinter]())
		}
		return printers.NewCSVPrinter(cfg.OutputCSVPath, opts...)

	case cfg.NoColor:
		opts := []printers.PlainPrinterOption{}
		if cfg.WithTimestamp {
			opts = append(opts, printers.WithTimestamp[*printers.PlainPrinter]())
		}
		if cfg.ShowUnset {
			opts = append(opts, printers.WithUnset[*printers.PlainPrinter]())
		}
		return printers.NewPlainPrinter(opts...), nil

	default:
		opts := []printers.ColorPrinterOption{}
		if cfg.WithTimestamp {
			opts = append(opts, printers.WithTimestamp[*printers.ColorPrinter]())
		}
		if cfg.ShowUnset {
			opts = append(opts, printers.WithUnset[*printers.ColorPrinter]())
		}
		return printers.NewColorPrinter(opts...), nil
	}
}
