package printers

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ecli-go/ecli/option"
	"github.com/ecli-go/ecli/report"
)

const (
	colTimestamp string = "Timestamp"
	colName      string = "Name"
	colKind      string = "Kind"
	colSet       string = "Set"
	colValue     string = "Value"
	colPosition  string = "Position"
	colToken     string = "Token"
)

const (
	filePermission os.FileMode = 0644
	fileFlag       int         = os.O_CREATE | os.O_WRONLY | os.O_TRUNC
)

// CSVPrinter writes the parsed options and the positional arguments of a
// report to two CSV files.
type CSVPrinter struct {
	OptionsWriter     *csv.Writer
	PositionalsWriter *csv.Writer
	OptionsFile       *os.File
	PositionalsFile   *os.File
	opt               options
}

type CSVPrinterOption = option.Option[CSVPrinter]

func (p *CSVPrinter) options() *options {
	return &p.opt
}

// NewCSVPrinter creates filePath (".csv" appended when missing) for the
// options and a sibling "_positionals.csv" file for the positional arguments.
func NewCSVPrinter(filePath string, opts ...CSVPrinterOption) (*CSVPrinter, error) {
	optionsFilename := addCSVExtension(filePath, false)

	optionsFile, err := os.OpenFile(optionsFilename, fileFlag, filePermission)
	if err != nil {
		return nil, fmt.Errorf("create options CSV file %s: %w", optionsFilename, err)
	}

	positionalsFilename := addCSVExtension(filePath, true)

	positionalsFile, err := os.OpenFile(positionalsFilename, fileFlag, filePermission)
	if err != nil {
		optionsFile.Close()
		return nil, fmt.Errorf("create positionals CSV file %s: %w", positionalsFilename, err)
	}

	p := &CSVPrinter{
		OptionsWriter:     csv.NewWriter(optionsFile),
		PositionalsWriter: csv.NewWriter(positionalsFile),
		OptionsFile:       optionsFile,
		PositionalsFile:   positionalsFile,
		opt:               defaultOptions(),
	}

	option.Apply(p, opts...)

	return p, nil
}

// addCSVExtension builds the options file name, or the positionals file
// name when positionals is true.
func addCSVExtension(filePath string, positionals bool) string {
	base := strings.TrimSuffix(filePath, ".csv")
	if positionals {
		return base + "_positionals.csv"
	}
	return base + ".csv"
}

// PrintHelp prints the help screen to the console; nothing is written to the files.
func (p *CSVPrinter) PrintHelp(h *report.Help) {
	fmt.Fprint(p.opt.Out, h.String())
}

// PrintReport writes one row per option and one row per positional argument.
func (p *CSVPrinter) PrintReport(r *report.Report) {
	header := []string{colName, colKind, colSet, colValue}
	if p.opt.ShowTimestamp {
		header = append([]string{colTimestamp}, header...)
	}

	if err := p.OptionsWriter.Write(header); err != nil {
		p.PrintError("Failed to write options header: %v", err)
		return
	}

	for _, e := range r.Entries {
		if !e.Set && !p.opt.ShowUnset {
			continue
		}

		record := []string{e.Name, e.Kind(), strconv.FormatBool(e.Set), e.Value}
		if p.opt.ShowTimestamp {
			record = append([]string{r.StartTimeFormatted()}, record...)
		}

		if err := p.OptionsWriter.Write(record); err != nil {
			p.PrintError("Failed to write option record: %v", err)
			return
		}
	}

	p.OptionsWriter.Flush()

	if err := p.PositionalsWriter.Write([]string{colPosition, colToken}); err != nil {
		p.PrintError("Failed to write positionals header: %v", err)
		return
	}

	for i, arg := range r.Positionals {
		if err := p.PositionalsWriter.Write([]string{strconv.Itoa(i), arg}); err != nil {
			p.PrintError("Failed to write positional record: %v", err)
			return
		}
	}

	p.PositionalsWriter.Flush()

	fmt.Fprintf(p.opt.Out, "%s - saved to %s and %s\n",
		headline(r), p.OptionsFile.Name(), p.PositionalsFile.Name())
}

// PrintError logs an error message to stderr.
func (p *CSVPrinter) PrintError(format string, args ...any) {
	printError("CSV Error: ", format, args...)
}

// Shutdown flushes and closes both files.
func (p *CSVPrinter) Shutdown(r *report.Report) {
	finish(r)
	p.cleanup()
}

func (p *CSVPrinter) cleanup() {
	if p.OptionsWriter != nil {
		p.OptionsWriter.Flush()
	}

	if p.PositionalsWriter != nil {
		p.PositionalsWriter.Flush()
	}

	if p.OptionsFile != nil {
		p.OptionsFile.Close()
	}

	if p.PositionalsFile != nil {
		p.PositionalsFile.Close()
	}
}
