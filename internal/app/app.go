// Package app wires the option set, the printers and the greeter together
// and maps every outcome to a process exit code.
package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/ecli-go/ecli"
	"github.com/ecli-go/ecli/report"
)

// Run executes the hello application on os.Args and returns an exit code
func Run() int {
	return RunArgs(os.Args)
}

// RunArgs executes the hello application on args, program name first.
func RunArgs(args []string) int {
	config, err := ProcessUserInput(args)
	if err != nil {
		return handleError(err, config.Help, consolePrinter(config.PrinterConfig))
	}

	printer, err := ecli.NewPrinter(config.PrinterConfig)
	if err != nil {
		return handleError(err, config.Help, consolePrinter(config.PrinterConfig))
	}

	printer.PrintReport(config.Report)
	printer.Shutdown(config.Report)

	return 0
}

// consolePrinter returns the printer for usage and error output: the one
// cfg selects, minus the file outputs. It returns nil when cfg is invalid.
func consolePrinter(cfg ecli.PrinterConfig) ecli.Printer {
	cfg.OutputCSVPath = ""
	cfg.OutputDBPath = ""

	printer, err := ecli.NewPrinter(cfg)
	if err != nil {
		return nil
	}
	return printer
}

func handleError(err error, help *report.Help, printer ecli.Printer) int {
	if err == nil {
		return 0
	}

	if errors.Is(err, ErrUsageRequested) {
		// a bare request is --help; anything wrapped is a usage mistake
		if err != ErrUsageRequested {
			printError(err, printer)
			printUsage(help, printer)
			return 1
		}
		printUsage(help, printer)
		return 0
	}

	if errors.Is(err, ErrVersionRequested) {
		PrintVersion()
		return 0
	}

	if errors.Is(err, ErrUpdateCheckRequested) {
		msg, checkErr := CheckForUpdates()
		if checkErr != nil {
			printError(checkErr, printer)
			return 1
		}
		fmt.Println(msg)
		return 0
	}

	printError(err, printer)
	return 1
}

func printUsage(help *report.Help, printer ecli.Printer) {
	if printer != nil && help != nil {
		printer.PrintHelp(help)
		return
	}

	PrintUsage(help)
}

func printError(err error, printer ecli.Printer) {
	if printer != nil {
		printer.PrintError("%v", err)
		return
	}

	fmt.Fprintf(os.Stderr, "error: %v\n", err)
}
