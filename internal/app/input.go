package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/ecli-go/ecli"
	"github.com/ecli-go/ecli/internal/utils"
	"github.com/ecli-go/ecli/report"
)

var (
	// ErrUsageRequested indicates usage help was requested
	ErrUsageRequested = errors.New("usage requested")

	// ErrVersionRequested indicates version display was requested
	ErrVersionRequested = errors.New("version requested")

	// ErrUpdateCheckRequested indicates update check was requested
	ErrUpdateCheckRequested = errors.New("update check requested")
)

// Intro is the first line of the help screen.
const Intro = "Small program to output some greetings."

// Config contains everything the greeter needs after parsing.
type Config struct {
	// Greeting options
	Name       string
	HasName    bool
	HelloWorld bool
	French     bool

	// Output options
	PrinterConfig ecli.PrinterConfig

	// Report is the outcome of the parse, positionals included.
	Report *report.Report

	// Help is always filled, so that usage can be printed whatever went wrong.
	Help *report.Help
}

type options struct {
	hello        *ecli.Option
	helloWorld   *ecli.Option
	french       *ecli.Option
	noColor      *ecli.Option
	outputJSON   *ecli.Option
	prettyJSON   *ecli.Option
	saveToCSV    *ecli.Option
	saveToDB     *ecli.Option
	timestamp    *ecli.Option
	showUnset    *ecli.Option
	showVer      *ecli.Option
	checkUpdates *ecli.Option
}

// newOptionSet declares the greeter options. None of the names is a prefix
// of another one followed by '=', so declaration order does not shadow.
func newOptionSet() (*ecli.OptionSet, options) {
	set := ecli.NewOptionSet(ecli.WithIntro(Intro))

	opts := options{
		hello:        set.Value("--hello", "Greets the given name."),
		helloWorld:   set.Flag("--hello-world", ""),
		french:       set.Flag("--french", "Greets in French."),
		noColor:      set.Flag("--no-color", "do not colorize output."),
		outputJSON:   set.Flag("--json", "output in JSON format."),
		prettyJSON:   set.Flag("--pretty", "use indentation when using json output format. No effect without the '--json' flag."),
		saveToCSV:    set.Value("--csv", "path and file name to store the parse report to CSV files."),
		saveToDB:     set.Value("--db", "path and file name to store the parse report to a sqlite3 database."),
		timestamp:    set.Flag("--timestamp", "show the parse time in the output."),
		showUnset:    set.Flag("--show-unset", "also list the options that were not given."),
		showVer:      set.Flag("--version", "show version and exit."),
		checkUpdates: set.Flag("--check-updates", "check for updates and exit."),
	}

	return set, opts
}

// ProcessUserInput parses args, the full argument vector with the program
// name first. Returns ErrUsageRequested, ErrVersionRequested, or
// ErrUpdateCheckRequested for special control flow.
func ProcessUserInput(args []string) (Config, error) {
	set, opts := newOptionSet()

	config := Config{Help: set.HelpLayout()}

	r, err := set.ParseReport(args)

	// filled on the help path too, from the options seen before --help
	config.PrinterConfig = ecli.PrinterConfig{
		OutputJSON:    opts.outputJSON.IsSet(),
		PrettyJSON:    opts.prettyJSON.IsSet(),
		NoColor:       opts.noColor.IsSet() || !utils.IsTerminal(os.Stdout),
		WithTimestamp: opts.timestamp.IsSet(),
		ShowUnset:     opts.showUnset.IsSet(),
		OutputCSVPath: opts.saveToCSV.String(),
		OutputDBPath:  opts.saveToDB.String(),
		Program:       r.Program,
	}

	if errors.Is(err, ecli.ErrHelpRequested) {
		return config, ErrUsageRequested
	}
	if err != nil {
		return config, fmt.Errorf("parse arguments: %w", err)
	}

	if opts.showVer.IsSet() {
		return config, ErrVersionRequested
	}

	if opts.checkUpdates.IsSet() {
		return config, ErrUpdateCheckRequested
	}

	config.Report = r
	config.Name, config.HasName = opts.hello.Value()
	config.HelloWorld = opts.helloWorld.IsSet()
	config.French = opts.french.IsSet()

	if opts.saveToCSV.IsSet() && config.PrinterConfig.OutputCSVPath == "" {
		return config, fmt.Errorf("%w: --csv requires a file path", ErrUsageRequested)
	}

	if opts.saveToDB.IsSet() && config.PrinterConfig.OutputDBPath == "" {
		return config, fmt.Errorf("%w: --db requires a file path", ErrUsageRequested)
	}

	r.Greeting = Greeting(config)

	return config, nil
}

// Greeting returns the message for config, or "" when the positional
// arguments should be listed instead.
func Greeting(config Config) string {
	switch {
	case config.HelloWorld && config.French:
		return "Bonjour tout le monde !"
	case config.HelloWorld:
		return "Hello, world!"
	case config.HasName && config.French:
		return fmt.Sprintf("Bonjour, %s!", config.Name)
	case config.HasName:
		return fmt.Sprintf("Hello, %s!", config.Name)
	default:
		return ""
	}
}
