package printers

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/ecli-go/ecli/option"
	"github.com/ecli-go/ecli/report"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

const (
	eventTypeOption     = "option"
	eventTypePositional = "positional"
)

const (
	dataTableSchema = `CREATE TABLE %s (
    id INTEGER PRIMARY KEY,
    event_type TEXT NOT NULL, -- option or positional
    timestamp DATETIME,
    program TEXT,
    position INTEGER, -- declaration index for options, argv order for positionals
    name TEXT,
    kind TEXT,
    is_set INTEGER,
    value TEXT -- NULL for options that were not given
	);`

	rowSaveSchema = `INSERT INTO %s (
	event_type,
	timestamp,
	program,
	position,
	name,
	kind,
	is_set,
	value) VALUES (?, ?, ?, ?, ?, ?, ?, ?);`
)

// DatabasePrinter stores parse reports in a SQLite database, one table per run.
type DatabasePrinter struct {
	Conn      *sqlite.Conn
	DbPath    string
	TableName string
	opt       options
}

type DatabasePrinterOption = option.Option[DatabasePrinter]

func (p *DatabasePrinter) options() *options {
	return &p.opt
}

// NewDatabasePrinter opens (or creates) the database at dbPath and creates
// the table for this run.
func NewDatabasePrinter(program, dbPath string, opts ...DatabasePrinterOption) (*DatabasePrinter, error) {
	filename := addDbExtension(dbPath)

	conn, err := sqlite.OpenConn(filename, sqlite.OpenCreate, sqlite.OpenReadWrite)
	if err != nil {
		return nil, fmt.Errorf("open database %q: %w", filename, err)
	}

	tableName := sanitizeTableName(program, time.Now())

	err = sqlitex.Execute(conn, fmt.Sprintf(dataTableSchema, tableName), &sqlitex.ExecOptions{})
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("create data table: %w", err)
	}

	p := &DatabasePrinter{
		Conn:      conn,
		DbPath:    filename,
		TableName: tableName,
		opt:       defaultOptions(),
	}

	option.Apply(p, opts...)

	return p, nil
}

func addDbExtension(filename string) string {
	if strings.HasSuffix(filename, ".db") {
		return filename
	}

	return filename + ".db"
}

// sanitizeTableName will return the sanitized and correctly formatted table name
// formatting the table name as "program__year_month_day_hour_minute_sec"
// table name can't have '.','-' and can't start with numbers
func sanitizeTableName(program string, when time.Time) string {
	sanitizedProgram := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			return r
		}
		return '_'
	}, program)

	sanitizedTime := strings.NewReplacer("-", "_", ":", "_", " ", "_").
		Replace(when.Format(time.DateTime))

	tableName := fmt.Sprintf("%s__%s", sanitizedProgram, sanitizedTime)

	if unicode.IsNumber(rune(tableName[0])) || tableName[0] == '_' {
		tableName = "t" + tableName
	}

	return tableName
}

// PrintHelp prints the help screen to the console; nothing is stored.
func (p *DatabasePrinter) PrintHelp(h *report.Help) {
	fmt.Fprint(p.opt.Out, h.String())
}

// PrintReport saves one row per option and one row per positional argument.
func (p *DatabasePrinter) PrintReport(r *report.Report) {
	if err := p.saveReport(r); err != nil {
		p.PrintError("Failed to save report: %v", err)
		return
	}

	fmt.Fprintf(p.opt.Out, "%s - saved to: %s\n", headline(r), p.DbPath)
}

func (p *DatabasePrinter) saveReport(r *report.Report) (err error) {
	// all rows of a report land together or not at all
	defer sqlitex.Save(p.Conn)(&err)

	timestamp := r.StartTimeFormatted()
	insert := fmt.Sprintf(rowSaveSchema, p.TableName)

	for i, e := range r.Entries {
		if !e.Set && !p.opt.ShowUnset {
			continue
		}

		var value any
		if e.Set {
			value = e.Value
		}

		err = sqlitex.Execute(p.Conn, insert, &sqlitex.ExecOptions{
			Args: []any{eventTypeOption, timestamp, r.Program, i, e.Name, e.Kind(), e.Set, value},
		})
		if err != nil {
			return fmt.Errorf("save option %s: %w", e.Name, err)
		}
	}

	for i, arg := range r.Positionals {
		err = sqlitex.Execute(p.Conn, insert, &sqlitex.ExecOptions{
			Args: []any{eventTypePositional, timestamp, r.Program, i, nil, nil, nil, arg},
		})
		if err != nil {
			return fmt.Errorf("save positional %d: %w", i, err)
		}
	}

	return nil
}

// PrintError prints the error to stderr.
func (p *DatabasePrinter) PrintError(format string, args ...any) {
	printError("", format, args...)
}

// Shutdown closes the database connection.
func (p *DatabasePrinter) Shutdown(r *report.Report) {
	finish(r)

	if err := p.Conn.Close(); err != nil {
		p.PrintError("Failed to close database: %v", err)
	}
}
