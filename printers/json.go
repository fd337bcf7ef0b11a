package printers

import (
	"encoding/json"
	"fmt"

	"github.com/ecli-go/ecli/option"
	"github.com/ecli-go/ecli/report"
)

// JSONEventType is a special type for each method
// in the printer interface so that automatic tools
// can understand what kind of an event they've received.
type JSONEventType string

const (
	helpEvent   JSONEventType = "help"   // Event type for `PrintHelp` method.
	reportEvent JSONEventType = "report" // Event type for `PrintReport` method.
	errorEvent  JSONEventType = "error"  // Event type for `PrintError` method.
)

// JSONOption is one declared option in a JSON event.
type JSONOption struct {
	Name        string `json:"name"`
	Kind        string `json:"kind"`
	Description string `json:"description,omitempty"`
	// Set is a pointer so that help events omit it while report events
	// keep set=false.
	Set *bool `json:"set,omitempty"`
	// Value is nil for options that were not given, so that an absent
	// option and an explicit empty value stay distinguishable.
	Value *string `json:"value,omitempty"`
}

// JSONData contains all possible fields for JSON output.
// Because one event usually contains only a subset of fields,
// other fields will be omitted in the output.
type JSONData struct {
	Type        JSONEventType `json:"type"`
	Timestamp   string        `json:"timestamp,omitempty"`
	Message     string        `json:"message"`
	Program     string        `json:"program,omitempty"`
	Options     []JSONOption  `json:"options,omitempty"`
	Positionals []string      `json:"positionals,omitempty"`
	Tokens      int           `json:"tokens,omitempty"`
	Help        string        `json:"help,omitempty"` // Help is the rendered help screen.
}

// JSONPrinter is a struct that holds a JSON encoder to print structured JSON output.
type JSONPrinter struct {
	encoder *json.Encoder
	pretty  bool
	opt     options
}

type JSONPrinterOption = option.Option[JSONPrinter]

func (p *JSONPrinter) options() *options {
	return &p.opt
}

// WithPrettyJSON indents the JSON output.
func WithPrettyJSON() JSONPrinterOption {
	return func(p *JSONPrinter) {
		p.pretty = true
	}
}

// NewJSONPrinter creates a new JSONPrinter instance.
func NewJSONPrinter(opts ...JSONPrinterOption) *JSONPrinter {
	p := &JSONPrinter{opt: defaultOptions()}

	option.Apply(p, opts...)

	p.encoder = json.NewEncoder(p.opt.Out)
	if p.pretty {
		p.encoder.SetIndent("", "\t")
	}

	return p
}

// PrintHelp prints the help screen as a help event.
func (p *JSONPrinter) PrintHelp(h *report.Help) {
	data := JSONData{
		Type:    helpEvent,
		Message: h.Intro,
		Help:    h.String(),
	}

	for _, row := range h.Rows {
		kind := "flag"
		if row.TakesValue {
			kind = "value"
		}
		data.Options = append(data.Options, JSONOption{
			Name:        row.Name,
			Kind:        kind,
			Description: row.Description,
		})
	}

	p.encoder.Encode(data)
}

// PrintReport prints the outcome of a parse as a report event.
func (p *JSONPrinter) PrintReport(r *report.Report) {
	data := JSONData{
		Type:        reportEvent,
		Message:     headline(r),
		Program:     r.Program,
		Positionals: r.Positionals,
		Tokens:      r.Tokens,
	}

	if p.opt.ShowTimestamp {
		data.Timestamp = r.StartTimeFormatted()
	}

	for _, e := range r.Entries {
		if !e.Set && !p.opt.ShowUnset {
			continue
		}

		set := e.Set
		opt := JSONOption{Name: e.Name, Kind: e.Kind(), Set: &set}
		if e.Set {
			value := e.Value
			opt.Value = &value
		}
		data.Options = append(data.Options, opt)
	}

	p.encoder.Encode(data)
}

// PrintError prints an error event.
func (p *JSONPrinter) PrintError(format string, args ...any) {
	p.encoder.Encode(JSONData{
		Type:    errorEvent,
		Message: fmt.Sprintf(format, args...),
	})
}

// Shutdown sets the end time of the report.
func (p *JSONPrinter) Shutdown(r *report.Report) {
	finish(r)
}
