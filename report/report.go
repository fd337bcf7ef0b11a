package report

import (
	"time"
)

// Entry is the state of one declared option after a parse call.
type Entry struct {
	Name       string
	TakesValue bool
	Value      string
	// Set is false when the option was not matched; Value is then empty
	// but must not be read as an explicit empty value.
	Set bool
}

// Report describes the outcome of one parse call.
type Report struct {
	// Program is the base name of the executable, when known.
	Program string

	// Parse results
	Entries     []Entry
	Positionals []string
	Tokens      int

	// Greeting is the message computed by the caller, if any. Printers show
	// the positionals instead when it is empty.
	Greeting string

	// Time tracking
	StartTime time.Time
	EndTime   time.Time
}

// StartTimeFormatted returns the parse start time for display.
func (r *Report) StartTimeFormatted() string {
	return r.StartTime.Format(time.DateTime)
}

// EndTimeFormatted returns the end time for display.
func (r *Report) EndTimeFormatted() string {
	return r.EndTime.Format(time.DateTime)
}

// Duration returns how long the parse took. Zero until EndTime is set.
func (r *Report) Duration() time.Duration {
	if r.EndTime.IsZero() || r.StartTime.IsZero() {
		return 0
	}
	return r.EndTime.Sub(r.StartTime)
}

// Lookup returns the entry named name.
func (r *Report) Lookup(name string) (Entry, bool) {
	for _, e := range r.Entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// SetEntries returns the entries matched during the parse, in declaration order.
func (r *Report) SetEntries() []Entry {
	var set []Entry
	for _, e := range r.Entries {
		if e.Set {
			set = append(set, e)
		}
	}
	return set
}

// UnsetEntries returns the entries that were not matched.
func (r *Report) UnsetEntries() []Entry {
	var unset []Entry
	for _, e := range r.Entries {
		if !e.Set {
			unset = append(unset, e)
		}
	}
	return unset
}

// Kind returns "value" or "flag" for display and storage.
func (e Entry) Kind() string {
	if e.TakesValue {
		return "value"
	}
	return "flag"
}
