// Package testdata provides shared test helpers and fixtures.
package testdata

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"testing"
	"time"

	"github.com/ecli-go/ecli/printers"
	"github.com/ecli-go/ecli/report"
)

// Common test fixture values
const (
	TestProgram = "hello"
	TestIntro   = "Small program to output some greetings."
)

var (
	TestTimestamp  = time.Date(2024, 1, 15, 10, 30, 45, 0, time.UTC)
	TestTimestamp2 = time.Date(2024, 1, 15, 10, 30, 46, 0, time.UTC)
)

// ToPtr returns a pointer to the provided value.
func ToPtr[T any](v T) *T {
	return &v
}

// NewHelp returns the help layout of the hello greeter.
func NewHelp() *report.Help {
	return &report.Help{
		Intro: TestIntro,
		Rows: []report.HelpRow{
			{Name: "--hello", TakesValue: true, Description: "Greets the given name."},
			{Name: "--hello-world"},
			{Name: "--french", Description: "Greets in French."},
		},
	}
}

// NewReport returns the report of `hello --hello Ada extra`, without greeting.
func NewReport() *report.Report {
	return &report.Report{
		Program: TestProgram,
		Entries: []report.Entry{
			{Name: "--hello", TakesValue: true, Value: "Ada", Set: true},
			{Name: "--hello-world"},
			{Name: "--french"},
		},
		Positionals: []string{TestProgram, "extra"},
		Tokens:      4,
		StartTime:   TestTimestamp,
	}
}

// CaptureOutput captures stdout during function execution and returns it as a string.
func CaptureOutput(t *testing.T, fn func()) string {
	t.Helper()

	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		io.Copy(&buf, r)
		done <- buf.String()
	}()

	fn()

	w.Close()
	output := <-done
	os.Stdout = oldStdout

	return output
}

// DecodeJSON parses a single JSON event.
func DecodeJSON(t *testing.T, output string) printers.JSONData {
	t.Helper()

	var data printers.JSONData
	if err := json.Unmarshal([]byte(output), &data); err != nil {
		t.Fatalf("parse JSON: %v\nOutput: %s", err, output)
	}

	return data
}
