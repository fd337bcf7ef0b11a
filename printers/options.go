package printers

import (
	"io"
	"os"
)

// options contains common display options shared by all printers
type options struct {
	ShowTimestamp bool
	ShowUnset     bool
	Out           io.Writer
}

func defaultOptions() options {
	return options{Out: os.Stdout}
}

type hasOptions interface {
	options() *options
}

// WithTimestamp enables timestamp display in printer output
func WithTimestamp[T hasOptions]() func(T) {
	return func(p T) {
		p.options().ShowTimestamp = true
	}
}

// WithUnset makes printers also list the options that were not given
func WithUnset[T hasOptions]() func(T) {
	return func(p T) {
		p.options().ShowUnset = true
	}
}

// WithWriter redirects the printer's console output, stdout by default
func WithWriter[T hasOptions](w io.Writer) func(T) {
	return func(p T) {
		p.options().Out = w
	}
}
