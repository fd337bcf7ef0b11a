// Package report holds the data the printers render: the layout of a help
// screen and the outcome of a single parse call.
package report

import (
	"strings"
)

// Placeholder is printed after the name of options that require a value.
const Placeholder = "..."

// placeholderWidth is the room reserved for " ..." in the name column.
const placeholderWidth = len(" " + Placeholder)

// HelpRow is one declared option as shown in the help screen.
type HelpRow struct {
	Name        string
	TakesValue  bool
	Description string
}

// Help is the help screen of an option set. It is built from declarations
// only, never from parse state.
type Help struct {
	Intro string
	Rows  []HelpRow
}

// Width returns the size of the name column in bytes: the longest name,
// counting the value placeholder for options that take a value.
func (h *Help) Width() int {
	width := 0
	for _, row := range h.Rows {
		size := len(row.Name)
		if row.TakesValue {
			size += placeholderWidth
		}
		width = max(width, size)
	}
	return width
}

// Column returns the padded name column of row for the given width.
func (r HelpRow) Column(width int) string {
	if r.TakesValue {
		return r.Name + " " + pad(Placeholder, width-len(r.Name)-1)
	}
	return pad(r.Name, width)
}

// pad right-fills s with spaces up to width bytes.
func pad(s string, width int) string {
	if n := width - len(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

// Line returns the full text of row, without the trailing newline.
func (r HelpRow) Line(width int) string {
	return "\t" + r.Column(width) + "  \t" + r.Description
}

// String renders the help screen:
//
//	<intro>
//
//	\t<name column>  \t<description>
//	...
//
// followed by a blank line.
func (h *Help) String() string {
	var sb strings.Builder

	sb.WriteString(h.Intro)
	sb.WriteString("\n\n")

	width := h.Width()
	for _, row := range h.Rows {
		sb.WriteString(row.Line(width))
		sb.WriteByte('\n')
	}

	sb.WriteByte('\n')
	return sb.String()
}
