package ecli

import (
	"fmt"
	"io"

	"github.com/ecli-go/ecli/report"
)

// HelpLayout describes the help screen from the declarations alone: names,
// kinds and declared descriptions. Parse state never shows up in it.
func (s *OptionSet) HelpLayout() *report.Help {
	h := &report.Help{
		Intro: s.intro,
		Rows:  make([]report.HelpRow, 0, len(s.options)),
	}

	for _, o := range s.options {
		h.Rows = append(h.Rows, report.HelpRow{
			Name:        o.Name,
			TakesValue:  o.Kind == Value,
			Description: o.Description,
		})
	}

	return h
}

// Help renders the help screen.
func (s *OptionSet) Help() string {
	return s.HelpLayout().String()
}

// PrintHelp writes the help screen to w.
func (s *OptionSet) PrintHelp(w io.Writer) error {
	if _, err := io.WriteString(w, s.Help()); err != nil {
		return fmt.Errorf("write help: %w", err)
	}
	return nil
}
