package ecli

import (
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/ecli-go/ecli/report"
)

// HelpTrigger is the token that stops parsing and requests the help screen.
const HelpTrigger = "--help"

// ErrHelpRequested is returned by the parse functions when HelpTrigger is
// found. Tokens after it are not scanned.
var ErrHelpRequested = errors.New("help requested")

// Parse matches args against the declared options and returns the
// positional tokens in their original order. args is the full argument
// vector; the program name at index 0 is positional like any other token
// that matches no option.
//
// Every option is cleared before scanning, so an option not matched by this
// call is absent afterwards. args is not modified.
func (s *OptionSet) Parse(args []string) ([]string, error) {
	positionals := make([]string, 0, len(args))

	_, err := s.scan(args, func(token string) {
		positionals = append(positionals, token)
	})
	if err != nil {
		return nil, err
	}

	return positionals, nil
}

// ParseInPlace is Parse reusing the argument vector: positional tokens are
// moved to the front of args and their count is returned. Slots at and after
// the count hold unspecified tokens. With WithPreserveArgs, args is left
// untouched and only the count is returned.
func (s *OptionSet) ParseInPlace(args []string) (int, error) {
	n := 0

	_, err := s.scan(args, func(token string) {
		if !s.preserve {
			args[n] = token
		}
		n++
	})
	if err != nil {
		return 0, err
	}

	return n, nil
}

// ParseReport parses args and describes the outcome. On ErrHelpRequested the
// returned report holds the state reached before the help token.
func (s *OptionSet) ParseReport(args []string) (*report.Report, error) {
	r := &report.Report{StartTime: time.Now()}
	if len(args) > 0 {
		r.Program = filepath.Base(args[0])
	}

	tokens, err := s.scan(args, func(token string) {
		r.Positionals = append(r.Positionals, token)
	})

	r.Tokens = tokens
	r.Entries = s.Entries()
	r.EndTime = time.Now()

	return r, err
}

// scan walks args once, feeding unmatched tokens to positional. It returns
// the number of tokens visited.
func (s *OptionSet) scan(args []string, positional func(string)) (int, error) {
	for _, o := range s.options {
		o.reset()
	}

	visited := 0
	for i := 0; i < len(args); i++ {
		visited++

		if args[i] == HelpTrigger {
			return visited, ErrHelpRequested
		}

		next, ok := s.match(args, i)
		if !ok {
			positional(args[i])
			continue
		}

		visited += next - i
		i = next
	}

	return visited, nil
}

// match tries every unconsumed option against args[i], in declaration order.
// It returns the index of the last token used by the match.
func (s *OptionSet) match(args []string, i int) (int, bool) {
	token := args[i]

	for _, o := range s.options {
		if o.consumed || !strings.HasPrefix(token, o.Name) {
			continue
		}

		rest := token[len(o.Name):]
		switch {
		case strings.HasPrefix(rest, "="):
			o.set(rest[1:])
		case rest != "":
			// longer token sharing the prefix, e.g. --hello-world against --hello
			continue
		case o.Kind == Flag:
			o.set("")
		case i+1 < len(args):
			i++
			o.set(args[i])
		default:
			o.set("")
		}

		return i, true
	}

	return i, false
}
