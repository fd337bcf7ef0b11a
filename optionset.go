package ecli

import (
	"fmt"

	"github.com/ecli-go/ecli/option"
	"github.com/ecli-go/ecli/report"
)

// DefaultIntro is shown at the top of the help screen unless WithIntro is used.
const DefaultIntro = "Some program..."

// OptionSet is an ordered set of declared options.
//
// An OptionSet is not safe for concurrent use: parsing writes into the
// declared options in place.
type OptionSet struct {
	options  []*Option
	index    map[string]int
	intro    string
	preserve bool
}

// SetOption configures an OptionSet.
type SetOption = option.Option[OptionSet]

// WithIntro sets the introductory message of the help screen.
func WithIntro(msg string) SetOption {
	return func(s *OptionSet) {
		s.intro = msg
	}
}

// WithPreserveArgs makes ParseInPlace count positionals without moving them
// to the front of the argument vector.
func WithPreserveArgs() SetOption {
	return func(s *OptionSet) {
		s.preserve = true
	}
}

// NewOptionSet returns an empty OptionSet.
func NewOptionSet(opts ...SetOption) *OptionSet {
	s := &OptionSet{
		index: make(map[string]int),
		intro: DefaultIntro,
	}

	option.Apply(s, opts...)

	return s
}

// Value declares an option that requires a value.
func (s *OptionSet) Value(name, description string) *Option {
	return s.Add(Option{Name: name, Kind: Value, Description: description})
}

// Flag declares an option that takes no value.
func (s *OptionSet) Flag(name, description string) *Option {
	return s.Add(Option{Name: name, Kind: Flag, Description: description})
}

// Add declares opt and returns the stored option, whose parse state is
// updated by Parse. Declaration order is matching order: when one name is a
// prefix of another, declare the longer one first.
//
// Add panics on an empty name, a duplicate name or an unknown kind.
func (s *OptionSet) Add(opt Option) *Option {
	if opt.Name == "" {
		panic("ecli: option declared with an empty name")
	}

	if opt.Kind != Value && opt.Kind != Flag {
		panic(fmt.Sprintf("ecli: option %s declared with invalid kind %v", opt.Name, opt.Kind))
	}

	if _, ok := s.index[opt.Name]; ok {
		panic(fmt.Sprintf("ecli: option redefined: %s", opt.Name))
	}

	stored := &Option{Name: opt.Name, Kind: opt.Kind, Description: opt.Description}
	s.index[opt.Name] = len(s.options)
	s.options = append(s.options, stored)

	return stored
}

// Lookup returns the option with the given name, or nil.
func (s *OptionSet) Lookup(name string) *Option {
	i, ok := s.index[name]
	if !ok {
		return nil
	}
	return s.options[i]
}

// Options returns the declared options in declaration order.
func (s *OptionSet) Options() []*Option {
	return append([]*Option(nil), s.options...)
}

// Len returns the number of declared options.
func (s *OptionSet) Len() int {
	return len(s.options)
}

// Intro returns the introductory message of the help screen.
func (s *OptionSet) Intro() string {
	return s.intro
}

// Entries returns the parse state of every option, in declaration order.
func (s *OptionSet) Entries() []report.Entry {
	entries := make([]report.Entry, 0, len(s.options))
	for _, o := range s.options {
		value, ok := o.Value()
		entries = append(entries, report.Entry{
			Name:       o.Name,
			TakesValue: o.Kind == Value,
			Value:      value,
			Set:        ok,
		})
	}
	return entries
}
