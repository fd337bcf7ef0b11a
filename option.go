package ecli

import "fmt"

// Kind tells whether an option expects a value.
type Kind int

const (
	// Value options require a value, either after '=' or in the next token.
	Value Kind = iota + 1
	// Flag options never take a value from the input.
	Flag
)

func (k Kind) String() string {
	switch k {
	case Value:
		return "value"
	case Flag:
		return "flag"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Option is a declared command-line option.
//
// Name, Kind and Description are fixed at declaration. Parsing records
// whether the option was matched and with which value; Description is the
// declared default text and is only used for help.
type Option struct {
	Name        string
	Kind        Kind
	Description string

	value    string
	consumed bool
}

// Value returns the parsed value and whether the option was matched during
// the last parse. Flags and value options given without a value report ("", true).
func (o *Option) Value() (string, bool) {
	return o.value, o.consumed
}

// IsSet reports whether the option was matched during the last parse.
func (o *Option) IsSet() bool {
	return o.consumed
}

// String returns the parsed value, or "" when the option is absent.
func (o *Option) String() string {
	return o.value
}

func (o *Option) reset() {
	o.value = ""
	o.consumed = false
}

func (o *Option) set(value string) {
	o.value = value
	o.consumed = true
}
