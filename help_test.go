package ecli_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ecli-go/ecli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const greeterHelp = "Small program to output some greetings.\n\n" +
	"\t--hello ...    \tGreets the given name.\n" +
	"\t--hello-world  \t\n" +
	"\t--french       \tGreets in French.\n" +
	"\n"

func TestHelp(t *testing.T) {
	set, _, _, _ := greeterSet()
	assert.Equal(t, greeterHelp, set.Help())
}

func TestHelp_IgnoresParseState(t *testing.T) {
	set, _, _, _ := greeterSet()

	_, err := set.Parse([]string{"prog", "--hello", "Ada", "--french"})
	require.NoError(t, err)

	assert.Equal(t, greeterHelp, set.Help())
}

func TestHelp_DefaultIntro(t *testing.T) {
	set := ecli.NewOptionSet()
	set.Flag("--v", "verbose")

	assert.Equal(t, ecli.DefaultIntro+"\n\n\t--v  \tverbose\n\n", set.Help())
}

func TestHelp_ValueOptionWidensColumn(t *testing.T) {
	set := ecli.NewOptionSet(ecli.WithIntro("intro"))
	set.Flag("--flag", "a flag")
	set.Value("--out", "output file")

	// "--out ..." is 9 wide, wider than "--flag"
	want := "intro\n\n" +
		"\t--flag     \ta flag\n" +
		"\t--out ...  \toutput file\n" +
		"\n"
	assert.Equal(t, want, set.Help())
}

func TestHelp_NoOptions(t *testing.T) {
	set := ecli.NewOptionSet(ecli.WithIntro("nothing to see"))
	assert.Equal(t, "nothing to see\n\n\n", set.Help())
}

func TestPrintHelp(t *testing.T) {
	set, _, _, _ := greeterSet()

	var buf bytes.Buffer
	require.NoError(t, set.PrintHelp(&buf))
	assert.Equal(t, greeterHelp, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestPrintHelp_WriteError(t *testing.T) {
	set, _, _, _ := greeterSet()
	assert.Error(t, set.PrintHelp(failingWriter{}))
}
