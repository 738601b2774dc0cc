package prompt

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator(input string) (*Validator, *bytes.Buffer) {
	var out bytes.Buffer
	return NewValidator(strings.NewReader(input), &out), &out
}

func TestRule_Match(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		input   string
		want    bool
	}{
		{name: "empty selects default", pattern: `$|(?:P|D)`, input: "", want: true},
		{name: "prefix p", pattern: `$|(?:P|D)`, input: "pickup", want: true},
		{name: "upper D", pattern: `$|(?:P|D)`, input: "Delivery", want: true},
		{name: "other letter", pattern: `$|(?:P|D)`, input: "x", want: false},
		{name: "letters only", pattern: `[A-Z]+$`, input: "Alice", want: true},
		{name: "name with digit", pattern: `[A-Z]+$`, input: "Al1ce", want: false},
		{name: "name with space", pattern: `[A-Z]+$`, input: "Al Ice", want: false},
		{name: "empty name", pattern: `[A-Z]+$`, input: "", want: false},
		{name: "single digit", pattern: `\d$`, input: "3", want: true},
		{name: "two digits for count", pattern: `\d$`, input: "12", want: false},
		{name: "two digit selection", pattern: `\d\d?$`, input: "12", want: true},
		{name: "three digit selection", pattern: `\d\d?$`, input: "123", want: false},
		{name: "address", pattern: `[\w /-]+$`, input: "12/3 Queen St-West", want: true},
		{name: "address with comma", pattern: `[\w /-]+$`, input: "1, Queen St", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MustRule(tt.pattern).Match(tt.input))
		})
	}
}

func TestNewRule_InvalidPattern(t *testing.T) {
	_, err := NewRule(`(`)
	assert.Error(t, err)
	assert.Panics(t, func() { MustRule(`(`) })
}

func TestRequest_ReturnsFirstMatchVerbatim(t *testing.T) {
	v, out := newValidator("12\nAlice\n")

	got := v.Request(MustRule(`[A-Z]+$`), "Name:", "letters only")

	require.True(t, got.Matched())
	assert.Equal(t, "Alice", got.Value)
	assert.Equal(t, "Name:letters only\nName:", out.String())
}

func TestRequest_SilentRetryWithoutErrorText(t *testing.T) {
	v, out := newValidator("x\ny\n3\n")

	got := v.Request(MustRule(`\d$`), "> ", "")

	assert.Equal(t, Outcome{Value: "3"}, got)
	assert.Equal(t, "> > > ", out.String())
}

func TestRequest_EmptyLineMatchesWhenRuleAllows(t *testing.T) {
	v, _ := newValidator("\n")
	got := v.Request(MustRule(`$|(?:Y|N).*`), "?", "")
	assert.Equal(t, Outcome{Value: ""}, got)
}

func TestRequest_ControlTokens(t *testing.T) {
	tests := []struct {
		input string
		want  Signal
	}{
		{input: "qq", want: Quit},
		{input: "QQ", want: Quit},
		{input: "quit", want: Quit},
		{input: "Quit", want: Quit},
		{input: "cc", want: Cancel},
		{input: "CC", want: Cancel},
		{input: "cancel", want: Cancel},
		{input: "CANCEL", want: Cancel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, _ := newValidator(tt.input + "\n")
			// The rule accepts every token as a name; control tokens still win.
			got := v.Request(MustRule(`[A-Z]+$`), "Name:", "")
			assert.Equal(t, tt.want, got.Signal)
			assert.False(t, got.Matched())
			assert.Empty(t, got.Value)
		})
	}
}

func TestRequest_TokensAreWholeLineOnly(t *testing.T) {
	v, _ := newValidator("quitter\n")
	got := v.Request(MustRule(`[A-Z]+$`), "", "")
	assert.Equal(t, Outcome{Value: "quitter"}, got)
}

func TestRequest_EndOfInputIsQuit(t *testing.T) {
	v, _ := newValidator("nope\n")
	got := v.Request(MustRule(`\d$`), "", "")
	assert.Equal(t, Quit, got.Signal)
	assert.NoError(t, v.Err())
}

func TestRequest_StripsCarriageReturn(t *testing.T) {
	v, _ := newValidator("4\r\n")
	got := v.Request(MustRule(`\d$`), "", "")
	assert.Equal(t, "4", got.Value)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("tty gone") }

func TestRequest_ReadErrorIsQuitAndRecorded(t *testing.T) {
	v := NewValidator(failingReader{}, io.Discard)

	got := v.Request(MustRule(`\d$`), "", "")

	assert.Equal(t, Quit, got.Signal)
	require.Error(t, v.Err())
	assert.Contains(t, v.Err().Error(), "tty gone")
}

func TestRequest_LongLineIsAccepted(t *testing.T) {
	name := strings.Repeat("a", 70000)
	v, _ := newValidator(name + "\n")

	got := v.Request(MustRule(`[A-Z]+$`), "Name:", "letters only")

	assert.Equal(t, None, got.Signal)
	assert.Len(t, got.Value, 70000)
	assert.NoError(t, v.Err())
}

func TestRequest_LongLineIsRejectedThenRetried(t *testing.T) {
	v, out := newValidator(strings.Repeat("9", 70000) + "\n4\n")

	got := v.Request(MustRule(`\d$`), "Count:", "one digit")

	assert.Equal(t, "4", got.Value)
	assert.Equal(t, 1, strings.Count(out.String(), "one digit"))
	assert.NoError(t, v.Err())
}

func TestRequest_LastLineWithoutNewline(t *testing.T) {
	v, _ := newValidator("7")

	assert.Equal(t, "7", v.Request(MustRule(`\d$`), "", "").Value)
	assert.Equal(t, Quit, v.Request(MustRule(`\d$`), "", "").Signal)
	assert.NoError(t, v.Err())
}

func TestSignal_String(t *testing.T) {
	assert.Equal(t, "none", None.String())
	assert.Equal(t, "cancel", Cancel.String())
	assert.Equal(t, "quit", Quit.String())
	assert.Equal(t, "signal(9)", Signal(9).String())
}
