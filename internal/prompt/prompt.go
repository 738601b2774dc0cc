// Package prompt reads validated lines from a console.
//
// Every read is checked for the control tokens before it is matched against a
// rule: "qq"/"quit" end the session and "cc"/"cancel" abandon the order being
// entered. Both are reported as a Signal on the returned Outcome.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Signal tells the caller whether a prompt was answered or interrupted.
type Signal int

const (
	// None means the input matched the rule.
	None Signal = iota
	// Cancel abandons the order being assembled.
	Cancel
	// Quit ends the session.
	Quit
)

func (s Signal) String() string {
	switch s {
	case None:
		return "none"
	case Cancel:
		return "cancel"
	case Quit:
		return "quit"
	default:
		return fmt.Sprintf("signal(%d)", int(s))
	}
}

// Outcome is the result of one Request.
type Outcome struct {
	Value  string
	Signal Signal
}

// Matched reports whether the outcome carries accepted input.
func (o Outcome) Matched() bool {
	return o.Signal == None
}

// Rule is a pattern anchored at the start of the input. The pattern itself
// decides whether the end is anchored too, e.g. `\d$` or `(?:Y|N).*`.
type Rule struct {
	re *regexp.Regexp
}

// NewRule compiles a case-insensitive rule.
func NewRule(pattern string) (Rule, error) {
	re, err := regexp.Compile(`(?i)^(?:` + pattern + `)`)
	if err != nil {
		return Rule{}, fmt.Errorf("compile rule %q: %w", pattern, err)
	}
	return Rule{re: re}, nil
}

// MustRule is NewRule for patterns known at compile time.
func MustRule(pattern string) Rule {
	r, err := NewRule(pattern)
	if err != nil {
		panic(err)
	}
	return r
}

// Match reports whether s satisfies the rule.
func (r Rule) Match(s string) bool {
	return r.re.MatchString(s)
}

// Validator prompts on out and reads answers from in.
type Validator struct {
	reader *bufio.Reader
	out    io.Writer
	err    error
}

func NewValidator(in io.Reader, out io.Writer) *Validator {
	return &Validator{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Request writes promptText and reads lines until one matches rule or a
// control token is entered. errorText, when not empty, is written after each
// rejected line. End of input is reported as Quit.
func (v *Validator) Request(rule Rule, promptText, errorText string) Outcome {
	for {
		line, ok := v.readLine(promptText)
		if !ok {
			return Outcome{Signal: Quit}
		}

		if sig := controlSignal(line); sig != None {
			return Outcome{Signal: sig}
		}

		if rule.Match(line) {
			return Outcome{Value: line}
		}

		if errorText != "" {
			v.Println(errorText)
		}
	}
}

// Println writes a line to the console.
func (v *Validator) Println(a ...any) {
	fmt.Fprintln(v.out, a...)
}

// Print writes text to the console as is.
func (v *Validator) Print(text string) {
	io.WriteString(v.out, text)
}

// Err returns the read error that ended input, if any. A clean end of input
// is not an error.
func (v *Validator) Err() error {
	return v.err
}

func (v *Validator) readLine(promptText string) (string, bool) {
	v.Print(promptText)
	// Lines of any length are read whole.
	line, err := v.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			v.err = fmt.Errorf("read input: %w", err)
			return "", false
		}
		if line == "" {
			return "", false
		}
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), true
}

func controlSignal(line string) Signal {
	switch strings.ToLower(line) {
	case "qq", "quit":
		return Quit
	case "cc", "cancel":
		return Cancel
	default:
		return None
	}
}
