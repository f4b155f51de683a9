// Package wizard implements the interactive field-definition loop that
// builds an entity field specification from a sequence of prompts.
package wizard

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Prompter runs a sequential question/answer session over a reader and
// writer pair. Reads block until a line is available; end of input is
// treated as an empty answer.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
	eof bool
}

// NewPrompter creates a Prompter reading answers from in and writing
// prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Ask prints the prompt and reads one line. An empty answer returns def.
func (p *Prompter) Ask(prompt, def string) string {
	if def != "" {
		fmt.Fprintf(p.out, "%s [%s]: ", prompt, def)
	} else {
		fmt.Fprintf(p.out, "%s: ", prompt)
	}

	line, err := p.in.ReadString('\n')
	if err != nil {
		p.eof = true
		if line == "" {
			return def
		}
	}
	answer := strings.TrimSpace(line)
	if answer == "" {
		return def
	}
	return answer
}

// EOF reports whether the input has been exhausted. Once true, every
// further Ask can only return its default, so re-prompt loops must
// stop instead of retrying.
func (p *Prompter) EOF() bool { return p.eof }

// Confirm asks a yes/no question and returns the answer, falling back
// to def for anything that is not a clear yes or no.
func (p *Prompter) Confirm(prompt string, def bool) bool {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	answer := strings.ToLower(p.Ask(fmt.Sprintf("%s [%s]", prompt, hint), ""))
	switch answer {
	case "y", "yes":
		return true
	case "n", "no":
		return false
	default:
		return def
	}
}

// Say writes an informational line.
func (p *Prompter) Say(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Errorf writes a validation error. The session continues; errors here
// only trigger a re-prompt.
func (p *Prompter) Errorf(format string, args ...any) {
	fmt.Fprintln(p.out, color.New(color.FgRed).Sprintf(format, args...))
}
