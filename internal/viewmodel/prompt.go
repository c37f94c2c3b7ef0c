package viewmodel

import (
	"fmt"
	"io"
	"strings"
)

// Prompter asks the user for a replacement of current.
// ok is false when the user gave no answer at all (EOF, cancel).
type Prompter interface {
	Prompt(current string) (answer string, ok bool)
}

// PromptFunc adapts a plain function to Prompter.
type PromptFunc func(current string) (string, bool)

func (f PromptFunc) Prompt(current string) (string, bool) { return f(current) }

// LinePrompter prints a prompt to Out and takes the answer from Next,
// which returns one line of input (newline included or not).
type LinePrompter struct {
	Next func() (string, error)
	Out  io.Writer
}

func (p *LinePrompter) Prompt(current string) (string, bool) {
	fmt.Fprintf(p.Out, "Edit name [%s]: ", current)
	line, err := p.Next()
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimRight(line, "\r\n"), true
}
