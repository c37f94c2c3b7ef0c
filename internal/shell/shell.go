// Package shell is a line-oriented front end over a view-model. It is the
// plain-terminal counterpart of the TUI: one command per line, and edit asks
// for the replacement with a blocking prompt.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/Makepad-fr/nameboard/internal/errs"
	"github.com/Makepad-fr/nameboard/internal/ui"
	"github.com/Makepad-fr/nameboard/internal/viewmodel"
)

const prompt = "nameboard> "

type Shell struct {
	vm    *viewmodel.ViewModel
	in    *bufio.Reader
	out   io.Writer
	log   *slog.Logger
	title string
	lines <-chan lineResult
}

type lineResult struct {
	line string
	err  error
}

func New(vm *viewmodel.ViewModel, in io.Reader, out io.Writer, log *slog.Logger, title string) *Shell {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Shell{
		vm:    vm,
		in:    bufio.NewReader(in),
		out:   out,
		log:   log,
		title: title,
	}
}

// Run reads commands until EOF, quit, or ctx is done. Cancelling ctx ends
// the session even while a read (including an edit prompt) is pending.
func (s *Shell) Run(ctx context.Context) error {
	s.lines = s.readLines(ctx)
	ui.RenderList(s.out, s.title, s.vm.Items())
	for {
		fmt.Fprint(s.out, prompt)
		line, err := s.readLine(ctx)
		if ctx.Err() != nil {
			fmt.Fprintln(s.out)
			return nil
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read command: %w", err)
		}
		if strings.TrimSpace(line) != "" {
			if quit := s.exec(ctx, line); quit {
				return nil
			}
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out)
			return nil
		}
	}
}

// readLines feeds input lines to the session from its own goroutine, so a
// blocked read never holds up cancellation. It stops after the first error.
func (s *Shell) readLines(ctx context.Context) <-chan lineResult {
	ch := make(chan lineResult)
	go func() {
		defer close(ch)
		for {
			line, err := s.in.ReadString('\n')
			select {
			case ch <- lineResult{line: line, err: err}:
			case <-ctx.Done():
				return
			}
			if err != nil {
				return
			}
		}
	}()
	return ch
}

func (s *Shell) readLine(ctx context.Context) (string, error) {
	select {
	case r, ok := <-s.lines:
		if !ok {
			return "", io.EOF
		}
		return r.line, r.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// exec runs one command line. It reports whether the session should end.
func (s *Shell) exec(ctx context.Context, line string) (quit bool) {
	line = strings.TrimSpace(line)
	cmd, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)
	s.log.Debug("command", "cmd", cmd)

	switch strings.ToLower(cmd) {
	case "quit", "exit", "q":
		return true

	case "help", "?":
		PrintHelp(s.out)

	case "ls", "list":
		ui.RenderList(s.out, s.title, s.vm.Items())

	case "add":
		s.vm.SetPending(rest)
		if !s.vm.SubmitNew() {
			ui.Hint(s.out, "nothing to add")
			return false
		}
		ui.OK(s.out, "added")

	case "rm":
		n, ok := s.index("rm", rest)
		if !ok {
			return false
		}
		s.vm.RemoveAt(n)
		ui.RenderList(s.out, s.title, s.vm.Items())

	case "edit":
		num, name, _ := strings.Cut(rest, " ")
		n, ok := s.index("edit", num)
		if !ok {
			return false
		}
		var p viewmodel.Prompter = &viewmodel.LinePrompter{
			Next: func() (string, error) { return s.readLine(ctx) },
			Out:  s.out,
		}
		if name = strings.TrimSpace(name); name != "" {
			p = viewmodel.PromptFunc(func(string) (string, bool) { return name, true })
		}
		s.vm.EditAt(n, p)
		if ctx.Err() != nil {
			return true
		}
		ui.RenderList(s.out, s.title, s.vm.Items())

	default:
		ui.Fail(s.out, fmt.Sprintf("%v: %s", errs.ErrUnknownCommand, cmd))
		ui.Hint(s.out, "Hint: type `help` to see commands")
	}
	return false
}

// index parses a 1-based row number into a 0-based index. Range is not
// checked here; the store ignores rows that do not exist.
func (s *Shell) index(cmd, arg string) (int, bool) {
	if arg == "" {
		ui.Fail(s.out, fmt.Sprintf("usage: %s <row>", cmd))
		return 0, false
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		ui.Fail(s.out, fmt.Sprintf("%s: %v: %s", cmd, errs.ErrNotANumber, arg))
		return 0, false
	}
	return n - 1, true
}

func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `Commands:
  ls                 List names
  add <name...>      Add a name at the end
  edit <row> [name]  Replace the name at a 1-based row (asks when name is omitted)
  rm <row>           Remove the name at a 1-based row
  help               Show this help
  quit               Leave the shell
`)
}
