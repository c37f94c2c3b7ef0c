package shell

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/nameboard/internal/store"
	"github.com/Makepad-fr/nameboard/internal/ui"
	"github.com/Makepad-fr/nameboard/internal/viewmodel"
)

func run(t *testing.T, input string) (*store.Store, string) {
	t.Helper()
	ui.SetColorForcing(false, true)

	s := store.New(nil, store.DefaultSeed...)
	vm := viewmodel.New(s, nil)
	vm.Initialize()

	var out bytes.Buffer
	sh := New(vm, strings.NewReader(input), &out, nil, "Names")
	require.NoError(t, sh.Run(context.Background()))
	return s, out.String()
}

func TestScenario(t *testing.T) {
	s, _ := run(t, "add Ateneo\nrm 2\nedit 1 UP Diliman\n")
	require.Equal(t, []string{"UP Diliman", "Ateneo"}, s.List())
}

func TestEditPromptsForName(t *testing.T) {
	s, out := run(t, "edit 2\n  Ateneo  \nls\n")
	require.Equal(t, []string{"University of the Philippines", "Ateneo"}, s.List())
	require.Contains(t, out, "Edit name [UST]: ")
}

func TestEditPromptBlankAnswer(t *testing.T) {
	s, _ := run(t, "edit 1\n   \n")
	require.Equal(t, store.DefaultSeed, s.List())
}

func TestEditPromptEOF(t *testing.T) {
	s, _ := run(t, "edit 1\n")
	require.Equal(t, store.DefaultSeed, s.List())
}

func TestOutOfRangeRowsAreIgnored(t *testing.T) {
	s, out := run(t, "rm 9\nrm 0\nedit 5 X\n")
	require.Equal(t, store.DefaultSeed, s.List())
	require.NotContains(t, out, "✖")
}

func TestBlankAddIsNoop(t *testing.T) {
	s, out := run(t, "add    \n")
	require.Equal(t, 2, s.Len())
	require.Contains(t, out, "nothing to add")
}

func TestBadInput(t *testing.T) {
	s, out := run(t, "rm two\nedit\nfrobnicate\n")
	require.Equal(t, store.DefaultSeed, s.List())
	require.Contains(t, out, "rm: not a number: two")
	require.Contains(t, out, "usage: edit <row>")
	require.Contains(t, out, "unknown command: frobnicate")
}

func TestQuitStopsReading(t *testing.T) {
	s, _ := run(t, "quit\nadd Ateneo\n")
	require.Equal(t, 2, s.Len())
}

func TestLastLineWithoutNewline(t *testing.T) {
	s, _ := run(t, "add Ateneo")
	require.Equal(t, []string{"University of the Philippines", "UST", "Ateneo"}, s.List())
}

func TestCancelledContext(t *testing.T) {
	ui.SetColorForcing(false, true)
	s := store.New(nil, "a")
	vm := viewmodel.New(s, nil)
	vm.Initialize()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	require.NoError(t, New(vm, strings.NewReader("add b\n"), &out, nil, "Names").Run(ctx))
	require.Equal(t, []string{"a"}, s.List())
}

func TestHelp(t *testing.T) {
	_, out := run(t, "help\n")
	require.Contains(t, out, "edit <row> [name]")
}

// runPiped starts a session on a pipe and returns once Run has exited or the
// deadline passed.
func runPiped(t *testing.T, before string) (*store.Store, bool) {
	t.Helper()
	ui.SetColorForcing(false, true)
	s := store.New(nil, store.DefaultSeed...)
	vm := viewmodel.New(s, nil)
	vm.Initialize()

	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	var out bytes.Buffer
	go func() { done <- New(vm, pr, &out, nil, "Names").Run(ctx) }()

	if before != "" {
		_, err := pw.Write([]byte(before))
		require.NoError(t, err)
	}
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
		return s, true
	case <-time.After(time.Second):
		return s, false
	}
}

func TestCancelWhileWaitingForCommand(t *testing.T) {
	_, exited := runPiped(t, "")
	require.True(t, exited, "Run kept waiting for input after cancel")
}

func TestCancelWhileWaitingForEditAnswer(t *testing.T) {
	s, exited := runPiped(t, "edit 1\n")
	require.True(t, exited, "Run kept waiting for the edit answer after cancel")
	require.Equal(t, store.DefaultSeed, s.List())
}
