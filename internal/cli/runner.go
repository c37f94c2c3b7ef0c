package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Makepad-fr/nameboard/internal/app"
	"github.com/Makepad-fr/nameboard/internal/config"
	"github.com/Makepad-fr/nameboard/internal/errs"
	"github.com/Makepad-fr/nameboard/internal/shell"
	"github.com/Makepad-fr/nameboard/internal/store"
	"github.com/Makepad-fr/nameboard/internal/tui"
	"github.com/Makepad-fr/nameboard/internal/ui"
	"github.com/Makepad-fr/nameboard/internal/viewmodel"
)

const title = "Names"

// Options carry root flags and the process streams.
// Empty string fields leave the loaded config untouched.
type Options struct {
	ConfigPath string
	Theme      string
	LogLevel   string
	NoColor    bool

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func (o *Options) defaults() {
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
// No subcommand starts the TUI.
func Run(args []string, opt Options) int {
	opt.defaults()

	cmd := "tui"
	if len(args) > 0 {
		cmd = args[0]
	}
	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.Stdout)
		return 0
	case "tui", "shell", "ls", "demo":
	default:
		ui.Fail(opt.Stderr, fmt.Sprintf("%v: %s", errs.ErrUnknownCommand, cmd))
		fmt.Fprintln(opt.Stderr)
		PrintHelp(opt.Stderr)
		return 2
	}
	if len(args) > 1 {
		ui.Fail(opt.Stderr, fmt.Sprintf("usage: nameboard %s", cmd))
		return 2
	}

	cfg, err := loadConfig(opt)
	if err != nil {
		ui.Fail(opt.Stderr, "config: "+err.Error())
		return 1
	}
	// the TUI owns the terminal, so its logs go nowhere unless log.file is set
	var fallback io.Writer = opt.Stderr
	if cmd == "tui" {
		fallback = io.Discard
	}
	log, closer, err := app.NewLogger(cfg.Log, fallback)
	if err != nil {
		ui.Fail(opt.Stderr, "log: "+err.Error())
		return 1
	}
	defer closer.Close()
	c := app.NewContainer(cfg, log)
	applyUI(c.Config().UI)
	log = c.Logger()
	log.Debug("starting", "cmd", cmd, "theme", cfg.UI.Theme, "seed", len(cfg.Seed))

	switch cmd {
	case "ls":
		ui.RenderList(opt.Stdout, title, c.Store().List())
		return 0

	case "demo":
		return doDemo(opt.Stdout, log)

	case "shell":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := shell.New(c.NewViewModel(), opt.Stdin, opt.Stdout, log, title).Run(ctx); err != nil {
			ui.Fail(opt.Stderr, "shell: "+err.Error())
			return 1
		}
		return 0
	}

	if err := tui.Run(c.NewViewModel(), log, title); err != nil {
		ui.Fail(opt.Stderr, "tui: "+err.Error())
		return 1
	}
	return 0
}

// applyUI sets the palette for the plain-text helpers and the TUI's styles.
// mono and no_color both mean no escape sequences on either surface.
func applyUI(cfg config.UIConfig) {
	ui.SetTheme(cfg.Theme)
	ui.SetColorForcing(false, cfg.NoColor)
	if cfg.NoColor || cfg.Theme == "mono" {
		tui.SetNoColor()
	}
}

func loadConfig(opt Options) (config.Config, error) {
	cfg, err := config.Load(opt.ConfigPath)
	if err != nil {
		return config.Config{}, err
	}
	if opt.Theme != "" {
		cfg.UI.Theme = strings.ToLower(opt.Theme)
	}
	if opt.LogLevel != "" {
		cfg.Log.Level = strings.ToLower(opt.LogLevel)
	}
	if opt.NoColor {
		cfg.UI.NoColor = true
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `nameboard - keep an ordered list of names

Usage:
  nameboard [flags] [subcommand]

Subcommands:
  tui      Interactive form and table (default)
  shell    Line-by-line session: ls, add, edit, rm
  ls       Print the seed list and exit
  demo     Walk through add, remove and edit on the default seed
  help     Show this help

Flags:
  -config <path>      Config file (also NAMEBOARD_CONFIG)
  -theme <name>       classic | neon | mono
  -log-level <level>  debug | info | warn | error
  -no-color           Disable colors

Nothing is saved: every run starts from the configured seed.
`)
}

// -------------- demo ----------------

// doDemo replays a fixed walkthrough on its own container, seeded with the
// default names regardless of config.
func doDemo(w io.Writer, log *slog.Logger) int {
	c := app.NewContainer(config.Config{Seed: store.DefaultSeed}, log)
	vm := c.NewViewModel()

	step := func(label string) {
		fmt.Fprintln(w, ui.C(ui.Current().Accent, label))
		ui.RenderList(w, title, vm.Items())
	}

	step("seed")
	vm.SetPending("Ateneo")
	vm.SubmitNew()
	step(`add "Ateneo"`)
	vm.RemoveAt(1)
	step("remove row 2")
	vm.EditAt(0, viewmodel.PromptFunc(func(string) (string, bool) { return "UP Diliman", true }))
	step(`edit row 1 -> "UP Diliman"`)
	vm.EditAt(5, viewmodel.PromptFunc(func(string) (string, bool) { return "X", true }))
	step("edit row 6 (no such row, ignored)")
	return 0
}
