package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Makepad-fr/nameboard/internal/cli"
)

func main() {
	// Root flags (apply to every subcommand)
	configPath := flag.String("config", "", "config file path")
	theme := flag.String("theme", "", "color theme: classic, neon or mono")
	logLevel := flag.String("log-level", "", "log level: debug, info, warn or error")
	noColor := flag.Bool("no-color", false, "disable colors")
	flag.Usage = func() { cli.PrintHelp(os.Stderr) }
	flag.Parse()

	code := cli.Run(flag.Args(), cli.Options{
		ConfigPath: *configPath,
		Theme:      *theme,
		LogLevel:   *logLevel,
		NoColor:    *noColor,
	})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
