package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/soocke/thermalprep/app"
	"github.com/soocke/thermalprep/cli"
	"github.com/soocke/thermalprep/config"
	"github.com/soocke/thermalprep/debug"
)

const usage = `usage: thermalprep [-config path] [-debug] [-log-level level] <command> [args]

commands:
  edit [-out file.csv] [file.csv]        polygon fill editor (embedded sample without a file)
  batch -src dir -dst dir [options]      crop and downsample raw camera exports
  flatten -out file.csv [-names] dir|files...
                                         one row per grid, for FEA input
  render [options] in.csv out.png        heatmap, histogram and profile images
  info [-raw] file...                    size, shape and temperature range
`

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	global := flag.NewFlagSet("thermalprep", flag.ContinueOnError)
	global.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	cfgPath := global.String("config", config.DefaultPath(), "config file")
	debugOn := global.Bool("debug", false, "log runtime stats")
	level := global.String("log-level", "", "debug, info, warn or error")
	if err := global.Parse(args); err != nil {
		return 2
	}

	// Base config from file, then flags
	cfg, err := config.Load(*cfgPath)
	logger := NewLogger(parseLevel(cfg.LogLevel))
	if err != nil {
		logger.Warn("config load failed, using defaults", "path", *cfgPath, "error", err)
	}
	if *level != "" {
		cfg.LogLevel = *level
		logger = NewLogger(parseLevel(cfg.LogLevel))
	}
	cfg.Debug = cfg.Debug || *debugOn

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if cfg.Debug {
		debug.StartRuntimeLogger(ctx, 5*time.Second, logger)
	}

	if global.NArg() == 0 {
		global.Usage()
		return 2
	}
	name, rest := global.Arg(0), global.Args()[1:]
	if name == "edit" {
		return edit(cfg, *cfgPath, rest, logger)
	}
	cmd, ok := cli.Commands[name]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", name)
		global.Usage()
		return 2
	}
	env := cli.Env{Config: cfg, Logger: logger, Stdout: os.Stdout, Stderr: os.Stderr}
	if err := cmd(ctx, env, rest); err != nil {
		switch {
		case errors.Is(err, flag.ErrHelp):
			return 0
		case errors.Is(err, cli.ErrUsage):
			fmt.Fprintln(os.Stderr, err)
			return 2
		}
		logger.Error(name+" failed", "error", err)
		return 1
	}
	return 0
}

func edit(cfg *config.Config, cfgPath string, args []string, logger *slog.Logger) int {
	fs := flag.NewFlagSet("edit", flag.ContinueOnError)
	out := fs.String("out", "", "where Save writes (default <name>_damaged.csv next to the input)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "edit takes at most one file")
		return 2
	}
	window := app.NewWindow("Thermal Editor", cfg, cfgPath, fs.Arg(0), *out, logger)
	window.Start()
	return 0
}
