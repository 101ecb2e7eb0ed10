// Package cli implements the non-interactive thermalprep commands. Each
// command parses its own flag set so that it can be driven from tests.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/soocke/thermalprep/config"
)

// ErrUsage marks bad command-line input; main exits with status 2.
var ErrUsage = errors.New("usage")

// Env carries what every command needs.
type Env struct {
	Config *config.Config
	Logger *slog.Logger
	Stdout io.Writer
	Stderr io.Writer
}

// Command runs one subcommand with its arguments.
type Command func(ctx context.Context, env Env, args []string) error

// Commands lists the batch-mode subcommands by name.
var Commands = map[string]Command{
	"batch":   Batch,
	"flatten": Flatten,
	"render":  Render,
	"info":    Info,
}

func newFlagSet(name string, env Env) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	if env.Stderr != nil {
		fs.SetOutput(env.Stderr)
	} else {
		fs.SetOutput(io.Discard)
	}
	return fs
}

func usageError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUsage, fmt.Sprintf(format, args...))
}

func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return nil
}

func (e Env) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return e.Logger
}

func (e Env) out() io.Writer {
	if e.Stdout == nil {
		return io.Discard
	}
	return e.Stdout
}
