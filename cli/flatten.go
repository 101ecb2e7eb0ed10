package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/soocke/thermalprep/pipeline"
)

// Flatten writes each processed grid as one row of -out. A single
// directory argument is scanned with -pattern, otherwise the arguments are
// the files themselves.
func Flatten(_ context.Context, env Env, args []string) error {
	cfg := env.Config
	fs := newFlagSet("flatten", env)
	out := fs.String("out", "", "output CSV")
	names := fs.Bool("names", false, "prefix rows with the source file name")
	uniform := fs.Bool("uniform", false, "fail when inputs have different sizes")
	pattern := fs.String("pattern", cfg.FilePattern, "glob used when the argument is a directory")
	if err := parse(fs, args); err != nil {
		return err
	}
	if *out == "" || fs.NArg() == 0 {
		return usageError("flatten needs -out and a directory or files")
	}
	opts := pipeline.FlattenOptions{
		WithFilenames:  *names,
		RequireUniform: *uniform,
		Read:           cfg.ProcessedOptions(),
		Precision:      cfg.Precision,
		Logger:         env.logger(),
	}

	var (
		sum []pipeline.FlattenSummary
		err error
	)
	if fs.NArg() == 1 && isDir(fs.Arg(0)) {
		sum, err = pipeline.FlattenDir(fs.Arg(0), *pattern, *out, opts)
	} else {
		sum, err = pipeline.FlattenFiles(fs.Args(), *out, opts)
	}
	if err != nil {
		return err
	}
	w := env.out()
	for _, s := range sum {
		fmt.Fprintf(w, "%s\t%dx%d\t%d values\n", s.Name, s.Rows, s.Cols, s.Length)
	}
	fmt.Fprintf(w, "wrote %d rows to %s\n", len(sum), *out)
	return nil
}

func isDir(path string) bool {
	st, err := os.Stat(path)
	return err == nil && st.IsDir()
}
