package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/soocke/thermalprep/csvio"
	"github.com/soocke/thermalprep/fsutil"
)

// Info prints size, shape and temperature range for each file.
func Info(_ context.Context, env Env, args []string) error {
	cfg := env.Config
	fs := newFlagSet("info", env)
	raw := fs.Bool("raw", false, "inputs are raw camera exports")
	if err := parse(fs, args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return usageError("info needs at least one file")
	}
	opts := cfg.ProcessedOptions()
	if *raw {
		opts = cfg.RawOptions()
	}
	tw := tabwriter.NewWriter(env.out(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSIZE\tSHAPE\tMIN\tMEAN\tMAX")
	for _, path := range fs.Args() {
		fi := fsutil.Info(path)
		if !fi.Exists {
			fmt.Fprintf(tw, "%s\t%s\tmissing\t\t\t\n", fi.Name, fsutil.FormatSize(fi.Size))
			continue
		}
		m, err := csvio.ReadFile(path, opts)
		if err != nil {
			env.logger().Warn("unreadable file", "file", fi.Name, "error", err)
			fmt.Fprintf(tw, "%s\t%s\tunreadable\t\t\t\n", fi.Name, fsutil.FormatSize(fi.Size))
			continue
		}
		r, c := m.Dims()
		st := m.Stats()
		fmt.Fprintf(tw, "%s\t%s\t%dx%d\t%.2f\t%.2f\t%.2f\n", fi.Name, fsutil.FormatSize(fi.Size), r, c, st.Min, st.Mean, st.Max)
	}
	return tw.Flush()
}
