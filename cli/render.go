package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/soocke/thermalprep/csvio"
	"github.com/soocke/thermalprep/domain/thermal"
	"github.com/soocke/thermalprep/render"
)

// Render draws a processed grid as a heatmap PNG, optionally with a
// histogram, a temperature profile or a side-by-side comparison.
func Render(_ context.Context, env Env, args []string) error {
	cfg := env.Config
	fs := newFlagSet("render", env)
	cmapName := fs.String("cmap", "viridis", "colormap: "+strings.Join(render.ColormapNames(), ", "))
	scale := fs.Int("scale", 8, "pixels per cell")
	hist := fs.String("hist", "", "write a histogram PNG to this path")
	bins := fs.Int("bins", 30, "histogram bins")
	profile := fs.String("profile", "", "write a profile PNG to this path")
	axis := fs.String("axis", "row", "profile direction: row or col")
	pos := fs.Int("pos", -1, "profile row or column, -1 for the middle")
	compare := fs.String("compare", "", "raw export the input was made from, shown alongside")
	raw := fs.Bool("raw", false, "input is a raw camera export")
	if err := parse(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return usageError("render needs an input CSV and an output PNG")
	}
	cmap, err := render.ColormapByName(*cmapName)
	if err != nil {
		return usageError("%v", err)
	}
	opts := cfg.ProcessedOptions()
	if *raw {
		opts = cfg.RawOptions()
	}
	m, err := csvio.ReadFile(fs.Arg(0), opts)
	if err != nil {
		return err
	}
	w := env.out()

	if *compare != "" {
		orig, err := csvio.ReadFile(*compare, cfg.RawOptions())
		if err != nil {
			return err
		}
		if err := render.SavePNG(render.Enlarge(render.Compare(orig, m, cmap), *scale), fs.Arg(1)); err != nil {
			return err
		}
	} else {
		st := m.Stats()
		img := render.Heatmap(m, cmap, st.Min, st.Max)
		if err := render.SavePNG(render.Enlarge(img, *scale), fs.Arg(1)); err != nil {
			return err
		}
	}
	fmt.Fprintf(w, "heatmap: %s\n", fs.Arg(1))

	title := fs.Arg(0)
	if *hist != "" {
		if err := writeChart(*hist, func(f *os.File) error { return render.Histogram(m, *bins, title, f) }); err != nil {
			return err
		}
		fmt.Fprintf(w, "histogram: %s\n", *hist)
	}
	if *profile != "" {
		a := render.Horizontal
		switch strings.ToLower(*axis) {
		case "row", "h", "horizontal":
		case "col", "column", "v", "vertical":
			a = render.Vertical
		default:
			return usageError("unknown axis %q", *axis)
		}
		if err := writeChart(*profile, func(f *os.File) error { return render.Profile(m, a, *pos, title, f) }); err != nil {
			return err
		}
		fmt.Fprintf(w, "profile: %s\n", *profile)
	}
	return nil
}

func writeChart(path string, draw func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return &thermal.IOError{Op: "save", Path: path, Err: err}
	}
	if err := draw(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
