package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/soocke/thermalprep/config"
	"github.com/soocke/thermalprep/pipeline"
)

// Batch crops and downsamples every raw export in -src into -dst.
func Batch(ctx context.Context, env Env, args []string) error {
	cfg := *env.Config
	fs := newFlagSet("batch", env)
	src := fs.String("src", "", "directory with raw camera exports")
	dst := fs.String("dst", "", "output directory")
	fs.StringVar(&cfg.FilePattern, "pattern", cfg.FilePattern, "glob for input files")
	fs.StringVar(&cfg.FileSuffix, "suffix", cfg.FileSuffix, "suffix added to output names")
	fs.StringVar(&cfg.DownsampleMethod, "method", cfg.DownsampleMethod, "nearest, linear or cubic")
	fs.IntVar(&cfg.OutputRows, "rows", cfg.OutputRows, "output rows (0 skips downsampling)")
	fs.IntVar(&cfg.OutputCols, "cols", cfg.OutputCols, "output columns (0 skips downsampling)")
	fs.IntVar(&cfg.SkipRows, "skip", cfg.SkipRows, "metadata lines before the grid")
	fs.IntVar(&cfg.Precision, "precision", cfg.Precision, "decimals written, -1 for full precision")
	crop := fs.String("crop", "", "startRow,endRow,startCol,endCol; 0 ends mean to the edge, \"none\" disables")
	if err := parse(fs, args); err != nil {
		return err
	}
	if *src == "" || *dst == "" {
		return usageError("batch needs -src and -dst")
	}
	if *crop != "" {
		if err := parseCrop(*crop, &cfg); err != nil {
			return usageError("%v", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return usageError("%v", err)
	}

	history := &pipeline.History{}
	written, err := pipeline.BatchProcess(ctx, pipeline.BatchOptions{
		SourceDir: *src,
		DestDir:   *dst,
		Pattern:   cfg.FilePattern,
		Read:      cfg.RawOptions(),
		Crop:      cfg.Crop(),
		Size:      cfg.OutputSize(),
		Method:    pipeline.ParseMethod(cfg.DownsampleMethod),
		Suffix:    cfg.FileSuffix,
		Precision: cfg.Precision,
		Logger:    env.logger(),
		History:   history,
	})
	for _, e := range history.Entries() {
		env.logger().Debug("history", "entry", e)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(env.out(), "processed %d files into %s\n", len(written), *dst)
	return nil
}

func parseCrop(s string, cfg *config.Config) error {
	if strings.EqualFold(s, "none") {
		cfg.CropStartRow, cfg.CropEndRow, cfg.CropStartCol, cfg.CropEndCol = 0, 0, 0, 0
		return nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return fmt.Errorf("crop wants 4 comma separated values, got %q", s)
	}
	var v [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 {
			return fmt.Errorf("invalid crop value %q", p)
		}
		v[i] = n
	}
	cfg.CropStartRow, cfg.CropEndRow, cfg.CropStartCol, cfg.CropEndCol = v[0], v[1], v[2], v[3]
	return nil
}
