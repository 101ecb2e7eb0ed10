package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/soocke/thermalprep/csvio"
	"github.com/soocke/thermalprep/fsutil"
)

// BatchOptions configures BatchProcess.
type BatchOptions struct {
	SourceDir string
	DestDir   string
	Pattern   string // glob relative to SourceDir, default "*.csv"
	Read      csvio.Options
	Crop      CropParams
	Size      Size // zero skips downsampling
	Method    Method
	Suffix    string // default "processed"
	Precision int
	Logger    *slog.Logger
	History   *History
}

// BatchProcess loads every matching file, applies crop and downsample, and
// writes the result into DestDir. A file that fails is logged and skipped.
// It returns the paths written, in source order.
func BatchProcess(ctx context.Context, opts BatchOptions) ([]string, error) {
	pattern := opts.Pattern
	if pattern == "" {
		pattern = "*.csv"
	}
	files, err := filepath.Glob(filepath.Join(opts.SourceDir, pattern))
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", opts.SourceDir, err)
	}
	if _, err := fsutil.EnsureDir(opts.DestDir); err != nil {
		return nil, fmt.Errorf("creating %s: %w", opts.DestDir, err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	p := New(opts.Crop, opts.Size, opts.Method)

	var written []string
	for i, src := range files {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		out := filepath.Join(opts.DestDir, batchName(src, opts.Suffix, opts.Size))
		if err := processOne(src, out, p, opts); err != nil {
			logger.Error("processing failed", "file", filepath.Base(src), "error", err)
			continue
		}
		logger.Info("processed file", "n", i+1, "of", len(files), "src", filepath.Base(src), "dst", out)
		written = append(written, out)
	}
	logger.Info("batch finished", "processed", len(written), "found", len(files))
	return written, nil
}

func processOne(src, dst string, p Pipeline, opts BatchOptions) error {
	m, err := csvio.ReadFile(src, opts.Read)
	if err != nil {
		return err
	}
	opts.History.Add("Loaded %s", src)
	res, err := p.Run(m, opts.History)
	if err != nil {
		return err
	}
	if err := csvio.WriteFile(dst, res, opts.Precision, opts.Read.Delimiter); err != nil {
		return err
	}
	opts.History.Add("Saved to %s", dst)
	return nil
}
