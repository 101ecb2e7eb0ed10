package pipeline

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/soocke/thermalprep/csvio"
)

var (
	// ErrNoFiles is returned when there is nothing to flatten.
	ErrNoFiles = errors.New("no input files")
	// ErrRagged is returned with RequireUniform when row lengths differ.
	ErrRagged = errors.New("flattened lengths differ")
)

// FlattenOptions configures FlattenFiles.
type FlattenOptions struct {
	// WithFilenames prefixes each row with the source file name.
	WithFilenames bool
	// RequireUniform rejects inputs whose shapes flatten to different lengths.
	RequireUniform bool
	Read           csvio.Options
	Precision      int
	Logger         *slog.Logger
}

// FlattenSummary records how one input was flattened.
type FlattenSummary struct {
	Name   string
	Rows   int
	Cols   int
	Length int
}

// FlattenDir flattens every file in dir matching pattern into out.
func FlattenDir(dir, pattern, out string, opts FlattenOptions) ([]FlattenSummary, error) {
	if pattern == "" {
		pattern = "*.csv"
	}
	files, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s matching %s", ErrNoFiles, dir, pattern)
	}
	return FlattenFiles(files, out, opts)
}

// FlattenFiles turns each input matrix into one row-major line of out.
// Unreadable inputs are logged and skipped; it fails only when none succeed.
func FlattenFiles(paths []string, out string, opts FlattenOptions) ([]FlattenSummary, error) {
	if len(paths) == 0 {
		return nil, ErrNoFiles
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	var (
		records [][]string
		summary []FlattenSummary
	)
	for i, p := range paths {
		name := filepath.Base(p)
		m, err := csvio.ReadFile(p, opts.Read)
		if err != nil {
			logger.Warn("skipping file", "n", i+1, "of", len(paths), "file", name, "error", err)
			continue
		}
		vals := m.Flatten()
		rec := make([]string, 0, len(vals)+1)
		if opts.WithFilenames {
			rec = append(rec, name)
		}
		for _, v := range vals {
			rec = append(rec, csvio.FormatValue(v, opts.Precision))
		}
		records = append(records, rec)
		rows, cols := m.Dims()
		summary = append(summary, FlattenSummary{Name: name, Rows: rows, Cols: cols, Length: len(vals)})
		logger.Debug("flattened file", "file", name, "rows", rows, "cols", cols)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: none of %d files could be read", ErrNoFiles, len(paths))
	}
	if opts.RequireUniform {
		for _, s := range summary[1:] {
			if s.Length != summary[0].Length {
				return summary, fmt.Errorf("%w: %s has %d values, %s has %d", ErrRagged, summary[0].Name, summary[0].Length, s.Name, s.Length)
			}
		}
	}
	f, err := os.Create(out)
	if err != nil {
		return nil, err
	}
	if err := csvio.WriteRecords(f, records, opts.Read.Delimiter); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.Close(); err != nil {
		return nil, err
	}
	logger.Info("flattened files", "output", out, "rows", len(records), "values", summary[0].Length)
	return summary, nil
}
