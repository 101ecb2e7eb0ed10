// Package csvio reads and writes temperature grids as delimited text with
// no header row and no index column.
package csvio

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/soocke/thermalprep/domain/thermal"
)

// Options controls how a file is parsed.
type Options struct {
	// SkipRows drops this many leading metadata lines (camera exports carry 10).
	SkipRows int
	// DropFirstColumn removes a leading index/label column.
	DropFirstColumn bool
	// Delimiter separates values; zero means comma.
	Delimiter rune
}

// Read parses a temperature grid. Every cell must be numeric.
func Read(r io.Reader, opts Options) (*thermal.Matrix, error) {
	br := bufio.NewReader(r)
	for i := 0; i < opts.SkipRows; i++ {
		if _, err := br.ReadString('\n'); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("file ended after %d of %d header lines", i, opts.SkipRows)
			}
			return nil, err
		}
	}
	cr := csv.NewReader(br)
	cr.Comma = delimiter(opts.Delimiter)
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.New("no data rows")
	}
	for i, rec := range records {
		if opts.DropFirstColumn {
			if len(rec) < 2 {
				return nil, fmt.Errorf("cannot drop first column of %d-column data", len(rec))
			}
			rec = rec[1:]
		}
		for j := range rec {
			rec[j] = strings.TrimSpace(rec[j])
		}
		records[i] = rec
	}
	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(false),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.Float),
	)
	if df.Err != nil {
		return nil, df.Err
	}
	col0 := 1
	if opts.DropFirstColumn {
		col0 = 2
	}
	rows, cols := df.Dims()
	data := make([]float64, 0, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			e := df.Elem(i, j)
			if e.IsNA() {
				return nil, fmt.Errorf("non-numeric value %q at row %d, column %d", records[i][j], i+1+opts.SkipRows, j+col0)
			}
			data = append(data, e.Float())
		}
	}
	return thermal.NewMatrix(rows, cols, data)
}

func delimiter(d rune) rune {
	if d == 0 {
		return ','
	}
	return d
}

// ReadFile opens path and parses it with Read. Failures are *thermal.IOError.
func ReadFile(path string, opts Options) (*thermal.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &thermal.IOError{Op: "load", Path: path, Err: err}
	}
	defer f.Close()
	m, err := Read(f, opts)
	if err != nil {
		return nil, &thermal.IOError{Op: "load", Path: path, Err: err}
	}
	return m, nil
}
