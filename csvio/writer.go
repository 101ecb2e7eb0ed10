package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/soocke/thermalprep/domain/thermal"
)

// FormatValue renders v with a fixed number of decimals, or with the
// shortest exact representation when precision is negative.
func FormatValue(v float64, precision int) string {
	if precision < 0 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// Write emits m one line per row, no header and no index. A zero delim
// means comma.
func Write(w io.Writer, m *thermal.Matrix, precision int, delim rune) error {
	rows, cols := m.Dims()
	if rows == 0 || cols == 0 {
		return fmt.Errorf("nothing to write")
	}
	records := make([][]string, rows)
	for i := 0; i < rows; i++ {
		rec := make([]string, cols)
		for j := 0; j < cols; j++ {
			rec[j] = FormatValue(m.At(i, j), precision)
		}
		records[i] = rec
	}
	return WriteRecords(w, records, delim)
}

// WriteRecords writes pre-formatted rows. Short rows are padded with empty
// cells so that every line has the same number of fields.
func WriteRecords(w io.Writer, records [][]string, delim rune) error {
	if len(records) == 0 {
		return fmt.Errorf("nothing to write")
	}
	width := 0
	for _, r := range records {
		if len(r) > width {
			width = len(r)
		}
	}
	padded := make([][]string, len(records))
	for i, r := range records {
		if len(r) == width {
			padded[i] = r
			continue
		}
		p := make([]string, width)
		copy(p, r)
		padded[i] = p
	}
	df := dataframe.LoadRecords(padded,
		dataframe.HasHeader(false),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return df.Err
	}
	// Records leads with the generated column names.
	cw := csv.NewWriter(w)
	cw.Comma = delimiter(delim)
	return cw.WriteAll(df.Records()[1:])
}

// WriteFile creates path and writes m into it. Failures are *thermal.IOError.
func WriteFile(path string, m *thermal.Matrix, precision int, delim rune) error {
	f, err := os.Create(path)
	if err != nil {
		return &thermal.IOError{Op: "save", Path: path, Err: err}
	}
	if err := Write(f, m, precision, delim); err != nil {
		f.Close()
		return &thermal.IOError{Op: "save", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &thermal.IOError{Op: "save", Path: path, Err: err}
	}
	return nil
}
