// Package thermal holds the temperature grid shared by the editor and the
// batch tools, together with the error kinds both of them report.
package thermal

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Matrix is a rows x cols grid of temperature readings in degrees Celsius.
// Its shape is fixed at construction; Set and the editor's fill only change values.
type Matrix struct {
	d *mat.Dense
}

// Stats summarises a set of temperatures.
type Stats struct {
	Min  float64
	Mean float64
	Max  float64
}

// NewMatrix returns a rows x cols matrix backed by data in row-major order.
// A nil data slice yields an all-zero matrix. The slice is copied.
func NewMatrix(rows, cols int, data []float64) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("invalid matrix shape %dx%d", rows, cols)
	}
	if data != nil && len(data) != rows*cols {
		return nil, fmt.Errorf("matrix data has %d values, want %d for %dx%d", len(data), rows*cols, rows, cols)
	}
	var buf []float64
	if data != nil {
		buf = make([]float64, len(data))
		copy(buf, data)
	}
	return &Matrix{d: mat.NewDense(rows, cols, buf)}, nil
}

// FromRows builds a matrix from equally sized rows.
func FromRows(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("empty matrix")
	}
	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, r := range rows {
		if len(r) != cols {
			return nil, fmt.Errorf("row %d has %d values, want %d", i, len(r), cols)
		}
		data = append(data, r...)
	}
	return NewMatrix(len(rows), cols, data)
}

// Dims returns the number of rows and columns.
func (m *Matrix) Dims() (rows, cols int) {
	if m == nil || m.d == nil {
		return 0, 0
	}
	return m.d.Dims()
}

// At returns the value at (row, col). It panics when out of range, like mat.Dense.
func (m *Matrix) At(row, col int) float64 { return m.d.At(row, col) }

// Set stores v at (row, col).
func (m *Matrix) Set(row, col int, v float64) { m.d.Set(row, col, v) }

// T is required by mat.Matrix so the grid can be passed to gonum routines directly.
func (m *Matrix) T() mat.Matrix { return m.d.T() }

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	if m == nil || m.d == nil {
		return nil
	}
	return &Matrix{d: mat.DenseCopyOf(m.d)}
}

// Equal reports whether both matrices have the same shape and identical values.
func (m *Matrix) Equal(o *Matrix) bool {
	if m == nil || o == nil {
		return m == o
	}
	return mat.Equal(m.d, o.d)
}

// EqualApprox is Equal with an absolute/relative tolerance per element.
func (m *Matrix) EqualApprox(o *Matrix, tol float64) bool {
	if m == nil || o == nil {
		return m == o
	}
	return mat.EqualApprox(m.d, o.d, tol)
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) []float64 { return mat.Row(nil, i, m.d) }

// Col returns a copy of column j.
func (m *Matrix) Col(j int) []float64 { return mat.Col(nil, j, m.d) }

// Flatten returns all values in row-major order.
func (m *Matrix) Flatten() []float64 {
	rows, cols := m.Dims()
	out := make([]float64, 0, rows*cols)
	for i := 0; i < rows; i++ {
		out = append(out, m.d.RawRowView(i)...)
	}
	return out
}

// Slice copies the half-open window [r0,r1) x [c0,c1).
func (m *Matrix) Slice(r0, r1, c0, c1 int) (*Matrix, error) {
	rows, cols := m.Dims()
	if r0 < 0 || c0 < 0 || r1 > rows || c1 > cols || r0 >= r1 || c0 >= c1 {
		return nil, fmt.Errorf("slice [%d:%d, %d:%d] invalid for %dx%d matrix", r0, r1, c0, c1, rows, cols)
	}
	view := m.d.Slice(r0, r1, c0, c1)
	return &Matrix{d: mat.DenseCopyOf(view)}, nil
}

// Stats returns the minimum, mean and maximum over the whole grid.
func (m *Matrix) Stats() Stats {
	vals := m.Flatten()
	if len(vals) == 0 {
		return Stats{}
	}
	return StatsOf(vals)
}

// StatsOf summarises an arbitrary non-empty slice of values.
func StatsOf(vals []float64) Stats {
	if len(vals) == 0 {
		return Stats{}
	}
	return Stats{Min: floats.Min(vals), Mean: stat.Mean(vals, nil), Max: floats.Max(vals)}
}

func (m *Matrix) String() string {
	rows, cols := m.Dims()
	return fmt.Sprintf("%dx%d", rows, cols)
}
