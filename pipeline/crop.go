// Package pipeline holds the batch transformations applied to camera
// exports before training: crop, downsample, flatten. Each stage takes a
// matrix and returns a new one; inputs are never modified.
package pipeline

import (
	"fmt"

	"github.com/soocke/thermalprep/domain/thermal"
)

// CropParams selects the window [StartRow,EndRow) x [StartCol,EndCol).
// A zero end means "to the last row/column". Bounds are clamped to the
// matrix the same way slicing clamps them.
type CropParams struct {
	StartRow int `json:"start_row"`
	EndRow   int `json:"end_row"`
	StartCol int `json:"start_col"`
	EndCol   int `json:"end_col"`
}

// IsZero reports whether p selects the whole matrix.
func (p CropParams) IsZero() bool { return p == CropParams{} }

// Crop returns a copy of the selected window.
func Crop(m *thermal.Matrix, p CropParams) (*thermal.Matrix, error) {
	rows, cols := m.Dims()
	r0, r1 := clampRange(p.StartRow, p.EndRow, rows)
	c0, c1 := clampRange(p.StartCol, p.EndCol, cols)
	if r0 >= r1 || c0 >= c1 {
		return nil, fmt.Errorf("crop rows [%d:%d] cols [%d:%d] is empty for %dx%d data",
			p.StartRow, p.EndRow, p.StartCol, p.EndCol, rows, cols)
	}
	return m.Slice(r0, r1, c0, c1)
}

func clampRange(start, end, n int) (int, int) {
	if end == 0 || end > n {
		end = n
	}
	start = max(start, 0)
	return min(start, n), max(end, 0)
}
