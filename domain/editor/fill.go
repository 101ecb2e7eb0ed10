package editor

import (
	"github.com/soocke/thermalprep/domain/thermal"
)

// RegionStatsFor summarises the masked pixels of m without changing it.
func RegionStatsFor(m *thermal.Matrix, mask Mask) (RegionStats, error) {
	rows, cols := m.Dims()
	if !mask.sameShape(rows, cols) {
		return RegionStats{}, thermal.ErrShapeMismatch
	}
	vals := make([]float64, 0, mask.Count())
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if mask.At(y, x) {
				vals = append(vals, m.At(y, x))
			}
		}
	}
	if len(vals) == 0 {
		return RegionStats{}, thermal.ErrEmptySelection
	}
	st := thermal.StatsOf(vals)
	return RegionStats{Pixels: len(vals), Min: st.Min, Mean: st.Mean, Max: st.Max, Image: m.Stats()}, nil
}

// Fill overwrites every masked pixel of m with value. Pixels outside the
// mask are untouched. An empty mask is rejected before any write.
func Fill(m *thermal.Matrix, mask Mask, value float64) (FillResult, error) {
	before, err := RegionStatsFor(m, mask)
	if err != nil {
		return FillResult{}, err
	}
	rows, cols := m.Dims()
	n := 0
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if mask.At(y, x) {
				m.Set(y, x, value)
				n++
			}
		}
	}
	return FillResult{Pixels: n, Value: value, Before: before}, nil
}
