package render

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/wcharczuk/go-chart/v2"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/soocke/thermalprep/domain/thermal"
)

const (
	chartWidth  = 1000
	chartHeight = 600
)

// Axis selects the direction of a temperature profile.
type Axis int

const (
	Horizontal Axis = iota // along a row
	Vertical               // along a column
)

// HistogramCounts bins every value of m into bins equal-width buckets
// spanning its range. It returns the bucket centres and counts.
func HistogramCounts(m *thermal.Matrix, bins int) (centres, counts []float64, err error) {
	if bins < 1 {
		return nil, nil, fmt.Errorf("bins must be positive, got %d", bins)
	}
	vals := m.Flatten()
	sort.Float64s(vals)
	lo, hi := vals[0], vals[len(vals)-1]
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	dividers := make([]float64, bins+1)
	floats.Span(dividers, lo, hi)
	// the last bucket is closed on the right
	dividers[bins] = nextUp(hi)
	counts = stat.Histogram(nil, dividers, vals, nil)
	centres = make([]float64, bins)
	for i := range centres {
		centres[i] = (dividers[i] + dividers[i+1]) / 2
	}
	return centres, counts, nil
}

// Histogram renders the temperature distribution of m as a PNG chart.
func Histogram(m *thermal.Matrix, bins int, title string, w io.Writer) error {
	if bins < 2 {
		return fmt.Errorf("histogram needs at least two bins, got %d", bins)
	}
	centres, counts, err := HistogramCounts(m, bins)
	if err != nil {
		return err
	}
	if title == "" {
		title = "Temperature Distribution"
	}
	graph := chart.Chart{
		Title:  title,
		Width:  chartWidth,
		Height: chartHeight,
		XAxis:  chart.XAxis{Name: "Temperature (°C)"},
		YAxis: chart.YAxis{
			Name:  "Frequency",
			Range: &chart.ContinuousRange{Min: 0, Max: floats.Max(counts) + 1},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Style: chart.Style{
					StrokeColor: chart.ColorBlue,
					FillColor:   chart.ColorAlternateBlue,
				},
				XValues: centres,
				YValues: counts,
			},
		},
	}
	return graph.Render(chart.PNG, w)
}

// ProfileValues extracts a row (Horizontal) or column (Vertical) of m.
// A negative position selects the middle one.
func ProfileValues(m *thermal.Matrix, axis Axis, position int) ([]float64, int, error) {
	rows, cols := m.Dims()
	n := rows
	if axis == Vertical {
		n = cols
	}
	if position < 0 {
		position = n / 2
	}
	if position >= n {
		return nil, 0, fmt.Errorf("profile position %d outside %v", position, m)
	}
	if axis == Vertical {
		return m.Col(position), position, nil
	}
	return m.Row(position), position, nil
}

// Profile renders a temperature profile line chart as PNG.
func Profile(m *thermal.Matrix, axis Axis, position int, title string, w io.Writer) error {
	vals, pos, err := ProfileValues(m, axis, position)
	if err != nil {
		return err
	}
	if len(vals) < 2 {
		return errors.New("profile needs at least two samples")
	}
	xName, kind, at := "Column", "Horizontal", fmt.Sprintf("Row %d", pos)
	if axis == Vertical {
		xName, kind, at = "Row", "Vertical", fmt.Sprintf("Column %d", pos)
	}
	if title == "" {
		title = fmt.Sprintf("%s Temperature Profile at %s", kind, at)
	}
	xs := make([]float64, len(vals))
	for i := range xs {
		xs[i] = float64(i)
	}
	lo, hi := floats.Min(vals), floats.Max(vals)
	if lo == hi {
		lo, hi = lo-1, hi+1
	}
	graph := chart.Chart{
		Title:  title,
		Width:  chartWidth,
		Height: chartHeight,
		XAxis:  chart.XAxis{Name: xName},
		YAxis: chart.YAxis{
			Name:  "Temperature (°C)",
			Range: &chart.ContinuousRange{Min: lo, Max: hi},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Style:   chart.Style{StrokeColor: chart.ColorRed},
				XValues: xs,
				YValues: vals,
			},
		},
	}
	return graph.Render(chart.PNG, w)
}
