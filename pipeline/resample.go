package pipeline

import (
	"fmt"
	"math"
	"strings"

	"github.com/soocke/thermalprep/domain/thermal"
)

// Method is the interpolation order used by Downsample.
type Method int

const (
	Nearest Method = iota
	Linear
	Cubic
)

func (m Method) String() string {
	switch m {
	case Linear:
		return "linear"
	case Cubic:
		return "cubic"
	default:
		return "nearest"
	}
}

// ParseMethod maps a name to a Method. Unknown names select Nearest.
func ParseMethod(s string) Method {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linear", "bilinear":
		return Linear
	case "cubic", "bicubic":
		return Cubic
	default:
		return Nearest
	}
}

// Size is a target shape in rows x cols.
type Size struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

func (s Size) String() string { return fmt.Sprintf("%dx%d", s.Rows, s.Cols) }

// Downsample resamples m to size. Sample positions map pixel centres
// (src = (dst+0.5)*scale - 0.5) and edges are clamped. For Linear and Cubic
// each shrunk axis is first smoothed with a Gaussian of sigma (scale-1)/2
// to suppress aliasing. Values are never quantised.
func Downsample(m *thermal.Matrix, size Size, method Method) (*thermal.Matrix, error) {
	if size.Rows <= 0 || size.Cols <= 0 {
		return nil, fmt.Errorf("invalid output size %v", size)
	}
	rows, cols := m.Dims()
	colTaps := buildTaps(cols, size.Cols, method)
	rowTaps := buildTaps(rows, size.Rows, method)
	colSigma := antiAliasSigma(cols, size.Cols, method)
	rowSigma := antiAliasSigma(rows, size.Rows, method)

	tmp := make([][]float64, rows)
	for r := 0; r < rows; r++ {
		line := m.Row(r)
		if colSigma > 0 {
			line = gaussian1D(line, colSigma)
		}
		tmp[r] = applyTaps(line, colTaps)
	}

	out := make([]float64, size.Rows*size.Cols)
	col := make([]float64, rows)
	for c := 0; c < size.Cols; c++ {
		for r := 0; r < rows; r++ {
			col[r] = tmp[r][c]
		}
		line := col
		if rowSigma > 0 {
			line = gaussian1D(col, rowSigma)
		}
		res := applyTaps(line, rowTaps)
		for r, v := range res {
			out[r*size.Cols+c] = v
		}
	}
	return thermal.NewMatrix(size.Rows, size.Cols, out)
}

type tap struct {
	idx []int
	w   []float64
}

func buildTaps(in, out int, method Method) []tap {
	scale := float64(in) / float64(out)
	taps := make([]tap, out)
	for i := range taps {
		s := (float64(i)+0.5)*scale - 0.5
		switch method {
		case Linear:
			i0 := math.Floor(s)
			f := s - i0
			taps[i] = tap{
				idx: []int{clampIndex(int(i0), in), clampIndex(int(i0)+1, in)},
				w:   []float64{1 - f, f},
			}
		case Cubic:
			i0 := int(math.Floor(s))
			f := s - float64(i0)
			t := tap{idx: make([]int, 4), w: make([]float64, 4)}
			for k := -1; k <= 2; k++ {
				t.idx[k+1] = clampIndex(i0+k, in)
				t.w[k+1] = keys(float64(k) - f)
			}
			taps[i] = t
		default:
			taps[i] = tap{idx: []int{clampIndex(int(math.Round(s)), in)}, w: []float64{1}}
		}
	}
	return taps
}

func applyTaps(line []float64, taps []tap) []float64 {
	out := make([]float64, len(taps))
	for i, t := range taps {
		var v float64
		for k, idx := range t.idx {
			v += line[idx] * t.w[k]
		}
		out[i] = v
	}
	return out
}

// keys is the cubic convolution kernel with a = -0.5.
func keys(x float64) float64 {
	const a = -0.5
	x = math.Abs(x)
	switch {
	case x <= 1:
		return (a+2)*x*x*x - (a+3)*x*x + 1
	case x < 2:
		return a*x*x*x - 5*a*x*x + 8*a*x - 4*a
	default:
		return 0
	}
}

func antiAliasSigma(in, out int, method Method) float64 {
	if method == Nearest || out >= in {
		return 0
	}
	scale := float64(in) / float64(out)
	return math.Max(0, (scale-1)/2)
}

// gaussian1D smooths line with a normalised kernel truncated at 4 sigma.
func gaussian1D(line []float64, sigma float64) []float64 {
	radius := int(math.Ceil(4 * sigma))
	kernel := make([]float64, 2*radius+1)
	var sum float64
	for k := -radius; k <= radius; k++ {
		v := math.Exp(-float64(k*k) / (2 * sigma * sigma))
		kernel[k+radius] = v
		sum += v
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	out := make([]float64, len(line))
	for i := range line {
		var v float64
		for k := -radius; k <= radius; k++ {
			v += line[clampIndex(i+k, len(line))] * kernel[k+radius]
		}
		out[i] = v
	}
	return out
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
