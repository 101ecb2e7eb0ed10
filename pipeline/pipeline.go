package pipeline

import (
	"fmt"

	"github.com/soocke/thermalprep/domain/thermal"
)

// History is an append-only log of what was done to a matrix.
// The zero value is ready to use and a nil *History discards entries.
type History struct {
	entries []string
}

// Add appends a formatted entry.
func (h *History) Add(format string, args ...any) {
	if h == nil {
		return
	}
	h.entries = append(h.entries, fmt.Sprintf(format, args...))
}

// Entries returns a copy of the log in order.
func (h *History) Entries() []string {
	if h == nil {
		return nil
	}
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

func (h *History) Len() int {
	if h == nil {
		return 0
	}
	return len(h.entries)
}

// Stage is one pure transformation.
type Stage struct {
	Name     string
	Apply    func(*thermal.Matrix) (*thermal.Matrix, error)
	Describe func(in, out *thermal.Matrix) string
}

// CropStage wraps Crop.
func CropStage(p CropParams) Stage {
	return Stage{
		Name:  "crop",
		Apply: func(m *thermal.Matrix) (*thermal.Matrix, error) { return Crop(m, p) },
		Describe: func(in, out *thermal.Matrix) string {
			return fmt.Sprintf("Cropped from %v to %v", in, out)
		},
	}
}

// DownsampleStage wraps Downsample.
func DownsampleStage(size Size, method Method) Stage {
	return Stage{
		Name:  "downsample",
		Apply: func(m *thermal.Matrix) (*thermal.Matrix, error) { return Downsample(m, size, method) },
		Describe: func(in, out *thermal.Matrix) string {
			return fmt.Sprintf("Downsampled from %v to %v using %s", in, out, method)
		},
	}
}

// Pipeline applies its stages in order.
type Pipeline struct {
	Stages []Stage
}

// New builds the usual crop-then-downsample pipeline. Zero values skip a stage.
func New(crop CropParams, size Size, method Method) Pipeline {
	var p Pipeline
	if !crop.IsZero() {
		p.Stages = append(p.Stages, CropStage(crop))
	}
	if size.Rows > 0 && size.Cols > 0 {
		p.Stages = append(p.Stages, DownsampleStage(size, method))
	}
	return p
}

// Run feeds m through every stage, recording each step in h. m itself is
// left untouched; the first failing stage aborts the run.
func (p Pipeline) Run(m *thermal.Matrix, h *History) (*thermal.Matrix, error) {
	cur := m
	for _, st := range p.Stages {
		next, err := st.Apply(cur)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", st.Name, err)
		}
		if st.Describe != nil {
			h.Add("%s", st.Describe(cur, next))
		}
		cur = next
	}
	if cur == m {
		cur = m.Clone()
	}
	return cur, nil
}
