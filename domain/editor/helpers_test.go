package editor

import (
	"log/slog"

	"github.com/soocke/thermalprep/domain/thermal"
)

var discardLogger = slog.New(slog.NewTextHandler(&discardWriter{}, nil))

type discardWriter struct{}

func (d *discardWriter) Write(p []byte) (int, error) { return len(p), nil }

func zeros(rows, cols int) *thermal.Matrix {
	m, err := thermal.NewMatrix(rows, cols, nil)
	if err != nil {
		panic(err)
	}
	return m
}

func pts(xy ...int) []thermal.Point {
	out := make([]thermal.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, thermal.Point{X: xy[i], Y: xy[i+1]})
	}
	return out
}

// fakeDisplay records calls and answers prompts with a fixed value.
type fakeDisplay struct {
	frames  []Frame
	prompts []RegionStats
	notes   []string
	levels  []slog.Level
	value   float64
	accept  bool
}

func (d *fakeDisplay) Render(f Frame) { d.frames = append(d.frames, f) }

func (d *fakeDisplay) PromptFillValue(st RegionStats) (float64, bool) {
	d.prompts = append(d.prompts, st)
	return d.value, d.accept
}

func (d *fakeDisplay) Notify(level slog.Level, msg string) {
	d.levels = append(d.levels, level)
	d.notes = append(d.notes, msg)
}

// memCodec keeps saved grids in memory keyed by path.
type memCodec struct {
	files map[string]*thermal.Matrix
}

func newMemCodec() *memCodec { return &memCodec{files: map[string]*thermal.Matrix{}} }

func (c *memCodec) Load(path string) (*thermal.Matrix, error) {
	m, ok := c.files[path]
	if !ok {
		return nil, &thermal.IOError{Op: "load", Path: path, Err: errNotFound}
	}
	return m.Clone(), nil
}

func (c *memCodec) Save(path string, m *thermal.Matrix) error {
	c.files[path] = m.Clone()
	return nil
}

type notFound struct{}

func (notFound) Error() string { return "not found" }

var errNotFound = notFound{}
