// Package editor is the headless core of the region-fill tool: the polygon
// selection state machine, its rasterizer, the masked fill and the image
// holder with reset. Rendering and prompting live behind Display.
package editor

import (
	"log/slog"

	"github.com/soocke/thermalprep/domain/thermal"
)

// SelectionState enumerates the phases of drawing a region.
type SelectionState int

const (
	StateIdle SelectionState = iota
	StateDrawing
	StateReadyToClose
	StateClosed
)

func (s SelectionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDrawing:
		return "drawing"
	case StateReadyToClose:
		return "ready"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// StateListener is called on each state transition of a Selection.
type StateListener func(prev, next SelectionState)

// RegionStats describes the pixels under a mask before a fill.
type RegionStats struct {
	Pixels int
	Min    float64
	Mean   float64
	Max    float64
	// Image is the whole-image range, shown next to the region values.
	Image thermal.Stats
}

// FillResult reports what a fill changed.
type FillResult struct {
	Pixels int
	Value  float64
	Before RegionStats
}

// Frame is everything a Display needs to draw the current session.
type Frame struct {
	Matrix *thermal.Matrix
	Points []thermal.Point
	Closed bool
	State  SelectionState
	Source string
}

// Display is implemented by the UI layer. The session calls Render after
// every change, PromptFillValue before a fill (ok=false means cancelled),
// and Notify for recoverable errors and confirmations.
type Display interface {
	Render(Frame)
	PromptFillValue(RegionStats) (value float64, ok bool)
	Notify(level slog.Level, message string)
}

// Codec loads and stores grids for the ImageHolder.
type Codec interface {
	Load(path string) (*thermal.Matrix, error)
	Save(path string, m *thermal.Matrix) error
}

// FillLimits bounds accepted fill values. Min == Max disables the check.
type FillLimits struct {
	Min, Max float64
}

func (l FillLimits) allows(v float64) bool {
	if l.Min == l.Max {
		return true
	}
	return v >= l.Min && v <= l.Max
}
