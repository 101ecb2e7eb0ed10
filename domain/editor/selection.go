package editor

import (
	"log/slog"

	"github.com/soocke/thermalprep/domain/thermal"
)

// Selection is the ordered vertex list of the polygon being drawn. Once
// closed it is immutable until Cancel.
type Selection struct {
	rows, cols int
	points     []thermal.Point
	closed     bool
	state      SelectionState
	logger     *slog.Logger
	listeners  []StateListener
}

// NewSelection returns an empty selection over a rows x cols grid.
func NewSelection(rows, cols int, logger *slog.Logger) *Selection {
	return &Selection{rows: rows, cols: cols, logger: logger}
}

// AddListener registers l for subsequent transitions.
func (s *Selection) AddListener(l StateListener) {
	if l != nil {
		s.listeners = append(s.listeners, l)
	}
}

// Resize changes the grid bounds and discards any points.
func (s *Selection) Resize(rows, cols int) {
	s.rows, s.cols = rows, cols
	s.Cancel()
}

func (s *Selection) State() SelectionState { return s.state }
func (s *Selection) Closed() bool          { return s.closed }
func (s *Selection) Len() int              { return len(s.points) }

// Points returns a copy of the vertices in insertion order.
func (s *Selection) Points() []thermal.Point {
	out := make([]thermal.Point, len(s.points))
	copy(out, s.points)
	return out
}

// AddPoint appends p. Points outside the grid are ignored and reported
// with ErrOutOfBounds; a closed selection rejects new points.
func (s *Selection) AddPoint(p thermal.Point) error {
	if s.closed {
		return thermal.ErrSelectionClosed
	}
	if !p.In(s.rows, s.cols) {
		return thermal.ErrOutOfBounds
	}
	s.points = append(s.points, p)
	if s.logger != nil {
		s.logger.Debug("point added", "x", p.X, "y", p.Y, "count", len(s.points))
	}
	s.transition(s.openState())
	return nil
}

// Close fixes the polygon. It needs at least three points; closing twice is a no-op.
func (s *Selection) Close() error {
	if s.closed {
		return nil
	}
	if len(s.points) < 3 {
		return thermal.ErrInsufficientPoints
	}
	s.closed = true
	s.transition(StateClosed)
	return nil
}

// Cancel clears all points and returns to idle.
func (s *Selection) Cancel() {
	s.points = s.points[:0]
	s.closed = false
	s.transition(StateIdle)
}

// Polygon returns the closed polygon, or ok=false while still drawing.
func (s *Selection) Polygon() ([]thermal.Point, bool) {
	if !s.closed {
		return nil, false
	}
	return s.Points(), true
}

// Mask rasterizes the closed polygon over the selection's grid.
func (s *Selection) Mask() (Mask, error) {
	poly, ok := s.Polygon()
	if !ok {
		return Mask{}, thermal.ErrNoSelection
	}
	return Rasterize(poly, s.rows, s.cols), nil
}

func (s *Selection) openState() SelectionState {
	switch n := len(s.points); {
	case n == 0:
		return StateIdle
	case n < 3:
		return StateDrawing
	default:
		return StateReadyToClose
	}
}

func (s *Selection) transition(next SelectionState) {
	prev := s.state
	if prev == next {
		return
	}
	s.state = next
	if s.logger != nil {
		s.logger.Debug("selection state transition", "from", prev.String(), "to", next.String())
	}
	for _, l := range s.listeners {
		l(prev, next)
	}
}
