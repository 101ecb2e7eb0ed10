package editor

import (
	"errors"
	"testing"

	"github.com/soocke/thermalprep/domain/thermal"
)

func TestSelection_StateProgression(t *testing.T) {
	s := NewSelection(5, 5, discardLogger)
	var seq []SelectionState
	s.AddListener(func(prev, next SelectionState) { seq = append(seq, next) })

	if s.State() != StateIdle {
		t.Fatalf("expected idle, got %v", s.State())
	}
	for _, p := range pts(1, 1, 3, 1, 3, 3) {
		if err := s.AddPoint(p); err != nil {
			t.Fatalf("AddPoint(%v): %v", p, err)
		}
	}
	if s.State() != StateReadyToClose {
		t.Fatalf("expected ready, got %v", s.State())
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !s.Closed() || s.State() != StateClosed {
		t.Fatalf("expected closed, got %v", s.State())
	}
	want := []SelectionState{StateDrawing, StateReadyToClose, StateClosed}
	if len(seq) != len(want) {
		t.Fatalf("transitions %v want %v", seq, want)
	}
	for i := range want {
		if seq[i] != want[i] {
			t.Fatalf("transition %d: got %v want %v", i, seq[i], want[i])
		}
	}
}

func TestSelection_CloseNeedsThreePoints(t *testing.T) {
	for n := 0; n < 3; n++ {
		s := NewSelection(5, 5, nil)
		for _, p := range pts(0, 0, 1, 1)[:n] {
			_ = s.AddPoint(p)
		}
		before := s.Points()
		if err := s.Close(); !errors.Is(err, thermal.ErrInsufficientPoints) {
			t.Fatalf("n=%d: expected ErrInsufficientPoints, got %v", n, err)
		}
		if s.Closed() || s.Len() != len(before) {
			t.Fatalf("n=%d: failed close changed state", n)
		}
	}
}

func TestSelection_OutOfBoundsIgnored(t *testing.T) {
	s := NewSelection(4, 6, nil)
	for _, p := range pts(6, 0, 0, 4, -1, 2) {
		if err := s.AddPoint(p); !errors.Is(err, thermal.ErrOutOfBounds) {
			t.Fatalf("AddPoint(%v): expected ErrOutOfBounds, got %v", p, err)
		}
	}
	if s.Len() != 0 || s.State() != StateIdle {
		t.Fatalf("out-of-bounds points must not be recorded")
	}
	if err := s.AddPoint(thermal.Point{X: 5, Y: 3}); err != nil {
		t.Fatalf("corner point rejected: %v", err)
	}
}

func TestSelection_CancelThenRestart(t *testing.T) {
	s := NewSelection(5, 5, nil)
	_ = s.AddPoint(thermal.Point{X: 4, Y: 4})
	_ = s.AddPoint(thermal.Point{X: 0, Y: 4})
	s.Cancel()
	if s.Len() != 0 || s.State() != StateIdle {
		t.Fatalf("cancel should empty the selection")
	}
	for _, p := range pts(1, 1, 3, 1, 3, 3, 1, 3) {
		_ = s.AddPoint(p)
	}
	got := s.Points()
	if len(got) != 4 || got[0] != (thermal.Point{X: 1, Y: 1}) {
		t.Fatalf("previous points leaked into new selection: %v", got)
	}
}

func TestSelection_ClosedIsImmutable(t *testing.T) {
	s := NewSelection(5, 5, nil)
	for _, p := range pts(0, 0, 4, 0, 4, 4) {
		_ = s.AddPoint(p)
	}
	_ = s.Close()
	if err := s.AddPoint(thermal.Point{X: 1, Y: 1}); !errors.Is(err, thermal.ErrSelectionClosed) {
		t.Fatalf("expected ErrSelectionClosed, got %v", err)
	}
	if s.Len() != 3 {
		t.Fatalf("closed selection changed: %d points", s.Len())
	}
	if err := s.Close(); err != nil {
		t.Fatalf("second Close should be a no-op, got %v", err)
	}
}

func TestSelection_MaskRequiresClosed(t *testing.T) {
	s := NewSelection(5, 5, nil)
	for _, p := range pts(0, 0, 4, 0, 4, 4) {
		_ = s.AddPoint(p)
	}
	if _, err := s.Mask(); !errors.Is(err, thermal.ErrNoSelection) {
		t.Fatalf("expected ErrNoSelection before close, got %v", err)
	}
	_ = s.Close()
	m, err := s.Mask()
	if err != nil {
		t.Fatalf("Mask: %v", err)
	}
	if m.Count() == 0 {
		t.Fatalf("expected non-empty mask")
	}
}
