package thermal

import (
	"errors"
	"math"
	"testing"
)

func TestNewMatrix_RejectsBadShape(t *testing.T) {
	if _, err := NewMatrix(0, 3, nil); err == nil {
		t.Fatalf("expected error for zero rows")
	}
	if _, err := NewMatrix(2, 2, []float64{1, 2, 3}); err == nil {
		t.Fatalf("expected error for short data")
	}
}

func TestMatrix_CloneIsIndependent(t *testing.T) {
	m, err := FromRows([][]float64{{1, 2}, {3, 4}})
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	c := m.Clone()
	c.Set(0, 0, 99)
	if m.At(0, 0) != 1 {
		t.Fatalf("clone shares storage: original now %v", m.At(0, 0))
	}
	if m.Equal(c) {
		t.Fatalf("expected matrices to differ after mutation")
	}
	c.Set(0, 0, 1)
	if !m.Equal(c) {
		t.Fatalf("expected matrices to be equal again")
	}
}

func TestMatrix_SliceAndFlatten(t *testing.T) {
	m, _ := FromRows([][]float64{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
	})
	s, err := m.Slice(1, 3, 1, 3)
	if err != nil {
		t.Fatalf("Slice: %v", err)
	}
	got := s.Flatten()
	want := []float64{6, 7, 10, 11}
	if len(got) != len(want) {
		t.Fatalf("flatten len %d want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("flatten[%d]=%v want %v", i, got[i], want[i])
		}
	}
	s.Set(0, 0, -1)
	if m.At(1, 1) != 6 {
		t.Fatalf("slice must copy, original changed to %v", m.At(1, 1))
	}
	if _, err := m.Slice(2, 2, 0, 1); err == nil {
		t.Fatalf("expected error for empty slice")
	}
}

func TestMatrix_Stats(t *testing.T) {
	m, _ := FromRows([][]float64{{20, 22}, {24, 30}})
	st := m.Stats()
	if st.Min != 20 || st.Max != 30 || math.Abs(st.Mean-24) > 1e-12 {
		t.Fatalf("unexpected stats %+v", st)
	}
}

func TestIOError_MatchesErrIO(t *testing.T) {
	cause := errors.New("boom")
	var err error = &IOError{Op: "load", Path: "x.csv", Err: cause}
	if !errors.Is(err, ErrIO) {
		t.Fatalf("expected errors.Is(err, ErrIO)")
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to be reachable")
	}
}

func TestPoint_In(t *testing.T) {
	if !(Point{X: 4, Y: 2}).In(3, 5) {
		t.Fatalf("expected (4,2) inside 3x5")
	}
	if (Point{X: 5, Y: 0}).In(3, 5) || (Point{X: 0, Y: -1}).In(3, 5) {
		t.Fatalf("expected points outside 3x5")
	}
}
