package editor

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/soocke/thermalprep/csvio"
	"github.com/soocke/thermalprep/domain/thermal"
)

func TestImageHolder_ResetBeforeLoad(t *testing.T) {
	h := NewImageHolder(newMemCodec())
	if err := h.Reset(); !errors.Is(err, thermal.ErrNoOriginalLoaded) {
		t.Fatalf("expected ErrNoOriginalLoaded, got %v", err)
	}
	if err := h.Save("x"); !errors.Is(err, thermal.ErrNoOriginalLoaded) {
		t.Fatalf("expected ErrNoOriginalLoaded on save, got %v", err)
	}
}

func TestImageHolder_ResetRestoresSnapshotExactly(t *testing.T) {
	codec := newMemCodec()
	orig, _ := thermal.FromRows([][]float64{{21.125, 22.5, 23}, {24, 25.75, 26.0001}})
	codec.files["a.csv"] = orig
	h := NewImageHolder(codec)
	if _, err := h.Load("a.csv"); err != nil {
		t.Fatalf("Load: %v", err)
	}
	for i, v := range []float64{99, -4, 0.5} {
		mask := NewMask(2, 3)
		mask.Set(i%2, i, true)
		if _, err := Fill(h.Current(), mask, v); err != nil {
			t.Fatalf("Fill: %v", err)
		}
	}
	if !h.Modified() {
		t.Fatalf("expected holder to be modified after fills")
	}
	if err := h.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if !h.Current().Equal(orig) || h.Modified() {
		t.Fatalf("reset did not restore original")
	}
	// The snapshot survives a second round of edits.
	h.Current().Set(0, 0, 1000)
	if err := h.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if !h.Current().Equal(orig) {
		t.Fatalf("undo did not restore original")
	}
}

func TestImageHolder_FailedLoadKeepsImage(t *testing.T) {
	codec := newMemCodec()
	codec.files["a.csv"] = zeros(2, 2)
	h := NewImageHolder(codec)
	_, _ = h.Load("a.csv")
	if _, err := h.Load("missing.csv"); !errors.Is(err, thermal.ErrIO) {
		t.Fatalf("expected ErrIO, got %v", err)
	}
	if h.Source() != "a.csv" || !h.Loaded() {
		t.Fatalf("failed load replaced the image")
	}
}

func TestImageHolder_CSVRoundTrip(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.csv")
	out := filepath.Join(dir, "out.csv")
	m, _ := thermal.FromRows([][]float64{{25.123, 26.456}, {27.789, 28.001}})
	if err := csvio.WriteFile(in, m, -1, ','); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	h := NewImageHolder(CSVCodec{Precision: 3})
	if _, err := h.Load(in); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := h.Save(out); err != nil {
		t.Fatalf("Save: %v", err)
	}
	back, err := csvio.ReadFile(out, csvio.Options{})
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !back.EqualApprox(m, 5e-4) {
		t.Fatalf("round trip drifted")
	}
}

func TestImageHolder_SetCodec(t *testing.T) {
	first, second := newMemCodec(), newMemCodec()
	first.files["a.csv"] = zeros(2, 2)
	h := NewImageHolder(first)
	if _, err := h.Load("a.csv"); err != nil {
		t.Fatalf("Load: %v", err)
	}
	h.SetCodec(second)
	h.SetCodec(nil)
	if err := h.Save("b.csv"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, ok := second.files["b.csv"]; !ok {
		t.Fatalf("save should go through the new codec")
	}
}

func TestImageHolder_SemicolonRoundTrip(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.csv")
	out := filepath.Join(dir, "out.csv")
	m, _ := thermal.FromRows([][]float64{{25.5, 26.25}, {27, 28.125}})
	if err := csvio.WriteFile(in, m, -1, ';'); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	h := NewImageHolder(CSVCodec{Options: csvio.Options{Delimiter: ';'}, Precision: -1})
	if _, err := h.Load(in); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := h.Save(out); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, _ := os.ReadFile(out)
	if strings.Contains(string(data), ",") {
		t.Fatalf("saved file should keep the semicolon delimiter, got %q", data)
	}
	back, err := h.Load(out)
	if err != nil {
		t.Fatalf("reloading saved file: %v", err)
	}
	if !back.Equal(m) {
		t.Fatalf("load, save, load changed the grid")
	}
}
