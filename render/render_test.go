package render

import (
	"bytes"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/soocke/thermalprep/domain/thermal"
)

func rampMatrix(t *testing.T, rows, cols int) *thermal.Matrix {
	t.Helper()
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = 20 + float64(i)
	}
	m, err := thermal.NewMatrix(rows, cols, data)
	if err != nil {
		t.Fatalf("NewMatrix: %v", err)
	}
	return m
}

func TestColormaps_Endpoints(t *testing.T) {
	if c := Hot(0); c != (color.RGBA{A: 255}) {
		t.Fatalf("hot(0) = %v", c)
	}
	if c := Hot(1); c != (color.RGBA{255, 255, 255, 255}) {
		t.Fatalf("hot(1) = %v", c)
	}
	if c := Viridis(0); c != viridisStops[0] {
		t.Fatalf("viridis(0) = %v", c)
	}
	if c := Viridis(2); c != viridisStops[len(viridisStops)-1] {
		t.Fatalf("viridis should clamp above 1, got %v", c)
	}
	if c := Gray(0.5); c.R != 128 || c.R != c.G || c.G != c.B {
		t.Fatalf("gray(0.5) = %v", c)
	}
}

func TestColormapByName(t *testing.T) {
	if _, err := ColormapByName(" Viridis "); err != nil {
		t.Fatalf("viridis: %v", err)
	}
	if _, err := ColormapByName("jet"); err == nil {
		t.Fatalf("expected error for unknown colormap")
	}
}

func TestHeatmap_UsesRange(t *testing.T) {
	m := rampMatrix(t, 2, 3)
	img := Heatmap(m, Gray, 0, 0)
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Fatalf("unexpected bounds %v", b)
	}
	if c := img.RGBAAt(0, 0); c.R != 0 {
		t.Fatalf("minimum should be black, got %v", c)
	}
	if c := img.RGBAAt(2, 1); c.R != 255 {
		t.Fatalf("maximum should be white, got %v", c)
	}
	// fixed range clamps
	img = Heatmap(m, Gray, 0, 10)
	if c := img.RGBAAt(0, 0); c.R != 255 {
		t.Fatalf("values above range should clamp, got %v", c)
	}
}

func TestOverlay_DrawsVerticesAndLeavesSource(t *testing.T) {
	m, _ := thermal.NewMatrix(10, 10, nil)
	base := Enlarge(Heatmap(m, Gray, 0, 1), 4)
	if b := base.Bounds(); b.Dx() != 40 || b.Dy() != 40 {
		t.Fatalf("expected 40x40 base, got %v", b)
	}
	pts := []thermal.Point{{X: 1, Y: 1}, {X: 8, Y: 1}, {X: 8, Y: 8}}
	out := Overlay(base, pts, true, 4)
	// cell (1,1) at scale 4 centres on pixel (6,6)
	if c := out.RGBAAt(6, 6); c != overlayRed {
		t.Fatalf("expected vertex marker, got %v", c)
	}
	// midpoint of the first edge
	if c := out.RGBAAt(18, 6); c != overlayRed {
		t.Fatalf("expected edge pixel, got %v", c)
	}
	if c := color.RGBAModel.Convert(base.At(18, 6)); c == overlayRed {
		t.Fatalf("overlay must not draw on its input")
	}
}

func TestCompare_SideBySide(t *testing.T) {
	orig := rampMatrix(t, 20, 30)
	small := rampMatrix(t, 10, 10)
	img := Compare(orig, small, Viridis)
	b := img.Bounds()
	if b.Dy() != 20 || b.Dx() != 30+comparePad+20 {
		t.Fatalf("unexpected bounds %v", b)
	}
	if c := img.NRGBAAt(30+comparePad/2, 5); c != (color.NRGBA{255, 255, 255, 255}) {
		t.Fatalf("expected white gap, got %v", c)
	}
}

func TestHistogramCounts(t *testing.T) {
	m := rampMatrix(t, 4, 5) // 20..39
	centres, counts, err := HistogramCounts(m, 4)
	if err != nil {
		t.Fatalf("HistogramCounts: %v", err)
	}
	if len(centres) != 4 {
		t.Fatalf("expected 4 bins, got %d", len(centres))
	}
	var total float64
	for _, c := range counts {
		total += c
	}
	if total != 20 {
		t.Fatalf("counts should cover every value, got %v", counts)
	}
	if _, _, err := HistogramCounts(m, 0); err == nil {
		t.Fatalf("expected error for zero bins")
	}
}

func TestProfileValues(t *testing.T) {
	m := rampMatrix(t, 3, 4)
	row, pos, err := ProfileValues(m, Horizontal, -1)
	if err != nil || pos != 1 || len(row) != 4 || row[0] != 24 {
		t.Fatalf("horizontal middle: %v %d %v", row, pos, err)
	}
	col, pos, err := ProfileValues(m, Vertical, 3)
	if err != nil || pos != 3 || len(col) != 3 || col[2] != 31 {
		t.Fatalf("vertical: %v %d %v", col, pos, err)
	}
	if _, _, err := ProfileValues(m, Horizontal, 3); err == nil {
		t.Fatalf("expected out-of-range error")
	}
}

func TestCharts_ProducePNG(t *testing.T) {
	m := rampMatrix(t, 8, 8)
	var buf bytes.Buffer
	if err := Histogram(m, 10, "", &buf); err != nil {
		t.Fatalf("Histogram: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(buf.Bytes())); err != nil {
		t.Fatalf("histogram is not a PNG: %v", err)
	}
	buf.Reset()
	if err := Profile(m, Vertical, -1, "", &buf); err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(buf.Bytes())); err != nil {
		t.Fatalf("profile is not a PNG: %v", err)
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heat.png")
	img := Enlarge(Heatmap(rampMatrix(t, 3, 4), Hot, 0, 0), 5)
	if err := SavePNG(img, path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	got, err := imaging.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if b := got.Bounds(); b.Dx() != 20 || b.Dy() != 15 {
		t.Fatalf("unexpected size %v", b)
	}
	if err := SavePNG(img, filepath.Join(t.TempDir(), "missing", "x.png")); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}
