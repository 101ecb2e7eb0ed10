package render

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"

	"github.com/soocke/thermalprep/domain/thermal"
)

// Heatmap paints one pixel per matrix cell. Values are normalised to
// [lo,hi]; when lo >= hi the matrix's own range is used. NaN cells are black.
func Heatmap(m *thermal.Matrix, cmap Colormap, lo, hi float64) *image.RGBA {
	if cmap == nil {
		cmap = Hot
	}
	if lo >= hi {
		st := m.Stats()
		lo, hi = st.Min, st.Max
	}
	span := hi - lo
	rows, cols := m.Dims()
	img := image.NewRGBA(image.Rect(0, 0, cols, rows))
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := m.At(r, c)
			if math.IsNaN(v) {
				img.SetRGBA(c, r, color.RGBA{A: 0xff})
				continue
			}
			t := 0.5
			if span > 0 {
				t = (v - lo) / span
			}
			img.SetRGBA(c, r, cmap(t))
		}
	}
	return img
}

// Enlarge scales img by an integer factor with nearest-neighbour sampling
// so that individual cells stay visible.
func Enlarge(img image.Image, factor int) *image.NRGBA {
	if factor < 1 {
		factor = 1
	}
	b := img.Bounds()
	return imaging.Resize(img, b.Dx()*factor, b.Dy()*factor, imaging.NearestNeighbor)
}

// gap between panels in Compare.
const comparePad = 8

// Compare lays original and processed side by side on a white background,
// both coloured against the same temperature range. The processed panel
// is scaled to the original's height.
func Compare(original, processed *thermal.Matrix, cmap Colormap) *image.NRGBA {
	a, b := original.Stats(), processed.Stats()
	lo, hi := math.Min(a.Min, b.Min), math.Max(a.Max, b.Max)
	left := Heatmap(original, cmap, lo, hi)
	right := Heatmap(processed, cmap, lo, hi)

	lh := left.Bounds().Dy()
	rb := right.Bounds()
	rw := int(math.Round(float64(rb.Dx()) * float64(lh) / float64(rb.Dy())))
	scaled := imaging.Resize(right, max(rw, 1), lh, imaging.NearestNeighbor)

	w := left.Bounds().Dx() + comparePad + scaled.Bounds().Dx()
	canvas := imaging.New(w, lh, color.White)
	canvas = imaging.Paste(canvas, left, image.Pt(0, 0))
	canvas = imaging.Paste(canvas, scaled, image.Pt(left.Bounds().Dx()+comparePad, 0))
	return canvas
}
