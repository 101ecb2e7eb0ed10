package images

import (
	"bytes"
	"image"
	"image/png"
	"math"

	"golang.org/x/image/draw"
)

// EncodePNG encodes an image to PNG bytes. Errors are ignored and may return an empty slice.
func EncodePNG(img image.Image) []byte {
	if img == nil {
		return nil
	}
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}

// ScaleToFit scales src by a uniform factor so that it fills maxW x maxH
// as far as the aspect ratio allows, enlarging small grids as well as
// shrinking large ones. Nearest-neighbour sampling keeps every cell a
// solid block. It returns the scaled image and the factor applied, so that
// output pixel coordinates divided by the factor give source coordinates.
func ScaleToFit(src image.Image, maxW, maxH int) (*image.RGBA, float64) {
	if src == nil {
		return nil, 0
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w < 1 || h < 1 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0)), 0
	}
	maxW, maxH = max(maxW, 1), max(maxH, 1)
	ratio := min(float64(maxW)/float64(w), float64(maxH)/float64(h))
	newW := max(int(float64(w)*ratio), 1)
	newH := max(int(float64(h)*ratio), 1)
	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst, float64(newW) / float64(w)
}

// ToSource maps a pixel of an image produced by ScaleToFit back to the
// source cell under it. Pixels left of or above the image map to negative
// cells.
func ToSource(x, y int, scale float64) image.Point {
	if scale <= 0 {
		return image.Pt(x, y)
	}
	return image.Pt(int(math.Floor(float64(x)/scale)), int(math.Floor(float64(y)/scale)))
}
