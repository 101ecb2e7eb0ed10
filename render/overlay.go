package render

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"

	"github.com/soocke/thermalprep/domain/thermal"
)

const (
	vertexSize = 2 // half width of a vertex marker, in output pixels
	dashOn     = 6.0
	dashOff    = 4.0
)

var overlayRed = color.RGBA{R: 0xff, A: 0xff}

// Overlay copies img and draws the selection on top. Points are in matrix
// cells; scale is the number of output pixels per cell, and each point is
// drawn at its cell centre. Vertices and the edges between consecutive
// points are solid red. When closed, the edge back to the first point is
// dashed.
func Overlay(img image.Image, pts []thermal.Point, closed bool, scale float64) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(b)
	draw.Draw(out, b, img, b.Min, draw.Src)
	if len(pts) == 0 {
		return out
	}
	if scale <= 0 {
		scale = 1
	}
	centre := func(p thermal.Point) (float64, float64) {
		return float64(b.Min.X) + (float64(p.X)+0.5)*scale, float64(b.Min.Y) + (float64(p.Y)+0.5)*scale
	}
	for i := 1; i < len(pts); i++ {
		x0, y0 := centre(pts[i-1])
		x1, y1 := centre(pts[i])
		line(out, x0, y0, x1, y1, false)
	}
	if closed && len(pts) > 2 {
		x0, y0 := centre(pts[len(pts)-1])
		x1, y1 := centre(pts[0])
		line(out, x0, y0, x1, y1, true)
	}
	for _, p := range pts {
		x, y := centre(p)
		cx, cy := int(math.Floor(x)), int(math.Floor(y))
		r := image.Rect(cx-vertexSize, cy-vertexSize, cx+vertexSize+1, cy+vertexSize+1).Intersect(b)
		draw.Draw(out, r, image.NewUniform(overlayRed), image.Point{}, draw.Src)
	}
	return out
}

// line steps along the segment one pixel at a time.
func line(dst *image.RGBA, x0, y0, x1, y1 float64, dashed bool) {
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	steps := int(math.Ceil(length))
	if steps == 0 {
		dst.SetRGBA(int(x0), int(y0), overlayRed)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		if dashed && math.Mod(t*length, dashOn+dashOff) >= dashOn {
			continue
		}
		p := image.Pt(int(math.Floor(x0+dx*t)), int(math.Floor(y0+dy*t)))
		if p.In(dst.Bounds()) {
			dst.SetRGBA(p.X, p.Y, overlayRed)
		}
	}
}
