package editor

import (
	"github.com/soocke/thermalprep/domain/thermal"
)

// Mask marks the pixels a fill applies to. It is derived from a polygon and
// never stored.
type Mask struct {
	rows, cols int
	bits       []bool
}

// NewMask returns an all-false mask of the given shape.
func NewMask(rows, cols int) Mask {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return Mask{rows: rows, cols: cols, bits: make([]bool, rows*cols)}
}

func (m Mask) Dims() (rows, cols int)        { return m.rows, m.cols }
func (m Mask) At(row, col int) bool          { return m.bits[row*m.cols+col] }
func (m Mask) Set(row, col int, v bool)      { m.bits[row*m.cols+col] = v }
func (m Mask) sameShape(rows, cols int) bool { return m.rows == rows && m.cols == cols }

// Count returns the number of selected pixels.
func (m Mask) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// Empty reports whether no pixel is selected.
func (m Mask) Empty() bool {
	for _, b := range m.bits {
		if b {
			return false
		}
	}
	return true
}

// Rasterize tests every integer pixel coordinate against the polygon with
// an even-odd ray cast. Pixels on an edge or vertex count as inside.
// Polygons with fewer than three vertices or zero area give an empty mask.
func Rasterize(poly []thermal.Point, rows, cols int) Mask {
	mask := NewMask(rows, cols)
	if len(poly) < 3 || twiceArea(poly) == 0 {
		return mask
	}
	minX, minY, maxX, maxY := poly[0].X, poly[0].Y, poly[0].X, poly[0].Y
	for _, p := range poly[1:] {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	minX, minY = max(minX, 0), max(minY, 0)
	maxX, maxY = min(maxX, cols-1), min(maxY, rows-1)
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if contains(poly, x, y) {
				mask.Set(y, x, true)
			}
		}
	}
	return mask
}

func contains(poly []thermal.Point, x, y int) bool {
	n := len(poly)
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := poly[j], poly[i]
		if onSegment(a, b, x, y) {
			return true
		}
		if (b.Y > y) != (a.Y > y) {
			// x coordinate where edge a-b crosses the horizontal line through y
			cross := float64(a.X) + float64(y-a.Y)*float64(b.X-a.X)/float64(b.Y-a.Y)
			if float64(x) < cross {
				inside = !inside
			}
		}
	}
	return inside
}

func onSegment(a, b thermal.Point, x, y int) bool {
	if (b.X-a.X)*(y-a.Y)-(b.Y-a.Y)*(x-a.X) != 0 {
		return false
	}
	return x >= min(a.X, b.X) && x <= max(a.X, b.X) && y >= min(a.Y, b.Y) && y <= max(a.Y, b.Y)
}

// twiceArea is the shoelace sum; zero means the polygon is degenerate.
func twiceArea(poly []thermal.Point) int {
	sum := 0
	for i, j := 0, len(poly)-1; i < len(poly); j, i = i, i+1 {
		sum += poly[j].X*poly[i].Y - poly[i].X*poly[j].Y
	}
	if sum < 0 {
		return -sum
	}
	return sum
}
