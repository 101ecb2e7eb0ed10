package thermal

import "fmt"

// Point is an integer pixel coordinate: X is the column, Y the row.
type Point struct {
	X, Y int
}

// In reports whether p lies inside a grid of the given shape.
func (p Point) In(rows, cols int) bool {
	return p.X >= 0 && p.X < cols && p.Y >= 0 && p.Y < rows
}

func (p Point) String() string { return fmt.Sprintf("(%d, %d)", p.X, p.Y) }
