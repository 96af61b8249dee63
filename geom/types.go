package geom

import "strconv"

// Unit is a length expressed in database units.
type Unit int64

// String renders the raw database unit value.
func (u Unit) String() string {
	return strconv.FormatInt(int64(u), 10)
}

// Point is a location in database units.
type Point struct {
	X, Y Unit
}

// Translate returns p moved by (dx, dy).
func (p Point) Translate(dx, dy Unit) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// String renders p as "(x y)".
func (p Point) String() string {
	return "(" + p.X.String() + " " + p.Y.String() + ")"
}
