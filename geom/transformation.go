package geom

// Orientation is one of the eight Manhattan orientations.
type Orientation uint8

const (
	// ID is the identity.
	ID Orientation = iota
	// R1 rotates by 90 degrees counter-clockwise.
	R1
	// R2 rotates by 180 degrees.
	R2
	// R3 rotates by 270 degrees counter-clockwise.
	R3
	// MX mirrors across the Y axis (x becomes -x).
	MX
	// XR mirrors across the Y axis then rotates by 90 degrees.
	XR
	// MY mirrors across the X axis (y becomes -y).
	MY
	// YR mirrors across the X axis then rotates by 90 degrees.
	YR
)

var orientationNames = [...]string{"ID", "R1", "R2", "R3", "MX", "XR", "MY", "YR"}

// String returns the conventional orientation code.
func (o Orientation) String() string {
	if int(o) < len(orientationNames) {
		return orientationNames[o]
	}
	return "?"
}

// matrix is the 2x2 integer matrix {a b; c d} mapping (x, y) to (a*x+b*y, c*x+d*y).
type matrix [4]Unit

var orientationMatrices = [...]matrix{
	ID: {1, 0, 0, 1},
	R1: {0, -1, 1, 0},
	R2: {-1, 0, 0, -1},
	R3: {0, 1, -1, 0},
	MX: {-1, 0, 0, 1},
	XR: {0, -1, -1, 0},
	MY: {1, 0, 0, -1},
	YR: {0, 1, 1, 0},
}

func (m matrix) mul(n matrix) matrix {
	return matrix{
		m[0]*n[0] + m[1]*n[2], m[0]*n[1] + m[1]*n[3],
		m[2]*n[0] + m[3]*n[2], m[2]*n[1] + m[3]*n[3],
	}
}

func orientationOf(m matrix) Orientation {
	for o, om := range orientationMatrices {
		if om == m {
			return Orientation(o)
		}
	}
	return ID
}

// Transformation places a cell inside its parent: orientation first, then translation.
// The zero value is the identity.
type Transformation struct {
	Tx, Ty      Unit
	Orientation Orientation
}

// Translation returns a pure translation.
func Translation(tx, ty Unit) Transformation {
	return Transformation{Tx: tx, Ty: ty}
}

// IsIdentity reports whether t leaves every point unchanged.
func (t Transformation) IsIdentity() bool {
	return t.Tx == 0 && t.Ty == 0 && t.Orientation == ID
}

// Apply maps p through t.
func (t Transformation) Apply(p Point) Point {
	m := orientationMatrices[t.Orientation]
	return Point{
		X: m[0]*p.X + m[1]*p.Y + t.Tx,
		Y: m[2]*p.X + m[3]*p.Y + t.Ty,
	}
}

// ApplyBox maps b through t. Manhattan orientations keep boxes axis-aligned.
func (t Transformation) ApplyBox(b Box) Box {
	if b.IsEmpty() {
		return b
	}
	p1 := t.Apply(Point{X: b.XMin, Y: b.YMin})
	p2 := t.Apply(Point{X: b.XMax, Y: b.YMax})
	return NewBox(p1.X, p1.Y, p2.X, p2.Y)
}

// Compose returns the transformation applying inner first, then t.
func (t Transformation) Compose(inner Transformation) Transformation {
	origin := t.Apply(Point{X: inner.Tx, Y: inner.Ty})
	m := orientationMatrices[t.Orientation].mul(orientationMatrices[inner.Orientation])
	return Transformation{Tx: origin.X, Ty: origin.Y, Orientation: orientationOf(m)}
}

// Invert returns the transformation undoing t.
func (t Transformation) Invert() Transformation {
	m := orientationMatrices[t.Orientation]
	// Orientation matrices are orthogonal: the inverse is the transpose.
	inv := matrix{m[0], m[2], m[1], m[3]}
	o := orientationOf(inv)
	back := Transformation{Orientation: o}.Apply(Point{X: -t.Tx, Y: -t.Ty})
	return Transformation{Tx: back.X, Ty: back.Y, Orientation: o}
}

// String renders t as "<tx ty orientation>".
func (t Transformation) String() string {
	return "<" + t.Tx.String() + " " + t.Ty.String() + " " + t.Orientation.String() + ">"
}
