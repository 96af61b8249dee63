package geom

// Box is a closed axis-aligned rectangle.
type Box struct {
	XMin, YMin, XMax, YMax Unit
}

// EmptyBox returns the canonical empty box.
func EmptyBox() Box {
	return Box{XMin: 1, YMin: 1, XMax: -1, YMax: -1}
}

// NewBox builds the box spanning two opposite corners, in any order.
func NewBox(x1, y1, x2, y2 Unit) Box {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	return Box{XMin: x1, YMin: y1, XMax: x2, YMax: y2}
}

// BoxAround returns the degenerate box reduced to p.
func BoxAround(p Point) Box {
	return Box{XMin: p.X, YMin: p.Y, XMax: p.X, YMax: p.Y}
}

// IsEmpty reports whether b covers no point at all.
func (b Box) IsEmpty() bool {
	return b.XMin > b.XMax || b.YMin > b.YMax
}

// Width is XMax-XMin, or 0 for an empty box.
func (b Box) Width() Unit {
	if b.IsEmpty() {
		return 0
	}
	return b.XMax - b.XMin
}

// Height is YMax-YMin, or 0 for an empty box.
func (b Box) Height() Unit {
	if b.IsEmpty() {
		return 0
	}
	return b.YMax - b.YMin
}

// XCenter is the integer midpoint of the horizontal span.
func (b Box) XCenter() Unit {
	return (b.XMin + b.XMax) / 2
}

// YCenter is the integer midpoint of the vertical span.
func (b Box) YCenter() Unit {
	return (b.YMin + b.YMax) / 2
}

// Center returns (XCenter, YCenter).
func (b Box) Center() Point {
	return Point{X: b.XCenter(), Y: b.YCenter()}
}

// Merge returns the smallest box enclosing both b and o.
func (b Box) Merge(o Box) Box {
	if o.IsEmpty() {
		return b
	}
	if b.IsEmpty() {
		return o
	}
	return Box{
		XMin: min(b.XMin, o.XMin),
		YMin: min(b.YMin, o.YMin),
		XMax: max(b.XMax, o.XMax),
		YMax: max(b.YMax, o.YMax),
	}
}

// MergePoint returns the smallest box enclosing b and p.
func (b Box) MergePoint(p Point) Box {
	return b.Merge(BoxAround(p))
}

// Intersect reports whether b and o share at least one point.
// Boxes touching on an edge or a corner intersect.
func (b Box) Intersect(o Box) bool {
	if b.IsEmpty() || o.IsEmpty() {
		return false
	}
	return !(b.XMax < o.XMin || o.XMax < b.XMin || b.YMax < o.YMin || o.YMax < b.YMin)
}

// Intersection returns the common part of b and o, empty when they are disjoint.
func (b Box) Intersection(o Box) Box {
	if !b.Intersect(o) {
		return EmptyBox()
	}
	return Box{
		XMin: max(b.XMin, o.XMin),
		YMin: max(b.YMin, o.YMin),
		XMax: min(b.XMax, o.XMax),
		YMax: min(b.YMax, o.YMax),
	}
}

// Contains reports whether o lies entirely inside b.
func (b Box) Contains(o Box) bool {
	if b.IsEmpty() || o.IsEmpty() {
		return false
	}
	return b.XMin <= o.XMin && o.XMax <= b.XMax && b.YMin <= o.YMin && o.YMax <= b.YMax
}

// ContainsPoint reports whether p lies inside b, borders included.
func (b Box) ContainsPoint(p Point) bool {
	return !b.IsEmpty() && b.XMin <= p.X && p.X <= b.XMax && b.YMin <= p.Y && p.Y <= b.YMax
}

// IsConstrainedBy reports whether o touches one of b's extremal coordinates,
// i.e. whether removing o from the set b was merged from may shrink b.
func (b Box) IsConstrainedBy(o Box) bool {
	if b.IsEmpty() || o.IsEmpty() {
		return false
	}
	return b.XMin == o.XMin || b.YMin == o.YMin || b.XMax == o.XMax || b.YMax == o.YMax
}

// Inflate grows b by d on every side. A negative d shrinks it and may empty it.
func (b Box) Inflate(d Unit) Box {
	if b.IsEmpty() {
		return b
	}
	return Box{XMin: b.XMin - d, YMin: b.YMin - d, XMax: b.XMax + d, YMax: b.YMax + d}
}

// Translate returns b moved by (dx, dy).
func (b Box) Translate(dx, dy Unit) Box {
	if b.IsEmpty() {
		return b
	}
	return Box{XMin: b.XMin + dx, YMin: b.YMin + dy, XMax: b.XMax + dx, YMax: b.YMax + dy}
}

// String renders b as "<xmin ymin xmax ymax>" or "<empty>".
func (b Box) String() string {
	if b.IsEmpty() {
		return "<empty>"
	}
	return "<" + b.XMin.String() + " " + b.YMin.String() + " " + b.XMax.String() + " " + b.YMax.String() + ">"
}
