package db

import "github.com/katalvlaran/hurricane/geom"

// Occurrence is an entity seen through a path. The zero Occurrence is invalid.
// Occurrences are comparable: two occurrences are equal when they name the
// same entity through the same path.
type Occurrence struct {
	entity Entity
	path   Path
}

// NewOccurrence pairs entity with path. path must lead to entity's cell.
func NewOccurrence(entity Entity, path Path) Occurrence {
	return Occurrence{entity: entity, path: path}
}

// IsValid reports whether o names an entity.
func (o Occurrence) IsValid() bool { return o.entity != nil }

// Entity returns the named entity.
func (o Occurrence) Entity() Entity { return o.entity }

// Path returns the path leading to the entity.
func (o Occurrence) Path() Path { return o.path }

// OwnerCell returns the cell the path starts from; the entity's own cell for
// an empty path.
func (o Occurrence) OwnerCell() *Cell {
	if !o.path.IsEmpty() {
		return o.path.OwnerCell()
	}
	if o.entity == nil {
		return nil
	}
	return o.entity.Cell()
}

// MasterCell returns the cell holding the entity.
func (o Occurrence) MasterCell() *Cell {
	if o.entity == nil {
		return nil
	}
	return o.entity.Cell()
}

// Net returns the entity as a net, or nil.
func (o Occurrence) Net() *Net {
	n, _ := o.entity.(*Net)
	return n
}

// Component returns the entity as a component, or nil.
func (o Occurrence) Component() Component {
	c, _ := o.entity.(Component)
	return c
}

// NetOccurrence returns the occurrence of the net of a component occurrence
// through the same path. It returns the zero Occurrence when the entity is
// not a component or is an unconnected plug.
func (o Occurrence) NetOccurrence() Occurrence {
	c := o.Component()
	if c == nil || c.Net() == nil {
		return Occurrence{}
	}
	return Occurrence{entity: c.Net(), path: o.path}
}

// BoundingBox returns the entity box in owner cell coordinates.
func (o Occurrence) BoundingBox() geom.Box {
	if o.entity == nil {
		return geom.EmptyBox()
	}
	return o.path.Transformation().ApplyBox(o.entity.BoundingBox())
}

// String renders o as "<Occurrence path:entity>".
func (o Occurrence) String() string {
	if o.entity == nil {
		return "<Occurrence invalid>"
	}
	return "<Occurrence " + o.path.String() + ":" + o.entity.String() + ">"
}
