package db

import (
	"github.com/katalvlaran/hurricane/geom"
	"github.com/katalvlaran/hurricane/quadtree"
)

// Component is a piece of a net. The kinds are Contact, Segment, Pad, Rubber
// and Plug; all but Plug are placeable items of their cell's quadtree.
type Component interface {
	quadtree.Item
	Entity

	// Net returns the net the component belongs to, nil for an unconnected plug.
	Net() *Net
	// Layer returns the drawing layer, nil for rubbers and plugs.
	Layer() *Layer
	// BoundingBoxOn returns the shape drawn on one basic layer of Layer,
	// or an empty box when the component has nothing there.
	BoundingBoxOn(basic *Layer) geom.Box

	// AsPlug returns the component as a plug, or nil.
	AsPlug() *Plug
	// AsRubber returns the component as a rubber, or nil.
	AsRubber() *Rubber
}

// component holds what every materialized kind shares.
type component struct {
	quadtree.Membership
	net   *Net
	layer *Layer
}

func (c *component) Net() *Net         { return c.net }
func (c *component) Layer() *Layer     { return c.layer }
func (c *component) Cell() *Cell       { return c.net.cell }
func (c *component) AsPlug() *Plug     { return nil }
func (c *component) AsRubber() *Rubber { return nil }

// on inflates box by the enclosure of basic, if basic is drawn at all.
func (c *component) on(box geom.Box, basic *Layer) geom.Box {
	if c.layer == nil || !c.layer.Contains(basic) {
		return geom.EmptyBox()
	}
	return box.Inflate(c.layer.Enclosure(basic))
}

// Contact is a rectangle centered on a point, typically a via.
type Contact struct {
	component
	center geom.Point
	w, h   geom.Unit
}

// Center returns the contact center.
func (c *Contact) Center() geom.Point { return c.center }

// BoundingBox returns the nominal w×h box.
func (c *Contact) BoundingBox() geom.Box {
	return geom.NewBox(c.center.X-c.w/2, c.center.Y-c.h/2, c.center.X+c.w/2, c.center.Y+c.h/2)
}

// BoundingBoxOn returns the box drawn on basic.
func (c *Contact) BoundingBoxOn(basic *Layer) geom.Box { return c.on(c.BoundingBox(), basic) }

func (c *Contact) String() string {
	return "<Contact " + c.net.Name() + " " + c.layer.Name() + " " + c.center.String() + ">"
}

// Segment is a wire between two points of the same horizontal or vertical line.
type Segment struct {
	component
	source, target geom.Point
	width          geom.Unit
}

// Source returns the first end point.
func (s *Segment) Source() geom.Point { return s.source }

// Target returns the second end point.
func (s *Segment) Target() geom.Point { return s.target }

// Width returns the wire width.
func (s *Segment) Width() geom.Unit { return s.width }

// BoundingBox returns the axis span widened by half the width on each side.
func (s *Segment) BoundingBox() geom.Box {
	return geom.BoxAround(s.source).MergePoint(s.target).Inflate(s.width / 2)
}

// BoundingBoxOn returns the box drawn on basic.
func (s *Segment) BoundingBoxOn(basic *Layer) geom.Box { return s.on(s.BoundingBox(), basic) }

func (s *Segment) String() string {
	return "<Segment " + s.net.Name() + " " + s.layer.Name() + " " + s.source.String() + " " + s.target.String() + ">"
}

// Pad is a plain rectangle.
type Pad struct {
	component
	box geom.Box
}

// BoundingBox returns the pad rectangle.
func (p *Pad) BoundingBox() geom.Box { return p.box }

// BoundingBoxOn returns the box drawn on basic.
func (p *Pad) BoundingBoxOn(basic *Layer) geom.Box { return p.on(p.box, basic) }

func (p *Pad) String() string {
	return "<Pad " + p.net.Name() + " " + p.layer.Name() + " " + p.box.String() + ">"
}

// Rubber is an unrouted connection between components of one net. It has no
// layer and its box spans the centers of the hooked components.
type Rubber struct {
	component
	hooks []Component
	box   geom.Box
}

// Hooks returns the connected components.
func (r *Rubber) Hooks() []Component { return r.hooks }

// BoundingBox returns the box of the hooked components' centers.
func (r *Rubber) BoundingBox() geom.Box { return r.box }

// BoundingBoxOn is always empty: a rubber draws nothing.
func (r *Rubber) BoundingBoxOn(*Layer) geom.Box { return geom.EmptyBox() }

// AsRubber returns r.
func (r *Rubber) AsRubber() *Rubber { return r }

func (r *Rubber) String() string {
	return "<Rubber " + r.net.Name() + " " + r.box.String() + ">"
}
