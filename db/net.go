package db

import (
	"slices"

	"github.com/aukilabs/go-tooling/pkg/errors"

	"github.com/katalvlaran/hurricane/geom"
)

// Net is one electrical signal of a cell.
type Net struct {
	cell       *Cell
	name       Name
	flags      NetFlags
	components []Component
}

// Cell returns the cell declaring n.
func (n *Net) Cell() *Cell { return n.cell }

// Name returns the net name.
func (n *Net) Name() string { return n.name.String() }

// Flags returns the qualifiers of n.
func (n *Net) Flags() NetFlags { return n.flags }

// IsExternal reports whether n is visible from the instances of its cell.
func (n *Net) IsExternal() bool { return n.flags&External != 0 }

// IsGlobal reports whether n is connected by name across the hierarchy.
func (n *Net) IsGlobal() bool { return n.flags&Global != 0 }

// IsAutomatic reports whether n was created by a tool.
func (n *Net) IsAutomatic() bool { return n.flags&Automatic != 0 }

// IsFused reports whether n gathers the anonymous components of its cell.
func (n *Net) IsFused() bool { return n.flags&Fused != 0 }

// Components returns every component of n, plugs connected to n included.
func (n *Net) Components() []Component { return n.components }

// Plugs returns the plugs of instances of n's cell that are connected to n.
func (n *Net) Plugs() []*Plug {
	var out []*Plug
	for _, c := range n.components {
		if p := c.AsPlug(); p != nil {
			out = append(out, p)
		}
	}
	return out
}

// BoundingBox returns the union of the boxes of n's materialized components.
func (n *Net) BoundingBox() geom.Box {
	box := geom.EmptyBox()
	for _, c := range n.components {
		if c.AsPlug() == nil {
			box = box.Merge(c.BoundingBox())
		}
	}
	return box
}

// AddContact places a w×h contact centered on (x, y).
func (n *Net) AddContact(layer *Layer, x, y, w, h geom.Unit) (*Contact, error) {
	if err := n.checkShape("add contact", layer, w, h); err != nil {
		return nil, err
	}
	c := &Contact{component: component{net: n, layer: layer}, center: geom.Point{X: x, Y: y}, w: w, h: h}
	if err := n.attach(c); err != nil {
		return nil, err
	}
	return c, nil
}

// AddSegment places a wire of the given width between two points on the same
// horizontal or vertical line.
func (n *Net) AddSegment(layer *Layer, source, target geom.Point, width geom.Unit) (*Segment, error) {
	if err := n.checkShape("add segment", layer, width, width); err != nil {
		return nil, err
	}
	if source.X != target.X && source.Y != target.Y {
		return nil, errors.New("can't add segment: not horizontal nor vertical").
			WithType(ErrTypeInvalidArgument).
			WithTag("net", n.Name()).
			WithTag("source", source.String()).
			WithTag("target", target.String())
	}
	s := &Segment{component: component{net: n, layer: layer}, source: source, target: target, width: width}
	if err := n.attach(s); err != nil {
		return nil, err
	}
	return s, nil
}

// AddPad places a rectangular pad.
func (n *Net) AddPad(layer *Layer, box geom.Box) (*Pad, error) {
	if err := n.checkShape("add pad", layer, 0, 0); err != nil {
		return nil, err
	}
	if box.IsEmpty() {
		return nil, errors.New("can't add pad: empty box").
			WithType(ErrTypeInvalidArgument).
			WithTag("net", n.Name())
	}
	p := &Pad{component: component{net: n, layer: layer}, box: box}
	if err := n.attach(p); err != nil {
		return nil, err
	}
	return p, nil
}

// AddRubber stretches an unrouted connection between components of n.
func (n *Net) AddRubber(hooks ...Component) (*Rubber, error) {
	if err := n.cell.db.checkOpen("add rubber"); err != nil {
		return nil, err
	}
	if len(hooks) == 0 {
		return nil, errors.New("can't add rubber: no hooked component").
			WithType(ErrTypeInvalidArgument).
			WithTag("net", n.Name())
	}
	box := geom.EmptyBox()
	for _, h := range hooks {
		if h == nil || h.Net() != n || h.AsPlug() != nil {
			return nil, errors.New("can't add rubber: hooks must be placed components of the net").
				WithType(ErrTypeInvalidArgument).
				WithTag("net", n.Name())
		}
		box = box.MergePoint(h.BoundingBox().Center())
	}
	r := &Rubber{component: component{net: n}, hooks: slices.Clone(hooks), box: box}
	if err := n.attach(r); err != nil {
		return nil, err
	}
	return r, nil
}

// RemoveComponent takes c out of n and out of the cell index.
func (n *Net) RemoveComponent(c Component) error {
	if c == nil || c.Net() != n {
		return errors.New("can't remove component: not a component of the net").
			WithType(ErrTypeInvalidArgument).
			WithTag("net", n.Name())
	}
	if p := c.AsPlug(); p != nil {
		return p.SetNet(nil)
	}
	for _, other := range n.components {
		if r := other.AsRubber(); r != nil && slices.Contains(r.hooks, c) {
			return errors.New("can't remove component: a rubber is hooked to it").
				WithType(ErrTypeInvalidArgument).
				WithTag("net", n.Name())
		}
	}
	n.detach(c)
	if err := n.cell.qt.Remove(c); err != nil {
		return err
	}
	return n.cell.refit()
}

// String renders n as "<Net cell:name>".
func (n *Net) String() string { return "<Net " + n.cell.Name() + ":" + n.Name() + ">" }

func (n *Net) checkShape(op string, layer *Layer, w, h geom.Unit) error {
	if err := n.cell.db.checkOpen(op); err != nil {
		return err
	}
	if layer == nil || layer.tech != n.cell.db.tech {
		return errors.New("can't " + op + ": layer is not part of the technology").
			WithType(ErrTypeInvalidArgument).
			WithTag("net", n.Name())
	}
	if w < 0 || h < 0 {
		return errors.New("can't " + op + ": negative size").
			WithType(ErrTypeInvalidArgument).
			WithTag("net", n.Name())
	}
	return nil
}

// attach adds a freshly built shape to n and places it in the cell index.
func (n *Net) attach(c Component) error {
	n.components = append(n.components, c)
	return n.cell.place(c)
}

func (n *Net) detach(c Component) {
	if i := slices.Index(n.components, c); i >= 0 {
		n.components = slices.Delete(n.components, i, i+1)
	}
}
