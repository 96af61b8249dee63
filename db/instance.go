package db

import (
	"github.com/aukilabs/go-tooling/pkg/errors"

	"github.com/katalvlaran/hurricane/geom"
	"github.com/katalvlaran/hurricane/quadtree"
)

// Instance places a master cell inside an owner cell.
type Instance struct {
	quadtree.Membership
	owner          *Cell
	master         *Cell
	name           Name
	transformation geom.Transformation
	box            geom.Box
	plugs          []*Plug
	plugByNet      map[*Net]*Plug
}

// Cell returns the owner cell.
func (i *Instance) Cell() *Cell { return i.owner }

// Master returns the instantiated cell.
func (i *Instance) Master() *Cell { return i.master }

// Name returns the instance name.
func (i *Instance) Name() string { return i.name.String() }

// Transformation maps master coordinates to owner coordinates.
func (i *Instance) Transformation() geom.Transformation { return i.transformation }

// BoundingBox returns the master box placed in the owner.
func (i *Instance) BoundingBox() geom.Box { return i.box }

// Plug returns the plug of masterNet, or nil when masterNet is not an
// external net of the master.
func (i *Instance) Plug(masterNet *Net) *Plug { return i.plugByNet[masterNet] }

// Plugs returns one plug per external net of the master.
func (i *Instance) Plugs() []*Plug { return i.plugs }

// String renders i as "<Instance name master>".
func (i *Instance) String() string {
	return "<Instance " + i.Name() + " " + i.master.Name() + ">"
}

func (i *Instance) addPlug(masterNet *Net) {
	if _, ok := i.plugByNet[masterNet]; ok {
		return
	}
	p := &Plug{instance: i, masterNet: masterNet}
	i.plugs = append(i.plugs, p)
	i.plugByNet[masterNet] = p
}

// Plug is the connection point of an external master net on one instance.
// It lives in the owner cell and is connected to at most one of its nets.
type Plug struct {
	quadtree.Membership
	instance  *Instance
	masterNet *Net
	net       *Net
}

// Instance returns the instance carrying p.
func (p *Plug) Instance() *Instance { return p.instance }

// MasterNet returns the external net of the master that p stands for.
func (p *Plug) MasterNet() *Net { return p.masterNet }

// Net returns the owner net p is connected to, or nil.
func (p *Plug) Net() *Net { return p.net }

// IsConnected reports whether p is connected to a net.
func (p *Plug) IsConnected() bool { return p.net != nil }

// Cell returns the owner cell of p's instance.
func (p *Plug) Cell() *Cell { return p.instance.owner }

// Layer is nil: a plug draws nothing.
func (p *Plug) Layer() *Layer { return nil }

// BoundingBox returns the master net box placed in the owner.
func (p *Plug) BoundingBox() geom.Box {
	return p.instance.transformation.ApplyBox(p.masterNet.BoundingBox())
}

// BoundingBoxOn is always empty.
func (p *Plug) BoundingBoxOn(*Layer) geom.Box { return geom.EmptyBox() }

// AsPlug returns p.
func (p *Plug) AsPlug() *Plug { return p }

// AsRubber returns nil.
func (p *Plug) AsRubber() *Rubber { return nil }

// SetNet connects p to net, a net of the instance owner, or disconnects it
// when net is nil.
func (p *Plug) SetNet(net *Net) error {
	if net != nil && net.cell != p.instance.owner {
		return errors.New("can't connect plug: net is not in the instance owner").
			WithType(ErrTypeCrossCell).
			WithTag("plug", p.String()).
			WithTag("net", net.String())
	}
	if p.net == net {
		return nil
	}
	if p.net != nil {
		p.net.detach(p)
	}
	p.net = net
	if net != nil {
		net.components = append(net.components, p)
	}
	return nil
}

// String renders p as "<Plug instance.masterNet>".
func (p *Plug) String() string {
	return "<Plug " + p.instance.Name() + "." + p.masterNet.Name() + ">"
}
