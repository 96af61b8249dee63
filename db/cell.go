package db

import (
	"iter"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"

	"github.com/katalvlaran/hurricane/geom"
	"github.com/katalvlaran/hurricane/quadtree"
)

// Cell is a design unit: nets with their components, and instances of other cells.
type Cell struct {
	db         *Database
	name       Name
	terminal   bool
	qt         *quadtree.QuadTree
	nets       []*Net
	netByName  map[string]*Net
	instances  []*Instance
	instByName map[string]*Instance
	slaves     []*Instance
}

// NewCell creates an empty cell in d.
func NewCell(d *Database, name string) (*Cell, error) {
	if d == nil {
		return nil, errors.New("can't create cell: nil database").
			WithType(ErrTypeInvalidArgument)
	}
	if err := d.checkOpen("create cell"); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errors.New("can't create cell: empty name").
			WithType(ErrTypeInvalidArgument)
	}
	if _, ok := d.byName[name]; ok {
		return nil, errors.New("can't create cell: name already used").
			WithType(ErrTypeDuplicateName).
			WithTag("cell", name)
	}
	opts := append([]quadtree.Option{quadtree.WithName(d.opts.Name + "/" + name)}, d.opts.QuadTree...)
	qt, err := quadtree.New(opts...)
	if err != nil {
		return nil, errors.New("can't create cell").
			WithType(ErrTypeInvalidArgument).
			WithTag("cell", name).
			Wrap(err)
	}
	c := &Cell{
		db:         d,
		name:       d.names.Intern(name),
		qt:         qt,
		netByName:  make(map[string]*Net),
		instByName: make(map[string]*Instance),
	}
	d.cells = append(d.cells, c)
	d.byName[name] = c
	logs.WithTag("database", d.id).
		WithTag("cell", name).
		Debug("cell created")
	return c, nil
}

// Database returns the session owning c.
func (c *Cell) Database() *Database { return c.db }

// Name returns the cell name.
func (c *Cell) Name() string { return c.name.String() }

// SetTerminalNetlist marks c as a leaf of the netlist hierarchy: traversals do
// not descend through its plugs.
func (c *Cell) SetTerminalNetlist(terminal bool) { c.terminal = terminal }

// IsTerminalNetlist reports whether c was marked as a netlist leaf.
func (c *Cell) IsTerminalNetlist() bool { return c.terminal }

// QuadTree returns the index of c's materialized components and instances.
func (c *Cell) QuadTree() *quadtree.QuadTree { return c.qt }

// BoundingBox returns the union of everything placed in c.
func (c *Cell) BoundingBox() geom.Box { return c.qt.BoundingBox() }

// Net returns the net called name, or nil.
func (c *Cell) Net(name string) *Net { return c.netByName[name] }

// Nets returns the nets in creation order.
func (c *Cell) Nets() []*Net { return c.nets }

// Instance returns the instance called name, or nil.
func (c *Cell) Instance(name string) *Instance { return c.instByName[name] }

// Instances returns the instances placed in c, in creation order.
func (c *Cell) Instances() []*Instance { return c.instances }

// SlaveInstances returns the instances of c placed in other cells.
func (c *Cell) SlaveInstances() []*Instance { return c.slaves }

// AddNet creates a net. An external net gets a plug on every existing instance of c.
func (c *Cell) AddNet(name string, flags NetFlags) (*Net, error) {
	if err := c.db.checkOpen("add net"); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errors.New("can't add net: empty name").
			WithType(ErrTypeInvalidArgument).
			WithTag("cell", c.Name())
	}
	if _, ok := c.netByName[name]; ok {
		return nil, errors.New("can't add net: name already used").
			WithType(ErrTypeDuplicateName).
			WithTag("cell", c.Name()).
			WithTag("net", name)
	}
	n := &Net{cell: c, name: c.db.names.Intern(name), flags: flags}
	c.nets = append(c.nets, n)
	c.netByName[name] = n
	if n.IsExternal() {
		for _, inst := range c.slaves {
			inst.addPlug(n)
		}
	}
	return n, nil
}

// AddInstance places master in c under transformation t.
func (c *Cell) AddInstance(name string, master *Cell, t geom.Transformation) (*Instance, error) {
	if err := c.db.checkOpen("add instance"); err != nil {
		return nil, err
	}
	switch {
	case name == "":
		return nil, errors.New("can't add instance: empty name").
			WithType(ErrTypeInvalidArgument).
			WithTag("cell", c.Name())
	case master == nil:
		return nil, errors.New("can't add instance: nil master").
			WithType(ErrTypeInvalidArgument).
			WithTag("cell", c.Name()).
			WithTag("instance", name)
	case master.db != c.db:
		return nil, errors.New("can't add instance: master belongs to another database").
			WithType(ErrTypeInvalidArgument).
			WithTag("cell", c.Name()).
			WithTag("instance", name)
	case master.instantiates(c):
		return nil, errors.New("can't add instance: cell would contain itself").
			WithType(ErrTypeRecursiveInstance).
			WithTag("cell", c.Name()).
			WithTag("master", master.Name())
	}
	if _, ok := c.instByName[name]; ok {
		return nil, errors.New("can't add instance: name already used").
			WithType(ErrTypeDuplicateName).
			WithTag("cell", c.Name()).
			WithTag("instance", name)
	}
	inst := &Instance{
		owner:          c,
		master:         master,
		name:           c.db.names.Intern(name),
		transformation: t,
		plugByNet:      make(map[*Net]*Plug),
	}
	inst.box = t.ApplyBox(master.BoundingBox())
	for _, n := range master.nets {
		if n.IsExternal() {
			inst.addPlug(n)
		}
	}
	c.instances = append(c.instances, inst)
	c.instByName[name] = inst
	master.slaves = append(master.slaves, inst)
	if err := c.place(inst); err != nil {
		return nil, err
	}
	return inst, nil
}

// instantiates reports whether c is other or contains it at any depth.
func (c *Cell) instantiates(other *Cell) bool {
	if c == other {
		return true
	}
	for _, inst := range c.instances {
		if inst.master.instantiates(other) {
			return true
		}
	}
	return false
}

// place indexes item in c and refits the instances of c if its box grew.
func (c *Cell) place(item quadtree.Item) error {
	if err := c.qt.Insert(item); err != nil {
		return err
	}
	return c.refit()
}

// refit updates the boxes of the instances of c after c changed.
func (c *Cell) refit() error {
	box := c.BoundingBox()
	for _, inst := range c.slaves {
		fitted := inst.transformation.ApplyBox(box)
		if fitted == inst.box {
			continue
		}
		owner := inst.owner
		if err := owner.qt.Remove(inst); err != nil {
			return err
		}
		inst.box = fitted
		if err := owner.place(inst); err != nil {
			return err
		}
	}
	return nil
}

// ComponentsUnder returns the components placed directly in c whose box meets area.
func (c *Cell) ComponentsUnder(area geom.Box) iter.Seq[Component] {
	return func(yield func(Component) bool) {
		for item := range c.qt.GosUnder(area, 0).All() {
			if comp, ok := item.(Component); ok {
				if !yield(comp) {
					return
				}
			}
		}
	}
}

// OccurrencesUnder returns the occurrences of every component and instance
// whose box meets area, down the whole hierarchy below c. Paths are relative
// to c and area is expressed in c's coordinates.
func (c *Cell) OccurrencesUnder(area geom.Box) iter.Seq[Occurrence] {
	return func(yield func(Occurrence) bool) {
		c.occurrencesUnder(area, EmptyPath, yield)
	}
}

func (c *Cell) occurrencesUnder(area geom.Box, prefix Path, yield func(Occurrence) bool) bool {
	for item := range c.qt.GosUnder(area, 0).All() {
		switch e := item.(type) {
		case *Instance:
			if !yield(NewOccurrence(e, prefix)) {
				return false
			}
			local := e.transformation.Invert().ApplyBox(area)
			if !e.master.occurrencesUnder(local, prefix.Append(e), yield) {
				return false
			}
		case Component:
			if !yield(NewOccurrence(e, prefix)) {
				return false
			}
		}
	}
	return true
}

// String renders c as "<Cell name>".
func (c *Cell) String() string { return "<Cell " + c.Name() + ">" }
