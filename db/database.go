package db

import (
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/google/uuid"
)

// Database is one layout editing session.
type Database struct {
	id     uuid.UUID
	opts   Options
	names  *Names
	paths  map[pathKey]*sharedPath
	tech   *Technology
	cells  []*Cell
	byName map[string]*Cell
	closed bool
}

// New opens an empty session with an empty technology.
func New(opts ...Option) *Database {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	d := &Database{
		id:     uuid.New(),
		opts:   o,
		names:  newNames(),
		paths:  make(map[pathKey]*sharedPath),
		byName: make(map[string]*Cell),
	}
	d.tech = newTechnology(d)
	logs.WithTag("database", d.id).
		WithTag("name", o.Name).
		Debug("database opened")
	return d
}

// ID returns the session identifier.
func (d *Database) ID() uuid.UUID { return d.id }

// Name returns the session label.
func (d *Database) Name() string { return d.opts.Name }

// Names returns the session name interner.
func (d *Database) Names() *Names { return d.names }

// Technology returns the layer set of the session.
func (d *Database) Technology() *Technology { return d.tech }

// Cell returns the cell called name, or nil.
func (d *Database) Cell(name string) *Cell { return d.byName[name] }

// Cells returns the cells in creation order.
func (d *Database) Cells() []*Cell { return d.cells }

// IsClosed reports whether Close was called.
func (d *Database) IsClosed() bool { return d.closed }

// Close ends the session. Entities created before stay readable but nothing
// new can be created.
func (d *Database) Close() {
	if d.closed {
		return
	}
	d.closed = true
	logs.WithTag("database", d.id).
		WithTag("cells", len(d.cells)).
		WithTag("names", d.names.Len()).
		WithTag("paths", len(d.paths)).
		Debug("database closed")
	d.names.reset()
}

// String renders d as "<Database name id>".
func (d *Database) String() string {
	return "<Database " + d.opts.Name + " " + d.id.String() + ">"
}

func (d *Database) checkOpen(op string) error {
	if d.closed {
		return errors.New("can't " + op + ": database closed").
			WithType(ErrTypeClosed).
			WithTag("database", d.id)
	}
	return nil
}
