package db

import (
	"strings"

	"github.com/aukilabs/go-tooling/pkg/errors"

	"github.com/katalvlaran/hurricane/geom"
)

// PathSeparator joins instance names in Path.String.
const PathSeparator = "."

// Path is an immutable chain of instances, from the head (instantiated in the
// owner cell) down to the tail (whose master is the master cell). The zero
// Path is the empty path.
type Path struct {
	sp *sharedPath
}

// sharedPath is one interned node: head instance plus the rest of the chain.
type sharedPath struct {
	head           *Instance
	tail           *sharedPath
	tailInstance   *Instance
	transformation geom.Transformation
}

type pathKey struct {
	head *Instance
	tail *sharedPath
}

// EmptyPath is the path of entities seen from their own cell.
var EmptyPath = Path{}

// NewPath chains instances head first. Each instance must be instantiated in
// the master of the previous one.
func NewPath(instances ...*Instance) (Path, error) {
	p := EmptyPath
	for i, inst := range instances {
		if inst == nil {
			return EmptyPath, errors.New("can't build path: nil instance").
				WithType(ErrTypeBadPath).
				WithTag("index", i)
		}
		if !p.IsEmpty() && inst.owner != p.MasterCell() {
			return EmptyPath, errors.New("can't build path: instance is not in the previous master").
				WithType(ErrTypeBadPath).
				WithTag("index", i).
				WithTag("instance", inst.Name()).
				WithTag("expected", p.MasterCell().Name())
		}
		p = p.Append(inst)
	}
	return p, nil
}

func intern(head *Instance, tail *sharedPath) *sharedPath {
	d := head.owner.db
	k := pathKey{head: head, tail: tail}
	if sp, ok := d.paths[k]; ok {
		return sp
	}
	sp := &sharedPath{head: head, tail: tail, tailInstance: head, transformation: head.transformation}
	if tail != nil {
		sp.tailInstance = tail.tailInstance
		sp.transformation = head.transformation.Compose(tail.transformation)
	}
	d.paths[k] = sp
	return sp
}

// IsEmpty reports whether p has no instance.
func (p Path) IsEmpty() bool { return p.sp == nil }

// HeadInstance returns the first instance, or nil.
func (p Path) HeadInstance() *Instance {
	if p.sp == nil {
		return nil
	}
	return p.sp.head
}

// TailInstance returns the last instance, or nil.
func (p Path) TailInstance() *Instance {
	if p.sp == nil {
		return nil
	}
	return p.sp.tailInstance
}

// TailPath returns p without its head instance.
func (p Path) TailPath() Path {
	if p.sp == nil {
		return EmptyPath
	}
	return Path{sp: p.sp.tail}
}

// HeadPath returns p without its tail instance.
func (p Path) HeadPath() Path {
	if p.sp == nil || p.sp.tail == nil {
		return EmptyPath
	}
	return Path{sp: intern(p.sp.head, Path{sp: p.sp.tail}.HeadPath().sp)}
}

// Append returns p extended by inst at the tail. inst must be instantiated in
// p's master cell, or anywhere when p is empty.
func (p Path) Append(inst *Instance) Path {
	if p.sp == nil {
		return Path{sp: intern(inst, nil)}
	}
	return Path{sp: intern(p.sp.head, p.TailPath().Append(inst).sp)}
}

// Prepend returns p extended by inst at the head. p must start in inst's master.
func (p Path) Prepend(inst *Instance) Path {
	return Path{sp: intern(inst, p.sp)}
}

// OwnerCell returns the cell the path starts from, or nil when empty.
func (p Path) OwnerCell() *Cell {
	if p.sp == nil {
		return nil
	}
	return p.sp.head.owner
}

// MasterCell returns the cell the path leads to, or nil when empty.
func (p Path) MasterCell() *Cell {
	if p.sp == nil {
		return nil
	}
	return p.sp.tailInstance.master
}

// Len returns the number of instances.
func (p Path) Len() int {
	n := 0
	for sp := p.sp; sp != nil; sp = sp.tail {
		n++
	}
	return n
}

// Instances returns the chain, head first.
func (p Path) Instances() []*Instance {
	var out []*Instance
	for sp := p.sp; sp != nil; sp = sp.tail {
		out = append(out, sp.head)
	}
	return out
}

// Transformation maps master cell coordinates to owner cell coordinates.
func (p Path) Transformation() geom.Transformation {
	if p.sp == nil {
		return geom.Transformation{}
	}
	return p.sp.transformation
}

// String joins instance names with PathSeparator.
func (p Path) String() string {
	var b strings.Builder
	for sp := p.sp; sp != nil; sp = sp.tail {
		if sp != p.sp {
			b.WriteString(PathSeparator)
		}
		b.WriteString(sp.head.Name())
	}
	return b.String()
}
