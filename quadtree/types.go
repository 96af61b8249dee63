// Package quadtree defines item membership, options and error types
// for the quadtree subpackage of github.com/katalvlaran/hurricane.
package quadtree

import (
	"github.com/aukilabs/go-tooling/pkg/errors"

	"github.com/katalvlaran/hurricane/geom"
)

// Error types reported by quadtree operations, see errors.Type.
const (
	// ErrTypeNilItem is reported when a nil item is inserted or removed.
	ErrTypeNilItem = "quadtree_nil_item"

	// ErrTypeForeignItem is reported when an item indexed by another tree is
	// inserted into or removed from this one.
	ErrTypeForeignItem = "quadtree_foreign_item"

	// ErrTypeOption is reported by New for inconsistent thresholds.
	ErrTypeOption = "quadtree_invalid_option"
)

// Default thresholds.
const (
	DefaultExplodeThreshold = 100
	DefaultImplodeThreshold = 80
)

// NodeID is a stable handle on a node of the tree arena.
type NodeID int32

// NoNode is the null handle.
const NoNode NodeID = -1

// Quadrants, in iteration order.
const (
	UL = iota // upper-left
	UR        // upper-right
	LL        // lower-left
	LR        // lower-right
)

// Item is anything the tree can index.
//
// BoundingBox must not change while the item is materialized: unmaterialize
// (Remove), move, then re-insert.
type Item interface {
	BoundingBox() geom.Box
	Member() *Membership
}

// Membership records where an item is stored. Embed it by value in item
// types; the promoted pointer-receiver Member method then satisfies Item.
type Membership struct {
	tree *QuadTree
	node NodeID
	slot int
}

// Member returns m itself.
func (m *Membership) Member() *Membership { return m }

// IsMaterialized reports whether the item is currently indexed.
func (m *Membership) IsMaterialized() bool { return m.tree != nil }

// Tree returns the tree indexing the item, or nil.
func (m *Membership) Tree() *QuadTree { return m.tree }

// Node returns the handle of the node holding the item, or NoNode.
func (m *Membership) Node() NodeID {
	if m.tree == nil {
		return NoNode
	}
	return m.node
}

// Option configures a QuadTree at construction.
type Option func(*Options)

// Options holds the tunable parameters of a QuadTree.
type Options struct {
	// ExplodeThreshold is the node size that triggers a split.
	ExplodeThreshold int

	// ImplodeThreshold is the subtree size at or below which a node collapses.
	// Must be strictly lower than ExplodeThreshold.
	ImplodeThreshold int

	// Name labels the tree in logs and metrics.
	Name string
}

// DefaultOptions returns thresholds 100/80 and the name "default".
func DefaultOptions() Options {
	return Options{
		ExplodeThreshold: DefaultExplodeThreshold,
		ImplodeThreshold: DefaultImplodeThreshold,
		Name:             "default",
	}
}

// WithExplodeThreshold sets the split threshold.
func WithExplodeThreshold(n int) Option {
	return func(o *Options) { o.ExplodeThreshold = n }
}

// WithImplodeThreshold sets the collapse threshold.
func WithImplodeThreshold(n int) Option {
	return func(o *Options) { o.ImplodeThreshold = n }
}

// WithName sets the label used in logs and metrics.
func WithName(name string) Option {
	return func(o *Options) {
		if name != "" {
			o.Name = name
		}
	}
}

func (o Options) validate() error {
	switch {
	case o.ExplodeThreshold < 1:
		return errors.New("explode threshold must be positive").
			WithType(ErrTypeOption).
			WithTag("explode", o.ExplodeThreshold)
	case o.ImplodeThreshold < 0:
		return errors.New("implode threshold cannot be negative").
			WithType(ErrTypeOption).
			WithTag("implode", o.ImplodeThreshold)
	case o.ImplodeThreshold >= o.ExplodeThreshold:
		return errors.New("implode threshold must be lower than explode threshold").
			WithType(ErrTypeOption).
			WithTag("explode", o.ExplodeThreshold).
			WithTag("implode", o.ImplodeThreshold)
	}
	return nil
}

// NodeInfo is a read-only snapshot of one node, for inspection and tests.
type NodeInfo struct {
	ID       NodeID
	Parent   NodeID
	Children [4]NodeID // UL, UR, LL, LR; all NoNode on a leaf
	Exploded bool
	SplitX   geom.Unit
	SplitY   geom.Unit
	Size     int // items in the whole subtree
	Direct   int // items held by this node itself
	Box      geom.Box
}
