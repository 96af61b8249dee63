// Package db defines error types, options and net flags for the layout
// database of github.com/katalvlaran/hurricane.
package db

import (
	"github.com/katalvlaran/hurricane/geom"
	"github.com/katalvlaran/hurricane/quadtree"
)

// Error types reported by db operations, see errors.Type.
const (
	// ErrTypeClosed is reported by any constructor called on a closed Database.
	ErrTypeClosed = "db_closed"

	// ErrTypeDuplicateName is reported when a name is already used in its scope.
	ErrTypeDuplicateName = "db_duplicate_name"

	// ErrTypeInvalidArgument is reported for nil or malformed arguments.
	ErrTypeInvalidArgument = "db_invalid_argument"

	// ErrTypeCrossCell is reported when entities of two different cells are linked.
	ErrTypeCrossCell = "db_cross_cell"

	// ErrTypeRecursiveInstance is reported when a cell would contain itself.
	ErrTypeRecursiveInstance = "db_recursive_instance"

	// ErrTypeBadPath is reported when a chain of instances is not a valid path.
	ErrTypeBadPath = "db_bad_path"
)

// Entity is anything an Occurrence can point at: nets, components, plugs and
// instances.
type Entity interface {
	// Cell returns the cell the entity lives in.
	Cell() *Cell
	// BoundingBox returns the box of the entity in its cell's coordinates.
	BoundingBox() geom.Box
	String() string
}

// NetFlags qualify a net.
type NetFlags uint8

const (
	// External nets are visible from the instances of their cell through plugs.
	External NetFlags = 1 << iota
	// Global nets are implicitly connected by name across the hierarchy.
	Global
	// Automatic nets were created by a tool rather than by the designer.
	Automatic
	// Fused nets gather the anonymous components of a cell.
	Fused
)

// Option configures a Database at construction.
type Option func(*Options)

// Options holds the tunable parameters of a Database.
type Options struct {
	// Name labels the session in logs and in the quadtrees of its cells.
	Name string

	// QuadTree options applied to the index of every cell.
	QuadTree []quadtree.Option
}

// DefaultOptions returns the name "hurricane" and default quadtree thresholds.
func DefaultOptions() Options {
	return Options{Name: "hurricane"}
}

// WithName sets the session label.
func WithName(name string) Option {
	return func(o *Options) {
		if name != "" {
			o.Name = name
		}
	}
}

// WithQuadTreeThresholds sets the explode and implode thresholds of every cell index.
func WithQuadTreeThresholds(explode, implode int) Option {
	return func(o *Options) {
		o.QuadTree = append(o.QuadTree,
			quadtree.WithExplodeThreshold(explode),
			quadtree.WithImplodeThreshold(implode),
		)
	}
}
