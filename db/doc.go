// Package db is the small layout database the spatial index and the hypernet
// traversal work on: cells holding nets, components and instances of other
// cells, a technology of layers, and occurrences that name one entity at one
// place of the design hierarchy.
//
// Session
//
//	A Database is one editing session. It owns the name interner, the path
//	table and the technology; every cell is created inside one Database and
//	never migrates. Close tears the session down.
//
// Geometry
//
//	Each cell indexes its materialized components and its instances in its own
//	quadtree.QuadTree. Components are added through their net (AddContact,
//	AddSegment, AddPad, AddRubber) and are materialized immediately. Plugs are
//	created automatically, one per external net of the instantiated master,
//	and are never materialized.
//
// Hierarchy
//
//	A Path is an immutable chain of instances, head first. Paths are interned
//	by the Database, so two equal paths are the same value and Path is
//	comparable. An Occurrence pairs an Entity with the Path leading to it; it
//	is comparable too and can key a map directly.
//
// Components
//
//	Component is a closed set of kinds (Contact, Segment, Pad, Rubber, Plug).
//	Callers that need kind-specific behavior use the capability queries
//	AsPlug and AsRubber instead of type switches.
//
// Errors
//
//   - ErrTypeClosed            the Database was closed.
//   - ErrTypeDuplicateName     a cell, net, instance or layer name is taken.
//   - ErrTypeInvalidArgument   nil or malformed argument.
//   - ErrTypeCrossCell         two entities of different cells were linked.
//   - ErrTypeRecursiveInstance a cell would end up instantiated inside itself.
//   - ErrTypeBadPath           instances do not chain master to owner.
//
// Concurrency
//
//	Nothing in this package is safe for concurrent use.
package db
