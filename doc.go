// Package hurricane is an in-memory layout database for hierarchical VLSI
// designs: cells, nets, shapes and instances, indexed spatially and walked
// electrically.
//
// 🚀 What is hurricane?
//
//	A small, pure Go core that brings together:
//		• Geometry: boxes, points and the eight Manhattan orientations
//		• Spatial index: an adaptive QuadTree with area queries
//		• Layout database: technology layers, cells, nets, components,
//		  instances, plugs, interned names and paths
//		• Occurrences: any entity seen through a path of instances
//		• HyperNets: the full electrical extent of a net across the
//		  hierarchy, through plugs, overlapping shapes and global nets
//
// Under the hood, everything is organized under four subpackages:
//
//	geom/     : Unit, Point, Box and Transformation
//	quadtree/ : the per-cell spatial index and its GosUnder locator
//	db/       : Database, Technology, Cell, Net, Component, Instance, Plug, Path, Occurrence
//	hypernet/ : HyperNet views, root net occurrence resolution and connexity
//
// Quick ASCII example:
//
//	   chip ─ a ─┬─ u1.i ─ inv:i
//	             └─ u2.i ─ inv:i
//
//	is one hypernet with three net occurrences.
//
// Errors carry a type (see errors.Type in github.com/aukilabs/go-tooling),
// soft traversal gaps are logged through its logs package, and both the
// QuadTree and the HyperNet walker export Prometheus counters.
//
//	go get github.com/katalvlaran/hurricane
package hurricane
