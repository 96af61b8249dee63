// Package quadtree implements the region quadtree a cell uses to index its
// placeable items (components, rubbers, instances) for fast area queries.
//
// What
//
//   - Items are stored at the deepest node whose quadrant strictly contains
//     their bounding box. Items straddling a split line stay at the ancestor
//     (loose / bucket quadtree).
//   - A node holding ExplodeThreshold items (default 100) is split into four
//     children around the center of its bounding box.
//   - After a removal, every ancestor whose size fell to ImplodeThreshold
//     (default 80) or below is collapsed back into a leaf, bottom-up.
//   - Node bounding boxes are cached and recomputed lazily after a removal
//     that may have shrunk them.
//
// Storage
//
//	Nodes live in an arena owned by the QuadTree and are addressed by NodeID
//	handles. Each item embeds a Membership recording its node handle and slot,
//	so Remove is O(depth) with no search.
//
// Queries
//
//	Gos() and GosUnder(area, threshold) return re-startable collections. Each
//	call to Locator() yields a fresh cursor; Clone() forks a cursor mid-flight.
//	Nodes are visited depth-first, a node's own items first, then its children
//	in the order upper-left, upper-right, lower-left, lower-right.
//
//	GosUnder skips subtrees whose box misses the area. With a positive
//	threshold it also skips the items of nodes too small to matter for a
//	viewer, and yields only items wider or taller than the threshold.
//
// Concurrency
//
//	A QuadTree is not safe for concurrent use. Do not mutate a tree while a
//	cursor over it is open: cursors hold node handles that Insert/Remove may
//	recycle.
//
// Errors
//
//   - ErrTypeNilItem      Insert or Remove of a nil item.
//   - ErrTypeForeignItem  the item is materialized in another tree.
//   - ErrTypeOption       invalid thresholds given to New.
package quadtree
