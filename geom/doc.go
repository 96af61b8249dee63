// Package geom provides the integer geometry shared by the layout database:
// database units, points, axis-aligned boxes and the eight Manhattan
// orientations used to place instances.
//
// Box semantics
//
//   - A Box is closed: two boxes that only touch along an edge or at a corner
//     do intersect.
//   - A Box is empty when XMin > XMax or YMin > YMax. EmptyBox() returns the
//     canonical empty box; the zero Box{} is the degenerate point box at the
//     origin, NOT an empty box.
//   - Merge with an empty box is the identity; Intersect with an empty box is
//     always false.
//
// Transformations
//
//	Transformation{Tx, Ty, Orientation} maps a point p to Orient(p) + (Tx, Ty).
//	Compose(inner) yields the transformation equivalent to applying inner
//	first and the receiver second, which is how instance paths accumulate
//	their placement from the outermost instance down.
package geom
