package hypernet

import (
	"github.com/katalvlaran/hurricane/db"
)

// IsConnex reports whether two component occurrences of the same owner cell
// touch electrically: their layers conduct to each other and, for some pair of
// conducting basic layers, their shapes' boxes intersect once placed by their
// paths. Components without a layer never touch anything.
func IsConnex(occ1, occ2 db.Occurrence) bool {
	c1, c2 := occ1.Component(), occ2.Component()
	if c1 == nil || c2 == nil {
		return false
	}
	l1, l2 := c1.Layer(), c2.Layer()
	if l1 == nil || l2 == nil || !l1.ExtractMask().Intersects(l2.ExtractMask()) {
		return false
	}
	t1 := occ1.Path().Transformation()
	t2 := occ2.Path().Transformation()
	for _, b1 := range l1.BasicLayers() {
		box1 := t1.ApplyBox(c1.BoundingBoxOn(b1))
		for _, b2 := range l2.BasicLayers() {
			if !b1.ExtractMask().Intersects(b2.ExtractMask()) {
				continue
			}
			if box1.Intersect(t2.ApplyBox(c2.BoundingBoxOn(b2))) {
				return true
			}
		}
	}
	return false
}
