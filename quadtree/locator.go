package quadtree

import (
	"iter"

	"github.com/katalvlaran/hurricane/geom"
)

// Gos is a lazy, re-startable collection of indexed items.
// Every Locator call starts a new walk over the current tree content.
type Gos struct {
	tree      *QuadTree
	under     bool
	area      geom.Box
	threshold geom.Unit
}

// Gos returns every indexed item.
func (qt *QuadTree) Gos() Gos {
	return Gos{tree: qt}
}

// GosUnder returns the items whose bounding box intersects area. A positive
// threshold also drops items whose width and height both stay within it.
func (qt *QuadTree) GosUnder(area geom.Box, threshold geom.Unit) Gos {
	return Gos{tree: qt, under: true, area: area, threshold: threshold}
}

// Locator returns a fresh cursor positioned on the first item, if any.
func (g Gos) Locator() *Locator {
	l := &Locator{
		tree:      g.tree,
		under:     g.under,
		area:      g.area,
		threshold: g.threshold,
		current:   NoNode,
	}
	if g.tree == nil {
		return l
	}
	if !g.under {
		l.current = g.tree.firstNode(rootID)
		return l
	}
	if g.area.IsEmpty() {
		return l
	}
	l.current = g.tree.firstNodeUnder(rootID, g.area)
	// the initial seek keeps a node only when both sides exceed the threshold
	for l.current != NoNode && l.threshold > 0 {
		box := g.tree.boundingBox(l.current)
		if box.Width() > l.threshold && box.Height() > l.threshold {
			break
		}
		l.current = g.tree.nextNodeUnder(l.current, g.area)
	}
	if l.current != NoNode && !l.accept(l.Item()) {
		l.Next()
	}
	return l
}

// All returns an iterator over the collection, driven by a fresh cursor.
func (g Gos) All() iter.Seq[Item] {
	return func(yield func(Item) bool) {
		for l := g.Locator(); l.Valid(); l.Next() {
			if !yield(l.Item()) {
				return
			}
		}
	}
}

// Collect drains a fresh cursor into a slice.
func (g Gos) Collect() []Item {
	var out []Item
	for item := range g.All() {
		out = append(out, item)
	}
	return out
}

// Count walks the collection and returns its length.
func (g Gos) Count() int {
	n := 0
	for l := g.Locator(); l.Valid(); l.Next() {
		n++
	}
	return n
}

// Locator is a cursor over a Gos collection.
type Locator struct {
	tree      *QuadTree
	under     bool
	area      geom.Box
	threshold geom.Unit
	current   NodeID
	index     int
}

// Valid reports whether the cursor stands on an item.
func (l *Locator) Valid() bool {
	return l.current != NoNode && l.index < len(l.tree.nodes[l.current].items)
}

// Item returns the current item, or nil once exhausted.
func (l *Locator) Item() Item {
	if !l.Valid() {
		return nil
	}
	return l.tree.nodes[l.current].items[l.index]
}

// Clone returns an independent copy of the cursor at its current position.
func (l *Locator) Clone() *Locator {
	c := *l
	return &c
}

// Next advances to the following item. It is a no-op once exhausted.
func (l *Locator) Next() {
	if !l.Valid() {
		return
	}
	if !l.under {
		l.index++
		if l.index >= len(l.tree.nodes[l.current].items) {
			l.current = l.tree.nextNode(l.current)
			l.index = 0
		}
		return
	}
	for {
		l.index++
		if l.index >= len(l.tree.nodes[l.current].items) {
			// later seeks keep a node when either side exceeds the threshold
			for {
				l.current = l.tree.nextNodeUnder(l.current, l.area)
				if l.current == NoNode || l.threshold <= 0 {
					break
				}
				box := l.tree.boundingBox(l.current)
				if box.Width() > l.threshold || box.Height() > l.threshold {
					break
				}
			}
			l.index = 0
		}
		if !l.Valid() || l.accept(l.Item()) {
			return
		}
	}
}

func (l *Locator) accept(item Item) bool {
	box := item.BoundingBox()
	if !box.Intersect(l.area) {
		return false
	}
	return l.threshold <= 0 || box.Width() > l.threshold || box.Height() > l.threshold
}

// firstNode returns the first node of the subtree at id holding items.
func (qt *QuadTree) firstNode(id NodeID) NodeID {
	n := &qt.nodes[id]
	if len(n.items) > 0 {
		return id
	}
	if n.exploded() {
		for _, c := range n.children {
			if f := qt.firstNode(c); f != NoNode {
				return f
			}
		}
	}
	return NoNode
}

// firstNodeUnder is firstNode restricted to subtrees whose box meets area.
func (qt *QuadTree) firstNodeUnder(id NodeID, area geom.Box) NodeID {
	if !qt.boundingBox(id).Intersect(area) {
		return NoNode
	}
	n := &qt.nodes[id]
	if len(n.items) > 0 {
		return id
	}
	if n.exploded() {
		for _, c := range n.children {
			if f := qt.firstNodeUnder(c, area); f != NoNode {
				return f
			}
		}
	}
	return NoNode
}

func (qt *QuadTree) nextNode(id NodeID) NodeID {
	return qt.next(id, qt.firstNode)
}

func (qt *QuadTree) nextNodeUnder(id NodeID, area geom.Box) NodeID {
	return qt.next(id, func(c NodeID) NodeID { return qt.firstNodeUnder(c, area) })
}

// next returns the node following id in depth-first UL, UR, LL, LR order:
// first inside id's own children, then in the younger siblings of id and of
// each of its ancestors.
func (qt *QuadTree) next(id NodeID, first func(NodeID) NodeID) NodeID {
	if n := &qt.nodes[id]; n.exploded() {
		for _, c := range n.children {
			if f := first(c); f != NoNode {
				return f
			}
		}
	}
	for q := id; qt.nodes[q].parent != NoNode; q = qt.nodes[q].parent {
		siblings := qt.nodes[qt.nodes[q].parent].children
		k := 0
		for siblings[k] != q {
			k++
		}
		for _, s := range siblings[k+1:] {
			if f := first(s); f != NoNode {
				return f
			}
		}
	}
	return NoNode
}
