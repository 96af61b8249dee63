package quadtree

import (
	"strconv"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"

	"github.com/katalvlaran/hurricane/geom"
)

const rootID NodeID = 0

// node is one arena slot. A node is a leaf (all children NoNode) or fully
// exploded (all four children set).
type node struct {
	live     bool
	parent   NodeID
	children [4]NodeID
	x, y     geom.Unit // split point, meaningful once exploded
	box      geom.Box  // cached; empty means "recompute"
	size     int       // items in the subtree
	items    []Item    // items held directly
}

func newNode(parent NodeID) node {
	return node{
		live:     true,
		parent:   parent,
		children: [4]NodeID{NoNode, NoNode, NoNode, NoNode},
		box:      geom.EmptyBox(),
	}
}

func (n *node) exploded() bool { return n.children[UL] != NoNode }

// QuadTree is a dynamic region quadtree. The zero value is not usable; call New.
type QuadTree struct {
	opts  Options
	nodes []node
	free  []NodeID
}

// New creates an empty tree holding a single leaf root.
func New(opts ...Option) (*QuadTree, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	return &QuadTree{
		opts:  o,
		nodes: []node{newNode(NoNode)},
	}, nil
}

// Options returns the options the tree was built with.
func (qt *QuadTree) Options() Options { return qt.opts }

// Size returns the number of indexed items.
func (qt *QuadTree) Size() int { return qt.nodes[rootID].size }

// IsEmpty reports whether no item is indexed.
func (qt *QuadTree) IsEmpty() bool { return qt.Size() == 0 }

// Contains reports whether item is indexed by qt.
func (qt *QuadTree) Contains(item Item) bool {
	return item != nil && item.Member().tree == qt
}

// BoundingBox returns the union of all item boxes, or an empty box.
func (qt *QuadTree) BoundingBox() geom.Box {
	return qt.boundingBox(rootID)
}

// Insert indexes item. Inserting an item already indexed by qt does nothing.
func (qt *QuadTree) Insert(item Item) error {
	if item == nil {
		return errors.New("can't insert item: nil item").
			WithType(ErrTypeNilItem).
			WithTag("tree", qt.opts.Name)
	}
	m := item.Member()
	if m.tree == qt {
		return nil
	}
	if m.tree != nil {
		return errors.New("can't insert item: indexed by another tree").
			WithType(ErrTypeForeignItem).
			WithTag("tree", qt.opts.Name).
			WithTag("owner", m.tree.opts.Name)
	}

	// store at the deepest node whose quadrant strictly holds the box
	box := item.BoundingBox()
	id := qt.deepestChild(rootID, box)
	qt.attach(id, item)
	for p := id; p != NoNode; p = qt.nodes[p].parent {
		n := &qt.nodes[p]
		n.size++
		// an invalid cache stays invalid: the lazy recompute will see the item
		if !n.box.IsEmpty() {
			n.box = n.box.Merge(box)
		}
	}
	// only the receiving node may split
	if qt.opts.ExplodeThreshold <= qt.nodes[id].size {
		qt.explode(id)
	}
	return nil
}

// Remove un-indexes item. Removing an item that is not indexed does nothing.
func (qt *QuadTree) Remove(item Item) error {
	if item == nil {
		return errors.New("can't remove item: nil item").
			WithType(ErrTypeNilItem).
			WithTag("tree", qt.opts.Name)
	}
	m := item.Member()
	if m.tree == nil {
		return nil
	}
	if m.tree != qt {
		return errors.New("can't remove item: indexed by another tree").
			WithType(ErrTypeForeignItem).
			WithTag("tree", qt.opts.Name).
			WithTag("owner", m.tree.opts.Name)
	}

	box := item.BoundingBox()
	id := m.node
	qt.detach(item)
	for p := id; p != NoNode; p = qt.nodes[p].parent {
		n := &qt.nodes[p]
		n.size--
		// the removed box may have set an edge of the cached box: recompute lazily
		if n.box.IsConstrainedBy(box) {
			n.box = geom.EmptyBox()
		}
	}
	// collapse bottom-up, stopping at the first ancestor still large enough
	for p := id; p != NoNode; p = qt.nodes[p].parent {
		if qt.nodes[p].size > qt.opts.ImplodeThreshold {
			break
		}
		qt.implode(p)
	}
	return nil
}

// String renders the tree as "<QuadTree name size>".
func (qt *QuadTree) String() string {
	if qt.IsEmpty() {
		return "<QuadTree " + qt.opts.Name + " empty>"
	}
	return "<QuadTree " + qt.opts.Name + " " + strconv.Itoa(qt.Size()) + ">"
}

// Root describes the root node.
func (qt *QuadTree) Root() NodeInfo {
	info, _ := qt.Node(rootID)
	return info
}

// Node describes the node behind id. It reports false for a stale handle.
func (qt *QuadTree) Node(id NodeID) (NodeInfo, bool) {
	if id < 0 || int(id) >= len(qt.nodes) || !qt.nodes[id].live {
		return NodeInfo{ID: NoNode, Parent: NoNode}, false
	}
	box := qt.boundingBox(id)
	n := &qt.nodes[id]
	return NodeInfo{
		ID:       id,
		Parent:   n.parent,
		Children: n.children,
		Exploded: n.exploded(),
		SplitX:   n.x,
		SplitY:   n.y,
		Size:     n.size,
		Direct:   len(n.items),
		Box:      box,
	}, true
}

// NodeCount returns the number of live nodes.
func (qt *QuadTree) NodeCount() int {
	return len(qt.nodes) - len(qt.free)
}

// Depth returns the number of levels, 1 for a lone root.
func (qt *QuadTree) Depth() int {
	return qt.depth(rootID)
}

func (qt *QuadTree) depth(id NodeID) int {
	n := &qt.nodes[id]
	if !n.exploded() {
		return 1
	}
	d := 0
	for _, c := range n.children {
		d = max(d, qt.depth(c))
	}
	return d + 1
}

func (qt *QuadTree) boundingBox(id NodeID) geom.Box {
	n := &qt.nodes[id]
	if n.box.IsEmpty() {
		box := geom.EmptyBox()
		if n.exploded() {
			for _, c := range n.children {
				box = box.Merge(qt.boundingBox(c))
			}
		}
		for _, item := range n.items {
			box = box.Merge(item.BoundingBox())
		}
		n.box = box
	}
	return n.box
}

// deepestChild descends from id while box fits strictly inside one quadrant.
func (qt *QuadTree) deepestChild(id NodeID, box geom.Box) NodeID {
	for {
		n := &qt.nodes[id]
		if !n.exploded() {
			return id
		}
		switch {
		case box.XMax < n.x && box.YMax < n.y:
			id = n.children[LL]
		case box.XMax < n.x && n.y < box.YMin:
			id = n.children[UL]
		case n.x < box.XMin && box.YMax < n.y:
			id = n.children[LR]
		case n.x < box.XMin && n.y < box.YMin:
			id = n.children[UR]
		default:
			return id
		}
	}
}

func (qt *QuadTree) explode(id NodeID) {
	if qt.nodes[id].exploded() {
		return
	}
	box := qt.boundingBox(id)
	var children [4]NodeID
	for q := range children {
		children[q] = qt.alloc(id)
	}
	n := &qt.nodes[id]
	n.x, n.y = box.XCenter(), box.YCenter()
	n.children = children
	// redistribute: straddlers of the split lines stay here
	items := n.items
	n.items = nil
	for _, item := range items {
		item.Member().tree = nil
	}
	for _, item := range items {
		child := qt.deepestChild(id, item.BoundingBox())
		qt.attach(child, item)
		if child != id {
			qt.nodes[child].size++
		}
	}
	instrumentExplode(qt.opts.Name)
	logs.WithTag("tree", qt.opts.Name).
		WithTag("node", id).
		WithTag("size", qt.nodes[id].size).
		Debug("quadtree node exploded")
}

func (qt *QuadTree) implode(id NodeID) {
	if !qt.nodes[id].exploded() {
		return
	}
	children := qt.nodes[id].children
	for _, c := range children {
		if qt.nodes[c].exploded() {
			qt.implode(c)
		}
		// children are leaves by now: lift their items
		for _, item := range qt.nodes[c].items {
			qt.attach(id, item)
		}
		qt.release(c)
	}
	qt.nodes[id].children = [4]NodeID{NoNode, NoNode, NoNode, NoNode}
	instrumentImplode(qt.opts.Name)
	logs.WithTag("tree", qt.opts.Name).
		WithTag("node", id).
		WithTag("size", qt.nodes[id].size).
		Debug("quadtree node imploded")
}

func (qt *QuadTree) attach(id NodeID, item Item) {
	n := &qt.nodes[id]
	m := item.Member()
	m.tree = qt
	m.node = id
	m.slot = len(n.items)
	n.items = append(n.items, item)
}

func (qt *QuadTree) detach(item Item) {
	m := item.Member()
	n := &qt.nodes[m.node]
	last := len(n.items) - 1
	// swap-remove, patching the slot of the moved item
	if m.slot != last {
		moved := n.items[last]
		n.items[m.slot] = moved
		moved.Member().slot = m.slot
	}
	n.items[last] = nil
	n.items = n.items[:last]
	m.tree, m.node, m.slot = nil, NoNode, 0
}

func (qt *QuadTree) alloc(parent NodeID) NodeID {
	if k := len(qt.free); k > 0 {
		id := qt.free[k-1]
		qt.free = qt.free[:k-1]
		qt.nodes[id] = newNode(parent)
		return id
	}
	qt.nodes = append(qt.nodes, newNode(parent))
	return NodeID(len(qt.nodes) - 1)
}

func (qt *QuadTree) release(id NodeID) {
	qt.nodes[id] = node{parent: NoNode, children: [4]NodeID{NoNode, NoNode, NoNode, NoNode}}
	qt.free = append(qt.free, id)
}
