package quadtree_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hurricane/geom"
	"github.com/katalvlaran/hurricane/quadtree"
)

// rect is a minimal placeable item.
type rect struct {
	quadtree.Membership
	id  int
	box geom.Box
}

func (r *rect) BoundingBox() geom.Box { return r.box }

func newRect(id int, x1, y1, x2, y2 geom.Unit) *rect {
	return &rect{id: id, box: geom.NewBox(x1, y1, x2, y2)}
}

// gridRects builds 100 unit squares on a 10×10 grid of pitch 3, so that no
// square touches the center lines of the whole set.
func gridRects() []*rect {
	rs := make([]*rect, 0, 100)
	for i := 0; i < 10; i++ {
		for j := 0; j < 10; j++ {
			x, y := geom.Unit(3*i), geom.Unit(3*j)
			rs = append(rs, newRect(len(rs), x, y, x+1, y+1))
		}
	}
	return rs
}

// randomRects builds n boxes in [0,1000)² with sides in [0,50].
func randomRects(rng *rand.Rand, n int) []*rect {
	rs := make([]*rect, n)
	for i := range rs {
		x := geom.Unit(rng.Intn(1000))
		y := geom.Unit(rng.Intn(1000))
		w := geom.Unit(rng.Intn(51))
		h := geom.Unit(rng.Intn(51))
		rs[i] = newRect(i, x, y, x+w, y+h)
	}
	return rs
}

func mustTree(t testing.TB, opts ...quadtree.Option) *quadtree.QuadTree {
	t.Helper()
	qt, err := quadtree.New(opts...)
	require.NoError(t, err)
	return qt
}

func insertAll(t testing.TB, qt *quadtree.QuadTree, rs []*rect) {
	t.Helper()
	for _, r := range rs {
		require.NoError(t, qt.Insert(r))
	}
}

// ids returns the sorted ids of items.
func ids(items []quadtree.Item) []int {
	out := make([]int, 0, len(items))
	for _, it := range items {
		out = append(out, it.(*rect).id)
	}
	sort.Ints(out)
	return out
}

// bruteUnder is the linear-scan reference for GosUnder(area, 0).
func bruteUnder(rs []*rect, area geom.Box) []int {
	out := []int{}
	for _, r := range rs {
		if r.box.Intersect(area) {
			out = append(out, r.id)
		}
	}
	sort.Ints(out)
	return out
}

// checkStructure verifies the size, membership, bounding box and
// leaf/exploded invariants of every node.
func checkStructure(t *testing.T, qt *quadtree.QuadTree) {
	t.Helper()
	direct := make(map[quadtree.NodeID]geom.Box)
	for it := range qt.Gos().All() {
		m := it.Member()
		require.True(t, m.IsMaterialized())
		require.Same(t, qt, m.Tree())
		_, ok := qt.Node(m.Node())
		require.True(t, ok)
		box, seen := direct[m.Node()]
		if !seen {
			box = geom.EmptyBox()
		}
		direct[m.Node()] = box.Merge(it.BoundingBox())
	}

	var walk func(id quadtree.NodeID) int
	walk = func(id quadtree.NodeID) int {
		info, ok := qt.Node(id)
		require.True(t, ok, "stale node %d", id)
		total := info.Direct
		// a node box is exactly the union of its own items and its children
		want, seen := direct[id]
		if !seen {
			want = geom.EmptyBox()
		}
		if info.Exploded {
			for _, c := range info.Children {
				require.NotEqual(t, quadtree.NoNode, c)
				child, _ := qt.Node(c)
				require.Equal(t, id, child.Parent)
				want = want.Merge(child.Box)
				total += walk(c)
			}
		} else {
			require.Equal(t, [4]quadtree.NodeID{quadtree.NoNode, quadtree.NoNode, quadtree.NoNode, quadtree.NoNode}, info.Children)
		}
		require.Equal(t, total, info.Size, "node %d size", id)
		require.Equal(t, want, info.Box, "node %d box", id)
		return total
	}
	walk(qt.Root().ID)
}

// Items must be embeddable: the promoted Member method satisfies Item.
var _ quadtree.Item = (*rect)(nil)
