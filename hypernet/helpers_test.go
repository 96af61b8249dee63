package hypernet_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hurricane/db"
	"github.com/katalvlaran/hurricane/geom"
	"github.com/katalvlaran/hurricane/hypernet"
)

// fixture is a small technology where metal1 and metal2 only meet through
// the cut layer.
type fixture struct {
	d      *db.Database
	metal1 *db.Layer
	metal2 *db.Layer
	cut    *db.Layer
	via    *db.Layer
}

func newFixture(t testing.TB) *fixture {
	t.Helper()
	f := &fixture{d: db.New(db.WithName(t.Name()))}
	t.Cleanup(f.d.Close)
	tech := f.d.Technology()
	var err error
	f.metal1, err = tech.AddBasicLayer("metal1", 1<<0, 1<<0)
	require.NoError(t, err)
	f.metal2, err = tech.AddBasicLayer("metal2", 1<<1, 1<<1)
	require.NoError(t, err)
	f.cut, err = tech.AddBasicLayer("cut12", 1<<2, 1<<0|1<<1|1<<2)
	require.NoError(t, err)
	f.via, err = tech.AddCompositeLayer("via12", f.metal1, f.cut, f.metal2)
	require.NoError(t, err)
	return f
}

func (f *fixture) cell(t testing.TB, name string) *db.Cell {
	t.Helper()
	c, err := db.NewCell(f.d, name)
	require.NoError(t, err)
	return c
}

func (f *fixture) net(t testing.TB, c *db.Cell, name string, flags db.NetFlags) *db.Net {
	t.Helper()
	n, err := c.AddNet(name, flags)
	require.NoError(t, err)
	return n
}

func (f *fixture) instance(t testing.TB, owner *db.Cell, name string, master *db.Cell, tr geom.Transformation) *db.Instance {
	t.Helper()
	i, err := owner.AddInstance(name, master, tr)
	require.NoError(t, err)
	return i
}

func (f *fixture) pad(t testing.TB, n *db.Net, layer *db.Layer, x1, y1, x2, y2 geom.Unit) *db.Pad {
	t.Helper()
	p, err := n.AddPad(layer, geom.NewBox(x1, y1, x2, y2))
	require.NoError(t, err)
	return p
}

// connect plugs the master net of inst to net.
func connect(t testing.TB, inst *db.Instance, masterNet, net *db.Net) *db.Plug {
	t.Helper()
	plug := inst.Plug(masterNet)
	require.NotNil(t, plug)
	require.NoError(t, plug.SetNet(net))
	return plug
}

func mustHyperNet(t testing.TB, occ db.Occurrence) *hypernet.HyperNet {
	t.Helper()
	h, err := hypernet.New(occ)
	require.NoError(t, err)
	return h
}

func mustPath(t testing.TB, instances ...*db.Instance) db.Path {
	t.Helper()
	p, err := db.NewPath(instances...)
	require.NoError(t, err)
	return p
}

// collect drains a view and fails the test on a hard error.
func collect(t testing.TB, occs hypernet.Occurrences) []db.Occurrence {
	t.Helper()
	out, err := occs.Collect()
	require.NoError(t, err)
	return out
}

// names renders occurrences as sorted strings, for order-free comparisons.
func names(occs []db.Occurrence) []string {
	out := make([]string, len(occs))
	for i, o := range occs {
		out[i] = o.String()
	}
	slices.Sort(out)
	return out
}

func occ(e db.Entity, p db.Path) db.Occurrence { return db.NewOccurrence(e, p) }
