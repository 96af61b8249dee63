package db_test

import (
	"testing"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/hurricane/db"
	"github.com/katalvlaran/hurricane/geom"
	"github.com/katalvlaran/hurricane/quadtree"
)

// every placeable kind must satisfy the quadtree item contract
var (
	_ db.Component  = (*db.Contact)(nil)
	_ db.Component  = (*db.Segment)(nil)
	_ db.Component  = (*db.Pad)(nil)
	_ db.Component  = (*db.Rubber)(nil)
	_ db.Component  = (*db.Plug)(nil)
	_ quadtree.Item = (*db.Instance)(nil)
)

type DatabaseSuite struct {
	suite.Suite
	d      *db.Database
	metal1 *db.Layer
	metal2 *db.Layer
	cut    *db.Layer
	via    *db.Layer
}

func (s *DatabaseSuite) SetupTest() {
	require := require.New(s.T())
	s.d = db.New(db.WithName("test"))
	tech := s.d.Technology()
	var err error
	s.metal1, err = tech.AddBasicLayer("metal1", 1<<0, 1<<0|1<<2)
	require.NoError(err)
	s.metal2, err = tech.AddBasicLayer("metal2", 1<<1, 1<<1|1<<2)
	require.NoError(err)
	s.cut, err = tech.AddBasicLayer("cut12", 1<<2, 1<<0|1<<1|1<<2)
	require.NoError(err)
	s.via, err = tech.AddCompositeLayer("via12", s.metal1, s.cut, s.metal2)
	require.NoError(err)
}

func (s *DatabaseSuite) TearDownTest() {
	s.d.Close()
}

func (s *DatabaseSuite) cell(name string) *db.Cell {
	c, err := db.NewCell(s.d, name)
	s.Require().NoError(err)
	return c
}

func (s *DatabaseSuite) net(c *db.Cell, name string, flags db.NetFlags) *db.Net {
	n, err := c.AddNet(name, flags)
	s.Require().NoError(err)
	return n
}

func (s *DatabaseSuite) instance(owner *db.Cell, name string, master *db.Cell, t geom.Transformation) *db.Instance {
	i, err := owner.AddInstance(name, master, t)
	s.Require().NoError(err)
	return i
}

func (s *DatabaseSuite) TestNames() {
	require := require.New(s.T())
	names := s.d.Names()
	before := names.Len()

	a := names.Intern("ab")
	b := names.Intern("ab")
	require.Equal(a, b, "interned twice, one entry")
	require.Equal(2, names.Refs("ab"))
	require.Equal(uint64(131*'a'+'b'), a.Hash())
	require.Equal(before+1, names.Len())

	names.Release(a)
	require.Equal(1, names.Refs("ab"))
	names.Release(b)
	require.Equal(0, names.Refs("ab"))
	require.Equal(before, names.Len())

	require.True(names.Intern("").IsZero())
	require.Equal("", db.Name{}.String())
}

func (s *DatabaseSuite) TestNames_SharedByEntities() {
	require := require.New(s.T())
	a := s.cell("a")
	b := s.cell("b")
	s.net(a, "vdd", db.External)
	s.net(b, "vdd", db.External)
	require.Equal(2, s.d.Names().Refs("vdd"))
}

func (s *DatabaseSuite) TestTechnology() {
	require := require.New(s.T())
	tech := s.d.Technology()

	require.True(s.metal1.IsBasic())
	require.False(s.via.IsBasic())
	require.Equal(db.Mask(0b111), s.via.Mask())
	require.Equal(db.Mask(0b111), s.via.ExtractMask())
	require.Equal([]*db.Layer{s.metal1, s.cut, s.metal2}, s.via.BasicLayers())
	require.Same(s.via, tech.Layer("via12"))
	require.Len(tech.Layers(), 4)

	_, err := tech.AddBasicLayer("metal1", 1<<3, 0)
	require.Equal(db.ErrTypeDuplicateName, errors.Type(err))
	_, err = tech.AddBasicLayer("empty", 0, 0)
	require.Equal(db.ErrTypeInvalidArgument, errors.Type(err))
	_, err = tech.AddCompositeLayer("bad", s.via)
	require.Equal(db.ErrTypeInvalidArgument, errors.Type(err))
	require.Nil(tech.Layer("bad"))

	require.NoError(s.via.SetEnclosure(s.metal1, 2))
	require.Equal(geom.Unit(2), s.via.Enclosure(s.metal1))
	require.Equal(geom.Unit(0), s.via.Enclosure(s.metal2))
	require.Equal(db.ErrTypeInvalidArgument, errors.Type(s.metal1.SetEnclosure(s.metal2, 1)))
}

func (s *DatabaseSuite) TestCell_Errors() {
	require := require.New(s.T())
	top := s.cell("top")

	_, err := db.NewCell(s.d, "top")
	require.Equal(db.ErrTypeDuplicateName, errors.Type(err))
	_, err = db.NewCell(nil, "x")
	require.Equal(db.ErrTypeInvalidArgument, errors.Type(err))

	s.net(top, "a", 0)
	_, err = top.AddNet("a", 0)
	require.Equal(db.ErrTypeDuplicateName, errors.Type(err))

	_, err = top.AddInstance("self", top, geom.Transformation{})
	require.Equal(db.ErrTypeRecursiveInstance, errors.Type(err))

	mid := s.cell("mid")
	s.instance(top, "m", mid, geom.Transformation{})
	_, err = mid.AddInstance("loop", top, geom.Transformation{})
	require.True(errors.IsType(err, db.ErrTypeRecursiveInstance))
	_, err = top.AddInstance("m", mid, geom.Transformation{})
	require.Equal(db.ErrTypeDuplicateName, errors.Type(err))

	s.d.Close()
	require.True(s.d.IsClosed())
	_, err = db.NewCell(s.d, "late")
	require.Equal(db.ErrTypeClosed, errors.Type(err))
	_, err = top.AddNet("late", 0)
	require.Equal(db.ErrTypeClosed, errors.Type(err))
}

func (s *DatabaseSuite) TestPlugs() {
	require := require.New(s.T())
	leaf := s.cell("leaf")
	top := s.cell("top")
	in := s.net(leaf, "in", db.External)
	s.net(leaf, "internal", 0)
	inst := s.instance(top, "u1", leaf, geom.Transformation{})

	require.Len(inst.Plugs(), 1)
	plug := inst.Plug(in)
	require.NotNil(plug)
	require.Same(in, plug.MasterNet())
	require.False(plug.IsConnected())
	require.Same(plug, plug.AsPlug())
	require.Nil(plug.AsRubber())
	require.Nil(plug.Layer())

	out := s.net(leaf, "out", db.External)
	require.Len(inst.Plugs(), 2, "an external net added later gets a plug too")
	require.NotNil(inst.Plug(out))

	q := s.net(top, "q", 0)
	require.NoError(plug.SetNet(q))
	require.True(plug.IsConnected())
	require.Equal([]*db.Plug{plug}, q.Plugs())
	require.Contains(q.Components(), db.Component(plug))

	other := s.net(leaf, "stray", 0)
	err := plug.SetNet(other)
	require.Equal(db.ErrTypeCrossCell, errors.Type(err))
	require.Same(q, plug.Net())

	require.NoError(q.RemoveComponent(plug))
	require.False(plug.IsConnected())
	require.Empty(q.Plugs())
}

func (s *DatabaseSuite) TestComponents() {
	require := require.New(s.T())
	c := s.cell("c")
	n := s.net(c, "n", 0)

	contact, err := n.AddContact(s.via, 5, 5, 2, 2)
	require.NoError(err)
	require.Equal(geom.NewBox(4, 4, 6, 6), contact.BoundingBox())
	require.NoError(s.via.SetEnclosure(s.metal2, 1))
	require.Equal(geom.NewBox(3, 3, 7, 7), contact.BoundingBoxOn(s.metal2))
	require.Equal(geom.NewBox(4, 4, 6, 6), contact.BoundingBoxOn(s.cut))

	seg, err := n.AddSegment(s.metal1, geom.Point{X: 5, Y: 5}, geom.Point{X: 25, Y: 5}, 2)
	require.NoError(err)
	require.Equal(geom.NewBox(4, 4, 26, 6), seg.BoundingBox())
	require.True(seg.BoundingBoxOn(s.metal2).IsEmpty())

	_, err = n.AddSegment(s.metal1, geom.Point{}, geom.Point{X: 1, Y: 1}, 2)
	require.Equal(db.ErrTypeInvalidArgument, errors.Type(err))

	pad, err := n.AddPad(s.metal2, geom.NewBox(0, 20, 10, 30))
	require.NoError(err)

	rubber, err := n.AddRubber(contact, pad)
	require.NoError(err)
	require.Equal(geom.NewBox(5, 5, 5, 25), rubber.BoundingBox())
	require.Nil(rubber.Layer())
	require.Same(rubber, rubber.AsRubber())
	require.True(rubber.BoundingBoxOn(s.metal1).IsEmpty())

	require.Len(n.Components(), 4)
	require.Equal(4, c.QuadTree().Size())
	require.Equal(geom.NewBox(0, 4, 26, 30), c.BoundingBox())
	for _, comp := range n.Components() {
		require.True(comp.Member().IsMaterialized())
		require.Same(c, comp.Cell())
	}

	err = n.RemoveComponent(pad)
	require.Equal(db.ErrTypeInvalidArgument, errors.Type(err), "a rubber still hooks the pad")
	require.NoError(n.RemoveComponent(rubber))
	require.NoError(n.RemoveComponent(pad))
	require.Len(n.Components(), 2)
	require.Equal(geom.NewBox(4, 4, 26, 6), c.BoundingBox())

	_, err = n.AddContact(nil, 0, 0, 1, 1)
	require.Equal(db.ErrTypeInvalidArgument, errors.Type(err))
}

func (s *DatabaseSuite) TestInstance_Refit() {
	require := require.New(s.T())
	leaf := s.cell("leaf")
	top := s.cell("top")
	n := s.net(leaf, "n", 0)
	inst := s.instance(top, "u1", leaf, geom.Translation(100, 0))
	require.True(inst.BoundingBox().IsEmpty())

	_, err := n.AddPad(s.metal1, geom.NewBox(0, 0, 10, 10))
	require.NoError(err)
	require.Equal(geom.NewBox(100, 0, 110, 10), inst.BoundingBox())
	require.Equal(geom.NewBox(100, 0, 110, 10), top.BoundingBox())

	pad, err := n.AddPad(s.metal1, geom.NewBox(0, 0, 20, 5))
	require.NoError(err)
	require.Equal(geom.NewBox(100, 0, 120, 10), top.BoundingBox())

	require.NoError(n.RemoveComponent(pad))
	require.Equal(geom.NewBox(100, 0, 110, 10), inst.BoundingBox())
	require.Equal(geom.NewBox(100, 0, 110, 10), top.BoundingBox())
}

func (s *DatabaseSuite) TestPath() {
	require := require.New(s.T())
	leaf := s.cell("leaf")
	mid := s.cell("mid")
	top := s.cell("top")
	l1 := s.instance(mid, "l1", leaf, geom.Translation(10, 0))
	m1 := s.instance(top, "m1", mid, geom.Translation(100, 0))

	p, err := db.NewPath(m1, l1)
	require.NoError(err)
	require.Equal("m1.l1", p.String())
	require.Equal(2, p.Len())
	require.Same(m1, p.HeadInstance())
	require.Same(l1, p.TailInstance())
	require.Same(top, p.OwnerCell())
	require.Same(leaf, p.MasterCell())
	require.Equal(geom.Translation(110, 0), p.Transformation())

	require.Equal(db.EmptyPath.Append(m1), p.HeadPath())
	require.Equal(db.EmptyPath.Append(l1), p.TailPath())
	require.Equal(p, db.EmptyPath.Append(m1).Append(l1), "paths are interned")
	require.Equal(p, db.EmptyPath.Append(l1).Prepend(m1))
	require.True(p.HeadPath().HeadPath().IsEmpty())
	require.Equal([]*db.Instance{m1, l1}, p.Instances())

	_, err = db.NewPath(l1, m1)
	require.Equal(db.ErrTypeBadPath, errors.Type(err))
	_, err = db.NewPath(m1, nil)
	require.Equal(db.ErrTypeBadPath, errors.Type(err))

	require.True(db.EmptyPath.IsEmpty())
	require.Nil(db.EmptyPath.TailInstance())
	require.True(db.EmptyPath.Transformation().IsIdentity())
}

func (s *DatabaseSuite) TestOccurrence() {
	require := require.New(s.T())
	leaf := s.cell("leaf")
	top := s.cell("top")
	n := s.net(leaf, "n", db.External)
	pad, err := n.AddPad(s.metal1, geom.NewBox(0, 0, 10, 10))
	require.NoError(err)
	u1 := s.instance(top, "u1", leaf, geom.Translation(100, 0))

	path := db.EmptyPath.Append(u1)
	o := db.NewOccurrence(pad, path)
	require.True(o.IsValid())
	require.False(db.Occurrence{}.IsValid())
	require.Equal(geom.NewBox(100, 0, 110, 10), o.BoundingBox())
	require.Same(top, o.OwnerCell())
	require.Same(leaf, o.MasterCell())
	require.Equal(db.NewOccurrence(n, path), o.NetOccurrence())
	require.Same(n, o.NetOccurrence().Net())
	require.Nil(o.Net())

	seen := map[db.Occurrence]bool{o: true}
	require.True(seen[db.NewOccurrence(pad, db.EmptyPath.Append(u1))])
	require.False(seen[db.NewOccurrence(pad, db.EmptyPath)])
	require.Same(leaf, db.NewOccurrence(pad, db.EmptyPath).OwnerCell())
	require.Equal("<Occurrence u1:<Net leaf:n>>", o.NetOccurrence().String())
}

func (s *DatabaseSuite) TestOccurrencesUnder() {
	require := require.New(s.T())
	leaf := s.cell("leaf")
	top := s.cell("top")
	ln := s.net(leaf, "a", db.External)
	lpad, err := ln.AddPad(s.metal1, geom.NewBox(0, 0, 10, 10))
	require.NoError(err)
	tn := s.net(top, "q", 0)
	tpad, err := tn.AddPad(s.metal1, geom.NewBox(100, 0, 105, 5))
	require.NoError(err)
	u1 := s.instance(top, "u1", leaf, geom.Translation(100, 0))
	u2 := s.instance(top, "u2", leaf, geom.Translation(500, 0))

	got := map[db.Occurrence]bool{}
	for o := range top.OccurrencesUnder(geom.NewBox(95, 0, 102, 2)) {
		got[o] = true
	}
	require.Equal(map[db.Occurrence]bool{
		db.NewOccurrence(tpad, db.EmptyPath):            true,
		db.NewOccurrence(u1, db.EmptyPath):              true,
		db.NewOccurrence(lpad, db.EmptyPath.Append(u1)): true,
	}, got)
	require.False(got[db.NewOccurrence(lpad, db.EmptyPath.Append(u2))])

	var comps []db.Component
	for c := range top.ComponentsUnder(geom.NewBox(0, 0, 1000, 1000)) {
		comps = append(comps, c)
	}
	require.Equal([]db.Component{tpad}, comps)

	n := 0
	for range top.OccurrencesUnder(top.BoundingBox()) {
		n++
		if n == 2 {
			break
		}
	}
	require.Equal(2, n)
}

func TestDatabaseSuite(t *testing.T) {
	suite.Run(t, new(DatabaseSuite))
}

func TestNew_Identity(t *testing.T) {
	a := db.New()
	b := db.New(db.WithName("other"), db.WithQuadTreeThresholds(8, 4))
	require.NotEqual(t, a.ID(), b.ID())
	require.Equal(t, "hurricane", a.Name())
	require.Equal(t, "<Database other "+b.ID().String()+">", b.String())

	c, err := db.NewCell(b, "c")
	require.NoError(t, err)
	require.Equal(t, 8, c.QuadTree().Options().ExplodeThreshold)
	require.Equal(t, "other/c", c.QuadTree().Options().Name)

	_, err = db.NewCell(db.New(db.WithQuadTreeThresholds(4, 8)), "bad")
	require.Equal(t, db.ErrTypeInvalidArgument, errors.Type(err))
}
