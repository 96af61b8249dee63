package quadtree

import (
	"gonum.org/v1/gonum/stat"
)

// Stats summarizes the shape of a tree, mostly to tune thresholds.
type Stats struct {
	Nodes    int // live nodes
	Leaves   int // nodes without children
	Occupied int // nodes holding at least one item directly
	Depth    int // levels, 1 for a lone root
	Items    int

	// MeanItems and StdDevItems describe the direct item count over
	// occupied nodes. StdDevItems is 0 with fewer than two occupied nodes.
	MeanItems   float64
	StdDevItems float64
}

// Stats walks the whole tree.
func (qt *QuadTree) Stats() Stats {
	s := Stats{
		Nodes: qt.NodeCount(),
		Depth: qt.Depth(),
		Items: qt.Size(),
	}
	var loads []float64
	for id := range qt.nodes {
		n := &qt.nodes[id]
		if !n.live {
			continue
		}
		if !n.exploded() {
			s.Leaves++
		}
		if len(n.items) > 0 {
			s.Occupied++
			loads = append(loads, float64(len(n.items)))
		}
	}
	switch len(loads) {
	case 0:
	case 1:
		s.MeanItems = loads[0]
	default:
		s.MeanItems, s.StdDevItems = stat.MeanStdDev(loads, nil)
	}
	return s
}
