package quadtree

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const treeLabel = "tree"

var (
	quadTreeExplodes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hurricane_quadtree_explodes_total",
		Help: "The number of quadtree nodes split into four children.",
	}, []string{
		treeLabel,
	})

	quadTreeImplodes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hurricane_quadtree_implodes_total",
		Help: "The number of quadtree nodes collapsed back into a leaf.",
	}, []string{
		treeLabel,
	})
)

func instrumentExplode(tree string) {
	quadTreeExplodes.With(prometheus.Labels{
		treeLabel: tree,
	}).Inc()
}

func instrumentImplode(tree string) {
	quadTreeImplodes.With(prometheus.Labels{
		treeLabel: tree,
	}).Inc()
}
