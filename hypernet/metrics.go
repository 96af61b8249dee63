package hypernet

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	viewLabel = "view"
	gapLabel  = "gap"
)

var (
	hyperNetExpansions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hurricane_hypernet_expansions_total",
		Help: "The number of net occurrences expanded by hypernet walks.",
	}, []string{
		viewLabel,
	})

	hyperNetSoftGaps = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hurricane_hypernet_soft_gaps_total",
		Help: "The number of missing optional links skipped by hypernet walks.",
	}, []string{
		gapLabel,
	})
)

func instrumentExpansion(view string) {
	hyperNetExpansions.With(prometheus.Labels{
		viewLabel: view,
	}).Inc()
}

func instrumentSoftGap(gap string) {
	hyperNetSoftGaps.With(prometheus.Labels{
		gapLabel: gap,
	}).Inc()
}
