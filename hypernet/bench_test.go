package hypernet_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/hurricane/db"
	"github.com/katalvlaran/hurricane/geom"
	"github.com/katalvlaran/hurricane/hypernet"
)

// fanOut builds a top net plugged to n instances of a leaf holding one pad.
func fanOut(b *testing.B, n int) (*fixture, *db.Net) {
	f := newFixture(b)
	leaf := f.cell(b, "leaf")
	q := f.net(b, leaf, "q", db.External)
	f.pad(b, q, f.metal1, 0, 0, 4, 4)
	top := f.cell(b, "top")
	p := f.net(b, top, "p", 0)
	for i := 0; i < n; i++ {
		u := f.instance(b, top, fmt.Sprintf("u%d", i), leaf, geom.Translation(geom.Unit(10*(i%100)), geom.Unit(10*(i/100))))
		connect(b, u, q, p)
	}
	return f, p
}

// BenchmarkNetOccurrences walks a net plugged to 1000 instances.
func BenchmarkNetOccurrences(b *testing.B) {
	_, p := fanOut(b, 1000)
	h := mustHyperNet(b, db.NewOccurrence(p, db.EmptyPath))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for range h.NetOccurrences().All() {
		}
	}
}

// BenchmarkNetOccurrences_Extraction walks the same net with geometric extraction.
func BenchmarkNetOccurrences_Extraction(b *testing.B) {
	_, p := fanOut(b, 1000)
	h := mustHyperNet(b, db.NewOccurrence(p, db.EmptyPath))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for range h.NetOccurrences(hypernet.WithExtraction()).All() {
		}
	}
}
