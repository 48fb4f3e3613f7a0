package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/eqpaths/builder"
	"github.com/katalvlaran/eqpaths/dijkstra"
)

func BenchmarkSearch_Grid(b *testing.B) {
	g := builder.MustBuild([]builder.BuilderOption{
		builder.WithSeed(7),
		builder.WithWeightFn(builder.IntUniformWeightFn(1, 9)),
	}, builder.Grid(40, 40))
	dst := g.NodeCount() - 1

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := dijkstra.Search(g, 0, dst); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSearcher_Grid(b *testing.B) {
	g := builder.MustBuild([]builder.BuilderOption{
		builder.WithSeed(7),
		builder.WithWeightFn(builder.IntUniformWeightFn(1, 9)),
	}, builder.Grid(40, 40))
	s, err := dijkstra.NewSearcher(g)
	if err != nil {
		b.Fatal(err)
	}
	dst := g.NodeCount() - 1

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := s.Search(0, dst); err != nil {
			b.Fatal(err)
		}
	}
}
