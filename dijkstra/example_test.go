package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/eqpaths/core"
	"github.com/katalvlaran/eqpaths/dijkstra"
)

// ExampleSearch finds the cheapest route, then the cheapest route that
// avoids every edge of the first one.
func ExampleSearch() {
	g, _ := core.FromEdges(4, []core.Edge{
		core.MustEdge(0, 1, 1),
		core.MustEdge(1, 3, 1),
		core.MustEdge(0, 2, 1),
		core.MustEdge(2, 3, 1),
		core.MustEdge(0, 3, 5),
	})

	first, _, _ := dijkstra.Search(g, 0, 3)
	fmt.Println(first.Nodes, first.Cost)

	second, found, _ := dijkstra.Search(g, 0, 3, dijkstra.WithExcluded(first.Edges))
	fmt.Println(second.Nodes, second.Cost, found)
	// Output:
	// [0 1 3] 2
	// [0 2 3] 2 true
}

// ExampleSearcher reuses one set of buffers for several queries.
func ExampleSearcher() {
	g, _ := core.FromEdges(3, []core.Edge{
		core.MustEdge(0, 1, 2),
		core.MustEdge(1, 2, 2),
	})
	s, _ := dijkstra.NewSearcher(g)
	for dst := 0; dst < g.NodeCount(); dst++ {
		p, _, _ := s.Search(0, dst)
		fmt.Printf("0→%d cost=%g\n", dst, p.Cost)
	}
	// Output:
	// 0→0 cost=0
	// 0→1 cost=2
	// 0→2 cost=4
}
