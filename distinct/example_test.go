package distinct_test

import (
	"fmt"

	"github.com/katalvlaran/eqpaths/core"
	"github.com/katalvlaran/eqpaths/distinct"
)

// ExampleFindDistinctPaths shows two equal-cost routes around a square; the
// costly diagonal is not reported.
func ExampleFindDistinctPaths() {
	g, _ := core.FromEdges(4, []core.Edge{
		core.MustEdge(0, 1, 1),
		core.MustEdge(1, 3, 1),
		core.MustEdge(0, 2, 1),
		core.MustEdge(2, 3, 1),
		core.MustEdge(0, 3, 5),
	})

	paths, _ := distinct.FindDistinctPaths(g, 0, 3)
	for i, p := range paths {
		fmt.Printf("Path %d: %v, cost: %g\n", i+1, p.Nodes, p.Cost)
	}
	// Output:
	// Path 1: [0 1 3], cost: 2
	// Path 2: [0 2 3], cost: 2
}
