package core_test

import (
	"fmt"

	"github.com/katalvlaran/eqpaths/core"
)

// ExampleBuilder builds a small triangle and inspects it.
func ExampleBuilder() {
	b := core.NewBuilder(3)
	_ = b.AddEdge(0, 1, 1)
	_ = b.AddEdge(1, 2, 2)
	_ = b.AddEdge(0, 2, 5)
	g, err := b.Build()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("nodes:", g.NodeCount(), "edges:", g.EdgeCount())
	for _, e := range g.Neighbors(2) {
		fmt.Printf("%d→%d (%s) w=%g\n", e.From, e.To, e.Key(), e.Weight)
	}
	// Output:
	// nodes: 3 edges: 3
	// 2→1 (1-2) w=2
	// 2→0 (0-2) w=5
}
