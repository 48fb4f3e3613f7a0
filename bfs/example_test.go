package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/eqpaths/bfs"
	"github.com/katalvlaran/eqpaths/builder"
)

// ExampleBFS walks a 2×3 grid and prints the fewest-hop route to the far corner.
func ExampleBFS() {
	g := builder.MustBuild(nil, builder.Grid(2, 3))
	res, _ := bfs.BFS(g, 0)
	path, _ := res.PathTo(5)
	fmt.Println("order:", res.Order)
	fmt.Println("path: ", path)
	// Output:
	// order: [0 1 3 2 4 5]
	// path:  [0 1 2 5]
}
