// Package core defines the graph model shared by every other eqpaths package:
// integer node IDs, undirected non-negative weighted edges, canonical edge
// keys, edge sets and search result paths.
//
// A Graph is assembled with a Builder and sealed by Build. After that it is
// immutable, so a single *Graph may be shared by any number of goroutines
// running searches at the same time without locking.
//
// Quick ASCII example (weights on the edges):
//
//	    0 ──1── 1
//	    │ ╲     │
//	    1   5   1
//	    │     ╲ │
//	    2 ──1── 3
//
//	b := core.NewBuilder(4)
//	_ = b.AddEdge(0, 1, 1)
//	_ = b.AddEdge(1, 3, 1)
//	_ = b.AddEdge(0, 2, 1)
//	_ = b.AddEdge(2, 3, 1)
//	_ = b.AddEdge(0, 3, 5)
//	g, err := b.Build()
//
// Edge identity:
//
//	An undirected edge u—v is stored as two adjacency entries (u→v and v→u)
//	sharing one weight. Everywhere an edge has to be named independently of
//	the traversal direction (exclusion sets, path edge sets) the canonical
//	EdgeKey{Lo: min(u,v), Hi: max(u,v)} is used; its text form is "lo-hi".
//	Parallel edges between the same pair share one key.
//
// Errors:
//
//	ErrNegativeWeight  - edge weight below zero (rejected at construction).
//	ErrBadWeight       - NaN or infinite edge weight.
//	ErrBadNodeCount    - negative node count.
//	ErrNodeOutOfRange  - endpoint outside [0, n).
//	ErrLoopNotAllowed  - self-loop without WithLoops().
//	ErrSealed          - Builder used after Build.
//	ErrBadEdgeKey      - malformed "lo-hi" text.
package core
