// Package eqpaths finds edge-disjoint shortest paths of equal cost in
// undirected weighted graphs.
//
// What is it?
//
//	For a source and a destination, eqpaths returns up to K (default 3)
//	paths that all have the minimum cost and pairwise share no edge. The
//	first path is an ordinary Dijkstra result; every further one is searched
//	with all edges used so far excluded, and the sequence stops at the first
//	alternative that is unreachable or costs more.
//
// Packages (leaves first):
//
//	pqueue/   indexed binary min-heap with decrease-key
//	core/     NodeID, Edge, EdgeKey, EdgeSet, Path, Builder and the immutable Graph
//	dijkstra/ single-pair search with excluded edges and a reusable Searcher
//	distinct/ the equal-cost, edge-disjoint path finder
//	bfs/      hop distances and connected components
//	flow/     Dinic max flow, the exact count of disjoint shortest paths
//	builder/  deterministic generators (path, cycle, star, grid, random, ...)
//	loader/   the "(N0 N1) 1.5" text graph format
//	batch/    all-pairs driver on a bounded worker pool, ordered output
//	report/   text and JSON-lines result formatting
//	render/   DOT export with highlighted paths, SVG via Graphviz
//	config/   TOML run configuration
//
// Quick ASCII example:
//
//	    0───1
//	    │ ╲ │      weights: sides 1, diagonal 0─3 is 5
//	    2───3
//
//	From 0 to 3 the finder reports [0 1 3] and [0 2 3], both cost 2; the
//	diagonal is not reported because it is more expensive.
//
// Command line:
//
//	go install github.com/katalvlaran/eqpaths/cmd/eqpaths@latest
//	eqpaths query graph.txt 0 3
package eqpaths
