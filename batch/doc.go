// Package batch runs the distinct-path query for every ordered pair of
// distinct nodes (s, d), s ≠ d, of a graph.
//
// Pairs lying in different connected components (bfs.ConnectedComponents)
// are reported as unreachable without a search.
//
// Sources are processed in parallel by a bounded errgroup, one
// distinct.Finder per source task. Every task fills the result slot of its
// source, and the calling goroutine emits the slots strictly in
// (source, destination) order as soon as each one is complete, so output is
// identical for any worker count.
//
// Cancellation of the context is checked between pairs. The first error,
// from a search, from the emitter, or from the context, stops the run.
package batch
