// Package loader reads and writes the plain-text graph format:
//
//	4      # number of nodes
//	5      # number of edges
//	(N0 N1) 1
//	(N1 N3) 1.5
//
// Everything after '#' on a line is a comment and blank lines are skipped.
// The first two significant lines carry the node count n and the declared
// edge count m. Every following line is one undirected edge
// "(N<u> N<v>) <weight>" with 0 ≤ u, v < n and a non-negative weight.
//
// By default the declared m is informational; WithStrictCount makes a
// mismatch an ErrEdgeCount error. Errors carry the 1-based line number and
// wrap ErrSyntax or the core sentinel that rejected the edge, so callers can
// branch with errors.Is.
package loader
