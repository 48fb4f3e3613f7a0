// SPDX-License-Identifier: MIT
// Package: eqpaths/core
//
// api.go - read-only Graph accessors.
// All methods are safe for concurrent use: a Graph never changes after Build.

package core

// Graph is an immutable undirected graph with non-negative edge weights.
type Graph struct {
	adj     [][]Edge            // node → adjacency entries (u→v), insertion order
	edges   []Edge              // one entry per undirected edge, insertion order
	weights map[EdgeKey]float64 // canonical key → minimum weight among parallel edges
}

// NodeCount returns n; node IDs are [0, n).
func (g *Graph) NodeCount() int { return len(g.adj) }

// EdgeCount returns the number of undirected edges (parallel edges counted separately).
func (g *Graph) EdgeCount() int { return len(g.edges) }

// HasNode reports whether v is in [0, n).
func (g *Graph) HasNode(v NodeID) bool { return v >= 0 && v < len(g.adj) }

// Neighbors returns the adjacency entries of u in insertion order, or nil
// for an unknown node. The slice is shared; callers must not modify it.
// Complexity: O(1).
func (g *Graph) Neighbors(u NodeID) []Edge {
	if !g.HasNode(u) {
		return nil
	}

	return g.adj[u]
}

// Degree returns the number of adjacency entries of u.
func (g *Graph) Degree(u NodeID) int { return len(g.Neighbors(u)) }

// Edges returns every undirected edge once, in insertion order, as a fresh slice.
// Complexity: O(m).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Weight returns the weight of the edge named by k. With parallel edges the
// smallest weight is reported, since that is the one any shortest path uses.
func (g *Graph) Weight(k EdgeKey) (float64, bool) {
	w, ok := g.weights[k]

	return w, ok
}

// HasEdge reports whether u and v are adjacent.
func (g *Graph) HasEdge(u, v NodeID) bool {
	_, ok := g.weights[KeyOf(u, v)]

	return ok
}
