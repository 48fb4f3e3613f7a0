// SPDX-License-Identifier: MIT
// Package: eqpaths/core
//
// builder.go - Builder: the only way to assemble a Graph.
//
// Contract:
//   - Node count is fixed up front; every node in [0, n) gets an adjacency
//     list (possibly empty) before any search can run.
//   - AddEdge validates endpoints and weight; the first invalid edge is
//     returned as an error and leaves the builder unchanged.
//   - Build seals the builder. The returned Graph shares no mutable state
//     with it.

package core

import "fmt"

// GraphOption configures a Builder before the first edge is added.
type GraphOption func(b *Builder)

// WithLoops permits self-loops (u—u). They never shorten a path but are
// accepted so that inputs containing them can still be loaded.
func WithLoops() GraphOption {
	return func(b *Builder) { b.allowLoops = true }
}

// WithEdgeCapacity preallocates storage for m undirected edges.
// Panics if m < 0.
func WithEdgeCapacity(m int) GraphOption {
	if m < 0 {
		panic(fmt.Sprintf("core: WithEdgeCapacity(%d): must be non-negative", m))
	}
	return func(b *Builder) { b.edges = make([]Edge, 0, m) }
}

// Builder accumulates undirected edges for a graph of fixed size.
type Builder struct {
	n          int
	allowLoops bool
	sealed     bool
	edges      []Edge   // one entry per undirected edge, insertion order
	adj        [][]Edge // node → adjacency entries, insertion order
	err        error    // set by NewBuilder for a bad node count
}

// NewBuilder starts a graph with n nodes and no edges.
// A negative n is reported by AddEdge and Build as ErrBadNodeCount.
// Complexity: O(n).
func NewBuilder(n int, opts ...GraphOption) *Builder {
	b := &Builder{n: n}
	if n < 0 {
		b.err = fmt.Errorf("%w: got %d", ErrBadNodeCount, n)
		return b
	}
	b.adj = make([][]Edge, n)
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// NodeCount returns n.
func (b *Builder) NodeCount() int { return b.n }

// AddEdge adds the undirected edge u—v with the given weight.
//
// Steps:
//  1. Reject use after Build and a bad node count.
//  2. Validate endpoints against [0, n) and the loop policy.
//  3. Validate the weight via NewEdge (non-negative, finite).
//  4. Append u→v to adj[u] and, for u != v, the mirror v→u to adj[v].
//
// Complexity: O(1) amortized.
func (b *Builder) AddEdge(u, v NodeID, weight float64) error {
	// 1) Lifecycle checks.
	if b.err != nil {
		return b.err
	}
	if b.sealed {
		return ErrSealed
	}

	// 2) Endpoint checks.
	if u < 0 || u >= b.n || v < 0 || v >= b.n {
		return fmt.Errorf("%w: edge %d-%d, n=%d", ErrNodeOutOfRange, u, v, b.n)
	}
	if u == v && !b.allowLoops {
		return fmt.Errorf("%w: node %d", ErrLoopNotAllowed, u)
	}

	// 3) Weight checks.
	e, err := NewEdge(u, v, weight)
	if err != nil {
		return err
	}

	// 4) Store the catalog entry and both adjacency entries.
	b.edges = append(b.edges, e)
	b.adj[u] = append(b.adj[u], e)
	if u != v {
		b.adj[v] = append(b.adj[v], e.Reverse())
	}

	return nil
}

// Build seals the builder and returns the immutable Graph.
// Complexity: O(n + m).
func (b *Builder) Build() (*Graph, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.sealed {
		return nil, ErrSealed
	}
	b.sealed = true

	g := &Graph{
		adj:     b.adj,
		edges:   b.edges,
		weights: make(map[EdgeKey]float64, len(b.edges)),
	}
	for _, e := range b.edges {
		k := e.Key()
		if w, ok := g.weights[k]; !ok || e.Weight < w {
			g.weights[k] = e.Weight
		}
	}
	// The builder keeps no reference that could still mutate the graph.
	b.adj, b.edges = nil, nil

	return g, nil
}

// FromEdges is a convenience constructor: NewBuilder(n) plus one AddEdge per entry.
func FromEdges(n int, edges []Edge, opts ...GraphOption) (*Graph, error) {
	b := NewBuilder(n, append([]GraphOption{WithEdgeCapacity(len(edges))}, opts...)...)
	for _, e := range edges {
		if err := b.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, err
		}
	}

	return b.Build()
}
