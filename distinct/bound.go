// SPDX-License-Identifier: MIT
// Package: eqpaths/distinct
//
// bound.go - MaxDisjoint, the exact count the greedy finder approximates.

package distinct

import (
	"context"
	"math"

	"github.com/katalvlaran/eqpaths/core"
	"github.com/katalvlaran/eqpaths/dijkstra"
	"github.com/katalvlaran/eqpaths/flow"
)

// relEps is the relative slack used to decide that an edge lies on a
// shortest path despite floating-point rounding.
const relEps = 1e-9

// MaxDisjoint returns the largest number of pairwise edge-disjoint
// minimum-cost paths from source to destination, ignoring any path limit.
// The search options restrict the graph the same way they restrict a
// search: excluded edges, impassable weights and MaxDistance all apply.
//
// Steps:
//  1. Distances from source and from destination under opts.
//  2. Keep every usable edge (u,v,w) with ds[u] + w + dd[v] = D, oriented
//     u→v. Parallel edges contribute one arc per key.
//  3. Unit-capacity max flow from source to destination.
//
// FindDistinctPaths, given the same search options and exclusions, returns
// at most this many paths (fewer when an early greedy choice blocks later
// ones). Returns 0 for an unreachable pair and 1 for source == destination.
//
// Complexity: O((V + E) log V + E · √V).
func MaxDisjoint(ctx context.Context, g *core.Graph, source, destination core.NodeID, opts ...dijkstra.Option) (int, error) {
	o := dijkstra.DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s, err := dijkstra.NewSearcher(g)
	if err != nil {
		return 0, err
	}

	// 1) Both distance fields.
	ds, err := s.Distances(source, opts...)
	if err != nil {
		return 0, err
	}
	if !g.HasNode(destination) {
		_, _, err = s.Search(source, destination, opts...)
		return 0, err
	}
	total := ds[destination]
	if math.IsInf(total, 1) {
		return 0, nil
	}
	if source == destination {
		return 1, nil
	}
	dd, err := s.Distances(destination, opts...)
	if err != nil {
		return 0, err
	}

	// 2) Shortest-path subgraph.
	slack := relEps * math.Max(1, total)
	nw := flow.NewNetwork(g.NodeCount())
	seen := make(map[[3]int]bool)
	for _, e := range g.Edges() {
		if o.Excluded.Has(e.Key()) || e.Weight >= o.InfEdgeThreshold {
			continue
		}
		for _, dir := range [2]core.Edge{e, e.Reverse()} {
			if math.Abs(ds[dir.From]+dir.Weight+dd[dir.To]-total) > slack {
				continue
			}
			k := e.Key()
			id := [3]int{k.Lo, k.Hi, dir.From}
			if seen[id] {
				continue
			}
			seen[id] = true
			if err = nw.AddArc(dir.From, dir.To, 1); err != nil {
				return 0, err
			}
		}
	}

	// 3) Max flow.
	f, err := flow.Dinic(nw, source, destination, flow.FlowOptions{Ctx: ctx})
	if err != nil {
		return 0, err
	}

	return int(math.Round(f)), nil
}
