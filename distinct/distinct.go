// SPDX-License-Identifier: MIT
// Package: eqpaths/distinct
//
// distinct.go - Finder and FindDistinctPaths.

package distinct

import (
	"math"

	"github.com/katalvlaran/eqpaths/core"
	"github.com/katalvlaran/eqpaths/dijkstra"
)

// FindDistinctPaths returns up to MaxPaths edge-disjoint paths from source to
// destination, all with the cost of the shortest one.
//
// Returns an empty non-nil slice when destination is unreachable, and the
// single zero-cost path [source] when source == destination.
//
// Complexity: O(K · (V + E) log V) for K = MaxPaths.
func FindDistinctPaths(g *core.Graph, source, destination core.NodeID, opts ...Option) ([]core.Path, error) {
	f, err := NewFinder(g, opts...)
	if err != nil {
		return nil, err
	}

	return f.Find(source, destination)
}

// Finder answers repeated distinct-path queries on one graph.
// A Finder is not safe for concurrent use.
type Finder struct {
	searcher *dijkstra.Searcher
	excluded core.EdgeSet
	options  Options
	search   []dijkstra.Option
}

// NewFinder resolves opts and allocates the underlying searcher.
// Returns dijkstra.ErrNilGraph for a nil graph.
func NewFinder(g *core.Graph, opts ...Option) (*Finder, error) {
	s, err := dijkstra.NewSearcher(g)
	if err != nil {
		return nil, err
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	f := &Finder{
		searcher: s,
		excluded: core.NewEdgeSet(),
		options:  o,
	}
	// The exclusion option goes last so it wins over anything in o.Search.
	f.search = make([]dijkstra.Option, 0, len(o.Search)+1)
	f.search = append(f.search, o.Search...)
	f.search = append(f.search, dijkstra.WithExcluded(f.excluded))

	return f, nil
}

// Options returns the resolved options of the finder.
func (f *Finder) Options() Options { return f.options }

// Find runs the distinct-path protocol for one pair. See FindDistinctPaths.
func (f *Finder) Find(source, destination core.NodeID) ([]core.Path, error) {
	// 1) Fresh exclusion set for this query (same map, the search option
	//    holds a reference to it).
	clear(f.excluded)
	f.excluded.Merge(f.options.Blocked)

	// 2) Reference path.
	first, found, err := f.searcher.Search(source, destination, f.search...)
	if err != nil {
		return nil, err
	}
	if !found {
		return []core.Path{}, nil
	}
	paths := make([]core.Path, 1, f.options.MaxPaths)
	paths[0] = first
	if source == destination {
		return paths, nil
	}
	minimumCost := first.Cost
	f.excluded.Merge(first.Edges)

	// 3) Alternatives with every edge used so far excluded.
	for len(paths) < f.options.MaxPaths {
		next, found, err := f.searcher.Search(source, destination, f.search...)
		if err != nil {
			return nil, err
		}
		if !found || math.Abs(next.Cost-minimumCost) > f.options.Tolerance {
			break
		}
		paths = append(paths, next)
		f.excluded.Merge(next.Edges)
	}

	return paths, nil
}
