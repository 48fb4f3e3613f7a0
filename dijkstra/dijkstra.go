// SPDX-License-Identifier: MIT
// Package: eqpaths/dijkstra
//
// dijkstra.go - Search and the reusable Searcher.

package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/eqpaths/core"
	"github.com/katalvlaran/eqpaths/pqueue"
)

// noParent marks a node whose predecessor was never recorded.
const noParent = -1

// Search computes one shortest path from source to destination in g,
// ignoring the edges excluded by the options.
//
// Returns:
//
//   - path:  the path found (valid only when found is true).
//   - found: false when destination cannot be reached under the options.
//   - err:   ErrNilGraph or ErrNodeNotFound (wrapped) on invalid input.
//
// Search allocates a fresh Searcher; callers issuing many searches on the
// same graph should keep a Searcher instead.
//
// Complexity: O((V + E) log V) time, O(V) space.
func Search(g *core.Graph, source, destination core.NodeID, opts ...Option) (core.Path, bool, error) {
	s, err := NewSearcher(g)
	if err != nil {
		return core.Path{}, false, err
	}

	return s.Search(source, destination, opts...)
}

// Searcher holds the per-search state (distances, parents, visited flags and
// the indexed queue) so that consecutive searches reuse the same storage.
// A Searcher is not safe for concurrent use.
type Searcher struct {
	g       *core.Graph
	dist    []float64
	parent  []core.NodeID
	visited []bool
	pq      *pqueue.IndexedMinPQ
	options Options
}

// NewSearcher allocates buffers sized to g's node count.
// Returns ErrNilGraph for a nil graph.
// Complexity: O(V).
func NewSearcher(g *core.Graph) (*Searcher, error) {
	s := &Searcher{}
	if err := s.Reset(g); err != nil {
		return nil, err
	}

	return s, nil
}

// Reset binds the searcher to g, reallocating only when g has a different
// node count than the previous graph.
func (s *Searcher) Reset(g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	n := g.NodeCount()
	if s.pq == nil || s.pq.Cap() != n {
		s.dist = make([]float64, n)
		s.parent = make([]core.NodeID, n)
		s.visited = make([]bool, n)
		s.pq = pqueue.New(n)
	}
	s.g = g

	return nil
}

// Graph returns the graph the searcher is bound to.
func (s *Searcher) Graph() *core.Graph { return s.g }

// Search runs one constrained search on the bound graph. See the package
// level Search for the contract.
func (s *Searcher) Search(source, destination core.NodeID, opts ...Option) (core.Path, bool, error) {
	// 1) Resolve options.
	s.options = DefaultOptions()
	for _, opt := range opts {
		opt(&s.options)
	}

	// 2) Validate graph and endpoints.
	if s.g == nil {
		return core.Path{}, false, ErrNilGraph
	}
	if !s.g.HasNode(source) {
		return core.Path{}, false, fmt.Errorf("%w: source %d (n=%d)", ErrNodeNotFound, source, s.g.NodeCount())
	}
	if !s.g.HasNode(destination) {
		return core.Path{}, false, fmt.Errorf("%w: destination %d (n=%d)", ErrNodeNotFound, destination, s.g.NodeCount())
	}

	// 3) Trivial query: the empty walk.
	if source == destination {
		return core.Path{
			Cost:  0,
			Nodes: []core.NodeID{source},
			Edges: core.NewEdgeSet(),
		}, true, nil
	}

	// 4) Settle nodes in distance order.
	s.init(source)
	s.process(destination)

	// 5) Unreached destination means no path under the current exclusions.
	if s.parent[destination] == noParent {
		return core.Path{}, false, nil
	}

	return s.reconstruct(source, destination), true, nil
}

// Distances runs the search from source without a destination and returns
// the distance of every node (+Inf when unreachable under the options).
// The returned slice is a copy owned by the caller.
func (s *Searcher) Distances(source core.NodeID, opts ...Option) ([]float64, error) {
	s.options = DefaultOptions()
	for _, opt := range opts {
		opt(&s.options)
	}
	if s.g == nil {
		return nil, ErrNilGraph
	}
	if !s.g.HasNode(source) {
		return nil, fmt.Errorf("%w: source %d (n=%d)", ErrNodeNotFound, source, s.g.NodeCount())
	}

	s.init(source)
	s.process(noParent)

	out := make([]float64, len(s.dist))
	for v, d := range s.dist {
		if !s.visited[v] {
			d = math.Inf(1)
		}
		out[v] = d
	}

	return out, nil
}

// init resets dist/parent/visited and loads every node into the queue.
func (s *Searcher) init(source core.NodeID) {
	s.pq.Reset()
	for v := range s.dist {
		s.dist[v] = math.Inf(1)
		s.parent[v] = noParent
		s.visited[v] = false
	}
	s.dist[source] = 0

	for v, d := range s.dist {
		s.pq.Insert(v, d)
	}
}

// process is the main loop. It stops early once destination is settled,
// when the closest remaining node is unreachable, or when it lies beyond
// MaxDistance.
func (s *Searcher) process(destination core.NodeID) {
	for !s.pq.IsEmpty() {
		u, d := s.pq.ExtractMin()
		if s.visited[u] {
			continue
		}

		// Everything left in the queue is at least as far as u.
		if math.IsInf(d, 1) || d > s.options.MaxDistance {
			return
		}

		s.visited[u] = true
		if u == destination {
			return
		}
		s.relax(u)
	}
}

// relax tries to improve every unvisited neighbour of u through a
// non-excluded, passable edge.
func (s *Searcher) relax(u core.NodeID) {
	excluded := s.options.Excluded
	for _, e := range s.g.Neighbors(u) {
		v := e.To
		if s.visited[v] {
			continue
		}
		if e.Weight >= s.options.InfEdgeThreshold {
			continue
		}
		if excluded.Has(e.Key()) {
			continue
		}

		alt := s.dist[u] + e.Weight
		if alt > s.options.MaxDistance {
			continue
		}
		// Strict comparison: an equal-cost alternative keeps the first parent.
		if alt < s.dist[v] {
			s.dist[v] = alt
			s.parent[v] = u
			s.pq.DecreasePriority(v, alt)
		}
	}
}

// reconstruct walks parent pointers from destination back to source.
func (s *Searcher) reconstruct(source, destination core.NodeID) core.Path {
	var hops int
	for v := destination; v != source; v = s.parent[v] {
		hops++
	}

	nodes := make([]core.NodeID, hops+1)
	edges := make(core.EdgeSet, hops)
	i := hops
	for v := destination; ; v = s.parent[v] {
		nodes[i] = v
		if v == source {
			break
		}
		edges.Add(core.KeyOf(s.parent[v], v))
		i--
	}

	return core.Path{
		Cost:  s.dist[destination],
		Nodes: nodes,
		Edges: edges,
	}
}
