// SPDX-License-Identifier: MIT
// Package: eqpaths/builder
//
// api.go - BuildGraph orchestrator, Constructor type and the edge sink.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Resolves cfg, runs cons
//     in order against one sink, then seals a core.Graph.
//   - Constructors validate early and return sentinel errors, never panic.
//   - Determinism: same options/seed/order ⇒ identical graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/eqpaths/core"
)

// Constructor emits nodes and edges into a sink using the resolved config.
type Constructor func(s *sink, cfg builderConfig) error

// sink collects generated edges before the node count is known.
type sink struct {
	nodes int
	edges []core.Edge
}

// reserve makes sure IDs [0, n) exist.
func (s *sink) reserve(n int) {
	if n > s.nodes {
		s.nodes = n
	}
}

// edge records u—v with the next weight from cfg.
func (s *sink) edge(u, v core.NodeID, cfg builderConfig) {
	s.reserve(max(u, v) + 1)
	s.edges = append(s.edges, core.Edge{From: u, To: v, Weight: cfg.weight()})
}

// BuildGraph resolves bopts, applies every constructor in order and returns
// the sealed graph. Constructor errors are wrapped as "BuildGraph: %w".
//
// Complexity: Σ cost of constructors + O(n + m) to seal.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	s := &sink{}

	// 1) Run constructors in order.
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	// 2) Seal. A WeightFn returning a negative weight surfaces here as
	//    core.ErrNegativeWeight.
	b := core.NewBuilder(s.nodes, core.WithEdgeCapacity(len(s.edges)))
	for _, e := range s.edges {
		if err := b.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w: %w", ErrConstructFailed, err)
		}
	}

	return b.Build()
}

// MustBuild is BuildGraph for test fixtures; it panics on error.
func MustBuild(bopts []BuilderOption, cons ...Constructor) *core.Graph {
	g, err := BuildGraph(bopts, cons...)
	if err != nil {
		panic(err)
	}

	return g
}
