// SPDX-License-Identifier: MIT
// Package: eqpaths/core
//
// path.go - Path, the result of one successful search.

package core

import (
	"fmt"
	"math"
)

// Path is a walk from Nodes[0] to Nodes[len-1] with its total cost and the
// canonical keys of the edges it traverses. A Path is produced once per
// successful search and handed to the caller; nothing else retains it.
type Path struct {
	// Cost is the sum of the traversed edge weights.
	Cost float64

	// Nodes lists the visited nodes, source and destination inclusive.
	Nodes []NodeID

	// Edges holds one key per traversed edge.
	Edges EdgeSet
}

// Len returns the number of edges traversed.
func (p Path) Len() int {
	if len(p.Nodes) == 0 {
		return 0
	}

	return len(p.Nodes) - 1
}

// Source returns the first node, or -1 for an empty path.
func (p Path) Source() NodeID {
	if len(p.Nodes) == 0 {
		return -1
	}

	return p.Nodes[0]
}

// Destination returns the last node, or -1 for an empty path.
func (p Path) Destination() NodeID {
	if len(p.Nodes) == 0 {
		return -1
	}

	return p.Nodes[len(p.Nodes)-1]
}

// Keys returns the traversed edge keys in walk order.
func (p Path) Keys() []EdgeKey {
	if len(p.Nodes) < 2 {
		return nil
	}
	keys := make([]EdgeKey, 0, len(p.Nodes)-1)
	for i := 1; i < len(p.Nodes); i++ {
		keys = append(keys, KeyOf(p.Nodes[i-1], p.Nodes[i]))
	}

	return keys
}

// Validate checks that p is a walk in g whose cost matches the traversed
// edge weights within tol. It is meant for tests and for input coming from
// outside this module.
func (p Path) Validate(g *Graph, tol float64) error {
	if len(p.Nodes) == 0 {
		return fmt.Errorf("core: empty path")
	}
	var sum float64
	for i, v := range p.Nodes {
		if !g.HasNode(v) {
			return fmt.Errorf("%w: path node %d", ErrNodeOutOfRange, v)
		}
		if i == 0 {
			continue
		}
		w, ok := g.Weight(KeyOf(p.Nodes[i-1], v))
		if !ok {
			return fmt.Errorf("core: path step %d-%d is not an edge", p.Nodes[i-1], v)
		}
		sum += w
	}
	if math.Abs(sum-p.Cost) > tol {
		return fmt.Errorf("core: path cost %g does not match edge sum %g", p.Cost, sum)
	}

	return nil
}
