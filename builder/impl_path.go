// SPDX-License-Identifier: MIT
// Package: eqpaths/builder
//
// impl_path.go - Path(n) and Cycle(n).
//
// Contract:
//   • Path: n ≥ 2, edges i—(i+1) for i=0..n-2.
//   • Cycle: n ≥ 3, edges i—(i+1)%n for i=0..n-1.
//   • Weights drawn in emission order.

package builder

import "fmt"

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(s *sink, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		s.reserve(n)
		for i := 0; i+1 < n; i++ {
			s.edge(i, i+1, cfg)
		}

		return nil
	}
}

// Cycle returns a Constructor that builds the simple cycle C_n.
// Between any two nodes of a unit-weight even cycle at distance n/2 there are
// exactly two edge-disjoint shortest paths.
func Cycle(n int) Constructor {
	return func(s *sink, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		s.reserve(n)
		for i := 0; i < n; i++ {
			s.edge(i, (i+1)%n, cfg)
		}

		return nil
	}
}
