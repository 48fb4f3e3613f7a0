// SPDX-License-Identifier: MIT
// Package: eqpaths/builder
//
// impl_complete.go - Complete(n).
//
// Contract:
//   • n ≥ 1; edges i—j for every i<j, emitted i asc then j asc.
//   • Complexity: O(n²) edges.

package builder

import "fmt"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds K_n.
func Complete(n int) Constructor {
	return func(s *sink, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		s.reserve(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				s.edge(i, j, cfg)
			}
		}

		return nil
	}
}
