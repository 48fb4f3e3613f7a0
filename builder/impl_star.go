// SPDX-License-Identifier: MIT
// Package: eqpaths/builder
//
// impl_star.go - Star(n) and Wheel(n), both with hub 0.
//
// Contract:
//   • Star: n ≥ 2, spokes 0—i for i=1..n-1.
//   • Wheel: n ≥ 4, spokes 0—i then rim i—(i%(n-1))+1 for i=1..n-1.

package builder

import "fmt"

const (
	methodStar    = "Star"
	methodWheel   = "Wheel"
	minStarNodes  = 2
	minWheelNodes = 4
	hubID         = 0
)

// Star returns a Constructor that builds a star with hub 0 and n-1 leaves.
func Star(n int) Constructor {
	return func(s *sink, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		s.reserve(n)
		for i := 1; i < n; i++ {
			s.edge(hubID, i, cfg)
		}

		return nil
	}
}

// Wheel returns a Constructor that builds W_n: a rim cycle over 1..n-1 plus
// spokes from hub 0.
func Wheel(n int) Constructor {
	return func(s *sink, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		s.reserve(n)
		for i := 1; i < n; i++ {
			s.edge(hubID, i, cfg)
		}
		rim := n - 1
		for i := 1; i < n; i++ {
			s.edge(i, i%rim+1, cfg)
		}

		return nil
	}
}
