// SPDX-License-Identifier: MIT
// Package: eqpaths/builder
//
// impl_grid.go - Grid(rows, cols) and Ladder(n).
//
// Canonical model:
//   • Grid: 4-neighbourhood, node r*cols+c, row-major. For each cell emit
//     Right then Bottom when present.
//   • Ladder: two rails 0..n-1 and n..2n-1 with rungs i—(n+i). Emission:
//     rail A, rail B, then rungs.

package builder

import "fmt"

const (
	methodGrid      = "Grid"
	methodLadder    = "Ladder"
	minGridDim      = 1
	minLadderLength = 2
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(s *sink, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		s.reserve(rows * cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					s.edge(u, u+1, cfg)
				}
				if r+1 < rows {
					s.edge(u, u+cols, cfg)
				}
			}
		}

		return nil
	}
}

// Ladder returns a Constructor that builds the ladder graph L_n (2n nodes).
func Ladder(n int) Constructor {
	return func(s *sink, cfg builderConfig) error {
		if n < minLadderLength {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodLadder, n, minLadderLength, ErrTooFewVertices)
		}
		s.reserve(2 * n)
		for i := 0; i+1 < n; i++ {
			s.edge(i, i+1, cfg)
		}
		for i := 0; i+1 < n; i++ {
			s.edge(n+i, n+i+1, cfg)
		}
		for i := 0; i < n; i++ {
			s.edge(i, n+i, cfg)
		}

		return nil
	}
}
