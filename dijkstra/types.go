// SPDX-License-Identifier: MIT
// Package: eqpaths/dijkstra
//
// types.go - sentinel errors, Options and functional options.

package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/eqpaths/core"
)

// Sentinel errors returned by Search.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNodeNotFound indicates a source or destination outside [0, n).
	ErrNodeNotFound = errors.New("dijkstra: node not found in graph")

	// ErrBadMaxDistance indicates a negative or NaN MaxDistance.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates a zero, negative or NaN InfEdgeThreshold,
	// which would make every edge impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures a single search.
//
// Excluded         – canonical keys of edges to ignore; nil means none.
// MaxDistance      – settle only nodes with distance ≤ MaxDistance (default +Inf).
// InfEdgeThreshold – edges with weight ≥ threshold are skipped (default +Inf).
type Options struct {
	Excluded         core.EdgeSet
	MaxDistance      float64
	InfEdgeThreshold float64
}

// Option is a functional option for Search.
type Option func(*Options)

// DefaultOptions returns options with no exclusions and no limits.
func DefaultOptions() Options {
	return Options{
		Excluded:         nil,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

// WithExcluded makes the search ignore every edge whose key is in set.
// The set is read, never modified; the caller keeps ownership.
func WithExcluded(set core.EdgeSet) Option {
	return func(o *Options) {
		o.Excluded = set
	}
}

// WithMaxDistance caps the explored distance.
// Panics with ErrBadMaxDistance for max < 0 or NaN.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance)
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats edges with weight ≥ threshold as walls.
// Panics with ErrBadInfThreshold for threshold ≤ 0 or NaN.
func WithInfEdgeThreshold(threshold float64) Option {
	if !(threshold > 0) {
		panic(ErrBadInfThreshold)
	}
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}
