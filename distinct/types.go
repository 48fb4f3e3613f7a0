// SPDX-License-Identifier: MIT
// Package: eqpaths/distinct
//
// types.go - sentinel errors, Options and functional options.

package distinct

import (
	"errors"
	"math"

	"github.com/katalvlaran/eqpaths/core"
	"github.com/katalvlaran/eqpaths/dijkstra"
)

// DefaultMaxPaths is the number of paths requested when WithMaxPaths is not given.
const DefaultMaxPaths = 3

var (
	// ErrBadMaxPaths indicates a path limit below one.
	ErrBadMaxPaths = errors.New("distinct: MaxPaths must be at least 1")

	// ErrBadTolerance indicates a negative or NaN cost tolerance.
	ErrBadTolerance = errors.New("distinct: cost tolerance must be non-negative")
)

// Options configures a Finder.
type Options struct {
	// MaxPaths caps the number of returned paths.
	MaxPaths int

	// Tolerance is the largest |cost - reference| still treated as equal.
	Tolerance float64

	// Blocked edges are never used by any returned path.
	Blocked core.EdgeSet

	// Search holds options forwarded to every dijkstra search. An exclusion
	// set passed here is overridden by the finder's own.
	Search []dijkstra.Option
}

// Option is a functional option for NewFinder and FindDistinctPaths.
type Option func(*Options)

// DefaultOptions returns MaxPaths=3, exact cost comparison and no search options.
func DefaultOptions() Options {
	return Options{
		MaxPaths:  DefaultMaxPaths,
		Tolerance: 0,
	}
}

// WithMaxPaths sets the maximum number of paths. Panics with ErrBadMaxPaths if k < 1.
func WithMaxPaths(k int) Option {
	if k < 1 {
		panic(ErrBadMaxPaths)
	}
	return func(o *Options) {
		o.MaxPaths = k
	}
}

// WithCostTolerance relaxes cost equality to |cost - reference| ≤ eps.
// Panics with ErrBadTolerance if eps < 0 or NaN.
func WithCostTolerance(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) {
		panic(ErrBadTolerance)
	}
	return func(o *Options) {
		o.Tolerance = eps
	}
}

// WithSearchOptions appends dijkstra options applied to every search.
func WithSearchOptions(opts ...dijkstra.Option) Option {
	return func(o *Options) {
		o.Search = append(o.Search, opts...)
	}
}

// WithExcludedEdges keeps every edge in set out of all returned paths, on
// top of the edges the finder excludes itself. The set is copied.
func WithExcludedEdges(set core.EdgeSet) Option {
	blocked := set.Clone()
	return func(o *Options) {
		if o.Blocked == nil {
			o.Blocked = core.NewEdgeSet()
		}
		o.Blocked.Merge(blocked)
	}
}
