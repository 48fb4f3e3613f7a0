// SPDX-License-Identifier: MIT
// Package: eqpaths/bfs
//
// types.go - sentinel errors, options and the traversal result.

package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/eqpaths/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartNotFound is returned when the start node is outside [0, n).
	ErrStartNotFound = errors.New("bfs: start node not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// unreached marks Depth and Parent entries of nodes never enqueued.
const unreached = -1

// Option configures BFS behavior. An invalid Option is recorded and
// surfaced as ErrOptionViolation when BFS runs.
type Option func(*Options)

// Options holds parameters and callbacks of one traversal.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when a node is dequeued. A non-nil error aborts.
	OnVisit func(v core.NodeID, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// EdgeFilter skips adjacency entries for which it returns false.
	EdgeFilter func(e core.Edge) bool

	err error
}

// DefaultOptions: background context, no depth limit, no filtering, no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		OnVisit:    func(core.NodeID, int) error { return nil },
		EdgeFilter: func(core.Edge) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback run on every visited node.
func WithOnVisit(fn func(v core.NodeID, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the traversal to d hops; 0 means no limit and a
// negative d is an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithEdgeFilter skips edges for which fn returns false.
func WithEdgeFilter(fn func(e core.Edge) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.EdgeFilter = fn
		}
	}
}

// WithExcluded skips edges whose canonical key is in set.
func WithExcluded(set core.EdgeSet) Option {
	return WithEdgeFilter(func(e core.Edge) bool { return !set.Has(e.Key()) })
}

// Result holds the outcome of one traversal.
//   - Order:  nodes in visit sequence.
//   - Depth:  hops from the start, -1 for unreached nodes.
//   - Parent: BFS-tree predecessor, -1 for the start and unreached nodes.
type Result struct {
	Start  core.NodeID
	Order  []core.NodeID
	Depth  []int
	Parent []core.NodeID
}

// Reached reports whether v was reached.
func (r *Result) Reached(v core.NodeID) bool {
	return v >= 0 && v < len(r.Depth) && r.Depth[v] != unreached
}

// PathTo returns the fewest-hop path from the start to dest.
func (r *Result) PathTo(dest core.NodeID) ([]core.NodeID, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("bfs: no path to %d", dest)
	}
	path := make([]core.NodeID, r.Depth[dest]+1)
	for i, cur := len(path)-1, dest; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}

	return path, nil
}
