// SPDX-License-Identifier: MIT
// Package: eqpaths/loader
//
// types.go - sentinel errors and options.

package loader

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/eqpaths/core"
)

var (
	// ErrSyntax indicates a line that does not follow the format.
	ErrSyntax = errors.New("loader: syntax error")

	// ErrMissingHeader indicates input that ends before n and m were read.
	ErrMissingHeader = errors.New("loader: missing node or edge count")

	// ErrEdgeCount indicates that the number of edge lines differs from the
	// declared count (only with WithStrictCount).
	ErrEdgeCount = errors.New("loader: edge count mismatch")

	// ErrBadMaxNodes indicates a non-positive WithMaxNodes limit.
	ErrBadMaxNodes = errors.New("loader: max nodes must be positive")
)

// commentMarker starts a comment that runs to the end of the line.
const commentMarker = "#"

// maxPrealloc bounds the edge storage reserved from an untrusted header.
const maxPrealloc = 1 << 16

// DefaultMaxNodes is the largest node count a header may declare unless
// WithMaxNodes raises it. Adjacency is allocated for every declared node.
const DefaultMaxNodes = 1 << 22

// nodePrefix is the letter in front of every node id on edge lines.
const nodePrefix = 'N'

type options struct {
	strict    bool
	maxNodes  int
	graphOpts []core.GraphOption
}

func defaultOptions() options {
	return options{maxNodes: DefaultMaxNodes}
}

// Option configures Parse and LoadFile.
type Option func(*options)

// WithStrictCount rejects files whose edge lines do not match the declared m.
func WithStrictCount() Option {
	return func(o *options) { o.strict = true }
}

// WithMaxNodes sets the largest node count accepted from the header.
// Panics with ErrBadMaxNodes if n < 1.
func WithMaxNodes(n int) Option {
	if n < 1 {
		panic(fmt.Errorf("%w: got %d", ErrBadMaxNodes, n))
	}
	return func(o *options) { o.maxNodes = n }
}

// WithGraphOptions forwards options to the core.Builder (e.g. core.WithLoops).
func WithGraphOptions(opts ...core.GraphOption) Option {
	return func(o *options) { o.graphOpts = append(o.graphOpts, opts...) }
}
