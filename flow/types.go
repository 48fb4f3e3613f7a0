// SPDX-License-Identifier: MIT
// Package: eqpaths/flow
//
// types.go - errors, options and the residual network.

package flow

import (
	"context"
	"errors"
	"fmt"
	"math"
)

var (
	// ErrSourceNotFound is returned when the source is outside [0, n).
	ErrSourceNotFound = errors.New("flow: source node not found")

	// ErrSinkNotFound is returned when the sink is outside [0, n).
	ErrSinkNotFound = errors.New("flow: sink node not found")

	// ErrBadCapacity is returned for a negative or NaN capacity.
	ErrBadCapacity = errors.New("flow: capacity must be non-negative")

	// ErrNodeOutOfRange is returned for an arc endpoint outside [0, n).
	ErrNodeOutOfRange = errors.New("flow: node out of range")
)

// defaultEpsilon is the residual threshold when FlowOptions.Epsilon is zero.
const defaultEpsilon = 1e-9

// FlowOptions configures Dinic.
type FlowOptions struct {
	Ctx                  context.Context
	Epsilon              float64
	LevelRebuildInterval int
}

// DefaultOptions returns a background context and the default epsilon.
func DefaultOptions() FlowOptions {
	return FlowOptions{Ctx: context.Background(), Epsilon: defaultEpsilon}
}

func (o *FlowOptions) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Epsilon <= 0 {
		o.Epsilon = defaultEpsilon
	}
}

// arc is one residual arc; arcs[i^1] is always its reverse.
type arc struct {
	to  int
	cap float64
}

// Network is a residual network over nodes [0, n).
type Network struct {
	arcs []arc
	out  [][]int // node → indices into arcs
}

// NewNetwork allocates a network with n nodes and no arcs.
// Panics if n < 0.
func NewNetwork(n int) *Network {
	if n < 0 {
		panic(fmt.Sprintf("flow: NewNetwork(%d): negative size", n))
	}
	return &Network{out: make([][]int, n)}
}

// NodeCount returns n.
func (nw *Network) NodeCount() int { return len(nw.out) }

// AddArc adds u→v with the given capacity and its zero-capacity reverse.
func (nw *Network) AddArc(u, v int, capacity float64) error {
	if u < 0 || u >= len(nw.out) || v < 0 || v >= len(nw.out) {
		return fmt.Errorf("%w: arc %d→%d, n=%d", ErrNodeOutOfRange, u, v, len(nw.out))
	}
	if capacity < 0 || math.IsNaN(capacity) {
		return fmt.Errorf("%w: arc %d→%d cap=%g", ErrBadCapacity, u, v, capacity)
	}
	nw.out[u] = append(nw.out[u], len(nw.arcs))
	nw.arcs = append(nw.arcs, arc{to: v, cap: capacity})
	nw.out[v] = append(nw.out[v], len(nw.arcs))
	nw.arcs = append(nw.arcs, arc{to: u, cap: 0})

	return nil
}
