// SPDX-License-Identifier: MIT
// Package: eqpaths/core
//
// types.go - NodeID, Edge, EdgeKey and the sentinel errors of the graph model.

package core

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Sentinel errors for graph construction.
var (
	// ErrNegativeWeight indicates an edge with weight < 0. Shortest-path
	// optimality does not hold with negative weights, so such edges are
	// rejected before any graph exists.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrBadWeight indicates a NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: edge weight is not a finite number")

	// ErrBadNodeCount indicates a negative node count.
	ErrBadNodeCount = errors.New("core: node count must be non-negative")

	// ErrNodeOutOfRange indicates an endpoint outside [0, n).
	ErrNodeOutOfRange = errors.New("core: node out of range")

	// ErrLoopNotAllowed indicates a self-loop on a builder without WithLoops().
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrSealed indicates a Builder mutation after Build.
	ErrSealed = errors.New("core: builder already sealed")

	// ErrBadEdgeKey indicates text that is not of the form "<int>-<int>".
	ErrBadEdgeKey = errors.New("core: malformed edge key")
)

// NodeID identifies a node; valid IDs of a graph with n nodes are [0, n).
type NodeID = int

// Edge is one directed adjacency entry of an undirected edge.
type Edge struct {
	// From is the node whose adjacency list holds this entry.
	From NodeID

	// To is the neighbour reached through this entry.
	To NodeID

	// Weight is the non-negative traversal cost, equal in both directions.
	Weight float64
}

// NewEdge validates weight and returns the edge From→To.
// Returns ErrNegativeWeight for weight < 0 and ErrBadWeight for NaN/±Inf.
func NewEdge(from, to NodeID, weight float64) (Edge, error) {
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return Edge{}, fmt.Errorf("%w: edge %d-%d weight=%g", ErrBadWeight, from, to, weight)
	}
	if weight < 0 {
		return Edge{}, fmt.Errorf("%w: edge %d-%d weight=%g", ErrNegativeWeight, from, to, weight)
	}

	return Edge{From: from, To: to, Weight: weight}, nil
}

// MustEdge is NewEdge for literal fixtures; it panics on an invalid weight.
func MustEdge(from, to NodeID, weight float64) Edge {
	e, err := NewEdge(from, to, weight)
	if err != nil {
		panic(err)
	}

	return e
}

// Key returns the canonical key of the undirected edge e belongs to.
func (e Edge) Key() EdgeKey { return KeyOf(e.From, e.To) }

// Reverse returns the mirrored adjacency entry To→From.
func (e Edge) Reverse() Edge { return Edge{From: e.To, To: e.From, Weight: e.Weight} }

// EdgeKey names an undirected edge independently of traversal direction.
// Lo ≤ Hi always holds for keys built with KeyOf or ParseEdgeKey.
type EdgeKey struct {
	Lo NodeID
	Hi NodeID
}

// KeyOf returns the canonical key {min(u,v), max(u,v)}.
func KeyOf(u, v NodeID) EdgeKey {
	if u > v {
		u, v = v, u
	}

	return EdgeKey{Lo: u, Hi: v}
}

// String renders the key as "lo-hi".
func (k EdgeKey) String() string {
	return strconv.Itoa(k.Lo) + "-" + strconv.Itoa(k.Hi)
}

// Less orders keys by (Lo, Hi).
func (k EdgeKey) Less(o EdgeKey) bool {
	if k.Lo != o.Lo {
		return k.Lo < o.Lo
	}

	return k.Hi < o.Hi
}

// ParseEdgeKey parses "u-v" (either order) into its canonical key.
// Negative IDs are rejected since "-" is the separator.
func ParseEdgeKey(s string) (EdgeKey, error) {
	a, b, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return EdgeKey{}, fmt.Errorf("%w: %q", ErrBadEdgeKey, s)
	}
	u, err := strconv.Atoi(strings.TrimSpace(a))
	if err != nil || u < 0 {
		return EdgeKey{}, fmt.Errorf("%w: %q", ErrBadEdgeKey, s)
	}
	v, err := strconv.Atoi(strings.TrimSpace(b))
	if err != nil || v < 0 {
		return EdgeKey{}, fmt.Errorf("%w: %q", ErrBadEdgeKey, s)
	}

	return KeyOf(u, v), nil
}
