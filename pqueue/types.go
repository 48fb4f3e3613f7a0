// SPDX-License-Identifier: MIT
// Package: eqpaths/pqueue
//
// types.go - sentinel errors raised (as panics) on precondition violations.

package pqueue

import "errors"

var (
	// ErrEmpty is raised by PeekMin and ExtractMin on an empty queue.
	ErrEmpty = errors.New("pqueue: queue is empty")

	// ErrPresent is raised by Insert when the node already has an entry.
	ErrPresent = errors.New("pqueue: node already present")

	// ErrAbsent is raised by DecreasePriority and Priority for a node without an entry.
	ErrAbsent = errors.New("pqueue: node not present")

	// ErrOutOfRange is raised for node IDs outside [0, capacity).
	ErrOutOfRange = errors.New("pqueue: node out of range")

	// ErrBadCapacity is raised by New for a negative capacity.
	ErrBadCapacity = errors.New("pqueue: capacity must be non-negative")
)

// absent marks a node without a heap slot in the position index.
const absent = -1

// entry is a single heap slot.
type entry struct {
	node     int
	priority float64
}
