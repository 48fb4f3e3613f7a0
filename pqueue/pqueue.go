// SPDX-License-Identifier: MIT
// Package: eqpaths/pqueue
//
// pqueue.go - IndexedMinPQ: binary min-heap with a node → slot index.
//
// Invariants (hold between public calls):
//   - heap[parent(i)].priority ≤ heap[i].priority for every i > 0.
//   - pos[heap[i].node] == i for every live slot i.
//   - pos[v] == absent for every node v without an entry.

package pqueue

import "fmt"

// IndexedMinPQ is a min-priority-queue over node IDs in [0, capacity).
type IndexedMinPQ struct {
	heap []entry // heap-ordered entries, len == number of live entries
	pos  []int   // node → heap slot, or absent
}

// New allocates a queue able to hold every node in [0, capacity).
// Panics with ErrBadCapacity if capacity < 0.
// Complexity: O(capacity) time and space.
func New(capacity int) *IndexedMinPQ {
	if capacity < 0 {
		panic(fmt.Errorf("%w: got %d", ErrBadCapacity, capacity))
	}
	q := &IndexedMinPQ{
		heap: make([]entry, 0, capacity),
		pos:  make([]int, capacity),
	}
	for i := range q.pos {
		q.pos[i] = absent
	}

	return q
}

// Cap returns the number of distinct node IDs the queue accepts.
func (q *IndexedMinPQ) Cap() int { return len(q.pos) }

// Len returns the number of entries currently in the queue.
func (q *IndexedMinPQ) Len() int { return len(q.heap) }

// IsEmpty reports whether the queue holds no entries.
func (q *IndexedMinPQ) IsEmpty() bool { return len(q.heap) == 0 }

// Contains reports whether node currently has an entry.
// Out-of-range IDs are reported as absent rather than panicking.
func (q *IndexedMinPQ) Contains(node int) bool {
	return node >= 0 && node < len(q.pos) && q.pos[node] != absent
}

// Priority returns the current priority of node.
// Panics with ErrAbsent if node has no entry.
func (q *IndexedMinPQ) Priority(node int) float64 {
	q.checkRange(node)
	i := q.pos[node]
	if i == absent {
		panic(fmt.Errorf("%w: node=%d", ErrAbsent, node))
	}

	return q.heap[i].priority
}

// Insert adds node with the given priority.
// Panics with ErrOutOfRange or ErrPresent on precondition violations.
// Complexity: O(log n).
func (q *IndexedMinPQ) Insert(node int, priority float64) {
	q.checkRange(node)
	if q.pos[node] != absent {
		panic(fmt.Errorf("%w: node=%d", ErrPresent, node))
	}

	// 1) Append at the first free slot.
	i := len(q.heap)
	q.heap = append(q.heap, entry{node: node, priority: priority})
	q.pos[node] = i

	// 2) Restore heap order upwards.
	q.siftUp(i)
}

// PeekMin returns the node with the smallest priority without removing it.
// Panics with ErrEmpty on an empty queue.
// Complexity: O(1).
func (q *IndexedMinPQ) PeekMin() (node int, priority float64) {
	if len(q.heap) == 0 {
		panic(ErrEmpty)
	}
	top := q.heap[0]

	return top.node, top.priority
}

// ExtractMin removes and returns the node with the smallest priority.
// The last entry is moved into the vacated root and sifted down.
// Panics with ErrEmpty on an empty queue.
// Complexity: O(log n).
func (q *IndexedMinPQ) ExtractMin() (node int, priority float64) {
	if len(q.heap) == 0 {
		panic(ErrEmpty)
	}
	top := q.heap[0]
	last := len(q.heap) - 1

	// 1) Move the last entry into the root, then drop the tail slot.
	q.swap(0, last)
	q.heap = q.heap[:last]
	q.pos[top.node] = absent

	// 2) Restore heap order downwards from the root.
	if last > 0 {
		q.siftDown(0)
	}

	return top.node, top.priority
}

// DecreasePriority changes the priority of a node already in the queue.
// Despite the name, the new priority may be larger than the old one; the
// entry is sifted in whichever direction restores heap order.
// Panics with ErrOutOfRange or ErrAbsent on precondition violations.
// Complexity: O(log n).
func (q *IndexedMinPQ) DecreasePriority(node int, priority float64) {
	q.checkRange(node)
	i := q.pos[node]
	if i == absent {
		panic(fmt.Errorf("%w: node=%d", ErrAbsent, node))
	}

	old := q.heap[i].priority
	q.heap[i].priority = priority
	if priority > old {
		q.siftDown(i)
	} else {
		q.siftUp(i)
	}
}

// Reset removes every entry while keeping the allocated storage, so one
// queue can serve many consecutive searches over graphs of the same size.
// Complexity: O(Len()).
func (q *IndexedMinPQ) Reset() {
	for _, e := range q.heap {
		q.pos[e.node] = absent
	}
	q.heap = q.heap[:0]
}

// siftUp moves the entry at slot i towards the root while it is smaller than its parent.
func (q *IndexedMinPQ) siftUp(i int) {
	for i > 0 {
		p := parent(i)
		if !(q.heap[i].priority < q.heap[p].priority) {
			return
		}
		q.swap(i, p)
		i = p
	}
}

// siftDown moves the entry at slot i towards the leaves while a child is smaller.
func (q *IndexedMinPQ) siftDown(i int) {
	n := len(q.heap)
	for {
		c := q.minChild(i, n)
		if c == absent || !(q.heap[c].priority < q.heap[i].priority) {
			return
		}
		q.swap(i, c)
		i = c
	}
}

// minChild returns the slot of the smaller child of i, or absent for a leaf.
func (q *IndexedMinPQ) minChild(i, n int) int {
	l := left(i)
	if l >= n {
		return absent
	}
	r := l + 1
	if r < n && q.heap[r].priority < q.heap[l].priority {
		return r
	}

	return l
}

// swap exchanges two heap slots and keeps the position index in sync.
func (q *IndexedMinPQ) swap(i, j int) {
	q.heap[i], q.heap[j] = q.heap[j], q.heap[i]
	q.pos[q.heap[i].node] = i
	q.pos[q.heap[j].node] = j
}

func (q *IndexedMinPQ) checkRange(node int) {
	if node < 0 || node >= len(q.pos) {
		panic(fmt.Errorf("%w: node=%d, capacity=%d", ErrOutOfRange, node, len(q.pos)))
	}
}

func parent(i int) int { return (i+1)/2 - 1 }

func left(i int) int { return 2*i + 1 }
