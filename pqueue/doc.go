// Package pqueue provides an indexed binary min-heap keyed by integer node IDs.
//
// IndexedMinPQ stores at most one entry per node in the half-open range
// [0, capacity). Next to the heap slice it keeps a position index
// node → heap slot, so membership tests and priority updates on a
// specific node are O(1) lookups followed by an O(log n) sift.
//
// Operations:
//
//   - Insert(node, p):            O(log n), node must be absent.
//   - PeekMin():                  O(1), queue must be non-empty.
//   - ExtractMin():               O(log n), queue must be non-empty.
//   - DecreasePriority(node, p):  O(log n), node must be present; p may be
//     smaller (sift up) or larger (sift down) than the current value.
//   - Contains, Priority, Len, IsEmpty: O(1).
//   - Reset():                    O(n), clears the queue for reuse.
//
// Heap layout:
//
//	parent(i) = (i+1)/2 - 1
//	left(i)   = 2i + 1
//	right(i)  = 2i + 2
//
// Precondition violations (extracting from an empty queue, inserting a node
// twice, updating an absent node, node IDs outside [0, capacity)) are
// programming errors. They panic with one of the sentinel errors declared in
// types.go, so tests can recover and compare with errors.Is.
//
// Equal priorities are not ordered: two nodes with the same priority may be
// extracted in any order.
//
// The queue is not safe for concurrent use; give every goroutine its own.
package pqueue
