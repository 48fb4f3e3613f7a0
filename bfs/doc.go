// Package bfs provides breadth-first traversal over a core.Graph: hop
// distances, BFS-tree parents, visit order and connected components.
//
// Weights are ignored; every edge counts as one hop. The traversal is used
// where only reachability matters, e.g. to skip shortest-path searches
// between nodes of different components.
//
// Options:
//
//   - WithContext(ctx):      cancellation, checked once per dequeued node.
//   - WithMaxDepth(d):       do not enqueue nodes deeper than d hops (d > 0).
//   - WithOnVisit(fn):       called per visited node; an error aborts.
//   - WithEdgeFilter(fn):    skip edges for which fn returns false.
//   - WithExcluded(set):     skip edges whose canonical key is in set.
//
// Errors:
//
//   - ErrGraphNil, ErrStartNotFound for invalid input.
//   - ErrOptionViolation for a negative depth.
//
// Complexity: O(V + E) time, O(V) space.
package bfs
