// Package dijkstra implements a constrained single-pair Dijkstra search over
// an undirected core.Graph with non-negative weights.
//
// Overview:
//
//   - Search finds one minimum-cost path from a source to a destination.
//   - Any edge whose canonical key is in the exclusion set (WithExcluded) is
//     ignored during relaxation, as if it were not part of the graph. This is
//     the primitive the distinct package repeats to obtain edge-disjoint
//     alternatives of equal cost.
//   - The priority queue is a pqueue.IndexedMinPQ with a real decrease-key:
//     every node is inserted up front with its initial distance (0 for the
//     source, +Inf elsewhere) and relaxation lowers the entry in place, so
//     the queue never holds more than V entries.
//
// Algorithm:
//
//  1. dist[source]=0, dist[v]=+Inf otherwise; parent[v]=-1; insert all nodes.
//  2. Extract the minimum node u and mark it visited. Stop when u is the
//     destination, or when dist[u] is +Inf (nothing reachable is left).
//  3. For every non-excluded edge (u,v,w) with v unvisited:
//     if dist[u]+w < dist[v] then dist[v]=dist[u]+w, parent[v]=u and
//     DecreasePriority(v, dist[v]).
//  4. If parent[destination] was never set (and destination ≠ source) the
//     destination is unreachable. Otherwise walk parent pointers back to the
//     source, collecting nodes and canonical edge keys.
//
// Unreachable is not an error: Search returns found=false and a nil error.
// source == destination yields the single-node zero-cost path.
//
// Complexity:
//
//   - Time:  O((V + E) log V).
//   - Space: O(V) for dist/parent/visited and the queue.
//
// Options:
//
//   - WithExcluded(set):          edges to ignore (by canonical key).
//   - WithMaxDistance(d):         nodes farther than d are not settled; a
//     destination beyond d is reported unreachable.
//   - WithInfEdgeThreshold(t):    edges with weight ≥ t are impassable.
//
// Reuse and concurrency:
//
//	A Searcher keeps its buffers between calls (arena-style), so a caller
//	issuing many searches on the same graph allocates once. A Searcher must
//	be owned by a single goroutine; the Graph itself may be shared.
//
// Errors (sentinel):
//
//   - ErrNilGraph:      nil *core.Graph.
//   - ErrNodeNotFound:  source or destination outside [0, n).
//   - ErrBadMaxDistance / ErrBadInfThreshold: raised as panics by the option
//     constructors for meaningless values.
package dijkstra
