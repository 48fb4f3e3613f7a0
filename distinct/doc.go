// Package distinct finds up to K edge-disjoint shortest paths of equal cost
// between two nodes of an undirected core.Graph.
//
// What:
//
//   - The first path is a plain dijkstra search; its cost becomes the
//     reference ("minimum") cost.
//   - Every later path is searched with the edges of all previous paths
//     excluded, so no two returned paths share an edge (by canonical key).
//   - The loop stops at the first search that is unreachable or whose cost
//     differs from the reference, so every returned path has the same cost.
//
// The result is greedy: it depends on which equal-cost path the search
// happens to return first, and is not guaranteed to be a maximum set of
// disjoint paths.
//
// Options:
//
//   - WithMaxPaths(k):         at most k paths (k ≥ 1, default 3).
//   - WithCostTolerance(eps):  costs within eps of the reference count as
//     equal (eps ≥ 0, default 0: exact comparison).
//   - WithExcludedEdges(set):  edges no path may use.
//   - WithSearchOptions(...):  forwarded to every dijkstra search.
//
// Reuse:
//
//	A Finder wraps one dijkstra.Searcher and one exclusion set and can answer
//	any number of queries on its graph. It must be owned by one goroutine.
//
// Errors:
//
//	Invalid input errors come from dijkstra (ErrNilGraph, ErrNodeNotFound).
//	Unreachable pairs are reported as an empty, non-nil slice.
package distinct
