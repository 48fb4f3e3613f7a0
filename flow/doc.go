// Package flow computes maximum flows on small directed networks with
// Dinic's algorithm (level graph + blocking flows).
//
// A Network has nodes [0, n) and arcs with non-negative capacities. Each
// AddArc also creates the reverse residual arc, so an undirected unit edge
// is modelled by one AddArc per direction.
//
// The package serves as the exact counterpart of the greedy distinct-path
// finder: by Menger's theorem the maximum number of edge-disjoint s-t paths
// in a unit-capacity network equals its maximum flow.
//
// Complexity:
//
//	Time:   O(E · √V) on unit-capacity networks, O(V² · E) in general.
//	Memory: O(V + E).
//
// Options:
//
//	Ctx                  – cancellation, checked once per phase and per push.
//	Epsilon              – residual capacities ≤ Epsilon count as zero (default 1e-9).
//	LevelRebuildInterval – rebuild the level graph every N augmentations (0 = never early).
package flow
