// SPDX-License-Identifier: MIT
// Package: eqpaths/flow
//
// dinic.go - Dinic's maximum flow.

package flow

import (
	"context"
	"math"
)

// Dinic computes the maximum flow from source to sink and leaves the
// residual capacities in nw.
//
// Steps:
//  1. Normalize options and validate endpoints.
//  2. Repeat until the sink is unreachable in the residual network:
//     a. Check for cancellation.
//     b. BFS from the source to assign levels.
//     c. DFS blocking-flow pushes along arcs with level+1, optionally
//     rebuilding the level graph every LevelRebuildInterval augmentations.
//
// Returns the flow pushed so far together with the context error on
// cancellation.
func Dinic(nw *Network, source, sink int, opts FlowOptions) (maxFlow float64, err error) {
	// 1) Options and endpoints.
	opts.normalize()
	ctx := opts.Ctx
	n := nw.NodeCount()
	if source < 0 || source >= n {
		return 0, ErrSourceNotFound
	}
	if sink < 0 || sink >= n {
		return 0, ErrSinkNotFound
	}
	if source == sink {
		return math.Inf(1), nil
	}

	level := make([]int, n)
	iter := make([]int, n)
	queue := make([]int, 0, n)
	augmentCount := 0

	// 2) Phases.
	for {
		// 2a) Cancellation check before BFS.
		if err = ctx.Err(); err != nil {
			return maxFlow, err
		}

		// 2b) Levels.
		for v := range level {
			level[v] = -1
		}
		level[source] = 0
		queue = append(queue[:0], source)
		for i := 0; i < len(queue); i++ {
			u := queue[i]
			for _, id := range nw.out[u] {
				a := nw.arcs[id]
				if a.cap > opts.Epsilon && level[a.to] < 0 {
					level[a.to] = level[u] + 1
					queue = append(queue, a.to)
				}
			}
		}
		if level[sink] < 0 {
			break
		}

		// 2c) Blocking flow.
		for v := range iter {
			iter[v] = 0
		}
		for {
			if err = ctx.Err(); err != nil {
				return maxFlow, err
			}
			pushed := nw.push(ctx, level, iter, source, sink, math.Inf(1), opts.Epsilon)
			if pushed <= opts.Epsilon {
				break
			}
			maxFlow += pushed
			augmentCount++
			if opts.LevelRebuildInterval > 0 && augmentCount%opts.LevelRebuildInterval == 0 {
				break
			}
		}
	}

	return maxFlow, nil
}

// push sends up to available units from u to sink along the level graph
// and returns the amount sent.
func (nw *Network) push(ctx context.Context, level, iter []int, u, sink int, available, eps float64) float64 {
	if ctx.Err() != nil {
		return 0
	}
	if u == sink {
		return available
	}
	for ; iter[u] < len(nw.out[u]); iter[u]++ {
		id := nw.out[u][iter[u]]
		a := nw.arcs[id]
		if a.cap <= eps || level[a.to] != level[u]+1 {
			continue
		}
		send := math.Min(available, a.cap)
		pushed := nw.push(ctx, level, iter, a.to, sink, send, eps)
		if pushed > 0 {
			nw.arcs[id].cap -= pushed
			nw.arcs[id^1].cap += pushed
			return pushed
		}
	}

	return 0
}

// Flow returns the flow currently routed over the arc added as the i-th
// AddArc call (0-based).
func (nw *Network) Flow(i int) float64 {
	return nw.arcs[2*i+1].cap
}
