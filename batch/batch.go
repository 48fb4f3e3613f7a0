// SPDX-License-Identifier: MIT
// Package: eqpaths/batch
//
// batch.go - Run, the all-pairs driver.

package batch

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/eqpaths/bfs"
	"github.com/katalvlaran/eqpaths/core"
	"github.com/katalvlaran/eqpaths/distinct"
	"github.com/katalvlaran/eqpaths/report"
)

// Run queries every ordered pair (s, d), s ≠ d, and hands each result to
// emit in (s, d) order.
//
// Steps:
//  1. Validate input and resolve options.
//  2. Schedule one task per source on a bounded errgroup.
//  3. Emit the per-source slots in order as they complete.
//  4. Wait for the workers and report the first error.
func Run(ctx context.Context, g *core.Graph, emit report.Emitter, opts ...Option) (Stats, error) {
	start := time.Now()

	// 1) Input and options.
	if g == nil {
		return Stats{}, ErrNilGraph
	}
	if emit == nil {
		return Stats{}, ErrNilEmitter
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	// Resolve finder options once so a bad option panics here, not in a worker.
	if _, err := distinct.NewFinder(g, o.Finder...); err != nil {
		return Stats{}, err
	}

	// Pairs in different components are answered without a search.
	comps, err := bfs.ConnectedComponents(g)
	if err != nil {
		return Stats{}, err
	}

	n := g.NodeCount()
	logger := o.Logger
	logger.Debug("batch started", "nodes", n, "edges", g.EdgeCount(),
		"components", comps.Count(), "workers", o.Workers)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	eg, egCtx := errgroup.WithContext(runCtx)
	eg.SetLimit(o.Workers)

	rows := make([][]report.Result, n)
	ready := make([]chan struct{}, n)
	for s := range ready {
		ready[s] = make(chan struct{})
	}

	// 2) Scheduling blocks on the limit, so it runs beside the emitter.
	scheduled := make(chan struct{})
	go func() {
		defer close(scheduled)
		for s := 0; s < n; s++ {
			if egCtx.Err() != nil {
				return
			}
			eg.Go(func() error {
				defer close(ready[s])
				row, err := solveSource(egCtx, g, comps, s, o.Finder)
				if err != nil {
					return err
				}
				rows[s] = row
				logger.Debug("source done", "source", s)

				return nil
			})
		}
	}()

	// 3) Ordered emission.
	var stats Stats
	emitErr := func() error {
		for s := 0; s < n; s++ {
			select {
			case <-ready[s]:
			case <-egCtx.Done():
				return nil
			}
			for _, r := range rows[s] {
				if err := emit.Emit(r); err != nil {
					return fmt.Errorf("batch: emit %d→%d: %w", r.Source, r.Destination, err)
				}
				stats.Pairs++
				stats.Paths += len(r.Paths)
				if r.Found() {
					stats.Found++
				}
			}
			rows[s] = nil
		}
		return nil
	}()
	if emitErr != nil {
		cancel()
	}

	// 4) Collect.
	<-scheduled
	werr := eg.Wait()
	stats.Elapsed = time.Since(start)
	switch {
	case emitErr != nil:
		return stats, emitErr
	case werr != nil:
		return stats, werr
	case ctx.Err() != nil:
		return stats, ctx.Err()
	}
	logger.Info("batch finished", "pairs", stats.Pairs, "found", stats.Found,
		"paths", stats.Paths, "elapsed", stats.Elapsed.Round(time.Millisecond))

	return stats, nil
}

// solveSource answers (source, d) for every d ≠ source with one Finder.
func solveSource(ctx context.Context, g *core.Graph, comps *bfs.Components, source core.NodeID, opts []distinct.Option) ([]report.Result, error) {
	f, err := distinct.NewFinder(g, opts...)
	if err != nil {
		return nil, err
	}
	n := g.NodeCount()
	row := make([]report.Result, 0, max(n-1, 0))
	for d := 0; d < n; d++ {
		if d == source {
			continue
		}
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		if !comps.Connected(source, d) {
			row = append(row, report.Result{Source: source, Destination: d, Paths: []core.Path{}})
			continue
		}
		paths, err := f.Find(source, d)
		if err != nil {
			return nil, fmt.Errorf("batch: %d→%d: %w", source, d, err)
		}
		row = append(row, report.Result{Source: source, Destination: d, Paths: paths})
	}

	return row, nil
}
