// SPDX-License-Identifier: MIT
// Package: eqpaths/bfs
//
// bfs.go - BFS walker and connected components.

package bfs

import (
	"fmt"

	"github.com/katalvlaran/eqpaths/core"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	queue []core.NodeID
	res   *Result
}

// BFS runs breadth-first search on g from start.
// Returns ErrGraphNil or ErrStartNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or the error of the OnVisit hook.
func BFS(g *core.Graph, start core.NodeID, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %d (n=%d)", ErrStartNotFound, start, g.NodeCount())
	}

	n := g.NodeCount()
	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]core.NodeID, 0, n),
		res: &Result{
			Start:  start,
			Order:  make([]core.NodeID, 0, n),
			Depth:  make([]int, n),
			Parent: make([]core.NodeID, n),
		},
	}
	for v := 0; v < n; v++ {
		w.res.Depth[v] = unreached
		w.res.Parent[v] = unreached
	}

	w.enqueue(start, 0, unreached)

	return w.res, w.loop()
}

// enqueue records depth and parent of v and appends it to the queue.
func (w *walker) enqueue(v core.NodeID, d int, parent core.NodeID) {
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.queue = append(w.queue, v)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for head := 0; head < len(w.queue); head++ {
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}

		u := w.queue[head]
		d := w.res.Depth[u]
		w.res.Order = append(w.res.Order, u)
		if err := w.opts.OnVisit(u, d); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", u, err)
		}

		next := d + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, e := range w.graph.Neighbors(u) {
			if w.res.Depth[e.To] != unreached || !w.opts.EdgeFilter(e) {
				continue
			}
			w.enqueue(e.To, next, u)
		}
	}

	return nil
}

// Components labels every node with the index of its connected component.
type Components struct {
	label []int
	count int
}

// ConnectedComponents labels the components of g in order of their lowest
// node. Returns ErrGraphNil for a nil graph.
// Complexity: O(V + E).
func ConnectedComponents(g *core.Graph) (*Components, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.NodeCount()
	c := &Components{label: make([]int, n)}
	for v := range c.label {
		c.label[v] = unreached
	}

	queue := make([]core.NodeID, 0, n)
	for s := 0; s < n; s++ {
		if c.label[s] != unreached {
			continue
		}
		c.label[s] = c.count
		queue = append(queue[:0], s)
		for head := 0; head < len(queue); head++ {
			for _, e := range g.Neighbors(queue[head]) {
				if c.label[e.To] == unreached {
					c.label[e.To] = c.count
					queue = append(queue, e.To)
				}
			}
		}
		c.count++
	}

	return c, nil
}

// Count returns the number of components.
func (c *Components) Count() int { return c.count }

// Of returns the component of v, or -1 if v is out of range.
func (c *Components) Of(v core.NodeID) int {
	if v < 0 || v >= len(c.label) {
		return unreached
	}
	return c.label[v]
}

// Connected reports whether u and v lie in the same component.
func (c *Components) Connected(u, v core.NodeID) bool {
	cu := c.Of(u)
	return cu != unreached && cu == c.Of(v)
}
