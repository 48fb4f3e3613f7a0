// SPDX-License-Identifier: MIT
// Package: eqpaths/render
//
// render.go - ToDOT and RenderSVG.

package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/eqpaths/core"
)

// ErrNilGraph indicates that ToDOT received a nil graph.
var ErrNilGraph = errors.New("render: graph is nil")

// Palette colours successive paths.
var Palette = []string{"#1b9e77", "#d95f02", "#7570b3", "#e7298a", "#66a61e", "#e6ab02"}

// Options configures DOT output.
type Options struct {
	// Layout is the Graphviz engine ("neato", "dot", "circo", ...).
	Layout string

	// HideWeights drops the weight labels from edges.
	HideWeights bool

	// Endpoints are the query nodes drawn filled. When empty, the endpoints
	// of the first path are used.
	Endpoints []core.NodeID
}

// DefaultOptions uses the neato layout, which suits undirected graphs.
func DefaultOptions() Options {
	return Options{Layout: "neato"}
}

// ToDOT renders g with paths highlighted.
//
// Steps:
//  1. Graph header and node declarations (query endpoints filled).
//  2. One line per undirected edge, in insertion order.
//  3. Edges used by a path get that path's colour; parallel edges sharing a
//     key are all coloured.
func ToDOT(g *core.Graph, paths []core.Path, opts Options) (string, error) {
	if g == nil {
		return "", ErrNilGraph
	}
	if opts.Layout == "" {
		opts.Layout = DefaultOptions().Layout
	}

	owner := make(map[core.EdgeKey]int)
	for i, p := range paths {
		for k := range p.Edges {
			if _, ok := owner[k]; !ok {
				owner[k] = i
			}
		}
	}
	endpoints := make(map[core.NodeID]bool, 2)
	for _, v := range opts.Endpoints {
		endpoints[v] = true
	}
	if len(opts.Endpoints) == 0 && len(paths) > 0 {
		endpoints[paths[0].Source()] = true
		endpoints[paths[0].Destination()] = true
	}

	// 1) Header and nodes.
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	fmt.Fprintf(&buf, "  layout=%q;\n", opts.Layout)
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, fontsize=12];\n")
	buf.WriteString("\n")
	for v := 0; v < g.NodeCount(); v++ {
		if endpoints[v] {
			fmt.Fprintf(&buf, "  %d [label=\"N%d\", style=filled, fillcolor=lightgrey];\n", v, v)
			continue
		}
		fmt.Fprintf(&buf, "  %d [label=\"N%d\"];\n", v, v)
	}

	// 2) Edges.
	buf.WriteString("\n")
	for _, e := range g.Edges() {
		var attrs []string
		if !opts.HideWeights {
			attrs = append(attrs, fmt.Sprintf("label=%q", strconv.FormatFloat(e.Weight, 'g', -1, 64)))
		}
		// 3) Path colouring.
		if i, ok := owner[e.Key()]; ok {
			attrs = append(attrs, fmt.Sprintf("color=%q", Palette[i%len(Palette)]), "penwidth=3")
		}
		fmt.Fprintf(&buf, "  %d -- %d", e.From, e.To)
		if len(attrs) > 0 {
			buf.WriteString(" [")
			for j, a := range attrs {
				if j > 0 {
					buf.WriteString(", ")
				}
				buf.WriteString(a)
			}
			buf.WriteString("]")
		}
		buf.WriteString(";\n")
	}
	buf.WriteString("}\n")

	return buf.String(), nil
}

// RenderSVG lays out dot and returns the SVG document.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("render: init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("render: parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	return buf.Bytes(), nil
}
