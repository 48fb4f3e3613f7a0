// Package render exports a graph and the distinct paths of one query as
// Graphviz DOT, and turns DOT into SVG with the embedded Graphviz runtime of
// github.com/goccy/go-graphviz.
//
// ToDOT emits an undirected "graph" whose edges are labelled with their
// weights. The edges of path i are drawn bold in Palette[i % len(Palette)];
// the endpoints of the query are filled. RenderSVG parses the DOT text and
// lays it out with the engine named in Options.Layout.
package render
