package render_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eqpaths/core"
	"github.com/katalvlaran/eqpaths/distinct"
	"github.com/katalvlaran/eqpaths/render"
)

func squareWithDiagonal(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.FromEdges(4, []core.Edge{
		core.MustEdge(0, 1, 1),
		core.MustEdge(1, 3, 1),
		core.MustEdge(0, 2, 1),
		core.MustEdge(2, 3, 1.5),
		core.MustEdge(0, 3, 5),
	})
	require.NoError(t, err)

	return g
}

func TestToDOT_Structure(t *testing.T) {
	g := squareWithDiagonal(t)
	dot, err := render.ToDOT(g, nil, render.DefaultOptions())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(dot, "graph G {\n"))
	assert.True(t, strings.HasSuffix(dot, "}\n"))
	assert.Contains(t, dot, `layout="neato";`)
	assert.Contains(t, dot, `0 [label="N0"];`)
	assert.Contains(t, dot, `2 -- 3 [label="1.5"];`)
	assert.Contains(t, dot, `0 -- 3 [label="5"];`)
	assert.NotContains(t, dot, "->")
	assert.NotContains(t, dot, "penwidth")
}

func TestToDOT_HighlightsPaths(t *testing.T) {
	g := squareWithDiagonal(t)
	paths, err := distinct.FindDistinctPaths(g, 0, 3, distinct.WithCostTolerance(10))
	require.NoError(t, err)
	require.Len(t, paths, 3)

	dot, err := render.ToDOT(g, paths, render.Options{Layout: "circo", HideWeights: true})
	require.NoError(t, err)

	assert.Contains(t, dot, `layout="circo";`)
	assert.Contains(t, dot, `0 [label="N0", style=filled, fillcolor=lightgrey];`)
	assert.Contains(t, dot, `3 [label="N3", style=filled, fillcolor=lightgrey];`)
	assert.Contains(t, dot, `0 -- 1 [color="`+render.Palette[0]+`", penwidth=3];`)
	assert.Contains(t, dot, `1 -- 3 [color="`+render.Palette[0]+`", penwidth=3];`)
	assert.Contains(t, dot, `0 -- 2 [color="`+render.Palette[1]+`", penwidth=3];`)
	assert.Contains(t, dot, `0 -- 3 [color="`+render.Palette[2]+`", penwidth=3];`)
	assert.NotContains(t, dot, "label=\"1\"")
}

func TestToDOT_EndpointsWithoutPaths(t *testing.T) {
	g, err := core.FromEdges(4, []core.Edge{
		core.MustEdge(0, 1, 1),
		core.MustEdge(2, 3, 1),
	})
	require.NoError(t, err)
	paths, err := distinct.FindDistinctPaths(g, 0, 3)
	require.NoError(t, err)
	require.Empty(t, paths)

	dot, err := render.ToDOT(g, paths, render.Options{Endpoints: []core.NodeID{0, 3}})
	require.NoError(t, err)
	assert.Contains(t, dot, `0 [label="N0", style=filled, fillcolor=lightgrey];`)
	assert.Contains(t, dot, `3 [label="N3", style=filled, fillcolor=lightgrey];`)
	assert.Contains(t, dot, `1 [label="N1"];`)
	assert.NotContains(t, dot, "penwidth")
}

func TestToDOT_NilGraph(t *testing.T) {
	_, err := render.ToDOT(nil, nil, render.Options{})
	assert.ErrorIs(t, err, render.ErrNilGraph)
}

func TestRenderSVG(t *testing.T) {
	if testing.Short() {
		t.Skip("graphviz runtime start-up is slow")
	}
	dot, err := render.ToDOT(squareWithDiagonal(t), nil, render.DefaultOptions())
	require.NoError(t, err)

	svg, err := render.RenderSVG(context.Background(), dot)
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")
}

func TestRenderSVG_BadDOT(t *testing.T) {
	if testing.Short() {
		t.Skip("graphviz runtime start-up is slow")
	}
	_, err := render.RenderSVG(context.Background(), "graph {")
	assert.Error(t, err)
}
