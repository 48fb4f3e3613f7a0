// Package distinct_test covers the documented scenarios of the distinct-path
// finder and checks its guarantees on seeded random graphs.
package distinct_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eqpaths/builder"
	"github.com/katalvlaran/eqpaths/core"
	"github.com/katalvlaran/eqpaths/dijkstra"
	"github.com/katalvlaran/eqpaths/distinct"
)

func squareWithDiagonal(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.FromEdges(4, []core.Edge{
		core.MustEdge(0, 1, 1),
		core.MustEdge(1, 3, 1),
		core.MustEdge(0, 2, 1),
		core.MustEdge(2, 3, 1),
		core.MustEdge(0, 3, 5),
	})
	require.NoError(t, err)

	return g
}

func nodesOf(paths []core.Path) [][]core.NodeID {
	out := make([][]core.NodeID, len(paths))
	for i, p := range paths {
		out[i] = p.Nodes
	}

	return out
}

func TestFind_SquareWithDiagonal(t *testing.T) {
	paths, err := distinct.FindDistinctPaths(squareWithDiagonal(t), 0, 3)
	require.NoError(t, err)

	require.Len(t, paths, 2)
	assert.Equal(t, [][]core.NodeID{{0, 1, 3}, {0, 2, 3}}, nodesOf(paths))
	for _, p := range paths {
		assert.Equal(t, 2.0, p.Cost)
	}
}

func TestFind_ToleranceAdmitsCostlierPath(t *testing.T) {
	g := squareWithDiagonal(t)

	paths, err := distinct.FindDistinctPaths(g, 0, 3, distinct.WithCostTolerance(3))
	require.NoError(t, err)
	require.Len(t, paths, 3)
	assert.Equal(t, []core.NodeID{0, 3}, paths[2].Nodes)
	assert.Equal(t, 5.0, paths[2].Cost)

	paths, err = distinct.FindDistinctPaths(g, 0, 3, distinct.WithCostTolerance(2.999))
	require.NoError(t, err)
	assert.Len(t, paths, 2)
}

func TestFind_Disconnected(t *testing.T) {
	b := core.NewBuilder(4)
	require.NoError(t, b.AddEdge(0, 1, 1))
	require.NoError(t, b.AddEdge(2, 3, 1))
	g, err := b.Build()
	require.NoError(t, err)

	paths, err := distinct.FindDistinctPaths(g, 0, 3)
	require.NoError(t, err)
	assert.NotNil(t, paths)
	assert.Empty(t, paths)
}

func TestFind_SingleEdge(t *testing.T) {
	g, err := core.FromEdges(2, []core.Edge{core.MustEdge(0, 1, 3)})
	require.NoError(t, err)

	paths, err := distinct.FindDistinctPaths(g, 0, 1)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, 3.0, paths[0].Cost)
	assert.Equal(t, []core.NodeID{0, 1}, paths[0].Nodes)
}

func TestFind_SourceEqualsDestination(t *testing.T) {
	paths, err := distinct.FindDistinctPaths(squareWithDiagonal(t), 1, 1)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, 0.0, paths[0].Cost)
	assert.Equal(t, []core.NodeID{1}, paths[0].Nodes)
}

func TestFind_MaxPaths(t *testing.T) {
	// K5 with unit weights: only the direct edge costs 1.
	g := builder.MustBuild(nil, builder.Complete(5))
	paths, err := distinct.FindDistinctPaths(g, 0, 4)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, []core.NodeID{0, 4}, paths[0].Nodes)

	// Cycle(6) between opposite nodes has exactly two cost-3 paths.
	c := builder.MustBuild(nil, builder.Cycle(6))
	paths, err = distinct.FindDistinctPaths(c, 0, 3, distinct.WithMaxPaths(1))
	require.NoError(t, err)
	assert.Len(t, paths, 1)

	paths, err = distinct.FindDistinctPaths(c, 0, 3, distinct.WithMaxPaths(5))
	require.NoError(t, err)
	assert.Len(t, paths, 2)
}

func TestFind_GridHasTwoCornerPaths(t *testing.T) {
	// In a unit grid only two edges leave the corner, so at most two
	// edge-disjoint paths exist.
	g := builder.MustBuild(nil, builder.Grid(3, 3))
	paths, err := distinct.FindDistinctPaths(g, 0, 8)
	require.NoError(t, err)
	require.Len(t, paths, 2)
	for _, p := range paths {
		assert.Equal(t, 4.0, p.Cost)
	}
	assert.False(t, paths[0].Edges.Intersects(paths[1].Edges))
}

func TestFind_SearchOptionsAreForwarded(t *testing.T) {
	g := squareWithDiagonal(t)

	paths, err := distinct.FindDistinctPaths(g, 0, 3,
		distinct.WithSearchOptions(dijkstra.WithMaxDistance(1)))
	require.NoError(t, err)
	assert.Empty(t, paths)

	// An exclusion passed through search options is replaced by the finder's.
	paths, err = distinct.FindDistinctPaths(g, 0, 3,
		distinct.WithSearchOptions(dijkstra.WithExcluded(core.NewEdgeSet(core.KeyOf(0, 1)))))
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t, []core.NodeID{0, 1, 3}, paths[0].Nodes)
}

func TestFind_Errors(t *testing.T) {
	_, err := distinct.FindDistinctPaths(nil, 0, 1)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, err = distinct.FindDistinctPaths(squareWithDiagonal(t), 0, 9)
	assert.ErrorIs(t, err, dijkstra.ErrNodeNotFound)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { distinct.WithMaxPaths(0) })
	assert.Panics(t, func() { distinct.WithCostTolerance(-0.1) })
	assert.NotPanics(t, func() { distinct.WithCostTolerance(0) })

	o := distinct.DefaultOptions()
	assert.Equal(t, distinct.DefaultMaxPaths, o.MaxPaths)
	assert.Equal(t, 0.0, o.Tolerance)
}

func TestFinder_ReuseDoesNotLeakExclusions(t *testing.T) {
	g := squareWithDiagonal(t)
	f, err := distinct.NewFinder(g)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		paths, err := f.Find(0, 3)
		require.NoError(t, err)
		require.Len(t, paths, 2, "run %d", i)
	}
	paths, err := f.Find(3, 0)
	require.NoError(t, err)
	assert.Len(t, paths, 2)
	assert.Equal(t, 3, f.Options().MaxPaths)
}

func TestFind_PropertiesOnRandomGraphs(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := builder.MustBuild([]builder.BuilderOption{
			builder.WithSeed(seed),
			builder.WithWeightFn(builder.IntUniformWeightFn(1, 2)),
		}, builder.RandomSparse(10, 0.45))

		f, err := distinct.NewFinder(g)
		require.NoError(t, err)
		for src := 0; src < g.NodeCount(); src++ {
			for dst := 0; dst < g.NodeCount(); dst++ {
				paths, err := f.Find(src, dst)
				require.NoError(t, err)
				require.LessOrEqual(t, len(paths), distinct.DefaultMaxPaths)

				ref, found, err := dijkstra.Search(g, src, dst)
				require.NoError(t, err)
				if !found {
					assert.Empty(t, paths)
					continue
				}
				require.NotEmpty(t, paths)

				for i, p := range paths {
					assert.Equal(t, ref.Cost, p.Cost, "seed %d %d→%d path %d", seed, src, dst, i)
					assert.NoError(t, p.Validate(g, 0))
					assert.Equal(t, src, p.Source())
					assert.Equal(t, dst, p.Destination())
					for j := i + 1; j < len(paths); j++ {
						assert.False(t, p.Edges.Intersects(paths[j].Edges),
							"seed %d %d→%d paths %d,%d share an edge", seed, src, dst, i, j)
					}
				}
			}
		}
	}
}

func TestFind_ExcludedEdges(t *testing.T) {
	g := squareWithDiagonal(t)
	blocked := core.NewEdgeSet(core.KeyOf(1, 3))

	f, err := distinct.NewFinder(g, distinct.WithExcludedEdges(blocked))
	require.NoError(t, err)
	blocked.Add(core.KeyOf(0, 2)) // later changes do not leak into the finder

	for i := 0; i < 2; i++ {
		paths, err := f.Find(0, 3)
		require.NoError(t, err)
		require.Len(t, paths, 1, "run %d", i)
		assert.Equal(t, []core.NodeID{0, 2, 3}, paths[0].Nodes)
	}
}

func TestMaxDisjoint(t *testing.T) {
	ctx := context.Background()
	g := squareWithDiagonal(t)

	k, err := distinct.MaxDisjoint(ctx, g, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, k)

	k, err = distinct.MaxDisjoint(ctx, g, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, k)

	k, err = distinct.MaxDisjoint(ctx, builder.MustBuild(nil, builder.Grid(4, 4)), 5, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, k)

	_, err = distinct.MaxDisjoint(ctx, g, 0, 4)
	assert.ErrorIs(t, err, dijkstra.ErrNodeNotFound)
	_, err = distinct.MaxDisjoint(ctx, g, 4, 0)
	assert.ErrorIs(t, err, dijkstra.ErrNodeNotFound)
	_, err = distinct.MaxDisjoint(ctx, nil, 0, 1)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

// TestMaxDisjoint_BoundsGreedy checks that the finder never reports more
// paths than exist and that the bound is reached on symmetric graphs.
func TestMaxDisjoint_BoundsGreedy(t *testing.T) {
	ctx := context.Background()
	for seed := int64(1); seed <= 10; seed++ {
		g := builder.MustBuild([]builder.BuilderOption{
			builder.WithSeed(seed),
			builder.WithWeightFn(builder.IntUniformWeightFn(1, 2)),
		}, builder.RandomSparse(9, 0.5))

		for src := 0; src < g.NodeCount(); src++ {
			for dst := 0; dst < g.NodeCount(); dst++ {
				bound, err := distinct.MaxDisjoint(ctx, g, src, dst)
				require.NoError(t, err)
				paths, err := distinct.FindDistinctPaths(g, src, dst, distinct.WithMaxPaths(g.EdgeCount()+1))
				require.NoError(t, err)
				assert.LessOrEqual(t, len(paths), bound, "seed %d %d→%d", seed, src, dst)
				assert.Equal(t, bound == 0, len(paths) == 0, "seed %d %d→%d", seed, src, dst)
			}
		}
	}

	k, err := distinct.MaxDisjoint(ctx, builder.MustBuild(nil, builder.Cycle(8)), 0, 4)
	require.NoError(t, err)
	assert.Equal(t, 2, k)
}

func TestMaxDisjoint_SearchOptions(t *testing.T) {
	ctx := context.Background()
	g := squareWithDiagonal(t)
	blocked := core.NewEdgeSet(core.KeyOf(0, 1), core.KeyOf(0, 2))

	k, err := distinct.MaxDisjoint(ctx, g, 0, 3, dijkstra.WithExcluded(blocked))
	require.NoError(t, err)
	assert.Equal(t, 1, k, "only the diagonal is left")

	paths, err := distinct.FindDistinctPaths(g, 0, 3, distinct.WithExcludedEdges(blocked))
	require.NoError(t, err)
	require.Len(t, paths, k)
	assert.Equal(t, 5.0, paths[0].Cost)

	k, err = distinct.MaxDisjoint(ctx, g, 0, 3, dijkstra.WithInfEdgeThreshold(1))
	require.NoError(t, err)
	assert.Zero(t, k, "every edge is impassable")

	k, err = distinct.MaxDisjoint(ctx, g, 0, 3, dijkstra.WithMaxDistance(1.5))
	require.NoError(t, err)
	assert.Zero(t, k)

	k, err = distinct.MaxDisjoint(ctx, g, 0, 3, dijkstra.WithExcluded(core.NewEdgeSet(core.KeyOf(1, 3))))
	require.NoError(t, err)
	assert.Equal(t, 1, k, "0-2-3 is the only shortest path left")
}
