package batch_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eqpaths/batch"
	"github.com/katalvlaran/eqpaths/builder"
	"github.com/katalvlaran/eqpaths/core"
	"github.com/katalvlaran/eqpaths/distinct"
	"github.com/katalvlaran/eqpaths/report"
)

// collector records every emitted result.
type collector struct {
	results []report.Result
	failAt  int // fail on this 1-based call; 0 never fails
}

func (c *collector) Emit(r report.Result) error {
	if c.failAt > 0 && len(c.results)+1 == c.failAt {
		return errors.New("sink closed")
	}
	c.results = append(c.results, r)
	return nil
}

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

func TestRun_OrderAndCounts(t *testing.T) {
	g := squareWithDiagonal(t)
	var c collector
	stats, err := batch.Run(context.Background(), g, &c, batch.WithWorkers(3))
	require.NoError(t, err)

	require.Len(t, c.results, 12)
	i := 0
	for s := 0; s < 4; s++ {
		for d := 0; d < 4; d++ {
			if s == d {
				continue
			}
			assert.Equal(t, s, c.results[i].Source)
			assert.Equal(t, d, c.results[i].Destination)
			i++
		}
	}
	assert.Equal(t, 12, stats.Pairs)
	assert.Equal(t, 12, stats.Found)
	assert.Positive(t, stats.Elapsed)

	// 0→3 is the square scenario.
	assert.Len(t, c.results[2].Paths, 2)
}

func TestRun_DeterministicAcrossWorkerCounts(t *testing.T) {
	g := builder.MustBuild([]builder.BuilderOption{
		builder.WithSeed(11),
		builder.WithWeightFn(builder.IntUniformWeightFn(1, 2)),
	}, builder.RandomSparse(12, 0.3))

	run := func(workers int) string {
		var buf bytes.Buffer
		_, err := batch.Run(context.Background(), g, report.NewJSON(&buf), batch.WithWorkers(workers))
		require.NoError(t, err)
		return buf.String()
	}
	want := run(1)
	assert.Equal(t, 12*11, strings.Count(want, "\n"))
	for _, w := range []int{2, 4, 16} {
		assert.Equal(t, want, run(w), "workers=%d", w)
	}
}

func TestRun_DisconnectedAndFinderOptions(t *testing.T) {
	b := core.NewBuilder(3)
	require.NoError(t, b.AddEdge(0, 1, 1))
	g, err := b.Build()
	require.NoError(t, err)

	var c collector
	stats, err := batch.Run(context.Background(), g, &c,
		batch.WithFinderOptions(distinct.WithMaxPaths(1)))
	require.NoError(t, err)
	assert.Equal(t, 6, stats.Pairs)
	assert.Equal(t, 2, stats.Found)
	assert.Equal(t, 2, stats.Paths)
	assert.Empty(t, c.results[1].Paths, "0→2 is unreachable")
}

func TestRun_EmitterError(t *testing.T) {
	c := collector{failAt: 4}
	_, err := batch.Run(context.Background(), squareWithDiagonal(t), &c, batch.WithWorkers(2))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sink closed")
	assert.Len(t, c.results, 3)
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var c collector
	_, err := batch.Run(ctx, squareWithDiagonal(t), &c)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_Validation(t *testing.T) {
	_, err := batch.Run(context.Background(), nil, &collector{})
	assert.ErrorIs(t, err, batch.ErrNilGraph)
	_, err = batch.Run(context.Background(), squareWithDiagonal(t), nil)
	assert.ErrorIs(t, err, batch.ErrNilEmitter)
	assert.Panics(t, func() { batch.WithWorkers(0) })
}

func TestRun_Logs(t *testing.T) {
	var logs bytes.Buffer
	logger := log.NewWithOptions(&logs, log.Options{Level: log.DebugLevel})

	_, err := batch.Run(context.Background(), squareWithDiagonal(t), &collector{},
		batch.WithLogger(logger), batch.WithWorkers(1))
	require.NoError(t, err)
	out := logs.String()
	assert.Contains(t, out, "batch started")
	assert.Contains(t, out, "source done")
	assert.Contains(t, out, "batch finished")
}
