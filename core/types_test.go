package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eqpaths/core"
)

func TestNewEdge_Validation(t *testing.T) {
	cases := []struct {
		name   string
		weight float64
		want   error
	}{
		{"zero", 0, nil},
		{"positive", 2.5, nil},
		{"negative", -0.1, core.ErrNegativeWeight},
		{"nan", math.NaN(), core.ErrBadWeight},
		{"inf", math.Inf(1), core.ErrBadWeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e, err := core.NewEdge(1, 2, tc.weight)
			if tc.want != nil {
				assert.ErrorIs(t, err, tc.want)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.weight, e.Weight)
		})
	}
}

func TestMustEdge_PanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() { core.MustEdge(0, 1, -1) })
	assert.NotPanics(t, func() { core.MustEdge(0, 1, 1) })
}

func TestEdgeKey_Canonical(t *testing.T) {
	assert.Equal(t, core.KeyOf(1, 3), core.KeyOf(3, 1))
	assert.Equal(t, "1-3", core.KeyOf(3, 1).String())
	assert.Equal(t, core.KeyOf(2, 0), core.MustEdge(2, 0, 1).Key())
	assert.Equal(t, core.MustEdge(0, 2, 1).Key(), core.MustEdge(0, 2, 1).Reverse().Key())
}

func TestParseEdgeKey(t *testing.T) {
	k, err := core.ParseEdgeKey("5-2")
	require.NoError(t, err)
	assert.Equal(t, core.EdgeKey{Lo: 2, Hi: 5}, k)

	k, err = core.ParseEdgeKey(" 0 - 7 ")
	require.NoError(t, err)
	assert.Equal(t, core.EdgeKey{Lo: 0, Hi: 7}, k)

	for _, bad := range []string{"", "3", "a-b", "1-", "-1-2", "1-2-3"} {
		_, err := core.ParseEdgeKey(bad)
		assert.ErrorIs(t, err, core.ErrBadEdgeKey, "input %q", bad)
	}
}

func TestEdgeSet(t *testing.T) {
	var empty core.EdgeSet
	assert.False(t, empty.Has(core.KeyOf(0, 1)), "nil set is readable")

	a := core.NewEdgeSet(core.KeyOf(0, 1), core.KeyOf(1, 3))
	b := core.NewEdgeSet(core.KeyOf(2, 3))
	assert.False(t, a.Intersects(b))

	b.Add(core.KeyOf(3, 1))
	assert.True(t, a.Intersects(b))

	c := a.Clone()
	c.Merge(b)
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, 2, a.Len(), "clone must be independent")
	assert.Equal(t, []core.EdgeKey{{Lo: 0, Hi: 1}, {Lo: 1, Hi: 3}, {Lo: 2, Hi: 3}}, c.Keys())
}
