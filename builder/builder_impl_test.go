// File: builder_impl_test.go
// Package builder_test verifies topology, counts and error contracts of
// every Constructor.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvjunction/builder"
	"github.com/katalvlaran/lvjunction/core"
)

func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ctor    builder.Constructor
		wantV   int
		wantE   int
		chordal bool
	}{
		{"Path(5)", builder.Path(5), 5, 4, true},
		{"Star(6)", builder.Star(6), 6, 5, true},
		{"Cycle(5)", builder.Cycle(5), 5, 5, false},
		{"Cycle(3)", builder.Cycle(3), 3, 3, true},
		{"Wheel(6)", builder.Wheel(6), 6, 10, false},
		{"Wheel(4)", builder.Wheel(4), 4, 6, true},
		{"Complete(5)", builder.Complete(5), 5, 10, true},
		{"Grid(3,4)", builder.Grid(3, 4), 12, 17, false},
		{"Grid(1,4)", builder.Grid(1, 4), 4, 3, true},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.NodeCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			assert.Equal(t, tc.chordal, core.IsChordal(g))
		})
	}
}

func TestBuilders_Errors(t *testing.T) {
	cases := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Path(1)", builder.Path(1), builder.ErrTooFewNodes},
		{"Star(1)", builder.Star(1), builder.ErrTooFewNodes},
		{"Cycle(2)", builder.Cycle(2), builder.ErrTooFewNodes},
		{"Wheel(3)", builder.Wheel(3), builder.ErrTooFewNodes},
		{"Complete(0)", builder.Complete(0), builder.ErrTooFewNodes},
		{"Grid(1,1)", builder.Grid(1, 1), builder.ErrTooFewNodes},
		{"RandomSparse(p=1.5)", builder.RandomSparse(4, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse(no rng)", builder.RandomSparse(4, 0.5), builder.ErrNeedRandSource},
		{"nil constructor", nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, tc.ctor)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRandomSparse_Deterministic(t *testing.T) {
	a, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(11)}, builder.RandomSparse(20, 0.3))
	require.NoError(t, err)
	b, err := builder.BuildGraph([]builder.BuilderOption{builder.WithRand(rand.New(rand.NewSource(11)))}, builder.RandomSparse(20, 0.3))
	require.NoError(t, err)
	assert.Equal(t, a.Edges(), b.Edges())

	full, err := builder.BuildGraph(nil, builder.RandomSparse(5, 1))
	require.NoError(t, err)
	assert.Equal(t, 10, full.EdgeCount())

	none, err := builder.BuildGraph(nil, builder.RandomSparse(5, 0))
	require.NoError(t, err)
	assert.Equal(t, 0, none.EdgeCount())
}

func TestIDOffset_DisjointComponents(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, builder.Apply(g, nil, builder.Path(3)))
	require.NoError(t, builder.Apply(g, []builder.BuilderOption{builder.WithIDOffset(10)}, builder.Cycle(3)))

	assert.Equal(t, []core.NodeID{0, 1, 2, 10, 11, 12}, g.Nodes())
	assert.True(t, g.HasEdge(10, 12))
	assert.False(t, g.HasEdge(2, 10))
	assert.Panics(t, func() { builder.WithIDOffset(-1) })
	assert.Panics(t, func() { builder.WithRand(nil) })
}

func TestDomains(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(4))
	require.NoError(t, err)

	ds := builder.UniformDomains(g, 3)
	require.NoError(t, ds.Validate(g))
	assert.Equal(t, 3, ds[2])

	rd, err := builder.RandomDomains(g, 2, 5, builder.WithSeed(3))
	require.NoError(t, err)
	require.NoError(t, rd.Validate(g))
	for _, size := range rd {
		assert.GreaterOrEqual(t, size, 2)
		assert.LessOrEqual(t, size, 5)
	}

	_, err = builder.RandomDomains(g, 2, 5)
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
	_, err = builder.RandomDomains(g, 0, 5)
	assert.ErrorIs(t, err, builder.ErrTooFewNodes)
}
