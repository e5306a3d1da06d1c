// SPDX-License-Identifier: MIT
// Package simplicial_test verifies classification and the elimination
// protocol of simplicial.Analyzer.
package simplicial_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvjunction/builder"
	"github.com/katalvlaran/lvjunction/core"
	"github.com/katalvlaran/lvjunction/simplicial"
)

func uniform(g *core.Graph, size int) map[core.NodeID]float64 {
	return builder.UniformDomains(g, size).LogWeights()
}

func mustGraph(t *testing.T, edges ...[2]int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range edges {
		require.NoError(t, g.AddEdge(core.NodeID(e[0]), core.NodeID(e[1])))
	}

	return g
}

func TestNew_MissingWeight(t *testing.T) {
	g := mustGraph(t, [2]int{0, 1})
	_, err := simplicial.New(g, map[core.NodeID]float64{0: 1})
	assert.ErrorIs(t, err, core.ErrDomainMismatch)
}

func TestClassify_Path(t *testing.T) {
	// 0-1-2: ends are simplicial, the middle misses one pair.
	g := mustGraph(t, [2]int{0, 1}, [2]int{1, 2})
	a, err := simplicial.New(g, uniform(g, 2))
	require.NoError(t, err)

	info, err := a.Classify(0)
	require.NoError(t, err)
	assert.Equal(t, simplicial.Simplicial, info.Class)
	assert.InDelta(t, 2*math.Log(2), info.CliqueWeight, 1e-12)

	info, err = a.Classify(1)
	require.NoError(t, err)
	assert.Equal(t, 1, info.MissingEdges)
	assert.NotEqual(t, simplicial.Simplicial, info.Class)

	best, err := a.BestSimplicialNode()
	require.NoError(t, err)
	assert.Equal(t, core.NodeID(0), best)

	_, err = a.Classify(9)
	assert.ErrorIs(t, err, simplicial.ErrNodeNotFound)
}

func TestClassify_AlmostSimplicialNeedsWeightBound(t *testing.T) {
	// Square 0-1-2-3-0: each node has two non-adjacent neighbours. Removing
	// either leaves a single node, so every node has the almost shape, but
	// its clique weight 3·log2 exceeds the initial tree width log2.
	g, err := builder.BuildGraph(nil, builder.Cycle(4))
	require.NoError(t, err)
	a, err := simplicial.New(g, uniform(g, 2))
	require.NoError(t, err)
	assert.False(t, a.HasSimplicialNode())
	assert.False(t, a.HasAlmostSimplicialNode())

	// A generous threshold admits them.
	b, err := simplicial.New(g.Clone(), uniform(g, 2), simplicial.WithLogThreshold(10))
	require.NoError(t, err)
	require.True(t, b.HasAlmostSimplicialNode())
	best, err := b.BestAlmostSimplicialNode()
	require.NoError(t, err)
	assert.Equal(t, core.NodeID(0), best)
}

func TestBest_EmptyClass(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Cycle(5))
	require.NoError(t, err)
	a, err := simplicial.New(g, uniform(g, 3))
	require.NoError(t, err)

	_, err = a.BestSimplicialNode()
	assert.ErrorIs(t, err, simplicial.ErrEmptyClass)
	_, err = a.BestQuasiSimplicialNode()
	assert.ErrorIs(t, err, simplicial.ErrEmptyClass)

	n, err := a.BestNode()
	require.NoError(t, err)
	assert.Equal(t, core.NodeID(0), n)
}

func TestMakeEraseClique(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Cycle(4))
	require.NoError(t, err)
	a, err := simplicial.New(g, uniform(g, 2), simplicial.WithFillInTracking())
	require.NoError(t, err)

	assert.ErrorIs(t, a.EraseClique(0), simplicial.ErrNotClique)

	added, err := a.MakeClique(0)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{core.NewEdge(1, 3)}, added)
	assert.True(t, g.HasEdge(1, 3))
	assert.Equal(t, added, a.FillIns())
	assert.InDelta(t, 3*math.Log(2), a.LogTreeWidth(), 1e-12)

	info, err := a.Classify(0)
	require.NoError(t, err)
	assert.Equal(t, simplicial.Simplicial, info.Class)

	require.NoError(t, a.EraseClique(0))
	assert.False(t, g.HasNode(0))

	// Remaining triangle 1-2-3 is all simplicial.
	for _, n := range []core.NodeID{1, 2, 3} {
		info, err = a.Classify(n)
		require.NoError(t, err)
		assert.Equal(t, simplicial.Simplicial, info.Class, "node %d", n)
	}
	_, err = a.MakeClique(0)
	assert.ErrorIs(t, err, simplicial.ErrNodeNotFound)
}

func TestMakeClique_PromotesExpensiveNodes(t *testing.T) {
	// Two squares sharing nothing; after filling the first the tree width
	// covers the second square's almost simplicial nodes.
	g := mustGraph(t,
		[2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 0},
		[2]int{10, 11}, [2]int{11, 12}, [2]int{12, 13}, [2]int{13, 10},
	)
	a, err := simplicial.New(g, uniform(g, 2))
	require.NoError(t, err)
	require.False(t, a.HasAlmostSimplicialNode())

	_, err = a.MakeClique(0)
	require.NoError(t, err)
	require.True(t, a.HasAlmostSimplicialNode())
	n, err := a.BestAlmostSimplicialNode()
	require.NoError(t, err)
	assert.Equal(t, core.NodeID(10), n)
}

func TestBestIn_Filter(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(4))
	require.NoError(t, err)
	a, err := simplicial.New(g, uniform(g, 2))
	require.NoError(t, err)

	n, ok := a.BestIn(simplicial.Simplicial, func(id core.NodeID) bool { return id != 0 })
	require.True(t, ok)
	assert.Equal(t, core.NodeID(3), n)

	_, ok = a.BestIn(simplicial.Simplicial, func(id core.NodeID) bool { return id == 1 })
	assert.False(t, ok)
}

func TestClone_IsIndependent(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Cycle(4))
	require.NoError(t, err)
	w := uniform(g, 2)
	a, err := simplicial.New(g, w)
	require.NoError(t, err)

	g2 := g.Clone()
	b := a.Clone(g2, w)
	_, err = b.MakeClique(0)
	require.NoError(t, err)
	assert.False(t, g.HasEdge(1, 3))
	assert.True(t, g2.HasEdge(1, 3))
	assert.Greater(t, b.LogTreeWidth(), a.LogTreeWidth())
}

func TestQuasiSimplicial(t *testing.T) {
	// Node 0 sees 1..5; all neighbour pairs are adjacent except 1-2 and 3-4,
	// so no single neighbour covers the missing pairs, 8/10 are present.
	g := core.NewGraph()
	for i := 1; i <= 5; i++ {
		require.NoError(t, g.AddEdge(0, core.NodeID(i)))
		for j := i + 1; j <= 5; j++ {
			if (i == 1 && j == 2) || (i == 3 && j == 4) {
				continue
			}
			require.NoError(t, g.AddEdge(core.NodeID(i), core.NodeID(j)))
		}
	}
	a, err := simplicial.New(g, uniform(g, 2),
		simplicial.WithQuasiRatio(0.8), simplicial.WithLogThreshold(100))
	require.NoError(t, err)
	info, err := a.Classify(0)
	require.NoError(t, err)
	assert.Equal(t, simplicial.QuasiSimplicial, info.Class)
	assert.Equal(t, 2, info.MissingEdges)

	assert.Panics(t, func() { simplicial.WithQuasiRatio(0) })
	assert.Panics(t, func() { simplicial.WithLogThreshold(-1) })
}

// Eliminating a node classified simplicial never adds an edge.
func TestSimplicialElimination_AddsNoFillIn(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(30, 0.15))
		require.NoError(t, err)
		ds, err := builder.RandomDomains(g, 2, 4, builder.WithSeed(seed))
		require.NoError(t, err)
		a, err := simplicial.New(g, ds.LogWeights())
		require.NoError(t, err)

		for !g.Empty() {
			n, err := a.BestNode()
			require.NoError(t, err)
			if a.HasSimplicialNode() {
				n, err = a.BestSimplicialNode()
				require.NoError(t, err)
			}
			info, err := a.Classify(n)
			require.NoError(t, err)
			added, err := a.MakeClique(n)
			require.NoError(t, err)
			assert.Len(t, added, info.MissingEdges)
			if info.Class == simplicial.Simplicial {
				assert.Empty(t, added, "seed %d node %d", seed, n)
			}
			require.NoError(t, a.EraseClique(n))
		}
	}
}
