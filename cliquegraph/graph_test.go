// SPDX-License-Identifier: MIT
// Package cliquegraph_test verifies clique storage, separators and the
// structural checks.
package cliquegraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvjunction/cliquegraph"
	"github.com/katalvlaran/lvjunction/core"
)

func ids(xs ...int) []core.NodeID {
	out := make([]core.NodeID, len(xs))
	for i, x := range xs {
		out[i] = core.NodeID(x)
	}

	return out
}

// chain builds {0,1,2} - {1,2,3} - {2,3,4}.
func chain(t *testing.T) *cliquegraph.Graph {
	t.Helper()
	g := cliquegraph.New()
	g.AddClique(0, ids(2, 1, 0))
	g.AddClique(1, ids(1, 2, 3, 3))
	g.AddClique(2, ids(4, 3, 2))
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))

	return g
}

func TestGraph_Basics(t *testing.T) {
	g := chain(t)

	m, err := g.Clique(1)
	require.NoError(t, err)
	assert.Equal(t, ids(1, 2, 3), m)
	assert.Equal(t, 3, g.Size(1))
	assert.True(t, g.Contains(2, 4))
	assert.False(t, g.Contains(0, 4))

	_, err = g.Clique(9)
	assert.ErrorIs(t, err, cliquegraph.ErrCliqueNotFound)

	assert.Equal(t, []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}}, g.Edges())
	nb, err := g.Neighbors(1)
	require.NoError(t, err)
	assert.Equal(t, ids(0, 2), nb)

	sep, err := g.Separator(1, 0)
	require.NoError(t, err)
	assert.Equal(t, ids(1, 2), sep)
	_, err = g.Separator(0, 2)
	assert.ErrorIs(t, err, cliquegraph.ErrEdgeNotFound)

	assert.Equal(t, ids(0, 1, 2), g.ContainingCliques(2))
}

func TestGraph_EdgeErrors(t *testing.T) {
	g := chain(t)
	assert.ErrorIs(t, g.AddEdge(0, 7), cliquegraph.ErrCliqueNotFound)
	assert.ErrorIs(t, g.AddEdge(1, 1), core.ErrLoopNotAllowed)
	assert.ErrorIs(t, g.RemoveEdge(0, 2), cliquegraph.ErrEdgeNotFound)

	require.NoError(t, g.AddEdge(0, 1)) // duplicate is a no-op
	assert.Equal(t, 2, g.EdgeCount())
	require.NoError(t, g.RemoveEdge(1, 0))
	assert.Equal(t, 1, g.EdgeCount())
}

func TestGraph_RemoveCliqueAndClone(t *testing.T) {
	g := chain(t)
	c := g.Clone()

	g.RemoveClique(1)
	g.RemoveClique(1)
	assert.Equal(t, 2, g.CliqueCount())
	assert.Equal(t, 0, g.EdgeCount())

	assert.Equal(t, 3, c.CliqueCount())
	assert.Equal(t, 2, c.EdgeCount())
}

func TestGraph_Structure(t *testing.T) {
	g := chain(t)
	assert.True(t, g.IsForest())
	assert.True(t, g.IsTree())
	require.NoError(t, g.CheckRunningIntersection())

	// Dropping the middle clique splits nodes 2 and 3.
	g.RemoveClique(1)
	assert.True(t, g.IsForest())
	assert.False(t, g.IsTree())
	assert.ErrorIs(t, g.CheckRunningIntersection(), cliquegraph.ErrRunningIntersection)

	// A cycle is not a forest.
	h := chain(t)
	require.NoError(t, h.AddEdge(0, 2))
	assert.False(t, h.IsForest())
	assert.Equal(t, 3, h.ToGonum().Nodes().Len())
}
