package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvjunction/core"
)

func mustGraph(t *testing.T, edges ...core.Edge) *core.Graph {
	t.Helper()
	g, err := core.NewGraphFromEdges(nil, edges)
	require.NoError(t, err)

	return g
}

func TestIsChordal(t *testing.T) {
	cases := []struct {
		name  string
		g     *core.Graph
		chord bool
	}{
		{"empty", core.NewGraph(), true},
		{"chain", mustGraph(t, core.Edge{U: 1, V: 2}, core.Edge{U: 2, V: 3}, core.Edge{U: 3, V: 4}), true},
		{"triangle", mustGraph(t, core.Edge{U: 1, V: 2}, core.Edge{U: 2, V: 3}, core.Edge{U: 1, V: 3}), true},
		{"square", mustGraph(t, core.Edge{U: 1, V: 2}, core.Edge{U: 2, V: 3}, core.Edge{U: 3, V: 4}, core.Edge{U: 4, V: 1}), false},
		{"square with diagonal", mustGraph(t,
			core.Edge{U: 1, V: 2}, core.Edge{U: 2, V: 3}, core.Edge{U: 3, V: 4}, core.Edge{U: 4, V: 1}, core.Edge{U: 1, V: 3}), true},
		{"pentagon", mustGraph(t,
			core.Edge{U: 1, V: 2}, core.Edge{U: 2, V: 3}, core.Edge{U: 3, V: 4}, core.Edge{U: 4, V: 5}, core.Edge{U: 5, V: 1}), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.chord, core.IsChordal(tc.g))
		})
	}
}

func TestMaximumCardinalityOrder_IsPermutation(t *testing.T) {
	g := mustGraph(t, core.Edge{U: 4, V: 2}, core.Edge{U: 2, V: 0}, core.Edge{U: 0, V: 4}, core.Edge{U: 7, V: 4})
	order := core.MaximumCardinalityOrder(g)
	assert.ElementsMatch(t, g.Nodes(), order)
	assert.Equal(t, core.NodeID(0), order[0], "ties start from the lowest id")
}
