package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvjunction/cliquegraph"
	"github.com/katalvlaran/lvjunction/core"
	"github.com/katalvlaran/lvjunction/schedule"
)

func TestCollect_TwoTrees(t *testing.T) {
	jt := cliquegraph.New()
	jt.AddClique(0, []core.NodeID{0, 1})
	jt.AddClique(1, []core.NodeID{1, 2})
	jt.AddClique(2, []core.NodeID{2, 3})
	jt.AddClique(7, []core.NodeID{7})
	require.NoError(t, jt.AddEdge(0, 1))
	require.NoError(t, jt.AddEdge(1, 2))
	domains := core.DomainSizes{0: 2, 1: 3, 2: 2, 3: 4, 7: 5}

	s, roots, err := collect(jt, domains)
	require.NoError(t, err)
	require.Len(t, roots, 2)
	mem, err := s.MemoryUsage()
	require.NoError(t, err)

	drained, err := schedule.Sequential[float64]{MaxMemory: s.Resident() + mem.Peak}.Execute(s)
	require.NoError(t, err)
	assert.True(t, drained)

	v, ok := roots[0].table.Value()
	require.True(t, ok)
	assert.Equal(t, 3.0, v)
	assert.Equal(t, core.NodeID(7), roots[1].clique)
	v, ok = roots[1].table.Value()
	require.True(t, ok)
	assert.Equal(t, 1.0, v)
}

func TestRun_Grid(t *testing.T) {
	for _, method := range []string{"merge", "spanning"} {
		for _, workers := range []int{1, 4} {
			err := run(config{graph: "grid", n: 3, seed: 1, minDomain: 2, maxDomain: 3, strategy: "heuristic", method: method, workers: workers})
			require.NoError(t, err, "%s with %d workers", method, workers)
		}
	}
	assert.Error(t, run(config{graph: "torus", n: 3}))
}
