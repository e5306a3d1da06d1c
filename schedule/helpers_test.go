// SPDX-License-Identifier: MIT
package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvjunction/schedule"
)

// Values in tests are plain sums, enough to check what ran.
func add(a, b float64) (float64, error) { return a + b, nil }

func keep(t float64, _ []schedule.Variable) (float64, error) { return t, nil }

func materialized(t *testing.T, s *schedule.Schedule[float64], v float64, vars ...schedule.Variable) *schedule.MultiDim[float64] {
	t.Helper()
	m, err := schedule.NewMaterialized(v, vars...)
	require.NoError(t, err)
	_, err = s.InsertPlaceholder(m)
	require.NoError(t, err)

	return m
}

func combine(t *testing.T, s *schedule.Schedule[float64], a, b *schedule.MultiDim[float64]) (schedule.OperationID, *schedule.MultiDim[float64]) {
	t.Helper()
	c, err := schedule.NewCombination(a, b, add)
	require.NoError(t, err)
	id, err := s.InsertOperation(c)
	require.NoError(t, err)

	return id, c.Result()
}

func project(t *testing.T, s *schedule.Schedule[float64], in *schedule.MultiDim[float64], removed ...string) (schedule.OperationID, *schedule.MultiDim[float64]) {
	t.Helper()
	p, err := schedule.NewProjection(in, removed, keep)
	require.NoError(t, err)
	id, err := s.InsertOperation(p)
	require.NoError(t, err)

	return id, p.Result()
}

func del(t *testing.T, s *schedule.Schedule[float64], m *schedule.MultiDim[float64]) schedule.OperationID {
	t.Helper()
	d, err := schedule.NewDeletion(m)
	require.NoError(t, err)
	id, err := s.InsertOperation(d)
	require.NoError(t, err)

	return id
}

var (
	x = schedule.Variable{Name: "x", Size: 10}
	y = schedule.Variable{Name: "y", Size: 10}
	z = schedule.Variable{Name: "z", Size: 4}
)
