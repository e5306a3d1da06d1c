// SPDX-License-Identifier: MIT
// Package schedule_test verifies operation estimates and error contracts.
package schedule_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvjunction/schedule"
)

func TestMultiDim_Validation(t *testing.T) {
	cases := map[string][]schedule.Variable{
		"empty name": {{Name: "", Size: 2}},
		"zero size":  {{Name: "a", Size: 0}},
		"repeated":   {{Name: "a", Size: 2}, {Name: "a", Size: 2}},
	}
	for name, vars := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := schedule.NewMultiDim[float64](vars...)
			assert.ErrorIs(t, err, schedule.ErrInvalidArgument)
		})
	}

	m, err := schedule.NewMultiDim[float64]()
	require.NoError(t, err)
	assert.True(t, m.IsAbstract())
	assert.Equal(t, schedule.PlaceholderID(-1), m.ID())
	size, err := m.DomainSize()
	require.NoError(t, err)
	assert.Equal(t, int64(1), size)
}

func TestMultiDim_Overflow(t *testing.T) {
	big := math.MaxInt32
	m, err := schedule.NewMultiDim[float64](
		schedule.Variable{Name: "a", Size: big},
		schedule.Variable{Name: "b", Size: big},
		schedule.Variable{Name: "c", Size: big},
	)
	require.NoError(t, err)
	_, err = m.DomainSize()
	assert.ErrorIs(t, err, schedule.ErrOverflow)

	n, err := schedule.NewMultiDim[float64](schedule.Variable{Name: "d", Size: 2})
	require.NoError(t, err)
	c, err := schedule.NewCombination(m, n, add)
	require.NoError(t, err)
	_, err = c.NbOperations()
	assert.ErrorIs(t, err, schedule.ErrOverflow)
	_, err = c.MemoryUsage()
	assert.ErrorIs(t, err, schedule.ErrOverflow)
}

func TestCombination_Cost(t *testing.T) {
	a, err := schedule.NewMultiDim[float64](x, z)
	require.NoError(t, err)
	b, err := schedule.NewMultiDim[float64](z, y)
	require.NoError(t, err)
	c, err := schedule.NewCombination(a, b, add)
	require.NoError(t, err)

	assert.Equal(t, []schedule.Variable{x, z, y}, c.Result().Variables())
	nb, err := c.NbOperations()
	require.NoError(t, err)
	assert.Equal(t, int64(10*4*10), nb)
	mem, err := c.MemoryUsage()
	require.NoError(t, err)
	assert.Equal(t, schedule.Memory{Peak: 400, Resident: 400}, mem)

	// no-dimension input
	s, err := schedule.NewMultiDim[float64]()
	require.NoError(t, err)
	c, err = schedule.NewCombination(a, s, add)
	require.NoError(t, err)
	nb, err = c.NbOperations()
	require.NoError(t, err)
	assert.Zero(t, nb)

	// conflicting sizes
	bad, err := schedule.NewMultiDim[float64](schedule.Variable{Name: "x", Size: 3})
	require.NoError(t, err)
	_, err = schedule.NewCombination(a, bad, add)
	assert.ErrorIs(t, err, schedule.ErrInvalidArgument)
	_, err = schedule.NewCombination(a, nil, add)
	assert.ErrorIs(t, err, schedule.ErrInvalidArgument)
}

func TestProjection(t *testing.T) {
	in, err := schedule.NewMaterialized(2.0, x, y)
	require.NoError(t, err)
	p, err := schedule.NewProjection(in, []string{"y"}, keep)
	require.NoError(t, err)
	assert.Equal(t, []schedule.Variable{x}, p.Result().Variables())
	assert.Equal(t, []schedule.Variable{y}, p.Removed())

	nb, err := p.NbOperations()
	require.NoError(t, err)
	assert.Equal(t, int64(100), nb)

	require.NoError(t, p.Execute())
	v, ok := p.Result().Value()
	require.True(t, ok)
	assert.Equal(t, 2.0, v)
	assert.ErrorIs(t, p.Execute(), schedule.ErrIllegalState)

	require.NoError(t, p.Undo())
	assert.True(t, p.Result().IsAbstract())
	assert.False(t, p.IsExecuted())

	_, err = schedule.NewProjection(in, []string{"w"}, keep)
	assert.ErrorIs(t, err, schedule.ErrInvalidArgument)
}

func TestDeletion(t *testing.T) {
	m, err := schedule.NewMaterialized(1.0, x, y)
	require.NoError(t, err)
	d, err := schedule.NewDeletion(m)
	require.NoError(t, err)

	mem, err := d.MemoryUsage()
	require.NoError(t, err)
	assert.Equal(t, schedule.Memory{Peak: -100, Resident: -100}, mem)
	nb, err := d.NbOperations()
	require.NoError(t, err)
	assert.Zero(t, nb)
	assert.Empty(t, d.Results())

	require.NoError(t, d.Undo()) // nothing to undo yet
	require.NoError(t, d.Execute())
	assert.True(t, m.IsDeleted())
	assert.True(t, m.IsAbstract())
	assert.ErrorIs(t, d.Undo(), schedule.ErrIllegalState)
}

func TestValueFunctionOutOfMemory(t *testing.T) {
	a, err := schedule.NewMaterialized(1.0, x)
	require.NoError(t, err)
	oom := func(float64, float64) (float64, error) { return 0, schedule.ErrOutOfMemory }
	c, err := schedule.NewCombination(a, a, oom)
	require.NoError(t, err)
	assert.ErrorIs(t, c.Execute(), schedule.ErrBudgetExceeded)

	boom := errors.New("boom")
	c, err = schedule.NewCombination(a, a, func(float64, float64) (float64, error) { return 0, boom })
	require.NoError(t, err)
	err = c.Execute()
	assert.ErrorIs(t, err, boom)
	assert.False(t, c.IsExecuted())
}

func TestRegistry(t *testing.T) {
	r := schedule.NewRegistry[float64]()
	require.NoError(t, r.RegisterCombine("sum", add))
	require.NoError(t, r.RegisterProject("keep", keep))
	assert.ErrorIs(t, r.RegisterCombine("sum", add), schedule.ErrInvalidArgument)
	assert.ErrorIs(t, r.RegisterProject("", keep), schedule.ErrInvalidArgument)

	a, err := schedule.NewMaterialized(1.0, x)
	require.NoError(t, err)
	b, err := schedule.NewMaterialized(2.0, y)
	require.NoError(t, err)
	c, err := schedule.NewCombinationByName(r, "sum", a, b)
	require.NoError(t, err)
	require.NoError(t, c.Execute())
	v, _ := c.Result().Value()
	assert.Equal(t, 3.0, v)

	_, err = schedule.NewCombinationByName(r, "product", a, b)
	assert.ErrorIs(t, err, schedule.ErrUnknownFunction)
	_, err = schedule.NewProjectionByName(r, "max", a, []string{"x"})
	assert.ErrorIs(t, err, schedule.ErrUnknownFunction)
	p, err := schedule.NewProjectionByName(r, "keep", a, []string{"x"})
	require.NoError(t, err)
	assert.Empty(t, p.Result().Variables())
}
