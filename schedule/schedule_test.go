// SPDX-License-Identifier: MIT
package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvjunction/schedule"
)

// Two 10-slot placeholders combined into 10x10, projected back to x, then
// the combined table deleted.
func TestScenario_CombineProjectDelete(t *testing.T) {
	s := schedule.New[float64]()
	a := materialized(t, s, 1, x)
	b := materialized(t, s, 2, y)

	cid, ab := combine(t, s, a, b)
	pid, px := project(t, s, ab, "y")
	did := del(t, s, ab)

	op, err := s.Operation(cid)
	require.NoError(t, err)
	nb, err := op.NbOperations()
	require.NoError(t, err)
	assert.Equal(t, int64(100), nb)
	mem, err := op.MemoryUsage()
	require.NoError(t, err)
	assert.Equal(t, int64(100), mem.Peak)

	op, err = s.Operation(did)
	require.NoError(t, err)
	mem, err = op.MemoryUsage()
	require.NoError(t, err)
	assert.Equal(t, int64(-100), mem.Resident)

	assert.Equal(t, []schedule.OperationID{cid}, s.AvailableOperations())

	total, err := s.NbOperations()
	require.NoError(t, err)
	assert.Equal(t, int64(200), total)
	usage, err := s.MemoryUsage()
	require.NoError(t, err)
	assert.Equal(t, schedule.Memory{Peak: 200, Resident: 100}, usage)

	first, err := s.NbOperationsFirst(1)
	require.NoError(t, err)
	assert.Equal(t, int64(100), first)
	firstMem, err := s.MemoryUsageFirst(1)
	require.NoError(t, err)
	assert.Equal(t, schedule.Memory{Peak: 100, Resident: 100}, firstMem)

	// the deletion waits for the projection, its other reader
	require.NoError(t, s.Execute(cid))
	assert.Equal(t, []schedule.OperationID{pid}, s.AvailableOperations())
	assert.ErrorIs(t, s.Execute(did), schedule.ErrIllegalState)
	require.NoError(t, s.Execute(pid))
	require.NoError(t, s.Execute(did))

	assert.True(t, s.IsDrained())
	assert.Empty(t, s.Pending())
	assert.True(t, ab.IsDeleted())
	v, ok := px.Value()
	require.True(t, ok)
	assert.Equal(t, 3.0, v)
	// a and b, plus the projection's output and the freed joint table
	assert.Equal(t, int64(120), s.Resident())

	// estimates of a drained schedule are empty
	total, err = s.NbOperations()
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestInsertOperation_Errors(t *testing.T) {
	s := schedule.New[float64]()
	a := materialized(t, s, 1, x)

	foreign, err := schedule.NewMaterialized(1.0, y)
	require.NoError(t, err)
	c, err := schedule.NewCombination(a, foreign, add)
	require.NoError(t, err)
	_, err = s.InsertOperation(c)
	assert.ErrorIs(t, err, schedule.ErrUnknownPlaceholder)

	_, err = s.InsertPlaceholder(a)
	assert.ErrorIs(t, err, schedule.ErrIllegalState)
	_, err = s.InsertOperation(nil)
	assert.ErrorIs(t, err, schedule.ErrInvalidArgument)

	del(t, s, a)
	p, err := schedule.NewProjection(a, []string{"x"}, keep)
	require.NoError(t, err)
	_, err = s.InsertOperation(p)
	assert.ErrorIs(t, err, schedule.ErrIllegalState)

	d, err := schedule.NewDeletion(a)
	require.NoError(t, err)
	_, err = s.InsertOperation(d)
	assert.ErrorIs(t, err, schedule.ErrIllegalState)

	_, err = s.Operation(99)
	assert.ErrorIs(t, err, schedule.ErrUnknownOperation)
	assert.ErrorIs(t, s.Execute(99), schedule.ErrUnknownOperation)
}

func TestMaterialize_External(t *testing.T) {
	s := schedule.New[float64]()
	ext, err := schedule.NewMultiDim[float64](x)
	require.NoError(t, err)
	id, err := s.InsertPlaceholder(ext)
	require.NoError(t, err)
	b := materialized(t, s, 5, y)
	cid, out := combine(t, s, ext, b)

	assert.Empty(t, s.AvailableOperations())
	nb, err := s.NbOperations()
	require.NoError(t, err)
	assert.Zero(t, nb)
	assert.Equal(t, int64(10), s.Resident())

	require.NoError(t, s.Materialize(id, 1))
	assert.Equal(t, int64(20), s.Resident())
	assert.Equal(t, []schedule.OperationID{cid}, s.AvailableOperations())
	assert.ErrorIs(t, s.Materialize(out.ID(), 0), schedule.ErrIllegalState)
	assert.ErrorIs(t, s.Materialize(42, 0), schedule.ErrUnknownPlaceholder)
}

func TestUpdateArguments(t *testing.T) {
	s := schedule.New[float64]()
	a := materialized(t, s, 1, x)
	a2 := materialized(t, s, 10, x)
	b := materialized(t, s, 2, y)
	cid, out := combine(t, s, a, b)
	dA := del(t, s, a)

	// the deletion of a waits for the combination
	assert.False(t, s.IsAvailable(dA))

	require.NoError(t, s.UpdateArguments(cid, []*schedule.MultiDim[float64]{a2, b}))
	// a has no reader left
	assert.True(t, s.IsAvailable(dA))

	bad := materialized(t, s, 0, z)
	assert.ErrorIs(t, s.UpdateArguments(cid, []*schedule.MultiDim[float64]{bad, b}), schedule.ErrInvalidArgument)
	assert.ErrorIs(t, s.UpdateArguments(cid, []*schedule.MultiDim[float64]{a2}), schedule.ErrInvalidArgument)
	assert.ErrorIs(t, s.UpdateArguments(cid, []*schedule.MultiDim[float64]{a, b}), schedule.ErrIllegalState)
	assert.ErrorIs(t, s.UpdateArguments(77, nil), schedule.ErrUnknownOperation)

	require.NoError(t, s.Execute(cid))
	v, _ := out.Value()
	assert.Equal(t, 12.0, v)
	assert.ErrorIs(t, s.UpdateArguments(cid, []*schedule.MultiDim[float64]{a2, b}), schedule.ErrIllegalState)
}

func TestUpdateArguments_RejectsCycle(t *testing.T) {
	s := schedule.New[float64]()
	a := materialized(t, s, 1, x)
	pid, px := project(t, s, a)
	_, _ = project(t, s, px)
	// feeding the projection its own output would loop
	assert.ErrorIs(t, s.UpdateArguments(pid, []*schedule.MultiDim[float64]{px}), schedule.ErrInvalidArgument)
}

func TestUndo_ThroughSchedule(t *testing.T) {
	s := schedule.New[float64]()
	a := materialized(t, s, 1, x)
	b := materialized(t, s, 2, y)
	cid, ab := combine(t, s, a, b)
	pid, _ := project(t, s, ab, "y")
	did := del(t, s, ab)

	require.NoError(t, s.Execute(cid))
	op, err := s.Operation(cid)
	require.NoError(t, err)
	// the returned operation cannot change state behind the schedule
	assert.ErrorIs(t, op.Undo(), schedule.ErrIllegalState)
	assert.ErrorIs(t, op.Execute(), schedule.ErrIllegalState)
	assert.False(t, ab.IsAbstract())
	assert.True(t, op.IsExecuted())

	require.NoError(t, s.Undo(cid))
	assert.True(t, ab.IsAbstract())
	assert.False(t, s.IsDrained())
	assert.Equal(t, []schedule.OperationID{cid, pid, did}, s.Pending())
	assert.Equal(t, []schedule.OperationID{cid}, s.AvailableOperations())
	assert.Equal(t, int64(20), s.Resident())
	assert.ErrorIs(t, s.Undo(cid), schedule.ErrIllegalState)
	assert.ErrorIs(t, s.Undo(99), schedule.ErrUnknownOperation)

	require.NoError(t, s.Execute(cid))
	require.NoError(t, s.Execute(pid))
	// the projection already read the combination
	assert.ErrorIs(t, s.Undo(cid), schedule.ErrIllegalState)
	require.NoError(t, s.Execute(did))
	assert.ErrorIs(t, s.Undo(did), schedule.ErrIllegalState)
	assert.True(t, s.IsDrained())
	assert.Equal(t, int64(120), s.Resident())
}
