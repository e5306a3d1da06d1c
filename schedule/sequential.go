// SPDX-License-Identifier: MIT
// File: sequential.go
// Role: the one-at-a-time scheduler with operation and memory budgets.

package schedule

import (
	"github.com/plan-systems/klog"
	pkgerrors "github.com/pkg/errors"
)

// Sequential runs available operations one at a time, lowest id first.
// A zero MaxOperations or MaxMemory means no limit.
type Sequential[T any] struct {
	// MaxOperations caps the elementary operations of one Execute call.
	// Reaching it stops the run without error.
	MaxOperations int64
	// MaxMemory caps resident plus peak memory, in value slots. Resident
	// includes the external placeholders already materialized.
	MaxMemory int64
}

// Execute runs s until nothing is available or the operation budget is
// spent, and reports whether s is drained.
//
// Errors:
//   - ErrBudgetExceeded: the next operation would breach MaxMemory; s is
//     left as it was before that operation.
//   - errors from the operations.
func (q Sequential[T]) Execute(s *Schedule[T]) (bool, error) {
	var spent int64
	for {
		ids := s.AvailableOperations()
		if len(ids) == 0 {
			break
		}
		id := ids[0]
		op := s.ops[id].op
		if q.MaxOperations > 0 {
			nb, err := op.NbOperations()
			if err != nil {
				return false, err
			}
			if spent+nb > q.MaxOperations {
				klog.V(2).Infof("schedule: operation budget %d reached, %d pending", q.MaxOperations, len(s.Pending()))
				return false, nil
			}
			spent += nb
		}
		if err := checkMemory(s, op, q.MaxMemory, 0); err != nil {
			return false, err
		}
		if err := s.Execute(id); err != nil {
			return false, err
		}
	}
	drained := s.IsDrained()
	klog.V(2).Infof("schedule: sequential run stopped, drained=%t resident=%d", drained, s.Resident())

	return drained, nil
}

// checkMemory refuses op when resident, extra and its peak exceed limit.
// An operation that allocates nothing is always admitted.
func checkMemory[T any](s *Schedule[T], op Operation[T], limit, extra int64) error {
	if limit <= 0 {
		return nil
	}
	mem, err := op.MemoryUsage()
	if err != nil || mem.Peak <= 0 {
		return err
	}
	need, err := addChecked(s.Resident(), extra)
	if err == nil {
		need, err = addChecked(need, mem.Peak)
	}
	if err != nil {
		return err
	}
	if need > limit {
		klog.Warningf("schedule: %s needs %d slots over a ceiling of %d", op.Kind(), need, limit)
		return pkgerrors.Wrapf(ErrBudgetExceeded, "%s needs %d, ceiling %d", op.Kind(), need, limit)
	}

	return nil
}
