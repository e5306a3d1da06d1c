// SPDX-License-Identifier: MIT
// File: estimate.go
// Role: cost and memory estimates replaying availability without executing.

package schedule

import (
	"github.com/emirpasic/gods/sets/treeset"
)

// replay visits, in the order Sequential would run them, up to limit
// pending operations (all when limit < 0), without executing anything.
// Operations blocked on an abstract external placeholder are never visited.
func (s *Schedule[T]) replay(limit int, visit func(Operation[T]) error) error {
	pending := make(map[OperationID]int, len(s.ops))
	for id, n := range s.ops {
		pending[id] = n.pending
	}
	avail := treeset.NewWith(byOperationID, s.available.Values()...)
	ready := func(op Operation[T]) bool {
		for _, a := range op.Args() {
			if _, produced := s.producer[a.id]; !produced && a.IsAbstract() {
				return false
			}
		}
		return true
	}

	for count := 0; !avail.Empty() && (limit < 0 || count < limit); count++ {
		id := avail.Values()[0].(OperationID)
		avail.Remove(id)
		n := s.ops[id]
		if err := visit(n.op); err != nil {
			return err
		}
		for c := range n.children {
			pending[c]--
			if child := s.ops[c]; pending[c] == 0 && !child.op.IsExecuted() && ready(child.op) {
				avail.Add(c)
			}
		}
	}

	return nil
}

func (s *Schedule[T]) nbOperations(limit int) (int64, error) {
	var total int64
	err := s.replay(limit, func(op Operation[T]) error {
		nb, err := op.NbOperations()
		if err != nil {
			return err
		}
		total, err = addChecked(total, nb)
		return err
	})
	if err != nil {
		return 0, err
	}

	return total, nil
}

func (s *Schedule[T]) memoryUsage(limit int) (Memory, error) {
	var cur, peak int64
	err := s.replay(limit, func(op Operation[T]) error {
		mem, err := op.MemoryUsage()
		if err != nil {
			return err
		}
		high, err := addChecked(cur, mem.Peak)
		if err != nil {
			return err
		}
		if high > peak {
			peak = high
		}
		cur, err = addChecked(cur, mem.Resident)
		return err
	})
	if err != nil {
		return Memory{}, err
	}

	return Memory{Peak: peak, Resident: cur}, nil
}

// NbOperations estimates the elementary operations of every pending
// operation that can eventually run.
//
// Errors:
//   - ErrOverflow.
func (s *Schedule[T]) NbOperations() (int64, error) { return s.nbOperations(-1) }

// NbOperationsFirst is NbOperations restricted to the next k operations.
func (s *Schedule[T]) NbOperationsFirst(k int) (int64, error) {
	if k < 0 {
		k = 0
	}

	return s.nbOperations(k)
}

// MemoryUsage estimates, relative to the current resident memory, the
// highest usage reached while running every pending operation and the
// usage left at the end.
//
// Errors:
//   - ErrOverflow.
func (s *Schedule[T]) MemoryUsage() (Memory, error) { return s.memoryUsage(-1) }

// MemoryUsageFirst is MemoryUsage restricted to the next k operations.
func (s *Schedule[T]) MemoryUsageFirst(k int) (Memory, error) {
	if k < 0 {
		k = 0
	}

	return s.memoryUsage(k)
}
