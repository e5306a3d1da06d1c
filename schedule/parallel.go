// SPDX-License-Identifier: MIT
// File: parallel.go
// Role: the batch scheduler running value functions concurrently.

package schedule

import (
	"math"
	"runtime"

	"github.com/plan-systems/klog"
	pkgerrors "github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Parallel runs each batch of available operations concurrently, then
// commits them in id order. Workers <= 0 means runtime.NumCPU(); a zero
// MaxMemory means no limit.
//
// A batch replays the order Sequential would follow: it is the longest
// prefix of the available operations, by id, that stops before an id above
// a child of an earlier member, before a deletion unless the deletion comes
// first and alone, and before the first operation whose peak no longer fits
// under MaxMemory next to the earlier members. Both schedulers therefore
// execute the same operations and stop at the same error.
type Parallel[T any] struct {
	Workers   int
	MaxMemory int64
}

// Execute drains s batch by batch and reports whether s is drained.
//
// Errors:
//   - ErrBudgetExceeded: the first available operation does not fit.
//   - the error of the lowest failing operation of a batch; the members
//     before it are committed and the members after it are undone.
func (q Parallel[T]) Execute(s *Schedule[T]) (bool, error) {
	workers := q.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	for {
		batch, err := q.nextBatch(s)
		if err != nil {
			return false, err
		}
		if len(batch) == 0 {
			break
		}
		if err = runBatch(s, batch, workers); err != nil {
			return false, err
		}
	}
	drained := s.IsDrained()
	klog.V(2).Infof("schedule: parallel run stopped, drained=%t resident=%d", drained, s.Resident())

	return drained, nil
}

func (q Parallel[T]) nextBatch(s *Schedule[T]) ([]OperationID, error) {
	var (
		batch []OperationID
		extra int64
	)
	cut := OperationID(math.MaxInt)
	for _, id := range s.AvailableOperations() {
		n := s.ops[id]
		if len(batch) > 0 && (id > cut || n.op.Kind() == KindDelete) {
			break
		}
		if err := checkMemory(s, n.op, q.MaxMemory, extra); err != nil {
			if len(batch) > 0 && pkgerrors.Is(err, ErrBudgetExceeded) {
				break
			}
			return nil, err
		}
		batch = append(batch, id)
		if n.op.Kind() == KindDelete {
			break
		}
		mem, err := n.op.MemoryUsage()
		if err != nil {
			return nil, err
		}
		if mem.Peak > 0 {
			extra += mem.Peak
		}
		for c := range n.children {
			if c < cut {
				cut = c
			}
		}
	}

	return batch, nil
}

// runBatch executes the batch with at most workers goroutines. Members
// before the lowest failure are committed in id order; successful members
// after it are undone so that none of their results outlives the failure.
func runBatch[T any](s *Schedule[T], batch []OperationID, workers int) error {
	type result struct {
		mem Memory
		err error
	}
	results := make([]result, len(batch))
	ran := make([]bool, len(batch))
	var g errgroup.Group
	g.SetLimit(workers)
	for i, id := range batch {
		n, err := s.checkAvailable(id)
		if err != nil {
			results[i].err = err
			continue
		}
		if results[i].mem, err = n.op.MemoryUsage(); err != nil {
			results[i].err = err
			continue
		}
		op := n.op
		ran[i] = true
		i := i
		// failures are kept per operation; the group never cancels
		g.Go(func() error {
			results[i].err = op.Execute()
			return nil
		})
	}
	_ = g.Wait()

	var first error
	for i, id := range batch {
		switch {
		case first == nil && results[i].err == nil:
			s.commit(id, results[i].mem)
		case first == nil:
			first = pkgerrors.Wrapf(results[i].err, "Execute(%d)", id)
		case ran[i] && results[i].err == nil:
			if err := s.ops[id].op.Undo(); err != nil {
				klog.Errorf("schedule: undo of operation %d after a failed batch: %v", id, err)
			}
		}
	}

	return first
}
