// SPDX-License-Identifier: MIT
// File: deletion.go
// Role: Deletion, the irreversible release of a placeholder.

package schedule

import (
	pkgerrors "github.com/pkg/errors"
)

// Deletion frees a placeholder once every reader has run.
type Deletion[T any] struct {
	target   *MultiDim[T]
	executed bool
}

// NewDeletion returns the deletion of target.
func NewDeletion[T any](target *MultiDim[T]) (*Deletion[T], error) {
	if target == nil {
		return nil, pkgerrors.Wrap(ErrInvalidArgument, "NewDeletion: nil target")
	}

	return &Deletion[T]{target: target}, nil
}

// Kind implements Operation.
func (d *Deletion[T]) Kind() Kind { return KindDelete }

// Args implements Operation.
func (d *Deletion[T]) Args() []*MultiDim[T] { return []*MultiDim[T]{d.target} }

// Results implements Operation; a deletion produces nothing.
func (d *Deletion[T]) Results() []*MultiDim[T] { return nil }

// NbOperations implements Operation; always 0.
func (d *Deletion[T]) NbOperations() (int64, error) { return 0, nil }

// MemoryUsage is minus the target domain size.
func (d *Deletion[T]) MemoryUsage() (Memory, error) {
	size, err := d.target.DomainSize()
	if err != nil {
		return Memory{}, err
	}

	return Memory{Peak: -size, Resident: -size}, nil
}

// Execute frees the target's value.
func (d *Deletion[T]) Execute() error {
	if d.executed {
		return pkgerrors.Wrap(ErrIllegalState, "delete: already executed")
	}
	if err := requireMaterialized(KindDelete, d.target); err != nil {
		return err
	}
	d.target.free()
	d.executed = true

	return nil
}

// Undo fails once the deletion ran: the value is gone.
func (d *Deletion[T]) Undo() error {
	if d.executed {
		return pkgerrors.Wrapf(ErrIllegalState, "delete: placeholder %d already freed", d.target.ID())
	}

	return nil
}

// IsExecuted implements Operation.
func (d *Deletion[T]) IsExecuted() bool { return d.executed }

func (d *Deletion[T]) rebind(args []*MultiDim[T]) { d.target = args[0] }
