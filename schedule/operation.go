// SPDX-License-Identifier: MIT
// File: operation.go
// Role: the Operation contract, Kind, Memory and the value-function types.

package schedule

import (
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// OperationID identifies an operation inside one Schedule.
type OperationID int

// Kind tags an operation.
type Kind int

const (
	// KindCombine merges two placeholders.
	KindCombine Kind = iota
	// KindProject removes variables from a placeholder.
	KindProject
	// KindDelete frees a placeholder.
	KindDelete
)

func (k Kind) String() string {
	switch k {
	case KindCombine:
		return "combine"
	case KindProject:
		return "project"
	case KindDelete:
		return "delete"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Memory is a usage estimate in value slots. Peak is what the operation
// needs while running; Resident is what stays allocated afterwards.
// Deletions report negative values.
type Memory struct {
	Peak     int64
	Resident int64
}

// CombineFunc computes the value of a combination. It must not mutate its
// inputs; Parallel calls it concurrently.
type CombineFunc[T any] func(a, b T) (T, error)

// ProjectFunc computes the value of a projection removing the given
// variables. Same purity rule as CombineFunc.
type ProjectFunc[T any] func(t T, removed []Variable) (T, error)

// Operation is a deferred computation over placeholders.
type Operation[T any] interface {
	Kind() Kind
	// Args returns the input placeholders.
	Args() []*MultiDim[T]
	// Results returns the output placeholders (none for a deletion).
	Results() []*MultiDim[T]
	// NbOperations estimates the elementary operations performed.
	NbOperations() (int64, error)
	// MemoryUsage estimates the memory effect of executing.
	MemoryUsage() (Memory, error)
	// Execute performs the operation. Inputs must be materialized.
	Execute() error
	// Undo reverts an execution where that is possible.
	Undo() error
	IsExecuted() bool

	// rebind replaces the inputs with placeholders of the same shapes.
	rebind(args []*MultiDim[T])
}

// requireMaterialized checks every input holds a value.
func requireMaterialized[T any](kind Kind, args ...*MultiDim[T]) error {
	for _, a := range args {
		if a.IsAbstract() {
			return pkgerrors.Wrapf(ErrIllegalState, "%s: input placeholder %d is abstract", kind, a.ID())
		}
	}

	return nil
}

// valueErr wraps a value-function failure, mapping ErrOutOfMemory to
// ErrBudgetExceeded.
func valueErr(kind Kind, err error) error {
	if pkgerrors.Is(err, ErrOutOfMemory) {
		return pkgerrors.Wrapf(ErrBudgetExceeded, "%s: %v", kind, err)
	}

	return pkgerrors.Wrapf(err, "%s", kind)
}
