// SPDX-License-Identifier: MIT
// File: errors.go
// Role: sentinel errors and checked int64 arithmetic.

package schedule

import (
	"errors"
	"math"

	pkgerrors "github.com/pkg/errors"
)

var (
	// ErrUnknownPlaceholder: a placeholder is not part of the schedule.
	ErrUnknownPlaceholder = errors.New("schedule: unknown placeholder")

	// ErrUnknownOperation: no operation under that id.
	ErrUnknownOperation = errors.New("schedule: unknown operation")

	// ErrUnknownFunction: no registered function under that name.
	ErrUnknownFunction = errors.New("schedule: unknown function")

	// ErrIllegalState: the request conflicts with what already ran or is
	// already scheduled.
	ErrIllegalState = errors.New("schedule: illegal state")

	// ErrInvalidArgument: malformed variables or shapes.
	ErrInvalidArgument = errors.New("schedule: invalid argument")

	// ErrOverflow: a size or cost estimate does not fit in int64.
	ErrOverflow = errors.New("schedule: arithmetic overflow")

	// ErrBudgetExceeded: executing would breach the memory ceiling.
	ErrBudgetExceeded = errors.New("schedule: memory budget exceeded")

	// ErrOutOfMemory may be returned by value functions that cannot
	// allocate their result; schedulers report it as ErrBudgetExceeded.
	ErrOutOfMemory = errors.New("schedule: out of memory")
)

func mulChecked(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	if (a > 0 && b > 0 && a > math.MaxInt64/b) ||
		(a > 0 && b < 0 && b < math.MinInt64/a) ||
		(a < 0 && b > 0 && a < math.MinInt64/b) ||
		(a < 0 && b < 0 && a < math.MaxInt64/b) {
		return 0, pkgerrors.Wrapf(ErrOverflow, "%d * %d", a, b)
	}

	return a * b, nil
}

func addChecked(a, b int64) (int64, error) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, pkgerrors.Wrapf(ErrOverflow, "%d + %d", a, b)
	}

	return a + b, nil
}
