// Package schedule records array computations as a dependency graph and
// executes them later, with cost and memory known before anything runs.
//
// What:
//
//   - MultiDim: a placeholder for an array indexed by named discrete
//     Variables. It is abstract until a value is attached.
//   - Operation: Combination (two placeholders into one over the union of
//     their variables), Projection (remove variables) and Deletion (free a
//     placeholder). Each reports NbOperations and MemoryUsage from shapes
//     alone.
//   - Schedule: placeholders and operations inserted so far. An operation
//     is available when its inputs are materialized and the operations it
//     depends on have run.
//   - Sequential and Parallel: schedulers draining a Schedule, optionally
//     under an operation budget and a memory ceiling.
//
// The numeric work is done by caller-supplied functions (CombineFunc,
// ProjectFunc); a Registry resolves them by name. Registries are plain
// values handed to whoever needs them, never globals.
//
// Memory is counted in value slots. A combination needs the product of its
// output domain for its result; a deletion frees the size of its target,
// which it reports as negative usage. Resident memory covers every
// materialized placeholder of the schedule, external inputs included.
//
// Memory ceiling policy: schedulers refuse, before executing it, an
// operation whose peak usage on top of the current resident memory exceeds
// the ceiling, and return ErrBudgetExceeded. Deletions are always admitted. A value function failing with
// ErrOutOfMemory surfaces as ErrBudgetExceeded as well.
//
// Errors:
//
//	ErrUnknownPlaceholder  an operation reads a placeholder not in the schedule.
//	ErrUnknownOperation    unknown operation id.
//	ErrUnknownFunction     a Registry has no function under that name.
//	ErrIllegalState        undo of an executed deletion or of an operation whose
//	                       result was read, rebinding an executed operation,
//	                       reading a placeholder scheduled for deletion.
//	ErrInvalidArgument     bad variables, shape change on rebinding.
//	ErrOverflow            a size or cost does not fit in int64.
//	ErrBudgetExceeded      a memory ceiling would be breached.
//
// A Schedule is not safe for concurrent use; Parallel only runs value
// functions concurrently and applies every state change itself.
package schedule
