// SPDX-License-Identifier: MIT
// File: schedule.go
// Role: the dependency graph of placeholders and operations.

package schedule

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/plan-systems/klog"
	pkgerrors "github.com/pkg/errors"
)

// node is an inserted operation with its dependency links.
type node[T any] struct {
	op       Operation[T]
	parents  map[OperationID]struct{}
	children map[OperationID]struct{}
	pending  int // parents not executed yet
}

// Schedule is a DAG of operations over placeholders.
//
// An operation depends on the producers of its inputs; a deletion also
// depends on every other reader of its target. Once a deletion is
// inserted, no new operation may read its target.
type Schedule[T any] struct {
	placeholders map[PlaceholderID]*MultiDim[T]
	producer     map[PlaceholderID]OperationID
	readers      map[PlaceholderID]map[OperationID]struct{}
	deleter      map[PlaceholderID]OperationID

	ops       map[OperationID]*node[T]
	available *treeset.Set // OperationID, ascending
	executed  int
	resident  int64

	nextPlaceholder PlaceholderID
	nextOperation   OperationID
}

func byOperationID(a, b interface{}) int {
	x, y := a.(OperationID), b.(OperationID)
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

// New returns an empty schedule.
func New[T any]() *Schedule[T] {
	return &Schedule[T]{
		placeholders: make(map[PlaceholderID]*MultiDim[T]),
		producer:     make(map[PlaceholderID]OperationID),
		readers:      make(map[PlaceholderID]map[OperationID]struct{}),
		deleter:      make(map[PlaceholderID]OperationID),
		ops:          make(map[OperationID]*node[T]),
		available:    treeset.NewWith(byOperationID),
	}
}

// InsertPlaceholder adds an externally supplied placeholder, abstract or
// materialized, and returns its id.
//
// A materialized m counts toward Resident.
//
// Errors:
//   - ErrInvalidArgument: m is nil.
//   - ErrIllegalState: m already belongs to a schedule or was deleted.
//   - ErrOverflow.
func (s *Schedule[T]) InsertPlaceholder(m *MultiDim[T]) (PlaceholderID, error) {
	if m == nil {
		return noPlaceholder, pkgerrors.Wrap(ErrInvalidArgument, "InsertPlaceholder: nil")
	}
	if m.id != noPlaceholder || m.deleted {
		return noPlaceholder, pkgerrors.Wrapf(ErrIllegalState, "InsertPlaceholder: placeholder %d already used", m.id)
	}
	resident := s.resident
	if !m.IsAbstract() {
		size, err := m.DomainSize()
		if err != nil {
			return noPlaceholder, err
		}
		if resident, err = addChecked(resident, size); err != nil {
			return noPlaceholder, err
		}
	}
	s.register(m)
	s.resident = resident

	return m.id, nil
}

func (s *Schedule[T]) register(m *MultiDim[T]) {
	m.id = s.nextPlaceholder
	s.nextPlaceholder++
	s.placeholders[m.id] = m
}

// known reports whether m is a placeholder of s.
func (s *Schedule[T]) known(m *MultiDim[T]) bool {
	return m != nil && m.id != noPlaceholder && s.placeholders[m.id] == m
}

// Placeholder returns the placeholder with the given id.
func (s *Schedule[T]) Placeholder(id PlaceholderID) (*MultiDim[T], error) {
	m, ok := s.placeholders[id]
	if !ok {
		return nil, pkgerrors.Wrapf(ErrUnknownPlaceholder, "Placeholder(%d)", id)
	}

	return m, nil
}

// Materialize attaches v to an abstract external placeholder, which may
// make its readers available.
//
// Errors:
//   - ErrUnknownPlaceholder.
//   - ErrIllegalState: the placeholder is produced by an operation or was
//     deleted.
func (s *Schedule[T]) Materialize(id PlaceholderID, v T) error {
	m, err := s.Placeholder(id)
	if err != nil {
		return err
	}
	if _, produced := s.producer[id]; produced || m.deleted {
		return pkgerrors.Wrapf(ErrIllegalState, "Materialize(%d): not an external placeholder", id)
	}
	if m.IsAbstract() {
		size, err := m.DomainSize()
		if err != nil {
			return err
		}
		if s.resident, err = addChecked(s.resident, size); err != nil {
			return err
		}
	}
	m.set(v)
	for r := range s.readers[id] {
		s.refresh(r)
	}
	if d, ok := s.deleter[id]; ok {
		s.refresh(d)
	}

	return nil
}

// InsertOperation adds op and returns its id. The results of op become
// placeholders of s.
//
// Errors:
//   - ErrInvalidArgument: op is nil.
//   - ErrUnknownPlaceholder: an input is not a placeholder of s.
//   - ErrIllegalState: op already ran or was inserted, an input is
//     scheduled for deletion, or a deletion targets a placeholder that
//     already has one.
func (s *Schedule[T]) InsertOperation(op Operation[T]) (OperationID, error) {
	if op == nil {
		return 0, pkgerrors.Wrap(ErrInvalidArgument, "InsertOperation: nil")
	}
	if op.IsExecuted() {
		return 0, pkgerrors.Wrap(ErrIllegalState, "InsertOperation: already executed")
	}
	for _, a := range op.Args() {
		if !s.known(a) {
			return 0, pkgerrors.Wrapf(ErrUnknownPlaceholder, "InsertOperation(%s): input %d", op.Kind(), a.ID())
		}
		if d, ok := s.deleter[a.id]; ok {
			return 0, pkgerrors.Wrapf(ErrIllegalState, "InsertOperation(%s): placeholder %d is deleted by operation %d", op.Kind(), a.id, d)
		}
	}
	for _, r := range op.Results() {
		if r.id != noPlaceholder {
			return 0, pkgerrors.Wrapf(ErrIllegalState, "InsertOperation(%s): result %d already inserted", op.Kind(), r.id)
		}
	}

	id := s.nextOperation
	s.nextOperation++
	for _, r := range op.Results() {
		s.register(r)
	}
	s.ops[id] = &node[T]{op: op, children: make(map[OperationID]struct{})}
	s.registerArgs(id)
	s.link(id)

	return id, nil
}

func (s *Schedule[T]) registerArgs(id OperationID) {
	op := s.ops[id].op
	if op.Kind() == KindDelete {
		s.deleter[op.Args()[0].id] = id
	} else {
		for _, a := range op.Args() {
			if s.readers[a.id] == nil {
				s.readers[a.id] = make(map[OperationID]struct{})
			}
			s.readers[a.id][id] = struct{}{}
		}
	}
	for _, r := range op.Results() {
		s.producer[r.id] = id
	}
}

func (s *Schedule[T]) unregisterArgs(id OperationID) {
	op := s.ops[id].op
	if op.Kind() == KindDelete {
		delete(s.deleter, op.Args()[0].id)
		return
	}
	for _, a := range op.Args() {
		delete(s.readers[a.id], id)
	}
}

// parentsOf computes the operations id must wait for.
func (s *Schedule[T]) parentsOf(id OperationID) map[OperationID]struct{} {
	op := s.ops[id].op
	parents := make(map[OperationID]struct{})
	for _, a := range op.Args() {
		if p, ok := s.producer[a.id]; ok {
			parents[p] = struct{}{}
		}
		if op.Kind() == KindDelete {
			for r := range s.readers[a.id] {
				parents[r] = struct{}{}
			}
		}
	}
	delete(parents, id)

	return parents
}

// link wires id under its parents and updates its availability.
func (s *Schedule[T]) link(id OperationID) {
	n := s.ops[id]
	n.parents = s.parentsOf(id)
	n.pending = 0
	for p := range n.parents {
		parent := s.ops[p]
		parent.children[id] = struct{}{}
		if !parent.op.IsExecuted() {
			n.pending++
		}
	}
	s.refresh(id)
}

func (s *Schedule[T]) unlink(id OperationID) {
	for p := range s.ops[id].parents {
		delete(s.ops[p].children, id)
	}
}

// refresh puts id in or out of the available set.
func (s *Schedule[T]) refresh(id OperationID) {
	n := s.ops[id]
	if !n.op.IsExecuted() && n.pending == 0 && argsMaterialized(n.op) {
		s.available.Add(id)
	} else {
		s.available.Remove(id)
	}
}

func argsMaterialized[T any](op Operation[T]) bool {
	for _, a := range op.Args() {
		if a.IsAbstract() {
			return false
		}
	}

	return true
}

// UpdateArguments rebinds the inputs of a not yet executed operation to
// placeholders of the same shapes.
//
// Errors:
//   - ErrUnknownOperation, ErrUnknownPlaceholder.
//   - ErrIllegalState: the operation already ran, or a new input is
//     scheduled for deletion.
//   - ErrInvalidArgument: wrong count or shape, or a new input computed
//     from the operation's own results.
func (s *Schedule[T]) UpdateArguments(id OperationID, args []*MultiDim[T]) error {
	n, ok := s.ops[id]
	if !ok {
		return pkgerrors.Wrapf(ErrUnknownOperation, "UpdateArguments(%d)", id)
	}
	if n.op.IsExecuted() {
		return pkgerrors.Wrapf(ErrIllegalState, "UpdateArguments(%d): already executed", id)
	}
	old := n.op.Args()
	if len(args) != len(old) {
		return pkgerrors.Wrapf(ErrInvalidArgument, "UpdateArguments(%d): %d inputs, want %d", id, len(args), len(old))
	}
	for i, a := range args {
		if !s.known(a) {
			return pkgerrors.Wrapf(ErrUnknownPlaceholder, "UpdateArguments(%d): input %d", id, i)
		}
		if !sameShape(a.vars, old[i].vars) {
			return pkgerrors.Wrapf(ErrInvalidArgument, "UpdateArguments(%d): input %d changes shape", id, i)
		}
		if a == old[i] {
			continue
		}
		if d, ok := s.deleter[a.id]; ok {
			return pkgerrors.Wrapf(ErrIllegalState, "UpdateArguments(%d): placeholder %d is deleted by operation %d", id, a.id, d)
		}
		if p, ok := s.producer[a.id]; ok && s.reaches(id, p) {
			return pkgerrors.Wrapf(ErrInvalidArgument, "UpdateArguments(%d): placeholder %d depends on the operation", id, a.id)
		}
	}

	// deletions whose reader set changes
	var touched []OperationID
	for _, a := range append(append([]*MultiDim[T](nil), old...), args...) {
		if d, ok := s.deleter[a.id]; ok && d != id {
			touched = append(touched, d)
		}
	}

	s.unregisterArgs(id)
	s.unlink(id)
	n.op.rebind(args)
	s.registerArgs(id)
	s.link(id)
	for _, d := range touched {
		s.unlink(d)
		s.link(d)
	}

	return nil
}

// reaches reports whether to is from or one of its descendants.
func (s *Schedule[T]) reaches(from, to OperationID) bool {
	seen := map[OperationID]struct{}{from: {}}
	stack := []OperationID{from}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur == to {
			return true
		}
		for c := range s.ops[cur].children {
			if _, ok := seen[c]; !ok {
				seen[c] = struct{}{}
				stack = append(stack, c)
			}
		}
	}

	return false
}

// Operation returns a view of the operation with the given id. The view
// answers estimates and state queries; its Execute and Undo fail with
// ErrIllegalState, use Schedule.Execute and Schedule.Undo instead.
func (s *Schedule[T]) Operation(id OperationID) (Operation[T], error) {
	n, ok := s.ops[id]
	if !ok {
		return nil, pkgerrors.Wrapf(ErrUnknownOperation, "Operation(%d)", id)
	}

	return view[T]{n.op}, nil
}

// view guards an inserted operation against state changes the schedule
// would not see.
type view[T any] struct {
	Operation[T]
}

func (v view[T]) Execute() error {
	return pkgerrors.Wrapf(ErrIllegalState, "%s: run it through Schedule.Execute", v.Kind())
}

func (v view[T]) Undo() error {
	return pkgerrors.Wrapf(ErrIllegalState, "%s: revert it through Schedule.Undo", v.Kind())
}

// AvailableOperations returns the ids of the operations that can run now,
// ascending.
func (s *Schedule[T]) AvailableOperations() []OperationID {
	out := make([]OperationID, 0, s.available.Size())
	for _, v := range s.available.Values() {
		out = append(out, v.(OperationID))
	}

	return out
}

// IsAvailable reports whether id can run now.
func (s *Schedule[T]) IsAvailable(id OperationID) bool { return s.available.Contains(id) }

// Pending returns the ids of the operations not executed yet, ascending.
func (s *Schedule[T]) Pending() []OperationID {
	var out []OperationID
	for id := OperationID(0); id < s.nextOperation; id++ {
		if n, ok := s.ops[id]; ok && !n.op.IsExecuted() {
			out = append(out, id)
		}
	}

	return out
}

// IsDrained reports whether every inserted operation has run.
func (s *Schedule[T]) IsDrained() bool { return s.executed == len(s.ops) }

// Len returns the number of inserted operations.
func (s *Schedule[T]) Len() int { return len(s.ops) }

// Resident is the memory held by the materialized placeholders of s, in
// value slots: external values plus what executed operations allocated,
// minus what deletions freed.
func (s *Schedule[T]) Resident() int64 { return s.resident }

// Execute runs the available operation id.
//
// Errors:
//   - ErrUnknownOperation.
//   - ErrIllegalState: id already ran or is not available.
//   - errors from the operation, ErrOutOfMemory mapped to ErrBudgetExceeded.
func (s *Schedule[T]) Execute(id OperationID) error {
	n, err := s.checkAvailable(id)
	if err != nil {
		return err
	}
	mem, err := n.op.MemoryUsage()
	if err != nil {
		return err
	}
	if err = n.op.Execute(); err != nil {
		return pkgerrors.Wrapf(err, "Execute(%d)", id)
	}
	s.commit(id, mem)

	return nil
}

// Undo reverts the executed operation id and makes it available again.
//
// Errors:
//   - ErrUnknownOperation.
//   - ErrIllegalState: id has not run, an operation depending on it already
//     ran, or id is a deletion.
func (s *Schedule[T]) Undo(id OperationID) error {
	n, ok := s.ops[id]
	if !ok {
		return pkgerrors.Wrapf(ErrUnknownOperation, "Undo(%d)", id)
	}
	if !n.op.IsExecuted() {
		return pkgerrors.Wrapf(ErrIllegalState, "Undo(%d): not executed", id)
	}
	for c := range n.children {
		if s.ops[c].op.IsExecuted() {
			return pkgerrors.Wrapf(ErrIllegalState, "Undo(%d): operation %d already ran", id, c)
		}
	}
	mem, err := n.op.MemoryUsage()
	if err != nil {
		return err
	}
	if err = n.op.Undo(); err != nil {
		return pkgerrors.Wrapf(err, "Undo(%d)", id)
	}
	s.executed--
	s.resident -= mem.Resident
	for c := range n.children {
		s.ops[c].pending++
		s.refresh(c)
	}
	s.refresh(id)
	klog.V(4).Infof("schedule: undid %s operation %d, resident %d", n.op.Kind(), id, s.resident)

	return nil
}

func (s *Schedule[T]) checkAvailable(id OperationID) (*node[T], error) {
	n, ok := s.ops[id]
	if !ok {
		return nil, pkgerrors.Wrapf(ErrUnknownOperation, "Execute(%d)", id)
	}
	if n.op.IsExecuted() {
		return nil, pkgerrors.Wrapf(ErrIllegalState, "Execute(%d): already executed", id)
	}
	if !s.available.Contains(id) {
		return nil, pkgerrors.Wrapf(ErrIllegalState, "Execute(%d): not available", id)
	}

	return n, nil
}

// commit records the execution of id and releases its children.
func (s *Schedule[T]) commit(id OperationID, mem Memory) {
	n := s.ops[id]
	s.available.Remove(id)
	s.executed++
	s.resident += mem.Resident
	for c := range n.children {
		s.ops[c].pending--
		s.refresh(c)
	}
	klog.V(4).Infof("schedule: executed %s operation %d, resident %d", n.op.Kind(), id, s.resident)
}
