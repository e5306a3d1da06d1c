// SPDX-License-Identifier: MIT
// File: multidim.go
// Role: Variable and the MultiDim placeholder.

package schedule

import (
	pkgerrors "github.com/pkg/errors"
)

// PlaceholderID identifies a MultiDim inside one Schedule.
type PlaceholderID int

// noPlaceholder marks a MultiDim not yet inserted into a schedule.
const noPlaceholder PlaceholderID = -1

// Variable is a named discrete dimension with Size values.
type Variable struct {
	Name string
	Size int
}

// MultiDim is an array value indexed by Variables, possibly not computed
// yet. A MultiDim belongs to at most one Schedule.
type MultiDim[T any] struct {
	id       PlaceholderID
	vars     []Variable
	value    T
	abstract bool
	deleted  bool
}

// NewMultiDim returns an abstract placeholder over vars.
//
// Errors:
//   - ErrInvalidArgument: empty or repeated name, non-positive size.
func NewMultiDim[T any](vars ...Variable) (*MultiDim[T], error) {
	if err := checkVariables(vars); err != nil {
		return nil, err
	}

	return &MultiDim[T]{id: noPlaceholder, vars: append([]Variable(nil), vars...), abstract: true}, nil
}

// NewMaterialized returns a placeholder over vars already holding v.
func NewMaterialized[T any](v T, vars ...Variable) (*MultiDim[T], error) {
	m, err := NewMultiDim[T](vars...)
	if err != nil {
		return nil, err
	}
	m.value, m.abstract = v, false

	return m, nil
}

func checkVariables(vars []Variable) error {
	seen := make(map[string]struct{}, len(vars))
	for _, v := range vars {
		if v.Name == "" {
			return pkgerrors.Wrap(ErrInvalidArgument, "variable with empty name")
		}
		if v.Size <= 0 {
			return pkgerrors.Wrapf(ErrInvalidArgument, "variable %q has size %d", v.Name, v.Size)
		}
		if _, dup := seen[v.Name]; dup {
			return pkgerrors.Wrapf(ErrInvalidArgument, "variable %q repeated", v.Name)
		}
		seen[v.Name] = struct{}{}
	}

	return nil
}

// ID returns the placeholder id, or -1 before insertion into a schedule.
func (m *MultiDim[T]) ID() PlaceholderID { return m.id }

// Variables returns a copy of the dimensions.
func (m *MultiDim[T]) Variables() []Variable { return append([]Variable(nil), m.vars...) }

// IsAbstract reports whether no value is attached.
func (m *MultiDim[T]) IsAbstract() bool { return m.abstract }

// IsDeleted reports whether a Deletion freed the placeholder.
func (m *MultiDim[T]) IsDeleted() bool { return m.deleted }

// Value returns the attached value and whether there is one.
func (m *MultiDim[T]) Value() (T, bool) { return m.value, !m.abstract }

// DomainSize is the number of value slots: the product of variable sizes,
// 1 for no variables.
//
// Errors:
//   - ErrOverflow.
func (m *MultiDim[T]) DomainSize() (int64, error) {
	size := int64(1)
	for _, v := range m.vars {
		var err error
		if size, err = mulChecked(size, int64(v.Size)); err != nil {
			return 0, pkgerrors.Wrapf(err, "domain of placeholder %d", m.id)
		}
	}

	return size, nil
}

func (m *MultiDim[T]) set(v T) {
	m.value, m.abstract = v, false
}

func (m *MultiDim[T]) free() {
	var zero T
	m.value, m.abstract, m.deleted = zero, true, true
}

// sameShape reports whether a and b have the same variables in any order.
func sameShape(a, b []Variable) bool {
	if len(a) != len(b) {
		return false
	}
	sizes := make(map[string]int, len(a))
	for _, v := range a {
		sizes[v.Name] = v.Size
	}
	for _, v := range b {
		if s, ok := sizes[v.Name]; !ok || s != v.Size {
			return false
		}
	}

	return true
}
