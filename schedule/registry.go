// SPDX-License-Identifier: MIT
// File: registry.go
// Role: explicit name -> value function registry.

package schedule

import (
	pkgerrors "github.com/pkg/errors"
)

// Registry resolves value functions by name. Build one per caller and pass
// it where needed.
type Registry[T any] struct {
	combine map[string]CombineFunc[T]
	project map[string]ProjectFunc[T]
}

// NewRegistry returns an empty registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		combine: make(map[string]CombineFunc[T]),
		project: make(map[string]ProjectFunc[T]),
	}
}

// RegisterCombine stores fn under name.
//
// Errors:
//   - ErrInvalidArgument: empty name, nil fn, or name already taken.
func (r *Registry[T]) RegisterCombine(name string, fn CombineFunc[T]) error {
	if name == "" || fn == nil {
		return pkgerrors.Wrap(ErrInvalidArgument, "RegisterCombine: empty name or nil function")
	}
	if _, ok := r.combine[name]; ok {
		return pkgerrors.Wrapf(ErrInvalidArgument, "RegisterCombine: %q already registered", name)
	}
	r.combine[name] = fn

	return nil
}

// RegisterProject stores fn under name, with RegisterCombine's rules.
func (r *Registry[T]) RegisterProject(name string, fn ProjectFunc[T]) error {
	if name == "" || fn == nil {
		return pkgerrors.Wrap(ErrInvalidArgument, "RegisterProject: empty name or nil function")
	}
	if _, ok := r.project[name]; ok {
		return pkgerrors.Wrapf(ErrInvalidArgument, "RegisterProject: %q already registered", name)
	}
	r.project[name] = fn

	return nil
}

// Combine returns the combination function registered under name.
func (r *Registry[T]) Combine(name string) (CombineFunc[T], error) {
	fn, ok := r.combine[name]
	if !ok {
		return nil, pkgerrors.Wrapf(ErrUnknownFunction, "combine %q", name)
	}

	return fn, nil
}

// Project returns the projection function registered under name.
func (r *Registry[T]) Project(name string) (ProjectFunc[T], error) {
	fn, ok := r.project[name]
	if !ok {
		return nil, pkgerrors.Wrapf(ErrUnknownFunction, "project %q", name)
	}

	return fn, nil
}

// NewCombinationByName is NewCombination with fn looked up in r.
func NewCombinationByName[T any](r *Registry[T], name string, a, b *MultiDim[T]) (*Combination[T], error) {
	fn, err := r.Combine(name)
	if err != nil {
		return nil, err
	}

	return NewCombination(a, b, fn)
}

// NewProjectionByName is NewProjection with fn looked up in r.
func NewProjectionByName[T any](r *Registry[T], name string, in *MultiDim[T], removed []string) (*Projection[T], error) {
	fn, err := r.Project(name)
	if err != nil {
		return nil, err
	}

	return NewProjection(in, removed, fn)
}
