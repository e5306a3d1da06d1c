// SPDX-License-Identifier: MIT
// File: combination.go
// Role: Combination, the binary operation over the union of variables.

package schedule

import (
	pkgerrors "github.com/pkg/errors"
)

// Combination merges two placeholders into a new one whose variables are
// the union of theirs: a's variables first, then b's new ones.
type Combination[T any] struct {
	a, b     *MultiDim[T]
	out      *MultiDim[T]
	fn       CombineFunc[T]
	executed bool
}

// NewCombination returns the combination of a and b through fn.
//
// Errors:
//   - ErrInvalidArgument: nil input or function, or a variable name shared
//     with different sizes.
func NewCombination[T any](a, b *MultiDim[T], fn CombineFunc[T]) (*Combination[T], error) {
	if a == nil || b == nil || fn == nil {
		return nil, pkgerrors.Wrap(ErrInvalidArgument, "NewCombination: nil input")
	}
	vars, err := unionVariables(a.vars, b.vars)
	if err != nil {
		return nil, err
	}
	out, err := NewMultiDim[T](vars...)
	if err != nil {
		return nil, err
	}

	return &Combination[T]{a: a, b: b, out: out, fn: fn}, nil
}

func unionVariables(a, b []Variable) ([]Variable, error) {
	sizes := make(map[string]int, len(a)+len(b))
	out := make([]Variable, 0, len(a)+len(b))
	for _, v := range a {
		sizes[v.Name] = v.Size
		out = append(out, v)
	}
	for _, v := range b {
		s, ok := sizes[v.Name]
		if !ok {
			sizes[v.Name] = v.Size
			out = append(out, v)
			continue
		}
		if s != v.Size {
			return nil, pkgerrors.Wrapf(ErrInvalidArgument, "variable %q has sizes %d and %d", v.Name, s, v.Size)
		}
	}

	return out, nil
}

// Kind implements Operation.
func (c *Combination[T]) Kind() Kind { return KindCombine }

// Args implements Operation.
func (c *Combination[T]) Args() []*MultiDim[T] { return []*MultiDim[T]{c.a, c.b} }

// Results implements Operation.
func (c *Combination[T]) Results() []*MultiDim[T] { return []*MultiDim[T]{c.out} }

// Result returns the output placeholder.
func (c *Combination[T]) Result() *MultiDim[T] { return c.out }

// NbOperations is the output domain size, or 0 when an input has no
// variables.
func (c *Combination[T]) NbOperations() (int64, error) {
	if len(c.a.vars) == 0 || len(c.b.vars) == 0 {
		return 0, nil
	}

	return c.out.DomainSize()
}

// MemoryUsage is the output domain size, both peak and resident.
func (c *Combination[T]) MemoryUsage() (Memory, error) {
	size, err := c.out.DomainSize()
	if err != nil {
		return Memory{}, err
	}

	return Memory{Peak: size, Resident: size}, nil
}

// Execute implements Operation.
func (c *Combination[T]) Execute() error {
	if c.executed {
		return pkgerrors.Wrap(ErrIllegalState, "combine: already executed")
	}
	if err := requireMaterialized(KindCombine, c.a, c.b); err != nil {
		return err
	}
	v, err := c.fn(c.a.value, c.b.value)
	if err != nil {
		return valueErr(KindCombine, err)
	}
	c.out.set(v)
	c.executed = true

	return nil
}

// Undo drops the computed value; the combination can run again.
func (c *Combination[T]) Undo() error {
	if c.executed {
		var zero T
		c.out.value, c.out.abstract = zero, true
		c.executed = false
	}

	return nil
}

// IsExecuted implements Operation.
func (c *Combination[T]) IsExecuted() bool { return c.executed }

func (c *Combination[T]) rebind(args []*MultiDim[T]) { c.a, c.b = args[0], args[1] }
