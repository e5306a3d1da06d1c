// SPDX-License-Identifier: MIT
// File: projection.go
// Role: Projection, removal of variables from a placeholder.

package schedule

import (
	pkgerrors "github.com/pkg/errors"
)

// Projection removes variables from a placeholder.
type Projection[T any] struct {
	in       *MultiDim[T]
	removed  []Variable
	out      *MultiDim[T]
	fn       ProjectFunc[T]
	executed bool
}

// NewProjection returns the projection of in removing the named variables.
//
// Errors:
//   - ErrInvalidArgument: nil input or function, or a name in removed that
//     is not a variable of in.
func NewProjection[T any](in *MultiDim[T], removed []string, fn ProjectFunc[T]) (*Projection[T], error) {
	if in == nil || fn == nil {
		return nil, pkgerrors.Wrap(ErrInvalidArgument, "NewProjection: nil input")
	}
	have := make(map[string]struct{}, len(in.vars))
	for _, v := range in.vars {
		have[v.Name] = struct{}{}
	}
	drop := make(map[string]struct{}, len(removed))
	for _, name := range removed {
		if _, ok := have[name]; !ok {
			return nil, pkgerrors.Wrapf(ErrInvalidArgument, "NewProjection: %q is not a variable of the input", name)
		}
		drop[name] = struct{}{}
	}
	var kept, gone []Variable
	for _, v := range in.vars {
		if _, ok := drop[v.Name]; ok {
			gone = append(gone, v)
		} else {
			kept = append(kept, v)
		}
	}
	out, err := NewMultiDim[T](kept...)
	if err != nil {
		return nil, err
	}

	return &Projection[T]{in: in, removed: gone, out: out, fn: fn}, nil
}

// Kind implements Operation.
func (p *Projection[T]) Kind() Kind { return KindProject }

// Args implements Operation.
func (p *Projection[T]) Args() []*MultiDim[T] { return []*MultiDim[T]{p.in} }

// Results implements Operation.
func (p *Projection[T]) Results() []*MultiDim[T] { return []*MultiDim[T]{p.out} }

// Result returns the output placeholder.
func (p *Projection[T]) Result() *MultiDim[T] { return p.out }

// Removed returns the removed variables.
func (p *Projection[T]) Removed() []Variable { return append([]Variable(nil), p.removed...) }

// NbOperations is the input domain size (every input slot is read once),
// or 0 for an input without variables.
func (p *Projection[T]) NbOperations() (int64, error) {
	if len(p.in.vars) == 0 {
		return 0, nil
	}

	return p.in.DomainSize()
}

// MemoryUsage counts the input domain size for both peak and resident.
// The output is never larger, so this bounds the real need.
func (p *Projection[T]) MemoryUsage() (Memory, error) {
	size, err := p.in.DomainSize()
	if err != nil {
		return Memory{}, err
	}

	return Memory{Peak: size, Resident: size}, nil
}

// Execute implements Operation.
func (p *Projection[T]) Execute() error {
	if p.executed {
		return pkgerrors.Wrap(ErrIllegalState, "project: already executed")
	}
	if err := requireMaterialized(KindProject, p.in); err != nil {
		return err
	}
	v, err := p.fn(p.in.value, p.Removed())
	if err != nil {
		return valueErr(KindProject, err)
	}
	p.out.set(v)
	p.executed = true

	return nil
}

// Undo drops the computed value; the projection can run again.
func (p *Projection[T]) Undo() error {
	if p.executed {
		var zero T
		p.out.value, p.out.abstract = zero, true
		p.executed = false
	}

	return nil
}

// IsExecuted implements Operation.
func (p *Projection[T]) IsExecuted() bool { return p.executed }

func (p *Projection[T]) rebind(args []*MultiDim[T]) { p.in = args[0] }
