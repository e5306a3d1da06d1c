// SPDX-License-Identifier: MIT
// File: options.go
// Role: construction method selection for Builder.

package junctiontree

import "fmt"

// Method selects how the junction tree is built.
type Method int

const (
	// MethodMerge folds subsumed cliques of the elimination tree into
	// their neighbours. The default.
	MethodMerge Method = iota
	// MethodSpanning keeps the maximal created cliques and links them by a
	// maximum-separator spanning forest.
	MethodSpanning
)

func (m Method) String() string {
	switch m {
	case MethodMerge:
		return "merge"
	case MethodSpanning:
		return "spanning"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// Option configures a Builder.
type Option func(*Builder)

// WithMethod selects the construction method.
// Panics on an unknown method.
func WithMethod(m Method) Option {
	if m != MethodMerge && m != MethodSpanning {
		panic("junctiontree: WithMethod(unknown method)")
	}

	return func(b *Builder) { b.method = m }
}
