// SPDX-License-Identifier: MIT
// Package: lvjunction/builder
//
// options.go - functional options and the resolved builderConfig.
// Option constructors validate and panic on meaningless inputs; the
// constructors themselves never panic.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/lvjunction/core"
)

// BuilderOption customizes constructor behaviour by mutating a builderConfig.
type BuilderOption func(*builderConfig)

// builderConfig is passed by value to constructors.
type builderConfig struct {
	// rng drives stochastic constructors; nil means fully deterministic.
	rng *rand.Rand
	// offset is added to every generated index to form a NodeID.
	offset core.NodeID
}

// newBuilderConfig applies opts in order over deterministic defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// id maps a constructor-local index to a NodeID.
func (c builderConfig) id(i int) core.NodeID { return c.offset + core.NodeID(i) }

// WithSeed installs a seeded *rand.Rand (reproducible draws).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand installs an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithIDOffset shifts generated node ids by offset, so several constructors
// can populate disjoint components of one graph. Panics on offset < 0.
func WithIDOffset(offset int) BuilderOption {
	if offset < 0 {
		panic("builder: WithIDOffset(offset<0)")
	}

	return func(c *builderConfig) { c.offset = core.NodeID(offset) }
}
