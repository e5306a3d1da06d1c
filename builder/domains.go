// SPDX-License-Identifier: MIT
// Package: lvjunction/builder
//
// domains.go - domain-size maps matching a generated graph.

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvjunction/core"
)

// UniformDomains gives every node of g the same domain size.
// size must be ≥ 1; smaller values are clamped to 1.
func UniformDomains(g *core.Graph, size int) core.DomainSizes {
	if size < 1 {
		size = 1
	}
	ds := make(core.DomainSizes, g.NodeCount())
	for _, n := range g.Nodes() {
		ds[n] = size
	}

	return ds
}

// RandomDomains draws, for each node of g in ascending id order, a size
// uniformly in [minSize, maxSize] using the configured RNG.
func RandomDomains(g *core.Graph, minSize, maxSize int, opts ...BuilderOption) (core.DomainSizes, error) {
	if minSize < 1 || maxSize < minSize {
		return nil, errors.Wrapf(ErrTooFewNodes, "RandomDomains: range [%d,%d]", minSize, maxSize)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil && maxSize > minSize {
		return nil, errors.Wrap(ErrNeedRandSource, "RandomDomains")
	}
	ds := make(core.DomainSizes, g.NodeCount())
	for _, n := range g.Nodes() {
		size := minSize
		if maxSize > minSize {
			size += cfg.rng.Intn(maxSize - minSize + 1)
		}
		ds[n] = size
	}

	return ds, nil
}
