// SPDX-License-Identifier: MIT
// Package: lvjunction/builder
//
// api.go - the BuildGraph orchestrator and the Constructor type.
// Determinism: same options, seed and constructor order ⇒ identical graphs.

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvjunction/core"
)

// Constructor applies a deterministic mutation to g using the resolved
// builderConfig. Constructors validate parameters before touching g.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates an empty core.Graph, resolves bopts once and applies
// cons in order. The first failing constructor aborts the build; its error
// is returned wrapped, the partial graph is discarded.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	if err := Apply(g, bopts, cons...); err != nil {
		return nil, err
	}

	return g, nil
}

// Apply runs cons against an existing graph g.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return errors.Wrap(ErrConstructFailed, "BuildGraph: nil graph")
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return errors.Wrapf(ErrConstructFailed, "BuildGraph: nil constructor at index %d", i)
		}
		if err := fn(g, cfg); err != nil {
			return errors.Wrap(err, "BuildGraph")
		}
	}

	return nil
}

// addNodes inserts ids offset..offset+n-1.
func addNodes(g *core.Graph, cfg builderConfig, method string, n int) error {
	for i := 0; i < n; i++ {
		if err := g.AddNode(cfg.id(i)); err != nil {
			return errors.Wrapf(err, "%s: AddNode(%d)", method, cfg.id(i))
		}
	}

	return nil
}

// addEdge connects local indices i and j.
func addEdge(g *core.Graph, cfg builderConfig, method string, i, j int) error {
	if err := g.AddEdge(cfg.id(i), cfg.id(j)); err != nil {
		return errors.Wrapf(err, "%s: AddEdge(%d,%d)", method, cfg.id(i), cfg.id(j))
	}

	return nil
}
