// SPDX-License-Identifier: MIT
// Package: lvjunction/builder
//
// impl_random_sparse.go - RandomSparse(n, p): Erdős–Rényi G(n, p).
//
// Contract:
//   - n ≥ 1, 0 ≤ p ≤ 1.
//   - cfg.rng required for 0 < p < 1; p ∈ {0,1} is deterministic.
//   - Trials over unordered pairs {i,j}, i asc then j asc (j > i), so a
//     fixed seed always yields the same edge set.

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvjunction/core"
)

const (
	methodRandomSparse   = "RandomSparse"
	minRandomSparseNodes = 1
	probMin              = 0.0
	probMax              = 1.0
)

// RandomSparse returns a Constructor sampling each pair independently with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseNodes {
			return errors.Wrapf(ErrTooFewNodes, "%s: n=%d < min=%d", methodRandomSparse, n, minRandomSparseNodes)
		}
		if p < probMin || p > probMax {
			return errors.Wrapf(ErrInvalidProbability, "%s: p=%.6f", methodRandomSparse, p)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return errors.Wrapf(ErrNeedRandSource, "%s", methodRandomSparse)
		}
		if err := addNodes(g, cfg, methodRandomSparse, n); err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				keep := p == probMax
				if cfg.rng != nil && p > probMin && p < probMax {
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err := addEdge(g, cfg, methodRandomSparse, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
