// SPDX-License-Identifier: MIT
// File: options.go
// Role: functional options shared by the analyzer-backed strategies.

package elimination

import (
	"github.com/katalvlaran/lvjunction/simplicial"
)

// HeuristicOption configures Heuristic and PartialOrdered.
type HeuristicOption func(*heuristicConfig)

type heuristicConfig struct {
	fillIns  bool
	analyzer []simplicial.Option
}

func newHeuristicConfig(opts []HeuristicOption) heuristicConfig {
	var cfg heuristicConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func (c heuristicConfig) analyzerOptions() []simplicial.Option {
	out := append([]simplicial.Option(nil), c.analyzer...)
	if c.fillIns {
		out = append(out, simplicial.WithFillInTracking())
	}

	return out
}

// WithFillIns makes the strategy record and provide fill-in edges.
func WithFillIns() HeuristicOption {
	return func(c *heuristicConfig) { c.fillIns = true }
}

// WithQuasiRatio forwards simplicial.WithQuasiRatio.
func WithQuasiRatio(r float64) HeuristicOption {
	opt := simplicial.WithQuasiRatio(r)

	return func(c *heuristicConfig) { c.analyzer = append(c.analyzer, opt) }
}

// WithLogThreshold forwards simplicial.WithLogThreshold.
func WithLogThreshold(t float64) HeuristicOption {
	opt := simplicial.WithLogThreshold(t)

	return func(c *heuristicConfig) { c.analyzer = append(c.analyzer, opt) }
}
