// SPDX-License-Identifier: MIT
// File: options.go
// Role: Tuning constants and functional options for Analyzer.

package simplicial

// Default tuning, matching the usual junction-tree heuristics.
const (
	// DefaultQuasiRatio is the minimum fraction of adjacent neighbour pairs
	// for a node to count as quasi simplicial.
	DefaultQuasiRatio = 0.99

	// DefaultLogThreshold is the slack, in log space, allowed above the
	// current log tree width for almost/quasi simplicial nodes.
	DefaultLogThreshold = 0.0
)

// weightEpsilon absorbs rounding when comparing sums of logs.
const weightEpsilon = 1e-9

// Option configures an Analyzer.
type Option func(*config)

type config struct {
	quasiRatio   float64
	logThreshold float64
	trackFillIns bool
}

func defaultConfig() config {
	return config{quasiRatio: DefaultQuasiRatio, logThreshold: DefaultLogThreshold}
}

// WithQuasiRatio sets the quasi-simplicial adjacency ratio, in (0, 1].
// Panics outside that range.
func WithQuasiRatio(r float64) Option {
	if r <= 0 || r > 1 {
		panic("simplicial: WithQuasiRatio(r) requires 0 < r <= 1")
	}

	return func(c *config) { c.quasiRatio = r }
}

// WithLogThreshold sets the log-space slack over the log tree width.
// Panics on a negative value.
func WithLogThreshold(t float64) Option {
	if t < 0 {
		panic("simplicial: WithLogThreshold(t<0)")
	}

	return func(c *config) { c.logThreshold = t }
}

// WithFillInTracking records every edge added by MakeClique.
func WithFillInTracking() Option {
	return func(c *config) { c.trackFillIns = true }
}
