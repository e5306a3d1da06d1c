// SPDX-License-Identifier: MIT
// Package: lvjunction/builder
//
// errors.go - sentinel errors for the builder package.
// Callers branch with errors.Is; constructors attach context with Wrapf.

package builder

import "errors"

// ErrTooFewNodes indicates a size parameter below the constructor minimum.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG
// (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a construction that could not proceed,
// e.g. a nil Constructor passed to BuildGraph.
var ErrConstructFailed = errors.New("builder: construction failed")
