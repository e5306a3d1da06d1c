// File: domains.go
// Role: domain-size maps paired with a Graph and their log weights.

package core

import (
	"math"

	"github.com/pkg/errors"
)

// DomainSizes maps each node to the number of values its variable can take.
type DomainSizes map[NodeID]int

// Validate checks that ds covers every node of g with a positive size.
// Extra entries for nodes outside g are tolerated.
//
// Errors:
//   - ErrDomainMismatch (wrapped with the offending node).
func (ds DomainSizes) Validate(g *Graph) error {
	for _, n := range g.Nodes() {
		size, ok := ds[n]
		if !ok {
			return errors.Wrapf(ErrDomainMismatch, "node %d has no domain size", n)
		}
		if size <= 0 {
			return errors.Wrapf(ErrDomainMismatch, "node %d has domain size %d", n, size)
		}
	}

	return nil
}

// LogWeights returns log(size) for every entry of ds.
// The log weight of a clique is the sum of its members' log weights, which
// keeps clique "sizes" comparable without overflowing a product.
func (ds DomainSizes) LogWeights() map[NodeID]float64 {
	out := make(map[NodeID]float64, len(ds))
	for n, size := range ds {
		out[n] = math.Log(float64(size))
	}

	return out
}

// Clone returns an independent copy of ds.
func (ds DomainSizes) Clone() DomainSizes {
	out := make(DomainSizes, len(ds))
	for n, size := range ds {
		out[n] = size
	}

	return out
}
