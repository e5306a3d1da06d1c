// SPDX-License-Identifier: MIT
// File: classify.go
// Role: Per-node classification and tree bookkeeping.

package simplicial

import (
	"github.com/katalvlaran/lvjunction/core"
)

// update recomputes the classification of n and moves it between trees.
//
// Implementation:
//   - Stage 1: Sum the node and neighbour weights into the clique weight.
//   - Stage 2: Count missing neighbour pairs; zero means simplicial.
//   - Stage 3: Otherwise test the almost shape (one neighbour touches every
//     missing pair) and then the quasi ratio, both under the weight bound.
//     A node with the shape but over the bound goes to the expensive tree.
func (a *Analyzer) update(n core.NodeID) {
	a.drop(n)
	nbrs, err := a.g.Neighbors(n)
	if err != nil {
		return
	}

	weight := a.weights[n]
	for _, nb := range nbrs {
		weight += a.weights[nb]
	}
	missing := a.g.MissingEdges(nbrs)

	st := nodeState{Info: Info{Class: None, CliqueWeight: weight, MissingEdges: len(missing)}}
	switch {
	case len(missing) == 0:
		st.Class = Simplicial
	case almostShape(missing):
		st.structural = true
		if a.withinBound(weight) {
			st.Class = AlmostSimplicial
		}
	case a.quasiShape(len(nbrs), len(missing)):
		st.structural = true
		if a.withinBound(weight) {
			st.Class = QuasiSimplicial
		}
	}
	a.insert(n, st)
}

// almostShape reports whether a single neighbour is an endpoint of every
// missing pair, i.e. removing it leaves a clique.
func almostShape(missing []core.Edge) bool {
	if len(missing) == 0 {
		return false
	}
	first := missing[0]
	for _, cand := range []core.NodeID{first.U, first.V} {
		all := true
		for _, e := range missing[1:] {
			if e.U != cand && e.V != cand {
				all = false
				break
			}
		}
		if all {
			return true
		}
	}

	return false
}

func (a *Analyzer) quasiShape(deg, missing int) bool {
	pairs := deg * (deg - 1) / 2
	if pairs == 0 {
		return false
	}

	return float64(pairs-missing)/float64(pairs) >= a.cfg.quasiRatio
}

func (a *Analyzer) withinBound(weight float64) bool {
	return weight <= a.logTreeWidth+a.cfg.logThreshold+weightEpsilon
}

func (a *Analyzer) insert(n core.NodeID, st nodeState) {
	k := key{weight: st.CliqueWeight, id: n}
	a.state[n] = st
	a.all.Put(k, n)
	switch st.Class {
	case Simplicial:
		a.simp.Put(k, n)
	case AlmostSimplicial:
		a.almost.Put(k, n)
	case QuasiSimplicial:
		a.quasi.Put(k, n)
	default:
		if st.structural {
			a.expensive.Put(k, n)
		}
	}
}

// drop removes n from every tree.
func (a *Analyzer) drop(n core.NodeID) {
	st, ok := a.state[n]
	if !ok {
		return
	}
	k := key{weight: st.CliqueWeight, id: n}
	a.all.Remove(k)
	a.simp.Remove(k)
	a.almost.Remove(k)
	a.quasi.Remove(k)
	a.expensive.Remove(k)
	delete(a.state, n)
}

// promote reclassifies the expensive nodes the current bound now admits.
// The expensive tree is ordered by weight, so the scan stops at the first
// node still over the bound.
func (a *Analyzer) promote() {
	var ready []core.NodeID
	it := a.expensive.Iterator()
	for it.Next() {
		k := it.Key().(key)
		if !a.withinBound(k.weight) {
			break
		}
		ready = append(ready, k.id)
	}
	for _, n := range ready {
		a.update(n)
	}
}
