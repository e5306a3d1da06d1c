package main

import (
	"fmt"

	"github.com/katalvlaran/lvjunction/cliquegraph"
	"github.com/katalvlaran/lvjunction/core"
	"github.com/katalvlaran/lvjunction/schedule"
)

// root is the final table of one junction-tree component.
type root struct {
	clique core.NodeID
	table  *schedule.MultiDim[float64]
}

// Every clique table starts at 1 and combination adds, so a root's value
// counts the cliques of its component.
func count(a, b float64) (float64, error) { return a + b, nil }

func keep(t float64, _ []schedule.Variable) (float64, error) { return t, nil }

func variable(n core.NodeID, domains core.DomainSizes) schedule.Variable {
	return schedule.Variable{Name: fmt.Sprintf("x%d", n), Size: domains[n]}
}

// collect schedules a leaves-to-root pass over every tree of jt, each rooted
// at its lowest clique id. A child's table is projected onto the separator
// with its parent and combined into the parent's table; superseded tables
// are deleted.
func collect(jt *cliquegraph.Graph, domains core.DomainSizes) (*schedule.Schedule[float64], []root, error) {
	s := schedule.New[float64]()
	tables := make(map[core.NodeID]*schedule.MultiDim[float64], jt.CliqueCount())
	for _, id := range jt.Cliques() {
		members, _ := jt.Clique(id)
		vars := make([]schedule.Variable, len(members))
		for i, n := range members {
			vars[i] = variable(n, domains)
		}
		t, err := schedule.NewMaterialized(1.0, vars...)
		if err != nil {
			return nil, nil, err
		}
		if _, err = s.InsertPlaceholder(t); err != nil {
			return nil, nil, err
		}
		tables[id] = t
	}

	var roots []root
	seen := make(map[core.NodeID]bool, jt.CliqueCount())
	for _, id := range jt.Cliques() {
		if seen[id] {
			continue
		}
		if err := absorb(s, jt, tables, seen, id, id); err != nil {
			return nil, nil, err
		}
		roots = append(roots, root{clique: id, table: tables[id]})
	}

	return s, roots, nil
}

// absorb schedules the subtree of c, entered from parent, bottom-up and
// then sends c's message to parent. c == parent marks a root.
func absorb(s *schedule.Schedule[float64], jt *cliquegraph.Graph,
	tables map[core.NodeID]*schedule.MultiDim[float64], seen map[core.NodeID]bool, c, parent core.NodeID) error {
	seen[c] = true
	nbrs, _ := jt.Neighbors(c)
	for _, child := range nbrs {
		if seen[child] {
			continue
		}
		if err := absorb(s, jt, tables, seen, child, c); err != nil {
			return err
		}
	}
	if c == parent {
		return nil
	}

	members, _ := jt.Clique(c)
	var removed []string
	for _, n := range members {
		if !jt.Contains(parent, n) {
			removed = append(removed, fmt.Sprintf("x%d", n))
		}
	}
	msg := tables[c]
	if len(removed) > 0 {
		proj, err := schedule.NewProjection(msg, removed, keep)
		if err != nil {
			return err
		}
		if err = insert(s, proj, msg); err != nil {
			return err
		}
		msg = proj.Result()
	}

	joint, err := schedule.NewCombination(tables[parent], msg, count)
	if err != nil {
		return err
	}
	if err = insert(s, joint, tables[parent], msg); err != nil {
		return err
	}
	tables[parent] = joint.Result()

	return nil
}

// insert adds op followed by the deletion of each table in drop.
func insert(s *schedule.Schedule[float64], op schedule.Operation[float64], drop ...*schedule.MultiDim[float64]) error {
	if _, err := s.InsertOperation(op); err != nil {
		return err
	}
	for _, t := range drop {
		del, err := schedule.NewDeletion(t)
		if err != nil {
			return err
		}
		if _, err = s.InsertOperation(del); err != nil {
			return err
		}
	}

	return nil
}
