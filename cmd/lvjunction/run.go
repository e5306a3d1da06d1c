package main

import (
	"fmt"

	pkgerrors "github.com/pkg/errors"

	"github.com/katalvlaran/lvjunction/builder"
	"github.com/katalvlaran/lvjunction/core"
	"github.com/katalvlaran/lvjunction/elimination"
	"github.com/katalvlaran/lvjunction/junctiontree"
	"github.com/katalvlaran/lvjunction/schedule"
	"github.com/katalvlaran/lvjunction/triangulation"
)

type config struct {
	graph                string
	n                    int
	p                    float64
	seed                 int64
	minDomain, maxDomain int
	strategy             string
	method               string
	workers              int
}

func (c config) constructor() (builder.Constructor, error) {
	switch c.graph {
	case "grid":
		return builder.Grid(c.n, c.n), nil
	case "wheel":
		return builder.Wheel(c.n), nil
	case "cycle":
		return builder.Cycle(c.n), nil
	case "random":
		return builder.RandomSparse(c.n, c.p), nil
	default:
		return nil, fmt.Errorf("unknown graph %q", c.graph)
	}
}

func (c config) elimination(g *core.Graph) (elimination.Strategy, error) {
	switch c.strategy {
	case "heuristic":
		return elimination.NewHeuristic(), nil
	case "ordered":
		return elimination.NewOrdered(g.Nodes()), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", c.strategy)
	}
}

func (c config) junctionMethod() (junctiontree.Method, error) {
	switch c.method {
	case "merge":
		return junctiontree.MethodMerge, nil
	case "spanning":
		return junctiontree.MethodSpanning, nil
	default:
		return 0, fmt.Errorf("unknown method %q", c.method)
	}
}

func run(c config) error {
	// 1) Input graph and domains.
	ctor, err := c.constructor()
	if err != nil {
		return err
	}
	bopts := []builder.BuilderOption{builder.WithSeed(c.seed)}
	g, err := builder.BuildGraph(bopts, ctor)
	if err != nil {
		return pkgerrors.Wrap(err, "build graph")
	}
	domains, err := builder.RandomDomains(g, c.minDomain, c.maxDomain, bopts...)
	if err != nil {
		return pkgerrors.Wrap(err, "domains")
	}
	fmt.Printf("graph %s: %d nodes, %d edges\n", c.graph, g.NodeCount(), g.EdgeCount())

	// 2) Triangulation.
	strategy, err := c.elimination(g)
	if err != nil {
		return err
	}
	tr, err := triangulation.New(g, domains, strategy)
	if err != nil {
		return err
	}
	fills, err := tr.FillIns()
	if err != nil {
		return pkgerrors.Wrap(err, "triangulate")
	}
	width, _ := tr.MaxLog10CliqueDomainProduct()
	fmt.Printf("%s elimination: %d fill-ins, max log10 clique size %.2f\n", strategy.Kind(), len(fills), width)

	// 3) Junction tree.
	method, err := c.junctionMethod()
	if err != nil {
		return err
	}
	jt, err := junctiontree.NewFrom(tr, junctiontree.WithMethod(method)).JunctionTree()
	if err != nil {
		return err
	}
	if err = jt.CheckRunningIntersection(); err != nil {
		return err
	}
	fmt.Printf("junction tree (%s): %d cliques, %d edges\n", method, jt.CliqueCount(), jt.EdgeCount())

	// 4) Collect pass as a schedule.
	s, roots, err := collect(jt, domains)
	if err != nil {
		return pkgerrors.Wrap(err, "collect schedule")
	}
	nb, err := s.NbOperations()
	if err != nil {
		return err
	}
	mem, err := s.MemoryUsage()
	if err != nil {
		return err
	}
	fmt.Printf("schedule: %d operations, %d elementary ops, peak %d, resident %d\n", s.Len(), nb, mem.Peak, mem.Resident)

	var drained bool
	if c.workers == 1 {
		drained, err = schedule.Sequential[float64]{MaxMemory: s.Resident() + mem.Peak}.Execute(s)
	} else {
		drained, err = schedule.Parallel[float64]{Workers: c.workers}.Execute(s)
	}
	if err != nil {
		return pkgerrors.Wrap(err, "run schedule")
	}
	fmt.Printf("drained=%t resident=%d\n", drained, s.Resident())
	for _, r := range roots {
		v, ok := r.table.Value()
		if !ok {
			return pkgerrors.Errorf("root clique %d was not computed", r.clique)
		}
		fmt.Printf("  root clique %d collected %.0f cliques\n", r.clique, v)
	}

	return nil
}
