// Command lvjunction triangulates a generated graph, builds its junction tree
// and runs a collect pass over it as a schedule of table operations.
//
// Usage:
//
//	lvjunction -graph grid -n 6 -strategy heuristic -method merge -v 2
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/plan-systems/klog"
)

func main() {
	fset := flag.NewFlagSet("lvjunction", flag.ExitOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	var cfg config
	fset.StringVar(&cfg.graph, "graph", "grid", "generator: grid, wheel, cycle, random")
	fset.IntVar(&cfg.n, "n", 6, "generator size (grid side, node count otherwise)")
	fset.Float64Var(&cfg.p, "p", 0.1, "edge probability for -graph random")
	fset.Int64Var(&cfg.seed, "seed", 1, "random seed")
	fset.IntVar(&cfg.minDomain, "min-domain", 2, "smallest domain size")
	fset.IntVar(&cfg.maxDomain, "max-domain", 4, "largest domain size")
	fset.StringVar(&cfg.strategy, "strategy", "heuristic", "elimination strategy: heuristic, ordered")
	fset.StringVar(&cfg.method, "method", "merge", "junction tree method: merge, spanning")
	fset.IntVar(&cfg.workers, "workers", 0, "scheduler workers: 1 runs sequentially under the estimated peak, 0 means NumCPU")
	fset.Parse(os.Args[1:])

	err := run(cfg)
	klog.Flush()
	if err != nil {
		fmt.Fprintln(os.Stderr, "lvjunction:", err)
		os.Exit(1)
	}
}
