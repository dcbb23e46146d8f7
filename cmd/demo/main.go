// Command demo runs a single FindPath call over a small all-passable grid
// and prints the resulting jump-point path, mirroring original_source/
// main.cpp's hard-coded 2x2x2 demonstration grid. It is illustrative only;
// the core package has no CLI dependency.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	jps3d "github.com/AslanMussinov/JPS-3D"
)

func main() {
	var (
		dimX   = flag.Int("x", 2, "grid size along x")
		dimY   = flag.Int("y", 2, "grid size along y")
		dimZ   = flag.Int("z", 2, "grid size along z")
		policy = flag.String("policy", "always", "diagonal policy: always, at-least-one, all, never")
		skip   = flag.Int("skip", 1, "traversal stride")
	)
	flag.Parse()

	logger := log.New(os.Stdout, "[jps-demo] ", log.LstdFlags|log.Lmicroseconds)

	p, err := parsePolicy(*policy)
	if err != nil {
		logger.Fatal(err)
	}

	grid := jps3d.NewArrayGrid(int32(*dimX), int32(*dimY), int32(*dimZ))

	searcher, err := jps3d.NewSearcher(grid, p, jps3d.WithLogger(logger))
	if err != nil {
		logger.Fatal(err)
	}
	searcher.SetSkip(int32(*skip))

	start := jps3d.Position{X: 0, Y: 0, Z: 0}
	finish := jps3d.Position{X: int32(*dimX) - 1, Y: int32(*dimY) - 1, Z: int32(*dimZ) - 1}

	path := searcher.FindPath(context.Background(), start, finish)
	if path == nil {
		fmt.Println("no path found")
		return
	}
	for _, pos := range path {
		fmt.Println(pos.String())
	}

	stats := searcher.Stats()
	logger.Printf("nodes generated=%d expanded=%d jump steps=%d", stats.NodesGenerated, stats.NodesExpanded, stats.JumpSteps)
}

func parsePolicy(s string) (jps3d.DiagonalPolicy, error) {
	switch s {
	case "always":
		return jps3d.Always, nil
	case "at-least-one":
		return jps3d.AtLeastOnePassable, nil
	case "all":
		return jps3d.AllPassable, nil
	case "never":
		return jps3d.Never, nil
	default:
		return 0, fmt.Errorf("unknown diagonal policy %q", s)
	}
}
