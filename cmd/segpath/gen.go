package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gonuts/commander"

	"github.com/katalvlaran/segpath/builder"
	"github.com/katalvlaran/segpath/core"
	"github.com/katalvlaran/segpath/gridgraph"
	"github.com/katalvlaran/segpath/server"
)

// Generator kinds.
const (
	kindGrid    = "grid"
	kindLattice = "lattice"
	kindComb    = "comb"
	kindMaze    = "maze"
)

type genFlags struct {
	kind    string
	cols    int
	rows    int
	seed    int64
	keep    float64
	shuffle bool
	maze    string
}

func GenCmd() *commander.Command {
	var f genFlags
	cmd := &commander.Command{
		UsageLine: "gen -kind grid|lattice|comb|maze [options]",
		Short:     "writes a request JSON for a generated segment set",
		Long: `
writes a POST /astar/ body for a generated graph

	$ segpath gen -kind grid -cols 5 -rows 5
	$ segpath gen -kind lattice -cols 20 -rows 20 -seed 7 -keep 0.6
	$ segpath gen -kind comb -cols 6 -rows 4
	$ segpath gen -kind maze -maze maze.txt

grid and lattice route (0,0) to (cols-1,rows-1); comb routes (0,0) to the tip of
the last tooth; maze ('#' = wall) routes the first open cell to the last one.

`,
		Flag: *flag.NewFlagSet("gen", flag.ExitOnError),
		Run: func(cmd *commander.Command, args []string) error {
			var lines []string
			if f.kind == kindMaze {
				var err error
				if lines, err = readLines(f.maze); err != nil {
					return err
				}
			}

			return generate(os.Stdout, f, lines)
		},
	}
	cmd.Flag.StringVar(&f.kind, "kind", kindGrid, "generator: grid | lattice | comb | maze")
	cmd.Flag.IntVar(&f.cols, "cols", 5, "columns (comb: teeth)")
	cmd.Flag.IntVar(&f.rows, "rows", 5, "rows (comb: tooth length)")
	cmd.Flag.Int64Var(&f.seed, "seed", 1, "random seed")
	cmd.Flag.Float64Var(&f.keep, "keep", 0.7, "lattice: probability of keeping each edge")
	cmd.Flag.BoolVar(&f.shuffle, "shuffle", false, "shuffle the edge order")
	cmd.Flag.StringVar(&f.maze, "maze", "", "maze: ASCII file, '#' marks walls")

	return cmd
}

func readLines(name string) ([]string, error) {
	if name == "" {
		return nil, fmt.Errorf("segpath: -kind %s needs -maze", kindMaze)
	}
	fh, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	var lines []string
	sc := bufio.NewScanner(fh)
	for sc.Scan() {
		if line := sc.Text(); line != "" {
			lines = append(lines, line)
		}
	}

	return lines, sc.Err()
}

// generate writes the request for f. maze is only read for kindMaze.
func generate(w io.Writer, f genFlags, maze []string) error {
	opts := []builder.Option{builder.WithSeed(f.seed)}
	if f.shuffle {
		opts = append(opts, builder.WithShuffle())
	}

	var (
		edges       []core.Edge
		start, goal core.Point
		err         error
	)
	switch f.kind {
	case kindGrid:
		edges, err = builder.Build(opts, builder.Grid(f.cols, f.rows))
		goal = core.Point{X: f.cols - 1, Y: f.rows - 1}
	case kindLattice:
		edges, err = builder.Build(opts, builder.RandomLattice(f.cols, f.rows, f.keep))
		goal = core.Point{X: f.cols - 1, Y: f.rows - 1}
	case kindComb:
		edges, err = builder.Build(opts, builder.Comb(f.cols, f.rows))
		goal = core.Point{X: 2 * (f.cols - 1), Y: f.rows}
	case kindMaze:
		var gg *gridgraph.GridGraph
		if gg, err = gridgraph.ParseASCII(maze); err == nil {
			edges = gg.Edges()
			if vs := core.BuildAdjacency(edges).Vertices(); len(vs) > 0 {
				start, goal = vs[0], vs[len(vs)-1]
			}
		}
	default:
		return fmt.Errorf("segpath: unknown -kind %q", f.kind)
	}
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(server.NewPathRequest(start, goal, edges))
}
