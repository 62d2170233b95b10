package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gonuts/commander"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/segpath/astar"
	"github.com/katalvlaran/segpath/bfs"
	"github.com/katalvlaran/segpath/converters"
	"github.com/katalvlaran/segpath/core"
	"github.com/katalvlaran/segpath/geo"
	"github.com/katalvlaran/segpath/server"
	"github.com/katalvlaran/segpath/spatial"
)

// errNotOptimal is returned by -verify when A* is longer than the gonum reference.
var errNotOptimal = errors.New("segpath: path is longer than the reference shortest path")

type solveFlags struct {
	in      string
	policy  string
	snap    bool
	geojson bool
	verify  bool
}

func SolveCmd() *commander.Command {
	var f solveFlags
	cmd := &commander.Command{
		UsageLine: "solve [-in file] [-policy name] [-snap] [-geojson] [-verify]",
		Short:     "plans one request read from a file or stdin",
		Long: `
plans one POST /astar/ body and prints the response

	$ segpath solve -in req.json
	$ segpath gen -kind comb -cols 4 -rows 3 | segpath solve -verify

`,
		Flag: *flag.NewFlagSet("solve", flag.ExitOnError),
		Run: func(cmd *commander.Command, args []string) error {
			in := io.Reader(os.Stdin)
			if f.in != "" && f.in != "-" {
				fh, err := os.Open(f.in)
				if err != nil {
					return err
				}
				defer fh.Close()
				in = fh
			}

			return solve(in, os.Stdout, f)
		},
	}
	cmd.Flag.StringVar(&f.in, "in", "", "request JSON file (default stdin)")
	cmd.Flag.StringVar(&f.policy, "policy", "", "relax policy: best-cost | frontier-scan")
	cmd.Flag.BoolVar(&f.snap, "snap", false, "snap unknown endpoints to the nearest vertex")
	cmd.Flag.BoolVar(&f.geojson, "geojson", false, "print a GeoJSON FeatureCollection instead of Movement")
	cmd.Flag.BoolVar(&f.verify, "verify", false, "check the hop count against gonum and breadth-first search")

	return cmd
}

func readRequest(r io.Reader) (*server.Query, error) {
	var req server.PathRequest
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return nil, fmt.Errorf("segpath: decode request: %w", err)
	}

	return req.Query()
}

// solve writes the response for the request in r. Planning failures are printed
// in the Movement error shape and are not errors; -verify mismatches are.
func solve(r io.Reader, w io.Writer, f solveFlags) error {
	req, err := readRequest(r)
	if err != nil {
		return err
	}
	policy, err := astar.ParseRelaxPolicy(f.policy)
	if err != nil {
		return err
	}

	edges := req.Edges
	adj := core.BuildAdjacency(edges)
	start, goal := req.Start, req.Goal
	if f.snap || (req.Snap != nil && *req.Snap) {
		idx := spatial.NewVertexIndex(adj)
		if p, ok := spatial.Snap(adj, idx, start); ok {
			start = p
		}
		if p, ok := spatial.Snap(adj, idx, goal); ok {
			goal = p
		}
	}

	enc := json.NewEncoder(w)
	res, err := astar.Search(adj, start, goal, astar.WithRelaxPolicy(policy))
	switch {
	case errors.Is(err, astar.ErrNodeNotInGraph):
		return enc.Encode(server.PathResponse{Movement: server.ErrorBody{Error: server.MsgNodeNotInGraph}})
	case errors.Is(err, astar.ErrNoPathFound):
		return enc.Encode(server.PathResponse{Movement: server.ErrorBody{Error: server.MsgNoPathFound}})
	case err != nil:
		return err
	}

	if f.geojson {
		err = enc.Encode(geo.Collection(res.Path, edges))
	} else {
		err = enc.Encode(server.PathResponse{Movement: server.Movement(res.Path)})
	}
	if err != nil {
		return err
	}

	if f.verify {
		best, err := referenceHops(adj, start, goal)
		if err != nil {
			return err
		}
		exact, err := bfs.ShortestHops(adj, start, goal)
		if err != nil {
			return err
		}
		if best != exact {
			return fmt.Errorf("segpath: reference searches disagree: gonum %d, bfs %d", best, exact)
		}
		if res.Hops > best {
			return fmt.Errorf("%w: %d hops, reference %d", errNotOptimal, res.Hops, best)
		}
		newLogger().Printf("verify: %d hops, %d expanded, optimal", res.Hops, res.Expanded)
	}

	return nil
}

// referenceHops runs gonum's A* with no heuristic (uniform-cost search) on the same graph.
func referenceHops(adj core.Adjacency, start, goal core.Point) (int, error) {
	g, ids := converters.ToGonum(adj)
	sp, _ := path.AStar(simple.Node(ids[start]), simple.Node(ids[goal]), g, nil)
	nodes, _ := sp.To(ids[goal])
	if len(nodes) == 0 {
		return 0, fmt.Errorf("segpath: reference search found no path %s -> %s", start, goal)
	}

	return len(nodes) - 1, nil
}
