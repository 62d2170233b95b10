package main

import (
	"bytes"
	"context"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/segpath/core"
	"github.com/katalvlaran/segpath/internal/config"
	"github.com/katalvlaran/segpath/server"
)

func TestGenerate_GridRoundTrip(t *testing.T) {
	var req bytes.Buffer
	require.NoError(t, generate(&req, genFlags{kind: kindGrid, cols: 3, rows: 2, seed: 1}, nil))

	parsed, err := readRequest(bytes.NewReader(req.Bytes()))
	require.NoError(t, err)
	assert.Len(t, parsed.Edges, 7)
	assert.Equal(t, core.Point{X: 2, Y: 1}, parsed.Goal)

	var out bytes.Buffer
	require.NoError(t, solve(bytes.NewReader(req.Bytes()), &out, solveFlags{verify: true}))
	assert.JSONEq(t, `{"Movement": [[0,0],[1,0],[2,0],[2,1]]}`, out.String())
}

func TestGenerate_Kinds(t *testing.T) {
	cases := []struct {
		name string
		f    genFlags
		maze []string
	}{
		{"Lattice", genFlags{kind: kindLattice, cols: 6, rows: 6, seed: 3, keep: 0.8}, nil},
		{"Comb", genFlags{kind: kindComb, cols: 3, rows: 2, seed: 1}, nil},
		{"Maze", genFlags{kind: kindMaze, seed: 1}, []string{"..#", "...", "#.."}},
		{"Shuffled", genFlags{kind: kindGrid, cols: 4, rows: 4, seed: 9, shuffle: true}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var req bytes.Buffer
			require.NoError(t, generate(&req, tc.f, tc.maze))

			var out bytes.Buffer
			require.NoError(t, solve(bytes.NewReader(req.Bytes()), &out, solveFlags{verify: true}))
			assert.Contains(t, out.String(), "Movement")
		})
	}
}

func TestGenerate_Errors(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, generate(&buf, genFlags{kind: "spiral"}, nil))
	assert.Error(t, generate(&buf, genFlags{kind: kindGrid, cols: 0, rows: 2}, nil))
	assert.Error(t, generate(&buf, genFlags{kind: kindMaze}, []string{"..", "."}))
}

func TestSolve_FailureShapes(t *testing.T) {
	var out bytes.Buffer
	err := solve(strings.NewReader(`{"start_node":{"x":0,"y":0},"goal_node":{"x":9,"y":9},
		"available_path":[{"x1":0,"y1":0,"x2":1,"y2":0}]}`), &out, solveFlags{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"Movement": {"error": "Start or goal node is not part of the graph."}}`, out.String())

	out.Reset()
	err = solve(strings.NewReader(`{"start_node":{"x":0,"y":0},"goal_node":{"x":2,"y":0},
		"available_path":[{"x1":0,"y1":0,"x2":1,"y2":0},{"x1":2,"y1":0,"x2":3,"y2":0}]}`), &out, solveFlags{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"Movement": {"error": "No path found between the nodes."}}`, out.String())
}

func TestSolve_SnapAndGeoJSON(t *testing.T) {
	var out bytes.Buffer
	err := solve(strings.NewReader(`{"start_node":{"x":-4,"y":0},"goal_node":{"x":1,"y":0},
		"available_path":[{"x1":0,"y1":0,"x2":1,"y2":0}]}`), &out, solveFlags{snap: true, geojson: true})
	require.NoError(t, err)
	assert.Contains(t, out.String(), `"FeatureCollection"`)
	assert.Contains(t, out.String(), `"LineString"`)
}

func TestSolve_VerifyDetectsOverestimate(t *testing.T) {
	// Long segments let Manhattan overestimate, so A* returns 3 hops where 2 exist.
	req := `{"start_node":{"x":0,"y":0},"goal_node":{"x":3,"y":0},"available_path":[
		{"x1":0,"y1":0,"x2":1,"y2":0},{"x1":1,"y1":0,"x2":2,"y2":0},{"x1":2,"y1":0,"x2":3,"y2":0},
		{"x1":0,"y1":0,"x2":10,"y2":10},{"x1":10,"y1":10,"x2":3,"y2":0}]}`
	var out bytes.Buffer
	err := solve(strings.NewReader(req), &out, solveFlags{verify: true})
	assert.ErrorIs(t, err, errNotOptimal)
}

func TestSolve_BadInput(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, solve(strings.NewReader(`{`), &out, solveFlags{}))
	assert.Error(t, solve(strings.NewReader(`{"start_node":{"x":0,"y":0}}`), &out, solveFlags{}))
	assert.Error(t, solve(strings.NewReader(`{"start_node":{"x":0,"y":0},"goal_node":{"x":0,"y":0},"available_path":[]}`),
		&out, solveFlags{policy: "greedy"}))
}

func TestSolve_RejectsIncompleteNodes(t *testing.T) {
	var out bytes.Buffer
	err := solve(strings.NewReader(`{"start_node":{},"goal_node":{"x":1,"y":0},
		"available_path":[{"x1":0,"y1":0,"x2":1,"y2":0}]}`), &out, solveFlags{})
	assert.ErrorIs(t, err, server.ErrMissingField)
	assert.Empty(t, out.String())
}

func TestRootCmd_Dispatch(t *testing.T) {
	ctx := context.Background()

	err := rootCmd().Dispatch(ctx, []string{"solve", "-in", filepath.Join(t.TempDir(), "missing.json")})
	assert.ErrorIs(t, err, fs.ErrNotExist)

	err = rootCmd().Dispatch(ctx, []string{"gen", "-kind", "spiral"})
	assert.ErrorContains(t, err, "spiral")
}

func TestServeFlags_Apply(t *testing.T) {
	cfg := serveFlags{addr: ":9999", policy: "frontier-scan", snap: true}.apply(config.Default())
	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, "frontier-scan", cfg.RelaxPolicy)
	assert.True(t, cfg.Snap)

	assert.Equal(t, config.Default(), serveFlags{}.apply(config.Default()))
}

