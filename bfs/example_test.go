package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/segpath/bfs"
	"github.com/katalvlaran/segpath/core"
)

// ExampleBFS walks a 3-vertex corridor and prints each layer.
func ExampleBFS() {
	adj := core.BuildAdjacency([]core.Edge{
		{X1: 0, Y1: 0, X2: 0, Y2: 1},
		{X1: 0, Y1: 1, X2: 0, Y2: 2},
	})

	res, err := bfs.BFS(adj, core.Point{X: 0, Y: 0})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, p := range res.Order {
		fmt.Println(p, res.Depth[p])
	}

	// Output:
	// (0,0) 0
	// (0,1) 1
	// (0,2) 2
}
