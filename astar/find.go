package astar

import "github.com/katalvlaran/segpath/core"

// FindPath builds the adjacency for edges and searches it for a path from start to goal.
// The graph is rebuilt on every call; nothing is cached between calls.
//
// It returns the path from start to goal inclusive, or an error matching
// ErrNodeNotInGraph or ErrNoPathFound (see Search for the full list).
func FindPath(start, goal core.Point, edges []core.Edge, opts ...Option) ([]core.Point, error) {
	res, err := Search(core.BuildAdjacency(edges), start, goal, opts...)
	if err != nil {
		return nil, err
	}

	return res.Path, nil
}
