// Package segpath plans shortest routes over graphs given as flat lists of
// line segments with integer endpoints.
//
// There is no graph to load or maintain: every request carries its segments,
// the graph is derived from them, searched, and thrown away.
//
//	(0,0)───(1,0)
//	          │
//	        (1,1)───(2,1)
//
//	path, err := astar.FindPath(
//		core.Point{X: 0, Y: 0}, core.Point{X: 2, Y: 1},
//		[]core.Edge{{0, 0, 1, 0}, {1, 0, 1, 1}, {1, 1, 2, 1}},
//	)
//	//            path = [(0,0) (1,0) (1,1) (2,1)]
//
// Packages:
//
//	core/         Point, Edge, Adjacency (the Graph Builder)
//	astar/        fewest-hop search with a Manhattan heuristic
//	bfs/          breadth-first traversal, hop distances, components
//	builder/      deterministic segment generators (grid, lattice, comb, polyline)
//	gridgraph/    cell grids and ASCII mazes as segment lists
//	spatial/      R-tree vertex index and endpoint snapping
//	geo/          GeoJSON export
//	converters/   gonum/graph adapters
//	server/       HTTP service (POST /astar/)
//	cmd/segpath/  serve, solve and gen commands
//
// Errors are sentinel values per package, wrapped with context and matched
// with errors.Is. Library packages never log.
package segpath
