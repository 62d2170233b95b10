// Package core defines the vertex and edge primitives of segpath and the
// Graph Builder that turns a flat list of segments into an adjacency map.
//
// The graph is never stored on its own: callers hand over a list of undirected
// segments with integer endpoints, and BuildAdjacency derives the graph from it.
//
//	(0,0)───(1,0)
//	          │
//	        (1,1)───(2,1)
//
//	edges := []core.Edge{{0, 0, 1, 0}, {1, 0, 1, 1}, {1, 1, 2, 1}}
//	adj := core.BuildAdjacency(edges)
//	adj.Neighbors(core.Point{X: 1, Y: 0}) // [(0,0) (1,1)]
//
// Guarantees:
//
//   - Symmetry: if A is listed as a neighbor of B, then B is listed as a neighbor of A.
//   - Insertion order: neighbor lists follow the order of the input edges.
//   - No validation: duplicate edges produce duplicate neighbor entries and a
//     self-loop lists its vertex as its own neighbor. Searches stay correct because
//     they never expand a vertex twice.
//   - Purity: BuildAdjacency has no side effects beyond the returned map.
//
// Determinism:
//
//	Vertices() sorts by X, then Y. Neighbors() preserves insertion order.
//	The same edge sequence always produces the same Adjacency.
//
// Complexity:
//
//   - BuildAdjacency: O(E) time, O(V + E) memory.
//   - Vertices:       O(V log V).
//
// Concurrency:
//
//	An Adjacency is a plain map owned by one invocation. Concurrent readers are
//	safe; concurrent writers are not, and nothing in segpath shares one.
package core
