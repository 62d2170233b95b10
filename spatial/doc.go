// Package spatial indexes the vertices of a core.Adjacency in an R-tree so that
// arbitrary coordinates can be resolved to graph vertices.
//
// What:
//
//   - VertexIndex stores every vertex as a tiny rectangle in a 2-D rtreego tree.
//   - Nearest returns the vertex closest to a point (Euclidean distance, ties broken
//     by X then Y).
//   - Within returns the vertices inside an axis-aligned box.
//   - Snap keeps a point that already is a vertex and otherwise moves it to the nearest one.
//
// Why:
//
//	Clicked or rounded coordinates rarely hit a vertex exactly. Snapping is opt-in:
//	without it, an unknown endpoint is reported as astar.ErrNodeNotInGraph.
//
// Complexity:
//
//   - NewVertexIndex: O(V log V).
//   - Nearest / Within: O(log V + k) on average.
package spatial
