// Package bfs provides breadth-first search over a core.Adjacency,
// returning unweighted (hop-count) distances, parent links and visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop distance from a start vertex.
//   - BFSResult holds Order (visit sequence), Depth (hops from start) and
//     Parent (predecessor in the BFS tree).
//   - ShortestHops answers a single pair query; Components splits a graph into
//     its connected components.
//   - Hooks: WithOnVisit (may abort with an error), WithFilterNeighbor, WithMaxDepth
//     and WithContext for cancellation.
//
// Why
//
//   - Under unit edge cost BFS depth is the true shortest hop distance, which makes
//     it the brute-force reference for checking A* optimality.
//   - Reachability and component splits are needed to tell "no path" from "not a vertex".
//
// Determinism
//
//	Neighbors are enqueued in adjacency insertion order, so the visit sequence is
//	reproducible for a given edge list. Components are seeded in core.Vertices order.
//
// Complexity (V = |Vertices|, E = adjacency entries)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrStartVertexNotFound if the start vertex does not exist.
//   - ErrOptionViolation     if an Option is invalid (e.g. negative MaxDepth).
//   - ErrUnreachable         if PathTo or ShortestHops target was not reached.
//   - ctx.Err() on cancellation, and wrapped OnVisit errors.
package bfs
