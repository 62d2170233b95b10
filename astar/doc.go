// Package astar finds a minimum-hop path between two points of a core.Adjacency
// using A* best-first search with a Manhattan-distance heuristic and unit edge cost.
//
// What:
//
//   - Search runs A* over an already built core.Adjacency.
//   - FindPath builds the adjacency from raw edges and then calls Search.
//   - Both return the point sequence from start to goal inclusive, or a typed failure.
//
// Why:
//
//   - Manhattan distance is admissible and consistent when every segment joins points at
//     Manhattan distance 1, so the first time the goal is popped its path is optimal.
//     A longer segment still costs one hop, the heuristic can then overestimate, and the
//     result may have more hops than necessary. bfs.ShortestHops gives the exact count.
//   - The heuristic steers the search towards the goal; on open lattices it expands far
//     fewer vertices than a plain BFS.
//
// Algorithm:
//
//  1. Push the start node (g=0, h=Manhattan(start, goal), f=g+h, no predecessor).
//  2. Pop the node with the smallest f (ties in insertion order). Skip it if its point
//     is already visited or the entry is stale; otherwise mark the point visited.
//  3. If it is the goal, follow predecessor handles back to the root and reverse.
//  4. Otherwise relax every neighbor that is not visited: g+1, unless an entry for the
//     same point with g ≤ candidate already exists.
//  5. An empty frontier means ErrNoPathFound.
//
// Relax policies:
//
//   - RelaxBestCost (default): a side table keeps the best g pushed so far per point.
//     O(log n) per relaxation.
//   - RelaxFrontierScan: the live frontier is scanned for an equal-or-better entry.
//     O(n) per relaxation; kept for parity with the scan-based formulation.
//
// Both policies yield paths of identical length. Stale, worse entries are never removed
// from the frontier; they are discarded when popped.
//
// Search nodes live in an arena and reference their predecessor by integer handle, so
// reconstruction follows indices to a root sentinel (-1) instead of chasing pointers.
//
// Complexity (V = vertices, E = adjacency entries):
//
//   - Time:   O((V + E) log(V + E)) with RelaxBestCost.
//   - Memory: O(V + E) for the arena, frontier, visited set and best-cost table.
//
// Concurrency:
//
//	A search is synchronous and shares no state. Independent searches may run in
//	parallel goroutines as long as no goroutine mutates an Adjacency being searched.
//
// Errors:
//
//   - ErrNodeNotInGraph: start or goal has no incident edge; no expansion is performed.
//   - ErrNoPathFound: both endpoints exist but lie in different components.
//   - ErrOptionViolation: an invalid Option was supplied.
//   - ErrExpansionLimit: WithMaxExpansions was exceeded.
//   - Wrapped errors returned by an OnExpand hook.
package astar
