// Package gridgraph turns a rectangular grid of cells into a segpath edge list,
// so maze- or map-like inputs can be searched with astar.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with a tunable LandThreshold.
//   - Cells with value ≥ LandThreshold are open ("land"); the rest are walls.
//   - Edges emits one unit segment per pair of orthogonally adjacent open cells.
//   - ParseASCII reads maps drawn with '#' for walls and any other rune for open cells.
//
// Coordinates:
//
//	x is the column, y is the row; (0,0) is the top-left cell.
//
// Movement is 4-connected only: every emitted edge joins points at Manhattan
// distance 1, which keeps the astar heuristic admissible on grid-derived graphs.
//
// Complexity:
//
//   - NewGridGraph: O(W×H) time and memory (deep copy).
//   - Edges:        O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package gridgraph
