package gridgraph

import "errors"

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
)

// Wall is the ParseASCII rune for a blocked cell.
const Wall = '#'

// GridOptions contains tunable parameters for grid conversion.
type GridOptions struct {
	// LandThreshold specifies the minimum cell value considered open.
	LandThreshold int
}

// DefaultGridOptions returns LandThreshold=1 (values ≥1 are open).
func DefaultGridOptions() GridOptions {
	return GridOptions{LandThreshold: 1}
}

// GridGraph treats a 2D integer grid as a graph. It is immutable once built.
// CellValues[y][x] holds the original input value.
type GridGraph struct {
	Width, Height int
	CellValues    [][]int
	LandThreshold int
}
