package gridgraph

import (
	"unicode/utf8"

	"github.com/katalvlaran/segpath/core"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}

	return &GridGraph{
		Width:         w,
		Height:        h,
		CellValues:    cells,
		LandThreshold: opts.LandThreshold,
	}, nil
}

// ParseASCII builds a GridGraph from text rows: Wall is 0, any other rune is 1.
// Row widths are counted in runes.
func ParseASCII(lines []string) (*GridGraph, error) {
	values := make([][]int, len(lines))
	for y, line := range lines {
		row := make([]int, 0, utf8.RuneCountInString(line))
		for _, r := range line {
			if r == Wall {
				row = append(row, 0)
			} else {
				row = append(row, 1)
			}
		}
		values[y] = row
	}

	return NewGridGraph(values, DefaultGridOptions())
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Cell returns the value at p and whether p is inside the grid.
func (gg *GridGraph) Cell(p core.Point) (int, bool) {
	if !gg.InBounds(p.X, p.Y) {
		return 0, false
	}

	return gg.CellValues[p.Y][p.X], true
}

// IsOpen reports whether p is inside the grid and at or above LandThreshold.
func (gg *GridGraph) IsOpen(p core.Point) bool {
	v, ok := gg.Cell(p)

	return ok && v >= gg.LandThreshold
}

// Edges returns the unit segments between orthogonally adjacent open cells.
// For each cell in row-major order the Right edge precedes the Down edge.
// Open cells with no open neighbor produce no edge and are therefore not vertices.
// Complexity: O(W×H).
func (gg *GridGraph) Edges() []core.Edge {
	var edges []core.Edge
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			u := core.Point{X: x, Y: y}
			if !gg.IsOpen(u) {
				continue
			}
			if right := (core.Point{X: x + 1, Y: y}); gg.IsOpen(right) {
				edges = append(edges, core.NewEdge(u, right))
			}
			if down := (core.Point{X: x, Y: y + 1}); gg.IsOpen(down) {
				edges = append(edges, core.NewEdge(u, down))
			}
		}
	}

	return edges
}
