package spatial

import (
	"sort"

	"github.com/dhconnelly/rtreego"

	"github.com/katalvlaran/segpath/core"
)

const (
	dims        = 2
	minChildren = 25
	maxChildren = 50
	// pointTol is the half-size of the rectangle stored per vertex.
	pointTol = 1e-6
	// candidates re-ranked with exact integer distances in Nearest.
	candidates = 4
)

// vertexEntry wraps a vertex for R-tree storage.
type vertexEntry struct {
	p    core.Point
	bbox rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *vertexEntry) Bounds() rtreego.Rect {
	return e.bbox
}

// VertexIndex answers nearest-vertex and box queries over a fixed vertex set.
type VertexIndex struct {
	tree *rtreego.Rtree
}

// NewVertexIndex indexes every vertex of adj, inserted in core.Vertices order.
func NewVertexIndex(adj core.Adjacency) *VertexIndex {
	tree := rtreego.NewTree(dims, minChildren, maxChildren)
	for _, p := range adj.Vertices() {
		tree.Insert(&vertexEntry{p: p, bbox: toPoint(p).ToRect(pointTol)})
	}

	return &VertexIndex{tree: tree}
}

// Len returns the number of indexed vertices.
func (idx *VertexIndex) Len() int {
	return idx.tree.Size()
}

// Nearest returns the vertex closest to p. ok is false when the index is empty.
func (idx *VertexIndex) Nearest(p core.Point) (core.Point, bool) {
	if idx.tree.Size() == 0 {
		return core.Point{}, false
	}
	found := idx.tree.NearestNeighbors(candidates, toPoint(p))
	best, bestD := core.Point{}, -1
	for _, s := range found {
		e, ok := s.(*vertexEntry)
		if !ok {
			continue
		}
		d := squaredDist(p, e.p)
		if bestD < 0 || d < bestD || (d == bestD && e.p.Less(best)) {
			best, bestD = e.p, d
		}
	}

	return best, bestD >= 0
}

// Within returns the vertices q with min.X ≤ q.X ≤ max.X and min.Y ≤ q.Y ≤ max.Y,
// sorted by X then Y. Swapped corners are normalized.
func (idx *VertexIndex) Within(min, max core.Point) []core.Point {
	if min.X > max.X {
		min.X, max.X = max.X, min.X
	}
	if min.Y > max.Y {
		min.Y, max.Y = max.Y, min.Y
	}
	bbox, err := rtreego.NewRect(
		rtreego.Point{float64(min.X) - pointTol, float64(min.Y) - pointTol},
		[]float64{float64(max.X-min.X) + 2*pointTol, float64(max.Y-min.Y) + 2*pointTol},
	)
	if err != nil {
		return nil
	}

	results := idx.tree.SearchIntersect(bbox)
	out := make([]core.Point, 0, len(results))
	for _, s := range results {
		if e, ok := s.(*vertexEntry); ok {
			out = append(out, e.p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}

// Snap returns p when it is a vertex of adj, otherwise the nearest indexed vertex.
// ok is false only when the index is empty and p is not a vertex.
func Snap(adj core.Adjacency, idx *VertexIndex, p core.Point) (core.Point, bool) {
	if adj.HasVertex(p) {
		return p, true
	}

	return idx.Nearest(p)
}

func toPoint(p core.Point) rtreego.Point {
	return rtreego.Point{float64(p.X), float64(p.Y)}
}

func squaredDist(a, b core.Point) int {
	dx, dy := a.X-b.X, a.Y-b.Y

	return dx*dx + dy*dy
}
