package core

import "sort"

// Adjacency maps every vertex to the ordered list of its directly connected neighbors.
type Adjacency map[Point][]Point

// BuildAdjacency converts a flat list of undirected edges into an Adjacency.
//
// For each edge both endpoints are appended to each other's neighbor list; the
// list is created the first time an endpoint is seen. Duplicates and self-loops
// are kept as-is.
//
// Complexity: O(E) time, O(V + E) memory.
func BuildAdjacency(edges []Edge) Adjacency {
	adj := make(Adjacency, len(edges))
	var a, b Point
	for _, e := range edges {
		a, b = e.Endpoints()
		adj[a] = append(adj[a], b)
		adj[b] = append(adj[b], a)
	}

	return adj
}

// HasVertex reports whether p appears in at least one edge.
func (adj Adjacency) HasVertex(p Point) bool {
	_, ok := adj[p]

	return ok
}

// Neighbors returns the neighbor list of p in insertion order, or nil if p is unknown.
// The returned slice is shared with adj and must not be modified.
func (adj Adjacency) Neighbors(p Point) []Point {
	return adj[p]
}

// Degree returns the length of p's neighbor list, duplicates included.
func (adj Adjacency) Degree(p Point) int {
	return len(adj[p])
}

// Order returns the number of distinct vertices.
func (adj Adjacency) Order() int {
	return len(adj)
}

// Vertices returns all vertices sorted by X, then Y.
// Complexity: O(V log V).
func (adj Adjacency) Vertices() []Point {
	out := make([]Point, 0, len(adj))
	for p := range adj {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}

// HasEdge reports whether b is listed among a's neighbors.
// Complexity: O(deg(a)).
func (adj Adjacency) HasEdge(a, b Point) bool {
	for _, n := range adj[a] {
		if n == b {
			return true
		}
	}

	return false
}
