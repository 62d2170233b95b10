package converters

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/segpath/core"
)

// ErrUnknownNode is returned by ToEdges for a node without a coordinate.
var ErrUnknownNode = errors.New("converters: node has no coordinate")

// ToGonum exports adj as a gonum undirected graph.
//
// Node IDs are assigned in Vertices() order, so the export is deterministic.
// The returned map translates a Point to its gonum node ID. Self-loops are
// dropped and duplicate edges collapse, since gonum simple graphs allow neither;
// hop distances are unaffected.
//
// Complexity: O(V log V + E).
func ToGonum(adj core.Adjacency) (*simple.UndirectedGraph, map[core.Point]int64) {
	g := simple.NewUndirectedGraph()
	ids := make(map[core.Point]int64, len(adj))

	// 1) Nodes, in sorted vertex order.
	for i, p := range adj.Vertices() {
		id := int64(i)
		ids[p] = id
		g.AddNode(simple.Node(id))
	}

	// 2) Edges; SetEdge on an existing pair is a no-op replacement.
	for p, neighbors := range adj {
		u := ids[p]
		for _, q := range neighbors {
			v := ids[q]
			if u == v {
				continue
			}
			g.SetEdge(simple.Edge{F: simple.Node(u), T: simple.Node(v)})
		}
	}

	return g, ids
}

// ToEdges lists every edge of g once as a segment, with endpoints looked up in coords.
// Edges are ordered by the lower node ID, then the higher one; isolated nodes are lost.
func ToEdges(g graph.Graph, coords map[int64]core.Point) ([]core.Edge, error) {
	nodes := sortedByID(graph.NodesOf(g.Nodes()))

	var edges []core.Edge
	for _, u := range nodes {
		a, ok := coords[u.ID()]
		if !ok {
			return nil, fmt.Errorf("%w: id %d", ErrUnknownNode, u.ID())
		}
		for _, v := range sortedByID(graph.NodesOf(g.From(u.ID()))) {
			if v.ID() <= u.ID() {
				continue
			}
			b, ok := coords[v.ID()]
			if !ok {
				return nil, fmt.Errorf("%w: id %d", ErrUnknownNode, v.ID())
			}
			edges = append(edges, core.NewEdge(a, b))
		}
	}

	return edges, nil
}

// Invert turns the Point→ID map returned by ToGonum into the ID→Point map ToEdges expects.
func Invert(ids map[core.Point]int64) map[int64]core.Point {
	out := make(map[int64]core.Point, len(ids))
	for p, id := range ids {
		out[id] = p
	}

	return out
}

func sortedByID(nodes []graph.Node) []graph.Node {
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID() < nodes[j].ID() })

	return nodes
}
