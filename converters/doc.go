// Package converters provides two-way adapters between core segment graphs and
// gonum/graph.
//
// ToGonum exports a core.Adjacency as a *simple.UndirectedGraph so gonum's
// algorithms (path.AStar, path.DijkstraFrom, topo.ConnectedComponents, ...)
// can run on it. ToEdges brings any gonum graph back as a segment list,
// given the coordinates of its nodes.
package converters
