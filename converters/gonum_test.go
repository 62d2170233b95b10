package converters_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/segpath/converters"
	"github.com/katalvlaran/segpath/core"
)

func pt(x, y int) core.Point { return core.Point{X: x, Y: y} }

func TestToGonum(t *testing.T) {
	edges := []core.Edge{{0, 0, 1, 0}, {1, 0, 0, 0}, {1, 0, 1, 1}, {5, 5, 5, 5}}
	adj := core.BuildAdjacency(edges)

	g, ids := converters.ToGonum(adj)
	require.Len(t, ids, 4)

	assert.Equal(t, 4, g.Nodes().Len())
	assert.Equal(t, 2, g.Edges().Len(), "duplicates collapse, self-loops are dropped")
	assert.True(t, g.HasEdgeBetween(ids[pt(0, 0)], ids[pt(1, 0)]))
	assert.True(t, g.HasEdgeBetween(ids[pt(1, 1)], ids[pt(1, 0)]))
	assert.False(t, g.HasEdgeBetween(ids[pt(0, 0)], ids[pt(1, 1)]))
	assert.Equal(t, int64(0), ids[pt(0, 0)], "IDs follow sorted vertex order")

	// (5,5) only had a self-loop, so it is its own component.
	assert.Len(t, topo.ConnectedComponents(g), 2)
}

func TestToEdges_RoundTrip(t *testing.T) {
	edges := []core.Edge{{0, 0, 1, 0}, {1, 0, 1, 1}, {1, 1, 0, 1}}
	g, ids := converters.ToGonum(core.BuildAdjacency(edges))

	back, err := converters.ToEdges(g, converters.Invert(ids))
	require.NoError(t, err)

	// IDs: (0,0)=0 (0,1)=1 (1,0)=2 (1,1)=3
	assert.Equal(t, []core.Edge{
		{X1: 0, Y1: 0, X2: 1, Y2: 0},
		{X1: 0, Y1: 1, X2: 1, Y2: 1},
		{X1: 1, Y1: 0, X2: 1, Y2: 1},
	}, back)
}

func TestToEdges_UnknownNode(t *testing.T) {
	g := simple.NewUndirectedGraph()
	g.SetEdge(simple.Edge{F: simple.Node(1), T: simple.Node(2)})

	_, err := converters.ToEdges(g, map[int64]core.Point{1: pt(0, 0)})
	assert.ErrorIs(t, err, converters.ErrUnknownNode)
}
