package spatial_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/segpath/builder"
	"github.com/katalvlaran/segpath/core"
	"github.com/katalvlaran/segpath/spatial"
)

func pt(x, y int) core.Point { return core.Point{X: x, Y: y} }

func gridAdj(t *testing.T, cols, rows int) core.Adjacency {
	t.Helper()
	edges, err := builder.Build([]builder.Option{builder.WithOrigin(0, 0)}, builder.Grid(cols, rows))
	require.NoError(t, err)

	return core.BuildAdjacency(edges)
}

func TestVertexIndex_Empty(t *testing.T) {
	idx := spatial.NewVertexIndex(core.BuildAdjacency(nil))
	assert.Equal(t, 0, idx.Len())

	_, ok := idx.Nearest(pt(1, 1))
	assert.False(t, ok)
	assert.Empty(t, idx.Within(pt(0, 0), pt(10, 10)))
}

func TestVertexIndex_Nearest(t *testing.T) {
	adj := core.BuildAdjacency([]core.Edge{
		{X1: 0, Y1: 0, X2: 10, Y2: 0},
		{X1: 10, Y1: 0, X2: 10, Y2: 10},
	})
	idx := spatial.NewVertexIndex(adj)
	require.Equal(t, 3, idx.Len())

	cases := []struct {
		in, want core.Point
	}{
		{pt(0, 0), pt(0, 0)},
		{pt(2, 3), pt(0, 0)},
		{pt(9, 1), pt(10, 0)},
		{pt(12, 12), pt(10, 10)},
		{pt(-50, 4), pt(0, 0)},
	}
	for _, tc := range cases {
		got, ok := idx.Nearest(tc.in)
		require.True(t, ok)
		assert.Equalf(t, tc.want, got, "Nearest(%s)", tc.in)
	}
}

func TestVertexIndex_NearestTieBreak(t *testing.T) {
	// (5,0) is equidistant from (0,0) and (10,0); the smaller X wins.
	adj := core.BuildAdjacency([]core.Edge{{X1: 0, Y1: 0, X2: 10, Y2: 0}})
	got, ok := spatial.NewVertexIndex(adj).Nearest(pt(5, 0))
	require.True(t, ok)
	assert.Equal(t, pt(0, 0), got)
}

func TestVertexIndex_Within(t *testing.T) {
	idx := spatial.NewVertexIndex(gridAdj(t, 4, 4))
	require.Equal(t, 16, idx.Len())

	assert.Equal(t, []core.Point{pt(1, 1), pt(1, 2), pt(2, 1), pt(2, 2)}, idx.Within(pt(1, 1), pt(2, 2)))
	assert.Equal(t, []core.Point{pt(1, 1), pt(1, 2), pt(2, 1), pt(2, 2)}, idx.Within(pt(2, 2), pt(1, 1)))
	assert.Equal(t, []core.Point{pt(3, 3)}, idx.Within(pt(3, 3), pt(3, 3)))
	assert.Empty(t, idx.Within(pt(5, 5), pt(9, 9)))
}

func TestSnap(t *testing.T) {
	adj := gridAdj(t, 3, 3)
	idx := spatial.NewVertexIndex(adj)

	got, ok := spatial.Snap(adj, idx, pt(1, 1))
	require.True(t, ok)
	assert.Equal(t, pt(1, 1), got)

	got, ok = spatial.Snap(adj, idx, pt(7, 1))
	require.True(t, ok)
	assert.Equal(t, pt(2, 1), got)

	empty := core.BuildAdjacency(nil)
	_, ok = spatial.Snap(empty, spatial.NewVertexIndex(empty), pt(0, 0))
	assert.False(t, ok)
}
