package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/segpath/core"
)

func pt(x, y int) core.Point { return core.Point{X: x, Y: y} }

func TestBuildAdjacency_Symmetric(t *testing.T) {
	edges := []core.Edge{{0, 0, 1, 0}, {1, 0, 1, 1}, {1, 1, 2, 1}}
	adj := core.BuildAdjacency(edges)

	assert.Equal(t, 4, adj.Order())
	for p, neighbors := range adj {
		for _, q := range neighbors {
			assert.Truef(t, adj.HasEdge(q, p), "edge %s-%s is not mirrored", p, q)
		}
	}
}

func TestBuildAdjacency_InsertionOrder(t *testing.T) {
	edges := []core.Edge{
		{1, 1, 1, 2},
		{1, 1, 0, 1},
		{2, 1, 1, 1},
		{1, 0, 1, 1},
	}
	adj := core.BuildAdjacency(edges)

	assert.Equal(t, []core.Point{pt(1, 2), pt(0, 1), pt(2, 1), pt(1, 0)}, adj.Neighbors(pt(1, 1)))
	assert.Equal(t, []core.Point{pt(1, 1)}, adj.Neighbors(pt(2, 1)))
}

func TestBuildAdjacency_DuplicatesAndLoops(t *testing.T) {
	edges := []core.Edge{{0, 0, 1, 0}, {1, 0, 0, 0}, {3, 3, 3, 3}}
	adj := core.BuildAdjacency(edges)

	assert.Equal(t, []core.Point{pt(1, 0), pt(1, 0)}, adj.Neighbors(pt(0, 0)))
	assert.Equal(t, 2, adj.Degree(pt(1, 0)))
	assert.Equal(t, []core.Point{pt(3, 3), pt(3, 3)}, adj.Neighbors(pt(3, 3)))
	assert.True(t, adj.HasVertex(pt(3, 3)))
}

func TestBuildAdjacency_Empty(t *testing.T) {
	adj := core.BuildAdjacency(nil)

	assert.Equal(t, 0, adj.Order())
	assert.Empty(t, adj.Vertices())
	assert.Nil(t, adj.Neighbors(pt(0, 0)))
	assert.False(t, adj.HasVertex(pt(0, 0)))
}

func TestBuildAdjacency_Deterministic(t *testing.T) {
	edges := []core.Edge{{0, 0, 0, 1}, {0, 1, 1, 1}, {1, 1, 1, 0}, {1, 0, 0, 0}}

	assert.Equal(t, core.BuildAdjacency(edges), core.BuildAdjacency(edges))
}

func TestVertices_Sorted(t *testing.T) {
	edges := []core.Edge{{2, 0, 0, 5}, {0, 1, -1, 3}}
	adj := core.BuildAdjacency(edges)

	assert.Equal(t, []core.Point{pt(-1, 3), pt(0, 1), pt(0, 5), pt(2, 0)}, adj.Vertices())
}

func TestManhattan(t *testing.T) {
	cases := []struct {
		name string
		a, b core.Point
		want int
	}{
		{"Same", pt(3, 4), pt(3, 4), 0},
		{"Horizontal", pt(0, 0), pt(5, 0), 5},
		{"Negative", pt(-2, 3), pt(1, -1), 7},
		{"Symmetric", pt(1, -1), pt(-2, 3), 7},
		{"RangeCorners", pt(-core.MaxCoord, -core.MaxCoord), pt(core.MaxCoord, core.MaxCoord), 4 * core.MaxCoord},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, core.Manhattan(tc.a, tc.b))
		})
	}
}

func TestInRange(t *testing.T) {
	assert.True(t, pt(core.MaxCoord, -core.MaxCoord).InRange())
	assert.False(t, pt(core.MaxCoord+1, 0).InRange())
	assert.False(t, pt(0, -core.MaxCoord-1).InRange())

	assert.True(t, core.NewEdge(pt(0, 0), pt(core.MaxCoord, 0)).InRange())
	assert.False(t, core.NewEdge(pt(0, 0), pt(0, core.MaxCoord+1)).InRange())
}

func TestEdge_Endpoints(t *testing.T) {
	e := core.NewEdge(pt(1, 2), pt(3, 4))
	a, b := e.Endpoints()

	assert.Equal(t, pt(1, 2), a)
	assert.Equal(t, pt(3, 4), b)
	assert.Equal(t, "(1,2)-(3,4)", e.String())
}
