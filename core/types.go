package core

import "fmt"

// MaxCoord bounds |X| and |Y| of any supported point. Within it a Manhattan
// distance plus a hop count cannot overflow int, even on 32-bit platforms.
const MaxCoord = 1<<28 - 1

// Point is an integer (X, Y) coordinate identifying a graph vertex.
// Two points are equal iff both coordinates match, so Point is used directly as a map key.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// String renders the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// InRange reports whether both coordinates lie within ±MaxCoord.
func (p Point) InRange() bool {
	return inRange(p.X) && inRange(p.Y)
}

// Less orders points by X, then Y.
func (p Point) Less(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}

	return p.Y < q.Y
}

// Edge is an unordered pair of points (X1,Y1)–(X2,Y2).
// It is input data only and is not retained after BuildAdjacency.
type Edge struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// NewEdge builds the segment a–b.
func NewEdge(a, b Point) Edge {
	return Edge{X1: a.X, Y1: a.Y, X2: b.X, Y2: b.Y}
}

// Endpoints returns the two endpoints of e in input order.
func (e Edge) Endpoints() (Point, Point) {
	return Point{X: e.X1, Y: e.Y1}, Point{X: e.X2, Y: e.Y2}
}

// InRange reports whether both endpoints lie within ±MaxCoord.
func (e Edge) InRange() bool {
	a, b := e.Endpoints()

	return a.InRange() && b.InRange()
}

// String renders the edge as "(x1,y1)-(x2,y2)".
func (e Edge) String() string {
	a, b := e.Endpoints()

	return a.String() + "-" + b.String()
}

// Manhattan returns |a.X-b.X| + |a.Y-b.Y|.
// The result is exact for points that are InRange; beyond that it may overflow.
func Manhattan(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

func inRange(v int) bool {
	return v >= -MaxCoord && v <= MaxCoord
}
