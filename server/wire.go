package server

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/segpath/core"
)

// Request validation errors. Both map to 422 Unprocessable Entity.
var (
	ErrMissingField    = errors.New("server: missing field")
	ErrCoordinateRange = errors.New("server: coordinate out of range")
)

// Messages returned inside "Movement" on planning failures.
const (
	MsgNodeNotInGraph = "Start or goal node is not part of the graph."
	MsgNoPathFound    = "No path found between the nodes."
)

// Node is a point on the wire. Pointer fields detect missing or null coordinates.
type Node struct {
	X *int `json:"x"`
	Y *int `json:"y"`
}

// Segment is an edge on the wire.
type Segment struct {
	X1 *int `json:"x1"`
	Y1 *int `json:"y1"`
	X2 *int `json:"x2"`
	Y2 *int `json:"y2"`
}

// PathRequest is the POST /astar/ body. Use Query to validate it.
type PathRequest struct {
	StartNode     *Node       `json:"start_node"`
	GoalNode      *Node       `json:"goal_node"`
	AvailablePath *[]*Segment `json:"available_path"`
	// Snap overrides the configured snapping when present.
	Snap *bool `json:"snap,omitempty"`
}

// NewPathRequest encodes a planning query in wire form.
func NewPathRequest(start, goal core.Point, edges []core.Edge) PathRequest {
	segs := make([]*Segment, len(edges))
	for i, e := range edges {
		segs[i] = &Segment{X1: &e.X1, Y1: &e.Y1, X2: &e.X2, Y2: &e.Y2}
	}

	return PathRequest{StartNode: newNode(start), GoalNode: newNode(goal), AvailablePath: &segs}
}

func newNode(p core.Point) *Node {
	return &Node{X: &p.X, Y: &p.Y}
}

// Query is a validated PathRequest.
type Query struct {
	Start, Goal core.Point
	Edges       []core.Edge
	Snap        *bool
}

// Query checks that every key and coordinate is present and InRange.
// Errors wrap ErrMissingField or ErrCoordinateRange and name the offending field.
func (r *PathRequest) Query() (*Query, error) {
	if r.AvailablePath == nil {
		return nil, fmt.Errorf("%w: available_path", ErrMissingField)
	}
	start, err := r.StartNode.point("start_node")
	if err != nil {
		return nil, err
	}
	goal, err := r.GoalNode.point("goal_node")
	if err != nil {
		return nil, err
	}

	q := &Query{Start: start, Goal: goal, Edges: make([]core.Edge, len(*r.AvailablePath)), Snap: r.Snap}
	for i, s := range *r.AvailablePath {
		if q.Edges[i], err = s.edge(fmt.Sprintf("available_path[%d]", i)); err != nil {
			return nil, err
		}
	}

	return q, nil
}

func (n *Node) point(field string) (core.Point, error) {
	switch {
	case n == nil:
		return core.Point{}, fmt.Errorf("%w: %s", ErrMissingField, field)
	case n.X == nil:
		return core.Point{}, fmt.Errorf("%w: %s.x", ErrMissingField, field)
	case n.Y == nil:
		return core.Point{}, fmt.Errorf("%w: %s.y", ErrMissingField, field)
	}
	p := core.Point{X: *n.X, Y: *n.Y}
	if !p.InRange() {
		return core.Point{}, fmt.Errorf("%w: %s %s", ErrCoordinateRange, field, p)
	}

	return p, nil
}

func (s *Segment) edge(field string) (core.Edge, error) {
	if s == nil {
		return core.Edge{}, fmt.Errorf("%w: %s", ErrMissingField, field)
	}
	for _, c := range []struct {
		name string
		v    *int
	}{{"x1", s.X1}, {"y1", s.Y1}, {"x2", s.X2}, {"y2", s.Y2}} {
		if c.v == nil {
			return core.Edge{}, fmt.Errorf("%w: %s.%s", ErrMissingField, field, c.name)
		}
	}
	e := core.Edge{X1: *s.X1, Y1: *s.Y1, X2: *s.X2, Y2: *s.Y2}
	if !e.InRange() {
		return core.Edge{}, fmt.Errorf("%w: %s %s", ErrCoordinateRange, field, e)
	}

	return e, nil
}

// PathResponse wraps either a coordinate list or an ErrorBody.
type PathResponse struct {
	Movement interface{} `json:"Movement"`
}

// ErrorBody is the failure payload carried in Movement.
type ErrorBody struct {
	Error string `json:"error"`
}

// Movement renders a path as [[x,y],...].
func Movement(path []core.Point) [][2]int {
	out := make([][2]int, len(path))
	for i, p := range path {
		out[i] = [2]int{p.X, p.Y}
	}

	return out
}

// info is the GET / document.
var info = map[string]string{
	"Info":       "Hello, this is an A* search algorithm project.",
	"How to use": "Send a POST request to the /astar/ endpoint with a JSON body.",
}
