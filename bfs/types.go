package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/segpath/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start point is not a vertex.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrUnreachable is returned when a target was not reached from the start.
	ErrUnreachable = errors.New("bfs: vertex unreachable")
)

// Option configures BFS behavior via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks for one traversal.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a vertex. A non-nil error aborts the traversal.
	OnVisit func(p core.Point, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth. 0 disables the limit.
	MaxDepth int

	// FilterNeighbor can skip an edge curr→neighbor by returning false.
	FilterNeighbor func(curr, neighbor core.Point) bool

	err error
}

// DefaultOptions returns background context, no depth limit, no filtering and a no-op hook.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnVisit:        func(core.Point, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ core.Point) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback run on every visit; returning an error stops the BFS.
func WithOnVisit(fn func(p core.Point, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: no limit
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor core.Point) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// BFSResult holds the outcome of a traversal.
type BFSResult struct {
	Start  core.Point
	Order  []core.Point
	Depth  map[core.Point]int
	Parent map[core.Point]core.Point
}

// PathTo reconstructs the path from the start vertex to dest.
func (r *BFSResult) PathTo(dest core.Point) ([]core.Point, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnreachable, dest)
	}
	path := []core.Point{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
