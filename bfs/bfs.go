package bfs

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/segpath/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	p     core.Point
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	adj     core.Adjacency
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[core.Point]bool
	res     *BFSResult
}

// BFS runs breadth-first search on adj starting from start.
// Returns ErrOptionViolation for bad options, ErrStartVertexNotFound for an unknown
// start, ctx.Err() on cancellation, or a wrapped OnVisit error.
func BFS(adj core.Adjacency, start core.Point, opts ...Option) (*BFSResult, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !adj.HasVertex(start) {
		return nil, fmt.Errorf("%w: %s", ErrStartVertexNotFound, start)
	}

	n := adj.Order()
	w := &walker{
		adj:     adj,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[core.Point]bool, n),
		res: &BFSResult{
			Start:  start,
			Order:  make([]core.Point, 0, n),
			Depth:  make(map[core.Point]int, n),
			Parent: make(map[core.Point]core.Point, n),
		},
	}

	w.enqueue(start, 0)
	w.res.Depth[start] = 0

	return w.res, w.loop()
}

// enqueue marks p visited at depth d and appends it to the queue.
func (w *walker) enqueue(p core.Point, d int) {
	w.visited[p] = true
	w.queue = append(w.queue, queueItem{p: p, depth: d})
}

// loop processes the queue until empty, error or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.p)
		if err := w.opts.OnVisit(item.p, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %s: %w", item.p, err)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, nbr := range w.adj[item.p] {
			if w.visited[nbr] || !w.opts.FilterNeighbor(item.p, nbr) {
				continue
			}
			w.res.Depth[nbr] = next
			w.res.Parent[nbr] = item.p
			w.enqueue(nbr, next)
		}
	}

	return nil
}

// ShortestHops returns the hop distance between a and b.
// Returns ErrStartVertexNotFound if a is unknown and ErrUnreachable if b is not reached.
func ShortestHops(adj core.Adjacency, a, b core.Point) (int, error) {
	res, err := BFS(adj, a)
	if err != nil {
		return 0, err
	}
	d, ok := res.Depth[b]
	if !ok {
		return 0, fmt.Errorf("%w: %s from %s", ErrUnreachable, b, a)
	}

	return d, nil
}

// Components returns the connected components of adj, each sorted in core.Vertices
// order, with components ordered by their smallest vertex.
func Components(adj core.Adjacency) [][]core.Point {
	seen := make(map[core.Point]bool, adj.Order())
	var out [][]core.Point
	for _, v := range adj.Vertices() {
		if seen[v] {
			continue
		}
		res, _ := BFS(adj, v)
		comp := make([]core.Point, 0, len(res.Order))
		for _, p := range res.Order {
			seen[p] = true
			comp = append(comp, p)
		}
		sort.Slice(comp, func(i, j int) bool { return comp[i].Less(comp[j]) })
		out = append(out, comp)
	}

	return out
}
