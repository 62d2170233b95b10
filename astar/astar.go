package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/segpath/core"
)

// Search computes a minimum-hop path from start to goal over adj.
//
// Validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. start must be a vertex of adj (ErrNodeNotInGraph).
//  3. goal must be a vertex of adj (ErrNodeNotInGraph).
//
// No expansion happens when validation fails. start == goal yields a single-point path.
//
// Complexity: O((V + E) log(V + E)) time with RelaxBestCost, O(V + E) memory.
func Search(adj core.Adjacency, start, goal core.Point, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if !adj.HasVertex(start) {
		return nil, fmt.Errorf("%w: start %s", ErrNodeNotInGraph, start)
	}
	if !adj.HasVertex(goal) {
		return nil, fmt.Errorf("%w: goal %s", ErrNodeNotInGraph, goal)
	}

	r := newRunner(adj, goal, o)
	r.push(start, noParent, 0)

	return r.process()
}

// runner holds the mutable state of one search.
type runner struct {
	adj     core.Adjacency
	goal    core.Point
	opts    Options
	nodes   arena
	open    frontier
	visited map[core.Point]bool
	best    map[core.Point]int // RelaxBestCost only
	seq     int
	expands int
}

func newRunner(adj core.Adjacency, goal core.Point, o Options) *runner {
	r := &runner{
		adj:     adj,
		goal:    goal,
		opts:    o,
		nodes:   make(arena, 0, len(adj)),
		visited: make(map[core.Point]bool, len(adj)),
	}
	r.open = frontier{nodes: &r.nodes, items: make([]int, 0, len(adj))}
	if o.Policy == RelaxBestCost {
		r.best = make(map[core.Point]int, len(adj))
	}
	heap.Init(&r.open)

	return r
}

// push records a node for p and queues it.
func (r *runner) push(p core.Point, parent, g int) {
	h := core.Manhattan(p, r.goal)
	handle := r.nodes.add(node{p: p, parent: parent, g: g, h: h, f: g + h, seq: r.seq})
	r.seq++
	if r.best != nil {
		r.best[p] = g
	}
	heap.Push(&r.open, handle)
}

// admits reports whether a candidate for p with cost g should be queued.
// An existing entry with g' ≤ g wins.
func (r *runner) admits(p core.Point, g int) bool {
	if r.opts.Policy == RelaxFrontierScan {
		return !r.open.holds(p, g)
	}
	if known, ok := r.best[p]; ok && known <= g {
		return false
	}

	return true
}

// stale reports whether a popped node is superseded by a cheaper entry.
func (r *runner) stale(n node) bool {
	if r.visited[n.p] {
		return true
	}
	if r.best != nil && n.g > r.best[n.p] {
		return true
	}

	return false
}

// process is the main A* loop.
func (r *runner) process() (*Result, error) {
	for r.open.Len() > 0 {
		// 1) Pop the cheapest entry; discard it if its point is already final.
		handle := heap.Pop(&r.open).(int)
		cur := r.nodes[handle]
		if r.stale(cur) {
			continue
		}

		// 2) Finalize.
		if r.opts.MaxExpansions > 0 && r.expands >= r.opts.MaxExpansions {
			return nil, fmt.Errorf("%w: %d expansions", ErrExpansionLimit, r.expands)
		}
		r.visited[cur.p] = true
		r.expands++
		if err := r.opts.OnExpand(cur.p, cur.g); err != nil {
			return nil, fmt.Errorf("astar: OnExpand error at %s: %w", cur.p, err)
		}

		// 3) Goal reached: unwind the predecessor chain.
		if cur.p == r.goal {
			path := r.nodes.path(handle)

			return &Result{Path: path, Hops: len(path) - 1, Expanded: r.expands}, nil
		}

		// 4) Relax neighbors in adjacency order.
		g := cur.g + 1
		for _, nb := range r.adj[cur.p] {
			if r.visited[nb] {
				continue
			}
			if !r.admits(nb, g) {
				continue
			}
			r.push(nb, handle, g)
		}
	}

	return nil, ErrNoPathFound
}
