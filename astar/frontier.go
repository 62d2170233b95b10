package astar

import "github.com/katalvlaran/segpath/core"

// noParent marks the root of the search tree.
const noParent = -1

// node is one search record. parent is a handle into the arena.
type node struct {
	p      core.Point
	parent int
	g, h   int
	f      int
	seq    int // insertion order, breaks f ties
}

// arena owns every node created by one search.
type arena []node

// add stores n and returns its handle.
func (a *arena) add(n node) int {
	*a = append(*a, n)

	return len(*a) - 1
}

// path follows parent handles from h to the root and returns the points root-first.
func (a arena) path(h int) []core.Point {
	var out []core.Point
	for ; h != noParent; h = a[h].parent {
		out = append(out, a[h].p)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out
}

// frontier is a min-heap of arena handles ordered by f, then by insertion sequence.
type frontier struct {
	nodes *arena
	items []int
}

// Len returns the number of queued handles.
func (q frontier) Len() int { return len(q.items) }

// Less orders by ascending f; equal f falls back to FIFO so runs are reproducible.
func (q frontier) Less(i, j int) bool {
	a, b := (*q.nodes)[q.items[i]], (*q.nodes)[q.items[j]]
	if a.f != b.f {
		return a.f < b.f
	}

	return a.seq < b.seq
}

// Swap swaps two handles.
func (q frontier) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

// Push appends a handle; called by heap.Push.
func (q *frontier) Push(x interface{}) { q.items = append(q.items, x.(int)) }

// Pop removes the last handle; called by heap.Pop.
func (q *frontier) Pop() interface{} {
	old := q.items
	n := len(old)
	h := old[n-1]
	q.items = old[:n-1]

	return h
}

// holds reports whether a queued entry for p has g ≤ g. O(n).
func (q frontier) holds(p core.Point, g int) bool {
	for _, h := range q.items {
		n := (*q.nodes)[h]
		if n.p == p && n.g <= g {
			return true
		}
	}

	return false
}
