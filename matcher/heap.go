// File: heap.go
// Role: the best-first search frontier, grounded on
// gonum.org/v1/gonum/graph/path's priorityQueue (container/heap, keyed by
// an ascending distance with a deterministic tie-break).
package matcher

import "container/heap"

// searchNode is one partial vertex mapping in the best-first search.
type searchNode struct {
	mapping    map[int]int // G1 vertex index -> G2 vertex index or graph.DeletedVertex
	usedG2     map[int]bool
	depth      int
	vertexCost float64
	priority   float64
}

// frontier is a min-heap over searchNode keyed by (priority asc, depth
// desc) — spec.md §9 "Matcher heap": "cost ascending, depth descending as a
// tiebreak to reach leaves sooner."
type frontier []*searchNode

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}

	return f[i].depth > f[j].depth
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x interface{}) {
	*f = append(*f, x.(*searchNode))
}

func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}

var _ heap.Interface = (*frontier)(nil)
