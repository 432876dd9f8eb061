// File: match.go
// Role: the best-first search driver of spec.md §4.1.
package matcher

import (
	"container/heap"
	"math"
	"sort"

	"github.com/anomgraph/gbad/graph"
)

// Match returns the minimum edit cost transforming g1 into g2 under opts'
// cost model, per spec.md §4.1. If opts includes WithThreshold(tau) and no
// mapping scores at or below tau, Result.Cost is +Inf ("no match within
// threshold") — never an error.
func Match(g1, g2 *graph.Graph, opts ...Option) (Result, error) {
	if g1 == nil || g2 == nil {
		return Result{}, ErrNilGraph
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if g1 == g2 {
		// Same graph value: the identity mapping is trivially optimal and
		// avoids depending on the heap's tie-break order among equally
		// costed candidates (spec.md §8: GraphMatch(G,G,L) == (0, identity)).
		id := make(map[int]int, len(g1.Vertices))
		for i := range g1.Vertices {
			if g1.HasVertex(i) {
				id[i] = i
			}
		}
		res := Result{Cost: 0}
		if o.WantMapping {
			res.Mapping = id
		}

		return res, nil
	}

	if !o.WantMapping && ExactMatch(g1, g2) {
		return Result{Cost: 0}, nil
	}

	order := vertexOrder(g1)

	start := &searchNode{
		mapping: make(map[int]int),
		usedG2:  make(map[int]bool),
		depth:   0,
	}
	start.priority = lowerBound(g1, g2, &o, start)

	front := frontier{start}
	heap.Init(&front)

	ceiling := nodeCeiling(g1)
	var best *searchNode
	bestCost := math.Inf(1)
	expanded := 0
	ceilingHit := false

	for front.Len() > 0 {
		if expanded >= ceiling {
			ceilingHit = true
			break
		}
		node := heap.Pop(&front).(*searchNode)
		expanded++

		if node.priority > o.Threshold {
			// Everything else in the frontier only has worse (or equal)
			// priority, so no complete mapping can beat tau from here.
			break
		}

		if node.depth == len(order) {
			cost := evaluateMapping(g1, g2, node.mapping, o.CostModel)
			if cost < bestCost {
				bestCost = cost
				best = node
			}
			// A leaf's priority omits edge costs; requeue it at its full
			// cost so it is accepted only once no cheaper node remains.
			if cost > node.priority {
				node.priority = cost
				heap.Push(&front, node)
				continue
			}
			// Best-first: a complete mapping popped at its full cost under
			// an admissible bound is optimal.
			break
		}

		v1 := order[node.depth]
		for _, child := range expand(g1, g2, &o, node, v1) {
			heap.Push(&front, child)
		}
	}

	if best == nil {
		// Ceiling hit or frontier exhausted before any complete mapping was
		// confirmed: degrade to the greedy completion of the best partial
		// node seen, per spec.md §4.1 "On ceiling hit".
		if ceilingHit || front.Len() == 0 {
			seed := start
			if front.Len() > 0 {
				seed = front[0]
			}
			best, bestCost = greedyComplete(g1, g2, &o, seed, order)
		}
	}

	res := Result{
		Cost:          bestCost,
		NodesExpanded: expanded,
		CeilingHit:    ceilingHit,
	}
	if bestCost > o.Threshold {
		res.Cost = math.Inf(1)
	}
	if o.WantMapping && best != nil && res.Cost != math.Inf(1) {
		res.Mapping = make(map[int]int, len(best.mapping))
		for k, v := range best.mapping {
			res.Mapping[k] = v
		}
	}

	return res, nil
}

// vertexOrder returns G1 vertex indices sorted by descending degree,
// breaking ties by ascending index (spec.md §4.1 "deterministic order").
func vertexOrder(g *graph.Graph) []int {
	order := make([]int, 0, len(g.Vertices))
	for i := range g.Vertices {
		if g.HasVertex(i) {
			order = append(order, i)
		}
	}
	sort.Slice(order, func(a, b int) bool {
		da, db := len(liveAdjacency(g, order[a])), len(liveAdjacency(g, order[b]))
		if da != db {
			return da > db
		}

		return order[a] < order[b]
	})

	return order
}

// nodeCeiling implements spec.md §4.1's |V(G1)|^SearchThresholdExponent
// bound on expanded search nodes.
func nodeCeiling(g1 *graph.Graph) int {
	n := g1.NumVertices()
	if n == 0 {
		return 1
	}
	ceiling := 1
	for i := 0; i < SearchThresholdExponent; i++ {
		ceiling *= n
	}

	return ceiling
}

// expand enumerates every extension of node by deciding v1's assignment:
// each unused G2 vertex, plus graph.DeletedVertex.
func expand(g1, g2 *graph.Graph, o *Options, node *searchNode, v1 int) []*searchNode {
	var children []*searchNode

	// Candidate: delete v1.
	children = append(children, assign(g1, g2, o, node, v1, graph.DeletedVertex))

	for i := range g2.Vertices {
		if !g2.HasVertex(i) || node.usedG2[i] {
			continue
		}
		children = append(children, assign(g1, g2, o, node, v1, i))
	}

	return children
}

func assign(g1, g2 *graph.Graph, o *Options, node *searchNode, v1, v2 int) *searchNode {
	child := &searchNode{
		mapping: make(map[int]int, len(node.mapping)+1),
		usedG2:  make(map[int]bool, len(node.usedG2)+1),
		depth:   node.depth + 1,
	}
	for k, v := range node.mapping {
		child.mapping[k] = v
	}
	for k := range node.usedG2 {
		child.usedG2[k] = true
	}
	child.mapping[v1] = v2

	cost := node.vertexCost
	switch v2 {
	case graph.DeletedVertex:
		cost += o.CostModel.DeleteVertex
	default:
		child.usedG2[v2] = true
		if g1.Vertices[v1].LabelIdx != g2.Vertices[v2].LabelIdx {
			cost += o.CostModel.SubstituteVertexLabel
		}
	}
	child.vertexCost = cost
	child.priority = lowerBound(g1, g2, o, child)

	return child
}

// lowerBound implements the spec.md §4.1 priority formula: mapped-so-far
// cost, plus forced deletions of G1 edges already touching a Deleted
// vertex, plus an optimistic per-vertex insertion cost for G2 vertices the
// mapping has not yet claimed.
func lowerBound(g1, g2 *graph.Graph, o *Options, node *searchNode) float64 {
	cost := node.vertexCost

	seenEdge := make(map[int]bool)
	for v1, v2 := range node.mapping {
		if v2 != graph.DeletedVertex {
			continue
		}
		for _, eidx := range liveAdjacency(g1, v1) {
			if seenEdge[eidx] {
				continue
			}
			seenEdge[eidx] = true
			cost += o.CostModel.DeleteEdge
		}
	}

	remainingG2 := 0
	for i := range g2.Vertices {
		if g2.HasVertex(i) && !node.usedG2[i] {
			remainingG2++
		}
	}
	remainingG1 := g1.NumVertices() - node.depth
	if remainingG2 > remainingG1 {
		cost += float64(remainingG2-remainingG1) * o.CostModel.InsertVertex
	}

	return cost
}

// greedyComplete finishes the search node with the lowest priority by
// mapping every still-unmapped G1 vertex to Deleted, matching spec.md
// §4.1's documented ceiling-hit degradation to a greedy upper bound.
func greedyComplete(g1, g2 *graph.Graph, o *Options, start *searchNode, order []int) (*searchNode, float64) {
	node := start
	for node.depth < len(order) {
		v1 := order[node.depth]
		node = assign(g1, g2, o, node, v1, graph.DeletedVertex)
	}
	cost := evaluateMapping(g1, g2, node.mapping, o.CostModel)

	return node, cost
}

