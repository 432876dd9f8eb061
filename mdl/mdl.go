// File: mdl.go
// Role: the MDL(G,L) formula of spec.md §4.2, verbatim.
package mdl

import (
	"math"

	"github.com/anomgraph/gbad/graph"
)

// MDL computes the minimum description length, in bits, of encoding g given
// numLabels available labels, per spec.md §4.2:
//
//	vertexBits = lg V + V·lg L
//	rowBits    = V·lgFact(V) − Σ_i (lgFact(k_i) + lgFact(V−k_i)) + (V+1)·lg(B+1)
//	edgeBits   = E·(1 + lg L) + (K+1)·lg M
//	MDL(G,L)   = vertexBits + rowBits + edgeBits
//
// where k_i is the count of unique neighbors of vertex i (an undirected
// edge is counted only toward the larger-or-equal-numbered endpoint), B is
// max_i k_i, K is Σ_i k_i, and M is the maximum number of edges between any
// two vertices. MDL(G,L) >= 0 for every graph and numLabels >= 1.
func MDL(g *graph.Graph, numLabels int, table *LgFactTable) float64 {
	if table == nil {
		table = NewLgFactTable()
	}
	if numLabels < 1 {
		numLabels = 1
	}

	verts := liveVertexIndices(g)
	v := len(verts)
	e := g.NumEdges()
	lgL := log2(float64(numLabels))

	vertexBits := log2(float64(v)) + float64(v)*lgL

	k := uniqueNeighborCounts(g, verts)
	var sumK, maxK int
	for _, ki := range k {
		sumK += ki
		if ki > maxK {
			maxK = ki
		}
	}
	rowBits := float64(v)*table.Get(v)
	for _, ki := range k {
		rowBits -= table.Get(ki) + table.Get(v-ki)
	}
	rowBits += float64(v+1) * log2(float64(maxK+1))

	m := maxParallelEdges(g)
	edgeBits := float64(e)*(1+lgL) + float64(sumK+1)*log2(float64(m))

	total := vertexBits + rowBits + edgeBits
	if total < 0 || math.IsNaN(total) {
		return 0
	}

	return total
}

func liveVertexIndices(g *graph.Graph) []int {
	out := make([]int, 0, len(g.Vertices))
	for i := range g.Vertices {
		if g.HasVertex(i) {
			out = append(out, i)
		}
	}

	return out
}

// uniqueNeighborCounts returns, for each live vertex in verts (in the same
// order), the count of distinct neighbor vertices reachable by a live edge,
// counting an undirected edge only toward the larger-or-equal-numbered
// endpoint (spec.md §4.2).
func uniqueNeighborCounts(g *graph.Graph, verts []int) []int {
	counts := make([]int, len(verts))
	indexOf := make(map[int]int, len(verts))
	for i, v := range verts {
		indexOf[v] = i
	}

	for pos, v := range verts {
		seen := make(map[int]bool)
		for _, eidx := range g.Vertices[v].Adjacency {
			if !g.HasEdge(eidx) {
				continue
			}
			edge := g.Edges[eidx]
			other := g.Other(eidx, v)
			if other < 0 {
				continue
			}
			if !edge.Directed && other < v {
				// Count this undirected edge only toward the
				// larger-or-equal-numbered endpoint.
				continue
			}
			seen[other] = true
		}
		counts[pos] = len(seen)
	}

	return counts
}

// maxParallelEdges returns the largest number of edges found between any
// single pair of vertices (spec.md §4.2's M).
func maxParallelEdges(g *graph.Graph) int {
	type pair struct{ a, b int }
	counts := make(map[pair]int)
	max := 1

	for i := range g.Edges {
		if !g.HasEdge(i) {
			continue
		}
		e := g.Edges[i]
		a, b := e.V1, e.V2
		if a > b {
			a, b = b, a
		}
		p := pair{a, b}
		counts[p]++
		if counts[p] > max {
			max = counts[p]
		}
	}

	return max
}
