// File: exact.go
// Role: the O(V+E) isomorphism-candidate fast path of spec.md §4.1: tests
// vertex count, edge count, and the multiset of label-signatures before
// falling back to the full best-first search.
package matcher

import (
	"sort"

	"github.com/anomgraph/gbad/graph"
)

// vertexSignature pairs a vertex's label with its degree, sorted together
// to form the multiset spec.md §4.1 checks in the fast path.
type vertexSignature struct {
	labelIdx int
	degree   int
}

// ExactMatch reports whether g1 and g2 are plausibly isomorphic by a cheap
// necessary (not sufficient) check: equal vertex count, equal edge count,
// equal multisets of (label, degree) vertex signatures, and equal multisets
// of (label, directed) edge signatures. It does not
// attempt to construct an actual isomorphism; callers that need a true
// isomorphism certificate should follow a positive ExactMatch with a full
// Match call at zero threshold.
func ExactMatch(g1, g2 *graph.Graph) bool {
	if g1 == nil || g2 == nil {
		return g1 == g2
	}
	if g1.NumVertices() != g2.NumVertices() {
		return false
	}
	if g1.NumEdges() != g2.NumEdges() {
		return false
	}

	return sameSignatureMultiset(g1, g2)
}

func sameSignatureMultiset(g1, g2 *graph.Graph) bool {
	sig1 := vertexSignatures(g1)
	sig2 := vertexSignatures(g2)
	if len(sig1) != len(sig2) {
		return false
	}
	for i := range sig1 {
		if sig1[i] != sig2[i] {
			return false
		}
	}

	type edgeSignature struct {
		labelIdx int
		directed bool
	}
	edgeSigs := func(g *graph.Graph) []edgeSignature {
		out := make([]edgeSignature, 0, len(g.Edges))
		for i := range g.Edges {
			if g.HasEdge(i) {
				out = append(out, edgeSignature{g.Edges[i].LabelIdx, g.Edges[i].Directed})
			}
		}
		sort.Slice(out, func(a, b int) bool {
			return out[a].labelIdx < out[b].labelIdx || (out[a].labelIdx == out[b].labelIdx && !out[a].directed && out[b].directed)
		})
		return out
	}
	e1, e2 := edgeSigs(g1), edgeSigs(g2)
	if len(e1) != len(e2) {
		return false
	}
	for i := range e1 {
		if e1[i] != e2[i] {
			return false
		}
	}

	return true
}

func vertexSignatures(g *graph.Graph) []vertexSignature {
	out := make([]vertexSignature, 0, len(g.Vertices))
	for i := range g.Vertices {
		if !g.HasVertex(i) {
			continue
		}
		out = append(out, vertexSignature{
			labelIdx: g.Vertices[i].LabelIdx,
			degree:   len(liveAdjacency(g, i)),
		})
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].labelIdx != out[b].labelIdx {
			return out[a].labelIdx < out[b].labelIdx
		}

		return out[a].degree < out[b].degree
	})

	return out
}

func liveAdjacency(g *graph.Graph, v int) []int {
	adj := g.Vertices[v].Adjacency
	out := make([]int, 0, len(adj))
	for _, e := range adj {
		if g.HasEdge(e) {
			out = append(out, e)
		}
	}

	return out
}
