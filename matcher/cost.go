// File: cost.go
// Role: exact edit cost of one *complete* vertex mapping, computed once a
// leaf node reaches the front of the search heap (spec.md §4.1 cost model).
package matcher

import "github.com/anomgraph/gbad/graph"

// evaluateMapping computes the total edit cost of transforming g1 into g2
// under mapping, a complete assignment of every G1 vertex to a G2 vertex or
// graph.DeletedVertex.
//
// Vertex cost (insertion, deletion, label substitution) is exact. Edge cost
// matches each G1 edge whose endpoints both survive against an unused G2
// edge between the corresponding vertices, preferring an identical label
// and directedness, then charging the cheapest available deviation
// (substitute label, change directedness, reverse direction) when only a
// mismatched edge is available, and cost.InsertEdge when none is.
// G1 edges touching a deleted vertex are charged DeleteEdge. Any G2 edge
// left unconsumed afterward is charged InsertEdge (both endpoints survive
// in the mapping's image) or InsertEdgeWithVertex (at least one endpoint is
// not in the mapping's image, i.e. a newly inserted vertex).
func evaluateMapping(g1, g2 *graph.Graph, mapping map[int]int, cost Cost) float64 {
	total := 0.0

	mappedImage := make(map[int]bool)
	for v1 := range g1.Vertices {
		if !g1.HasVertex(v1) {
			continue
		}
		v2, ok := mapping[v1]
		if !ok || v2 == graph.DeletedVertex {
			total += cost.DeleteVertex

			continue
		}
		mappedImage[v2] = true
		if g1.Vertices[v1].LabelIdx != g2.Vertices[v2].LabelIdx {
			total += cost.SubstituteVertexLabel
		}
	}
	for v2 := range g2.Vertices {
		if g2.HasVertex(v2) && !mappedImage[v2] {
			total += cost.InsertVertex
		}
	}

	usedG2Edge := make(map[int]bool)
	for e1 := range g1.Edges {
		if !g1.HasEdge(e1) {
			continue
		}
		edge1 := g1.Edges[e1]
		u1, okU := mapping[edge1.V1]
		w1, okW := mapping[edge1.V2]
		if !okU || !okW || u1 == graph.DeletedVertex || w1 == graph.DeletedVertex {
			total += cost.DeleteEdge

			continue
		}

		best, bestCost, found := bestEdgeMatch(g2, u1, w1, edge1, usedG2Edge, cost)
		if !found {
			total += cost.InsertEdge

			continue
		}
		usedG2Edge[best] = true
		total += bestCost
	}

	for e2 := range g2.Edges {
		if !g2.HasEdge(e2) || usedG2Edge[e2] {
			continue
		}
		edge2 := g2.Edges[e2]
		if mappedImage[edge2.V1] && mappedImage[edge2.V2] {
			total += cost.InsertEdge
		} else {
			total += cost.InsertEdgeWithVertex
		}
	}

	return total
}

// bestEdgeMatch finds the cheapest unused edge in g2 between u and w that
// could stand in for edge1, returning its index, the deviation cost it
// incurs, and whether any candidate existed at all.
func bestEdgeMatch(g2 *graph.Graph, u, w int, edge1 graph.Edge, used map[int]bool, cost Cost) (int, float64, bool) {
	best := -1
	bestCost := -1.0

	for _, e2 := range g2.Vertices[u].Adjacency {
		if used[e2] || !g2.HasEdge(e2) {
			continue
		}
		edge2 := g2.Edges[e2]
		other := g2.Other(e2, u)
		if other != w {
			continue
		}

		c := edgeDeviationCost(edge1, edge2, u, w, cost)
		if best == -1 || c < bestCost {
			best, bestCost = e2, c
		}
	}

	if best == -1 {
		return -1, 0, false
	}

	return best, bestCost, true
}

// edgeDeviationCost returns the cost of treating edge2 as edge1's
// counterpart under mapping u=mapping[edge1.V1], w=mapping[edge1.V2]: 0 if
// identical, else the sum of the label-substitution and
// directedness-change costs that differ between them, under cost. Both
// edges run between u and w in g2's vertex space; edge2 is reversed
// relative to edge1 iff it runs w->u rather than u->w.
func edgeDeviationCost(edge1, edge2 graph.Edge, u, w int, cost Cost) float64 {
	c := 0.0
	if edge1.LabelIdx != edge2.LabelIdx {
		c += cost.SubstituteEdgeLabel
	}
	if edge1.Directed != edge2.Directed {
		c += cost.ChangeDirectedness
	} else if edge1.Directed && edge2.Directed && edge2.V1 == w && edge2.V2 == u {
		c += cost.ReverseDirectedEdge
	}

	return c
}
