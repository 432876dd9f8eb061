// File: methods.go
// Role: vertex/edge mutation and the adjacency-index invariant (spec.md §3:
// "for every edge e with endpoints v1,v2, both vertices' adjacency lists
// contain the edge's index exactly once, except when v1==v2").
//
// Determinism: AddVertex/AddEdge append to the end of their slice, so
// indices are assigned in call order and never reused within one Graph.
package graph

// AddVertex appends a new Vertex with the given label index and provenance,
// returning its index. Complexity: O(1) amortized.
func (g *Graph) AddVertex(labelIdx int, prov Provenance) int {
	idx := len(g.Vertices)
	g.Vertices = append(g.Vertices, Vertex{
		LabelIdx:   labelIdx,
		Provenance: prov,
	})

	return idx
}

// AddEdge appends a new Edge between v1 and v2 and links it into both
// vertices' adjacency lists, maintaining the §3 adjacency invariant.
// Returns ErrVertexNotFound if either endpoint is out of range or deleted.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(v1, v2, labelIdx int, directed bool, prov EdgeProvenance) (int, error) {
	if !g.HasVertex(v1) || !g.HasVertex(v2) {
		return -1, ErrVertexNotFound
	}
	idx := len(g.Edges)
	g.Edges = append(g.Edges, Edge{
		V1:         v1,
		V2:         v2,
		LabelIdx:   labelIdx,
		Directed:   directed,
		Provenance: prov,
	})
	g.Vertices[v1].Adjacency = append(g.Vertices[v1].Adjacency, idx)
	if v1 != v2 {
		g.Vertices[v2].Adjacency = append(g.Vertices[v2].Adjacency, idx)
	}

	return idx, nil
}

// HasVertex reports whether idx names a live (non-deleted) vertex.
func (g *Graph) HasVertex(idx int) bool {
	return idx >= 0 && idx < len(g.Vertices) && !g.Vertices[idx].deleted
}

// HasEdge reports whether idx names a live (non-deleted) edge.
func (g *Graph) HasEdge(idx int) bool {
	return idx >= 0 && idx < len(g.Edges) && !g.Edges[idx].deleted
}

// RemoveVertex tombstones the vertex at idx and every edge incident to it.
// Indices are never reused or shifted; call Compact to obtain a dense copy.
// Returns ErrVertexNotFound if idx is already out of range or deleted.
func (g *Graph) RemoveVertex(idx int) error {
	if !g.HasVertex(idx) {
		return ErrVertexNotFound
	}
	for _, eidx := range g.Vertices[idx].Adjacency {
		g.Edges[eidx].deleted = true
	}
	g.Vertices[idx].deleted = true
	g.Vertices[idx].Adjacency = nil

	return nil
}

// RemoveEdge tombstones the edge at idx and unlinks it from both endpoints'
// adjacency lists. Returns ErrEdgeNotFound if idx is already out of range
// or deleted.
func (g *Graph) RemoveEdge(idx int) error {
	if !g.HasEdge(idx) {
		return ErrEdgeNotFound
	}
	e := g.Edges[idx]
	g.Edges[idx].deleted = true
	g.Vertices[e.V1].Adjacency = removeInt(g.Vertices[e.V1].Adjacency, idx)
	if e.V1 != e.V2 {
		g.Vertices[e.V2].Adjacency = removeInt(g.Vertices[e.V2].Adjacency, idx)
	}

	return nil
}

// Other returns the endpoint of edge idx that is not v, or -1 if v is not
// an endpoint of the edge at all (which never happens for a well-formed
// adjacency list, but callers should not assume panics cannot occur on
// malformed input).
func (g *Graph) Other(edgeIdx, v int) int {
	e := g.Edges[edgeIdx]
	if e.V1 == v {
		return e.V2
	}
	if e.V2 == v {
		return e.V1
	}

	return -1
}

// NumVertices returns the number of live vertices.
func (g *Graph) NumVertices() int {
	n := 0
	for i := range g.Vertices {
		if !g.Vertices[i].deleted {
			n++
		}
	}

	return n
}

// NumEdges returns the number of live edges.
func (g *Graph) NumEdges() int {
	n := 0
	for i := range g.Edges {
		if !g.Edges[i].deleted {
			n++
		}
	}

	return n
}

func removeInt(s []int, v int) []int {
	for i, x := range s {
		if x == v {
			return append(s[:i], s[i+1:]...)
		}
	}

	return s
}
