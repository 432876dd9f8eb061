// File: clone.go
// Role: deep-copy discipline adapted from core.Graph.Clone — no shared
// ownership between graphs (spec.md §3 "Graph" invariant).
package graph

// Clone returns a deep copy of g: an independent Vertices/Edges slice tree
// sharing no backing array with g. Tombstoned vertices/edges are preserved
// as tombstones so that indices remain stable across the copy.
func (g *Graph) Clone() *Graph {
	out := &Graph{
		Vertices: make([]Vertex, len(g.Vertices)),
		Edges:    make([]Edge, len(g.Edges)),
	}
	for i, v := range g.Vertices {
		out.Vertices[i] = v
		out.Vertices[i].Adjacency = append([]int(nil), v.Adjacency...)
	}
	copy(out.Edges, g.Edges)

	return out
}

// Compact returns a dense copy of g with every tombstoned vertex and edge
// physically removed and every surviving index renumbered from 0. It
// returns the new graph plus the old->new index maps for vertices and
// edges, which a caller can use to remap anything that still references
// the old indices, such as Instance lists.
func (g *Graph) Compact() (out *Graph, vertexMap, edgeMap map[int]int) {
	out = New()
	vertexMap = make(map[int]int, len(g.Vertices))
	edgeMap = make(map[int]int, len(g.Edges))

	for i, v := range g.Vertices {
		if v.deleted {
			continue
		}
		nv := out.AddVertex(v.LabelIdx, v.Provenance)
		out.Vertices[nv].Coloring = v.Coloring
		out.Vertices[nv].Anomalous = v.Anomalous
		out.Vertices[nv].CompressionIteration = v.CompressionIteration
		vertexMap[i] = nv
	}
	for i, e := range g.Edges {
		if e.deleted {
			continue
		}
		nv1, ok1 := vertexMap[e.V1]
		nv2, ok2 := vertexMap[e.V2]
		if !ok1 || !ok2 {
			continue
		}
		ne, _ := out.AddEdge(nv1, nv2, e.LabelIdx, e.Directed, e.Provenance)
		out.Edges[ne].Coloring = e.Coloring
		out.Edges[ne].Anomalous = e.Anomalous
		edgeMap[i] = ne
	}

	return out, vertexMap, edgeMap
}
