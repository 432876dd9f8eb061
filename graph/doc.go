// Package graph implements the host-graph store described in spec.md §3:
// index-addressed vertex and edge arrays with per-vertex adjacency index
// arrays, provenance fields, and anomaly coloring.
//
// Per spec.md §9 ("From manual memory to ownership"), a Graph owns its
// Vertex and Edge slices outright; every other structure in this module
// (Instance, Substructure, the matcher, the extender) refers to vertices and
// edges by index into a Graph, never by pointer. Scratch state used by
// specific algorithms (the matcher's partial vertex mapping, a reachability
// visited-set) is *not* stored on Graph, Vertex, or Edge — per spec.md §9
// "Scratch flags", each algorithm owns an index-keyed array of its own and
// discards it when it returns.
//
// Example:
//
//	g := graph.New()
//	a := g.AddVertex(labelIdx, graph.Provenance{})
//	b := g.AddVertex(labelIdx, graph.Provenance{})
//	e, _ := g.AddEdge(a, b, labelIdx, false, graph.EdgeProvenance{})
//	_ = e
package graph
