// Package instance implements the Instance algebra of spec.md §3: a specific
// subgraph of a host graph.Graph, recorded as a strictly increasing vertex
// index list and edge index list, plus a mapping from substructure
// definition-vertex indices to host vertex indices.
//
// An Instance never copies host graph data; it only ever holds indices into
// the graph.Graph it was built against (spec.md §9). Of the anomaly fields,
// AnomalousVertices and AnomalousEdges are set by package extend when
// extension marks new elements; no package in this module sets
// InfoAnomValue, ProbAnomValue, MPSAnomValue or Frequency (the anomaly
// package reports costs and frequencies on anomaly.Candidate instead).
package instance
