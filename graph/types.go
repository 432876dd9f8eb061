package graph

import "errors"

// Sentinel errors for core graph operations, in the style of
// core.ErrVertexNotFound et al. from the teacher package this was adapted
// from.
var (
	// ErrVertexNotFound indicates an operation referenced a vertex index
	// outside the graph's current vertex array, or one marked deleted.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced an edge index
	// outside the graph's current edge array, or one marked deleted.
	ErrEdgeNotFound = errors.New("graph: edge not found")
)

// UnmappedVertex and DeletedVertex are the sentinel values spec.md §3
// reserves for algorithm-owned vertex-index-keyed scratch arrays (the
// matcher's partial mapping). They are not stored on Vertex itself (see
// doc.go); they live here so every algorithm building such a scratch array
// agrees on the same two sentinels.
const (
	UnmappedVertex = -1
	DeletedVertex  = -2
)

// Provenance records where a vertex originally came from, for anomaly
// reporting ("in original example Y", spec.md §6).
type Provenance struct {
	SourceVertex  int // index this vertex was copied/derived from, or -1
	SourceExample int // 0-based index of the host example (top-level component)
	OriginalIndex int // 1-based vertex number as it appeared in the input file
}

// EdgeProvenance is the edge analogue of Provenance.
type EdgeProvenance struct {
	SourceV1      int
	SourceV2      int
	SourceExample int
	OriginalIndex int
}

// Coloring holds the anomaly-visualization fields spec.md §3 attaches to
// vertices and edges: a display color plus the numeric anomaly value that
// produced it.
type Coloring struct {
	Color          string
	AnomalousValue float64
}

// Vertex is one node of a Graph. LabelIdx indexes into the label.Registry
// used by the owning Graph. Adjacency lists the indices, into the owning
// Graph's Edges slice, of every edge incident to this vertex; per spec.md
// §3 a self-edge appears exactly once.
type Vertex struct {
	LabelIdx   int
	Adjacency  []int
	Provenance Provenance
	Coloring   Coloring
	Anomalous  bool

	// CompressionIteration is the 1-based compress.Compress iteration that
	// introduced this vertex as a SUB_k vertex, or 0 if it was never a
	// compression product. A boolean-flavored int field, not a "SUB_"
	// label-string prefix test, per spec.md §9's open question about that
	// string-matching being brittle.
	CompressionIteration int

	deleted bool
}

// Edge connects V1 to V2. Directed distinguishes a directed edge
// (V1 -> V2) from an undirected one. LabelIdx indexes into the same
// label.Registry as every Vertex of the owning Graph.
type Edge struct {
	V1, V2     int
	LabelIdx   int
	Directed   bool
	Provenance EdgeProvenance
	Coloring   Coloring
	Anomalous  bool
	deleted    bool
}

// Graph owns its Vertices and Edges outright (spec.md §9): every other
// structure in this module refers to a Graph's contents by index, never by
// pointer, so a Graph can be deep-copied by copying its two slices.
//
// Removed vertices/edges are tombstoned (Vertex.deleted / Edge.deleted)
// rather than compacted in place, because compaction would invalidate every
// index an Instance holds. Compact rebuilds a dense Graph from a live one
// when a caller is ready to pay that cost.
type Graph struct {
	Vertices []Vertex
	Edges    []Edge
}

// New returns an empty Graph.
func New() *Graph {
	return &Graph{}
}
