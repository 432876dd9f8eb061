// Package matcher implements the inexact graph matcher of spec.md §4.1: a
// best-first, A*-style search over partial vertex mappings that returns the
// minimum graph-edit-distance cost (and, if requested, the mapping that
// achieves it) between two graph.Graph values.
//
// Matching assumes both graphs' label indices were interned into the same
// label.Registry (or a Registry and a clone of it before any Rebuild call);
// Match never dereferences a Registry itself; it compares LabelIdx values
// directly, so callers are responsible for that precondition.
//
// The search frontier is a container/heap, the same stdlib package
// gonum.org/v1/gonum/graph/path uses for its own best-first Dijkstra search
// (see DESIGN.md). Nodes are partial vertex mappings; the priority is the
// admissible-by-construction lower bound spec.md §4.1 defines: cost
// accumulated so far, plus the forced cost of deleting every G1 edge that
// already touches a vertex mapped to Deleted, plus an optimistic per-vertex
// insertion lower bound for G2 vertices not yet claimed by the mapping. The
// exact edge-matching cost of a *complete* mapping is computed once, when
// that mapping reaches the front of the heap, by evaluateMapping.
package matcher
