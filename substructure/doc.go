// Package substructure implements the Substructure type of spec.md §3: a
// definition graph, its list of host-graph instances, the number of
// distinct host examples it covers, and its evaluator value.
//
// IsConnected checks the definition-graph-connected invariant the same way
// subgen.c's connected()/propagate() do: a flood fill from vertex 0 over
// the definition's own adjacency, independent of the host graph.
package substructure
