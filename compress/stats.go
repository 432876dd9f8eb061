// File: stats.go
// Role: ExternalEdgeStats, the externalEdges/selfEdgesOnSub counts
// mdl.ExternalEdgeBits needs (spec.md §4.2). Computed by running Compress
// itself against a throwaway registry clone and inspecting its output,
// rather than a second hand-written classification that could diverge from
// Compress's actual edge-duplication behavior.
package compress

import (
	"github.com/anomgraph/gbad/graph"
	"github.com/anomgraph/gbad/label"
	"github.com/anomgraph/gbad/substructure"
)

// ExternalEdgeStats reports, for the compression Compress(host, registry,
// sub, iteration) would produce: externalEdges, the number of (edge,
// SUB-vertex-endpoint) pairs where the edge does not land entirely on one
// SUB vertex, and selfEdgesOnSub, the number of edges that do land entirely
// on a single SUB vertex without being absorbed into its own definition.
func ExternalEdgeStats(host *graph.Graph, registry *label.Registry, sub *substructure.Substructure) (externalEdges, selfEdgesOnSub int) {
	scratch := registry.Clone()
	result := Compress(host, scratch, sub, 0)
	numSub := len(sub.Instances)

	overlapIdx, ok := scratch.Lookup(label.StringLabel("OVERLAP_0"))

	for i := range result.Graph.Edges {
		if !result.Graph.HasEdge(i) {
			continue
		}
		e := result.Graph.Edges[i]
		if ok && e.LabelIdx == overlapIdx {
			continue
		}
		isSub1, isSub2 := e.V1 < numSub, e.V2 < numSub
		switch {
		case isSub1 && isSub2 && e.V1 == e.V2:
			selfEdgesOnSub++
		default:
			if isSub1 {
				externalEdges++
			}
			if isSub2 {
				externalEdges++
			}
		}
	}

	return externalEdges, selfEdgesOnSub
}
