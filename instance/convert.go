// File: convert.go
// Role: ToGraph, the Instance -> graph.Graph projection spec.md §8 names
// directly ("InstanceToGraph(I, host)").
package instance

import "github.com/anomgraph/gbad/graph"

// ToGraph builds a standalone graph.Graph from inst's vertices and edges as
// they appear in host, renumbering vertices 0..n-1 in ascending host-index
// order (inst.Vertices is already sorted, so this numbering is
// deterministic and stable across calls for the same instance). Each
// resulting vertex's Provenance.SourceVertex records the host vertex index
// it came from, so anomaly reporting can recover the original vertex.
func ToGraph(inst *Instance, host *graph.Graph) *graph.Graph {
	out := graph.New()
	hostToLocal := make(map[int]int, len(inst.Vertices))

	for _, hv := range inst.Vertices {
		local := out.AddVertex(host.Vertices[hv].LabelIdx, graph.Provenance{
			SourceVertex:  hv,
			SourceExample: host.Vertices[hv].Provenance.SourceExample,
			OriginalIndex: host.Vertices[hv].Provenance.OriginalIndex,
		})
		hostToLocal[hv] = local
	}

	for _, he := range inst.Edges {
		e := host.Edges[he]
		lv1, ok1 := hostToLocal[e.V1]
		lv2, ok2 := hostToLocal[e.V2]
		if !ok1 || !ok2 {
			continue
		}
		_, _ = out.AddEdge(lv1, lv2, e.LabelIdx, e.Directed, graph.EdgeProvenance{
			SourceV1:      e.V1,
			SourceV2:      e.V2,
			SourceExample: e.Provenance.SourceExample,
			OriginalIndex: e.Provenance.OriginalIndex,
		})
	}

	return out
}
