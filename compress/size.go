// File: size.go
// Role: SizeOfCompressedGraph, spec.md §4.5's compression-size estimator
// that never materializes the compressed graph.
package compress

import (
	"github.com/anomgraph/gbad/graph"
	"github.com/anomgraph/gbad/substructure"
)

// SizeOfCompressedGraph returns |V|+|E| of the graph Compress would
// produce for sub against host, computed directly from host and sub's
// instances rather than by building the compressed graph.
func SizeOfCompressedGraph(host *graph.Graph, sub *substructure.Substructure) int {
	owned := membership(sub.Instances)

	vertexCount := len(sub.Instances)
	for v := range host.Vertices {
		if !host.HasVertex(v) {
			continue
		}
		if _, covered := owned[v]; !covered {
			vertexCount++
		}
	}

	edgeCount := 0
	for e := range host.Edges {
		if !host.HasEdge(e) {
			continue
		}
		edge := host.Edges[e]
		i1s, i2s := owners(owned, edge.V1), owners(owned, edge.V2)

		if len(i1s) == 1 && len(i2s) == 1 && i1s[0] != -1 && i1s[0] == i2s[0] && sub.Instances[i1s[0]].HasEdge(e) {
			continue
		}

		edgeCount += len(i1s) * len(i2s)
	}

	edgeCount += len(sharingPairs(sub.Instances))

	return vertexCount + edgeCount
}
