// File: compress.go
// Role: the SUB/OVERLAP compression procedure of spec.md §4.5.
package compress

import (
	"fmt"

	"github.com/anomgraph/gbad/graph"
	"github.com/anomgraph/gbad/label"
	"github.com/anomgraph/gbad/substructure"
)

// Result is the output of Compress: the compressed host graph, its rebuilt
// (compacted) label registry, and the index each instance's SUB vertex was
// assigned in the compressed graph, in sub.Instances order.
type Result struct {
	Graph     *graph.Graph
	Registry  *label.Registry
	SubVertex []int
}

// Compress replaces every instance of sub with a SUB_<iteration> vertex in
// host, wires OVERLAP_<iteration> edges between SUB vertices of
// vertex-sharing instances, duplicates surviving external edges onto every
// SUB vertex their endpoint maps to, and rebuilds registry to drop any
// label no longer referenced (spec.md §4.5).
func Compress(host *graph.Graph, registry *label.Registry, sub *substructure.Substructure, iteration int) Result {
	subLabel := registry.Intern(label.StringLabel(fmt.Sprintf("SUB_%d", iteration)))
	overlapLabel := registry.Intern(label.StringLabel(fmt.Sprintf("OVERLAP_%d", iteration)))

	owned := membership(sub.Instances)

	out := graph.New()
	outVertexOf := make(map[int]int, len(host.Vertices)) // host vertex -> out vertex, for uncovered vertices
	subVertexOf := make([]int, len(sub.Instances))       // instance position -> out vertex

	for i := range sub.Instances {
		idx := out.AddVertex(subLabel, graph.Provenance{
			SourceVertex:  graph.UnmappedVertex,
			SourceExample: -1,
		})
		out.Vertices[idx].CompressionIteration = iteration
		subVertexOf[i] = idx
	}
	for v := range host.Vertices {
		if !host.HasVertex(v) {
			continue
		}
		if _, covered := owned[v]; covered {
			continue
		}
		outVertexOf[v] = out.AddVertex(host.Vertices[v].LabelIdx, host.Vertices[v].Provenance)
	}

	endpoint := func(v int) func(instancePos int) int {
		return func(instancePos int) int {
			if instancePos == -1 {
				return outVertexOf[v]
			}

			return subVertexOf[instancePos]
		}
	}

	for e := range host.Edges {
		if !host.HasEdge(e) {
			continue
		}
		edge := host.Edges[e]
		i1s, i2s := owners(owned, edge.V1), owners(owned, edge.V2)

		if len(i1s) == 1 && len(i2s) == 1 && i1s[0] != -1 && i1s[0] == i2s[0] && sub.Instances[i1s[0]].HasEdge(e) {
			continue // fully internal to one instance's own definition: absorbed
		}

		toV1, toV2 := endpoint(edge.V1), endpoint(edge.V2)
		for _, i1 := range i1s {
			for _, i2 := range i2s {
				_, _ = out.AddEdge(toV1(i1), toV2(i2), edge.LabelIdx, edge.Directed, graph.EdgeProvenance{
					SourceV1:      edge.V1,
					SourceV2:      edge.V2,
					SourceExample: edge.Provenance.SourceExample,
					OriginalIndex: edge.Provenance.OriginalIndex,
				})
			}
		}
	}

	for _, pair := range sharingPairs(sub.Instances) {
		_, _ = out.AddEdge(subVertexOf[pair[0]], subVertexOf[pair[1]], overlapLabel, false, graph.EdgeProvenance{})
	}

	newRegistry, remap := registry.Rebuild(usedLabels(out))
	for i := range out.Vertices {
		out.Vertices[i].LabelIdx = remap[out.Vertices[i].LabelIdx]
	}
	for i := range out.Edges {
		out.Edges[i].LabelIdx = remap[out.Edges[i].LabelIdx]
	}

	return Result{Graph: out, Registry: newRegistry, SubVertex: subVertexOf}
}

// usedLabels returns, in first-seen order, every label index g's live
// vertices and edges reference.
func usedLabels(g *graph.Graph) []int {
	seen := make(map[int]bool)
	var used []int
	for i := range g.Vertices {
		if !g.HasVertex(i) {
			continue
		}
		if idx := g.Vertices[i].LabelIdx; !seen[idx] {
			seen[idx] = true
			used = append(used, idx)
		}
	}
	for i := range g.Edges {
		if !g.HasEdge(i) {
			continue
		}
		if idx := g.Edges[i].LabelIdx; !seen[idx] {
			seen[idx] = true
			used = append(used, idx)
		}
	}

	return used
}
