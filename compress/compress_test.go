package compress_test

import (
	"testing"

	"github.com/anomgraph/gbad/compress"
	"github.com/anomgraph/gbad/graph"
	"github.com/anomgraph/gbad/instance"
	"github.com/anomgraph/gbad/label"
	"github.com/anomgraph/gbad/substructure"
)

// sharedPath builds a-b-c with two overlapping instances {a,b} and {b,c},
// sharing vertex b.
func sharedPath(t *testing.T) (*graph.Graph, *substructure.Substructure) {
	t.Helper()
	host := graph.New()
	a := host.AddVertex(1, graph.Provenance{})
	b := host.AddVertex(1, graph.Provenance{})
	c := host.AddVertex(1, graph.Provenance{})
	e0, err := host.AddEdge(a, b, 9, false, graph.EdgeProvenance{})
	if err != nil {
		t.Fatalf("AddEdge a-b: %v", err)
	}
	e1, err := host.AddEdge(b, c, 9, false, graph.EdgeProvenance{})
	if err != nil {
		t.Fatalf("AddEdge b-c: %v", err)
	}

	def := graph.New()
	def.AddVertex(1, graph.Provenance{})
	def.AddVertex(1, graph.Provenance{})
	_, _ = def.AddEdge(0, 1, 9, false, graph.EdgeProvenance{})
	sub := substructure.New(def)

	inst1 := instance.New()
	inst1.AddVertex(a)
	inst1.AddVertex(b)
	inst1.AddEdge(e0)

	inst2 := instance.New()
	inst2.AddVertex(b)
	inst2.AddVertex(c)
	inst2.AddEdge(e1)

	sub.Instances = []*instance.Instance{inst1, inst2}

	return host, sub
}

func TestCompress_SharedVertexProducesOverlapAndSelfEdges(t *testing.T) {
	host, sub := sharedPath(t)
	registry := label.NewRegistry()
	registry.Intern(label.NumericLabel(1))
	registry.Intern(label.NumericLabel(9))

	result := compress.Compress(host, registry, sub, 1)

	if got := result.Graph.NumVertices(); got != 2 {
		t.Fatalf("expected 2 SUB vertices (no uncovered vertices left), got %d", got)
	}
	if got := result.Graph.NumEdges(); got != 5 {
		t.Fatalf("expected 5 edges (2 self + 2 duplicated + 1 overlap), got %d", got)
	}

	sizeEstimate := compress.SizeOfCompressedGraph(host, sub)
	if sizeEstimate != result.Graph.NumVertices()+result.Graph.NumEdges() {
		t.Fatalf("SizeOfCompressedGraph=%d disagrees with actual compressed size %d",
			sizeEstimate, result.Graph.NumVertices()+result.Graph.NumEdges())
	}
}

func TestExternalEdgeStats_MatchesCompressedEdgeCount(t *testing.T) {
	host, sub := sharedPath(t)
	registry := label.NewRegistry()
	registry.Intern(label.NumericLabel(1))
	registry.Intern(label.NumericLabel(9))

	external, selfEdges := compress.ExternalEdgeStats(host, registry, sub)
	if external+selfEdges == 0 {
		t.Fatalf("expected at least one external or self edge for a shared-vertex compression")
	}
}

func TestCompress_RebuildsRegistryDroppingUnusedLabels(t *testing.T) {
	host, sub := sharedPath(t)
	registry := label.NewRegistry()
	registry.Intern(label.NumericLabel(1))
	registry.Intern(label.NumericLabel(9))
	registry.Intern(label.StringLabel("never referenced again"))

	result := compress.Compress(host, registry, sub, 1)

	for _, v := range result.Graph.Vertices {
		if _, err := result.Registry.Label(v.LabelIdx); err != nil {
			t.Fatalf("vertex label %d not resolvable in rebuilt registry: %v", v.LabelIdx, err)
		}
	}
	if result.Registry.Len() >= registry.Len() {
		t.Fatalf("expected rebuilt registry to drop the unreferenced label, old len=%d new len=%d",
			registry.Len(), result.Registry.Len())
	}
}
