package extend_test

import (
	"testing"

	"github.com/anomgraph/gbad/extend"
	"github.com/anomgraph/gbad/graph"
	"github.com/anomgraph/gbad/instance"
	"github.com/anomgraph/gbad/substructure"
)

// path builds a <- b -> c, three same-labeled vertices joined by two
// identically labeled undirected edges.
func path(t *testing.T) (host *graph.Graph, a, b, c int) {
	t.Helper()
	host = graph.New()
	a = host.AddVertex(1, graph.Provenance{})
	b = host.AddVertex(1, graph.Provenance{})
	c = host.AddVertex(1, graph.Provenance{})
	if _, err := host.AddEdge(a, b, 9, false, graph.EdgeProvenance{}); err != nil {
		t.Fatalf("AddEdge a-b: %v", err)
	}
	if _, err := host.AddEdge(b, c, 9, false, graph.EdgeProvenance{}); err != nil {
		t.Fatalf("AddEdge b-c: %v", err)
	}

	return host, a, b, c
}

func singleVertexSeed(b int) *substructure.Substructure {
	def := graph.New()
	def.AddVertex(1, graph.Provenance{})
	parent := substructure.New(def)
	inst := instance.New()
	inst.AddVertex(b)
	parent.Instances = []*instance.Instance{inst}

	return parent
}

func TestExtend_SymmetricExtensionsGroupIntoOneChild(t *testing.T) {
	host, _, b, _ := path(t)
	parent := singleVertexSeed(b)

	children := extend.Extend(host, parent, extend.WithAllowOverlap())
	if len(children) != 1 {
		t.Fatalf("expected both single-edge extensions to group into one child, got %d children", len(children))
	}
	if got := len(children[0].Instances); got != 2 {
		t.Fatalf("expected 2 instances in the merged child, got %d", got)
	}
	for _, inst := range children[0].Instances {
		if inst.NumVertices() != 2 || inst.NumEdges() != 1 {
			t.Fatalf("expected each extended instance to have 2 vertices and 1 edge, got %d/%d", inst.NumVertices(), inst.NumEdges())
		}
	}
}

func TestExtend_MarkAnomalousFlagsNewElements(t *testing.T) {
	host, a, b, _ := path(t)

	def := graph.New()
	def.AddVertex(1, graph.Provenance{})
	parent := substructure.New(def)
	inst := instance.New()
	inst.AddVertex(a)
	parent.Instances = []*instance.Instance{inst}

	children := extend.Extend(host, parent, extend.WithMarkAnomalous())
	if len(children) != 1 {
		t.Fatalf("expected 1 child, got %d", len(children))
	}
	got := children[0].Instances[0]
	if len(got.AnomalousVertices) != 1 || got.AnomalousVertices[0] != b {
		t.Fatalf("expected new vertex %d marked anomalous, got %v", b, got.AnomalousVertices)
	}
	if len(got.AnomalousEdges) != 1 {
		t.Fatalf("expected the new edge marked anomalous, got %v", got.AnomalousEdges)
	}
}

func TestExtend_OverlapRejectedByDefault(t *testing.T) {
	host := graph.New()
	a := host.AddVertex(1, graph.Provenance{})
	b := host.AddVertex(1, graph.Provenance{})
	c := host.AddVertex(1, graph.Provenance{})
	if _, err := host.AddEdge(a, b, 9, false, graph.EdgeProvenance{}); err != nil {
		t.Fatalf("AddEdge a-b: %v", err)
	}
	if _, err := host.AddEdge(a, c, 9, false, graph.EdgeProvenance{}); err != nil {
		t.Fatalf("AddEdge a-c: %v", err)
	}

	def := graph.New()
	def.AddVertex(1, graph.Provenance{})
	parent := substructure.New(def)
	inst := instance.New()
	inst.AddVertex(a)
	parent.Instances = []*instance.Instance{inst}

	children := extend.Extend(host, parent)
	if len(children) != 1 {
		t.Fatalf("expected 1 child, got %d", len(children))
	}
	if got := len(children[0].Instances); got != 1 {
		t.Fatalf("expected overlapping second extension rejected by default, got %d instances", got)
	}
}

func TestExtend_AllowOverlapAdmitsBoth(t *testing.T) {
	host := graph.New()
	a := host.AddVertex(1, graph.Provenance{})
	b := host.AddVertex(1, graph.Provenance{})
	c := host.AddVertex(1, graph.Provenance{})
	if _, err := host.AddEdge(a, b, 9, false, graph.EdgeProvenance{}); err != nil {
		t.Fatalf("AddEdge a-b: %v", err)
	}
	if _, err := host.AddEdge(a, c, 9, false, graph.EdgeProvenance{}); err != nil {
		t.Fatalf("AddEdge a-c: %v", err)
	}

	def := graph.New()
	def.AddVertex(1, graph.Provenance{})
	parent := substructure.New(def)
	inst := instance.New()
	inst.AddVertex(a)
	parent.Instances = []*instance.Instance{inst}

	children := extend.Extend(host, parent, extend.WithAllowOverlap())
	if len(children) != 1 {
		t.Fatalf("expected 1 child, got %d", len(children))
	}
	if got := len(children[0].Instances); got != 2 {
		t.Fatalf("expected both overlapping extensions admitted, got %d instances", got)
	}
}
