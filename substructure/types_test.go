package substructure_test

import (
	"testing"

	"github.com/anomgraph/gbad/graph"
	"github.com/anomgraph/gbad/substructure"
)

func TestIsConnected_Triangle(t *testing.T) {
	g := graph.New()
	a := g.AddVertex(0, graph.Provenance{})
	b := g.AddVertex(0, graph.Provenance{})
	c := g.AddVertex(0, graph.Provenance{})
	_, _ = g.AddEdge(a, b, 1, false, graph.EdgeProvenance{})
	_, _ = g.AddEdge(b, c, 1, false, graph.EdgeProvenance{})
	_, _ = g.AddEdge(c, a, 1, false, graph.EdgeProvenance{})

	if !substructure.IsConnected(g) {
		t.Fatalf("expected a triangle to be connected")
	}
}

func TestIsConnected_TwoComponents(t *testing.T) {
	g := graph.New()
	a := g.AddVertex(0, graph.Provenance{})
	b := g.AddVertex(0, graph.Provenance{})
	c := g.AddVertex(0, graph.Provenance{})
	d := g.AddVertex(0, graph.Provenance{})
	_, _ = g.AddEdge(a, b, 1, false, graph.EdgeProvenance{})
	_, _ = g.AddEdge(c, d, 1, false, graph.EdgeProvenance{})

	if substructure.IsConnected(g) {
		t.Fatalf("expected two disjoint edges to be disconnected")
	}
}

func TestIsConnected_SingleVertex(t *testing.T) {
	g := graph.New()
	g.AddVertex(0, graph.Provenance{})

	if !substructure.IsConnected(g) {
		t.Fatalf("expected a single vertex to be trivially connected")
	}
}
