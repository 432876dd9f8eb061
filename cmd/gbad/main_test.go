package main

import (
	"testing"

	"github.com/anomgraph/gbad/graph"
)

func triangleHost(t *testing.T) *graph.Graph {
	t.Helper()
	host := graph.New()
	a := host.AddVertex(1, graph.Provenance{})
	b := host.AddVertex(1, graph.Provenance{})
	c := host.AddVertex(2, graph.Provenance{})
	if _, err := host.AddEdge(a, b, 9, false, graph.EdgeProvenance{}); err != nil {
		t.Fatalf("AddEdge a-b: %v", err)
	}
	if _, err := host.AddEdge(b, c, 9, false, graph.EdgeProvenance{}); err != nil {
		t.Fatalf("AddEdge b-c: %v", err)
	}

	return host
}

func TestSeedByLabel_GroupsOneSubstructurePerRepeatedLabel(t *testing.T) {
	host := triangleHost(t)
	subs := seedByLabel(host)
	if len(subs) != 1 {
		t.Fatalf("expected 1 substructure (label 1 occurs twice, label 2 once), got %d", len(subs))
	}
	total := 0
	for _, s := range subs {
		total += len(s.Instances)
	}
	if total != 2 {
		t.Fatalf("expected 2 total seed instances for the repeated label, got %d", total)
	}
}

func TestFindInstances_LocatesExactMatchesOfDefinition(t *testing.T) {
	host := triangleHost(t)
	def := graph.New()
	dv1 := def.AddVertex(1, graph.Provenance{})
	dv2 := def.AddVertex(1, graph.Provenance{})
	if _, err := def.AddEdge(dv1, dv2, 9, false, graph.EdgeProvenance{}); err != nil {
		t.Fatalf("AddEdge def: %v", err)
	}

	found := findInstances(host, def)
	if len(found) != 1 {
		t.Fatalf("expected exactly 1 matching instance (a-b), got %d", len(found))
	}
}

func TestFindInstances_EmptyWhenDefinitionNeverOccurs(t *testing.T) {
	host := triangleHost(t)
	def := graph.New()
	dv1 := def.AddVertex(2, graph.Provenance{})
	dv2 := def.AddVertex(2, graph.Provenance{})
	if _, err := def.AddEdge(dv1, dv2, 9, false, graph.EdgeProvenance{}); err != nil {
		t.Fatalf("AddEdge def: %v", err)
	}

	found := findInstances(host, def)
	if len(found) != 0 {
		t.Fatalf("expected no matches for a definition absent from the host, got %d", len(found))
	}
}
