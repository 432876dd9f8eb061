package discover_test

import (
	"testing"

	"github.com/anomgraph/gbad/discover"
	"github.com/anomgraph/gbad/graph"
	"github.com/anomgraph/gbad/instance"
	"github.com/anomgraph/gbad/substructure"
)

// triangleHost builds a 3-cycle a-b-c-a, all vertices and edges identically
// labeled, so every single-vertex seed expands identically.
func triangleHost(t *testing.T) (*graph.Graph, int, int, int) {
	t.Helper()
	g := graph.New()
	a := g.AddVertex(1, graph.Provenance{})
	b := g.AddVertex(1, graph.Provenance{})
	c := g.AddVertex(1, graph.Provenance{})
	for _, e := range [][2]int{{a, b}, {b, c}, {c, a}} {
		if _, err := g.AddEdge(e[0], e[1], 9, false, graph.EdgeProvenance{}); err != nil {
			t.Fatalf("AddEdge: %v", err)
		}
	}

	return g, a, b, c
}

func seedAllVertices(host *graph.Graph) []*substructure.Substructure {
	def := graph.New()
	def.AddVertex(1, graph.Provenance{})
	seed := substructure.New(def)
	for i := range host.Vertices {
		inst := instance.New()
		inst.AddVertex(i)
		seed.Instances = append(seed.Instances, inst)
	}

	return []*substructure.Substructure{seed}
}

func TestRun_RejectsMissingEvaluate(t *testing.T) {
	host, _, _, _ := triangleHost(t)
	_, err := discover.Run(host, seedAllVertices(host))
	if err != discover.ErrNilEvaluator {
		t.Fatalf("expected ErrNilEvaluator, got %v", err)
	}
}

func TestRun_GrowsSubstructuresUpToMaxVertices(t *testing.T) {
	host, _, _, _ := triangleHost(t)
	seeds := seedAllVertices(host)

	best, err := discover.Run(host, seeds,
		discover.WithEvaluate(func(s *substructure.Substructure) float64 {
			return float64(s.Size())
		}),
		discover.WithSizeBounds(1, 3),
		discover.WithBeamWidth(2),
		discover.WithNumBestSubs(2),
		discover.WithPrune(false),
	)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(best) == 0 {
		t.Fatalf("expected at least one kept substructure")
	}
	for _, s := range best {
		if s.Definition.NumVertices() > 3 {
			t.Fatalf("expected no substructure larger than MaxVertices=3, got %d vertices", s.Definition.NumVertices())
		}
	}
}

func TestRun_SingleRoundOnlyStopsAfterOneExpansion(t *testing.T) {
	host, _, _, _ := triangleHost(t)
	seeds := seedAllVertices(host)

	best, err := discover.Run(host, seeds,
		discover.WithEvaluate(func(s *substructure.Substructure) float64 { return float64(s.Size()) }),
		discover.WithSizeBounds(1, 3),
		discover.WithPrune(false),
		discover.WithSingleRoundOnly(),
	)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for _, s := range best {
		if s.Definition.NumVertices() > 2 {
			t.Fatalf("expected SingleRoundOnly to stop after one edge was added, got %d vertices", s.Definition.NumVertices())
		}
	}
}
