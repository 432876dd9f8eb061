package anomaly_test

import (
	"testing"

	"github.com/anomgraph/gbad/anomaly"
	"github.com/anomgraph/gbad/graph"
	"github.com/anomgraph/gbad/matcher"
	"github.com/anomgraph/gbad/substructure"
)

// mismatchHost builds a-b-c-d, all vertices labeled 1, edges ab and bc
// labeled 9 (matching the normative shape exactly) and edge cd labeled 5
// (an anomalous deviation).
func mismatchHost(t *testing.T) *graph.Graph {
	t.Helper()
	host := graph.New()
	a := host.AddVertex(1, graph.Provenance{})
	b := host.AddVertex(1, graph.Provenance{})
	c := host.AddVertex(1, graph.Provenance{})
	d := host.AddVertex(1, graph.Provenance{})
	if _, err := host.AddEdge(a, b, 9, false, graph.EdgeProvenance{}); err != nil {
		t.Fatalf("AddEdge a-b: %v", err)
	}
	if _, err := host.AddEdge(b, c, 9, false, graph.EdgeProvenance{}); err != nil {
		t.Fatalf("AddEdge b-c: %v", err)
	}
	if _, err := host.AddEdge(c, d, 5, false, graph.EdgeProvenance{}); err != nil {
		t.Fatalf("AddEdge c-d: %v", err)
	}

	return host
}

func edgeNormative() *substructure.Substructure {
	def := graph.New()
	def.AddVertex(1, graph.Provenance{})
	def.AddVertex(1, graph.Provenance{})
	_, _ = def.AddEdge(0, 1, 9, false, graph.EdgeProvenance{})

	return substructure.New(def)
}

func TestITMDL_FindsLabelDeviation(t *testing.T) {
	host := mismatchHost(t)
	normative := edgeNormative()

	result := anomaly.ITMDL(host, normative, anomaly.ITMDLOptions{
		Threshold:    1,
		CostModel:    matcher.DefaultCost(),
		MinAnomScore: 0,
		MaxAnomScore: 10,
	})

	if result.State != anomaly.StateEmitted {
		t.Fatalf("expected an emitted anomaly, got state %v", result.State)
	}
	if len(result.Candidates) == 0 {
		t.Fatalf("expected at least one candidate")
	}
	for _, c := range result.Candidates {
		if c.Cost <= 0 {
			t.Fatalf("expected only strictly positive costs (exact matches excluded), got %v", c.Cost)
		}
	}
}

func TestITMDL_EmptyWhenNoVertexLabelMatches(t *testing.T) {
	host := graph.New()
	host.AddVertex(99, graph.Provenance{})
	normative := edgeNormative()

	result := anomaly.ITMDL(host, normative, anomaly.ITMDLOptions{
		Threshold:    1,
		CostModel:    matcher.DefaultCost(),
		MaxAnomScore: 10,
	})
	if result.State != anomaly.StateScored {
		t.Fatalf("expected StateScored with no candidates, got %v", result.State)
	}
	if len(result.Candidates) != 0 {
		t.Fatalf("expected no candidates, got %d", len(result.Candidates))
	}
}

func TestMPS_FindsPartialSubgraphs(t *testing.T) {
	host := mismatchHost(t)
	normative := edgeNormative()

	result := anomaly.MPS(host, normative, anomaly.MPSOptions{
		Threshold:    2,
		CostModel:    matcher.DefaultCost(),
		MinAnomScore: 0,
		MaxAnomScore: 100,
	})

	for _, c := range result.Candidates {
		if c.Instance.NumVertices()+c.Instance.NumEdges() >= normative.Size() {
			t.Fatalf("expected MPS candidates strictly smaller than the normative, got size %d vs %d",
				c.Instance.NumVertices()+c.Instance.NumEdges(), normative.Size())
		}
	}
}

func TestProbabilisticIteration_ScoresByRarity(t *testing.T) {
	host := mismatchHost(t)
	// Treat vertex b as the sole SUB vertex left behind by compressing iteration 1.
	b := 1

	result := anomaly.ProbabilisticIteration(host, []int{b}, 10, anomaly.ProbOptions{
		MinAnomScore: 0,
		MaxAnomScore: 1,
	})
	if result.State != anomaly.StateEmitted && result.State != anomaly.StateScored {
		t.Fatalf("unexpected state %v", result.State)
	}
	for _, c := range result.Candidates {
		if !c.Instance.HasVertex(b) {
			t.Fatalf("expected every rediscovered instance to include the SUB vertex")
		}
	}
}

func TestProbabilisticIteration_PoolsExtensionsAcrossAllSubVertices(t *testing.T) {
	host := mismatchHost(t)
	result := anomaly.ProbabilisticIteration(host, []int{1, 2}, 10, anomaly.ProbOptions{
		MinAnomScore: 0,
		MaxAnomScore: 1,
	})
	if result.State != anomaly.StateEmitted && result.State != anomaly.StateScored {
		t.Fatalf("unexpected state %v", result.State)
	}
}

func TestProbabilisticIteration_EmptyForUnknownVertex(t *testing.T) {
	host := mismatchHost(t)
	result := anomaly.ProbabilisticIteration(host, []int{999}, 10, anomaly.ProbOptions{MaxAnomScore: 1})
	if result.State != anomaly.StateScored {
		t.Fatalf("expected StateScored when no SUB vertex resolves in host, got %v", result.State)
	}
	if len(result.Candidates) != 0 {
		t.Fatalf("expected no candidates")
	}
}
