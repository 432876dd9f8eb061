package format_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/anomgraph/gbad/anomaly"
	"github.com/anomgraph/gbad/format"
	"github.com/anomgraph/gbad/instance"
)

const triangleInput = `
XP
v 1 a
v 2 a
v 3 b
e 1 2 x
e 2 3 x
e 3 1 x
`

func TestRead_ParsesVerticesAndEdges(t *testing.T) {
	doc, err := format.Read(strings.NewReader(triangleInput), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.NumExamples != 1 {
		t.Fatalf("expected 1 example, got %d", doc.NumExamples)
	}
	if doc.Host.NumVertices() != 3 || doc.Host.NumEdges() != 3 {
		t.Fatalf("expected 3 vertices and 3 edges, got %d/%d", doc.Host.NumVertices(), doc.Host.NumEdges())
	}
}

func TestRead_RejectsEmptyInput(t *testing.T) {
	_, err := format.Read(strings.NewReader("% just a comment\n"), false)
	if err == nil {
		t.Fatalf("expected error for input with no XP block")
	}
}

func TestRead_RejectsUndeclaredVertexInEdge(t *testing.T) {
	bad := "XP\nv 1 a\ne 1 2 x\n"
	_, err := format.Read(strings.NewReader(bad), false)
	if err == nil {
		t.Fatalf("expected parse error for edge referencing undeclared vertex 2")
	}
}

func TestRead_DirectedFlagControlsPlainEdgeKeyword(t *testing.T) {
	input := "XP\nv 1 a\nv 2 a\ne 1 2 x\n"
	doc, err := format.Read(strings.NewReader(input), true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !doc.Host.Edges[0].Directed {
		t.Fatalf("expected e-line to be directed when directed=true")
	}
}

func TestWriteCompressed_RoundTripsThroughRead(t *testing.T) {
	doc, err := format.Read(strings.NewReader(triangleInput), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var buf bytes.Buffer
	if err := format.WriteCompressed(&buf, doc.Registry, doc.Host); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc2, err := format.Read(&buf, false)
	if err != nil {
		t.Fatalf("unexpected error re-reading written output: %v", err)
	}
	if doc2.Host.NumVertices() != doc.Host.NumVertices() || doc2.Host.NumEdges() != doc.Host.NumEdges() {
		t.Fatalf("round trip mismatch: got %d/%d want %d/%d",
			doc2.Host.NumVertices(), doc2.Host.NumEdges(), doc.Host.NumVertices(), doc.Host.NumEdges())
	}
}

func TestWriteAnomalousInstances_EmitsNoneForEmptyCandidates(t *testing.T) {
	doc, err := format.Read(strings.NewReader(triangleInput), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var buf bytes.Buffer
	if err := format.WriteAnomalousInstances(&buf, doc.Registry, doc.Host, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "NONE") {
		t.Fatalf("expected NONE marker for empty candidates, got %q", buf.String())
	}
}

func TestWriteAnomalousInstances_MarksFlaggedVertex(t *testing.T) {
	doc, err := format.Read(strings.NewReader(triangleInput), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	inst := instance.New()
	inst.AddVertex(2)
	inst.AnomalousVertices = []int{2}

	var buf bytes.Buffer
	c := anomaly.Candidate{Instance: inst, Cost: 1, Frequency: 1, Score: 1}
	if err := format.WriteAnomalousInstances(&buf, doc.Registry, doc.Host, []anomaly.Candidate{c}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "<-- anomaly") {
		t.Fatalf("expected anomaly suffix in output, got %q", buf.String())
	}
}
