// File: writer.go
// Role: the three output forms of spec.md §6: human-readable reports,
// machine-readable discovered-substructure dumps, and the compressed-graph
// (`.cmp`) grammar dump. All three reuse the same line grammar Read parses.
package format

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/anomgraph/gbad/anomaly"
	"github.com/anomgraph/gbad/graph"
	"github.com/anomgraph/gbad/instance"
	"github.com/anomgraph/gbad/label"
	"github.com/anomgraph/gbad/substructure"
)

func renderLabel(reg *label.Registry, idx int) string {
	l, err := reg.Label(idx)
	if err != nil {
		return fmt.Sprintf("?%d", idx)
	}
	if l.Kind == label.Str && strings.ContainsAny(l.Text, " \t\"") {
		return fmt.Sprintf("%q", l.Text)
	}

	return l.String()
}

func edgeKeyword(e graph.Edge) string {
	if e.Directed {
		return "d"
	}

	return "u"
}

// writeGraphBody prints one XP/PS block's body (v lines then edge lines)
// for g using a fresh 1-based local vertex numbering, returning the
// host-index -> local-number map it assigned.
func writeGraphBody(w *bufio.Writer, reg *label.Registry, g *graph.Graph) map[int]int {
	local := map[int]int{}
	n := 0
	for i := range g.Vertices {
		if !g.HasVertex(i) {
			continue
		}
		n++
		local[i] = n
		fmt.Fprintf(w, "v %d %s\n", n, renderLabel(reg, g.Vertices[i].LabelIdx))
	}
	for i := range g.Edges {
		if !g.HasEdge(i) {
			continue
		}
		e := g.Edges[i]
		fmt.Fprintf(w, "%s %d %d %s\n", edgeKeyword(e), local[e.V1], local[e.V2], renderLabel(reg, e.LabelIdx))
	}

	return local
}

// WriteCompressed dumps g (typically compress.Compress's output) under the
// input grammar as a single XP block. A compressed graph has no further
// "positive example" structure of its own worth preserving, so it is
// written as one block rather than re-split by original example.
func WriteCompressed(out io.Writer, reg *label.Registry, g *graph.Graph) error {
	w := bufio.NewWriter(out)
	fmt.Fprintln(w, "XP")
	writeGraphBody(w, reg, g)

	return w.Flush()
}

// WriteMachineReadable writes subs in the machine-readable form of spec.md
// §6: the graph grammar, each substructure's definition preceded by
// `S <numInstances>`.
func WriteMachineReadable(out io.Writer, reg *label.Registry, subs []*substructure.Substructure) error {
	w := bufio.NewWriter(out)
	for _, s := range subs {
		fmt.Fprintf(w, "S %d\n", len(s.Instances))
		fmt.Fprintln(w, "XP")
		writeGraphBody(w, reg, s.Definition)
	}

	return w.Flush()
}

// WriteNormative writes the "Normative Pattern (k):" report for sub,
// ranked at position rank (1-based), per spec.md §6.
func WriteNormative(out io.Writer, reg *label.Registry, sub *substructure.Substructure, rank int) error {
	w := bufio.NewWriter(out)
	fmt.Fprintf(w, "Normative Pattern (%d):\n", rank)
	writeGraphBody(w, reg, sub.Definition)

	return w.Flush()
}

// WriteAnomalousInstances writes the "Anomalous Instance(s):" report for
// candidates in the order given, each under its own " from example N:"
// header naming the host example its vertices came from
// (graph.Provenance.SourceExample), per spec.md §6. Flagged vertices
// and edges get the ` <-- anomaly (original vertex: X , in original
// example Y)` suffix.
func WriteAnomalousInstances(out io.Writer, reg *label.Registry, host *graph.Graph, candidates []anomaly.Candidate) error {
	w := bufio.NewWriter(out)
	if len(candidates) == 0 {
		fmt.Fprintln(w, "Anomalous Instance(s): NONE")
		return w.Flush()
	}

	fmt.Fprintln(w, "Anomalous Instance(s):")
	for _, c := range candidates {
		exampleIdx := instanceExample(host, c.Instance)
		fmt.Fprintf(w, " from example %d:\n", exampleIdx)

		anomVertex := make(map[int]bool, len(c.Instance.AnomalousVertices))
		for _, v := range c.Instance.AnomalousVertices {
			anomVertex[v] = true
		}
		anomEdge := make(map[int]bool, len(c.Instance.AnomalousEdges))
		for _, e := range c.Instance.AnomalousEdges {
			anomEdge[e] = true
		}

		local := map[int]int{}
		n := 0
		for _, v := range c.Instance.Vertices {
			n++
			local[v] = n
			line := fmt.Sprintf("v %d %s", n, renderLabel(reg, host.Vertices[v].LabelIdx))
			if anomVertex[v] {
				line += anomalySuffix(host.Vertices[v].Provenance)
			}
			fmt.Fprintln(w, line)
		}
		for _, e := range c.Instance.Edges {
			edge := host.Edges[e]
			line := fmt.Sprintf("%s %d %d %s", edgeKeyword(edge), local[edge.V1], local[edge.V2], renderLabel(reg, edge.LabelIdx))
			if anomEdge[e] {
				line += anomalyEdgeSuffix(edge.Provenance)
			}
			fmt.Fprintln(w, line)
		}
	}

	return w.Flush()
}

// instanceExample reports the original example index an instance came
// from, taken from its first host vertex's provenance (every vertex of a
// connected instance shares the same source example).
func instanceExample(host *graph.Graph, inst *instance.Instance) int {
	if len(inst.Vertices) == 0 {
		return -1
	}

	return host.Vertices[inst.Vertices[0]].Provenance.SourceExample
}

func anomalySuffix(p graph.Provenance) string {
	return fmt.Sprintf(" <-- anomaly (original vertex: %d , in original example %d)", p.OriginalIndex, p.SourceExample)
}

func anomalyEdgeSuffix(p graph.EdgeProvenance) string {
	return fmt.Sprintf(" <-- anomaly (original vertex: %d , in original example %d)", p.OriginalIndex, p.SourceExample)
}
