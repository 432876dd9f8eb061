// File: dot.go
// Role: the optional Graphviz DOT output of spec.md §6 (`-dot`). Textual
// only, grounded on google-deps.dev/examples/go/dependencies_dot/main.go's
// plain fmt.Fprintf node/edge emission rather than a rendering library
// (see DESIGN.md).
package format

import (
	"bufio"
	"fmt"
	"io"

	"github.com/anomgraph/gbad/graph"
	"github.com/anomgraph/gbad/label"
)

// WriteDOT emits g as a Graphviz DOT digraph, coloring anomalous vertices
// and edges with whatever graph.Coloring.Color they carry (defaulting to
// black) so `dot -Tpng` renders anomalies visibly.
func WriteDOT(out io.Writer, reg *label.Registry, g *graph.Graph) error {
	w := bufio.NewWriter(out)
	fmt.Fprintln(w, "digraph gbad {")
	for i := range g.Vertices {
		if !g.HasVertex(i) {
			continue
		}
		v := g.Vertices[i]
		color := v.Coloring.Color
		if color == "" {
			color = "black"
		}
		fmt.Fprintf(w, "  n%d [label=%q, color=%q];\n", i, renderLabel(reg, v.LabelIdx), color)
	}
	for i := range g.Edges {
		if !g.HasEdge(i) {
			continue
		}
		e := g.Edges[i]
		color := e.Coloring.Color
		if color == "" {
			color = "black"
		}
		dir := "forward"
		if !e.Directed {
			dir = "none"
		}
		fmt.Fprintf(w, "  n%d -> n%d [label=%q, color=%q, dir=%s];\n", e.V1, e.V2, renderLabel(reg, e.LabelIdx), color, dir)
	}
	fmt.Fprintln(w, "}")

	return w.Flush()
}
